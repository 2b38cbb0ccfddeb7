package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"github.com/strait-labs/strait/x/swaprouter/keeper"
	"github.com/strait-labs/strait/x/swaprouter/types"
)

type RouteTestSuite struct {
	suite.Suite
	env *routerEnv
}

func (s *RouteTestSuite) SetupTest() {
	s.env = newRouterEnv(s.T())
}

// singleStepSetup builds the standard one-step classic AMM route from mint A
// to mint B: 4 window slots, then the entry vault and the vault destination.
func (s *RouteTestSuite) singleStepSetup() (plan []types.RoutePlanStep, aux []string, entryVault, vaultDest string) {
	e := s.env
	entryVault = e.tokenAccount("entry_vault", e.mintA, e.vault, 0)
	vaultDest = e.tokenAccount("route_dest", e.mintB, e.vault, 0)
	aux = append(e.classicWindow(), entryVault, vaultDest)
	plan = []types.RoutePlanStep{
		{SwapType: types.SwapTypeClassicAMM, Percent: 100, InputIndex: 4, OutputIndex: 5},
	}
	return plan, aux, entryVault, vaultDest
}

func (s *RouteTestSuite) routeMsg(plan []types.RoutePlanStep, aux []string, vaultDest string) *types.MsgRoute {
	e := s.env
	return &types.MsgRoute{
		Caller:                  e.trader,
		SourceMint:              e.mintA,
		DestinationMint:         e.mintB,
		SourceTokenEngine:       types.TokenEngineClassic,
		DestinationTokenEngine:  types.TokenEngineClassic,
		UserSourceAccount:       e.userSource,
		UserDestinationAccount:  e.userDest,
		VaultDestinationAccount: vaultDest,
		RoutePlan:               plan,
		AuxAccounts:             aux,
		InAmount:                math.NewInt(1_000_000),
		QuotedOutAmount:         math.NewInt(1_000_000),
		SlippageBps:             100,
		PlatformFeeBps:          25,
	}
}

// ============================================================
// Route execution
// ============================================================

func (s *RouteTestSuite) TestRouteSingleStep() {
	e := s.env
	e.wireClassicVenue(1, 1)
	plan, aux, entryVault, vaultDest := s.singleStepSetup()

	net, events, err := e.k.Route(e.ctx, s.routeMsg(plan, aux, vaultDest))
	s.Require().NoError(err)

	// 25 bps fee on the realized 1_000_000.
	s.Require().Equal(math.NewInt(997_500), net)
	s.Require().Len(events, 1)
	s.Require().Equal(e.mintA, events[0].InputMint)
	s.Require().Equal(e.mintB, events[0].OutputMint)
	s.Require().Equal(math.NewInt(1_000_000), events[0].OutputAmount)

	// Caller paid in, payout landed, fee accrued, no funds stranded.
	s.Require().Equal(math.NewInt(9_000_000), e.balance(e.userSource))
	s.Require().Equal(math.NewInt(997_500), e.balance(e.userDest))
	s.Require().Equal(math.NewInt(2_500), e.balance(types.FeeAccountAddress(e.mintB).String()))
	s.Require().True(e.balance(entryVault).IsZero())
	s.Require().True(e.balance(vaultDest).IsZero())
}

func (s *RouteTestSuite) TestRouteSlippageExceeded() {
	e := s.env
	// The venue pays 10% under the quote while the caller tolerates 5%.
	e.wireClassicVenue(9, 10)
	plan, aux, _, vaultDest := s.singleStepSetup()

	msg := s.routeMsg(plan, aux, vaultDest)
	msg.SlippageBps = 500
	msg.PlatformFeeBps = 0

	_, _, err := e.k.Route(e.ctx, msg)
	s.Require().ErrorIs(err, types.ErrSlippageExceeded)
}

func (s *RouteTestSuite) TestRouteRequiresVaultOwnedAccounts() {
	e := s.env
	e.wireClassicVenue(1, 1)
	plan, aux, _, _ := s.singleStepSetup()

	// A trader-owned destination escrow is rejected before funds move.
	foreignDest := e.tokenAccount("foreign_dest", e.mintB, e.trader, 0)
	_, _, err := e.k.Route(e.ctx, s.routeMsg(plan, aux, foreignDest))
	s.Require().ErrorIs(err, types.ErrInvalidVaultAddress)
	s.Require().Equal(math.NewInt(10_000_000), e.balance(e.userSource))
}

func (s *RouteTestSuite) TestRouteRollbackOnVenueFailure() {
	e := s.env
	e.wireClassicVenue(1, 1)
	e.wireFailingClassicVenue()
	plan, aux, entryVault, vaultDest := s.singleStepSetup()

	// The message server stages on a cache context, so the entry-vault
	// funding from before the venue call must not survive the failure.
	srv := keeper.NewMsgServerImpl(*e.k)
	failures := keeper.GetRouterMetrics().AdapterFailures.WithLabelValues(types.SwapTypeClassicAMM.String())
	failuresBefore := testutil.ToFloat64(failures)
	_, err := srv.Route(e.ctx, s.routeMsg(plan, aux, vaultDest))
	s.Require().Error(err)

	s.Require().Equal(math.NewInt(10_000_000), e.balance(e.userSource))
	s.Require().True(e.balance(entryVault).IsZero())
	s.Require().True(e.balance(vaultDest).IsZero())
	s.Require().Equal(failuresBefore+1, testutil.ToFloat64(failures))
}

// ============================================================
// Partial splits
// ============================================================

// splitSetup builds a 60/40 split of mint A into mint B across the classic
// AMM and the bin-liquidity venue. Both legs are delta-measured, so they can
// share the vault destination as output.
func (s *RouteTestSuite) splitSetup() (plan []types.RoutePlanStep, aux []string, vaultDest string) {
	e := s.env
	e.wireClassicVenue(1, 1)
	binWindow := e.setupBinLiquidity(e.mintA, e.mintB, 1, 1)

	entryVault := e.tokenAccount("entry_vault", e.mintA, e.vault, 0)
	vaultDest = e.tokenAccount("route_dest", e.mintB, e.vault, 0)

	aux = append(append(e.classicWindow(), binWindow...), entryVault, vaultDest)
	plan = []types.RoutePlanStep{
		{SwapType: types.SwapTypeClassicAMM, Percent: 60, InputIndex: 17, OutputIndex: 18},
		{SwapType: types.SwapTypeBinLiquidity, Percent: 40, InputIndex: 17, OutputIndex: 18},
	}
	return plan, aux, vaultDest
}

func (s *RouteTestSuite) TestRouteSplitAcrossVenues() {
	e := s.env
	plan, aux, vaultDest := s.splitSetup()

	msg := s.routeMsg(plan, aux, vaultDest)
	msg.SlippageBps = 0
	msg.PlatformFeeBps = 0

	net, events, err := e.k.Route(e.ctx, msg)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(1_000_000), net)
	s.Require().Len(events, 2)
	s.Require().Equal(math.NewInt(600_000), events[0].InputAmount)
	s.Require().Equal(math.NewInt(400_000), events[1].InputAmount)
	s.Require().Equal(math.NewInt(1_000_000), e.balance(e.userDest))
}

func (s *RouteTestSuite) TestSplitPercentagesMustSumTo100() {
	e := s.env
	plan, aux, _ := s.splitSetup()
	plan[1].Percent = 39

	registry, err := e.k.GetRegistry(e.ctx)
	s.Require().NoError(err)
	err = e.k.ValidateRoute(e.ctx, registry, types.TokenEngineClassic, types.TokenEngineClassic,
		e.mintA, e.mintB, plan, aux, math.NewInt(1_000_000))
	s.Require().ErrorIs(err, types.ErrInvalidPartialSwapPercent)
}

func (s *RouteTestSuite) TestSplitRequiresTwoVenues() {
	e := s.env
	plan, aux, _ := s.splitSetup()
	// Collapse the split onto a single venue.
	plan[1].SwapType = types.SwapTypeClassicAMM

	registry, err := e.k.GetRegistry(e.ctx)
	s.Require().NoError(err)
	err = e.k.ValidateRoute(e.ctx, registry, types.TokenEngineClassic, types.TokenEngineClassic,
		e.mintA, e.mintB, plan, aux, math.NewInt(1_000_000))
	s.Require().ErrorIs(err, types.ErrInsufficientDexesForPartial)
}

// ============================================================
// Multi-hop
// ============================================================

func (s *RouteTestSuite) TestRouteMultiHop() {
	e := s.env
	// A -> B on the classic AMM, then B -> C on the concentrated venue at a
	// 2:1 rate. The hop account carries mint B between the legs.
	e.wireClassicVenue(1, 1)
	concWindow := e.setupConcentrated(e.mintB, e.mintC, 2, 1)

	entryVault := e.tokenAccount("entry_vault", e.mintA, e.vault, 0)
	hop := e.tokenAccount("hop_b", e.mintB, e.vault, 0)
	destC := e.tokenAccount("route_dest_c", e.mintC, e.vault, 0)
	userDestC := e.tokenAccount("user_dest_c", e.mintC, e.trader, 0)

	aux := append(append(e.classicWindow(), concWindow...), entryVault, hop, destC)
	plan := []types.RoutePlanStep{
		{SwapType: types.SwapTypeClassicAMM, Percent: 100, InputIndex: 11, OutputIndex: 12},
		{SwapType: types.SwapTypeConcentrated, Percent: 100, InputIndex: 12, OutputIndex: 13},
	}

	msg := s.routeMsg(plan, aux, destC)
	msg.DestinationMint = e.mintC
	msg.UserDestinationAccount = userDestC
	msg.QuotedOutAmount = math.NewInt(2_000_000)
	msg.SlippageBps = 0
	msg.PlatformFeeBps = 0

	net, events, err := e.k.Route(e.ctx, msg)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(2_000_000), net)
	s.Require().Len(events, 2)
	s.Require().Equal(e.mintB, events[0].OutputMint)
	s.Require().Equal(e.mintC, events[1].OutputMint)
	s.Require().Equal(math.NewInt(2_000_000), e.balance(userDestC))
	s.Require().True(e.balance(hop).IsZero())
}

// ============================================================
// Validator rejections
// ============================================================

func (s *RouteTestSuite) validate(sourceMint, destMint string, plan []types.RoutePlanStep, aux []string) error {
	registry, err := s.env.k.GetRegistry(s.env.ctx)
	s.Require().NoError(err)
	return s.env.k.ValidateRoute(s.env.ctx, registry, types.TokenEngineClassic, types.TokenEngineClassic,
		sourceMint, destMint, plan, aux, math.NewInt(1_000_000))
}

func (s *RouteTestSuite) TestValidateRouteRejections() {
	e := s.env
	e.wireClassicVenue(1, 1)
	plan, aux, _, _ := s.singleStepSetup()

	// A well-formed plan passes, and validation is repeatable.
	s.Require().NoError(s.validate(e.mintA, e.mintB, plan, aux))
	s.Require().NoError(s.validate(e.mintA, e.mintB, plan, aux))

	// Empty plan.
	err := s.validate(e.mintA, e.mintB, nil, aux)
	s.Require().ErrorIs(err, types.ErrEmptyRoute)

	// Declared engine does not match the mint record.
	registry, err := e.k.GetRegistry(e.ctx)
	s.Require().NoError(err)
	err = e.k.ValidateRoute(e.ctx, registry, types.TokenEngineExtended, types.TokenEngineClassic,
		e.mintA, e.mintB, plan, aux, math.NewInt(1_000_000))
	s.Require().ErrorIs(err, types.ErrInvalidMint)

	// Unrecognized engine reference.
	err = e.k.ValidateRoute(e.ctx, registry, "exotic", types.TokenEngineClassic,
		e.mintA, e.mintB, plan, aux, math.NewInt(1_000_000))
	s.Require().ErrorIs(err, types.ErrInvalidCpiInterface)

	// Too few aux accounts for the plan.
	err = s.validate(e.mintA, e.mintB, plan, aux[:2])
	s.Require().ErrorIs(err, types.ErrNotEnoughAccountKeys)

	// No aux account holds the source mint.
	noEntry := append(e.classicWindow(), e.classicPad1, e.classicPad2)
	err = s.validate(e.mintA, e.mintB, plan, noEntry)
	s.Require().ErrorIs(err, types.ErrVaultNotFound)

	// Step indices out of range.
	badPlan := []types.RoutePlanStep{{SwapType: types.SwapTypeClassicAMM, Percent: 100, InputIndex: 4, OutputIndex: 42}}
	err = s.validate(e.mintA, e.mintB, badPlan, aux)
	s.Require().ErrorIs(err, types.ErrInvalidAccountIndex)

	// Swap type without a registry entry.
	unsupported := []types.RoutePlanStep{{SwapType: types.SwapTypeConcentrated, Percent: 100, InputIndex: 4, OutputIndex: 5}}
	err = s.validate(e.mintA, e.mintB, unsupported, aux)
	s.Require().ErrorIs(err, types.ErrSwapNotSupported)

	// No step produces the declared destination mint.
	err = s.validate(e.mintA, e.mintC, plan, aux)
	s.Require().ErrorIs(err, types.ErrNoOutputProduced)

	// A zero address inside the venue window.
	holed := append([]string{}, aux...)
	holed[3] = ""
	err = s.validate(e.mintA, e.mintB, plan, holed)
	s.Require().ErrorIs(err, types.ErrInvalidAccountIndex)
}

func (s *RouteTestSuite) TestValidateRouteProgramPinning() {
	e := s.env
	e.wireClassicVenue(1, 1)
	plan, aux, _, _ := s.singleStepSetup()

	// Re-pointing the registry entry at a foreign program must fail the
	// adapter's canonical-derivation check.
	s.Require().NoError(e.k.ConfigureAdapter(e.ctx, e.authority, types.AdapterEntry{
		Name:      types.SwapTypeClassicAMM.String(),
		ProgramID: e.addr("rogue_program"),
		SwapType:  types.SwapTypeClassicAMM,
	}))
	err := s.validate(e.mintA, e.mintB, plan, aux)
	s.Require().ErrorIs(err, types.ErrInvalidCpiInterface)
}

func (s *RouteTestSuite) TestValidateRoutePoolGating() {
	e := s.env
	e.wireClassicVenue(1, 1)
	plan, aux, _, _ := s.singleStepSetup()

	// Disabled pool.
	s.Require().NoError(e.k.DisablePool(e.ctx, e.operator, types.SwapTypeClassicAMM, e.classicPool))
	err := s.validate(e.mintA, e.mintB, plan, aux)
	s.Require().ErrorIs(err, types.ErrInvalidPoolAddress)

	// Re-enabled via allowlist that excludes it.
	s.Require().NoError(e.k.SetPoolInfo(e.ctx, types.PoolInfo{
		SwapType: types.SwapTypeClassicAMM, PoolAddress: e.classicPool, Enabled: true,
	}))
	s.Require().NoError(s.validate(e.mintA, e.mintB, plan, aux))

	entry := types.AdapterEntry{
		Name:          types.SwapTypeClassicAMM.String(),
		ProgramID:     types.VenueProgramAddress(types.SwapTypeClassicAMM.String()).String(),
		SwapType:      types.SwapTypeClassicAMM,
		PoolAllowlist: []string{e.addr("other_pool")},
	}
	s.Require().NoError(e.k.ConfigureAdapter(e.ctx, e.authority, entry))
	err = s.validate(e.mintA, e.mintB, plan, aux)
	s.Require().ErrorIs(err, types.ErrInvalidPoolAddress)
}

// ============================================================
// Route and create order
// ============================================================

func (s *RouteTestSuite) TestRouteAndCreateOrder() {
	e := s.env
	e.wireClassicVenue(1, 1)
	plan, aux, _, _ := s.singleStepSetup()
	userDestC := e.tokenAccount("user_dest_c", e.mintC, e.trader, 0)

	msg := &types.MsgRouteAndCreateOrder{
		Caller:                 e.trader,
		Nonce:                  7,
		SourceMint:             e.mintA,
		DestinationMint:        e.mintB,
		SourceTokenEngine:      types.TokenEngineClassic,
		DestinationTokenEngine: types.TokenEngineClassic,
		UserSourceAccount:      e.userSource,
		RoutePlan:              plan,
		AuxAccounts:            aux,
		InAmount:               math.NewInt(1_000_000),
		QuotedOutAmount:        math.NewInt(1_000_000),
		SlippageBps:            100,
		PlatformFeeBps:         25,

		OrderOutputMint:         e.mintC,
		OrderDestinationAccount: userDestC,
		OrderMinOutputAmount:    math.NewInt(900_000),
		OrderTriggerPriceBps:    500,
		OrderTriggerType:        types.TriggerTakeProfit,
		OrderExpiry:             e.ctx.BlockTime().Add(time.Hour).Unix(),
		OrderSlippageBps:        50,
	}

	order, net, events, err := e.k.RouteAndCreateOrder(e.ctx, msg)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(997_500), net)
	s.Require().Len(events, 1)

	// The realized output, minus the platform fee, rests in the order's own
	// escrow and the order opens against it.
	s.Require().Equal(types.OrderStatusOpen, order.Status)
	s.Require().Equal(net, order.InputAmount)
	s.Require().Equal(e.mintB, order.InputMint)
	s.Require().Equal(e.mintC, order.OutputMint)
	s.Require().Equal(net, e.balance(order.InputVault))

	stored, err := e.k.GetOrder(e.ctx, order.Address)
	s.Require().NoError(err)
	s.Require().Equal(order, stored)
	s.Require().Len(e.k.OpenOrders(e.ctx), 1)

	// Reusing the nonce is rejected.
	_, _, _, err = e.k.RouteAndCreateOrder(e.ctx, msg)
	s.Require().ErrorIs(err, types.ErrInvalidState)
}

func (s *RouteTestSuite) TestRouteAndCreateOrderRejectsPastExpiry() {
	e := s.env
	e.wireClassicVenue(1, 1)
	plan, aux, _, _ := s.singleStepSetup()

	msg := &types.MsgRouteAndCreateOrder{
		Caller:                 e.trader,
		Nonce:                  1,
		SourceMint:             e.mintA,
		DestinationMint:        e.mintB,
		SourceTokenEngine:      types.TokenEngineClassic,
		DestinationTokenEngine: types.TokenEngineClassic,
		UserSourceAccount:      e.userSource,
		RoutePlan:              plan,
		AuxAccounts:            aux,
		InAmount:               math.NewInt(1_000_000),
		QuotedOutAmount:        math.NewInt(1_000_000),

		OrderOutputMint:         e.mintC,
		OrderDestinationAccount: e.userDest,
		OrderMinOutputAmount:    math.NewInt(900_000),
		OrderTriggerPriceBps:    500,
		OrderTriggerType:        types.TriggerTakeProfit,
		OrderExpiry:             e.ctx.BlockTime().Add(-time.Hour).Unix(),
	}
	_, _, _, err := e.k.RouteAndCreateOrder(e.ctx, msg)
	s.Require().ErrorIs(err, types.ErrInvalidExpiry)
}

func TestRouteSuite(t *testing.T) {
	suite.Run(t, new(RouteTestSuite))
}
