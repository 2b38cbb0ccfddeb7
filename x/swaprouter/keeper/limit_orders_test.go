package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	"github.com/strait-labs/strait/testutil/venues"
	"github.com/strait-labs/strait/x/swaprouter/keeper"
	"github.com/strait-labs/strait/x/swaprouter/types"
)

type LimitOrderTestSuite struct {
	suite.Suite
	env *routerEnv
}

func (s *LimitOrderTestSuite) SetupTest() {
	s.env = newRouterEnv(s.T())
}

// createMsg is the baseline order: 1_000_000 of mint A escrowed against a
// 500 bps take-profit on a 1_000_000 mint B baseline, expiring in an hour.
func (s *LimitOrderTestSuite) createMsg(nonce uint64) *types.MsgCreateLimitOrder {
	e := s.env
	return &types.MsgCreateLimitOrder{
		Creator:                e.trader,
		Nonce:                  nonce,
		InputMint:              e.mintA,
		OutputMint:             e.mintB,
		UserSourceAccount:      e.userSource,
		UserDestinationAccount: e.userDest,
		InputAmount:            math.NewInt(1_000_000),
		MinOutputAmount:        math.NewInt(1_000_000),
		TriggerPriceBps:        500,
		TriggerType:            types.TriggerTakeProfit,
		Expiry:                 e.ctx.BlockTime().Add(time.Hour).Unix(),
		SlippageBps:            50,
	}
}

func (s *LimitOrderTestSuite) createOrder(nonce uint64) types.LimitOrder {
	order, err := s.env.k.CreateLimitOrder(s.env.ctx, s.createMsg(nonce))
	s.Require().NoError(err)
	return order
}

// executeMsg routes the order's escrow through the wired classic AMM.
func (s *LimitOrderTestSuite) executeMsg(order types.LimitOrder, quoted int64) (*types.MsgExecuteLimitOrder, string) {
	e := s.env
	destEscrow := e.tokenAccount("exec_dest_escrow", e.mintB, e.vault, 0)
	aux := append(e.classicWindow(), order.InputVault, destEscrow)
	return &types.MsgExecuteLimitOrder{
		Operator:                e.operator,
		OrderAddress:            order.Address,
		VaultDestinationAccount: destEscrow,
		RoutePlan: []types.RoutePlanStep{
			{SwapType: types.SwapTypeClassicAMM, Percent: 100, InputIndex: 4, OutputIndex: 5},
		},
		AuxAccounts:     aux,
		QuotedOutAmount: math.NewInt(quoted),
		PlatformFeeBps:  100,
	}, destEscrow
}

// ============================================================
// Creation
// ============================================================

func (s *LimitOrderTestSuite) TestCreateLimitOrder() {
	e := s.env
	order := s.createOrder(1)

	// The address and escrow are derived, the funds moved, the order open.
	creator := sdk.MustAccAddressFromBech32(e.trader)
	s.Require().Equal(types.OrderAddress(creator, 1).String(), order.Address)
	expectedEscrow := types.EscrowAccountAddress(sdk.MustAccAddressFromBech32(order.Address)).String()
	s.Require().Equal(expectedEscrow, order.InputVault)
	s.Require().Equal(types.OrderStatusOpen, order.Status)

	s.Require().Equal(math.NewInt(1_000_000), e.balance(order.InputVault))
	s.Require().Equal(math.NewInt(9_000_000), e.balance(e.userSource))

	escrow, err := e.k.GetTokenAccount(e.ctx, order.InputVault)
	s.Require().NoError(err)
	s.Require().Equal(e.vault, escrow.Owner)

	// Indexed as open and by creator.
	s.Require().Len(e.k.OpenOrders(e.ctx), 1)
	s.Require().Len(e.k.OrdersByCreator(e.ctx, creator), 1)
}

func (s *LimitOrderTestSuite) TestCreateLimitOrderRejections() {
	e := s.env

	// Duplicate nonce.
	s.createOrder(1)
	_, err := e.k.CreateLimitOrder(e.ctx, s.createMsg(1))
	s.Require().ErrorIs(err, types.ErrInvalidState)

	// Unregistered mint.
	msg := s.createMsg(2)
	msg.InputMint = e.addr("unknown_mint")
	_, err = e.k.CreateLimitOrder(e.ctx, msg)
	s.Require().ErrorIs(err, types.ErrMintNotFound)

	// Expiry at or before block time.
	msg = s.createMsg(3)
	msg.Expiry = e.ctx.BlockTime().Unix()
	_, err = e.k.CreateLimitOrder(e.ctx, msg)
	s.Require().ErrorIs(err, types.ErrInvalidExpiry)

	// Insufficient funds roll the creation back at the transfer.
	msg = s.createMsg(4)
	msg.InputAmount = math.NewInt(100_000_000)
	_, err = e.k.CreateLimitOrder(e.ctx, msg)
	s.Require().ErrorIs(err, types.ErrInsufficientFunds)
}

// ============================================================
// Execution through the route machinery
// ============================================================

func (s *LimitOrderTestSuite) TestExecuteLimitOrder() {
	e := s.env
	// The venue pays 10% above baseline, beating the 500 bps trigger.
	e.wireClassicVenue(11, 10)
	order := s.createOrder(1)
	msg, destEscrow := s.executeMsg(order, 1_050_000)

	result, err := e.k.ExecuteLimitOrder(e.ctx, msg)
	s.Require().NoError(err)

	// Realized 1_100_000, 100 bps fee, floor 1_050_000 * 99.5%.
	s.Require().Equal(math.NewInt(1_089_000), result.Net)
	s.Require().Equal(math.NewInt(11_000), result.Fee)
	s.Require().Len(result.Events, 1)
	s.Require().Equal(types.OrderStatusFilled, result.Order.Status)

	// The payout landed, the fee stayed in the vault destination escrow,
	// and the order escrow is gone.
	s.Require().Equal(math.NewInt(1_089_000), e.balance(e.userDest))
	s.Require().Equal(math.NewInt(11_000), e.balance(destEscrow))
	_, err = e.k.GetTokenAccount(e.ctx, order.InputVault)
	s.Require().ErrorIs(err, types.ErrAccountNotFound)

	stored, err := e.k.GetOrder(e.ctx, order.Address)
	s.Require().NoError(err)
	s.Require().Equal(types.OrderStatusFilled, stored.Status)
	s.Require().Empty(e.k.OpenOrders(e.ctx))
}

func (s *LimitOrderTestSuite) TestExecuteLimitOrderTriggerNotMet() {
	e := s.env
	e.wireClassicVenue(11, 10)
	order := s.createOrder(1)

	// Quoted below the 500 bps take-profit threshold.
	msg, _ := s.executeMsg(order, 1_040_000)
	_, err := e.k.ExecuteLimitOrder(e.ctx, msg)
	s.Require().ErrorIs(err, types.ErrTriggerPriceNotMet)
}

func (s *LimitOrderTestSuite) TestExecuteLimitOrderRealizedRecheck() {
	e := s.env
	// The quote clears the trigger but the venue only pays par: the
	// post-swap re-evaluation must reject and, through the message server,
	// unwind the escrow debit.
	e.wireClassicVenue(1, 1)
	order := s.createOrder(1)
	msg, destEscrow := s.executeMsg(order, 1_050_000)

	srv := keeper.NewMsgServerImpl(*e.k)
	_, err := srv.ExecuteLimitOrder(e.ctx, msg)
	s.Require().ErrorIs(err, types.ErrTriggerPriceNotMet)

	s.Require().Equal(math.NewInt(1_000_000), e.balance(order.InputVault))
	s.Require().True(e.balance(destEscrow).IsZero())
	stored, err := e.k.GetOrder(e.ctx, order.Address)
	s.Require().NoError(err)
	s.Require().Equal(types.OrderStatusOpen, stored.Status)
}

func (s *LimitOrderTestSuite) TestExecuteLimitOrderGating() {
	e := s.env
	e.wireClassicVenue(11, 10)
	order := s.createOrder(1)

	// Unregistered caller.
	msg, _ := s.executeMsg(order, 1_050_000)
	msg.Operator = e.trader
	_, err := e.k.ExecuteLimitOrder(e.ctx, msg)
	s.Require().ErrorIs(err, types.ErrInvalidOperator)

	// Route not drawing from the order escrow.
	msg, _ = s.executeMsg(order, 1_050_000)
	foreign := e.tokenAccount("foreign_vault", e.mintA, e.vault, 0)
	msg.AuxAccounts[4] = foreign
	_, err = e.k.ExecuteLimitOrder(e.ctx, msg)
	s.Require().ErrorIs(err, types.ErrInvalidVaultAddress)

	// Expired order.
	msg, _ = s.executeMsg(order, 1_050_000)
	expired := e.ctx.WithBlockTime(e.ctx.BlockTime().Add(2 * time.Hour))
	_, err = e.k.ExecuteLimitOrder(expired, msg)
	s.Require().ErrorIs(err, types.ErrOrderExpired)

	// Unknown order.
	msg, _ = s.executeMsg(order, 1_050_000)
	msg.OrderAddress = e.addr("missing_order")
	_, err = e.k.ExecuteLimitOrder(e.ctx, msg)
	s.Require().ErrorIs(err, types.ErrOrderNotFound)
}

// ============================================================
// Execution through the aggregator
// ============================================================

func (s *LimitOrderTestSuite) wireAggregator(num, den int64) string {
	e := s.env
	program := e.addr("aggregator_program")
	s.Require().NoError(e.k.SetAggregatorProgram(e.ctx, e.authority, program))

	reserveIn := e.tokenAccount("agg_reserve_in", e.mintA, e.vault, 0)
	reserveOut := e.tokenAccount("agg_reserve_out", e.mintB, e.vault, 1_000_000_000)
	e.k.RegisterVenue(program, venues.Aggregator{
		Ledger:     e.k,
		ReserveIn:  reserveIn,
		ReserveOut: reserveOut,
		Num:        num,
		Den:        den,
	})
	return program
}

func (s *LimitOrderTestSuite) TestExecuteLimitOrderWithAggregator() {
	e := s.env
	program := s.wireAggregator(12, 10)
	order := s.createOrder(1)
	destEscrow := e.tokenAccount("agg_dest_escrow", e.mintB, e.vault, 0)

	msg := &types.MsgExecuteLimitOrderWithAggregator{
		Operator:          e.operator,
		OrderAddress:      order.Address,
		AggregatorProgram: program,
		InstructionData:   []byte(`{"route":"opaque"}`),
		AuxAccounts:       []string{order.InputVault, destEscrow},
		QuotedOutAmount:   math.NewInt(1_150_000),
		PlatformFeeBps:    0,
	}
	result, err := e.k.ExecuteLimitOrderWithAggregator(e.ctx, msg)
	s.Require().NoError(err)

	// The aggregator drained the escrow and paid 1_200_000 into the
	// destination escrow; with no fee the full delta reaches the user.
	s.Require().Equal(math.NewInt(1_200_000), result.Net)
	s.Require().Equal(math.NewInt(1_200_000), e.balance(e.userDest))
	s.Require().Equal(types.OrderStatusFilled, result.Order.Status)
	_, err = e.k.GetTokenAccount(e.ctx, order.InputVault)
	s.Require().ErrorIs(err, types.ErrAccountNotFound)
}

func (s *LimitOrderTestSuite) TestExecuteWithAggregatorGating() {
	e := s.env
	program := s.wireAggregator(12, 10)
	order := s.createOrder(1)
	destEscrow := e.tokenAccount("agg_dest_escrow", e.mintB, e.vault, 0)

	base := func() *types.MsgExecuteLimitOrderWithAggregator {
		return &types.MsgExecuteLimitOrderWithAggregator{
			Operator:          e.operator,
			OrderAddress:      order.Address,
			AggregatorProgram: program,
			InstructionData:   []byte(`{}`),
			AuxAccounts:       []string{order.InputVault, destEscrow},
			QuotedOutAmount:   math.NewInt(1_150_000),
		}
	}

	// A program other than the allow-listed one.
	msg := base()
	msg.AggregatorProgram = e.addr("rogue_aggregator")
	_, err := e.k.ExecuteLimitOrderWithAggregator(e.ctx, msg)
	s.Require().ErrorIs(err, types.ErrAggregatorNotAllowed)

	// aux[0] must be the order escrow.
	msg = base()
	msg.AuxAccounts[0] = destEscrow
	_, err = e.k.ExecuteLimitOrderWithAggregator(e.ctx, msg)
	s.Require().ErrorIs(err, types.ErrInvalidVaultAddress)

	// aux[1] must be vault-owned.
	msg = base()
	msg.AuxAccounts[1] = e.userDest
	_, err = e.k.ExecuteLimitOrderWithAggregator(e.ctx, msg)
	s.Require().ErrorIs(err, types.ErrInvalidVaultAddress)

	// aux[1] must hold the order's output mint.
	msg = base()
	msg.AuxAccounts[1] = e.tokenAccount("agg_wrong_mint", e.mintC, e.vault, 0)
	_, err = e.k.ExecuteLimitOrderWithAggregator(e.ctx, msg)
	s.Require().ErrorIs(err, types.ErrInvalidMint)
}

// ============================================================
// Cancellation and closing
// ============================================================

func (s *LimitOrderTestSuite) TestCancelLimitOrder() {
	e := s.env
	order := s.createOrder(1)

	cancelled, refund, err := e.k.CancelLimitOrder(e.ctx, e.trader, order.Address)
	s.Require().NoError(err)

	// The exact escrow balance flows back to the recorded source account.
	s.Require().Equal(math.NewInt(1_000_000), refund)
	s.Require().Equal(math.NewInt(10_000_000), e.balance(e.userSource))
	s.Require().Equal(types.OrderStatusCancelled, cancelled.Status)
	_, err = e.k.GetTokenAccount(e.ctx, order.InputVault)
	s.Require().ErrorIs(err, types.ErrAccountNotFound)
	s.Require().Empty(e.k.OpenOrders(e.ctx))

	// A cancelled order cannot be cancelled again.
	_, _, err = e.k.CancelLimitOrder(e.ctx, e.trader, order.Address)
	s.Require().ErrorIs(err, types.ErrInvalidOrderStatus)
}

func (s *LimitOrderTestSuite) TestCancelLimitOrderCreatorOnly() {
	e := s.env
	order := s.createOrder(1)

	_, _, err := e.k.CancelLimitOrder(e.ctx, e.operator, order.Address)
	s.Require().ErrorIs(err, types.ErrInvalidCreator)
}

func (s *LimitOrderTestSuite) TestCancelExpiredLimitOrder() {
	e := s.env
	order := s.createOrder(1)

	// Not yet expired.
	_, _, err := e.k.CancelExpiredLimitOrder(e.ctx, e.operator, order.Address)
	s.Require().ErrorIs(err, types.ErrOrderNotExpired)

	// Only registered operators may reap.
	expired := e.ctx.WithBlockTime(e.ctx.BlockTime().Add(2 * time.Hour))
	_, _, err = e.k.CancelExpiredLimitOrder(expired, e.trader, order.Address)
	s.Require().ErrorIs(err, types.ErrInvalidOperator)

	_, refund, err := e.k.CancelExpiredLimitOrder(expired, e.operator, order.Address)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(1_000_000), refund)
	s.Require().Equal(math.NewInt(10_000_000), e.balance(e.userSource))
}

func (s *LimitOrderTestSuite) TestCloseLimitOrder() {
	e := s.env
	order := s.createOrder(1)

	// Live orders cannot be closed.
	err := e.k.CloseLimitOrder(e.ctx, e.operator, order.Address)
	s.Require().ErrorIs(err, types.ErrInvalidOrderStatus)

	_, _, err = e.k.CancelLimitOrder(e.ctx, e.trader, order.Address)
	s.Require().NoError(err)

	s.Require().NoError(e.k.CloseLimitOrder(e.ctx, e.operator, order.Address))
	_, err = e.k.GetOrder(e.ctx, order.Address)
	s.Require().ErrorIs(err, types.ErrOrderNotFound)
	s.Require().Empty(e.k.AllOrders(e.ctx))
}

func TestLimitOrderSuite(t *testing.T) {
	suite.Run(t, new(LimitOrderTestSuite))
}
