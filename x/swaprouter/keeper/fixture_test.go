package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/strait-labs/strait/testutil/keeper"
	"github.com/strait-labs/strait/testutil/venues"
	"github.com/strait-labs/strait/x/swaprouter/keeper"
	"github.com/strait-labs/strait/x/swaprouter/types"
)

// routerEnv is the shared scenario for route and order tests: an initialized
// registry with one operator, three mints, a registered classic AMM venue,
// and a funded trader. Venue mocks are wired per test through the helpers.
type routerEnv struct {
	t   *testing.T
	k   *keeper.Keeper
	ctx sdk.Context

	authority string
	operator  string
	trader    string
	vault     string

	mintA string
	mintB string
	mintC string

	classicPool string
	classicAuth string
	classicPad1 string
	classicPad2 string

	userSource string // trader's mint A account, funded
	userDest   string // trader's mint B account
}

func newRouterEnv(t *testing.T) *routerEnv {
	k, ctx := keepertest.SwaprouterKeeper(t)
	e := &routerEnv{t: t, k: k, ctx: ctx}

	e.authority = e.addr("authority")
	e.operator = e.addr("operator")
	e.trader = e.addr("trader")

	require.NoError(t, k.InitializeRegistry(ctx, e.authority))
	require.NoError(t, k.AddOperator(ctx, e.authority, e.operator))

	vault, err := k.GetVaultAuthority(ctx)
	require.NoError(t, err)
	e.vault = vault.Authority

	e.mintA = e.addr("mint_a")
	e.mintB = e.addr("mint_b")
	e.mintC = e.addr("mint_c")
	for _, mint := range []string{e.mintA, e.mintB, e.mintC} {
		require.NoError(t, k.SetMintInfo(ctx, types.MintInfo{
			Address: mint, TokenEngine: types.TokenEngineClassic, Decimals: 6,
		}))
	}

	require.NoError(t, k.ConfigureAdapter(ctx, e.authority, types.AdapterEntry{
		Name:      types.SwapTypeClassicAMM.String(),
		ProgramID: types.VenueProgramAddress(types.SwapTypeClassicAMM.String()).String(),
		SwapType:  types.SwapTypeClassicAMM,
	}))
	e.classicPool = e.addr("classic_pool")
	e.classicAuth = e.addr("classic_pool_auth")
	require.NoError(t, k.RegisterPool(ctx, e.operator, types.SwapTypeClassicAMM, e.classicPool))

	// Bookkeeping slots of the classic window. They only need to exist with
	// a recognized mint; mint B keeps them out of the entry-vault scan for
	// mint A routes.
	e.classicPad1 = e.tokenAccount("classic_pad_1", e.mintB, e.vault, 0)
	e.classicPad2 = e.tokenAccount("classic_pad_2", e.mintB, e.vault, 0)

	e.userSource = e.tokenAccount("user_source", e.mintA, e.trader, 10_000_000)
	e.userDest = e.tokenAccount("user_dest", e.mintB, e.trader, 0)
	return e
}

func (e *routerEnv) addr(name string) string {
	padded := name
	for len(padded) < 20 {
		padded += "_"
	}
	return sdk.AccAddress([]byte(padded)).String()
}

// tokenAccount creates a token account at a derived address and optionally
// funds it.
func (e *routerEnv) tokenAccount(name, mint, owner string, balance int64) string {
	addr := e.addr(name)
	require.NoError(e.t, e.k.CreateTokenAccount(e.ctx, addr, mint, owner))
	if balance > 0 {
		require.NoError(e.t, e.k.MintTokens(e.ctx, addr, math.NewInt(balance)))
	}
	return addr
}

func (e *routerEnv) balance(addr string) math.Int {
	account, err := e.k.GetTokenAccount(e.ctx, addr)
	if err != nil {
		return math.ZeroInt()
	}
	return account.Balance
}

// classicWindow is the 4-account window one classic AMM step consumes.
func (e *routerEnv) classicWindow() []string {
	return []string{e.classicPool, e.classicPad1, e.classicPad2, e.classicAuth}
}

// wireClassicVenue installs a fixed-rate mock behind the classic AMM's
// canonical program address, swapping mint A for mint B at num/den.
func (e *routerEnv) wireClassicVenue(num, den int64) {
	reserveIn := e.tokenAccount("classic_reserve_in", e.mintA, e.vault, 0)
	reserveOut := e.tokenAccount("classic_reserve_out", e.mintB, e.vault, 1_000_000_000)
	e.k.RegisterVenue(types.VenueProgramAddress(types.SwapTypeClassicAMM.String()).String(), venues.ConstantRate{
		Ledger:     e.k,
		ReserveIn:  reserveIn,
		ReserveOut: reserveOut,
		Num:        num,
		Den:        den,
	})
}

// wireFailingClassicVenue replaces the classic AMM mock with one that always
// errors, for rollback tests.
func (e *routerEnv) wireFailingClassicVenue() {
	e.k.RegisterVenue(types.VenueProgramAddress(types.SwapTypeClassicAMM.String()).String(), venues.Failing{})
}

// setupConcentrated registers the concentrated-liquidity adapter with its own
// pool and fixed-rate mock from inMint to outMint, returning the 7-account
// window one step on it consumes.
func (e *routerEnv) setupConcentrated(inMint, outMint string, num, den int64) []string {
	require.NoError(e.t, e.k.ConfigureAdapter(e.ctx, e.authority, types.AdapterEntry{
		Name:      types.SwapTypeConcentrated.String(),
		ProgramID: types.VenueProgramAddress(types.SwapTypeConcentrated.String()).String(),
		SwapType:  types.SwapTypeConcentrated,
	}))
	pool := e.addr("conc_pool")
	require.NoError(e.t, e.k.RegisterPool(e.ctx, e.operator, types.SwapTypeConcentrated, pool))

	reserveIn := e.tokenAccount("conc_reserve_in", inMint, e.vault, 0)
	reserveOut := e.tokenAccount("conc_reserve_out", outMint, e.vault, 1_000_000_000)
	e.k.RegisterVenue(types.VenueProgramAddress(types.SwapTypeConcentrated.String()).String(), venues.ConstantRate{
		Ledger:     e.k,
		ReserveIn:  reserveIn,
		ReserveOut: reserveOut,
		Num:        num,
		Den:        den,
	})

	pad1 := e.tokenAccount("conc_pad_1", e.mintB, e.vault, 0)
	pad2 := e.tokenAccount("conc_pad_2", e.mintB, e.vault, 0)
	return []string{
		pool,
		e.addr("conc_oracle"),
		e.addr("conc_tick_1"), e.addr("conc_tick_2"), e.addr("conc_tick_3"),
		pad1, pad2,
	}
}

// setupBinLiquidity registers the bin-liquidity adapter with its own pool and
// fixed-rate mock, returning the 13-account window one step on it consumes.
// The trailing reserved slots stay empty.
func (e *routerEnv) setupBinLiquidity(inMint, outMint string, num, den int64) []string {
	require.NoError(e.t, e.k.ConfigureAdapter(e.ctx, e.authority, types.AdapterEntry{
		Name:      types.SwapTypeBinLiquidity.String(),
		ProgramID: types.VenueProgramAddress(types.SwapTypeBinLiquidity.String()).String(),
		SwapType:  types.SwapTypeBinLiquidity,
	}))
	pool := e.addr("bin_pool")
	require.NoError(e.t, e.k.RegisterPool(e.ctx, e.operator, types.SwapTypeBinLiquidity, pool))

	reserveIn := e.tokenAccount("bin_reserve_in", inMint, e.vault, 0)
	reserveOut := e.tokenAccount("bin_reserve_out", outMint, e.vault, 1_000_000_000)
	e.k.RegisterVenue(types.VenueProgramAddress(types.SwapTypeBinLiquidity.String()).String(), venues.ConstantRate{
		Ledger:     e.k,
		ReserveIn:  reserveIn,
		ReserveOut: reserveOut,
		Num:        num,
		Den:        den,
	})

	pad1 := e.tokenAccount("bin_pad_1", e.mintB, e.vault, 0)
	pad2 := e.tokenAccount("bin_pad_2", e.mintB, e.vault, 0)
	return []string{
		pool,
		e.addr("bin_array_1"), e.addr("bin_array_2"), e.addr("bin_array_3"),
		e.addr("bin_array_4"), e.addr("bin_array_5"),
		e.addr("bin_oracle"),
		pad1, pad2,
		e.addr("bin_event_auth"),
		e.addr("bin_host_fee"),
		"", "",
	}
}
