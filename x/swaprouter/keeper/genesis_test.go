package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/strait-labs/strait/testutil/keeper"
	"github.com/strait-labs/strait/x/swaprouter/types"
)

func TestGenesisRoundTrip(t *testing.T) {
	e := newRouterEnv(t)
	order, err := e.k.CreateLimitOrder(e.ctx, &types.MsgCreateLimitOrder{
		Creator:                e.trader,
		Nonce:                  1,
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
	})
	require.NoError(t, err)

	exported := e.k.ExportGenesis(e.ctx)
	require.NoError(t, exported.Validate())
	require.NotNil(t, exported.Registry)
	require.NotNil(t, exported.VaultAuthority)
	require.Len(t, exported.Orders, 1)
	require.Equal(t, order.Address, exported.Orders[0].Address)

	// Importing into a fresh store reproduces the exported state exactly.
	k2, ctx2 := keepertest.SwaprouterKeeper(t)
	require.NoError(t, k2.InitGenesis(ctx2, *exported))
	reexported := k2.ExportGenesis(ctx2)
	require.Equal(t, exported, reexported)

	// Indexes are rebuilt on import, not just the records.
	require.Len(t, k2.OpenOrders(ctx2), 1)
}

func TestGenesisDerivesVaultFromRegistry(t *testing.T) {
	k, ctx := keepertest.SwaprouterKeeper(t)

	authority := "paw1authority"
	genesis := types.DefaultGenesis()
	genesis.Registry = &types.Registry{Authority: authority}
	require.NoError(t, k.InitGenesis(ctx, *genesis))

	// A genesis carrying a registry but no vault record gets the module
	// derivation installed automatically.
	vault, err := k.GetVaultAuthority(ctx)
	require.NoError(t, err)
	require.Equal(t, authority, vault.Admin)
	require.Equal(t, types.VaultAuthorityAddress().String(), vault.Authority)
}

func TestParamsDefaultAndRoundTrip(t *testing.T) {
	k, ctx := keepertest.SwaprouterKeeper(t)

	params := k.GetParams(ctx)
	require.Equal(t, types.DefaultParams(), params)

	params.MaxRouteSteps = 4
	params.MaxPlatformFeeBps = 100
	require.NoError(t, k.SetParams(ctx, params))
	require.Equal(t, params, k.GetParams(ctx))

	invalid := params
	invalid.MaxRouteSteps = 0
	require.Error(t, k.SetParams(ctx, invalid))
}
