package types

import (
	"testing"

	"cosmossdk.io/math"
)

func TestGenesisState_Validate(t *testing.T) {
	validMint := MintInfo{Address: "mintA", TokenEngine: TokenEngineClassic, Decimals: 6}

	cases := []struct {
		name    string
		mutate  func(*GenesisState)
		wantErr bool
	}{
		{
			"default genesis", func(gs *GenesisState) {}, false,
		},
		{
			"registry with adapters",
			func(gs *GenesisState) {
				gs.Registry = &Registry{
					Authority: "auth",
					Adapters: []AdapterEntry{
						{Name: "classic_amm", ProgramID: "prog", SwapType: SwapTypeClassicAMM},
						{Name: "concentrated", ProgramID: "prog2", SwapType: SwapTypeConcentrated},
					},
				}
			},
			false,
		},
		{
			"registry without authority",
			func(gs *GenesisState) { gs.Registry = &Registry{} },
			true,
		},
		{
			"duplicate adapter swap type",
			func(gs *GenesisState) {
				gs.Registry = &Registry{
					Authority: "auth",
					Adapters: []AdapterEntry{
						{Name: "a", ProgramID: "p1", SwapType: SwapTypeClassicAMM},
						{Name: "b", ProgramID: "p2", SwapType: SwapTypeClassicAMM},
					},
				}
			},
			true,
		},
		{
			"pool with unknown swap type",
			func(gs *GenesisState) {
				gs.Pools = []PoolInfo{{SwapType: SwapTypeUnspecified, PoolAddress: "pool"}}
			},
			true,
		},
		{
			"duplicate pool",
			func(gs *GenesisState) {
				gs.Pools = []PoolInfo{
					{SwapType: SwapTypeClassicAMM, PoolAddress: "pool", Enabled: true},
					{SwapType: SwapTypeConcentrated, PoolAddress: "pool", Enabled: true},
				}
			},
			true,
		},
		{
			"mint with unknown engine",
			func(gs *GenesisState) {
				gs.Mints = []MintInfo{{Address: "m", TokenEngine: "exotic"}}
			},
			true,
		},
		{
			"token account referencing unknown mint",
			func(gs *GenesisState) {
				gs.TokenAccounts = []TokenAccount{{Address: "acc", Mint: "missing", Owner: "o", Balance: math.ZeroInt()}}
			},
			true,
		},
		{
			"token account with negative balance",
			func(gs *GenesisState) {
				gs.Mints = []MintInfo{validMint}
				gs.TokenAccounts = []TokenAccount{{Address: "acc", Mint: validMint.Address, Owner: "o", Balance: math.NewInt(-1)}}
			},
			true,
		},
		{
			"order with invalid trigger",
			func(gs *GenesisState) {
				gs.Orders = []LimitOrder{{Address: "ord", TriggerType: TriggerTypeUnspecified, TriggerPriceBps: 0, Status: OrderStatusOpen}}
			},
			true,
		},
		{
			"duplicate orders",
			func(gs *GenesisState) {
				order := LimitOrder{Address: "ord", TriggerType: TriggerTakeProfit, TriggerPriceBps: 100, Status: OrderStatusOpen}
				gs.Orders = []LimitOrder{order, order}
			},
			true,
		},
		{
			"params violating step coverage",
			func(gs *GenesisState) {
				gs.Params.MaxRouteSteps = 100
				gs.Params.MaxAuxAccounts = 10
			},
			true,
		},
	}

	for _, tc := range cases {
		gs := DefaultGenesis()
		tc.mutate(gs)
		err := gs.Validate()
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
	}
}
