package keeper

import (
	"context"

	"github.com/strait-labs/strait/x/swaprouter/types"
)

// InitGenesis imports a genesis state into the store.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}
	if genState.Registry != nil {
		if err := k.SetRegistry(ctx, *genState.Registry); err != nil {
			return err
		}
	}
	if genState.VaultAuthority != nil {
		if err := k.SetVaultAuthority(ctx, *genState.VaultAuthority); err != nil {
			return err
		}
	} else if genState.Registry != nil {
		if err := k.initVaultAuthority(ctx, genState.Registry.Authority); err != nil {
			return err
		}
	}
	for _, pool := range genState.Pools {
		if err := k.SetPoolInfo(ctx, pool); err != nil {
			return err
		}
	}
	for _, mint := range genState.Mints {
		if err := k.SetMintInfo(ctx, mint); err != nil {
			return err
		}
	}
	for _, account := range genState.TokenAccounts {
		if err := k.setTokenAccount(ctx, account); err != nil {
			return err
		}
	}
	for _, order := range genState.Orders {
		if err := k.SetOrder(ctx, order); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis exports the module state for a chain restart.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	genState := types.GenesisState{
		Params:        k.GetParams(ctx),
		Pools:         k.AllPoolInfos(ctx),
		Mints:         k.AllMintInfos(ctx),
		TokenAccounts: k.AllTokenAccounts(ctx),
		Orders:        k.AllOrders(ctx),
	}
	if registry, err := k.GetRegistry(ctx); err == nil {
		genState.Registry = &registry
	}
	if vault, err := k.GetVaultAuthority(ctx); err == nil {
		genState.VaultAuthority = &vault
	}
	return &genState
}
