package keeper

import (
	"context"
	"encoding/json"

	"github.com/strait-labs/strait/x/swaprouter/types"
)

// GetVaultAuthority returns the singleton vault authority record.
func (k Keeper) GetVaultAuthority(ctx context.Context) (types.VaultAuthority, error) {
	bz := k.getStore(ctx).Get(types.VaultAuthorityKey)
	if bz == nil {
		return types.VaultAuthority{}, types.ErrVaultAuthorityNotFound
	}
	var vault types.VaultAuthority
	if err := json.Unmarshal(bz, &vault); err != nil {
		return types.VaultAuthority{}, err
	}
	return vault, nil
}

// SetVaultAuthority persists the singleton vault authority record.
func (k Keeper) SetVaultAuthority(ctx context.Context, vault types.VaultAuthority) error {
	bz, err := json.Marshal(vault)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.VaultAuthorityKey, bz)
	return nil
}

// initVaultAuthority creates the vault authority record alongside registry
// initialization. The authority address is always the module derivation, so
// escrow ownership cannot be pointed elsewhere.
func (k Keeper) initVaultAuthority(ctx context.Context, admin string) error {
	if k.getStore(ctx).Has(types.VaultAuthorityKey) {
		return types.ErrInvalidState.Wrap("vault authority already initialized")
	}
	return k.SetVaultAuthority(ctx, types.VaultAuthority{
		Admin:     admin,
		Authority: types.VaultAuthorityAddress().String(),
	})
}

// SetAggregatorProgram allowlists a single external aggregator program for
// the delegated execution path. Only the vault admin may change it.
func (k Keeper) SetAggregatorProgram(ctx context.Context, caller, program string) error {
	vault, err := k.GetVaultAuthority(ctx)
	if err != nil {
		return err
	}
	if vault.Admin != caller {
		return types.ErrInvalidAuthority.Wrapf("%s is not the vault admin", caller)
	}
	vault.AggregatorProgram = program
	return k.SetVaultAuthority(ctx, vault)
}

// createEscrowAccount opens a vault-authority-owned token account at the
// derived escrow address for an order.
func (k Keeper) createEscrowAccount(ctx context.Context, escrowAddr, mint string) error {
	vault, err := k.GetVaultAuthority(ctx)
	if err != nil {
		return err
	}
	return k.CreateTokenAccount(ctx, escrowAddr, mint, vault.Authority)
}

// closeEscrowAccount deletes a drained escrow account. Closing fails while
// the escrow still holds a balance.
func (k Keeper) closeEscrowAccount(ctx context.Context, escrowAddr string) error {
	return k.CloseTokenAccount(ctx, escrowAddr)
}
