package keeper

import (
	"context"
	"encoding/json"

	storetypes "cosmossdk.io/store/types"

	"github.com/strait-labs/strait/x/swaprouter/types"
)

// GetRegistry returns the singleton adapter registry.
func (k Keeper) GetRegistry(ctx context.Context) (types.Registry, error) {
	bz := k.getStore(ctx).Get(types.RegistryKey)
	if bz == nil {
		return types.Registry{}, types.ErrRegistryNotFound
	}
	var registry types.Registry
	if err := json.Unmarshal(bz, &registry); err != nil {
		return types.Registry{}, err
	}
	return registry, nil
}

// SetRegistry persists the singleton adapter registry.
func (k Keeper) SetRegistry(ctx context.Context, registry types.Registry) error {
	bz, err := json.Marshal(registry)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.RegistryKey, bz)
	return nil
}

// InitializeRegistry creates the registry singleton. It can only run once;
// re-initialization would let anyone seize authority.
func (k Keeper) InitializeRegistry(ctx context.Context, authority string) error {
	if k.getStore(ctx).Has(types.RegistryKey) {
		return types.ErrInvalidState.Wrap("registry already initialized")
	}
	if err := k.SetRegistry(ctx, types.Registry{Authority: authority}); err != nil {
		return err
	}
	// The vault authority is created together with the registry so escrow
	// ownership exists before the first order.
	if !k.getStore(ctx).Has(types.VaultAuthorityKey) {
		return k.initVaultAuthority(ctx, authority)
	}
	return nil
}

// ConfigureAdapter inserts or replaces the venue entry for a swap type.
// Only the authority may reconfigure adapters.
func (k Keeper) ConfigureAdapter(ctx context.Context, caller string, entry types.AdapterEntry) error {
	registry, err := k.GetRegistry(ctx)
	if err != nil {
		return err
	}
	if !registry.IsAuthority(caller) {
		return types.ErrInvalidAuthority.Wrapf("%s is not the registry authority", caller)
	}
	if !entry.SwapType.Valid() {
		return types.ErrSwapNotSupported.Wrapf("swap type %d", entry.SwapType)
	}
	registry.Upsert(entry)
	return k.SetRegistry(ctx, registry)
}

// DisableAdapter removes the venue entry for a swap type. Routes referencing
// the type fail validation afterwards.
func (k Keeper) DisableAdapter(ctx context.Context, caller string, swapType types.SwapType) error {
	registry, err := k.GetRegistry(ctx)
	if err != nil {
		return err
	}
	if !registry.IsAuthority(caller) {
		return types.ErrInvalidAuthority.Wrapf("%s is not the registry authority", caller)
	}
	if !registry.Remove(swapType) {
		return types.ErrSwapNotSupported.Wrapf("swap type %s is not registered", swapType)
	}
	return k.SetRegistry(ctx, registry)
}

// AddOperator registers an executor address allowed to settle limit orders.
func (k Keeper) AddOperator(ctx context.Context, caller, operator string) error {
	registry, err := k.GetRegistry(ctx)
	if err != nil {
		return err
	}
	if !registry.IsAuthority(caller) {
		return types.ErrInvalidAuthority.Wrapf("%s is not the registry authority", caller)
	}
	if registry.IsOperator(operator) {
		return types.ErrInvalidState.Wrapf("%s is already an operator", operator)
	}
	registry.Operators = append(registry.Operators, operator)
	return k.SetRegistry(ctx, registry)
}

// RemoveOperator revokes an executor address.
func (k Keeper) RemoveOperator(ctx context.Context, caller, operator string) error {
	registry, err := k.GetRegistry(ctx)
	if err != nil {
		return err
	}
	if !registry.IsAuthority(caller) {
		return types.ErrInvalidAuthority.Wrapf("%s is not the registry authority", caller)
	}
	for i, op := range registry.Operators {
		if op == operator {
			registry.Operators = append(registry.Operators[:i], registry.Operators[i+1:]...)
			return k.SetRegistry(ctx, registry)
		}
	}
	return types.ErrInvalidOperator.Wrapf("%s is not an operator", operator)
}

// ChangeAuthority hands the registry to a new authority address.
func (k Keeper) ChangeAuthority(ctx context.Context, caller, newAuthority string) error {
	registry, err := k.GetRegistry(ctx)
	if err != nil {
		return err
	}
	if !registry.IsAuthority(caller) {
		return types.ErrInvalidAuthority.Wrapf("%s is not the registry authority", caller)
	}
	registry.Authority = newAuthority
	return k.SetRegistry(ctx, registry)
}

// ResetRegistry clears every adapter entry and operator, keeping only the
// authority. Used to recover from a misconfigured registry.
func (k Keeper) ResetRegistry(ctx context.Context, caller string) error {
	registry, err := k.GetRegistry(ctx)
	if err != nil {
		return err
	}
	if !registry.IsAuthority(caller) {
		return types.ErrInvalidAuthority.Wrapf("%s is not the registry authority", caller)
	}
	return k.SetRegistry(ctx, types.Registry{Authority: registry.Authority})
}

// GetPoolInfo returns the enablement record for a (swap type, pool) pair.
func (k Keeper) GetPoolInfo(ctx context.Context, swapType types.SwapType, pool string) (types.PoolInfo, error) {
	bz := k.getStore(ctx).Get(types.GetPoolInfoKey(swapType, pool))
	if bz == nil {
		return types.PoolInfo{}, types.ErrInvalidPoolAddress.Wrapf("pool %s is not registered for %s", pool, swapType)
	}
	var info types.PoolInfo
	if err := json.Unmarshal(bz, &info); err != nil {
		return types.PoolInfo{}, err
	}
	return info, nil
}

// SetPoolInfo persists a pool enablement record.
func (k Keeper) SetPoolInfo(ctx context.Context, info types.PoolInfo) error {
	bz, err := json.Marshal(info)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.GetPoolInfoKey(info.SwapType, info.PoolAddress), bz)
	return nil
}

// AllPoolInfos returns every pool record, for genesis export.
func (k Keeper) AllPoolInfos(ctx context.Context) []types.PoolInfo {
	var pools []types.PoolInfo
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.PoolInfoKeyPrefix)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		var info types.PoolInfo
		if err := json.Unmarshal(iterator.Value(), &info); err != nil {
			continue
		}
		pools = append(pools, info)
	}
	return pools
}

// RegisterPool enables a pool account for a swap type. Operators and the
// authority may register pools; registering an existing pool is an error.
func (k Keeper) RegisterPool(ctx context.Context, caller string, swapType types.SwapType, pool string) error {
	registry, err := k.GetRegistry(ctx)
	if err != nil {
		return err
	}
	if !registry.IsAuthority(caller) && !registry.IsOperator(caller) {
		return types.ErrInvalidOperator.Wrapf("%s may not register pools", caller)
	}
	if !registry.IsSupported(swapType) {
		return types.ErrSwapNotSupported.Wrapf("swap type %s", swapType)
	}
	if k.getStore(ctx).Has(types.GetPoolInfoKey(swapType, pool)) {
		return types.ErrPoolAlreadyExists.Wrap(pool)
	}
	return k.SetPoolInfo(ctx, types.PoolInfo{
		SwapType:    swapType,
		PoolAddress: pool,
		Enabled:     true,
	})
}

// DisablePool marks a pool as disabled. The record stays so the pool cannot
// be silently re-registered by a different operator.
func (k Keeper) DisablePool(ctx context.Context, caller string, swapType types.SwapType, pool string) error {
	registry, err := k.GetRegistry(ctx)
	if err != nil {
		return err
	}
	if !registry.IsAuthority(caller) && !registry.IsOperator(caller) {
		return types.ErrInvalidOperator.Wrapf("%s may not disable pools", caller)
	}
	info, err := k.GetPoolInfo(ctx, swapType, pool)
	if err != nil {
		return err
	}
	info.Enabled = false
	return k.SetPoolInfo(ctx, info)
}

// poolUsable reports whether a pool account may back a route step of the
// given swap type: it must be registered, enabled, and pass the adapter's
// allowlist when the registry carries one.
func (k Keeper) poolUsable(ctx context.Context, registry types.Registry, swapType types.SwapType, pool string) error {
	entry, ok := registry.AdapterFor(swapType)
	if !ok {
		return types.ErrSwapNotSupported.Wrapf("swap type %s", swapType)
	}
	if !entry.PoolAllowed(pool) {
		return types.ErrInvalidPoolAddress.Wrapf("pool %s is not allowlisted for %s", pool, entry.Name)
	}
	info, err := k.GetPoolInfo(ctx, swapType, pool)
	if err != nil {
		return err
	}
	if !info.Enabled {
		return types.ErrInvalidPoolAddress.Wrapf("pool %s is disabled", pool)
	}
	return nil
}
