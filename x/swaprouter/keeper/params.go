package keeper

import (
	"context"
	"encoding/json"

	"github.com/strait-labs/strait/x/swaprouter/types"
)

// GetParams returns the module parameters, falling back to defaults when the
// store has never been written.
func (k Keeper) GetParams(ctx context.Context) types.Params {
	bz := k.getStore(ctx).Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}
	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.DefaultParams()
	}
	return params
}

// SetParams validates and persists the module parameters.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	bz, err := json.Marshal(params)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.ParamsKey, bz)
	return nil
}

// checkRouteLimits enforces the parameterized caps on a route-carrying call.
func (k Keeper) checkRouteLimits(ctx context.Context, steps, auxAccounts int, slippageBps, feeBps uint64) error {
	params := k.GetParams(ctx)
	if steps > int(params.MaxRouteSteps) {
		return types.ErrInvalidAccountIndex.Wrapf("%d steps exceed the %d step limit", steps, params.MaxRouteSteps)
	}
	if auxAccounts > int(params.MaxAuxAccounts) {
		return types.ErrNotEnoughAccountKeys.Wrapf("%d aux accounts exceed the %d account limit", auxAccounts, params.MaxAuxAccounts)
	}
	if slippageBps > params.MaxRouteSlippageBps {
		return types.ErrInvalidSlippage.Wrapf("%d bps exceeds the %d bps cap", slippageBps, params.MaxRouteSlippageBps)
	}
	if feeBps > params.MaxPlatformFeeBps {
		return types.ErrInvalidPlatformFee.Wrapf("%d bps exceeds the %d bps cap", feeBps, params.MaxPlatformFeeBps)
	}
	return nil
}
