package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/strait-labs/strait/x/swaprouter/types"
)

// binLiquidityAdapter drives a bin-liquidity venue. Its account window is
// pool, five bin arrays, oracle, reserve A, reserve B, event authority, host
// fee account, and two reserved slots.
type binLiquidityAdapter struct {
	k Keeper
}

const (
	binLiquidityAccountCount = 13
	// The trailing reserved slots may legitimately be zero addresses.
	binLiquidityReservedSlots = 2
)

func (binLiquidityAdapter) Name() string { return types.SwapTypeBinLiquidity.String() }

func (binLiquidityAdapter) AccountCount() int { return binLiquidityAccountCount }

func (a binLiquidityAdapter) ValidateAccounts(ctx context.Context, registry types.Registry, aux []string, start int) error {
	window, err := auxWindow(aux, start, binLiquidityAccountCount)
	if err != nil {
		return err
	}
	if err := checkNoZeroAddresses(window[:binLiquidityAccountCount-binLiquidityReservedSlots]); err != nil {
		return err
	}
	pool := window[0]
	if err := a.k.poolUsable(ctx, registry, types.SwapTypeBinLiquidity, pool); err != nil {
		return err
	}
	return a.k.checkVaultMints(ctx, window[7], window[8])
}

func (a binLiquidityAdapter) ExecuteSwap(ctx context.Context, amount math.Int, aux []string, start int, inputAccount, outputAccount string) (math.Int, error) {
	window, err := auxWindow(aux, start, binLiquidityAccountCount)
	if err != nil {
		return math.Int{}, err
	}

	before := a.k.balanceOf(ctx, outputAccount)
	accounts := append(append([]string{}, window...), inputAccount, outputAccount)
	if err := a.k.invokeVenue(ctx, a.Name(), accounts, amount, inputAccount, outputAccount, window[0]); err != nil {
		return math.Int{}, err
	}
	after := a.k.balanceOf(ctx, outputAccount)

	out := after.Sub(before)
	if out.IsNegative() {
		return math.Int{}, types.ErrInvalidCalculation.Wrapf("venue drained output account %s", outputAccount)
	}
	return out, nil
}

func (a binLiquidityAdapter) ValidateCPI(programID string) error {
	return validateCanonicalProgram(a.Name(), programID)
}
