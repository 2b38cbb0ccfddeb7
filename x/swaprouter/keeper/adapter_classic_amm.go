package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/strait-labs/strait/x/swaprouter/types"
)

// classicAMMAdapter drives a constant-product venue. Its account window is
// pool, reserve A, reserve B, pool authority.
type classicAMMAdapter struct {
	k Keeper
}

const classicAMMAccountCount = 4

func (classicAMMAdapter) Name() string { return types.SwapTypeClassicAMM.String() }

func (classicAMMAdapter) AccountCount() int { return classicAMMAccountCount }

func (a classicAMMAdapter) ValidateAccounts(ctx context.Context, registry types.Registry, aux []string, start int) error {
	window, err := auxWindow(aux, start, classicAMMAccountCount)
	if err != nil {
		return err
	}
	if err := checkNoZeroAddresses(window); err != nil {
		return err
	}
	pool := window[0]
	if err := a.k.poolUsable(ctx, registry, types.SwapTypeClassicAMM, pool); err != nil {
		return err
	}
	return a.k.checkVaultMints(ctx, window[1], window[2])
}

func (a classicAMMAdapter) ExecuteSwap(ctx context.Context, amount math.Int, aux []string, start int, inputAccount, outputAccount string) (math.Int, error) {
	window, err := auxWindow(aux, start, classicAMMAccountCount)
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

func (a classicAMMAdapter) ValidateCPI(programID string) error {
	return validateCanonicalProgram(a.Name(), programID)
}
