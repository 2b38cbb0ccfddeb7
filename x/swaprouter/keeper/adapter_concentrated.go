package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/strait-labs/strait/x/swaprouter/types"
)

// concentratedAdapter drives a concentrated-liquidity venue. Its account
// window is pool, oracle, three tick arrays, reserve A, reserve B.
type concentratedAdapter struct {
	k Keeper
}

const concentratedAccountCount = 7

func (concentratedAdapter) Name() string { return types.SwapTypeConcentrated.String() }

func (concentratedAdapter) AccountCount() int { return concentratedAccountCount }

func (a concentratedAdapter) ValidateAccounts(ctx context.Context, registry types.Registry, aux []string, start int) error {
	window, err := auxWindow(aux, start, concentratedAccountCount)
	if err != nil {
		return err
	}
	if err := checkNoZeroAddresses(window); err != nil {
		return err
	}
	pool := window[0]
	if err := a.k.poolUsable(ctx, registry, types.SwapTypeConcentrated, pool); err != nil {
		return err
	}
	return a.k.checkVaultMints(ctx, window[5], window[6])
}

func (a concentratedAdapter) ExecuteSwap(ctx context.Context, amount math.Int, aux []string, start int, inputAccount, outputAccount string) (math.Int, error) {
	window, err := auxWindow(aux, start, concentratedAccountCount)
	if err != nil {
		return math.Int{}, err
	}

	accounts := append(append([]string{}, window...), inputAccount, outputAccount)
	if err := a.k.invokeVenue(ctx, a.Name(), accounts, amount, inputAccount, outputAccount, window[0]); err != nil {
		return math.Int{}, err
	}

	// This venue reports through the absolute post-call balance of the
	// output account rather than a delta. Callers must route it into a
	// dedicated account or the reading overstates the realized output.
	out := a.k.balanceOf(ctx, outputAccount)
	if out.IsNegative() {
		return math.Int{}, types.ErrInvalidCalculation.Wrapf("negative balance on %s", outputAccount)
	}
	return out, nil
}

func (a concentratedAdapter) ValidateCPI(programID string) error {
	return validateCanonicalProgram(a.Name(), programID)
}
