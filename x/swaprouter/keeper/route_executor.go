package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/strait-labs/strait/x/swaprouter/types"
)

// ExecuteRoute walks an already-validated plan, moving funds. For each step
// it derives the input share, dispatches the matching adapter, and records
// the realized amounts. Outputs landing in the destination mint accumulate
// into the total; intermediate hop outputs feed the running amount forward.
//
// Callers stage this on a cache context: any step failure must discard every
// mutation made by earlier steps.
func (k Keeper) ExecuteRoute(
	ctx context.Context,
	registry types.Registry,
	sourceMint, destinationMint string,
	destinationAccount string,
	plan []types.RoutePlanStep,
	aux []string,
	inAmount math.Int,
) (math.Int, []types.SwapEventData, error) {
	total := math.ZeroInt()
	current := inAmount
	events := make([]types.SwapEventData, 0, len(plan))

	for i, step := range plan {
		stepAmount, err := stepInputAmount(current, step.Percent)
		if err != nil {
			return math.Int{}, nil, err
		}
		if stepAmount.IsZero() {
			return math.Int{}, nil, types.ErrInvalidCalculation.Wrapf("step %d input rounds to zero", i)
		}

		inputAccount := aux[step.InputIndex]
		outputAccount := aux[step.OutputIndex]
		if i == len(plan)-1 {
			outputAccount = destinationAccount
		}

		inputMint := sourceMint
		if acc, err := k.GetTokenAccount(ctx, inputAccount); err == nil {
			inputMint = acc.Mint
		}

		adapter, err := k.adapterFor(step.SwapType)
		if err != nil {
			return math.Int{}, nil, err
		}
		start, err := k.windowStart(plan, i)
		if err != nil {
			return math.Int{}, nil, err
		}
		out, err := adapter.ExecuteSwap(ctx, stepAmount, aux, start, inputAccount, outputAccount)
		if err != nil {
			GetRouterMetrics().AdapterFailures.WithLabelValues(step.SwapType.String()).Inc()
			return math.Int{}, nil, err
		}

		// The final step pays into the destination account, so its mint is
		// the destination mint. Intermediate steps report whatever mint
		// their output account carries.
		outputMint := destinationMint
		if i < len(plan)-1 {
			acc, err := k.GetTokenAccount(ctx, outputAccount)
			if err != nil {
				return math.Int{}, nil, err
			}
			outputMint = acc.Mint
		}

		if outputMint == destinationMint {
			total = total.Add(out)
		} else {
			current = out
		}

		events = append(events, types.SwapEventData{
			SwapType:     step.SwapType,
			InputMint:    inputMint,
			InputAmount:  stepAmount,
			OutputMint:   outputMint,
			OutputAmount: out,
		})
	}

	if total.IsZero() {
		return math.Int{}, nil, types.ErrNoOutputProduced
	}
	return total, events, nil
}
