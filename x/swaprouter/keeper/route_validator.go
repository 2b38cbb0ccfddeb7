package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/strait-labs/strait/x/swaprouter/types"
)

// routeContext carries the per-call inputs shared by the validator and the
// executor so both walk the plan with identical bookkeeping.
type routeContext struct {
	registry        types.Registry
	sourceMint      string
	destinationMint string
	plan            []types.RoutePlanStep
	aux             []string
	inAmount        math.Int
}

// windowStart returns the aux offset of step i's venue account window. The
// windows are consumed sequentially from the front of the aux list; the
// per-step input/output indices point past them at token accounts.
func (k Keeper) windowStart(plan []types.RoutePlanStep, i int) (int, error) {
	start := 0
	for j := 0; j < i; j++ {
		adapter, err := k.adapterFor(plan[j].SwapType)
		if err != nil {
			return 0, err
		}
		start += adapter.AccountCount()
	}
	return start, nil
}

// ValidateRoute statically verifies a route plan before any funds move. It is
// pure with respect to state: re-running it with the same inputs and store
// contents yields the same verdict.
func (k Keeper) ValidateRoute(
	ctx context.Context,
	registry types.Registry,
	sourceTokenEngine, destinationTokenEngine string,
	sourceMint, destinationMint string,
	plan []types.RoutePlanStep,
	aux []string,
	inAmount math.Int,
) error {
	if len(plan) == 0 {
		return types.ErrEmptyRoute
	}

	// Engine references must be recognized and match each mint's declared
	// engine.
	if !types.IsRecognizedTokenEngine(sourceTokenEngine) || !types.IsRecognizedTokenEngine(destinationTokenEngine) {
		return types.ErrInvalidCpiInterface.Wrap("unrecognized token engine reference")
	}
	srcMintInfo, err := k.GetMintInfo(ctx, sourceMint)
	if err != nil {
		return err
	}
	if srcMintInfo.TokenEngine != sourceTokenEngine {
		return types.ErrInvalidMint.Wrapf("source mint %s uses engine %s, call declares %s", sourceMint, srcMintInfo.TokenEngine, sourceTokenEngine)
	}
	dstMintInfo, err := k.GetMintInfo(ctx, destinationMint)
	if err != nil {
		return err
	}
	if dstMintInfo.TokenEngine != destinationTokenEngine {
		return types.ErrInvalidMint.Wrapf("destination mint %s uses engine %s, call declares %s", destinationMint, dstMintInfo.TokenEngine, destinationTokenEngine)
	}

	if len(aux) < types.MinAuxAccountsPerStep*len(plan) {
		return types.ErrNotEnoughAccountKeys.Wrapf("%d aux accounts for %d steps", len(aux), len(plan))
	}

	// The route entry vault is located implicitly: the first aux token
	// account holding the source mint.
	if _, err := k.routeEntryVault(ctx, aux, sourceMint); err != nil {
		return err
	}

	if err := k.validateSplitGroups(plan); err != nil {
		return err
	}

	current := inAmount
	outputMints := make([]string, len(plan))
	for i, step := range plan {
		if err := step.Validate(); err != nil {
			return err
		}
		if int(step.InputIndex) >= len(aux) || int(step.OutputIndex) >= len(aux) {
			return types.ErrInvalidAccountIndex.Wrapf("step %d", i)
		}

		stepAmount, err := stepInputAmount(current, step.Percent)
		if err != nil {
			return err
		}
		if stepAmount.IsZero() {
			return types.ErrInvalidCalculation.Wrapf("step %d input rounds to zero", i)
		}

		// Multi-hop: when this step consumes an earlier step's output
		// account, the mint chain must be consistent.
		inputAccount := aux[step.InputIndex]
		for j := 0; j < i; j++ {
			if aux[plan[j].OutputIndex] != inputAccount {
				continue
			}
			account, err := k.GetTokenAccount(ctx, inputAccount)
			if err != nil {
				return types.ErrInvalidMultiHopRoute.Wrapf("step %d hop account %s", i, inputAccount)
			}
			if outputMints[j] != "" && account.Mint != outputMints[j] {
				return types.ErrInvalidMultiHopRoute.Wrapf("step %d expects mint %s, hop carries %s", i, outputMints[j], account.Mint)
			}
		}

		if !registry.IsSupported(step.SwapType) {
			return types.ErrSwapNotSupported.Wrapf("step %d swap type %s", i, step.SwapType)
		}
		adapter, err := k.adapterFor(step.SwapType)
		if err != nil {
			return err
		}
		programID, err := registry.ProgramIDFor(step.SwapType)
		if err != nil {
			return err
		}
		if err := adapter.ValidateCPI(programID); err != nil {
			return err
		}
		start, err := k.windowStart(plan, i)
		if err != nil {
			return err
		}
		if err := adapter.ValidateAccounts(ctx, registry, aux, start); err != nil {
			return err
		}

		outputAccount, err := k.GetTokenAccount(ctx, aux[step.OutputIndex])
		if err != nil {
			return err
		}
		outputMints[i] = outputAccount.Mint
	}

	// The plan must be able to produce the destination mint.
	for _, mint := range outputMints {
		if mint == destinationMint {
			return nil
		}
	}
	return types.ErrNoOutputProduced.Wrapf("no step outputs %s", destinationMint)
}

// routeEntryVault finds the implicit route entry vault: the first aux token
// account whose mint is the source mint.
func (k Keeper) routeEntryVault(ctx context.Context, aux []string, sourceMint string) (types.TokenAccount, error) {
	for _, addr := range aux {
		account, err := k.GetTokenAccount(ctx, addr)
		if err != nil {
			continue
		}
		if account.Mint == sourceMint {
			return account, nil
		}
	}
	return types.TokenAccount{}, types.ErrVaultNotFound.Wrapf("no aux account holds mint %s", sourceMint)
}

// validateSplitGroups checks partial-swap structure: steps sharing an input
// index with percent below 100 must span at least two venues and their
// percentages must sum to exactly 100.
func (k Keeper) validateSplitGroups(plan []types.RoutePlanStep) error {
	type group struct {
		sum    int
		venues map[types.SwapType]bool
	}
	groups := make(map[uint32]*group)
	for _, step := range plan {
		if step.Percent == 100 {
			continue
		}
		g, ok := groups[step.InputIndex]
		if !ok {
			g = &group{venues: make(map[types.SwapType]bool)}
			groups[step.InputIndex] = g
		}
		g.sum += int(step.Percent)
		g.venues[step.SwapType] = true
	}
	for index, g := range groups {
		if g.sum != 100 {
			return types.ErrInvalidPartialSwapPercent.Wrapf("input %d splits sum to %d", index, g.sum)
		}
		if len(g.venues) < 2 {
			return types.ErrInsufficientDexesForPartial.Wrapf("input %d split uses a single venue", index)
		}
	}
	return nil
}

// stepInputAmount derives one step's input: 100 percent passes the running
// amount through untouched, anything lower takes its floored share.
func stepInputAmount(current math.Int, percent uint8) (math.Int, error) {
	if percent == 100 {
		return current, nil
	}
	return percentOf(current, percent)
}
