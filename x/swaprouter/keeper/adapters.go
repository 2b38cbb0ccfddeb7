package keeper

import (
	"context"
	"encoding/json"

	"cosmossdk.io/math"

	"github.com/strait-labs/strait/x/swaprouter/types"
)

// dexAdapter is the per-venue execution strategy. The set of implementations
// is closed; adapterFor is the only dispatch point.
type dexAdapter interface {
	// Name is the canonical venue name the adapter's program address is
	// derived from.
	Name() string

	// AccountCount is the fixed number of aux accounts one step on this
	// venue consumes, starting at the step's window offset.
	AccountCount() int

	// ValidateAccounts checks the step's account window without moving
	// funds: window length, pool enablement, zero addresses, mint engines.
	ValidateAccounts(ctx context.Context, registry types.Registry, aux []string, start int) error

	// ExecuteSwap invokes the venue with amount drawn from inputAccount and
	// returns the realized output credited to outputAccount.
	ExecuteSwap(ctx context.Context, amount math.Int, aux []string, start int, inputAccount, outputAccount string) (math.Int, error)

	// ValidateCPI checks the registry-configured program address against the
	// adapter's own canonical derivation.
	ValidateCPI(programID string) error
}

// adapterFor resolves a swap type to its adapter. Unknown tags are rejected
// here and nowhere else.
func (k Keeper) adapterFor(swapType types.SwapType) (dexAdapter, error) {
	switch swapType {
	case types.SwapTypeClassicAMM:
		return classicAMMAdapter{k: k}, nil
	case types.SwapTypeConcentrated:
		return concentratedAdapter{k: k}, nil
	case types.SwapTypeBinLiquidity:
		return binLiquidityAdapter{k: k}, nil
	default:
		return nil, types.ErrSwapNotSupported.Wrapf("swap type %d", swapType)
	}
}

// auxWindow bounds-checks and returns the count accounts starting at start.
func auxWindow(aux []string, start, count int) ([]string, error) {
	if start < 0 || start+count > len(aux) {
		return nil, types.ErrNotEnoughAccountKeys.Wrapf("need accounts [%d,%d), have %d", start, start+count, len(aux))
	}
	return aux[start : start+count], nil
}

// checkNoZeroAddresses rejects windows containing absent or all-zero entries.
func checkNoZeroAddresses(window []string) error {
	for i, addr := range window {
		if types.IsZeroAddress(addr) {
			return types.ErrInvalidAccountIndex.Wrapf("window slot %d is a zero address", i)
		}
	}
	return nil
}

// checkVaultMints verifies the venue's two reserve accounts exist and carry
// mints with recognized token engines.
func (k Keeper) checkVaultMints(ctx context.Context, vaultA, vaultB string) error {
	for _, addr := range []string{vaultA, vaultB} {
		account, err := k.GetTokenAccount(ctx, addr)
		if err != nil {
			return err
		}
		mint, err := k.GetMintInfo(ctx, account.Mint)
		if err != nil {
			return err
		}
		if !types.IsRecognizedTokenEngine(mint.TokenEngine) {
			return types.ErrInvalidTokenEngine.Wrapf("mint %s", mint.Address)
		}
	}
	return nil
}

// venuePayload is the serialized instruction body adapters hand to a venue.
type venuePayload struct {
	Venue         string `json:"venue"`
	Amount        string `json:"amount"`
	InputAccount  string `json:"input_account"`
	OutputAccount string `json:"output_account"`
	Pool          string `json:"pool"`
}

// invokeVenue dispatches an opaque call to the venue program registered for
// the adapter's canonical address. The vault authority signs, so the venue's
// debits against escrow accounts are authorized.
func (k Keeper) invokeVenue(ctx context.Context, venueName string, accounts []string, amount math.Int, inputAccount, outputAccount, pool string) error {
	programID := types.VenueProgramAddress(venueName).String()
	invoker, ok := k.venueFor(programID)
	if !ok {
		return types.ErrInvalidCpiInterface.Wrapf("no invoker wired for venue %s", venueName)
	}
	data, err := json.Marshal(venuePayload{
		Venue:         venueName,
		Amount:        amount.String(),
		InputAccount:  inputAccount,
		OutputAccount: outputAccount,
		Pool:          pool,
	})
	if err != nil {
		return err
	}
	vault, err := k.GetVaultAuthority(ctx)
	if err != nil {
		return err
	}
	return invoker.Invoke(ctx, types.VenueCall{
		ProgramID: programID,
		Accounts:  accounts,
		Data:      data,
		Signer:    vault.Authority,
	})
}

// balanceOf reads a token account balance, returning zero for missing
// accounts so adapters can compute deltas around venue calls.
func (k Keeper) balanceOf(ctx context.Context, addr string) math.Int {
	account, err := k.GetTokenAccount(ctx, addr)
	if err != nil {
		return math.ZeroInt()
	}
	return account.Balance
}

// validateCanonicalProgram is the shared ValidateCPI body: the configured
// program must equal the venue-name derivation the adapter hard-codes.
func validateCanonicalProgram(venueName, programID string) error {
	canonical := types.VenueProgramAddress(venueName).String()
	if programID != canonical {
		return types.ErrInvalidCpiInterface.Wrapf("program %s is not the canonical %s venue", programID, venueName)
	}
	return nil
}
