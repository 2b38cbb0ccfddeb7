package types

import (
	"cosmossdk.io/math"
)

// SwapType tags the venue a route step executes on. The set is closed: every
// tag resolves to exactly one adapter through a single switch in the keeper.
type SwapType uint8

const (
	// SwapTypeUnspecified is the zero value and never valid in a plan.
	SwapTypeUnspecified SwapType = 0

	// SwapTypeClassicAMM is a constant-product venue expecting
	// pool + 3 bookkeeping accounts.
	SwapTypeClassicAMM SwapType = 1

	// SwapTypeConcentrated is a concentrated-liquidity venue expecting
	// 7 oracle/tick-range accounts.
	SwapTypeConcentrated SwapType = 2

	// SwapTypeBinLiquidity is a bin-liquidity venue expecting 13 accounts
	// including multiple bin-array slices.
	SwapTypeBinLiquidity SwapType = 3
)

// String implements fmt.Stringer.
func (st SwapType) String() string {
	switch st {
	case SwapTypeClassicAMM:
		return "classic_amm"
	case SwapTypeConcentrated:
		return "concentrated"
	case SwapTypeBinLiquidity:
		return "bin_liquidity"
	default:
		return "unspecified"
	}
}

// Valid reports whether the tag names a known venue kind.
func (st SwapType) Valid() bool {
	return st == SwapTypeClassicAMM || st == SwapTypeConcentrated || st == SwapTypeBinLiquidity
}

// RoutePlanStep is one caller-supplied step of a route plan. Indices refer to
// positions in the flat auxiliary-account list submitted with the call.
type RoutePlanStep struct {
	SwapType    SwapType `json:"swap_type"`
	Percent     uint8    `json:"percent"`
	InputIndex  uint32   `json:"input_index"`
	OutputIndex uint32   `json:"output_index"`
}

// Validate performs the stateless checks on a single step.
func (s RoutePlanStep) Validate() error {
	if !s.SwapType.Valid() {
		return ErrSwapNotSupported.Wrapf("unknown swap type %d", s.SwapType)
	}
	if s.Percent == 0 || s.Percent > 100 {
		return ErrInvalidCalculation.Wrapf("percent must be in (0,100], got %d", s.Percent)
	}
	return nil
}

// SwapEventData records the realized amounts of one executed route step for
// off-chain observability.
type SwapEventData struct {
	SwapType     SwapType `json:"swap_type"`
	InputMint    string   `json:"input_mint"`
	InputAmount  math.Int `json:"input_amount"`
	OutputMint   string   `json:"output_mint"`
	OutputAmount math.Int `json:"output_amount"`
}

// MinAuxAccountsPerStep is the cheap structural lower bound enforced before
// per-adapter shape validation: every step needs at least a pool record, the
// pool account, and one venue-specific slot.
const MinAuxAccountsPerStep = 3
