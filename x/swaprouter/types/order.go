package types

import (
	"time"

	"cosmossdk.io/math"
)

// Basis-point fixed-point constants.
const (
	BpsDenominator = uint64(10_000)

	// MaxStopLossTriggerBps keeps 10000 - trigger from underflowing.
	MaxStopLossTriggerBps = uint64(10_000)

	// MaxTakeProfitTriggerBps caps take-profit deviation at 10x.
	MaxTakeProfitTriggerBps = uint64(100_000)

	// MaxOrderSlippageBps is the cap for adapter-routed executions.
	MaxOrderSlippageBps = uint64(1_000)

	// MaxAggregatorSlippageBps is the looser cap for the delegated
	// aggregator path.
	MaxAggregatorSlippageBps = uint64(10_000)
)

// TriggerType selects the direction of the trigger condition.
type TriggerType uint8

const (
	TriggerTypeUnspecified TriggerType = 0
	TriggerTakeProfit      TriggerType = 1
	TriggerStopLoss        TriggerType = 2
)

// String implements fmt.Stringer.
func (t TriggerType) String() string {
	switch t {
	case TriggerTakeProfit:
		return "take_profit"
	case TriggerStopLoss:
		return "stop_loss"
	default:
		return "unspecified"
	}
}

// Valid reports whether the trigger type is known.
func (t TriggerType) Valid() bool {
	return t == TriggerTakeProfit || t == TriggerStopLoss
}

// OrderStatus is the lifecycle state of a limit order.
//
// Transitions are one-directional:
//
//	Init → Open → {Filled, Cancelled} → closed (record removed)
//
// Init exists only for the combined route-and-create flow, between record
// creation and escrow funding.
type OrderStatus uint8

const (
	OrderStatusUnspecified OrderStatus = 0
	OrderStatusInit        OrderStatus = 1
	OrderStatusOpen        OrderStatus = 2
	OrderStatusFilled      OrderStatus = 3
	OrderStatusCancelled   OrderStatus = 4
)

// String implements fmt.Stringer.
func (s OrderStatus) String() string {
	switch s {
	case OrderStatusInit:
		return "init"
	case OrderStatusOpen:
		return "open"
	case OrderStatusFilled:
		return "filled"
	case OrderStatusCancelled:
		return "cancelled"
	default:
		return "unspecified"
	}
}

// IsTerminal reports whether the order may be closed.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusFilled || s == OrderStatusCancelled
}

// LimitOrder is the persistent resting-order record. Funds are escrowed in
// InputVault, a token account owned by the vault authority; the record holds
// a reference, never the funds themselves.
type LimitOrder struct {
	Address                string      `json:"address"`
	Creator                string      `json:"creator"`
	Nonce                  uint64      `json:"nonce"`
	InputMint              string      `json:"input_mint"`
	OutputMint             string      `json:"output_mint"`
	InputVault             string      `json:"input_vault"`
	UserSourceAccount      string      `json:"user_source_account"`
	UserDestinationAccount string      `json:"user_destination_account"`
	InputAmount            math.Int    `json:"input_amount"`
	MinOutputAmount        math.Int    `json:"min_output_amount"`
	TriggerPriceBps        uint64      `json:"trigger_price_bps"`
	TriggerType            TriggerType `json:"trigger_type"`
	Expiry                 time.Time   `json:"expiry"`
	Status                 OrderStatus `json:"status"`
	SlippageBps            uint64      `json:"slippage_bps"`
	CreatedAtHeight        int64       `json:"created_at_height"`
}

// ShouldExecute evaluates the trigger condition against an output amount.
//
// The comparison current*10000 vs minOutput*(10000±trigger) is done as an
// exact big-integer cross-multiplication, never through a divided ratio, so
// no rounding can move the boundary. Take-profit fires when current is at or
// above minOutput*(10000+trigger)/10000; stop-loss when it is at or below
// minOutput*(10000-trigger)/10000.
//
// Pure and deterministic: callers evaluate it twice, first against the quoted
// amount and again against the realized swap output, and execute only if both
// agree.
func ShouldExecute(triggerType TriggerType, triggerPriceBps uint64, minOutputAmount, currentOutputAmount math.Int) bool {
	if minOutputAmount.IsNil() || !minOutputAmount.IsPositive() {
		return false
	}
	if currentOutputAmount.IsNil() || currentOutputAmount.IsNegative() {
		return false
	}

	scaled := currentOutputAmount.Mul(math.NewIntFromUint64(BpsDenominator))

	switch triggerType {
	case TriggerTakeProfit:
		threshold := minOutputAmount.Mul(math.NewIntFromUint64(BpsDenominator + triggerPriceBps))
		return scaled.GTE(threshold)
	case TriggerStopLoss:
		if triggerPriceBps > MaxStopLossTriggerBps {
			return false
		}
		threshold := minOutputAmount.Mul(math.NewIntFromUint64(BpsDenominator - triggerPriceBps))
		return scaled.LTE(threshold)
	default:
		return false
	}
}

// ShouldExecute evaluates the order's own trigger.
func (o LimitOrder) ShouldExecute(currentOutputAmount math.Int) bool {
	return ShouldExecute(o.TriggerType, o.TriggerPriceBps, o.MinOutputAmount, currentOutputAmount)
}

// ValidateTrigger checks the trigger parameters supplied at creation.
func ValidateTrigger(triggerType TriggerType, triggerPriceBps uint64) error {
	if !triggerType.Valid() {
		return ErrInvalidTriggerPrice.Wrapf("unknown trigger type %d", triggerType)
	}
	if triggerPriceBps == 0 {
		return ErrInvalidTriggerPrice.Wrap("trigger price must be positive")
	}
	switch triggerType {
	case TriggerStopLoss:
		if triggerPriceBps > MaxStopLossTriggerBps {
			return ErrInvalidTriggerPrice.Wrapf("stop-loss trigger %d exceeds %d bps", triggerPriceBps, MaxStopLossTriggerBps)
		}
	case TriggerTakeProfit:
		if triggerPriceBps > MaxTakeProfitTriggerBps {
			return ErrInvalidTriggerPrice.Wrapf("take-profit trigger %d exceeds %d bps", triggerPriceBps, MaxTakeProfitTriggerBps)
		}
	}
	return nil
}
