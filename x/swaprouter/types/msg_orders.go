package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgCreateLimitOrder{}
	_ sdk.Msg = &MsgExecuteLimitOrder{}
	_ sdk.Msg = &MsgExecuteLimitOrderWithAggregator{}
	_ sdk.Msg = &MsgCancelLimitOrder{}
	_ sdk.Msg = &MsgCancelExpiredLimitOrder{}
	_ sdk.Msg = &MsgCloseLimitOrder{}
)

// MsgCreateLimitOrder escrows funds against a trigger-price condition.
type MsgCreateLimitOrder struct {
	Creator                string      `json:"creator"`
	Nonce                  uint64      `json:"nonce"`
	InputMint              string      `json:"input_mint"`
	OutputMint             string      `json:"output_mint"`
	UserSourceAccount      string      `json:"user_source_account"`
	UserDestinationAccount string      `json:"user_destination_account"`
	InputAmount            math.Int    `json:"input_amount"`
	MinOutputAmount        math.Int    `json:"min_output_amount"`
	TriggerPriceBps        uint64      `json:"trigger_price_bps"`
	TriggerType            TriggerType `json:"trigger_type"`
	Expiry                 int64       `json:"expiry"`
	SlippageBps            uint64      `json:"slippage_bps"`
}

// Route implements the sdk.Msg interface
func (msg MsgCreateLimitOrder) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgCreateLimitOrder) Type() string { return "create_limit_order" }

// GetSigners implements the sdk.Msg interface
func (msg MsgCreateLimitOrder) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCreateLimitOrder) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCreateLimitOrder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidCreator, "invalid creator address: %s", err)
	}
	if msg.InputMint == "" || msg.OutputMint == "" {
		return sdkerrors.Wrap(ErrInvalidMint, "mints cannot be empty")
	}
	if msg.InputMint == msg.OutputMint {
		return sdkerrors.Wrap(ErrInvalidMint, "input and output mint must differ")
	}
	if msg.InputAmount.IsNil() || !msg.InputAmount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "input amount must be positive")
	}
	if msg.MinOutputAmount.IsNil() || !msg.MinOutputAmount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min output amount must be positive")
	}
	if err := ValidateTrigger(msg.TriggerType, msg.TriggerPriceBps); err != nil {
		return err
	}
	if msg.SlippageBps > MaxOrderSlippageBps {
		return sdkerrors.Wrapf(ErrInvalidSlippage, "slippage %d exceeds %d bps", msg.SlippageBps, MaxOrderSlippageBps)
	}
	return nil
}

// MsgExecuteLimitOrder executes an open order through the in-repo route
// machinery once the trigger condition holds.
type MsgExecuteLimitOrder struct {
	Operator                string          `json:"operator"`
	OrderAddress            string          `json:"order_address"`
	VaultDestinationAccount string          `json:"vault_destination_account"`
	RoutePlan               []RoutePlanStep `json:"route_plan"`
	AuxAccounts             []string        `json:"aux_accounts"`
	QuotedOutAmount         math.Int        `json:"quoted_out_amount"`
	PlatformFeeBps          uint64          `json:"platform_fee_bps"`
}

// Route implements the sdk.Msg interface
func (msg MsgExecuteLimitOrder) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgExecuteLimitOrder) Type() string { return "execute_limit_order" }

// GetSigners implements the sdk.Msg interface
func (msg MsgExecuteLimitOrder) GetSigners() []sdk.AccAddress {
	operator, err := sdk.AccAddressFromBech32(msg.Operator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{operator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgExecuteLimitOrder) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgExecuteLimitOrder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Operator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidOperator, "invalid operator address: %s", err)
	}
	if msg.OrderAddress == "" {
		return sdkerrors.Wrap(ErrOrderNotFound, "order address cannot be empty")
	}
	if len(msg.RoutePlan) == 0 {
		return ErrEmptyRoute
	}
	for i, step := range msg.RoutePlan {
		if err := step.Validate(); err != nil {
			return sdkerrors.Wrapf(err, "step %d", i)
		}
		if int(step.InputIndex) >= len(msg.AuxAccounts) || int(step.OutputIndex) >= len(msg.AuxAccounts) {
			return ErrInvalidAccountIndex.Wrapf("step %d references index beyond %d aux accounts", i, len(msg.AuxAccounts))
		}
	}
	if msg.QuotedOutAmount.IsNil() || !msg.QuotedOutAmount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "quoted out amount must be positive")
	}
	if msg.PlatformFeeBps > BpsDenominator {
		return sdkerrors.Wrapf(ErrInvalidPlatformFee, "platform fee %d exceeds %d bps", msg.PlatformFeeBps, BpsDenominator)
	}
	return nil
}

// MsgExecuteLimitOrderWithAggregator delegates the swap leg to an
// allow-listed external aggregator program instead of the in-repo adapters.
// The first two aux accounts must be the order's own input vault and the
// vault-owned destination escrow, in that order.
type MsgExecuteLimitOrderWithAggregator struct {
	Operator        string   `json:"operator"`
	OrderAddress    string   `json:"order_address"`
	AggregatorProgram string `json:"aggregator_program"`
	InstructionData []byte   `json:"instruction_data"`
	AuxAccounts     []string `json:"aux_accounts"`
	QuotedOutAmount math.Int `json:"quoted_out_amount"`
	PlatformFeeBps  uint64   `json:"platform_fee_bps"`
}

// AggregatorVaultAccounts is the number of leading aux positions the core
// pins to its own accounts on the aggregator path.
const AggregatorVaultAccounts = 2

// Route implements the sdk.Msg interface
func (msg MsgExecuteLimitOrderWithAggregator) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgExecuteLimitOrderWithAggregator) Type() string { return "execute_limit_order_with_aggregator" }

// GetSigners implements the sdk.Msg interface
func (msg MsgExecuteLimitOrderWithAggregator) GetSigners() []sdk.AccAddress {
	operator, err := sdk.AccAddressFromBech32(msg.Operator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{operator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgExecuteLimitOrderWithAggregator) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgExecuteLimitOrderWithAggregator) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Operator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidOperator, "invalid operator address: %s", err)
	}
	if msg.OrderAddress == "" {
		return sdkerrors.Wrap(ErrOrderNotFound, "order address cannot be empty")
	}
	if msg.AggregatorProgram == "" {
		return sdkerrors.Wrap(ErrAggregatorNotAllowed, "aggregator program cannot be empty")
	}
	if len(msg.InstructionData) == 0 {
		return sdkerrors.Wrap(ErrInvalidCalculation, "instruction payload cannot be empty")
	}
	if len(msg.AuxAccounts) < AggregatorVaultAccounts {
		return ErrNotEnoughAccountKeys.Wrapf("aggregator path needs at least %d aux accounts", AggregatorVaultAccounts)
	}
	if msg.QuotedOutAmount.IsNil() || !msg.QuotedOutAmount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "quoted out amount must be positive")
	}
	if msg.PlatformFeeBps > BpsDenominator {
		return sdkerrors.Wrapf(ErrInvalidPlatformFee, "platform fee %d exceeds %d bps", msg.PlatformFeeBps, BpsDenominator)
	}
	return nil
}

// MsgCancelLimitOrder lets the creator reclaim an open order's escrow.
type MsgCancelLimitOrder struct {
	Creator      string `json:"creator"`
	OrderAddress string `json:"order_address"`
}

// Route implements the sdk.Msg interface
func (msg MsgCancelLimitOrder) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgCancelLimitOrder) Type() string { return "cancel_limit_order" }

// GetSigners implements the sdk.Msg interface
func (msg MsgCancelLimitOrder) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCancelLimitOrder) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCancelLimitOrder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidCreator, "invalid creator address: %s", err)
	}
	if msg.OrderAddress == "" {
		return sdkerrors.Wrap(ErrOrderNotFound, "order address cannot be empty")
	}
	return nil
}

// MsgCancelExpiredLimitOrder lets any registered operator reclaim an expired
// order on the creator's behalf; record rent compensates the operator.
type MsgCancelExpiredLimitOrder struct {
	Operator     string `json:"operator"`
	OrderAddress string `json:"order_address"`
}

// Route implements the sdk.Msg interface
func (msg MsgCancelExpiredLimitOrder) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgCancelExpiredLimitOrder) Type() string { return "cancel_expired_limit_order" }

// GetSigners implements the sdk.Msg interface
func (msg MsgCancelExpiredLimitOrder) GetSigners() []sdk.AccAddress {
	operator, err := sdk.AccAddressFromBech32(msg.Operator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{operator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCancelExpiredLimitOrder) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCancelExpiredLimitOrder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Operator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidOperator, "invalid operator address: %s", err)
	}
	if msg.OrderAddress == "" {
		return sdkerrors.Wrap(ErrOrderNotFound, "order address cannot be empty")
	}
	return nil
}

// MsgCloseLimitOrder removes a terminal order record and reclaims its escrow
// account.
type MsgCloseLimitOrder struct {
	Operator     string `json:"operator"`
	OrderAddress string `json:"order_address"`
}

// Route implements the sdk.Msg interface
func (msg MsgCloseLimitOrder) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgCloseLimitOrder) Type() string { return "close_limit_order" }

// GetSigners implements the sdk.Msg interface
func (msg MsgCloseLimitOrder) GetSigners() []sdk.AccAddress {
	operator, err := sdk.AccAddressFromBech32(msg.Operator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{operator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCloseLimitOrder) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCloseLimitOrder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Operator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidOperator, "invalid operator address: %s", err)
	}
	if msg.OrderAddress == "" {
		return sdkerrors.Wrap(ErrOrderNotFound, "order address cannot be empty")
	}
	return nil
}
