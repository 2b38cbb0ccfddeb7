package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgRoute{}
	_ sdk.Msg = &MsgRouteAndCreateOrder{}
)

// MsgRoute executes a multi-step, multi-hop, percentage-split swap route in
// a single atomic call.
type MsgRoute struct {
	Caller                 string          `json:"caller"`
	SourceMint             string          `json:"source_mint"`
	DestinationMint        string          `json:"destination_mint"`
	SourceTokenEngine      string          `json:"source_token_engine"`
	DestinationTokenEngine string          `json:"destination_token_engine"`
	UserSourceAccount      string          `json:"user_source_account"`
	UserDestinationAccount string          `json:"user_destination_account"`
	VaultDestinationAccount string         `json:"vault_destination_account"`
	RoutePlan              []RoutePlanStep `json:"route_plan"`
	AuxAccounts            []string        `json:"aux_accounts"`
	InAmount               math.Int        `json:"in_amount"`
	QuotedOutAmount        math.Int        `json:"quoted_out_amount"`
	SlippageBps            uint64          `json:"slippage_bps"`
	PlatformFeeBps         uint64          `json:"platform_fee_bps"`
}

// Route implements the sdk.Msg interface
func (msg MsgRoute) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgRoute) Type() string { return "route" }

// GetSigners implements the sdk.Msg interface
func (msg MsgRoute) GetSigners() []sdk.AccAddress {
	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{caller}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRoute) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRoute) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Caller); err != nil {
		return sdkerrors.Wrapf(ErrInvalidCreator, "invalid caller address: %s", err)
	}
	return validateRouteFields(msg.RoutePlan, msg.AuxAccounts, msg.InAmount, msg.QuotedOutAmount, msg.SlippageBps, msg.PlatformFeeBps)
}

// MsgRouteAndCreateOrder routes in_amount into a freshly created limit
// order's escrow: the route's destination mint becomes the order's input
// mint, and the order opens with the route's realized output escrowed.
type MsgRouteAndCreateOrder struct {
	Caller                 string          `json:"caller"`
	Nonce                  uint64          `json:"nonce"`
	SourceMint             string          `json:"source_mint"`
	DestinationMint        string          `json:"destination_mint"`
	SourceTokenEngine      string          `json:"source_token_engine"`
	DestinationTokenEngine string          `json:"destination_token_engine"`
	UserSourceAccount      string          `json:"user_source_account"`
	RoutePlan              []RoutePlanStep `json:"route_plan"`
	AuxAccounts            []string        `json:"aux_accounts"`
	InAmount               math.Int        `json:"in_amount"`
	QuotedOutAmount        math.Int        `json:"quoted_out_amount"`
	SlippageBps            uint64          `json:"slippage_bps"`
	PlatformFeeBps         uint64          `json:"platform_fee_bps"`

	// Order parameters; the order's output mint and destination account
	// describe where the eventual execution pays out.
	OrderOutputMint         string      `json:"order_output_mint"`
	OrderDestinationAccount string      `json:"order_destination_account"`
	OrderMinOutputAmount    math.Int    `json:"order_min_output_amount"`
	OrderTriggerPriceBps    uint64      `json:"order_trigger_price_bps"`
	OrderTriggerType        TriggerType `json:"order_trigger_type"`
	OrderExpiry             int64       `json:"order_expiry"`
	OrderSlippageBps        uint64      `json:"order_slippage_bps"`
}

// Route implements the sdk.Msg interface
func (msg MsgRouteAndCreateOrder) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgRouteAndCreateOrder) Type() string { return "route_and_create_order" }

// GetSigners implements the sdk.Msg interface
func (msg MsgRouteAndCreateOrder) GetSigners() []sdk.AccAddress {
	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{caller}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRouteAndCreateOrder) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRouteAndCreateOrder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Caller); err != nil {
		return sdkerrors.Wrapf(ErrInvalidCreator, "invalid caller address: %s", err)
	}
	if err := validateRouteFields(msg.RoutePlan, msg.AuxAccounts, msg.InAmount, msg.QuotedOutAmount, msg.SlippageBps, msg.PlatformFeeBps); err != nil {
		return err
	}
	if err := ValidateTrigger(msg.OrderTriggerType, msg.OrderTriggerPriceBps); err != nil {
		return err
	}
	if msg.OrderMinOutputAmount.IsNil() || !msg.OrderMinOutputAmount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "order min output amount must be positive")
	}
	if msg.OrderSlippageBps > MaxOrderSlippageBps {
		return sdkerrors.Wrapf(ErrInvalidSlippage, "order slippage %d exceeds %d bps", msg.OrderSlippageBps, MaxOrderSlippageBps)
	}
	return nil
}

// validateRouteFields holds the stateless checks shared by every
// route-carrying message.
func validateRouteFields(plan []RoutePlanStep, aux []string, inAmount, quotedOut math.Int, slippageBps, feeBps uint64) error {
	if len(plan) == 0 {
		return ErrEmptyRoute
	}
	for i, step := range plan {
		if err := step.Validate(); err != nil {
			return sdkerrors.Wrapf(err, "step %d", i)
		}
		if int(step.InputIndex) >= len(aux) || int(step.OutputIndex) >= len(aux) {
			return ErrInvalidAccountIndex.Wrapf("step %d references index beyond %d aux accounts", i, len(aux))
		}
	}
	if inAmount.IsNil() || !inAmount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "in amount must be positive")
	}
	if quotedOut.IsNil() || !quotedOut.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "quoted out amount must be positive")
	}
	if slippageBps > BpsDenominator {
		return sdkerrors.Wrapf(ErrInvalidSlippage, "slippage %d exceeds %d bps", slippageBps, BpsDenominator)
	}
	if feeBps > BpsDenominator {
		return sdkerrors.Wrapf(ErrInvalidPlatformFee, "platform fee %d exceeds %d bps", feeBps, BpsDenominator)
	}
	return nil
}
