package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgInitializeRegistry{}
	_ sdk.Msg = &MsgConfigureAdapter{}
	_ sdk.Msg = &MsgDisableAdapter{}
	_ sdk.Msg = &MsgAddOperator{}
	_ sdk.Msg = &MsgRemoveOperator{}
	_ sdk.Msg = &MsgChangeAuthority{}
	_ sdk.Msg = &MsgRegisterPool{}
	_ sdk.Msg = &MsgDisablePool{}
)

// MsgInitializeRegistry creates the adapter registry and vault authority
// singletons. The signer becomes the registry authority and vault admin.
type MsgInitializeRegistry struct {
	Authority         string   `json:"authority"`
	Operators         []string `json:"operators,omitempty"`
	AggregatorProgram string   `json:"aggregator_program,omitempty"`
}

// Route implements the sdk.Msg interface
func (msg MsgInitializeRegistry) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgInitializeRegistry) Type() string { return "initialize_registry" }

// GetSigners implements the sdk.Msg interface
func (msg MsgInitializeRegistry) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgInitializeRegistry) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgInitializeRegistry) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAuthority, "invalid authority address: %s", err)
	}
	for _, op := range msg.Operators {
		if _, err := sdk.AccAddressFromBech32(op); err != nil {
			return sdkerrors.Wrapf(ErrInvalidOperator, "invalid operator address %s: %s", op, err)
		}
	}
	return nil
}

// MsgConfigureAdapter registers or reconfigures a venue adapter
// (last-write-wins per swap type).
type MsgConfigureAdapter struct {
	Signer        string   `json:"signer"`
	Name          string   `json:"name"`
	ProgramID     string   `json:"program_id"`
	SwapType      SwapType `json:"swap_type"`
	PoolAllowlist []string `json:"pool_allowlist,omitempty"`
}

// Route implements the sdk.Msg interface
func (msg MsgConfigureAdapter) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgConfigureAdapter) Type() string { return "configure_adapter" }

// GetSigners implements the sdk.Msg interface
func (msg MsgConfigureAdapter) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signer}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgConfigureAdapter) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgConfigureAdapter) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAuthority, "invalid signer address: %s", err)
	}
	if msg.Name == "" {
		return sdkerrors.Wrap(ErrInvalidState, "adapter name cannot be empty")
	}
	if IsZeroAddress(msg.ProgramID) {
		return sdkerrors.Wrap(ErrInvalidCpiInterface, "program id cannot be the zero address")
	}
	if !msg.SwapType.Valid() {
		return ErrSwapNotSupported.Wrapf("unknown swap type %d", msg.SwapType)
	}
	return nil
}

// MsgDisableAdapter removes a swap type from the registry.
type MsgDisableAdapter struct {
	Signer   string   `json:"signer"`
	SwapType SwapType `json:"swap_type"`
}

// Route implements the sdk.Msg interface
func (msg MsgDisableAdapter) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgDisableAdapter) Type() string { return "disable_adapter" }

// GetSigners implements the sdk.Msg interface
func (msg MsgDisableAdapter) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signer}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgDisableAdapter) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgDisableAdapter) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAuthority, "invalid signer address: %s", err)
	}
	if !msg.SwapType.Valid() {
		return ErrSwapNotSupported.Wrapf("unknown swap type %d", msg.SwapType)
	}
	return nil
}

// MsgAddOperator adds an address to the operator set.
type MsgAddOperator struct {
	Signer   string `json:"signer"`
	Operator string `json:"operator"`
}

// Route implements the sdk.Msg interface
func (msg MsgAddOperator) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgAddOperator) Type() string { return "add_operator" }

// GetSigners implements the sdk.Msg interface
func (msg MsgAddOperator) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signer}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgAddOperator) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgAddOperator) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAuthority, "invalid signer address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Operator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidOperator, "invalid operator address: %s", err)
	}
	return nil
}

// MsgRemoveOperator removes an address from the operator set.
type MsgRemoveOperator struct {
	Signer   string `json:"signer"`
	Operator string `json:"operator"`
}

// Route implements the sdk.Msg interface
func (msg MsgRemoveOperator) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgRemoveOperator) Type() string { return "remove_operator" }

// GetSigners implements the sdk.Msg interface
func (msg MsgRemoveOperator) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signer}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRemoveOperator) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRemoveOperator) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAuthority, "invalid signer address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Operator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidOperator, "invalid operator address: %s", err)
	}
	return nil
}

// MsgChangeAuthority hands the registry to a new authority.
type MsgChangeAuthority struct {
	Signer       string `json:"signer"`
	NewAuthority string `json:"new_authority"`
}

// Route implements the sdk.Msg interface
func (msg MsgChangeAuthority) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgChangeAuthority) Type() string { return "change_authority" }

// GetSigners implements the sdk.Msg interface
func (msg MsgChangeAuthority) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signer}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgChangeAuthority) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgChangeAuthority) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAuthority, "invalid signer address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.NewAuthority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAuthority, "invalid new authority address: %s", err)
	}
	return nil
}

// MsgRegisterPool creates the enablement record for a pool.
type MsgRegisterPool struct {
	Signer      string   `json:"signer"`
	SwapType    SwapType `json:"swap_type"`
	PoolAddress string   `json:"pool_address"`
}

// Route implements the sdk.Msg interface
func (msg MsgRegisterPool) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgRegisterPool) Type() string { return "register_pool" }

// GetSigners implements the sdk.Msg interface
func (msg MsgRegisterPool) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signer}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRegisterPool) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRegisterPool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return sdkerrors.Wrapf(ErrInvalidOperator, "invalid signer address: %s", err)
	}
	if !msg.SwapType.Valid() {
		return ErrSwapNotSupported.Wrapf("unknown swap type %d", msg.SwapType)
	}
	if IsZeroAddress(msg.PoolAddress) {
		return sdkerrors.Wrap(ErrInvalidPoolAddress, "pool address cannot be the zero address")
	}
	return nil
}

// MsgDisablePool flips a pool's enablement record off. The record is kept so
// the pool can never be silently re-registered as a different venue.
type MsgDisablePool struct {
	Signer      string   `json:"signer"`
	SwapType    SwapType `json:"swap_type"`
	PoolAddress string   `json:"pool_address"`
}

// Route implements the sdk.Msg interface
func (msg MsgDisablePool) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgDisablePool) Type() string { return "disable_pool" }

// GetSigners implements the sdk.Msg interface
func (msg MsgDisablePool) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signer}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgDisablePool) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgDisablePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return sdkerrors.Wrapf(ErrInvalidOperator, "invalid signer address: %s", err)
	}
	if !msg.SwapType.Valid() {
		return ErrSwapNotSupported.Wrapf("unknown swap type %d", msg.SwapType)
	}
	if IsZeroAddress(msg.PoolAddress) {
		return sdkerrors.Wrap(ErrInvalidPoolAddress, "pool address cannot be the zero address")
	}
	return nil
}
