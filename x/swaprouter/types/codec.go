package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgInitializeRegistry{}, "swaprouter/MsgInitializeRegistry", nil)
	cdc.RegisterConcrete(&MsgConfigureAdapter{}, "swaprouter/MsgConfigureAdapter", nil)
	cdc.RegisterConcrete(&MsgDisableAdapter{}, "swaprouter/MsgDisableAdapter", nil)
	cdc.RegisterConcrete(&MsgAddOperator{}, "swaprouter/MsgAddOperator", nil)
	cdc.RegisterConcrete(&MsgRemoveOperator{}, "swaprouter/MsgRemoveOperator", nil)
	cdc.RegisterConcrete(&MsgChangeAuthority{}, "swaprouter/MsgChangeAuthority", nil)
	cdc.RegisterConcrete(&MsgRegisterPool{}, "swaprouter/MsgRegisterPool", nil)
	cdc.RegisterConcrete(&MsgDisablePool{}, "swaprouter/MsgDisablePool", nil)
	cdc.RegisterConcrete(&MsgRoute{}, "swaprouter/MsgRoute", nil)
	cdc.RegisterConcrete(&MsgRouteAndCreateOrder{}, "swaprouter/MsgRouteAndCreateOrder", nil)
	cdc.RegisterConcrete(&MsgCreateLimitOrder{}, "swaprouter/MsgCreateLimitOrder", nil)
	cdc.RegisterConcrete(&MsgExecuteLimitOrder{}, "swaprouter/MsgExecuteLimitOrder", nil)
	cdc.RegisterConcrete(&MsgExecuteLimitOrderWithAggregator{}, "swaprouter/MsgExecuteLimitOrderWithAggregator", nil)
	cdc.RegisterConcrete(&MsgCancelLimitOrder{}, "swaprouter/MsgCancelLimitOrder", nil)
	cdc.RegisterConcrete(&MsgCancelExpiredLimitOrder{}, "swaprouter/MsgCancelExpiredLimitOrder", nil)
	cdc.RegisterConcrete(&MsgCloseLimitOrder{}, "swaprouter/MsgCloseLimitOrder", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgInitializeRegistry{},
		&MsgConfigureAdapter{},
		&MsgDisableAdapter{},
		&MsgAddOperator{},
		&MsgRemoveOperator{},
		&MsgChangeAuthority{},
		&MsgRegisterPool{},
		&MsgDisablePool{},
		&MsgRoute{},
		&MsgRouteAndCreateOrder{},
		&MsgCreateLimitOrder{},
		&MsgExecuteLimitOrder{},
		&MsgExecuteLimitOrderWithAggregator{},
		&MsgCancelLimitOrder{},
		&MsgCancelExpiredLimitOrder{},
		&MsgCloseLimitOrder{},
	)
}

var (
	amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
