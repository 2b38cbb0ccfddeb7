package types

import "fmt"

// Minimal proto.Message implementations for the hand-rolled message types so
// they satisfy sdk.Msg and can be registered with the interface registry.

func protoName(short string) string { return "strait.swaprouter.v1." + short }

func (msg *MsgInitializeRegistry) Reset()              { *msg = MsgInitializeRegistry{} }
func (msg *MsgInitializeRegistry) String() string      { return fmt.Sprintf("%+v", *msg) }
func (*MsgInitializeRegistry) ProtoMessage()           {}
func (*MsgInitializeRegistry) XXX_MessageName() string { return protoName("MsgInitializeRegistry") }

func (msg *MsgConfigureAdapter) Reset()              { *msg = MsgConfigureAdapter{} }
func (msg *MsgConfigureAdapter) String() string      { return fmt.Sprintf("%+v", *msg) }
func (*MsgConfigureAdapter) ProtoMessage()           {}
func (*MsgConfigureAdapter) XXX_MessageName() string { return protoName("MsgConfigureAdapter") }

func (msg *MsgDisableAdapter) Reset()              { *msg = MsgDisableAdapter{} }
func (msg *MsgDisableAdapter) String() string      { return fmt.Sprintf("%+v", *msg) }
func (*MsgDisableAdapter) ProtoMessage()           {}
func (*MsgDisableAdapter) XXX_MessageName() string { return protoName("MsgDisableAdapter") }

func (msg *MsgAddOperator) Reset()              { *msg = MsgAddOperator{} }
func (msg *MsgAddOperator) String() string      { return fmt.Sprintf("%+v", *msg) }
func (*MsgAddOperator) ProtoMessage()           {}
func (*MsgAddOperator) XXX_MessageName() string { return protoName("MsgAddOperator") }

func (msg *MsgRemoveOperator) Reset()              { *msg = MsgRemoveOperator{} }
func (msg *MsgRemoveOperator) String() string      { return fmt.Sprintf("%+v", *msg) }
func (*MsgRemoveOperator) ProtoMessage()           {}
func (*MsgRemoveOperator) XXX_MessageName() string { return protoName("MsgRemoveOperator") }

func (msg *MsgChangeAuthority) Reset()              { *msg = MsgChangeAuthority{} }
func (msg *MsgChangeAuthority) String() string      { return fmt.Sprintf("%+v", *msg) }
func (*MsgChangeAuthority) ProtoMessage()           {}
func (*MsgChangeAuthority) XXX_MessageName() string { return protoName("MsgChangeAuthority") }

func (msg *MsgRegisterPool) Reset()              { *msg = MsgRegisterPool{} }
func (msg *MsgRegisterPool) String() string      { return fmt.Sprintf("%+v", *msg) }
func (*MsgRegisterPool) ProtoMessage()           {}
func (*MsgRegisterPool) XXX_MessageName() string { return protoName("MsgRegisterPool") }

func (msg *MsgDisablePool) Reset()              { *msg = MsgDisablePool{} }
func (msg *MsgDisablePool) String() string      { return fmt.Sprintf("%+v", *msg) }
func (*MsgDisablePool) ProtoMessage()           {}
func (*MsgDisablePool) XXX_MessageName() string { return protoName("MsgDisablePool") }

func (msg *MsgRoute) Reset()              { *msg = MsgRoute{} }
func (msg *MsgRoute) String() string      { return fmt.Sprintf("%+v", *msg) }
func (*MsgRoute) ProtoMessage()           {}
func (*MsgRoute) XXX_MessageName() string { return protoName("MsgRoute") }

func (msg *MsgRouteAndCreateOrder) Reset()              { *msg = MsgRouteAndCreateOrder{} }
func (msg *MsgRouteAndCreateOrder) String() string      { return fmt.Sprintf("%+v", *msg) }
func (*MsgRouteAndCreateOrder) ProtoMessage()           {}
func (*MsgRouteAndCreateOrder) XXX_MessageName() string { return protoName("MsgRouteAndCreateOrder") }

func (msg *MsgCreateLimitOrder) Reset()              { *msg = MsgCreateLimitOrder{} }
func (msg *MsgCreateLimitOrder) String() string      { return fmt.Sprintf("%+v", *msg) }
func (*MsgCreateLimitOrder) ProtoMessage()           {}
func (*MsgCreateLimitOrder) XXX_MessageName() string { return protoName("MsgCreateLimitOrder") }

func (msg *MsgExecuteLimitOrder) Reset()              { *msg = MsgExecuteLimitOrder{} }
func (msg *MsgExecuteLimitOrder) String() string      { return fmt.Sprintf("%+v", *msg) }
func (*MsgExecuteLimitOrder) ProtoMessage()           {}
func (*MsgExecuteLimitOrder) XXX_MessageName() string { return protoName("MsgExecuteLimitOrder") }

func (msg *MsgExecuteLimitOrderWithAggregator) Reset() {
	*msg = MsgExecuteLimitOrderWithAggregator{}
}
func (msg *MsgExecuteLimitOrderWithAggregator) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgExecuteLimitOrderWithAggregator) ProtoMessage()      {}
func (*MsgExecuteLimitOrderWithAggregator) XXX_MessageName() string {
	return protoName("MsgExecuteLimitOrderWithAggregator")
}

func (msg *MsgCancelLimitOrder) Reset()              { *msg = MsgCancelLimitOrder{} }
func (msg *MsgCancelLimitOrder) String() string      { return fmt.Sprintf("%+v", *msg) }
func (*MsgCancelLimitOrder) ProtoMessage()           {}
func (*MsgCancelLimitOrder) XXX_MessageName() string { return protoName("MsgCancelLimitOrder") }

func (msg *MsgCancelExpiredLimitOrder) Reset()         { *msg = MsgCancelExpiredLimitOrder{} }
func (msg *MsgCancelExpiredLimitOrder) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgCancelExpiredLimitOrder) ProtoMessage()      {}
func (*MsgCancelExpiredLimitOrder) XXX_MessageName() string {
	return protoName("MsgCancelExpiredLimitOrder")
}

func (msg *MsgCloseLimitOrder) Reset()              { *msg = MsgCloseLimitOrder{} }
func (msg *MsgCloseLimitOrder) String() string      { return fmt.Sprintf("%+v", *msg) }
func (*MsgCloseLimitOrder) ProtoMessage()           {}
func (*MsgCloseLimitOrder) XXX_MessageName() string { return protoName("MsgCloseLimitOrder") }

func (gs *GenesisState) Reset()               { *gs = GenesisState{} }
func (gs *GenesisState) String() string       { return fmt.Sprintf("%+v", *gs) }
func (*GenesisState) ProtoMessage()           {}
func (*GenesisState) XXX_MessageName() string { return protoName("GenesisState") }
