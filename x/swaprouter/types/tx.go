package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	InitializeRegistry(context.Context, *MsgInitializeRegistry) (*MsgInitializeRegistryResponse, error)
	ConfigureAdapter(context.Context, *MsgConfigureAdapter) (*MsgConfigureAdapterResponse, error)
	DisableAdapter(context.Context, *MsgDisableAdapter) (*MsgDisableAdapterResponse, error)
	AddOperator(context.Context, *MsgAddOperator) (*MsgAddOperatorResponse, error)
	RemoveOperator(context.Context, *MsgRemoveOperator) (*MsgRemoveOperatorResponse, error)
	ChangeAuthority(context.Context, *MsgChangeAuthority) (*MsgChangeAuthorityResponse, error)
	RegisterPool(context.Context, *MsgRegisterPool) (*MsgRegisterPoolResponse, error)
	DisablePool(context.Context, *MsgDisablePool) (*MsgDisablePoolResponse, error)
	Route(context.Context, *MsgRoute) (*MsgRouteResponse, error)
	RouteAndCreateOrder(context.Context, *MsgRouteAndCreateOrder) (*MsgRouteAndCreateOrderResponse, error)
	CreateLimitOrder(context.Context, *MsgCreateLimitOrder) (*MsgCreateLimitOrderResponse, error)
	ExecuteLimitOrder(context.Context, *MsgExecuteLimitOrder) (*MsgExecuteLimitOrderResponse, error)
	ExecuteLimitOrderWithAggregator(context.Context, *MsgExecuteLimitOrderWithAggregator) (*MsgExecuteLimitOrderResponse, error)
	CancelLimitOrder(context.Context, *MsgCancelLimitOrder) (*MsgCancelLimitOrderResponse, error)
	CancelExpiredLimitOrder(context.Context, *MsgCancelExpiredLimitOrder) (*MsgCancelLimitOrderResponse, error)
	CloseLimitOrder(context.Context, *MsgCloseLimitOrder) (*MsgCloseLimitOrderResponse, error)
}

// Response types

// MsgInitializeRegistryResponse defines the response for InitializeRegistry
type MsgInitializeRegistryResponse struct {
	VaultAuthority string `json:"vault_authority"`
}

// MsgConfigureAdapterResponse defines the response for ConfigureAdapter
type MsgConfigureAdapterResponse struct{}

// MsgDisableAdapterResponse defines the response for DisableAdapter
type MsgDisableAdapterResponse struct{}

// MsgAddOperatorResponse defines the response for AddOperator
type MsgAddOperatorResponse struct{}

// MsgRemoveOperatorResponse defines the response for RemoveOperator
type MsgRemoveOperatorResponse struct{}

// MsgChangeAuthorityResponse defines the response for ChangeAuthority
type MsgChangeAuthorityResponse struct{}

// MsgRegisterPoolResponse defines the response for RegisterPool
type MsgRegisterPoolResponse struct{}

// MsgDisablePoolResponse defines the response for DisablePool
type MsgDisablePoolResponse struct{}

// MsgRouteResponse defines the response for Route
type MsgRouteResponse struct {
	OutputAmount math.Int        `json:"output_amount"`
	Swaps        []SwapEventData `json:"swaps"`
}

// MsgRouteAndCreateOrderResponse defines the response for RouteAndCreateOrder
type MsgRouteAndCreateOrderResponse struct {
	OutputAmount math.Int `json:"output_amount"`
	OrderAddress string   `json:"order_address"`
}

// MsgCreateLimitOrderResponse defines the response for CreateLimitOrder
type MsgCreateLimitOrderResponse struct {
	OrderAddress string `json:"order_address"`
	InputVault   string `json:"input_vault"`
}

// MsgExecuteLimitOrderResponse defines the response for both execute paths
type MsgExecuteLimitOrderResponse struct {
	OutputAmount math.Int `json:"output_amount"`
	FeeAmount    math.Int `json:"fee_amount"`
}

// MsgCancelLimitOrderResponse defines the response for both cancel paths
type MsgCancelLimitOrderResponse struct {
	RefundAmount math.Int `json:"refund_amount"`
}

// MsgCloseLimitOrderResponse defines the response for CloseLimitOrder
type MsgCloseLimitOrderResponse struct{}
