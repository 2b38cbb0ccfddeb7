package types

import (
	"context"

	"cosmossdk.io/math"
)

// QueryServer defines the module's query surface.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Registry(context.Context, *QueryRegistryRequest) (*QueryRegistryResponse, error)
	VaultAuthority(context.Context, *QueryVaultAuthorityRequest) (*QueryVaultAuthorityResponse, error)
	PoolInfo(context.Context, *QueryPoolInfoRequest) (*QueryPoolInfoResponse, error)
	Pools(context.Context, *QueryPoolsRequest) (*QueryPoolsResponse, error)
	Order(context.Context, *QueryOrderRequest) (*QueryOrderResponse, error)
	OrdersByCreator(context.Context, *QueryOrdersByCreatorRequest) (*QueryOrdersResponse, error)
	OpenOrders(context.Context, *QueryOpenOrdersRequest) (*QueryOrdersResponse, error)
	TokenAccount(context.Context, *QueryTokenAccountRequest) (*QueryTokenAccountResponse, error)
	SimulateTrigger(context.Context, *QuerySimulateTriggerRequest) (*QuerySimulateTriggerResponse, error)
}

// QueryParamsRequest requests the module parameters.
type QueryParamsRequest struct{}

// QueryParamsResponse carries the module parameters.
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryRegistryRequest requests the adapter registry singleton.
type QueryRegistryRequest struct{}

// QueryRegistryResponse carries the adapter registry.
type QueryRegistryResponse struct {
	Registry Registry `json:"registry"`
}

// QueryVaultAuthorityRequest requests the vault authority singleton.
type QueryVaultAuthorityRequest struct{}

// QueryVaultAuthorityResponse carries the vault authority record.
type QueryVaultAuthorityResponse struct {
	VaultAuthority VaultAuthority `json:"vault_authority"`
}

// QueryPoolInfoRequest requests one pool enablement record.
type QueryPoolInfoRequest struct {
	SwapType    SwapType `json:"swap_type"`
	PoolAddress string   `json:"pool_address"`
}

// QueryPoolInfoResponse carries one pool record.
type QueryPoolInfoResponse struct {
	PoolInfo PoolInfo `json:"pool_info"`
}

// QueryPoolsRequest requests every pool record.
type QueryPoolsRequest struct{}

// QueryPoolsResponse carries all pool records.
type QueryPoolsResponse struct {
	Pools []PoolInfo `json:"pools"`
}

// QueryOrderRequest requests a limit order by derived address.
type QueryOrderRequest struct {
	OrderAddress string `json:"order_address"`
}

// QueryOrderResponse carries one limit order.
type QueryOrderResponse struct {
	Order LimitOrder `json:"order"`
}

// QueryOrdersByCreatorRequest requests all orders created by one address.
type QueryOrdersByCreatorRequest struct {
	Creator string `json:"creator"`
}

// QueryOpenOrdersRequest requests every open order.
type QueryOpenOrdersRequest struct{}

// QueryOrdersResponse carries a list of limit orders.
type QueryOrdersResponse struct {
	Orders []LimitOrder `json:"orders"`
}

// QueryTokenAccountRequest requests one token account record.
type QueryTokenAccountRequest struct {
	Address string `json:"address"`
}

// QueryTokenAccountResponse carries one token account.
type QueryTokenAccountResponse struct {
	TokenAccount TokenAccount `json:"token_account"`
}

// QuerySimulateTriggerRequest evaluates an order's trigger against a
// hypothetical output amount without executing anything.
type QuerySimulateTriggerRequest struct {
	OrderAddress        string   `json:"order_address"`
	CurrentOutputAmount math.Int `json:"current_output_amount"`
}

// QuerySimulateTriggerResponse reports whether the trigger would fire.
type QuerySimulateTriggerResponse struct {
	WouldExecute bool `json:"would_execute"`
}
