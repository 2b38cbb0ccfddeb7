package types

import (
	"context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	grpc "google.golang.org/grpc"
)

// QueryClient is the client API for Query service.
type QueryClient interface {
	Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error)
	Registry(ctx context.Context, in *QueryRegistryRequest, opts ...grpc.CallOption) (*QueryRegistryResponse, error)
	VaultAuthority(ctx context.Context, in *QueryVaultAuthorityRequest, opts ...grpc.CallOption) (*QueryVaultAuthorityResponse, error)
	PoolInfo(ctx context.Context, in *QueryPoolInfoRequest, opts ...grpc.CallOption) (*QueryPoolInfoResponse, error)
	Pools(ctx context.Context, in *QueryPoolsRequest, opts ...grpc.CallOption) (*QueryPoolsResponse, error)
	Order(ctx context.Context, in *QueryOrderRequest, opts ...grpc.CallOption) (*QueryOrderResponse, error)
	OrdersByCreator(ctx context.Context, in *QueryOrdersByCreatorRequest, opts ...grpc.CallOption) (*QueryOrdersResponse, error)
	OpenOrders(ctx context.Context, in *QueryOpenOrdersRequest, opts ...grpc.CallOption) (*QueryOrdersResponse, error)
	TokenAccount(ctx context.Context, in *QueryTokenAccountRequest, opts ...grpc.CallOption) (*QueryTokenAccountResponse, error)
	SimulateTrigger(ctx context.Context, in *QuerySimulateTriggerRequest, opts ...grpc.CallOption) (*QuerySimulateTriggerResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error) {
	out := new(QueryParamsResponse)
	err := c.cc.Invoke(ctx, "/strait.swaprouter.v1.Query/Params", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Registry(ctx context.Context, in *QueryRegistryRequest, opts ...grpc.CallOption) (*QueryRegistryResponse, error) {
	out := new(QueryRegistryResponse)
	err := c.cc.Invoke(ctx, "/strait.swaprouter.v1.Query/Registry", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) VaultAuthority(ctx context.Context, in *QueryVaultAuthorityRequest, opts ...grpc.CallOption) (*QueryVaultAuthorityResponse, error) {
	out := new(QueryVaultAuthorityResponse)
	err := c.cc.Invoke(ctx, "/strait.swaprouter.v1.Query/VaultAuthority", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) PoolInfo(ctx context.Context, in *QueryPoolInfoRequest, opts ...grpc.CallOption) (*QueryPoolInfoResponse, error) {
	out := new(QueryPoolInfoResponse)
	err := c.cc.Invoke(ctx, "/strait.swaprouter.v1.Query/PoolInfo", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Pools(ctx context.Context, in *QueryPoolsRequest, opts ...grpc.CallOption) (*QueryPoolsResponse, error) {
	out := new(QueryPoolsResponse)
	err := c.cc.Invoke(ctx, "/strait.swaprouter.v1.Query/Pools", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Order(ctx context.Context, in *QueryOrderRequest, opts ...grpc.CallOption) (*QueryOrderResponse, error) {
	out := new(QueryOrderResponse)
	err := c.cc.Invoke(ctx, "/strait.swaprouter.v1.Query/Order", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) OrdersByCreator(ctx context.Context, in *QueryOrdersByCreatorRequest, opts ...grpc.CallOption) (*QueryOrdersResponse, error) {
	out := new(QueryOrdersResponse)
	err := c.cc.Invoke(ctx, "/strait.swaprouter.v1.Query/OrdersByCreator", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) OpenOrders(ctx context.Context, in *QueryOpenOrdersRequest, opts ...grpc.CallOption) (*QueryOrdersResponse, error) {
	out := new(QueryOrdersResponse)
	err := c.cc.Invoke(ctx, "/strait.swaprouter.v1.Query/OpenOrders", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) TokenAccount(ctx context.Context, in *QueryTokenAccountRequest, opts ...grpc.CallOption) (*QueryTokenAccountResponse, error) {
	out := new(QueryTokenAccountResponse)
	err := c.cc.Invoke(ctx, "/strait.swaprouter.v1.Query/TokenAccount", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) SimulateTrigger(ctx context.Context, in *QuerySimulateTriggerRequest, opts ...grpc.CallOption) (*QuerySimulateTriggerResponse, error) {
	out := new(QuerySimulateTriggerResponse)
	err := c.cc.Invoke(ctx, "/strait.swaprouter.v1.Query/SimulateTrigger", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
