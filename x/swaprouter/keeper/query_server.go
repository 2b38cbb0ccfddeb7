package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/strait-labs/strait/x/swaprouter/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the module QueryServer.
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

func (q queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryParamsResponse{Params: q.GetParams(ctx)}, nil
}

func (q queryServer) Registry(goCtx context.Context, req *types.QueryRegistryRequest) (*types.QueryRegistryResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	registry, err := q.GetRegistry(ctx)
	if err != nil {
		return nil, status.Error(codes.NotFound, "registry not initialized")
	}
	return &types.QueryRegistryResponse{Registry: registry}, nil
}

func (q queryServer) VaultAuthority(goCtx context.Context, req *types.QueryVaultAuthorityRequest) (*types.QueryVaultAuthorityResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	vault, err := q.GetVaultAuthority(ctx)
	if err != nil {
		return nil, status.Error(codes.NotFound, "vault authority not initialized")
	}
	return &types.QueryVaultAuthorityResponse{VaultAuthority: vault}, nil
}

func (q queryServer) PoolInfo(goCtx context.Context, req *types.QueryPoolInfoRequest) (*types.QueryPoolInfoResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.PoolAddress == "" {
		return nil, status.Error(codes.InvalidArgument, "pool address cannot be empty")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	pool, err := q.GetPoolInfo(ctx, req.SwapType, req.PoolAddress)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "pool %s not found", req.PoolAddress)
	}
	return &types.QueryPoolInfoResponse{PoolInfo: pool}, nil
}

func (q queryServer) Pools(goCtx context.Context, req *types.QueryPoolsRequest) (*types.QueryPoolsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryPoolsResponse{Pools: q.AllPoolInfos(ctx)}, nil
}

func (q queryServer) Order(goCtx context.Context, req *types.QueryOrderRequest) (*types.QueryOrderResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.OrderAddress == "" {
		return nil, status.Error(codes.InvalidArgument, "order address cannot be empty")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	order, err := q.GetOrder(ctx, req.OrderAddress)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "order %s not found", req.OrderAddress)
	}
	return &types.QueryOrderResponse{Order: order}, nil
}

func (q queryServer) OrdersByCreator(goCtx context.Context, req *types.QueryOrdersByCreatorRequest) (*types.QueryOrdersResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	creator, err := sdk.AccAddressFromBech32(req.Creator)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid creator address")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryOrdersResponse{Orders: q.Keeper.OrdersByCreator(ctx, creator)}, nil
}

func (q queryServer) OpenOrders(goCtx context.Context, req *types.QueryOpenOrdersRequest) (*types.QueryOrdersResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryOrdersResponse{Orders: q.Keeper.OpenOrders(ctx)}, nil
}

func (q queryServer) TokenAccount(goCtx context.Context, req *types.QueryTokenAccountRequest) (*types.QueryTokenAccountResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.Address == "" {
		return nil, status.Error(codes.InvalidArgument, "account address cannot be empty")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	account, err := q.GetTokenAccount(ctx, req.Address)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "token account %s not found", req.Address)
	}
	return &types.QueryTokenAccountResponse{TokenAccount: account}, nil
}

func (q queryServer) SimulateTrigger(goCtx context.Context, req *types.QuerySimulateTriggerRequest) (*types.QuerySimulateTriggerResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.OrderAddress == "" {
		return nil, status.Error(codes.InvalidArgument, "order address cannot be empty")
	}
	if req.CurrentOutputAmount.IsNil() || !req.CurrentOutputAmount.IsPositive() {
		return nil, status.Error(codes.InvalidArgument, "current output amount must be positive")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	order, err := q.GetOrder(ctx, req.OrderAddress)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "order %s not found", req.OrderAddress)
	}
	fired := order.ShouldExecute(req.CurrentOutputAmount)
	GetRouterMetrics().ObserveTriggerCheck(order.TriggerType, fired)
	return &types.QuerySimulateTriggerResponse{WouldExecute: fired}, nil
}
