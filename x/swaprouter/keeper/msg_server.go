package keeper

import (
	"context"
	"strconv"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/strait-labs/strait/x/swaprouter/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the swaprouter MsgServer.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (m msgServer) InitializeRegistry(ctx context.Context, msg *types.MsgInitializeRegistry) (*types.MsgInitializeRegistryResponse, error) {
	if err := m.Keeper.InitializeRegistry(ctx, msg.Authority); err != nil {
		return nil, err
	}
	for _, operator := range msg.Operators {
		if err := m.Keeper.AddOperator(ctx, msg.Authority, operator); err != nil {
			return nil, err
		}
	}
	if msg.AggregatorProgram != "" {
		if err := m.Keeper.SetAggregatorProgram(ctx, msg.Authority, msg.AggregatorProgram); err != nil {
			return nil, err
		}
	}
	m.emitRegistryEvent(ctx, "initialized", msg.Authority)
	return &types.MsgInitializeRegistryResponse{
		VaultAuthority: types.VaultAuthorityAddress().String(),
	}, nil
}

func (m msgServer) ConfigureAdapter(ctx context.Context, msg *types.MsgConfigureAdapter) (*types.MsgConfigureAdapterResponse, error) {
	entry := types.AdapterEntry{
		Name:          msg.Name,
		ProgramID:     msg.ProgramID,
		SwapType:      msg.SwapType,
		PoolAllowlist: msg.PoolAllowlist,
	}
	if err := m.Keeper.ConfigureAdapter(ctx, msg.Signer, entry); err != nil {
		return nil, err
	}
	m.emitRegistryEvent(ctx, "adapter_configured", msg.Signer)
	return &types.MsgConfigureAdapterResponse{}, nil
}

func (m msgServer) DisableAdapter(ctx context.Context, msg *types.MsgDisableAdapter) (*types.MsgDisableAdapterResponse, error) {
	if err := m.Keeper.DisableAdapter(ctx, msg.Signer, msg.SwapType); err != nil {
		return nil, err
	}
	m.emitRegistryEvent(ctx, "adapter_disabled", msg.Signer)
	return &types.MsgDisableAdapterResponse{}, nil
}

func (m msgServer) AddOperator(ctx context.Context, msg *types.MsgAddOperator) (*types.MsgAddOperatorResponse, error) {
	if err := m.Keeper.AddOperator(ctx, msg.Signer, msg.Operator); err != nil {
		return nil, err
	}
	m.emitRegistryEvent(ctx, "operator_added", msg.Signer)
	return &types.MsgAddOperatorResponse{}, nil
}

func (m msgServer) RemoveOperator(ctx context.Context, msg *types.MsgRemoveOperator) (*types.MsgRemoveOperatorResponse, error) {
	if err := m.Keeper.RemoveOperator(ctx, msg.Signer, msg.Operator); err != nil {
		return nil, err
	}
	m.emitRegistryEvent(ctx, "operator_removed", msg.Signer)
	return &types.MsgRemoveOperatorResponse{}, nil
}

func (m msgServer) ChangeAuthority(ctx context.Context, msg *types.MsgChangeAuthority) (*types.MsgChangeAuthorityResponse, error) {
	if err := m.Keeper.ChangeAuthority(ctx, msg.Signer, msg.NewAuthority); err != nil {
		return nil, err
	}
	m.emitRegistryEvent(ctx, "authority_changed", msg.NewAuthority)
	return &types.MsgChangeAuthorityResponse{}, nil
}

func (m msgServer) RegisterPool(ctx context.Context, msg *types.MsgRegisterPool) (*types.MsgRegisterPoolResponse, error) {
	if err := m.Keeper.RegisterPool(ctx, msg.Signer, msg.SwapType, msg.PoolAddress); err != nil {
		return nil, err
	}
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypePoolRegistered,
		sdk.NewAttribute(types.AttributeKeyOperator, msg.Signer),
		sdk.NewAttribute(types.AttributeKeySwapType, msg.SwapType.String()),
		sdk.NewAttribute(types.AttributeKeyPoolAddress, msg.PoolAddress),
	))
	return &types.MsgRegisterPoolResponse{}, nil
}

func (m msgServer) DisablePool(ctx context.Context, msg *types.MsgDisablePool) (*types.MsgDisablePoolResponse, error) {
	if err := m.Keeper.DisablePool(ctx, msg.Signer, msg.SwapType, msg.PoolAddress); err != nil {
		return nil, err
	}
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypePoolDisabled,
		sdk.NewAttribute(types.AttributeKeyOperator, msg.Signer),
		sdk.NewAttribute(types.AttributeKeySwapType, msg.SwapType.String()),
		sdk.NewAttribute(types.AttributeKeyPoolAddress, msg.PoolAddress),
	))
	return &types.MsgDisablePoolResponse{}, nil
}

func (m msgServer) Route(ctx context.Context, msg *types.MsgRoute) (*types.MsgRouteResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	metrics := GetRouterMetrics()
	start := time.Now()
	defer func() { metrics.RouteLatency.Observe(time.Since(start).Seconds()) }()

	if err := m.checkRouteLimits(ctx, len(msg.RoutePlan), len(msg.AuxAccounts), msg.SlippageBps, msg.PlatformFeeBps); err != nil {
		return nil, err
	}

	// Stage everything; commit only when the whole route succeeded.
	cacheCtx, writeCache := sdkCtx.CacheContext()
	net, swaps, err := m.Keeper.Route(cacheCtx, msg)
	if err != nil {
		metrics.RoutesTotal.WithLabelValues("failed").Inc()
		return nil, err
	}
	writeCache()

	metrics.RoutesTotal.WithLabelValues("ok").Inc()
	metrics.RouteSteps.Observe(float64(len(msg.RoutePlan)))
	metrics.RouteVolume.WithLabelValues(msg.DestinationMint).Add(floatAmount(net))
	m.emitSwapEvents(sdkCtx, swaps)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeRouteCompleted,
		sdk.NewAttribute(types.AttributeKeyCreator, msg.Caller),
		sdk.NewAttribute(types.AttributeKeySteps, strconv.Itoa(len(msg.RoutePlan))),
		sdk.NewAttribute(types.AttributeKeyInputMint, msg.SourceMint),
		sdk.NewAttribute(types.AttributeKeyOutputMint, msg.DestinationMint),
		sdk.NewAttribute(types.AttributeKeyInputAmount, msg.InAmount.String()),
		sdk.NewAttribute(types.AttributeKeyOutputAmount, net.String()),
	))
	return &types.MsgRouteResponse{OutputAmount: net, Swaps: swaps}, nil
}

func (m msgServer) RouteAndCreateOrder(ctx context.Context, msg *types.MsgRouteAndCreateOrder) (*types.MsgRouteAndCreateOrderResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	metrics := GetRouterMetrics()
	start := time.Now()
	defer func() { metrics.RouteLatency.Observe(time.Since(start).Seconds()) }()

	if err := m.checkRouteLimits(ctx, len(msg.RoutePlan), len(msg.AuxAccounts), msg.SlippageBps, msg.PlatformFeeBps); err != nil {
		return nil, err
	}

	cacheCtx, writeCache := sdkCtx.CacheContext()
	order, net, swaps, err := m.Keeper.RouteAndCreateOrder(cacheCtx, msg)
	if err != nil {
		metrics.RoutesTotal.WithLabelValues("failed").Inc()
		return nil, err
	}
	writeCache()

	metrics.RoutesTotal.WithLabelValues("ok").Inc()
	metrics.OrdersCreated.Inc()
	metrics.RouteVolume.WithLabelValues(msg.DestinationMint).Add(floatAmount(net))
	m.emitSwapEvents(sdkCtx, swaps)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeOrderCreated,
		sdk.NewAttribute(types.AttributeKeyOrderAddress, order.Address),
		sdk.NewAttribute(types.AttributeKeyCreator, order.Creator),
		sdk.NewAttribute(types.AttributeKeyInputMint, order.InputMint),
		sdk.NewAttribute(types.AttributeKeyOutputMint, order.OutputMint),
		sdk.NewAttribute(types.AttributeKeyInputAmount, order.InputAmount.String()),
	))
	return &types.MsgRouteAndCreateOrderResponse{OutputAmount: net, OrderAddress: order.Address}, nil
}

func (m msgServer) CreateLimitOrder(ctx context.Context, msg *types.MsgCreateLimitOrder) (*types.MsgCreateLimitOrderResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	cacheCtx, writeCache := sdkCtx.CacheContext()
	order, err := m.Keeper.CreateLimitOrder(cacheCtx, msg)
	if err != nil {
		return nil, err
	}
	writeCache()

	GetRouterMetrics().OrdersCreated.Inc()
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeOrderCreated,
		sdk.NewAttribute(types.AttributeKeyOrderAddress, order.Address),
		sdk.NewAttribute(types.AttributeKeyCreator, order.Creator),
		sdk.NewAttribute(types.AttributeKeyInputMint, order.InputMint),
		sdk.NewAttribute(types.AttributeKeyOutputMint, order.OutputMint),
		sdk.NewAttribute(types.AttributeKeyInputAmount, order.InputAmount.String()),
	))
	return &types.MsgCreateLimitOrderResponse{
		OrderAddress: order.Address,
		InputVault:   order.InputVault,
	}, nil
}

func (m msgServer) ExecuteLimitOrder(ctx context.Context, msg *types.MsgExecuteLimitOrder) (*types.MsgExecuteLimitOrderResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	metrics := GetRouterMetrics()

	if err := m.checkRouteLimits(ctx, len(msg.RoutePlan), len(msg.AuxAccounts), 0, msg.PlatformFeeBps); err != nil {
		return nil, err
	}

	cacheCtx, writeCache := sdkCtx.CacheContext()
	result, err := m.Keeper.ExecuteLimitOrder(cacheCtx, msg)
	if err != nil {
		return nil, err
	}
	writeCache()

	metrics.OrdersTerminal.WithLabelValues(types.OrderStatusFilled.String()).Inc()
	metrics.FeesCollected.WithLabelValues(result.Order.OutputMint).Add(floatAmount(result.Fee))
	m.emitSwapEvents(sdkCtx, result.Events)
	m.emitOrderFilled(sdkCtx, result, msg.Operator)
	return &types.MsgExecuteLimitOrderResponse{OutputAmount: result.Net, FeeAmount: result.Fee}, nil
}

func (m msgServer) ExecuteLimitOrderWithAggregator(ctx context.Context, msg *types.MsgExecuteLimitOrderWithAggregator) (*types.MsgExecuteLimitOrderResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	metrics := GetRouterMetrics()

	cacheCtx, writeCache := sdkCtx.CacheContext()
	result, err := m.Keeper.ExecuteLimitOrderWithAggregator(cacheCtx, msg)
	if err != nil {
		metrics.AggregatorCalls.WithLabelValues("failed").Inc()
		return nil, err
	}
	writeCache()

	metrics.AggregatorCalls.WithLabelValues("ok").Inc()
	metrics.OrdersTerminal.WithLabelValues(types.OrderStatusFilled.String()).Inc()
	m.emitOrderFilled(sdkCtx, result, msg.Operator)
	return &types.MsgExecuteLimitOrderResponse{OutputAmount: result.Net, FeeAmount: result.Fee}, nil
}

func (m msgServer) CancelLimitOrder(ctx context.Context, msg *types.MsgCancelLimitOrder) (*types.MsgCancelLimitOrderResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	cacheCtx, writeCache := sdkCtx.CacheContext()
	order, refund, err := m.Keeper.CancelLimitOrder(cacheCtx, msg.Creator, msg.OrderAddress)
	if err != nil {
		return nil, err
	}
	writeCache()

	GetRouterMetrics().OrdersTerminal.WithLabelValues(types.OrderStatusCancelled.String()).Inc()
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeOrderCancelled,
		sdk.NewAttribute(types.AttributeKeyOrderAddress, order.Address),
		sdk.NewAttribute(types.AttributeKeyCreator, order.Creator),
		sdk.NewAttribute(types.AttributeKeyRefund, refund.String()),
	))
	return &types.MsgCancelLimitOrderResponse{RefundAmount: refund}, nil
}

func (m msgServer) CancelExpiredLimitOrder(ctx context.Context, msg *types.MsgCancelExpiredLimitOrder) (*types.MsgCancelLimitOrderResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	cacheCtx, writeCache := sdkCtx.CacheContext()
	order, refund, err := m.Keeper.CancelExpiredLimitOrder(cacheCtx, msg.Operator, msg.OrderAddress)
	if err != nil {
		return nil, err
	}
	writeCache()

	GetRouterMetrics().OrdersTerminal.WithLabelValues(types.OrderStatusCancelled.String()).Inc()
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeOrderCancelled,
		sdk.NewAttribute(types.AttributeKeyOrderAddress, order.Address),
		sdk.NewAttribute(types.AttributeKeyOperator, msg.Operator),
		sdk.NewAttribute(types.AttributeKeyRefund, refund.String()),
	))
	return &types.MsgCancelLimitOrderResponse{RefundAmount: refund}, nil
}

func (m msgServer) CloseLimitOrder(ctx context.Context, msg *types.MsgCloseLimitOrder) (*types.MsgCloseLimitOrderResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if err := m.Keeper.CloseLimitOrder(ctx, msg.Operator, msg.OrderAddress); err != nil {
		return nil, err
	}
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeOrderClosed,
		sdk.NewAttribute(types.AttributeKeyOrderAddress, msg.OrderAddress),
		sdk.NewAttribute(types.AttributeKeyOperator, msg.Operator),
	))
	return &types.MsgCloseLimitOrderResponse{}, nil
}

func (m msgServer) emitRegistryEvent(ctx context.Context, status, actor string) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeRegistryUpdate,
		sdk.NewAttribute(types.AttributeKeyStatus, status),
		sdk.NewAttribute(types.AttributeKeyCreator, actor),
	))
}

func (m msgServer) emitSwapEvents(sdkCtx sdk.Context, swaps []types.SwapEventData) {
	metrics := GetRouterMetrics()
	for _, swap := range swaps {
		metrics.AdapterCalls.WithLabelValues(swap.SwapType.String()).Inc()
		sdkCtx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeySwapType, swap.SwapType.String()),
			sdk.NewAttribute(types.AttributeKeyInputMint, swap.InputMint),
			sdk.NewAttribute(types.AttributeKeyInputAmount, swap.InputAmount.String()),
			sdk.NewAttribute(types.AttributeKeyOutputMint, swap.OutputMint),
			sdk.NewAttribute(types.AttributeKeyOutputAmount, swap.OutputAmount.String()),
		))
	}
}

func (m msgServer) emitOrderFilled(sdkCtx sdk.Context, result OrderExecution, operator string) {
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeOrderFilled,
		sdk.NewAttribute(types.AttributeKeyOrderAddress, result.Order.Address),
		sdk.NewAttribute(types.AttributeKeyOperator, operator),
		sdk.NewAttribute(types.AttributeKeyOutputAmount, result.Net.String()),
		sdk.NewAttribute(types.AttributeKeyFeeAmount, result.Fee.String()),
	))
}
