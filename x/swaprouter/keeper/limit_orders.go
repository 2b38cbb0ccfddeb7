package keeper

import (
	"context"
	"encoding/json"
	"time"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/strait-labs/strait/x/swaprouter/types"
)

// SetOrder persists an order record and maintains the creator and open-order
// indexes.
func (k Keeper) SetOrder(ctx context.Context, order types.LimitOrder) error {
	bz, err := json.Marshal(order)
	if err != nil {
		return err
	}
	store := k.getStore(ctx)
	store.Set(types.GetOrderKey(order.Address), bz)

	creator, err := sdk.AccAddressFromBech32(order.Creator)
	if err != nil {
		return types.ErrInvalidCreator.Wrap(err.Error())
	}
	store.Set(types.GetOrderByCreatorKey(creator, order.Address), []byte{1})

	openKey := types.GetOrderOpenKey(order.Address)
	if order.Status == types.OrderStatusOpen {
		store.Set(openKey, []byte{1})
	} else {
		store.Delete(openKey)
	}
	return nil
}

// GetOrder retrieves an order record by its derived address.
func (k Keeper) GetOrder(ctx context.Context, orderAddress string) (types.LimitOrder, error) {
	bz := k.getStore(ctx).Get(types.GetOrderKey(orderAddress))
	if bz == nil {
		return types.LimitOrder{}, types.ErrOrderNotFound.Wrap(orderAddress)
	}
	var order types.LimitOrder
	if err := json.Unmarshal(bz, &order); err != nil {
		return types.LimitOrder{}, err
	}
	return order, nil
}

// removeOrder deletes the record and every index entry for it.
func (k Keeper) removeOrder(ctx context.Context, order types.LimitOrder) {
	store := k.getStore(ctx)
	store.Delete(types.GetOrderKey(order.Address))
	store.Delete(types.GetOrderOpenKey(order.Address))
	if creator, err := sdk.AccAddressFromBech32(order.Creator); err == nil {
		store.Delete(types.GetOrderByCreatorKey(creator, order.Address))
	}
}

// AllOrders returns every order record, for genesis export and queries.
func (k Keeper) AllOrders(ctx context.Context) []types.LimitOrder {
	var orders []types.LimitOrder
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.OrderKeyPrefix)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		var order types.LimitOrder
		if err := json.Unmarshal(iterator.Value(), &order); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders
}

// OrdersByCreator returns the orders created by one address.
func (k Keeper) OrdersByCreator(ctx context.Context, creator sdk.AccAddress) []types.LimitOrder {
	var orders []types.LimitOrder
	prefix := types.GetOrderByCreatorKey(creator, "")
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), prefix)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		orderAddress := string(iterator.Key()[len(prefix):])
		order, err := k.GetOrder(ctx, orderAddress)
		if err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders
}

// OpenOrders returns every order currently in the open state.
func (k Keeper) OpenOrders(ctx context.Context) []types.LimitOrder {
	var orders []types.LimitOrder
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.OrderOpenPrefix)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		orderAddress := string(iterator.Key()[len(types.OrderOpenPrefix):])
		order, err := k.GetOrder(ctx, orderAddress)
		if err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders
}

// CreateLimitOrder escrows the creator's funds and opens a resting order.
func (k Keeper) CreateLimitOrder(ctx context.Context, msg *types.MsgCreateLimitOrder) (types.LimitOrder, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return types.LimitOrder{}, types.ErrInvalidCreator.Wrap(err.Error())
	}
	orderAddress := types.OrderAddress(creator, msg.Nonce).String()
	if k.getStore(ctx).Has(types.GetOrderKey(orderAddress)) {
		return types.LimitOrder{}, types.ErrInvalidState.Wrapf("order %s already exists", orderAddress)
	}

	if _, err := k.GetMintInfo(ctx, msg.InputMint); err != nil {
		return types.LimitOrder{}, err
	}
	if _, err := k.GetMintInfo(ctx, msg.OutputMint); err != nil {
		return types.LimitOrder{}, err
	}
	expiry := time.Unix(msg.Expiry, 0).UTC()
	if !expiry.After(sdkCtx.BlockTime()) {
		return types.LimitOrder{}, types.ErrInvalidExpiry.Wrapf("expiry %s, block time %s", expiry, sdkCtx.BlockTime())
	}

	escrow := types.EscrowAccountAddress(sdk.MustAccAddressFromBech32(orderAddress)).String()
	if err := k.createEscrowAccount(ctx, escrow, msg.InputMint); err != nil {
		return types.LimitOrder{}, err
	}
	if err := k.TransferTokens(ctx, msg.Creator, msg.UserSourceAccount, escrow, msg.InputAmount); err != nil {
		return types.LimitOrder{}, err
	}

	order := types.LimitOrder{
		Address:                orderAddress,
		Creator:                msg.Creator,
		Nonce:                  msg.Nonce,
		InputMint:              msg.InputMint,
		OutputMint:             msg.OutputMint,
		InputVault:             escrow,
		UserSourceAccount:      msg.UserSourceAccount,
		UserDestinationAccount: msg.UserDestinationAccount,
		InputAmount:            msg.InputAmount,
		MinOutputAmount:        msg.MinOutputAmount,
		TriggerPriceBps:        msg.TriggerPriceBps,
		TriggerType:            msg.TriggerType,
		Expiry:                 expiry,
		Status:                 types.OrderStatusOpen,
		SlippageBps:            msg.SlippageBps,
		CreatedAtHeight:        sdkCtx.BlockHeight(),
	}
	if err := k.SetOrder(ctx, order); err != nil {
		return types.LimitOrder{}, err
	}
	return order, nil
}

// OrderExecution reports the outcome of a successful order settlement.
type OrderExecution struct {
	Order  types.LimitOrder
	Net    math.Int
	Fee    math.Int
	Events []types.SwapEventData
}

// ExecuteLimitOrder settles an open order through the route machinery. The
// caller stages it on a cache context; nothing here commits partially.
func (k Keeper) ExecuteLimitOrder(ctx context.Context, msg *types.MsgExecuteLimitOrder) (OrderExecution, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	registry, err := k.GetRegistry(ctx)
	if err != nil {
		return OrderExecution{}, err
	}
	if !registry.IsOperator(msg.Operator) && !registry.IsAuthority(msg.Operator) {
		return OrderExecution{}, types.ErrInvalidOperator.Wrap(msg.Operator)
	}

	order, err := k.GetOrder(ctx, msg.OrderAddress)
	if err != nil {
		return OrderExecution{}, err
	}
	if order.Status != types.OrderStatusOpen {
		return OrderExecution{}, types.ErrInvalidOrderStatus.Wrapf("order is %s", order.Status)
	}
	if !sdkCtx.BlockTime().Before(order.Expiry) {
		return OrderExecution{}, types.ErrOrderExpired.Wrapf("expired at %s", order.Expiry)
	}

	// Cheap rejection against the quote before any funds move.
	fired := order.ShouldExecute(msg.QuotedOutAmount)
	GetRouterMetrics().ObserveTriggerCheck(order.TriggerType, fired)
	if !fired {
		return OrderExecution{}, types.ErrTriggerPriceNotMet.Wrapf("quoted %s against baseline %s", msg.QuotedOutAmount, order.MinOutputAmount)
	}

	// The plan must draw from this order's own escrow, nothing else.
	first := msg.RoutePlan[0]
	if int(first.InputIndex) >= len(msg.AuxAccounts) || msg.AuxAccounts[first.InputIndex] != order.InputVault {
		return OrderExecution{}, types.ErrInvalidVaultAddress.Wrap("route does not start at the order escrow")
	}

	vault, err := k.GetVaultAuthority(ctx)
	if err != nil {
		return OrderExecution{}, err
	}
	destEscrow, err := k.GetTokenAccount(ctx, msg.VaultDestinationAccount)
	if err != nil {
		return OrderExecution{}, err
	}
	if destEscrow.Owner != vault.Authority {
		return OrderExecution{}, types.ErrInvalidVaultAddress.Wrap("destination escrow is not vault-owned")
	}
	if destEscrow.Mint != order.OutputMint {
		return OrderExecution{}, types.ErrInvalidMint.Wrapf("destination escrow holds %s, order outputs %s", destEscrow.Mint, order.OutputMint)
	}

	inputMint, err := k.GetMintInfo(ctx, order.InputMint)
	if err != nil {
		return OrderExecution{}, err
	}
	outputMint, err := k.GetMintInfo(ctx, order.OutputMint)
	if err != nil {
		return OrderExecution{}, err
	}
	if err := k.ValidateRoute(ctx, registry, inputMint.TokenEngine, outputMint.TokenEngine,
		order.InputMint, order.OutputMint, msg.RoutePlan, msg.AuxAccounts, order.InputAmount); err != nil {
		return OrderExecution{}, err
	}

	realized, events, err := k.ExecuteRoute(ctx, registry, order.InputMint, order.OutputMint,
		msg.VaultDestinationAccount, msg.RoutePlan, msg.AuxAccounts, order.InputAmount)
	if err != nil {
		return OrderExecution{}, err
	}

	// Authoritative re-check against what the venues actually returned.
	firedRealized := order.ShouldExecute(realized)
	GetRouterMetrics().ObserveTriggerCheck(order.TriggerType, firedRealized)
	if !firedRealized {
		return OrderExecution{}, types.ErrTriggerPriceNotMet.Wrapf("realized %s against baseline %s", realized, order.MinOutputAmount)
	}

	net, fee, err := settleOutput(realized, msg.QuotedOutAmount, msg.PlatformFeeBps, order.SlippageBps)
	if err != nil {
		return OrderExecution{}, err
	}

	if err := k.TransferTokens(ctx, vault.Authority, msg.VaultDestinationAccount, order.UserDestinationAccount, net); err != nil {
		return OrderExecution{}, err
	}

	order.Status = types.OrderStatusFilled
	if err := k.SetOrder(ctx, order); err != nil {
		return OrderExecution{}, err
	}
	if err := k.closeEscrowAccount(ctx, order.InputVault); err != nil {
		return OrderExecution{}, err
	}

	k.Logger(ctx).Info("limit order filled",
		"order", order.Address, "realized", realized.String(), "fee", fee.String(), "net", net.String())

	return OrderExecution{Order: order, Net: net, Fee: fee, Events: events}, nil
}

// ExecuteLimitOrderWithAggregator settles an open order by delegating the
// swap leg to the allow-listed aggregator program. The first two aux
// positions are pinned to the order escrow and the vault destination escrow;
// output is measured as the destination escrow's balance delta.
func (k Keeper) ExecuteLimitOrderWithAggregator(ctx context.Context, msg *types.MsgExecuteLimitOrderWithAggregator) (OrderExecution, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	registry, err := k.GetRegistry(ctx)
	if err != nil {
		return OrderExecution{}, err
	}
	if !registry.IsOperator(msg.Operator) && !registry.IsAuthority(msg.Operator) {
		return OrderExecution{}, types.ErrInvalidOperator.Wrap(msg.Operator)
	}

	order, err := k.GetOrder(ctx, msg.OrderAddress)
	if err != nil {
		return OrderExecution{}, err
	}
	if order.Status != types.OrderStatusOpen {
		return OrderExecution{}, types.ErrInvalidOrderStatus.Wrapf("order is %s", order.Status)
	}
	if !sdkCtx.BlockTime().Before(order.Expiry) {
		return OrderExecution{}, types.ErrOrderExpired.Wrapf("expired at %s", order.Expiry)
	}
	if order.SlippageBps > types.MaxAggregatorSlippageBps {
		return OrderExecution{}, types.ErrInvalidSlippage.Wrapf("%d bps", order.SlippageBps)
	}

	vault, err := k.GetVaultAuthority(ctx)
	if err != nil {
		return OrderExecution{}, err
	}
	if vault.AggregatorProgram == "" || vault.AggregatorProgram != msg.AggregatorProgram {
		return OrderExecution{}, types.ErrAggregatorNotAllowed.Wrap(msg.AggregatorProgram)
	}

	// Pinned account positions: the caller cannot substitute foreign
	// accounts into the delegated call.
	if msg.AuxAccounts[0] != order.InputVault {
		return OrderExecution{}, types.ErrInvalidVaultAddress.Wrap("aux[0] must be the order escrow")
	}
	destEscrow, err := k.GetTokenAccount(ctx, msg.AuxAccounts[1])
	if err != nil {
		return OrderExecution{}, err
	}
	if destEscrow.Owner != vault.Authority {
		return OrderExecution{}, types.ErrInvalidVaultAddress.Wrap("aux[1] must be a vault-owned escrow")
	}
	if destEscrow.Mint != order.OutputMint {
		return OrderExecution{}, types.ErrInvalidMint.Wrapf("aux[1] holds %s, order outputs %s", destEscrow.Mint, order.OutputMint)
	}

	fired := order.ShouldExecute(msg.QuotedOutAmount)
	GetRouterMetrics().ObserveTriggerCheck(order.TriggerType, fired)
	if !fired {
		return OrderExecution{}, types.ErrTriggerPriceNotMet.Wrapf("quoted %s against baseline %s", msg.QuotedOutAmount, order.MinOutputAmount)
	}

	invoker, ok := k.venueFor(msg.AggregatorProgram)
	if !ok {
		return OrderExecution{}, types.ErrInvalidCpiInterface.Wrapf("no invoker wired for aggregator %s", msg.AggregatorProgram)
	}

	before := k.balanceOf(ctx, msg.AuxAccounts[1])
	if err := invoker.Invoke(ctx, types.VenueCall{
		ProgramID: msg.AggregatorProgram,
		Accounts:  msg.AuxAccounts,
		Data:      msg.InstructionData,
		Signer:    vault.Authority,
	}); err != nil {
		return OrderExecution{}, err
	}
	after := k.balanceOf(ctx, msg.AuxAccounts[1])

	realized, err := SafeSub(after, before)
	if err != nil {
		return OrderExecution{}, types.ErrInvalidCalculation.Wrap(err.Error())
	}
	if realized.IsZero() {
		return OrderExecution{}, types.ErrNoOutputProduced
	}

	firedRealized := order.ShouldExecute(realized)
	GetRouterMetrics().ObserveTriggerCheck(order.TriggerType, firedRealized)
	if !firedRealized {
		return OrderExecution{}, types.ErrTriggerPriceNotMet.Wrapf("realized %s against baseline %s", realized, order.MinOutputAmount)
	}

	net, fee, err := settleOutput(realized, msg.QuotedOutAmount, msg.PlatformFeeBps, order.SlippageBps)
	if err != nil {
		return OrderExecution{}, err
	}

	if err := k.TransferTokens(ctx, vault.Authority, msg.AuxAccounts[1], order.UserDestinationAccount, net); err != nil {
		return OrderExecution{}, err
	}

	order.Status = types.OrderStatusFilled
	if err := k.SetOrder(ctx, order); err != nil {
		return OrderExecution{}, err
	}
	if err := k.closeEscrowAccount(ctx, order.InputVault); err != nil {
		return OrderExecution{}, err
	}

	k.Logger(ctx).Info("limit order filled via aggregator",
		"order", order.Address, "realized", realized.String(), "fee", fee.String(), "net", net.String())

	return OrderExecution{Order: order, Net: net, Fee: fee}, nil
}

// CancelLimitOrder refunds an open order's full escrow to its creator.
func (k Keeper) CancelLimitOrder(ctx context.Context, creator, orderAddress string) (types.LimitOrder, math.Int, error) {
	order, err := k.GetOrder(ctx, orderAddress)
	if err != nil {
		return types.LimitOrder{}, math.Int{}, err
	}
	if order.Creator != creator {
		return types.LimitOrder{}, math.Int{}, types.ErrInvalidCreator.Wrapf("%s did not create order %s", creator, orderAddress)
	}
	if order.Status != types.OrderStatusOpen {
		return types.LimitOrder{}, math.Int{}, types.ErrInvalidOrderStatus.Wrapf("order is %s", order.Status)
	}
	return k.refundAndCancel(ctx, order)
}

// CancelExpiredLimitOrder lets a registered operator reclaim an expired open
// order for its creator.
func (k Keeper) CancelExpiredLimitOrder(ctx context.Context, operator, orderAddress string) (types.LimitOrder, math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	registry, err := k.GetRegistry(ctx)
	if err != nil {
		return types.LimitOrder{}, math.Int{}, err
	}
	if !registry.IsOperator(operator) && !registry.IsAuthority(operator) {
		return types.LimitOrder{}, math.Int{}, types.ErrInvalidOperator.Wrap(operator)
	}
	order, err := k.GetOrder(ctx, orderAddress)
	if err != nil {
		return types.LimitOrder{}, math.Int{}, err
	}
	if order.Status != types.OrderStatusOpen {
		return types.LimitOrder{}, math.Int{}, types.ErrInvalidOrderStatus.Wrapf("order is %s", order.Status)
	}
	if sdkCtx.BlockTime().Before(order.Expiry) {
		return types.LimitOrder{}, math.Int{}, types.ErrOrderNotExpired.Wrapf("expires at %s", order.Expiry)
	}
	return k.refundAndCancel(ctx, order)
}

// refundAndCancel moves the full escrow balance back to the creator, closes
// the escrow, and marks the order cancelled. The refund is the exact escrow
// balance so no rounding loss is possible.
func (k Keeper) refundAndCancel(ctx context.Context, order types.LimitOrder) (types.LimitOrder, math.Int, error) {
	vault, err := k.GetVaultAuthority(ctx)
	if err != nil {
		return types.LimitOrder{}, math.Int{}, err
	}
	escrow, err := k.GetTokenAccount(ctx, order.InputVault)
	if err != nil {
		return types.LimitOrder{}, math.Int{}, err
	}
	refundTo, err := k.refundAccount(ctx, order)
	if err != nil {
		return types.LimitOrder{}, math.Int{}, err
	}
	if escrow.Balance.IsPositive() {
		if err := k.TransferTokens(ctx, vault.Authority, order.InputVault, refundTo, escrow.Balance); err != nil {
			return types.LimitOrder{}, math.Int{}, err
		}
	}
	if err := k.closeEscrowAccount(ctx, order.InputVault); err != nil {
		return types.LimitOrder{}, math.Int{}, err
	}
	order.Status = types.OrderStatusCancelled
	if err := k.SetOrder(ctx, order); err != nil {
		return types.LimitOrder{}, math.Int{}, err
	}
	return order, escrow.Balance, nil
}

// refundAccount resolves where a cancellation pays back to: the recorded user
// source account when it still holds the input mint, otherwise any account
// the creator owns for that mint.
func (k Keeper) refundAccount(ctx context.Context, order types.LimitOrder) (string, error) {
	if order.UserSourceAccount != "" {
		if acc, err := k.GetTokenAccount(ctx, order.UserSourceAccount); err == nil && acc.Mint == order.InputMint {
			return order.UserSourceAccount, nil
		}
	}
	for _, acc := range k.AllTokenAccounts(ctx) {
		if acc.Owner == order.Creator && acc.Mint == order.InputMint {
			return acc.Address, nil
		}
	}
	return "", types.ErrAccountNotFound.Wrapf("no %s account owned by %s", order.InputMint, order.Creator)
}

// CloseLimitOrder removes a terminal order record and reclaims any leftover
// escrow account.
func (k Keeper) CloseLimitOrder(ctx context.Context, operator, orderAddress string) error {
	registry, err := k.GetRegistry(ctx)
	if err != nil {
		return err
	}
	if !registry.IsOperator(operator) && !registry.IsAuthority(operator) {
		return types.ErrInvalidOperator.Wrap(operator)
	}
	order, err := k.GetOrder(ctx, orderAddress)
	if err != nil {
		return err
	}
	if !order.Status.IsTerminal() {
		return types.ErrInvalidOrderStatus.Wrapf("order is %s", order.Status)
	}
	// The escrow is usually gone by now; reclaim it if a path left it behind.
	if _, err := k.GetTokenAccount(ctx, order.InputVault); err == nil {
		if err := k.closeEscrowAccount(ctx, order.InputVault); err != nil {
			return err
		}
	}
	k.removeOrder(ctx, order)
	return nil
}
