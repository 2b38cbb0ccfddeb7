package keeper

import (
	"context"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/strait-labs/strait/x/swaprouter/types"
)

// Route validates and executes a swap route end to end: caller funds in,
// venue legs, fee deduction, slippage floor, payout. The msg server stages it
// on a cache context so any failure leaves no partial transfer.
func (k Keeper) Route(ctx context.Context, msg *types.MsgRoute) (math.Int, []types.SwapEventData, error) {
	registry, err := k.GetRegistry(ctx)
	if err != nil {
		return math.Int{}, nil, err
	}

	if err := k.ValidateRoute(ctx, registry, msg.SourceTokenEngine, msg.DestinationTokenEngine,
		msg.SourceMint, msg.DestinationMint, msg.RoutePlan, msg.AuxAccounts, msg.InAmount); err != nil {
		return math.Int{}, nil, err
	}

	vault, err := k.GetVaultAuthority(ctx)
	if err != nil {
		return math.Int{}, nil, err
	}
	destEscrow, err := k.GetTokenAccount(ctx, msg.VaultDestinationAccount)
	if err != nil {
		return math.Int{}, nil, err
	}
	if destEscrow.Owner != vault.Authority {
		return math.Int{}, nil, types.ErrInvalidVaultAddress.Wrap("destination escrow is not vault-owned")
	}
	if destEscrow.Mint != msg.DestinationMint {
		return math.Int{}, nil, types.ErrInvalidMint.Wrapf("destination escrow holds %s, route outputs %s", destEscrow.Mint, msg.DestinationMint)
	}

	// Move the caller's funds into neutral custody before any venue call.
	entryVault, err := k.routeEntryVault(ctx, msg.AuxAccounts, msg.SourceMint)
	if err != nil {
		return math.Int{}, nil, err
	}
	if entryVault.Owner != vault.Authority {
		return math.Int{}, nil, types.ErrInvalidVaultAddress.Wrap("route entry vault is not vault-owned")
	}
	if err := k.TransferTokens(ctx, msg.Caller, msg.UserSourceAccount, entryVault.Address, msg.InAmount); err != nil {
		return math.Int{}, nil, err
	}

	realized, events, err := k.ExecuteRoute(ctx, registry, msg.SourceMint, msg.DestinationMint,
		msg.VaultDestinationAccount, msg.RoutePlan, msg.AuxAccounts, msg.InAmount)
	if err != nil {
		return math.Int{}, nil, err
	}

	net, fee, err := settleOutput(realized, msg.QuotedOutAmount, msg.PlatformFeeBps, msg.SlippageBps)
	if err != nil {
		return math.Int{}, nil, err
	}
	if err := k.collectPlatformFee(ctx, vault.Authority, msg.VaultDestinationAccount, msg.DestinationMint, fee); err != nil {
		return math.Int{}, nil, err
	}
	if err := k.TransferTokens(ctx, vault.Authority, msg.VaultDestinationAccount, msg.UserDestinationAccount, net); err != nil {
		return math.Int{}, nil, err
	}

	k.Logger(ctx).Info("route executed",
		"caller", msg.Caller, "steps", len(msg.RoutePlan), "in", msg.InAmount.String(),
		"realized", realized.String(), "fee", fee.String(), "net", net.String())
	return net, events, nil
}

// RouteAndCreateOrder routes the caller's funds and escrows the net output as
// a freshly opened limit order. The record passes through the transient Init
// status between creation and escrow funding.
func (k Keeper) RouteAndCreateOrder(ctx context.Context, msg *types.MsgRouteAndCreateOrder) (types.LimitOrder, math.Int, []types.SwapEventData, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	registry, err := k.GetRegistry(ctx)
	if err != nil {
		return types.LimitOrder{}, math.Int{}, nil, err
	}
	vault, err := k.GetVaultAuthority(ctx)
	if err != nil {
		return types.LimitOrder{}, math.Int{}, nil, err
	}

	creator, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return types.LimitOrder{}, math.Int{}, nil, types.ErrInvalidCreator.Wrap(err.Error())
	}
	orderAddress := types.OrderAddress(creator, msg.Nonce).String()
	if k.getStore(ctx).Has(types.GetOrderKey(orderAddress)) {
		return types.LimitOrder{}, math.Int{}, nil, types.ErrInvalidState.Wrapf("order %s already exists", orderAddress)
	}
	if _, err := k.GetMintInfo(ctx, msg.OrderOutputMint); err != nil {
		return types.LimitOrder{}, math.Int{}, nil, err
	}
	expiry := time.Unix(msg.OrderExpiry, 0).UTC()
	if !expiry.After(sdkCtx.BlockTime()) {
		return types.LimitOrder{}, math.Int{}, nil, types.ErrInvalidExpiry.Wrapf("expiry %s, block time %s", expiry, sdkCtx.BlockTime())
	}

	if err := k.ValidateRoute(ctx, registry, msg.SourceTokenEngine, msg.DestinationTokenEngine,
		msg.SourceMint, msg.DestinationMint, msg.RoutePlan, msg.AuxAccounts, msg.InAmount); err != nil {
		return types.LimitOrder{}, math.Int{}, nil, err
	}

	// The escrow doubles as the route's vault destination: the realized
	// output lands directly in the order's custody.
	escrow := types.EscrowAccountAddress(sdk.MustAccAddressFromBech32(orderAddress)).String()
	if err := k.createEscrowAccount(ctx, escrow, msg.DestinationMint); err != nil {
		return types.LimitOrder{}, math.Int{}, nil, err
	}

	order := types.LimitOrder{
		Address:                orderAddress,
		Creator:                msg.Caller,
		Nonce:                  msg.Nonce,
		InputMint:              msg.DestinationMint,
		OutputMint:             msg.OrderOutputMint,
		InputVault:             escrow,
		UserSourceAccount:      msg.UserSourceAccount,
		UserDestinationAccount: msg.OrderDestinationAccount,
		InputAmount:            math.ZeroInt(),
		MinOutputAmount:        msg.OrderMinOutputAmount,
		TriggerPriceBps:        msg.OrderTriggerPriceBps,
		TriggerType:            msg.OrderTriggerType,
		Expiry:                 expiry,
		Status:                 types.OrderStatusInit,
		SlippageBps:            msg.OrderSlippageBps,
		CreatedAtHeight:        sdkCtx.BlockHeight(),
	}
	if err := k.SetOrder(ctx, order); err != nil {
		return types.LimitOrder{}, math.Int{}, nil, err
	}

	entryVault, err := k.routeEntryVault(ctx, msg.AuxAccounts, msg.SourceMint)
	if err != nil {
		return types.LimitOrder{}, math.Int{}, nil, err
	}
	if entryVault.Owner != vault.Authority {
		return types.LimitOrder{}, math.Int{}, nil, types.ErrInvalidVaultAddress.Wrap("route entry vault is not vault-owned")
	}
	if err := k.TransferTokens(ctx, msg.Caller, msg.UserSourceAccount, entryVault.Address, msg.InAmount); err != nil {
		return types.LimitOrder{}, math.Int{}, nil, err
	}

	realized, events, err := k.ExecuteRoute(ctx, registry, msg.SourceMint, msg.DestinationMint,
		escrow, msg.RoutePlan, msg.AuxAccounts, msg.InAmount)
	if err != nil {
		return types.LimitOrder{}, math.Int{}, nil, err
	}

	net, fee, err := settleOutput(realized, msg.QuotedOutAmount, msg.PlatformFeeBps, msg.SlippageBps)
	if err != nil {
		return types.LimitOrder{}, math.Int{}, nil, err
	}
	if err := k.collectPlatformFee(ctx, vault.Authority, escrow, msg.DestinationMint, fee); err != nil {
		return types.LimitOrder{}, math.Int{}, nil, err
	}

	order.InputAmount = net
	order.Status = types.OrderStatusOpen
	if err := k.SetOrder(ctx, order); err != nil {
		return types.LimitOrder{}, math.Int{}, nil, err
	}

	k.Logger(ctx).Info("route and create order",
		"caller", msg.Caller, "order", order.Address, "escrowed", net.String(), "fee", fee.String())
	return order, net, events, nil
}

// collectPlatformFee moves a fee out of a vault-owned account into the
// per-mint accrual account, creating it on first use. Zero fees are a no-op.
func (k Keeper) collectPlatformFee(ctx context.Context, vaultAuthority, from, mint string, fee math.Int) error {
	if fee.IsZero() {
		return nil
	}
	feeAccount := types.FeeAccountAddress(mint).String()
	if err := k.CreateTokenAccount(ctx, feeAccount, mint, vaultAuthority); err != nil {
		return err
	}
	return k.TransferTokens(ctx, vaultAuthority, from, feeAccount, fee)
}
