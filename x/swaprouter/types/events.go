package types

// Event types for the swap router module
const (
	EventTypeSwap           = "swap_step"
	EventTypeRouteCompleted = "route_completed"
	EventTypeOrderCreated   = "limit_order_created"
	EventTypeOrderFilled    = "limit_order_filled"
	EventTypeOrderCancelled = "limit_order_cancelled"
	EventTypeOrderClosed    = "limit_order_closed"
	EventTypeRegistryUpdate = "registry_updated"
	EventTypePoolRegistered = "pool_registered"
	EventTypePoolDisabled   = "pool_disabled"

	AttributeKeyOrderAddress = "order_address"
	AttributeKeyCreator      = "creator"
	AttributeKeyOperator     = "operator"
	AttributeKeySwapType     = "swap_type"
	AttributeKeyInputMint    = "input_mint"
	AttributeKeyOutputMint   = "output_mint"
	AttributeKeyInputAmount  = "input_amount"
	AttributeKeyOutputAmount = "output_amount"
	AttributeKeyFeeAmount    = "fee_amount"
	AttributeKeySteps        = "steps"
	AttributeKeyPoolAddress  = "pool_address"
	AttributeKeyRefund       = "refund_amount"
	AttributeKeyStatus       = "status"
)
