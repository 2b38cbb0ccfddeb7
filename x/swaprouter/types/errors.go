package types

import (
	"cosmossdk.io/errors"
)

// Swap router module sentinel errors
var (
	// Structural / route-shape errors
	ErrEmptyRoute                    = errors.Register(ModuleName, 2, "route plan is empty")
	ErrNotEnoughAccountKeys          = errors.Register(ModuleName, 3, "not enough auxiliary accounts")
	ErrInvalidAccountIndex           = errors.Register(ModuleName, 4, "account index out of range")
	ErrInvalidPartialSwapPercent     = errors.Register(ModuleName, 5, "partial swap percentages must sum to 100")
	ErrInsufficientDexesForPartial   = errors.Register(ModuleName, 6, "partial swap requires at least two distinct venues")
	ErrInvalidMultiHopRoute          = errors.Register(ModuleName, 7, "multi-hop mint chain is inconsistent")
	ErrNoOutputProduced              = errors.Register(ModuleName, 8, "no route step produces the destination mint")
	ErrVaultNotFound                 = errors.Register(ModuleName, 9, "no vault token account for source mint")

	// Authorization errors
	ErrInvalidAuthority = errors.Register(ModuleName, 10, "signer is not the registry authority")
	ErrInvalidOperator  = errors.Register(ModuleName, 11, "signer is not a registered operator")
	ErrInvalidCreator   = errors.Register(ModuleName, 12, "signer is not the order creator")

	// Venue / adapter mismatch errors
	ErrSwapNotSupported   = errors.Register(ModuleName, 13, "swap type not registered or disabled")
	ErrInvalidCpiInterface = errors.Register(ModuleName, 14, "venue program id mismatch")
	ErrInvalidPoolAddress = errors.Register(ModuleName, 15, "pool not registered, disabled, or mismatched")
	ErrInvalidMint        = errors.Register(ModuleName, 16, "mint does not match expected token engine")
	ErrInvalidTokenEngine = errors.Register(ModuleName, 17, "unrecognized token engine")
	ErrInvalidVaultAddress = errors.Register(ModuleName, 18, "account is not the expected vault")

	// Economic errors
	ErrSlippageExceeded   = errors.Register(ModuleName, 19, "output below minimum acceptable amount")
	ErrTriggerPriceNotMet = errors.Register(ModuleName, 20, "trigger condition not met")
	ErrInvalidTriggerPrice = errors.Register(ModuleName, 21, "invalid trigger price")
	ErrInvalidSlippage    = errors.Register(ModuleName, 22, "invalid slippage tolerance")
	ErrInvalidPlatformFee = errors.Register(ModuleName, 23, "invalid platform fee")

	// Arithmetic errors
	ErrInvalidCalculation = errors.Register(ModuleName, 24, "arithmetic over/underflow or zeroed step amount")
	ErrInvalidAmount      = errors.Register(ModuleName, 25, "invalid amount")

	// State errors
	ErrOrderNotFound      = errors.Register(ModuleName, 26, "limit order not found")
	ErrInvalidOrderStatus = errors.Register(ModuleName, 27, "operation not allowed in current order status")
	ErrOrderExpired       = errors.Register(ModuleName, 28, "limit order has expired")
	ErrOrderNotExpired    = errors.Register(ModuleName, 29, "limit order has not expired yet")
	ErrInvalidExpiry      = errors.Register(ModuleName, 30, "expiry must be in the future")
	ErrRegistryNotFound   = errors.Register(ModuleName, 31, "adapter registry not initialized")
	ErrVaultAuthorityNotFound = errors.Register(ModuleName, 32, "vault authority not initialized")
	ErrAccountNotFound    = errors.Register(ModuleName, 33, "token account not found")
	ErrMintNotFound       = errors.Register(ModuleName, 34, "mint not registered")
	ErrInsufficientFunds  = errors.Register(ModuleName, 35, "insufficient token account balance")
	ErrInvalidState       = errors.Register(ModuleName, 36, "corrupted or unexpected store state")
	ErrPoolAlreadyExists  = errors.Register(ModuleName, 37, "pool info already registered")
	ErrAggregatorNotAllowed = errors.Register(ModuleName, 38, "aggregator program not allow-listed")
)
