package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "swaprouter"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_" + ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Store key prefixes
var (
	RegistryKey          = []byte{0x01} // singleton adapter registry
	VaultAuthorityKey    = []byte{0x02} // singleton vault authority
	PoolInfoKeyPrefix    = []byte{0x03} // prefix for per-pool enablement records
	MintInfoKeyPrefix    = []byte{0x04} // prefix for mint records
	TokenAccountPrefix   = []byte{0x05} // prefix for token account records
	OrderKeyPrefix       = []byte{0x06} // prefix for limit order records
	OrderByCreatorPrefix = []byte{0x07} // index: creator || order address
	OrderOpenPrefix      = []byte{0x08} // index: open orders
	ParamsKey            = []byte{0x09} // module parameters
)

// Fixed derivation seeds. Every program-controlled address is derived from
// the module name plus one of these seeds and the identifying parameters,
// never from a free-form ID.
var (
	VaultAuthoritySeed = []byte("vault_authority")
	OrderSeed          = []byte("limit_order")
	EscrowSeed         = []byte("order_escrow")
	VenueSeed          = []byte("venue")
	FeeSeed            = []byte("platform_fee")
)

// GetPoolInfoKey returns the store key for a (swap type, pool address) record.
func GetPoolInfoKey(swapType SwapType, poolAddress string) []byte {
	key := append(PoolInfoKeyPrefix, byte(swapType))
	return append(key, []byte(poolAddress)...)
}

// GetMintInfoKey returns the store key for a mint record.
func GetMintInfoKey(mint string) []byte {
	return append(MintInfoKeyPrefix, []byte(mint)...)
}

// GetTokenAccountKey returns the store key for a token account record.
func GetTokenAccountKey(addr string) []byte {
	return append(TokenAccountPrefix, []byte(addr)...)
}

// GetOrderKey returns the store key for a limit order record.
func GetOrderKey(orderAddress string) []byte {
	return append(OrderKeyPrefix, []byte(orderAddress)...)
}

// GetOrderByCreatorKey returns the index key for orders by creator.
func GetOrderByCreatorKey(creator sdk.AccAddress, orderAddress string) []byte {
	key := append(OrderByCreatorPrefix, address.MustLengthPrefix(creator.Bytes())...)
	return append(key, []byte(orderAddress)...)
}

// GetOrderOpenKey returns the index key for open orders.
func GetOrderOpenKey(orderAddress string) []byte {
	return append(OrderOpenPrefix, []byte(orderAddress)...)
}

// VaultAuthorityAddress returns the module-derived signing authority that
// owns every escrow token account.
func VaultAuthorityAddress() sdk.AccAddress {
	return address.Module(ModuleName, VaultAuthoritySeed)
}

// OrderAddress derives the deterministic address of a limit order record
// from its creator and nonce.
func OrderAddress(creator sdk.AccAddress, nonce uint64) sdk.AccAddress {
	return address.Module(ModuleName, OrderSeed, creator.Bytes(), sdk.Uint64ToBigEndian(nonce))
}

// EscrowAccountAddress derives the escrow token account address for an order.
func EscrowAccountAddress(orderAddress sdk.AccAddress) sdk.AccAddress {
	return address.Module(ModuleName, EscrowSeed, orderAddress.Bytes())
}

// FeeAccountAddress derives the vault-owned accrual account platform fees of
// one mint are collected into.
func FeeAccountAddress(mint string) sdk.AccAddress {
	return address.Module(ModuleName, FeeSeed, []byte(mint))
}

// VenueProgramAddress derives the canonical program address for a named
// venue. Concrete adapters hard-code the name, so a misconfigured registry
// cannot redirect their calls.
func VenueProgramAddress(name string) sdk.AccAddress {
	return address.Module(ModuleName, VenueSeed, []byte(name))
}

// IsZeroAddress reports whether addr is absent or decodes to the all-zero
// account, which is never a valid participant in a route.
func IsZeroAddress(addr string) bool {
	if addr == "" {
		return true
	}
	acc, err := sdk.AccAddressFromBech32(addr)
	if err != nil {
		return false
	}
	for _, b := range acc.Bytes() {
		if b != 0 {
			return false
		}
	}
	return true
}
