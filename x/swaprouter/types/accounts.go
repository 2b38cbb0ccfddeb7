package types

import (
	"cosmossdk.io/math"
)

// Recognized token-engine identifiers. A mint belongs to exactly one engine
// and a route call must reference the engine matching each of its mints.
const (
	TokenEngineClassic  = "classic"
	TokenEngineExtended = "extended"
)

// IsRecognizedTokenEngine reports whether the identifier names one of the
// token-transfer implementations the router knows how to call.
func IsRecognizedTokenEngine(engine string) bool {
	return engine == TokenEngineClassic || engine == TokenEngineExtended
}

// MintInfo is the persistent record for a token mint.
type MintInfo struct {
	Address     string `json:"address"`
	TokenEngine string `json:"token_engine"`
	Decimals    uint8  `json:"decimals"`
}

// TokenAccount is a balance-bearing account in the module's token ledger.
// Escrow accounts are owned by the vault authority; user accounts by users.
type TokenAccount struct {
	Address string   `json:"address"`
	Mint    string   `json:"mint"`
	Owner   string   `json:"owner"`
	Balance math.Int `json:"balance"`
}

// VaultAuthority is the singleton signing-delegate record. It owns every
// escrow token account; escrow debits require its derived address as signer.
type VaultAuthority struct {
	Admin     string `json:"admin"`
	Authority string `json:"authority"`
	// AggregatorProgram, when set, is the only external aggregator program
	// the delegated-swap path may invoke.
	AggregatorProgram string `json:"aggregator_program,omitempty"`
}
