package types

import (
	"context"

	"cosmossdk.io/math"
)

// VenueCall is the opaque call descriptor an adapter builds for a venue
// program: the target, the ordered accounts the venue reads and writes, the
// serialized instruction payload, and the delegated signer whose authority
// covers the escrow debits the venue performs.
type VenueCall struct {
	ProgramID string
	Accounts  []string
	Data      []byte
	Signer    string
}

// VenueInvoker is the call surface of one external venue program. The router
// treats the invocation as opaque: it trusts only the success/failure signal
// and re-reads token-account balances afterwards to learn the realized
// output. Production deployments register real venue bindings; tests register
// constant-product mocks.
type VenueInvoker interface {
	Invoke(ctx context.Context, call VenueCall) error
}

// TokenLedger is the slice of the keeper's token-account surface that venue
// implementations are allowed to touch. Debits are authorized by the signer
// carried in the VenueCall, never by an ad-hoc key.
type TokenLedger interface {
	GetTokenAccount(ctx context.Context, addr string) (TokenAccount, error)
	TransferTokens(ctx context.Context, signer, from, to string, amount math.Int) error
}
