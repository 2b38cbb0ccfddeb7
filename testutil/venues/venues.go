// Package venues provides mock venue programs for keeper tests. Each mock
// moves real balances through the module token ledger so adapters observe
// genuine output deltas.
package venues

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"

	"github.com/strait-labs/strait/x/swaprouter/types"
)

// payload mirrors the instruction body adapters serialize for a venue call.
type payload struct {
	Venue         string `json:"venue"`
	Amount        string `json:"amount"`
	InputAccount  string `json:"input_account"`
	OutputAccount string `json:"output_account"`
	Pool          string `json:"pool"`
}

// ConstantRate swaps at a fixed Num/Den rate: it pulls the call amount from
// the input account into ReserveIn and pays amount*Num/Den from ReserveOut
// into the output account. Both reserves must be owned by the call signer.
type ConstantRate struct {
	Ledger     types.TokenLedger
	ReserveIn  string
	ReserveOut string
	Num        int64
	Den        int64
}

var _ types.VenueInvoker = ConstantRate{}

func (v ConstantRate) Invoke(ctx context.Context, call types.VenueCall) error {
	var p payload
	if err := json.Unmarshal(call.Data, &p); err != nil {
		return err
	}
	amount, ok := math.NewIntFromString(p.Amount)
	if !ok {
		return fmt.Errorf("bad amount %q", p.Amount)
	}
	if err := v.Ledger.TransferTokens(ctx, call.Signer, p.InputAccount, v.ReserveIn, amount); err != nil {
		return err
	}
	out := amount.MulRaw(v.Num).QuoRaw(v.Den)
	return v.Ledger.TransferTokens(ctx, call.Signer, v.ReserveOut, p.OutputAccount, out)
}

// ConstantProduct swaps against the live reserve balances with the x*y=k
// rule and no venue fee.
type ConstantProduct struct {
	Ledger     types.TokenLedger
	ReserveIn  string
	ReserveOut string
}

var _ types.VenueInvoker = ConstantProduct{}

func (v ConstantProduct) Invoke(ctx context.Context, call types.VenueCall) error {
	var p payload
	if err := json.Unmarshal(call.Data, &p); err != nil {
		return err
	}
	amount, ok := math.NewIntFromString(p.Amount)
	if !ok {
		return fmt.Errorf("bad amount %q", p.Amount)
	}

	rin, err := v.Ledger.GetTokenAccount(ctx, v.ReserveIn)
	if err != nil {
		return err
	}
	rout, err := v.Ledger.GetTokenAccount(ctx, v.ReserveOut)
	if err != nil {
		return err
	}
	out := rout.Balance.Mul(amount).Quo(rin.Balance.Add(amount))

	if err := v.Ledger.TransferTokens(ctx, call.Signer, p.InputAccount, v.ReserveIn, amount); err != nil {
		return err
	}
	return v.Ledger.TransferTokens(ctx, call.Signer, v.ReserveOut, p.OutputAccount, out)
}

// Aggregator mimics an external aggregator program for the delegated
// execution path: it drains the order escrow pinned at accounts[0] and pays
// balance*Num/Den into the destination escrow at accounts[1], ignoring the
// opaque instruction payload.
type Aggregator struct {
	Ledger     types.TokenLedger
	ReserveIn  string
	ReserveOut string
	Num        int64
	Den        int64
}

var _ types.VenueInvoker = Aggregator{}

func (v Aggregator) Invoke(ctx context.Context, call types.VenueCall) error {
	if len(call.Accounts) < 2 {
		return fmt.Errorf("aggregator call needs 2 accounts, got %d", len(call.Accounts))
	}
	escrow, err := v.Ledger.GetTokenAccount(ctx, call.Accounts[0])
	if err != nil {
		return err
	}
	if err := v.Ledger.TransferTokens(ctx, call.Signer, call.Accounts[0], v.ReserveIn, escrow.Balance); err != nil {
		return err
	}
	out := escrow.Balance.MulRaw(v.Num).QuoRaw(v.Den)
	return v.Ledger.TransferTokens(ctx, call.Signer, v.ReserveOut, call.Accounts[1], out)
}

// Failing rejects every invocation, for rollback tests.
type Failing struct{}

var _ types.VenueInvoker = Failing{}

func (Failing) Invoke(context.Context, types.VenueCall) error {
	return fmt.Errorf("venue unavailable")
}
