package keeper

import (
	"context"
	"encoding/json"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"

	"github.com/strait-labs/strait/x/swaprouter/types"
)

// SetMintInfo stores a mint record.
func (k Keeper) SetMintInfo(ctx context.Context, mint types.MintInfo) error {
	if !types.IsRecognizedTokenEngine(mint.TokenEngine) {
		return types.ErrInvalidTokenEngine.Wrapf("mint %s: %q", mint.Address, mint.TokenEngine)
	}
	bz, err := json.Marshal(mint)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.GetMintInfoKey(mint.Address), bz)
	return nil
}

// GetMintInfo retrieves a mint record by address.
func (k Keeper) GetMintInfo(ctx context.Context, addr string) (types.MintInfo, error) {
	bz := k.getStore(ctx).Get(types.GetMintInfoKey(addr))
	if bz == nil {
		return types.MintInfo{}, types.ErrMintNotFound.Wrap(addr)
	}
	var mint types.MintInfo
	if err := json.Unmarshal(bz, &mint); err != nil {
		return types.MintInfo{}, err
	}
	return mint, nil
}

// AllMintInfos returns every stored mint record, for genesis export.
func (k Keeper) AllMintInfos(ctx context.Context) []types.MintInfo {
	var mints []types.MintInfo
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.MintInfoKeyPrefix)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		var mint types.MintInfo
		if err := json.Unmarshal(iterator.Value(), &mint); err != nil {
			continue
		}
		mints = append(mints, mint)
	}
	return mints
}

// setTokenAccount persists a token account record.
func (k Keeper) setTokenAccount(ctx context.Context, account types.TokenAccount) error {
	bz, err := json.Marshal(account)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.GetTokenAccountKey(account.Address), bz)
	return nil
}

// GetTokenAccount retrieves a token account by address.
func (k Keeper) GetTokenAccount(ctx context.Context, addr string) (types.TokenAccount, error) {
	bz := k.getStore(ctx).Get(types.GetTokenAccountKey(addr))
	if bz == nil {
		return types.TokenAccount{}, types.ErrAccountNotFound.Wrap(addr)
	}
	var account types.TokenAccount
	if err := json.Unmarshal(bz, &account); err != nil {
		return types.TokenAccount{}, err
	}
	return account, nil
}

// AllTokenAccounts returns every token account record, for genesis export.
func (k Keeper) AllTokenAccounts(ctx context.Context) []types.TokenAccount {
	var accounts []types.TokenAccount
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.TokenAccountPrefix)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		var account types.TokenAccount
		if err := json.Unmarshal(iterator.Value(), &account); err != nil {
			continue
		}
		accounts = append(accounts, account)
	}
	return accounts
}

// CreateTokenAccount creates a zero-balance account for the given mint and
// owner. Calling it again with the same parameters is a no-op; any mismatch
// with an existing record is an error.
func (k Keeper) CreateTokenAccount(ctx context.Context, addr, mint, owner string) error {
	if _, err := k.GetMintInfo(ctx, mint); err != nil {
		return err
	}
	if existing, err := k.GetTokenAccount(ctx, addr); err == nil {
		if existing.Mint != mint || existing.Owner != owner {
			return types.ErrInvalidState.Wrapf("account %s already exists with different mint or owner", addr)
		}
		return nil
	}
	return k.setTokenAccount(ctx, types.TokenAccount{
		Address: addr,
		Mint:    mint,
		Owner:   owner,
		Balance: math.ZeroInt(),
	})
}

// CloseTokenAccount deletes an empty token account. Accounts holding a
// balance cannot be closed.
func (k Keeper) CloseTokenAccount(ctx context.Context, addr string) error {
	account, err := k.GetTokenAccount(ctx, addr)
	if err != nil {
		return err
	}
	if account.Balance.IsPositive() {
		return types.ErrInvalidState.Wrapf("account %s holds %s, cannot close", addr, account.Balance)
	}
	k.getStore(ctx).Delete(types.GetTokenAccountKey(addr))
	return nil
}

// TransferTokens moves amount between two accounts of the same mint. The
// signer must own the source account; escrow debits therefore require the
// vault authority as signer.
func (k Keeper) TransferTokens(ctx context.Context, signer, from, to string, amount math.Int) error {
	if !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("transfer amount %s", amount)
	}

	source, err := k.GetTokenAccount(ctx, from)
	if err != nil {
		return err
	}
	if source.Owner != signer {
		return types.ErrInvalidAuthority.Wrapf("signer %s does not own account %s", signer, from)
	}
	dest, err := k.GetTokenAccount(ctx, to)
	if err != nil {
		return err
	}
	if source.Mint != dest.Mint {
		return types.ErrInvalidMint.Wrapf("cannot transfer %s into %s account", source.Mint, dest.Mint)
	}
	if source.Balance.LT(amount) {
		return types.ErrInsufficientFunds.Wrapf("account %s has %s, need %s", from, source.Balance, amount)
	}

	source.Balance = source.Balance.Sub(amount)
	dest.Balance = dest.Balance.Add(amount)
	if err := k.setTokenAccount(ctx, source); err != nil {
		return err
	}
	return k.setTokenAccount(ctx, dest)
}

// MintTokens credits freshly issued units of a mint to an account. Used by
// genesis import and by test fixtures; no message handler reaches it.
func (k Keeper) MintTokens(ctx context.Context, addr string, amount math.Int) error {
	if !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("mint amount %s", amount)
	}
	account, err := k.GetTokenAccount(ctx, addr)
	if err != nil {
		return err
	}
	account.Balance = account.Balance.Add(amount)
	return k.setTokenAccount(ctx, account)
}
