package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/strait-labs/strait/x/swaprouter/types"
)

// Keeper of the swaprouter store. It owns the adapter registry, the module
// token ledger, the limit order book and the vault authority singleton.
type Keeper struct {
	storeKey storetypes.StoreKey
	cdc      codec.BinaryCodec

	// venues maps a venue program address (bech32) to the invoker that
	// executes calls against it. Populated at wiring time; immutable after.
	venues map[string]types.VenueInvoker
}

// NewKeeper creates a new swaprouter Keeper instance.
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
) *Keeper {
	return &Keeper{
		storeKey: key,
		cdc:      cdc,
		venues:   make(map[string]types.VenueInvoker),
	}
}

// RegisterVenue wires an invoker for the given venue program address. Called
// during app construction, before the first block.
func (k *Keeper) RegisterVenue(programID string, invoker types.VenueInvoker) {
	k.venues[programID] = invoker
}

// venueFor returns the invoker wired for a program address.
func (k Keeper) venueFor(programID string) (types.VenueInvoker, bool) {
	invoker, ok := k.venues[programID]
	return invoker, ok
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}

// getStore returns the KVStore for the swaprouter module.
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}
