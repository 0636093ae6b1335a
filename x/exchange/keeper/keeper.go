package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/kestrel-labs/kestrel/x/exchange/types"
)

// Keeper of the exchange store
type Keeper struct {
	storeKey    storetypes.StoreKey
	assetKeeper types.AssetKeeper
	metrics     *Metrics
}

// NewKeeper creates a new exchange Keeper instance
func NewKeeper(key storetypes.StoreKey, assetKeeper types.AssetKeeper) *Keeper {
	return &Keeper{
		storeKey:    key,
		assetKeeper: assetKeeper,
		metrics:     GetMetrics(),
	}
}

// getStore returns the KVStore for the exchange module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// checkDeadline gates every state-changing operation on the caller's
// block-height deadline.
func (k Keeper) checkDeadline(ctx context.Context, deadline uint64) error {
	height := uint64(sdk.UnwrapSDKContext(ctx).BlockHeight())
	if height > deadline {
		return types.ErrDeadlineExpired.Wrapf("deadline %d, current height %d", deadline, height)
	}
	return nil
}
