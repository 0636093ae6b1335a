package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/kestrel-labs/kestrel/x/asset/types"
)

// Keeper of the asset ledger store
type Keeper struct {
	storeKey storetypes.StoreKey
}

// NewKeeper creates a new asset Keeper instance
func NewKeeper(key storetypes.StoreKey) *Keeper {
	return &Keeper{storeKey: key}
}

// getStore returns the KVStore for the asset module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}
