package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	assetkeeper "github.com/kestrel-labs/kestrel/x/asset/keeper"
	assettypes "github.com/kestrel-labs/kestrel/x/asset/types"
	exchangekeeper "github.com/kestrel-labs/kestrel/x/exchange/keeper"
	exchangetypes "github.com/kestrel-labs/kestrel/x/exchange/types"
)

// ExchangeKeepers builds an in-memory asset keeper and exchange keeper
// sharing one commit multistore, with both modules at default genesis.
func ExchangeKeepers(t testing.TB) (*exchangekeeper.Keeper, *assetkeeper.Keeper, sdk.Context) {
	assetStoreKey := storetypes.NewKVStoreKey(assettypes.StoreKey)
	exchangeStoreKey := storetypes.NewKVStoreKey(exchangetypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(assetStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(exchangeStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	ak := assetkeeper.NewKeeper(assetStoreKey)
	ek := exchangekeeper.NewKeeper(exchangeStoreKey, ak)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	require.NoError(t, ak.InitGenesis(ctx, *assettypes.DefaultGenesis()))
	require.NoError(t, ek.InitGenesis(ctx, *exchangetypes.DefaultGenesis()))

	return ek, ak, ctx
}

// AssetKeeper builds a standalone in-memory asset keeper at default genesis.
func AssetKeeper(t testing.TB) (*assetkeeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(assettypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	ak := assetkeeper.NewKeeper(storeKey)
	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())
	require.NoError(t, ak.InitGenesis(ctx, *assettypes.DefaultGenesis()))

	return ak, ctx
}

// FundAccount mints balance to an account, registering the asset first
// when it does not exist yet.
func FundAccount(t testing.TB, ak *assetkeeper.Keeper, ctx sdk.Context, assetID uint64, addr sdk.AccAddress, amount math.Int) {
	if !ak.HasAsset(ctx, assetID) {
		t.Fatalf("asset %d not registered", assetID)
	}
	require.NoError(t, ak.Mint(ctx, assetID, addr, amount))
}
