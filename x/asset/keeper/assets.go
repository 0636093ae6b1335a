package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/kestrel-labs/kestrel/x/asset/types"
)

// RegisterAsset allocates the next asset id and stores the info record
// with zero supply.
func (k Keeper) RegisterAsset(ctx context.Context, name, symbol string, decimals uint8) (uint64, error) {
	info := types.AssetInfo{Name: name, Symbol: symbol, Decimals: decimals}
	if err := info.Validate(); err != nil {
		return 0, err
	}

	assetID := k.nextAssetID(ctx)
	if err := k.setAsset(ctx, assetID, info); err != nil {
		return 0, err
	}
	k.setNextAssetID(ctx, assetID+1)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRegisterAsset,
			sdk.NewAttribute(types.AttributeKeyAssetID, fmt.Sprintf("%d", assetID)),
			sdk.NewAttribute(types.AttributeKeySymbol, symbol),
		),
	)
	k.Logger(ctx).Info("registered asset", "asset_id", assetID, "symbol", symbol)

	return assetID, nil
}

// HasAsset reports whether an asset id is registered
func (k Keeper) HasAsset(ctx context.Context, assetID uint64) bool {
	return k.getStore(ctx).Has(AssetInfoKey(assetID))
}

// GetAssetInfo returns the info record of a registered asset
func (k Keeper) GetAssetInfo(ctx context.Context, assetID uint64) (types.AssetInfo, error) {
	bz := k.getStore(ctx).Get(AssetInfoKey(assetID))
	if bz == nil {
		return types.AssetInfo{}, types.ErrAssetNotFound.Wrapf("asset %d", assetID)
	}
	var info types.AssetInfo
	if err := json.Unmarshal(bz, &info); err != nil {
		return types.AssetInfo{}, fmt.Errorf("failed to unmarshal asset %d info: %w", assetID, err)
	}
	return info, nil
}

// TotalSupply returns the total supply of an asset, zero if never minted
func (k Keeper) TotalSupply(ctx context.Context, assetID uint64) math.Int {
	bz := k.getStore(ctx).Get(SupplyKey(assetID))
	if bz == nil {
		return math.ZeroInt()
	}
	var supply math.Int
	if err := supply.Unmarshal(bz); err != nil {
		return math.ZeroInt()
	}
	return supply
}

// IterateAssets walks every registered asset in id order. The callback
// returns true to stop the iteration.
func (k Keeper) IterateAssets(ctx context.Context, cb func(assetID uint64, info types.AssetInfo) bool) error {
	store := k.getStore(ctx)
	iterator := store.Iterator(AssetInfoKeyPrefix, append(AssetInfoKeyPrefix, 0xFF))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		assetID := binary.BigEndian.Uint64(iterator.Key()[len(AssetInfoKeyPrefix):])
		var info types.AssetInfo
		if err := json.Unmarshal(iterator.Value(), &info); err != nil {
			return fmt.Errorf("failed to unmarshal asset %d info: %w", assetID, err)
		}
		if cb(assetID, info) {
			break
		}
	}
	return nil
}

func (k Keeper) setAsset(ctx context.Context, assetID uint64, info types.AssetInfo) error {
	bz, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal asset %d info: %w", assetID, err)
	}
	k.getStore(ctx).Set(AssetInfoKey(assetID), bz)
	return nil
}

func (k Keeper) setSupply(ctx context.Context, assetID uint64, supply math.Int) error {
	store := k.getStore(ctx)
	if supply.IsZero() {
		store.Delete(SupplyKey(assetID))
		return nil
	}
	bz, err := supply.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal supply of asset %d: %w", assetID, err)
	}
	store.Set(SupplyKey(assetID), bz)
	return nil
}

func (k Keeper) nextAssetID(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(NextAssetIDKey)
	if bz == nil {
		return types.NativeAssetID + 1
	}
	return binary.BigEndian.Uint64(bz)
}

func (k Keeper) setNextAssetID(ctx context.Context, next uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, next)
	k.getStore(ctx).Set(NextAssetIDKey, bz)
}
