package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/kestrel-labs/kestrel/x/asset/types"
)

// BalanceOf returns an account's balance of an asset, zero if unset
func (k Keeper) BalanceOf(ctx context.Context, assetID uint64, addr sdk.AccAddress) math.Int {
	bz := k.getStore(ctx).Get(BalanceKey(assetID, addr))
	if bz == nil {
		return math.ZeroInt()
	}
	var balance math.Int
	if err := balance.Unmarshal(bz); err != nil {
		return math.ZeroInt()
	}
	return balance
}

// Transfer moves amount of assetID from one account to another. It
// fails without effect when the amount is not positive or the sender's
// balance is short.
func (k Keeper) Transfer(ctx context.Context, assetID uint64, from, to sdk.AccAddress, amount math.Int) error {
	if err := k.checkTransfer(ctx, assetID, from, amount); err != nil {
		return err
	}
	k.moveBalance(ctx, assetID, from, to, amount)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTransfer,
			sdk.NewAttribute(types.AttributeKeyAssetID, fmt.Sprintf("%d", assetID)),
			sdk.NewAttribute(types.AttributeKeyFrom, from.String()),
			sdk.NewAttribute(types.AttributeKeyTo, to.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// Mint credits amount of assetID to an account and grows the supply.
// Minting is keeper-internal: only modules create units of an asset.
func (k Keeper) Mint(ctx context.Context, assetID uint64, to sdk.AccAddress, amount math.Int) error {
	if !k.HasAsset(ctx, assetID) {
		return types.ErrAssetNotFound.Wrapf("asset %d", assetID)
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrZeroAmount.Wrap("mint amount")
	}

	supply := k.TotalSupply(ctx, assetID)
	newSupply := supply.Add(amount)
	if newSupply.BigInt().BitLen() > 256 {
		return types.ErrSupplyOverflow.Wrapf("asset %d", assetID)
	}
	if err := k.setSupply(ctx, assetID, newSupply); err != nil {
		return err
	}
	if err := k.setBalance(ctx, assetID, to, k.BalanceOf(ctx, assetID, to).Add(amount)); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMint,
			sdk.NewAttribute(types.AttributeKeyAssetID, fmt.Sprintf("%d", assetID)),
			sdk.NewAttribute(types.AttributeKeyTo, to.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// Burn debits amount of assetID from an account and shrinks the supply
func (k Keeper) Burn(ctx context.Context, assetID uint64, from sdk.AccAddress, amount math.Int) error {
	if err := k.checkTransfer(ctx, assetID, from, amount); err != nil {
		return err
	}
	if err := k.setSupply(ctx, assetID, k.TotalSupply(ctx, assetID).Sub(amount)); err != nil {
		return err
	}
	if err := k.setBalance(ctx, assetID, from, k.BalanceOf(ctx, assetID, from).Sub(amount)); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBurn,
			sdk.NewAttribute(types.AttributeKeyAssetID, fmt.Sprintf("%d", assetID)),
			sdk.NewAttribute(types.AttributeKeyFrom, from.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// IterateBalances walks every balance of one asset. The callback
// returns true to stop the iteration.
func (k Keeper) IterateBalances(ctx context.Context, assetID uint64, cb func(addr sdk.AccAddress, balance math.Int) bool) error {
	store := k.getStore(ctx)
	prefix := BalancePrefix(assetID)
	iterator := store.Iterator(prefix, append(prefix, 0xFF))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		rest := iterator.Key()[len(prefix):]
		addr := sdk.AccAddress(rest[1 : 1+rest[0]])
		var balance math.Int
		if err := balance.Unmarshal(iterator.Value()); err != nil {
			return fmt.Errorf("failed to unmarshal balance of asset %d: %w", assetID, err)
		}
		if cb(addr, balance) {
			break
		}
	}
	return nil
}

// checkTransfer validates a debit without touching state
func (k Keeper) checkTransfer(ctx context.Context, assetID uint64, from sdk.AccAddress, amount math.Int) error {
	if !k.HasAsset(ctx, assetID) {
		return types.ErrAssetNotFound.Wrapf("asset %d", assetID)
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrZeroAmount.Wrap("transfer amount")
	}
	if balance := k.BalanceOf(ctx, assetID, from); balance.LT(amount) {
		return types.ErrInsufficientBalance.Wrapf(
			"asset %d: balance %s, need %s", assetID, balance, amount)
	}
	return nil
}

// moveBalance performs a pre-validated debit/credit pair
func (k Keeper) moveBalance(ctx context.Context, assetID uint64, from, to sdk.AccAddress, amount math.Int) {
	fromBalance := k.BalanceOf(ctx, assetID, from).Sub(amount)
	_ = k.setBalance(ctx, assetID, from, fromBalance)
	toBalance := k.BalanceOf(ctx, assetID, to).Add(amount)
	_ = k.setBalance(ctx, assetID, to, toBalance)
}

// setBalance writes a balance, deleting the entry when it reaches zero
func (k Keeper) setBalance(ctx context.Context, assetID uint64, addr sdk.AccAddress, balance math.Int) error {
	store := k.getStore(ctx)
	if balance.IsZero() {
		store.Delete(BalanceKey(assetID, addr))
		return nil
	}
	if balance.IsNegative() {
		return types.ErrInsufficientBalance.Wrapf("asset %d: negative balance for %s", assetID, addr)
	}
	bz, err := balance.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal balance: %w", err)
	}
	store.Set(BalanceKey(assetID, addr), bz)
	return nil
}
