package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/kestrel-labs/kestrel/x/asset/types"
)

// Allowance returns the spender's remaining allowance over the owner's
// balance, zero if unset
func (k Keeper) Allowance(ctx context.Context, assetID uint64, owner, spender sdk.AccAddress) math.Int {
	bz := k.getStore(ctx).Get(AllowanceKey(assetID, owner, spender))
	if bz == nil {
		return math.ZeroInt()
	}
	var allowance math.Int
	if err := allowance.Unmarshal(bz); err != nil {
		return math.ZeroInt()
	}
	return allowance
}

// Approve sets the spender's allowance to amount. A zero amount clears
// the entry.
func (k Keeper) Approve(ctx context.Context, assetID uint64, owner, spender sdk.AccAddress, amount math.Int) error {
	if !k.HasAsset(ctx, assetID) {
		return types.ErrAssetNotFound.Wrapf("asset %d", assetID)
	}
	if amount.IsNil() || amount.IsNegative() {
		return types.ErrZeroAmount.Wrap("allowance must be non-negative")
	}
	if err := k.setAllowance(ctx, assetID, owner, spender, amount); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeApprove,
			sdk.NewAttribute(types.AttributeKeyAssetID, fmt.Sprintf("%d", assetID)),
			sdk.NewAttribute(types.AttributeKeyOwner, owner.String()),
			sdk.NewAttribute(types.AttributeKeySpender, spender.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// TransferFrom moves amount of the owner's balance to the recipient on
// the spender's authority, decrementing the allowance. It fails without
// effect when the allowance or the owner's balance is short.
func (k Keeper) TransferFrom(ctx context.Context, assetID uint64, spender, owner, to sdk.AccAddress, amount math.Int) error {
	if err := k.CheckTransferFrom(ctx, assetID, spender, owner, amount); err != nil {
		return err
	}

	allowance := k.Allowance(ctx, assetID, owner, spender)
	if err := k.setAllowance(ctx, assetID, owner, spender, allowance.Sub(amount)); err != nil {
		return err
	}
	k.moveBalance(ctx, assetID, owner, to, amount)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTransfer,
			sdk.NewAttribute(types.AttributeKeyAssetID, fmt.Sprintf("%d", assetID)),
			sdk.NewAttribute(types.AttributeKeyFrom, owner.String()),
			sdk.NewAttribute(types.AttributeKeyTo, to.String()),
			sdk.NewAttribute(types.AttributeKeySpender, spender.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// CheckTransferFrom validates a delegated debit without touching state.
// Callers that stage multi-step plans use it to guarantee the later
// commit cannot fail.
func (k Keeper) CheckTransferFrom(ctx context.Context, assetID uint64, spender, owner sdk.AccAddress, amount math.Int) error {
	if err := k.checkTransfer(ctx, assetID, owner, amount); err != nil {
		return err
	}
	if allowance := k.Allowance(ctx, assetID, owner, spender); allowance.LT(amount) {
		return types.ErrInsufficientAllowance.Wrapf(
			"asset %d: allowance %s, need %s", assetID, allowance, amount)
	}
	return nil
}

// IterateAllowances walks every allowance of one asset. The callback
// returns true to stop the iteration.
func (k Keeper) IterateAllowances(ctx context.Context, assetID uint64, cb func(owner, spender sdk.AccAddress, amount math.Int) bool) error {
	store := k.getStore(ctx)
	prefix := AllowancePrefix(assetID)
	iterator := store.Iterator(prefix, append(prefix, 0xFF))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		rest := iterator.Key()[len(prefix):]
		ownerLen := rest[0]
		owner := sdk.AccAddress(rest[1 : 1+ownerLen])
		rest = rest[1+ownerLen:]
		spender := sdk.AccAddress(rest[1 : 1+rest[0]])

		var amount math.Int
		if err := amount.Unmarshal(iterator.Value()); err != nil {
			return fmt.Errorf("failed to unmarshal allowance of asset %d: %w", assetID, err)
		}
		if cb(owner, spender, amount) {
			break
		}
	}
	return nil
}

func (k Keeper) setAllowance(ctx context.Context, assetID uint64, owner, spender sdk.AccAddress, amount math.Int) error {
	store := k.getStore(ctx)
	if amount.IsZero() {
		store.Delete(AllowanceKey(assetID, owner, spender))
		return nil
	}
	bz, err := amount.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal allowance: %w", err)
	}
	store.Set(AllowanceKey(assetID, owner, spender), bz)
	return nil
}
