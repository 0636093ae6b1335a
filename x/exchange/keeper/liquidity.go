package keeper

import (
	"context"
	"fmt"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	assettypes "github.com/kestrel-labs/kestrel/x/asset/types"
	"github.com/kestrel-labs/kestrel/x/exchange/types"
)

// liquidityPlan is a fully validated add-liquidity deposit. Once built,
// committing it cannot fail: every transfer below was pre-checked
// against live balances and allowances.
type liquidityPlan struct {
	exchange     types.Exchange
	currency     math.Int
	tokens       math.Int
	sharesMinted math.Int
}

// AddLiquidity deposits currency plus the matching token amount into an
// exchange and mints liquidity shares to the sender. The token leg is
// pulled with the sender's allowance for the custody account.
//
// On the first deposit the token amount is maxTokens and the shares
// minted equal the custody account's currency balance after the
// deposit. Later deposits take tokens pro rata to the currency amount.
func (k Keeper) AddLiquidity(
	ctx context.Context,
	sender sdk.AccAddress,
	exchangeID uint64,
	currencyAmount, minLiquidity, maxTokens math.Int,
	deadline uint64,
) (sharesMinted, tokensDeposited math.Int, err error) {
	start := time.Now()

	if err := k.checkDeadline(ctx, deadline); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if currencyAmount.IsNil() || !currencyAmount.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrZeroAmount.Wrap("currency amount")
	}
	if maxTokens.IsNil() || !maxTokens.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrZeroAmount.Wrap("max tokens")
	}
	if minLiquidity.IsNil() || minLiquidity.IsNegative() {
		return math.Int{}, math.Int{}, types.ErrZeroAmount.Wrap("min liquidity must be non-negative")
	}
	if err := checkBalance(currencyAmount); err != nil {
		return math.Int{}, math.Int{}, err
	}

	exchange, err := k.GetExchange(ctx, exchangeID)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	plan, err := k.planAddLiquidity(ctx, sender, exchange, currencyAmount, minLiquidity, maxTokens)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.commitAddLiquidity(ctx, sender, plan); err != nil {
		return math.Int{}, math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAddLiquidity,
			sdk.NewAttribute(types.AttributeKeyExchangeID, fmt.Sprintf("%d", exchange.Id)),
			sdk.NewAttribute(types.AttributeKeySender, sender.String()),
			sdk.NewAttribute(types.AttributeKeyCurrencyAmount, plan.currency.String()),
			sdk.NewAttribute(types.AttributeKeyTokenAmount, plan.tokens.String()),
			sdk.NewAttribute(types.AttributeKeyShares, plan.sharesMinted.String()),
		),
	)
	k.metrics.LiquidityAddsTotal.Inc()
	k.metrics.OperationDuration.WithLabelValues("add_liquidity").Observe(time.Since(start).Seconds())

	return plan.sharesMinted, plan.tokens, nil
}

// planAddLiquidity computes the deposit and pre-validates every
// transfer without touching state.
func (k Keeper) planAddLiquidity(
	ctx context.Context,
	sender sdk.AccAddress,
	exchange types.Exchange,
	currencyAmount, minLiquidity, maxTokens math.Int,
) (liquidityPlan, error) {
	custody := exchange.CustodyAddress()
	totalShares := k.TotalShares(ctx, exchange)

	plan := liquidityPlan{exchange: exchange, currency: currencyAmount}
	if totalShares.IsPositive() {
		currencyReserve, tokenReserve := k.Reserves(ctx, exchange)
		if !currencyReserve.IsPositive() {
			return liquidityPlan{}, types.ErrEmptyPool.Wrapf("exchange %d has shares but no currency reserve", exchange.Id)
		}

		tokenAmount, err := SafeMulDiv(currencyAmount, tokenReserve, currencyReserve)
		if err != nil {
			return liquidityPlan{}, err
		}
		minted, err := SafeMulDiv(currencyAmount, totalShares, currencyReserve)
		if err != nil {
			return liquidityPlan{}, err
		}

		if tokenAmount.GT(maxTokens) {
			return liquidityPlan{}, types.ErrSlippageExceeded.Wrapf(
				"deposit needs %s tokens, max %s", tokenAmount, maxTokens)
		}
		if minted.LT(minLiquidity) {
			return liquidityPlan{}, types.ErrSlippageExceeded.Wrapf(
				"would mint %s shares, min %s", minted, minLiquidity)
		}
		plan.tokens = tokenAmount
		plan.sharesMinted = minted
	} else {
		// First deposit sets the initial price; shares minted equal the
		// custody account's currency balance after the deposit.
		initial, err := SafeAdd(k.assetKeeper.BalanceOf(ctx, assettypes.NativeAssetID, custody), currencyAmount)
		if err != nil {
			return liquidityPlan{}, err
		}
		params := k.GetParams(ctx)
		if initial.LT(params.MinLiquidity) {
			return liquidityPlan{}, types.ErrBelowMinimumLiquidity.Wrapf(
				"initial deposit %s below minimum %s", initial, params.MinLiquidity)
		}
		plan.tokens = maxTokens
		plan.sharesMinted = initial
	}

	if balance := k.assetKeeper.BalanceOf(ctx, assettypes.NativeAssetID, sender); balance.LT(currencyAmount) {
		return liquidityPlan{}, types.ErrInsufficientBalance.Wrapf(
			"currency balance %s, need %s", balance, currencyAmount)
	}
	if err := k.assetKeeper.CheckTransferFrom(ctx, exchange.TokenId, custody, sender, plan.tokens); err != nil {
		return liquidityPlan{}, err
	}
	return plan, nil
}

// commitAddLiquidity applies a pre-validated deposit
func (k Keeper) commitAddLiquidity(ctx context.Context, sender sdk.AccAddress, plan liquidityPlan) error {
	custody := plan.exchange.CustodyAddress()
	if err := k.assetKeeper.Transfer(ctx, assettypes.NativeAssetID, sender, custody, plan.currency); err != nil {
		return err
	}
	if err := k.assetKeeper.TransferFrom(ctx, plan.exchange.TokenId, custody, sender, custody, plan.tokens); err != nil {
		return err
	}
	return k.assetKeeper.Mint(ctx, plan.exchange.LiquidityId, sender, plan.sharesMinted)
}

// RemoveLiquidity burns the sender's liquidity shares and pays out the
// pro-rata slice of both reserves.
func (k Keeper) RemoveLiquidity(
	ctx context.Context,
	sender sdk.AccAddress,
	exchangeID uint64,
	sharesToBurn, minCurrency, minTokens math.Int,
	deadline uint64,
) (currencyOut, tokensOut math.Int, err error) {
	start := time.Now()

	if err := k.checkDeadline(ctx, deadline); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if sharesToBurn.IsNil() || !sharesToBurn.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrZeroAmount.Wrap("shares to burn")
	}
	if minCurrency.IsNil() || minCurrency.IsNegative() || minTokens.IsNil() || minTokens.IsNegative() {
		return math.Int{}, math.Int{}, types.ErrZeroAmount.Wrap("minimum outputs must be non-negative")
	}

	exchange, err := k.GetExchange(ctx, exchangeID)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	totalShares := k.TotalShares(ctx, exchange)
	if !totalShares.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrEmptyPool.Wrapf("exchange %d", exchange.Id)
	}
	if held := k.SharesOf(ctx, exchange, sender); held.LT(sharesToBurn) {
		return math.Int{}, math.Int{}, types.ErrInsufficientBalance.Wrapf(
			"shares held %s, burning %s", held, sharesToBurn)
	}

	currencyReserve, tokenReserve := k.Reserves(ctx, exchange)
	currencyOut, err = SafeMulDiv(sharesToBurn, currencyReserve, totalShares)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	tokensOut, err = SafeMulDiv(sharesToBurn, tokenReserve, totalShares)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	if currencyOut.LT(minCurrency) {
		return math.Int{}, math.Int{}, types.ErrSlippageExceeded.Wrapf(
			"currency out %s below minimum %s", currencyOut, minCurrency)
	}
	if tokensOut.LT(minTokens) {
		return math.Int{}, math.Int{}, types.ErrSlippageExceeded.Wrapf(
			"tokens out %s below minimum %s", tokensOut, minTokens)
	}

	custody := exchange.CustodyAddress()
	if err := k.assetKeeper.Burn(ctx, exchange.LiquidityId, sender, sharesToBurn); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if currencyOut.IsPositive() {
		if err := k.assetKeeper.Transfer(ctx, assettypes.NativeAssetID, custody, sender, currencyOut); err != nil {
			return math.Int{}, math.Int{}, err
		}
	}
	if tokensOut.IsPositive() {
		if err := k.assetKeeper.Transfer(ctx, exchange.TokenId, custody, sender, tokensOut); err != nil {
			return math.Int{}, math.Int{}, err
		}
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRemoveLiquidity,
			sdk.NewAttribute(types.AttributeKeyExchangeID, fmt.Sprintf("%d", exchange.Id)),
			sdk.NewAttribute(types.AttributeKeySender, sender.String()),
			sdk.NewAttribute(types.AttributeKeyCurrencyAmount, currencyOut.String()),
			sdk.NewAttribute(types.AttributeKeyTokenAmount, tokensOut.String()),
			sdk.NewAttribute(types.AttributeKeyShares, sharesToBurn.String()),
		),
	)
	k.metrics.LiquidityRemovesTotal.Inc()
	k.metrics.OperationDuration.WithLabelValues("remove_liquidity").Observe(time.Since(start).Seconds())

	return currencyOut, tokensOut, nil
}
