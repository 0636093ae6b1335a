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

// Single-exchange swaps. Every variant plans first and commits second:
// the quote and all balance/allowance checks run before the first
// ledger write, so a failure at any point leaves state untouched.

// SwapCurrencyForToken sells an exact currency amount for at least
// minTokens tokens, paid to the recipient.
func (k Keeper) SwapCurrencyForToken(
	ctx context.Context,
	sender sdk.AccAddress,
	exchangeID uint64,
	currencyIn, minTokens math.Int,
	recipient sdk.AccAddress,
	deadline uint64,
) (math.Int, error) {
	start := time.Now()

	if err := k.checkDeadline(ctx, deadline); err != nil {
		return math.Int{}, err
	}
	exchange, err := k.GetExchange(ctx, exchangeID)
	if err != nil {
		return math.Int{}, err
	}

	currencyReserve, tokenReserve := k.Reserves(ctx, exchange)
	tokensOut, err := GetInputPrice(currencyIn, currencyReserve, tokenReserve, k.GetParams(ctx))
	if err != nil {
		return math.Int{}, err
	}
	if tokensOut.LT(minTokens) {
		return math.Int{}, types.ErrSlippageExceeded.Wrapf(
			"output %s below minimum %s", tokensOut, minTokens)
	}
	if balance := k.assetKeeper.BalanceOf(ctx, assettypes.NativeAssetID, sender); balance.LT(currencyIn) {
		return math.Int{}, types.ErrInsufficientBalance.Wrapf(
			"currency balance %s, need %s", balance, currencyIn)
	}

	custody := exchange.CustodyAddress()
	if err := k.assetKeeper.Transfer(ctx, assettypes.NativeAssetID, sender, custody, currencyIn); err != nil {
		return math.Int{}, err
	}
	if err := k.assetKeeper.Transfer(ctx, exchange.TokenId, custody, recipient, tokensOut); err != nil {
		return math.Int{}, err
	}

	k.emitSwap(ctx, exchange.Id, sender, recipient, currencyIn, tokensOut)
	k.observeSwap("currency_for_token", start)
	return tokensOut, nil
}

// SwapTokenForCurrency sells an exact token amount for at least
// minCurrency currency, paid to the recipient. The token leg consumes
// the sender's allowance for the custody account.
func (k Keeper) SwapTokenForCurrency(
	ctx context.Context,
	sender sdk.AccAddress,
	exchangeID uint64,
	tokenIn, minCurrency math.Int,
	recipient sdk.AccAddress,
	deadline uint64,
) (math.Int, error) {
	start := time.Now()

	if err := k.checkDeadline(ctx, deadline); err != nil {
		return math.Int{}, err
	}
	exchange, err := k.GetExchange(ctx, exchangeID)
	if err != nil {
		return math.Int{}, err
	}

	currencyReserve, tokenReserve := k.Reserves(ctx, exchange)
	currencyOut, err := GetInputPrice(tokenIn, tokenReserve, currencyReserve, k.GetParams(ctx))
	if err != nil {
		return math.Int{}, err
	}
	if currencyOut.LT(minCurrency) {
		return math.Int{}, types.ErrSlippageExceeded.Wrapf(
			"output %s below minimum %s", currencyOut, minCurrency)
	}

	custody := exchange.CustodyAddress()
	if err := k.assetKeeper.CheckTransferFrom(ctx, exchange.TokenId, custody, sender, tokenIn); err != nil {
		return math.Int{}, err
	}

	if err := k.assetKeeper.TransferFrom(ctx, exchange.TokenId, custody, sender, custody, tokenIn); err != nil {
		return math.Int{}, err
	}
	if err := k.assetKeeper.Transfer(ctx, assettypes.NativeAssetID, custody, recipient, currencyOut); err != nil {
		return math.Int{}, err
	}

	k.emitSwap(ctx, exchange.Id, sender, recipient, tokenIn, currencyOut)
	k.observeSwap("token_for_currency", start)
	return currencyOut, nil
}

// SwapCurrencyForExactToken buys an exact token amount for at most
// maxCurrency currency.
func (k Keeper) SwapCurrencyForExactToken(
	ctx context.Context,
	sender sdk.AccAddress,
	exchangeID uint64,
	tokensOut, maxCurrency math.Int,
	recipient sdk.AccAddress,
	deadline uint64,
) (math.Int, error) {
	start := time.Now()

	if err := k.checkDeadline(ctx, deadline); err != nil {
		return math.Int{}, err
	}
	exchange, err := k.GetExchange(ctx, exchangeID)
	if err != nil {
		return math.Int{}, err
	}

	currencyReserve, tokenReserve := k.Reserves(ctx, exchange)
	currencyIn, err := GetOutputPrice(tokensOut, currencyReserve, tokenReserve, k.GetParams(ctx))
	if err != nil {
		return math.Int{}, err
	}
	if currencyIn.GT(maxCurrency) {
		return math.Int{}, types.ErrSlippageExceeded.Wrapf(
			"input %s above maximum %s", currencyIn, maxCurrency)
	}
	if balance := k.assetKeeper.BalanceOf(ctx, assettypes.NativeAssetID, sender); balance.LT(currencyIn) {
		return math.Int{}, types.ErrInsufficientBalance.Wrapf(
			"currency balance %s, need %s", balance, currencyIn)
	}

	custody := exchange.CustodyAddress()
	if err := k.assetKeeper.Transfer(ctx, assettypes.NativeAssetID, sender, custody, currencyIn); err != nil {
		return math.Int{}, err
	}
	if err := k.assetKeeper.Transfer(ctx, exchange.TokenId, custody, recipient, tokensOut); err != nil {
		return math.Int{}, err
	}

	k.emitSwap(ctx, exchange.Id, sender, recipient, currencyIn, tokensOut)
	k.observeSwap("currency_for_exact_token", start)
	return currencyIn, nil
}

// SwapTokenForExactCurrency buys an exact currency amount for at most
// maxTokens tokens.
func (k Keeper) SwapTokenForExactCurrency(
	ctx context.Context,
	sender sdk.AccAddress,
	exchangeID uint64,
	currencyOut, maxTokens math.Int,
	recipient sdk.AccAddress,
	deadline uint64,
) (math.Int, error) {
	start := time.Now()

	if err := k.checkDeadline(ctx, deadline); err != nil {
		return math.Int{}, err
	}
	exchange, err := k.GetExchange(ctx, exchangeID)
	if err != nil {
		return math.Int{}, err
	}

	currencyReserve, tokenReserve := k.Reserves(ctx, exchange)
	tokenIn, err := GetOutputPrice(currencyOut, tokenReserve, currencyReserve, k.GetParams(ctx))
	if err != nil {
		return math.Int{}, err
	}
	if tokenIn.GT(maxTokens) {
		return math.Int{}, types.ErrSlippageExceeded.Wrapf(
			"input %s above maximum %s", tokenIn, maxTokens)
	}

	custody := exchange.CustodyAddress()
	if err := k.assetKeeper.CheckTransferFrom(ctx, exchange.TokenId, custody, sender, tokenIn); err != nil {
		return math.Int{}, err
	}

	if err := k.assetKeeper.TransferFrom(ctx, exchange.TokenId, custody, sender, custody, tokenIn); err != nil {
		return math.Int{}, err
	}
	if err := k.assetKeeper.Transfer(ctx, assettypes.NativeAssetID, custody, recipient, currencyOut); err != nil {
		return math.Int{}, err
	}

	k.emitSwap(ctx, exchange.Id, sender, recipient, tokenIn, currencyOut)
	k.observeSwap("token_for_exact_currency", start)
	return tokenIn, nil
}

func (k Keeper) emitSwap(ctx context.Context, exchangeID uint64, sender, recipient sdk.AccAddress, amountIn, amountOut math.Int) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyExchangeID, fmt.Sprintf("%d", exchangeID)),
			sdk.NewAttribute(types.AttributeKeySender, sender.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
		),
	)
}

func (k Keeper) observeSwap(direction string, start time.Time) {
	k.metrics.SwapsTotal.WithLabelValues(direction).Inc()
	k.metrics.OperationDuration.WithLabelValues("swap").Observe(time.Since(start).Seconds())
}
