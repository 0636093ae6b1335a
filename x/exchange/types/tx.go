package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer is the transaction surface of the exchange module.
type MsgServer interface {
	CreateExchange(context.Context, *MsgCreateExchange) (*MsgCreateExchangeResponse, error)
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	SwapCurrencyForToken(context.Context, *MsgSwapCurrencyForToken) (*MsgSwapResponse, error)
	SwapTokenForCurrency(context.Context, *MsgSwapTokenForCurrency) (*MsgSwapResponse, error)
	SwapTokenForToken(context.Context, *MsgSwapTokenForToken) (*MsgSwapResponse, error)
}

// MsgCreateExchangeResponse carries the (possibly pre-existing) exchange.
type MsgCreateExchangeResponse struct {
	Exchange Exchange `json:"exchange"`
	Created  bool     `json:"created"`
}

// MsgAddLiquidityResponse reports the deposit actually taken.
type MsgAddLiquidityResponse struct {
	SharesMinted    math.Int `json:"shares_minted"`
	TokensDeposited math.Int `json:"tokens_deposited"`
}

// MsgRemoveLiquidityResponse reports the pro-rata payout.
type MsgRemoveLiquidityResponse struct {
	CurrencyOut math.Int `json:"currency_out"`
	TokensOut   math.Int `json:"tokens_out"`
}

// MsgSwapResponse reports the realized output of any swap variant.
type MsgSwapResponse struct {
	AmountOut math.Int `json:"amount_out"`
}
