package types

import (
	"context"

	"cosmossdk.io/math"
)

// QueryServer is the read surface of the exchange module.
type QueryServer interface {
	Exchange(context.Context, *QueryExchangeRequest) (*QueryExchangeResponse, error)
	Reserves(context.Context, *QueryReservesRequest) (*QueryReservesResponse, error)
	AmountOut(context.Context, *QueryAmountOutRequest) (*QueryAmountResponse, error)
	AmountIn(context.Context, *QueryAmountInRequest) (*QueryAmountResponse, error)
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
}

// QueryExchangeRequest looks an exchange up by id, or by token id when
// ExchangeId is zero.
type QueryExchangeRequest struct {
	ExchangeId uint64 `json:"exchange_id,omitempty"`
	TokenId    uint64 `json:"token_id,omitempty"`
}

type QueryExchangeResponse struct {
	Exchange Exchange `json:"exchange"`
}

type QueryReservesRequest struct {
	ExchangeId uint64 `json:"exchange_id"`
}

type QueryReservesResponse struct {
	CurrencyReserve math.Int `json:"currency_reserve"`
	TokenReserve    math.Int `json:"token_reserve"`
	TotalShares     math.Int `json:"total_shares"`
}

// QueryAmountOutRequest quotes the output of an exact-input swap on one
// exchange. TokenIn selects the direction.
type QueryAmountOutRequest struct {
	ExchangeId uint64   `json:"exchange_id"`
	AmountIn   math.Int `json:"amount_in"`
	TokenIn    bool     `json:"token_in"`
}

// QueryAmountInRequest quotes the input required for an exact output.
type QueryAmountInRequest struct {
	ExchangeId uint64   `json:"exchange_id"`
	AmountOut  math.Int `json:"amount_out"`
	TokenOut   bool     `json:"token_out"`
}

type QueryAmountResponse struct {
	Amount math.Int `json:"amount"`
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}
