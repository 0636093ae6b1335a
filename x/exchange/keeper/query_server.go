package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/kestrel-labs/kestrel/x/exchange/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the exchange QueryServer
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

func (q queryServer) Exchange(ctx context.Context, req *types.QueryExchangeRequest) (*types.QueryExchangeResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "empty request")
	}

	var (
		exchange types.Exchange
		err      error
	)
	if req.ExchangeId != 0 {
		exchange, err = q.GetExchange(ctx, req.ExchangeId)
	} else {
		exchange, err = q.GetExchangeByToken(ctx, req.TokenId)
	}
	if err != nil {
		return nil, err
	}
	return &types.QueryExchangeResponse{Exchange: exchange}, nil
}

func (q queryServer) Reserves(ctx context.Context, req *types.QueryReservesRequest) (*types.QueryReservesResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "empty request")
	}

	exchange, err := q.GetExchange(ctx, req.ExchangeId)
	if err != nil {
		return nil, err
	}
	currency, token := q.Keeper.Reserves(ctx, exchange)
	return &types.QueryReservesResponse{
		CurrencyReserve: currency,
		TokenReserve:    token,
		TotalShares:     q.TotalShares(ctx, exchange),
	}, nil
}

func (q queryServer) AmountOut(ctx context.Context, req *types.QueryAmountOutRequest) (*types.QueryAmountResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "empty request")
	}

	exchange, err := q.GetExchange(ctx, req.ExchangeId)
	if err != nil {
		return nil, err
	}
	currencyReserve, tokenReserve := q.Keeper.Reserves(ctx, exchange)

	reserveIn, reserveOut := currencyReserve, tokenReserve
	if req.TokenIn {
		reserveIn, reserveOut = tokenReserve, currencyReserve
	}
	out, err := GetInputPrice(req.AmountIn, reserveIn, reserveOut, q.GetParams(ctx))
	if err != nil {
		return nil, err
	}
	return &types.QueryAmountResponse{Amount: out}, nil
}

func (q queryServer) AmountIn(ctx context.Context, req *types.QueryAmountInRequest) (*types.QueryAmountResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "empty request")
	}

	exchange, err := q.GetExchange(ctx, req.ExchangeId)
	if err != nil {
		return nil, err
	}
	currencyReserve, tokenReserve := q.Keeper.Reserves(ctx, exchange)

	// The input side is the opposite leg of the requested output.
	reserveIn, reserveOut := tokenReserve, currencyReserve
	if req.TokenOut {
		reserveIn, reserveOut = currencyReserve, tokenReserve
	}
	in, err := GetOutputPrice(req.AmountOut, reserveIn, reserveOut, q.GetParams(ctx))
	if err != nil {
		return nil, err
	}
	return &types.QueryAmountResponse{Amount: in}, nil
}

func (q queryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "empty request")
	}
	return &types.QueryParamsResponse{Params: q.GetParams(ctx)}, nil
}
