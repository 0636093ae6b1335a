package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/kestrel-labs/kestrel/x/exchange/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the exchange MsgServer
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (m msgServer) CreateExchange(ctx context.Context, msg *types.MsgCreateExchange) (*types.MsgCreateExchangeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	exchange, created, err := m.Keeper.CreateExchange(ctx, msg.TokenId)
	if err != nil {
		return nil, err
	}
	return &types.MsgCreateExchangeResponse{Exchange: exchange, Created: created}, nil
}

func (m msgServer) AddLiquidity(ctx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	shares, tokens, err := m.Keeper.AddLiquidity(
		ctx, sender, msg.ExchangeId, msg.CurrencyAmount, msg.MinLiquidity, msg.MaxTokens, msg.Deadline)
	if err != nil {
		return nil, err
	}
	return &types.MsgAddLiquidityResponse{SharesMinted: shares, TokensDeposited: tokens}, nil
}

func (m msgServer) RemoveLiquidity(ctx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	currencyOut, tokensOut, err := m.Keeper.RemoveLiquidity(
		ctx, sender, msg.ExchangeId, msg.Shares, msg.MinCurrency, msg.MinTokens, msg.Deadline)
	if err != nil {
		return nil, err
	}
	return &types.MsgRemoveLiquidityResponse{CurrencyOut: currencyOut, TokensOut: tokensOut}, nil
}

func (m msgServer) SwapCurrencyForToken(ctx context.Context, msg *types.MsgSwapCurrencyForToken) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sender, recipient, err := swapAddresses(msg.Sender, msg.Recipient)
	if err != nil {
		return nil, err
	}
	out, err := m.Keeper.SwapCurrencyForToken(
		ctx, sender, msg.ExchangeId, msg.CurrencyIn, msg.MinTokens, recipient, msg.Deadline)
	if err != nil {
		return nil, err
	}
	return &types.MsgSwapResponse{AmountOut: out}, nil
}

func (m msgServer) SwapTokenForCurrency(ctx context.Context, msg *types.MsgSwapTokenForCurrency) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sender, recipient, err := swapAddresses(msg.Sender, msg.Recipient)
	if err != nil {
		return nil, err
	}
	out, err := m.Keeper.SwapTokenForCurrency(
		ctx, sender, msg.ExchangeId, msg.TokenIn, msg.MinCurrency, recipient, msg.Deadline)
	if err != nil {
		return nil, err
	}
	return &types.MsgSwapResponse{AmountOut: out}, nil
}

func (m msgServer) SwapTokenForToken(ctx context.Context, msg *types.MsgSwapTokenForToken) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sender, recipient, err := swapAddresses(msg.Sender, msg.Recipient)
	if err != nil {
		return nil, err
	}
	out, err := m.Keeper.SwapTokenForToken(
		ctx, sender, msg.Path, msg.AmountIn, msg.MinAmountOut, recipient, msg.Deadline)
	if err != nil {
		return nil, err
	}
	return &types.MsgSwapResponse{AmountOut: out}, nil
}

func swapAddresses(sender, recipient string) (sdk.AccAddress, sdk.AccAddress, error) {
	senderAddr, err := sdk.AccAddressFromBech32(sender)
	if err != nil {
		return nil, nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	recipientAddr, err := sdk.AccAddressFromBech32(recipient)
	if err != nil {
		return nil, nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	return senderAddr, recipientAddr, nil
}
