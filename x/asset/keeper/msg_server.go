package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/kestrel-labs/kestrel/x/asset/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the asset MsgServer
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (m msgServer) RegisterAsset(ctx context.Context, msg *types.MsgRegisterAsset) (*types.MsgRegisterAssetResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	assetID, err := m.Keeper.RegisterAsset(ctx, msg.Name, msg.Symbol, msg.Decimals)
	if err != nil {
		return nil, err
	}
	return &types.MsgRegisterAssetResponse{AssetId: assetID}, nil
}

func (m msgServer) Transfer(ctx context.Context, msg *types.MsgTransfer) (*types.MsgTransferResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	from, err := sdk.AccAddressFromBech32(msg.From)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	to, err := sdk.AccAddressFromBech32(msg.To)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	if err := m.Keeper.Transfer(ctx, msg.AssetId, from, to, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgTransferResponse{}, nil
}

func (m msgServer) Approve(ctx context.Context, msg *types.MsgApprove) (*types.MsgApproveResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	spender, err := sdk.AccAddressFromBech32(msg.Spender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	if err := m.Keeper.Approve(ctx, msg.AssetId, owner, spender, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgApproveResponse{}, nil
}

func (m msgServer) TransferFrom(ctx context.Context, msg *types.MsgTransferFrom) (*types.MsgTransferFromResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	spender, err := sdk.AccAddressFromBech32(msg.Spender)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	to, err := sdk.AccAddressFromBech32(msg.To)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	if err := m.Keeper.TransferFrom(ctx, msg.AssetId, spender, owner, to, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgTransferFromResponse{}, nil
}
