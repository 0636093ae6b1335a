package types

import (
	"context"
)

// MsgServer is the transaction surface of the asset module.
type MsgServer interface {
	RegisterAsset(context.Context, *MsgRegisterAsset) (*MsgRegisterAssetResponse, error)
	Transfer(context.Context, *MsgTransfer) (*MsgTransferResponse, error)
	Approve(context.Context, *MsgApprove) (*MsgApproveResponse, error)
	TransferFrom(context.Context, *MsgTransferFrom) (*MsgTransferFromResponse, error)
}

// MsgRegisterAssetResponse carries the allocated asset id.
type MsgRegisterAssetResponse struct {
	AssetId uint64 `json:"asset_id"`
}

type MsgTransferResponse struct{}

type MsgApproveResponse struct{}

type MsgTransferFromResponse struct{}
