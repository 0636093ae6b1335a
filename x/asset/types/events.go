package types

// asset module event types
const (
	EventTypeRegisterAsset = "register_asset"
	EventTypeTransfer      = "asset_transfer"
	EventTypeApprove       = "asset_approve"
	EventTypeMint          = "asset_mint"
	EventTypeBurn          = "asset_burn"

	AttributeKeyAssetID = "asset_id"
	AttributeKeySymbol  = "symbol"
	AttributeKeyFrom    = "from"
	AttributeKeyTo      = "to"
	AttributeKeyOwner   = "owner"
	AttributeKeySpender = "spender"
	AttributeKeyAmount  = "amount"
)
