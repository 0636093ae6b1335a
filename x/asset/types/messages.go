package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgRegisterAsset{}
	_ sdk.Msg = &MsgTransfer{}
	_ sdk.Msg = &MsgApprove{}
	_ sdk.Msg = &MsgTransferFrom{}
)

// MsgRegisterAsset registers a new asset with zero supply. The id is
// allocated by the module and returned in the response.
type MsgRegisterAsset struct {
	Owner    string `json:"owner"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

func NewMsgRegisterAsset(owner, name, symbol string, decimals uint8) *MsgRegisterAsset {
	return &MsgRegisterAsset{Owner: owner, Name: name, Symbol: symbol, Decimals: decimals}
}

func (m *MsgRegisterAsset) Route() string { return RouterKey }
func (m *MsgRegisterAsset) Type() string  { return "register_asset" }

func (m *MsgRegisterAsset) GetSigners() []sdk.AccAddress {
	owner, err := sdk.AccAddressFromBech32(m.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{owner}
}

func (m *MsgRegisterAsset) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(m))
}

func (m *MsgRegisterAsset) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid owner address: %s", err)
	}
	return AssetInfo{Name: m.Name, Symbol: m.Symbol, Decimals: m.Decimals}.Validate()
}

// MsgTransfer moves an amount of an asset from the signer to another account.
type MsgTransfer struct {
	From    string   `json:"from"`
	AssetId uint64   `json:"asset_id"`
	To      string   `json:"to"`
	Amount  math.Int `json:"amount"`
}

func NewMsgTransfer(from string, assetID uint64, to string, amount math.Int) *MsgTransfer {
	return &MsgTransfer{From: from, AssetId: assetID, To: to, Amount: amount}
}

func (m *MsgTransfer) Route() string { return RouterKey }
func (m *MsgTransfer) Type() string  { return "transfer" }

func (m *MsgTransfer) GetSigners() []sdk.AccAddress {
	from, err := sdk.AccAddressFromBech32(m.From)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{from}
}

func (m *MsgTransfer) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(m))
}

func (m *MsgTransfer) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.From); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid from address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.To); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid to address: %s", err)
	}
	if m.Amount.IsNil() || !m.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "transfer amount")
	}
	return nil
}

// MsgApprove sets the spender's allowance over the signer's balance.
// A zero amount clears the allowance.
type MsgApprove struct {
	Owner   string   `json:"owner"`
	AssetId uint64   `json:"asset_id"`
	Spender string   `json:"spender"`
	Amount  math.Int `json:"amount"`
}

func NewMsgApprove(owner string, assetID uint64, spender string, amount math.Int) *MsgApprove {
	return &MsgApprove{Owner: owner, AssetId: assetID, Spender: spender, Amount: amount}
}

func (m *MsgApprove) Route() string { return RouterKey }
func (m *MsgApprove) Type() string  { return "approve" }

func (m *MsgApprove) GetSigners() []sdk.AccAddress {
	owner, err := sdk.AccAddressFromBech32(m.Owner)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{owner}
}

func (m *MsgApprove) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(m))
}

func (m *MsgApprove) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid owner address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.Spender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid spender address: %s", err)
	}
	if m.Amount.IsNil() || m.Amount.IsNegative() {
		return sdkerrors.Wrap(ErrZeroAmount, "allowance amount must be non-negative")
	}
	return nil
}

// MsgTransferFrom moves an amount of the owner's balance using the
// signer's allowance.
type MsgTransferFrom struct {
	Spender string   `json:"spender"`
	AssetId uint64   `json:"asset_id"`
	Owner   string   `json:"owner"`
	To      string   `json:"to"`
	Amount  math.Int `json:"amount"`
}

func NewMsgTransferFrom(spender string, assetID uint64, owner, to string, amount math.Int) *MsgTransferFrom {
	return &MsgTransferFrom{Spender: spender, AssetId: assetID, Owner: owner, To: to, Amount: amount}
}

func (m *MsgTransferFrom) Route() string { return RouterKey }
func (m *MsgTransferFrom) Type() string  { return "transfer_from" }

func (m *MsgTransferFrom) GetSigners() []sdk.AccAddress {
	spender, err := sdk.AccAddressFromBech32(m.Spender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{spender}
}

func (m *MsgTransferFrom) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(m))
}

func (m *MsgTransferFrom) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Spender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid spender address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid owner address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.To); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid to address: %s", err)
	}
	if m.Amount.IsNil() || !m.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "transfer amount")
	}
	return nil
}
