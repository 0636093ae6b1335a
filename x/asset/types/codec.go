package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
)

// RegisterCodec registers the module's concrete message types on the
// LegacyAmino codec.
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgRegisterAsset{}, "asset/MsgRegisterAsset", nil)
	cdc.RegisterConcrete(&MsgTransfer{}, "asset/MsgTransfer", nil)
	cdc.RegisterConcrete(&MsgApprove{}, "asset/MsgApprove", nil)
	cdc.RegisterConcrete(&MsgTransferFrom{}, "asset/MsgTransferFrom", nil)
}

// RegisterInterfaces registers the module's interface types.
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	// Msg service registration requires generated service descriptors.
}

var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterCodec(ModuleCdc)
	ModuleCdc.Seal()
}
