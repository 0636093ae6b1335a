package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
)

// RegisterCodec registers the module's concrete message types on the
// LegacyAmino codec.
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreateExchange{}, "exchange/MsgCreateExchange", nil)
	cdc.RegisterConcrete(&MsgAddLiquidity{}, "exchange/MsgAddLiquidity", nil)
	cdc.RegisterConcrete(&MsgRemoveLiquidity{}, "exchange/MsgRemoveLiquidity", nil)
	cdc.RegisterConcrete(&MsgSwapCurrencyForToken{}, "exchange/MsgSwapCurrencyForToken", nil)
	cdc.RegisterConcrete(&MsgSwapTokenForCurrency{}, "exchange/MsgSwapTokenForCurrency", nil)
	cdc.RegisterConcrete(&MsgSwapTokenForToken{}, "exchange/MsgSwapTokenForToken", nil)
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
