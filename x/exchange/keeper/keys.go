package keeper

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"

	"github.com/kestrel-labs/kestrel/x/exchange/types"
)

// Store key prefixes for the exchange module
var (
	ParamsKey             = []byte{0x01} // module params
	ExchangeCountKey      = []byte{0x02} // next exchange id counter
	ExchangeKeyPrefix     = []byte{0x03} // exchange id -> Exchange
	ExchangeByTokenPrefix = []byte{0x04} // token asset id -> exchange id
)

// ExchangeKey returns the store key for an exchange record
func ExchangeKey(exchangeID uint64) []byte {
	key := make([]byte, 0, len(ExchangeKeyPrefix)+8)
	key = append(key, ExchangeKeyPrefix...)
	return binary.BigEndian.AppendUint64(key, exchangeID)
}

// ExchangeByTokenKey returns the token-id index key for an exchange
func ExchangeByTokenKey(tokenID uint64) []byte {
	key := make([]byte, 0, len(ExchangeByTokenPrefix)+8)
	key = append(key, ExchangeByTokenPrefix...)
	return binary.BigEndian.AppendUint64(key, tokenID)
}

// ExchangeAccountAddress derives the deterministic custody account of
// an exchange as a module sub-account of its id.
func ExchangeAccountAddress(exchangeID uint64) sdk.AccAddress {
	return sdk.AccAddress(address.Module(types.ModuleName, sdk.Uint64ToBigEndian(exchangeID)))
}
