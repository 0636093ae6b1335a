package keeper

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Store key prefixes for the asset module
var (
	AssetInfoKeyPrefix = []byte{0x01} // asset id -> AssetInfo
	NextAssetIDKey     = []byte{0x02} // next asset id counter
	SupplyKeyPrefix    = []byte{0x03} // asset id -> total supply
	BalanceKeyPrefix   = []byte{0x04} // asset id + address -> balance
	AllowanceKeyPrefix = []byte{0x05} // asset id + owner + spender -> allowance
)

// AssetInfoKey returns the store key for an asset's info record
func AssetInfoKey(assetID uint64) []byte {
	key := make([]byte, 0, len(AssetInfoKeyPrefix)+8)
	key = append(key, AssetInfoKeyPrefix...)
	return binary.BigEndian.AppendUint64(key, assetID)
}

// SupplyKey returns the store key for an asset's total supply
func SupplyKey(assetID uint64) []byte {
	key := make([]byte, 0, len(SupplyKeyPrefix)+8)
	key = append(key, SupplyKeyPrefix...)
	return binary.BigEndian.AppendUint64(key, assetID)
}

// BalancePrefix returns the per-asset balance range prefix
func BalancePrefix(assetID uint64) []byte {
	key := make([]byte, 0, len(BalanceKeyPrefix)+8)
	key = append(key, BalanceKeyPrefix...)
	return binary.BigEndian.AppendUint64(key, assetID)
}

// BalanceKey returns the store key for one account's balance of an asset.
// The address is length-prefixed so keys cannot collide.
func BalanceKey(assetID uint64, addr sdk.AccAddress) []byte {
	key := BalancePrefix(assetID)
	key = append(key, byte(len(addr)))
	return append(key, addr...)
}

// AllowancePrefix returns the per-asset allowance range prefix
func AllowancePrefix(assetID uint64) []byte {
	key := make([]byte, 0, len(AllowanceKeyPrefix)+8)
	key = append(key, AllowanceKeyPrefix...)
	return binary.BigEndian.AppendUint64(key, assetID)
}

// AllowanceKey returns the store key for a (owner, spender) allowance of an asset
func AllowanceKey(assetID uint64, owner, spender sdk.AccAddress) []byte {
	key := AllowancePrefix(assetID)
	key = append(key, byte(len(owner)))
	key = append(key, owner...)
	key = append(key, byte(len(spender)))
	return append(key, spender...)
}
