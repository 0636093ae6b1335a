package types

const (
	// ModuleName defines the module name
	ModuleName = "asset"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for the asset module
	RouterKey = ModuleName
)

// NativeAssetID is the asset id of the chain's base currency. It is
// pre-registered at genesis and can never be re-issued.
const NativeAssetID uint64 = 0
