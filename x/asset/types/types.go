package types

import (
	"fmt"
)

const (
	MaxNameLength   = 64
	MaxSymbolLength = 16
	MaxDecimals     = 18
)

// AssetInfo describes a registered asset. Assets are identified by a
// uint64 id allocated at registration time; the info record itself is
// immutable once stored.
type AssetInfo struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

// Validate checks the structural constraints of an asset info record.
func (ai AssetInfo) Validate() error {
	if ai.Name == "" || len(ai.Name) > MaxNameLength {
		return ErrInvalidAssetInfo.Wrapf("name length must be in [1, %d]", MaxNameLength)
	}
	if ai.Symbol == "" || len(ai.Symbol) > MaxSymbolLength {
		return ErrInvalidAssetInfo.Wrapf("symbol length must be in [1, %d]", MaxSymbolLength)
	}
	if ai.Decimals > MaxDecimals {
		return ErrInvalidAssetInfo.Wrapf("decimals must be at most %d", MaxDecimals)
	}
	return nil
}

func (ai AssetInfo) String() string {
	return fmt.Sprintf("%s (%s, %d decimals)", ai.Name, ai.Symbol, ai.Decimals)
}
