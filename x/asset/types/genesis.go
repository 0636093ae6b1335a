package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// GenesisBalance is a single (account, amount) entry of an asset's ledger.
type GenesisBalance struct {
	Address string   `json:"address"`
	Amount  math.Int `json:"amount"`
}

// GenesisAllowance is a single delegated-spend entry.
type GenesisAllowance struct {
	Owner   string   `json:"owner"`
	Spender string   `json:"spender"`
	Amount  math.Int `json:"amount"`
}

// GenesisAsset is the full exported state of one asset.
type GenesisAsset struct {
	Id         uint64             `json:"id"`
	Info       AssetInfo          `json:"info"`
	Supply     math.Int           `json:"supply"`
	Balances   []GenesisBalance   `json:"balances,omitempty"`
	Allowances []GenesisAllowance `json:"allowances,omitempty"`
}

// GenesisState defines the asset module's genesis state.
type GenesisState struct {
	Assets      []GenesisAsset `json:"assets"`
	NextAssetId uint64         `json:"next_asset_id"`
}

// DefaultGenesis returns the default genesis state: the base currency
// registered with zero supply and no other assets.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Assets: []GenesisAsset{
			{
				Id:     NativeAssetID,
				Info:   AssetInfo{Name: "Kestrel", Symbol: "KES", Decimals: 12},
				Supply: math.ZeroInt(),
			},
		},
		NextAssetId: NativeAssetID + 1,
	}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	seen := make(map[uint64]bool, len(gs.Assets))
	for _, asset := range gs.Assets {
		if seen[asset.Id] {
			return fmt.Errorf("duplicate asset id %d", asset.Id)
		}
		seen[asset.Id] = true

		if asset.Id >= gs.NextAssetId {
			return fmt.Errorf("asset id %d not below next asset id %d", asset.Id, gs.NextAssetId)
		}
		if err := asset.Info.Validate(); err != nil {
			return fmt.Errorf("asset %d: %w", asset.Id, err)
		}
		if asset.Supply.IsNil() || asset.Supply.IsNegative() {
			return fmt.Errorf("asset %d: supply must be non-negative", asset.Id)
		}

		sum := math.ZeroInt()
		for _, bal := range asset.Balances {
			if bal.Address == "" {
				return fmt.Errorf("asset %d: balance with empty address", asset.Id)
			}
			if bal.Amount.IsNil() || !bal.Amount.IsPositive() {
				return fmt.Errorf("asset %d: balance of %s must be positive", asset.Id, bal.Address)
			}
			sum = sum.Add(bal.Amount)
		}
		if !sum.Equal(asset.Supply) {
			return fmt.Errorf("asset %d: supply %s does not match sum of balances %s", asset.Id, asset.Supply, sum)
		}

		for _, al := range asset.Allowances {
			if al.Owner == "" || al.Spender == "" {
				return fmt.Errorf("asset %d: allowance with empty owner or spender", asset.Id)
			}
			if al.Amount.IsNil() || !al.Amount.IsPositive() {
				return fmt.Errorf("asset %d: allowance of %s must be positive", asset.Id, al.Owner)
			}
		}
	}

	if !seen[NativeAssetID] {
		return fmt.Errorf("base currency (asset %d) must be registered", NativeAssetID)
	}

	return nil
}
