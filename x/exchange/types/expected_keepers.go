package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AssetKeeper is the asset-ledger surface the exchange module depends
// on. Reserves and liquidity shares are plain ledger state: reserves
// are the custody account's balances, shares are the supply of the
// exchange's liquidity asset.
type AssetKeeper interface {
	RegisterAsset(ctx context.Context, name, symbol string, decimals uint8) (uint64, error)
	HasAsset(ctx context.Context, assetID uint64) bool

	BalanceOf(ctx context.Context, assetID uint64, addr sdk.AccAddress) math.Int
	TotalSupply(ctx context.Context, assetID uint64) math.Int
	Allowance(ctx context.Context, assetID uint64, owner, spender sdk.AccAddress) math.Int

	Transfer(ctx context.Context, assetID uint64, from, to sdk.AccAddress, amount math.Int) error
	TransferFrom(ctx context.Context, assetID uint64, spender, owner, to sdk.AccAddress, amount math.Int) error
	CheckTransferFrom(ctx context.Context, assetID uint64, spender, owner sdk.AccAddress, amount math.Int) error

	Mint(ctx context.Context, assetID uint64, to sdk.AccAddress, amount math.Int) error
	Burn(ctx context.Context, assetID uint64, from sdk.AccAddress, amount math.Int) error
}
