package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	assettypes "github.com/kestrel-labs/kestrel/x/asset/types"
	"github.com/kestrel-labs/kestrel/x/exchange/types"
)

// Pool state is not stored by this module: reserves are the asset
// ledger balances of the exchange's custody account, and outstanding
// shares are the total supply of its liquidity asset. Every transfer
// through the ledger keeps them consistent for free.

// Reserves returns the current (currency, token) reserves of an exchange
func (k Keeper) Reserves(ctx context.Context, exchange types.Exchange) (currency, token math.Int) {
	account := exchange.CustodyAddress()
	currency = k.assetKeeper.BalanceOf(ctx, assettypes.NativeAssetID, account)
	token = k.assetKeeper.BalanceOf(ctx, exchange.TokenId, account)
	return currency, token
}

// TotalShares returns the outstanding liquidity shares of an exchange
func (k Keeper) TotalShares(ctx context.Context, exchange types.Exchange) math.Int {
	return k.assetKeeper.TotalSupply(ctx, exchange.LiquidityId)
}

// SharesOf returns one provider's liquidity share balance
func (k Keeper) SharesOf(ctx context.Context, exchange types.Exchange, provider sdk.AccAddress) math.Int {
	return k.assetKeeper.BalanceOf(ctx, exchange.LiquidityId, provider)
}
