package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	testkeeper "github.com/kestrel-labs/kestrel/testutil/keeper"
	assettypes "github.com/kestrel-labs/kestrel/x/asset/types"
	"github.com/kestrel-labs/kestrel/x/exchange/types"
)

func TestCreateExchange(t *testing.T) {
	ek, ak, ctx := testkeeper.ExchangeKeepers(t)
	tokenID := newToken(t, ak, ctx, "AAA")

	exchange, created, err := ek.CreateExchange(ctx, tokenID)
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, uint64(1), exchange.Id)
	require.Equal(t, tokenID, exchange.TokenId)
	require.NotEqual(t, tokenID, exchange.LiquidityId)
	require.NotEmpty(t, exchange.Account)

	// the liquidity asset exists in the ledger with zero supply
	require.True(t, ak.HasAsset(ctx, exchange.LiquidityId))
	require.True(t, ak.TotalSupply(ctx, exchange.LiquidityId).IsZero())
}

func TestCreateExchangeIsCreateOrGet(t *testing.T) {
	ek, ak, ctx := testkeeper.ExchangeKeepers(t)
	tokenID := newToken(t, ak, ctx, "AAA")

	first, created, err := ek.CreateExchange(ctx, tokenID)
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := ek.CreateExchange(ctx, tokenID)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, first, second)
}

func TestCreateExchangeInvalidPair(t *testing.T) {
	ek, _, ctx := testkeeper.ExchangeKeepers(t)

	// the base currency cannot trade against itself
	_, _, err := ek.CreateExchange(ctx, assettypes.NativeAssetID)
	require.ErrorIs(t, err, types.ErrInvalidPair)

	// the token must exist in the ledger
	_, _, err = ek.CreateExchange(ctx, 42)
	require.ErrorIs(t, err, types.ErrInvalidPair)
}

func TestExchangeLookups(t *testing.T) {
	ek, ak, ctx := testkeeper.ExchangeKeepers(t)
	tokenA := newToken(t, ak, ctx, "AAA")
	tokenB := newToken(t, ak, ctx, "BBB")

	exchangeA, _, err := ek.CreateExchange(ctx, tokenA)
	require.NoError(t, err)
	exchangeB, _, err := ek.CreateExchange(ctx, tokenB)
	require.NoError(t, err)
	require.Equal(t, exchangeA.Id+1, exchangeB.Id)

	byID, err := ek.GetExchange(ctx, exchangeA.Id)
	require.NoError(t, err)
	require.Equal(t, exchangeA, byID)

	byToken, err := ek.GetExchangeByToken(ctx, tokenB)
	require.NoError(t, err)
	require.Equal(t, exchangeB, byToken)

	byPair, err := ek.GetExchangeByPair(ctx, types.NewTradingPair(tokenA, assettypes.NativeAssetID))
	require.NoError(t, err)
	require.Equal(t, exchangeA, byPair)

	_, err = ek.GetExchange(ctx, 99)
	require.ErrorIs(t, err, types.ErrExchangeNotFound)
	_, err = ek.GetExchangeByToken(ctx, 99)
	require.ErrorIs(t, err, types.ErrExchangeNotFound)

	all, err := ek.GetAllExchanges(ctx)
	require.NoError(t, err)
	require.Equal(t, []types.Exchange{exchangeA, exchangeB}, all)
}

func TestTradingPairCanonicalization(t *testing.T) {
	pair := types.NewTradingPair(7, assettypes.NativeAssetID)
	require.Equal(t, assettypes.NativeAssetID, pair.Base)
	require.Equal(t, uint64(7), pair.Token)
	require.Equal(t, pair, types.NewTradingPair(assettypes.NativeAssetID, 7))
	require.NoError(t, pair.Validate())

	require.ErrorIs(t, types.NewTradingPair(3, 3).Validate(), types.ErrInvalidPair)
	require.ErrorIs(t, types.NewTradingPair(3, 5).Validate(), types.ErrInvalidPair)
}
