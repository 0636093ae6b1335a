package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/kestrel-labs/kestrel/testutil/keeper"
	assettypes "github.com/kestrel-labs/kestrel/x/asset/types"
	"github.com/kestrel-labs/kestrel/x/exchange/types"
)

func TestSwapTokenForToken(t *testing.T) {
	ek, ak, ctx := testkeeper.ExchangeKeepers(t)
	poolA := newPool(t, ek, ak, ctx, "AAA", 1_000_000, 1_000_000)
	poolB := newPool(t, ek, ak, ctx, "BBB", 1_000_000, 1_000_000)

	tokensABefore := ak.BalanceOf(ctx, poolA.TokenId, trader)
	tokensBBefore := ak.BalanceOf(ctx, poolB.TokenId, trader)

	path := []types.SwapHandle{
		types.NewExchangeHandle(poolA.Id),
		types.NewExchangeHandle(poolB.Id),
	}
	out, err := ek.SwapTokenForToken(ctx, trader, path,
		math.NewInt(1000), math.NewInt(990), trader, noDeadline)
	require.NoError(t, err)

	// 1000 token A -> 996 currency -> 992 token B
	require.Equal(t, math.NewInt(992), out)
	require.Equal(t, tokensABefore.Sub(math.NewInt(1000)), ak.BalanceOf(ctx, poolA.TokenId, trader))
	require.Equal(t, tokensBBefore.Add(out), ak.BalanceOf(ctx, poolB.TokenId, trader))

	// pool A sold currency, pool B gained it
	currencyA, tokenA := ek.Reserves(ctx, poolA)
	require.Equal(t, math.NewInt(999_004), currencyA)
	require.Equal(t, math.NewInt(1_001_000), tokenA)

	currencyB, tokenB := ek.Reserves(ctx, poolB)
	require.Equal(t, math.NewInt(1_000_996), currencyB)
	require.Equal(t, math.NewInt(999_008), tokenB)
}

func TestSwapTokenForTokenByAssetHandle(t *testing.T) {
	ek, ak, ctx := testkeeper.ExchangeKeepers(t)
	poolA := newPool(t, ek, ak, ctx, "AAA", 1_000_000, 1_000_000)
	poolB := newPool(t, ek, ak, ctx, "BBB", 1_000_000, 1_000_000)

	// asset handles resolve through the registry's token index
	path := []types.SwapHandle{
		types.NewAssetHandle(poolA.TokenId),
		types.NewAssetHandle(poolB.TokenId),
	}
	out, err := ek.SwapTokenForToken(ctx, trader, path,
		math.NewInt(1000), math.ZeroInt(), trader, noDeadline)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(992), out)
}

// A failing hop must leave every balance in the path untouched.
func TestSwapTokenForTokenAtomicity(t *testing.T) {
	ek, ak, ctx := testkeeper.ExchangeKeepers(t)
	poolA := newPool(t, ek, ak, ctx, "AAA", 1_000_000, 1_000_000)
	// pool B exists but holds no reserves
	poolB := newExchange(t, ek, ak, ctx, "BBB")

	tokensABefore := ak.BalanceOf(ctx, poolA.TokenId, trader)
	tokensBBefore := ak.BalanceOf(ctx, poolB.TokenId, trader)
	currencyABefore, tokenABefore := ek.Reserves(ctx, poolA)
	allowanceBefore := ak.Allowance(ctx, poolA.TokenId, trader, poolA.CustodyAddress())

	path := []types.SwapHandle{
		types.NewExchangeHandle(poolA.Id),
		types.NewExchangeHandle(poolB.Id),
	}
	_, err := ek.SwapTokenForToken(ctx, trader, path,
		math.NewInt(1000), math.ZeroInt(), trader, noDeadline)
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)

	// nothing anywhere in the path moved
	require.Equal(t, tokensABefore, ak.BalanceOf(ctx, poolA.TokenId, trader))
	require.Equal(t, tokensBBefore, ak.BalanceOf(ctx, poolB.TokenId, trader))
	require.Equal(t, allowanceBefore, ak.Allowance(ctx, poolA.TokenId, trader, poolA.CustodyAddress()))

	currencyA, tokenA := ek.Reserves(ctx, poolA)
	require.Equal(t, currencyABefore, currencyA)
	require.Equal(t, tokenABefore, tokenA)
}

func TestSwapTokenForTokenThreeHops(t *testing.T) {
	ek, ak, ctx := testkeeper.ExchangeKeepers(t)
	poolA := newPool(t, ek, ak, ctx, "AAA", 1_000_000, 1_000_000)
	poolM := newPool(t, ek, ak, ctx, "MMM", 1_000_000, 1_000_000)
	poolB := newPool(t, ek, ak, ctx, "BBB", 1_000_000, 1_000_000)

	path := []types.SwapHandle{
		types.NewExchangeHandle(poolA.Id),
		types.NewExchangeHandle(poolM.Id),
		types.NewExchangeHandle(poolB.Id),
	}
	out, err := ek.SwapTokenForToken(ctx, trader, path,
		math.NewInt(1000), math.ZeroInt(), trader, noDeadline)
	require.NoError(t, err)

	// each intermediate pool takes its fee twice (currency -> token -> currency)
	require.True(t, out.LT(math.NewInt(992)), "three hops cost more than two, got %s", out)
	require.True(t, out.IsPositive())

	// the middle pool's token reserve is unchanged; it netted currency
	currencyM, tokenM := ek.Reserves(ctx, poolM)
	require.Equal(t, math.NewInt(1_000_000), tokenM)
	require.True(t, currencyM.GT(math.NewInt(1_000_000)))
}

func TestSwapTokenForTokenPathValidation(t *testing.T) {
	ek, ak, ctx := testkeeper.ExchangeKeepers(t)
	poolA := newPool(t, ek, ak, ctx, "AAA", 1_000_000, 1_000_000)
	poolB := newPool(t, ek, ak, ctx, "BBB", 1_000_000, 1_000_000)

	// too short
	_, err := ek.SwapTokenForToken(ctx, trader,
		[]types.SwapHandle{types.NewExchangeHandle(poolA.Id)},
		math.NewInt(1000), math.ZeroInt(), trader, noDeadline)
	require.ErrorIs(t, err, types.ErrInvalidSwapPath)

	// same exchange at both ends
	_, err = ek.SwapTokenForToken(ctx, trader,
		[]types.SwapHandle{types.NewExchangeHandle(poolA.Id), types.NewExchangeHandle(poolA.Id)},
		math.NewInt(1000), math.ZeroInt(), trader, noDeadline)
	require.ErrorIs(t, err, types.ErrInvalidSwapPath)

	// longer than the configured maximum
	long := []types.SwapHandle{
		types.NewExchangeHandle(poolA.Id),
		types.NewExchangeHandle(poolB.Id),
		types.NewExchangeHandle(poolA.Id),
		types.NewExchangeHandle(poolB.Id),
		types.NewExchangeHandle(poolA.Id),
	}
	_, err = ek.SwapTokenForToken(ctx, trader, long,
		math.NewInt(1000), math.ZeroInt(), trader, noDeadline)
	require.ErrorIs(t, err, types.ErrInvalidSwapPath)

	// unknown exchange in the path
	_, err = ek.SwapTokenForToken(ctx, trader,
		[]types.SwapHandle{types.NewExchangeHandle(poolA.Id), types.NewExchangeHandle(99)},
		math.NewInt(1000), math.ZeroInt(), trader, noDeadline)
	require.ErrorIs(t, err, types.ErrExchangeNotFound)
}

func TestSwapTokenForTokenSlippage(t *testing.T) {
	ek, ak, ctx := testkeeper.ExchangeKeepers(t)
	poolA := newPool(t, ek, ak, ctx, "AAA", 1_000_000, 1_000_000)
	poolB := newPool(t, ek, ak, ctx, "BBB", 1_000_000, 1_000_000)

	path := []types.SwapHandle{
		types.NewExchangeHandle(poolA.Id),
		types.NewExchangeHandle(poolB.Id),
	}
	_, err := ek.SwapTokenForToken(ctx, trader, path,
		math.NewInt(1000), math.NewInt(993), trader, noDeadline)
	require.ErrorIs(t, err, types.ErrSlippageExceeded)

	// nothing moved
	currencyA, tokenA := ek.Reserves(ctx, poolA)
	require.Equal(t, math.NewInt(1_000_000), currencyA)
	require.Equal(t, math.NewInt(1_000_000), tokenA)
	require.True(t, ak.BalanceOf(ctx, assettypes.NativeAssetID, poolB.CustodyAddress()).Equal(math.NewInt(1_000_000)))
}
