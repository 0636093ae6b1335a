package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/kestrel-labs/kestrel/testutil/keeper"
	assetkeeper "github.com/kestrel-labs/kestrel/x/asset/keeper"
	assettypes "github.com/kestrel-labs/kestrel/x/asset/types"
	"github.com/kestrel-labs/kestrel/x/exchange/keeper"
	"github.com/kestrel-labs/kestrel/x/exchange/types"
)

var (
	provider = sdk.AccAddress([]byte("provider____________"))
	trader   = sdk.AccAddress([]byte("trader______________"))
	other    = sdk.AccAddress([]byte("other_______________"))
)

const noDeadline = ^uint64(0)

// newToken registers a fresh token asset and funds the provider and
// trader with ample balances of it and of the base currency.
func newToken(t *testing.T, ak *assetkeeper.Keeper, ctx sdk.Context, symbol string) uint64 {
	t.Helper()

	tokenID, err := ak.RegisterAsset(ctx, "Token "+symbol, symbol, 6)
	require.NoError(t, err)

	supply := math.NewInt(100_000_000)
	for _, addr := range []sdk.AccAddress{provider, trader} {
		require.NoError(t, ak.Mint(ctx, tokenID, addr, supply))
		if ak.BalanceOf(ctx, assettypes.NativeAssetID, addr).IsZero() {
			require.NoError(t, ak.Mint(ctx, assettypes.NativeAssetID, addr, supply))
		}
	}
	return tokenID
}

// newExchange registers a token, creates its exchange, and grants the
// custody account unlimited allowances over both funded accounts.
func newExchange(t *testing.T, ek *keeper.Keeper, ak *assetkeeper.Keeper, ctx sdk.Context, symbol string) types.Exchange {
	t.Helper()

	tokenID := newToken(t, ak, ctx, symbol)
	exchange, created, err := ek.CreateExchange(ctx, tokenID)
	require.NoError(t, err)
	require.True(t, created)

	custody := exchange.CustodyAddress()
	limit := math.NewInt(100_000_000)
	for _, addr := range []sdk.AccAddress{provider, trader} {
		require.NoError(t, ak.Approve(ctx, tokenID, addr, custody, limit))
	}
	return exchange
}

// newPool builds an exchange with the given initial reserves.
func newPool(t *testing.T, ek *keeper.Keeper, ak *assetkeeper.Keeper, ctx sdk.Context, symbol string, currency, tokens int64) types.Exchange {
	t.Helper()

	exchange := newExchange(t, ek, ak, ctx, symbol)
	_, _, err := ek.AddLiquidity(ctx, provider, exchange.Id,
		math.NewInt(currency), math.ZeroInt(), math.NewInt(tokens), noDeadline)
	require.NoError(t, err)
	return exchange
}

func TestCustodyAddressesAreDistinct(t *testing.T) {
	a := keeper.ExchangeAccountAddress(1)
	b := keeper.ExchangeAccountAddress(2)
	require.NotEqual(t, a, b)
	// derivation is deterministic
	require.Equal(t, a, keeper.ExchangeAccountAddress(1))
}
