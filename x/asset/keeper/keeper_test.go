package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/kestrel-labs/kestrel/testutil/keeper"
	"github.com/kestrel-labs/kestrel/x/asset/types"
)

var (
	alice = sdk.AccAddress([]byte("alice_______________"))
	bob   = sdk.AccAddress([]byte("bob_________________"))
	carol = sdk.AccAddress([]byte("carol_______________"))
)

func TestRegisterAsset(t *testing.T) {
	k, ctx := testkeeper.AssetKeeper(t)

	id, err := k.RegisterAsset(ctx, "Test Token", "TST", 6)
	require.NoError(t, err)
	require.Equal(t, uint64(1), id)

	info, err := k.GetAssetInfo(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Test Token", info.Name)
	require.Equal(t, "TST", info.Symbol)
	require.Equal(t, uint8(6), info.Decimals)
	require.True(t, k.TotalSupply(ctx, id).IsZero())

	// ids are sequential
	id2, err := k.RegisterAsset(ctx, "Other", "OTH", 0)
	require.NoError(t, err)
	require.Equal(t, uint64(2), id2)
}

func TestRegisterAssetInvalidInfo(t *testing.T) {
	k, ctx := testkeeper.AssetKeeper(t)

	_, err := k.RegisterAsset(ctx, "", "TST", 6)
	require.ErrorIs(t, err, types.ErrInvalidAssetInfo)

	_, err = k.RegisterAsset(ctx, "Test", "", 6)
	require.ErrorIs(t, err, types.ErrInvalidAssetInfo)

	_, err = k.RegisterAsset(ctx, "Test", "TST", 19)
	require.ErrorIs(t, err, types.ErrInvalidAssetInfo)
}

func TestMintAndBurn(t *testing.T) {
	k, ctx := testkeeper.AssetKeeper(t)
	id, err := k.RegisterAsset(ctx, "Test", "TST", 6)
	require.NoError(t, err)

	require.NoError(t, k.Mint(ctx, id, alice, math.NewInt(1000)))
	require.Equal(t, math.NewInt(1000), k.BalanceOf(ctx, id, alice))
	require.Equal(t, math.NewInt(1000), k.TotalSupply(ctx, id))

	require.NoError(t, k.Burn(ctx, id, alice, math.NewInt(400)))
	require.Equal(t, math.NewInt(600), k.BalanceOf(ctx, id, alice))
	require.Equal(t, math.NewInt(600), k.TotalSupply(ctx, id))

	err = k.Burn(ctx, id, alice, math.NewInt(601))
	require.ErrorIs(t, err, types.ErrInsufficientBalance)

	err = k.Mint(ctx, 99, alice, math.NewInt(1))
	require.ErrorIs(t, err, types.ErrAssetNotFound)

	err = k.Mint(ctx, id, alice, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrZeroAmount)
}

func TestTransfer(t *testing.T) {
	k, ctx := testkeeper.AssetKeeper(t)
	id, err := k.RegisterAsset(ctx, "Test", "TST", 6)
	require.NoError(t, err)
	require.NoError(t, k.Mint(ctx, id, alice, math.NewInt(1000)))

	require.NoError(t, k.Transfer(ctx, id, alice, bob, math.NewInt(300)))
	require.Equal(t, math.NewInt(700), k.BalanceOf(ctx, id, alice))
	require.Equal(t, math.NewInt(300), k.BalanceOf(ctx, id, bob))

	tests := []struct {
		name   string
		from   sdk.AccAddress
		amount math.Int
		err    error
	}{
		{"zero amount", alice, math.ZeroInt(), types.ErrZeroAmount},
		{"negative amount", alice, math.NewInt(-5), types.ErrZeroAmount},
		{"insufficient balance", alice, math.NewInt(701), types.ErrInsufficientBalance},
		{"no balance at all", carol, math.NewInt(1), types.ErrInsufficientBalance},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := k.Transfer(ctx, id, tc.from, bob, tc.amount)
			require.ErrorIs(t, err, tc.err)
		})
	}

	// failed transfers leave balances untouched
	require.Equal(t, math.NewInt(700), k.BalanceOf(ctx, id, alice))
	require.Equal(t, math.NewInt(300), k.BalanceOf(ctx, id, bob))
}

func TestAllowances(t *testing.T) {
	k, ctx := testkeeper.AssetKeeper(t)
	id, err := k.RegisterAsset(ctx, "Test", "TST", 6)
	require.NoError(t, err)
	require.NoError(t, k.Mint(ctx, id, alice, math.NewInt(1000)))

	require.True(t, k.Allowance(ctx, id, alice, bob).IsZero())
	require.NoError(t, k.Approve(ctx, id, alice, bob, math.NewInt(500)))
	require.Equal(t, math.NewInt(500), k.Allowance(ctx, id, alice, bob))

	// delegated transfer decrements the allowance
	require.NoError(t, k.TransferFrom(ctx, id, bob, alice, carol, math.NewInt(200)))
	require.Equal(t, math.NewInt(300), k.Allowance(ctx, id, alice, bob))
	require.Equal(t, math.NewInt(800), k.BalanceOf(ctx, id, alice))
	require.Equal(t, math.NewInt(200), k.BalanceOf(ctx, id, carol))

	err = k.TransferFrom(ctx, id, bob, alice, carol, math.NewInt(301))
	require.ErrorIs(t, err, types.ErrInsufficientAllowance)

	// owner balance caps the spend even within the allowance
	require.NoError(t, k.Approve(ctx, id, alice, bob, math.NewInt(10_000)))
	err = k.TransferFrom(ctx, id, bob, alice, carol, math.NewInt(801))
	require.ErrorIs(t, err, types.ErrInsufficientBalance)

	// zero approve clears the entry
	require.NoError(t, k.Approve(ctx, id, alice, bob, math.ZeroInt()))
	require.True(t, k.Allowance(ctx, id, alice, bob).IsZero())
}

func TestGenesisRoundTrip(t *testing.T) {
	k, ctx := testkeeper.AssetKeeper(t)

	id, err := k.RegisterAsset(ctx, "Test", "TST", 6)
	require.NoError(t, err)
	require.NoError(t, k.Mint(ctx, id, alice, math.NewInt(750)))
	require.NoError(t, k.Mint(ctx, id, bob, math.NewInt(250)))
	require.NoError(t, k.Approve(ctx, id, alice, bob, math.NewInt(100)))

	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.NoError(t, exported.Validate())

	k2, ctx2 := testkeeper.AssetKeeper(t)
	require.NoError(t, k2.InitGenesis(ctx2, *exported))

	require.Equal(t, math.NewInt(750), k2.BalanceOf(ctx2, id, alice))
	require.Equal(t, math.NewInt(250), k2.BalanceOf(ctx2, id, bob))
	require.Equal(t, math.NewInt(1000), k2.TotalSupply(ctx2, id))
	require.Equal(t, math.NewInt(100), k2.Allowance(ctx2, id, alice, bob))

	// counters survive the round trip
	next, err := k2.RegisterAsset(ctx2, "Next", "NXT", 0)
	require.NoError(t, err)
	require.Equal(t, id+1, next)
}
