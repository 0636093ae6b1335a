package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-labs/kestrel/x/exchange/types"
)

var (
	addr1 = sdk.AccAddress([]byte("addr1_______________")).String()
	addr2 = sdk.AccAddress([]byte("addr2_______________")).String()

	twoHops = []types.SwapHandle{types.NewExchangeHandle(1), types.NewExchangeHandle(2)}
)

func TestMsgCreateExchangeValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     *types.MsgCreateExchange
		wantErr error
	}{
		{"valid", types.NewMsgCreateExchange(addr1, 7), nil},
		{"bad creator", types.NewMsgCreateExchange("not-bech32", 7), types.ErrInvalidAddress},
		{"base currency token", types.NewMsgCreateExchange(addr1, 0), types.ErrInvalidPair},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestMsgAddLiquidityValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     *types.MsgAddLiquidity
		wantErr error
	}{
		{"valid", types.NewMsgAddLiquidity(addr1, 1, math.NewInt(1000), math.ZeroInt(), math.NewInt(2000), 100), nil},
		{"bad sender", types.NewMsgAddLiquidity("x", 1, math.NewInt(1000), math.ZeroInt(), math.NewInt(2000), 100), types.ErrInvalidAddress},
		{"zero currency", types.NewMsgAddLiquidity(addr1, 1, math.ZeroInt(), math.ZeroInt(), math.NewInt(2000), 100), types.ErrZeroAmount},
		{"zero max tokens", types.NewMsgAddLiquidity(addr1, 1, math.NewInt(1000), math.ZeroInt(), math.ZeroInt(), 100), types.ErrZeroAmount},
		{"negative min liquidity", types.NewMsgAddLiquidity(addr1, 1, math.NewInt(1000), math.NewInt(-1), math.NewInt(2000), 100), types.ErrZeroAmount},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestMsgRemoveLiquidityValidateBasic(t *testing.T) {
	// zero minimums are valid; zero shares are not
	require.NoError(t, types.NewMsgRemoveLiquidity(addr1, 1, math.NewInt(500), math.ZeroInt(), math.ZeroInt(), 100).ValidateBasic())
	require.ErrorIs(t, types.NewMsgRemoveLiquidity(addr1, 1, math.ZeroInt(), math.ZeroInt(), math.ZeroInt(), 100).ValidateBasic(), types.ErrZeroAmount)
	require.ErrorIs(t, types.NewMsgRemoveLiquidity("x", 1, math.NewInt(500), math.ZeroInt(), math.ZeroInt(), 100).ValidateBasic(), types.ErrInvalidAddress)
}

func TestMsgSwapValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgSwapCurrencyForToken(addr1, 1, math.NewInt(1000), math.ZeroInt(), addr2, 100).ValidateBasic())
	require.ErrorIs(t, types.NewMsgSwapCurrencyForToken(addr1, 1, math.NewInt(1000), math.ZeroInt(), "x", 100).ValidateBasic(), types.ErrInvalidAddress)
	require.ErrorIs(t, types.NewMsgSwapCurrencyForToken(addr1, 1, math.ZeroInt(), math.ZeroInt(), addr2, 100).ValidateBasic(), types.ErrZeroAmount)

	require.NoError(t, types.NewMsgSwapTokenForCurrency(addr1, 1, math.NewInt(1000), math.ZeroInt(), addr2, 100).ValidateBasic())
	require.ErrorIs(t, types.NewMsgSwapTokenForCurrency(addr1, 1, math.NewInt(1000), math.NewInt(-1), addr2, 100).ValidateBasic(), types.ErrZeroAmount)
}

func TestMsgSwapTokenForTokenValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     *types.MsgSwapTokenForToken
		wantErr error
	}{
		{"valid", types.NewMsgSwapTokenForToken(addr1, twoHops, math.NewInt(1000), math.ZeroInt(), addr2, 100), nil},
		{"bad sender", types.NewMsgSwapTokenForToken("x", twoHops, math.NewInt(1000), math.ZeroInt(), addr2, 100), types.ErrInvalidAddress},
		{"bad recipient", types.NewMsgSwapTokenForToken(addr1, twoHops, math.NewInt(1000), math.ZeroInt(), "x", 100), types.ErrInvalidAddress},
		{"single hop", types.NewMsgSwapTokenForToken(addr1, twoHops[:1], math.NewInt(1000), math.ZeroInt(), addr2, 100), types.ErrInvalidSwapPath},
		{"unknown handle kind", types.NewMsgSwapTokenForToken(addr1,
			[]types.SwapHandle{types.NewExchangeHandle(1), {Kind: 9, Value: 2}},
			math.NewInt(1000), math.ZeroInt(), addr2, 100), types.ErrInvalidSwapPath},
		{"zero amount in", types.NewMsgSwapTokenForToken(addr1, twoHops, math.ZeroInt(), math.ZeroInt(), addr2, 100), types.ErrZeroAmount},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestSwapHandleString(t *testing.T) {
	require.Equal(t, "exchange(4)", types.NewExchangeHandle(4).String())
	require.Equal(t, "asset(9)", types.NewAssetHandle(9).String())
}
