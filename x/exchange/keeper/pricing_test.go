package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-labs/kestrel/x/exchange/keeper"
	"github.com/kestrel-labs/kestrel/x/exchange/types"
)

func TestGetInputPrice(t *testing.T) {
	params := types.DefaultParams()

	tests := []struct {
		name     string
		amountIn int64
		rIn      int64
		rOut     int64
		want     int64
	}{
		{"balanced million pool", 1000, 1_000_000, 1_000_000, 996},
		{"small pool", 10, 100, 100, 9},
		{"skewed pool", 1000, 1_000_000, 2_000_000, 1992},
		{"large input", 500_000, 1_000_000, 1_000_000, 332_665},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := keeper.GetInputPrice(
				math.NewInt(tc.amountIn), math.NewInt(tc.rIn), math.NewInt(tc.rOut), params)
			require.NoError(t, err)
			require.Equal(t, math.NewInt(tc.want), out)
		})
	}
}

func TestGetInputPriceErrors(t *testing.T) {
	params := types.DefaultParams()
	oneMillion := math.NewInt(1_000_000)

	_, err := keeper.GetInputPrice(math.ZeroInt(), oneMillion, oneMillion, params)
	require.ErrorIs(t, err, types.ErrZeroAmount)

	_, err = keeper.GetInputPrice(math.NewInt(-1), oneMillion, oneMillion, params)
	require.ErrorIs(t, err, types.ErrZeroAmount)

	_, err = keeper.GetInputPrice(math.NewInt(1000), math.ZeroInt(), oneMillion, params)
	require.ErrorIs(t, err, types.ErrEmptyPool)

	_, err = keeper.GetInputPrice(math.NewInt(1000), oneMillion, math.ZeroInt(), params)
	require.ErrorIs(t, err, types.ErrEmptyPool)

	// an input too small to buy a single unit
	_, err = keeper.GetInputPrice(math.NewInt(1), oneMillion, math.NewInt(10), params)
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)

	// operands above the wire bound
	tooBig := keeper.MaxTokenBalance.Add(math.OneInt())
	_, err = keeper.GetInputPrice(tooBig, oneMillion, oneMillion, params)
	require.ErrorIs(t, err, types.ErrArithmeticOverflow)
}

func TestGetOutputPrice(t *testing.T) {
	params := types.DefaultParams()
	oneMillion := math.NewInt(1_000_000)

	in, err := keeper.GetOutputPrice(math.NewInt(996), oneMillion, oneMillion, params)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1000), in)

	_, err = keeper.GetOutputPrice(oneMillion, oneMillion, oneMillion, params)
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)

	_, err = keeper.GetOutputPrice(math.ZeroInt(), oneMillion, oneMillion, params)
	require.ErrorIs(t, err, types.ErrZeroAmount)
}

// GetOutputPrice must return the least input whose forward quote covers
// the requested output.
func TestOutputPriceMinimality(t *testing.T) {
	params := types.DefaultParams()
	reserveIn := math.NewInt(1_000_000)
	reserveOut := math.NewInt(2_000_000)

	for _, want := range []int64{1, 7, 996, 54_321, 1_500_000} {
		amountOut := math.NewInt(want)

		in, err := keeper.GetOutputPrice(amountOut, reserveIn, reserveOut, params)
		require.NoError(t, err)

		got, err := keeper.GetInputPrice(in, reserveIn, reserveOut, params)
		require.NoError(t, err)
		require.True(t, got.GTE(amountOut), "input %s yields %s, want >= %s", in, got, amountOut)

		if in.GT(math.OneInt()) {
			less, err := keeper.GetInputPrice(in.Sub(math.OneInt()), reserveIn, reserveOut, params)
			if err == nil {
				require.True(t, less.LT(amountOut), "input %s already yields %s >= %s", in.Sub(math.OneInt()), less, amountOut)
			}
		}
	}
}

// Truncation always rounds in the pool's favor: quoting and reversing
// never produces more than the original input.
func TestPricingRoundingFavorsPool(t *testing.T) {
	params := types.DefaultParams()
	reserveIn := math.NewInt(3_333_333)
	reserveOut := math.NewInt(7_777_777)

	for _, amount := range []int64{13, 999, 100_001} {
		out, err := keeper.GetInputPrice(math.NewInt(amount), reserveIn, reserveOut, params)
		require.NoError(t, err)

		back, err := keeper.GetOutputPrice(out, reserveIn, reserveOut, params)
		require.NoError(t, err)
		require.True(t, back.LTE(math.NewInt(amount)), "round trip inflated %d to %s", amount, back)
	}
}
