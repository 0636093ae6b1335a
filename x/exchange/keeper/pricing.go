package keeper

import (
	"cosmossdk.io/math"

	"github.com/kestrel-labs/kestrel/x/exchange/types"
)

// Constant-product quoting. Both functions are pure: they read nothing
// from state and never mutate their arguments, so the router can run
// them against simulated reserves while planning multi-hop swaps.

// GetInputPrice quotes the output of an exact-input swap:
//
//	out = (in * feeNum * rOut) / (rIn * feeDen + in * feeNum)
//
// truncating toward zero, so rounding always favors the pool.
func GetInputPrice(amountIn, reserveIn, reserveOut math.Int, params types.Params) (math.Int, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.Int{}, types.ErrZeroAmount.Wrap("swap input")
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.Int{}, types.ErrEmptyPool
	}
	for _, v := range []math.Int{amountIn, reserveIn, reserveOut} {
		if err := checkBalance(v); err != nil {
			return math.Int{}, err
		}
	}

	feeNum := math.NewIntFromUint64(params.FeeNumerator)
	feeDen := math.NewIntFromUint64(params.FeeDenominator)

	inWithFee := amountIn.Mul(feeNum)
	numerator := inWithFee.Mul(reserveOut)
	denominator := reserveIn.Mul(feeDen).Add(inWithFee)
	amountOut, err := SafeMulDiv(numerator, math.OneInt(), denominator)
	if err != nil {
		return math.Int{}, err
	}

	if amountOut.IsZero() {
		return math.Int{}, types.ErrInsufficientLiquidity.Wrap("input too small for any output")
	}
	if amountOut.GTE(reserveOut) {
		return math.Int{}, types.ErrInsufficientLiquidity.Wrapf(
			"output %s would drain reserve %s", amountOut, reserveOut)
	}
	return amountOut, nil
}

// GetOutputPrice quotes the input required for an exact-output swap:
//
//	in = (rIn * out * feeDen) / ((rOut - out) * feeNum) + 1
//
// rounding up, so GetOutputPrice returns the least input whose
// GetInputPrice covers the requested output.
func GetOutputPrice(amountOut, reserveIn, reserveOut math.Int, params types.Params) (math.Int, error) {
	if amountOut.IsNil() || !amountOut.IsPositive() {
		return math.Int{}, types.ErrZeroAmount.Wrap("swap output")
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.Int{}, types.ErrEmptyPool
	}
	for _, v := range []math.Int{amountOut, reserveIn, reserveOut} {
		if err := checkBalance(v); err != nil {
			return math.Int{}, err
		}
	}
	if amountOut.GTE(reserveOut) {
		return math.Int{}, types.ErrInsufficientLiquidity.Wrapf(
			"output %s exceeds reserve %s", amountOut, reserveOut)
	}

	feeNum := math.NewIntFromUint64(params.FeeNumerator)
	feeDen := math.NewIntFromUint64(params.FeeDenominator)

	numerator := reserveIn.Mul(amountOut).Mul(feeDen)
	denominator := reserveOut.Sub(amountOut).Mul(feeNum)
	quotient, err := SafeMulDiv(numerator, math.OneInt(), denominator)
	if err != nil {
		return math.Int{}, err
	}

	amountIn, err := SafeAdd(quotient, math.OneInt())
	if err != nil {
		return math.Int{}, err
	}
	return amountIn, nil
}
