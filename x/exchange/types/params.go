package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Default parameter values. The 997/1000 fee ratio charges 0.3% on the
// input side of every swap; the fee stays in the pool's reserves and
// accrues to liquidity providers.
var (
	DefaultFeeNumerator   uint64 = 997
	DefaultFeeDenominator uint64 = 1000
	DefaultMinLiquidity          = math.NewInt(1000)
	DefaultMaxSwapPath    uint32 = 4
)

// Params defines the adjustable parameters of the exchange module.
type Params struct {
	FeeNumerator   uint64   `json:"fee_numerator"`
	FeeDenominator uint64   `json:"fee_denominator"`
	MinLiquidity   math.Int `json:"min_liquidity"`
	MaxSwapPath    uint32   `json:"max_swap_path"`
}

// DefaultParams returns the default exchange parameters
func DefaultParams() Params {
	return Params{
		FeeNumerator:   DefaultFeeNumerator,
		FeeDenominator: DefaultFeeDenominator,
		MinLiquidity:   DefaultMinLiquidity,
		MaxSwapPath:    DefaultMaxSwapPath,
	}
}

// Validate checks the parameter constraints
func (p Params) Validate() error {
	if p.FeeDenominator == 0 {
		return fmt.Errorf("fee denominator cannot be zero")
	}
	if p.FeeNumerator == 0 || p.FeeNumerator > p.FeeDenominator {
		return fmt.Errorf("fee numerator must be in [1, %d]", p.FeeDenominator)
	}
	if p.MinLiquidity.IsNil() || p.MinLiquidity.IsNegative() {
		return fmt.Errorf("min liquidity must be non-negative")
	}
	if p.MaxSwapPath < 2 {
		return fmt.Errorf("max swap path must allow at least two hops")
	}
	return nil
}
