package keeper

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/kestrel-labs/kestrel/x/exchange/types"
)

// Overflow-safe arithmetic for pricing and share accounting. Balances
// travel as math.Int, but every compound expression runs on big.Int
// intermediates and is bounds-checked before conversion back.

// MaxTokenBalance is the largest balance representable on the wire.
var MaxTokenBalance = math.NewIntFromBigInt(new(big.Int).SetUint64(^uint64(0)))

// SafeAdd adds two math.Int values with overflow checking
func SafeAdd(a, b math.Int) (math.Int, error) {
	result := new(big.Int).Add(a.BigInt(), b.BigInt())
	if result.Cmp(MaxTokenBalance.BigInt()) > 0 {
		return math.Int{}, types.ErrArithmeticOverflow.Wrap("addition")
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeSub subtracts b from a with underflow checking
func SafeSub(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.Int{}, types.ErrArithmeticOverflow.Wrapf("underflow: %s - %s", a, b)
	}
	return math.NewIntFromBigInt(new(big.Int).Sub(a.BigInt(), b.BigInt())), nil
}

// SafeMulDiv computes (a * b) / c, truncating toward zero. The product
// runs on a big.Int so it cannot wrap; only the quotient is
// bounds-checked.
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, types.ErrArithmeticOverflow.Wrap("division by zero")
	}
	product := new(big.Int).Mul(a.BigInt(), b.BigInt())
	result := product.Quo(product, c.BigInt())
	if result.Cmp(MaxTokenBalance.BigInt()) > 0 {
		return math.Int{}, types.ErrArithmeticOverflow.Wrap("quotient exceeds max balance")
	}
	return math.NewIntFromBigInt(result), nil
}

// checkBalance rejects amounts outside the representable balance range
func checkBalance(a math.Int) error {
	if a.GT(MaxTokenBalance) {
		return types.ErrArithmeticOverflow.Wrapf("%s exceeds max balance", a)
	}
	return nil
}
