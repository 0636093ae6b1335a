package types

import (
	errorsmod "cosmossdk.io/errors"

	assettypes "github.com/kestrel-labs/kestrel/x/asset/types"
)

// x/exchange module sentinel errors
var (
	ErrInvalidPair           = errorsmod.Register(ModuleName, 2, "invalid trading pair")
	ErrExchangeNotFound      = errorsmod.Register(ModuleName, 3, "exchange not found")
	ErrZeroAmount            = errorsmod.Register(ModuleName, 4, "amount must be positive")
	ErrEmptyPool             = errorsmod.Register(ModuleName, 5, "pool has no reserves")
	ErrInsufficientLiquidity = errorsmod.Register(ModuleName, 6, "insufficient liquidity")
	ErrSlippageExceeded      = errorsmod.Register(ModuleName, 7, "slippage tolerance exceeded")
	ErrBelowMinimumLiquidity = errorsmod.Register(ModuleName, 8, "initial liquidity below minimum")
	ErrArithmeticOverflow    = errorsmod.Register(ModuleName, 9, "arithmetic overflow")
	ErrDeadlineExpired       = errorsmod.Register(ModuleName, 10, "deadline expired")
	ErrInvalidSwapPath       = errorsmod.Register(ModuleName, 11, "invalid swap path")
	ErrInvalidAddress        = errorsmod.Register(ModuleName, 12, "invalid address")
)

// Balance and allowance failures surface from the asset ledger; the
// aliases keep one sentinel per failure kind across both modules.
var (
	ErrInsufficientBalance   = assettypes.ErrInsufficientBalance
	ErrInsufficientAllowance = assettypes.ErrInsufficientAllowance
)
