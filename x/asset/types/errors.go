package types

import (
	errorsmod "cosmossdk.io/errors"
)

// x/asset module sentinel errors
var (
	ErrAssetNotFound         = errorsmod.Register(ModuleName, 2, "asset not found")
	ErrZeroAmount            = errorsmod.Register(ModuleName, 3, "amount must be positive")
	ErrInsufficientBalance   = errorsmod.Register(ModuleName, 4, "insufficient balance")
	ErrInsufficientAllowance = errorsmod.Register(ModuleName, 5, "insufficient allowance")
	ErrInvalidAssetInfo      = errorsmod.Register(ModuleName, 6, "invalid asset info")
	ErrInvalidAddress        = errorsmod.Register(ModuleName, 7, "invalid address")
	ErrSupplyOverflow        = errorsmod.Register(ModuleName, 8, "total supply overflow")
)
