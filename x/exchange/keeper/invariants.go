package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/kestrel-labs/kestrel/x/exchange/types"
)

// RegisterInvariants registers the exchange module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "reserves-backed", ReservesBackedInvariant(k))
	ir.RegisterRoute(types.ModuleName, "registry-index", RegistryIndexInvariant(k))
}

// ReservesBackedInvariant checks that every exchange with outstanding
// shares holds positive reserves on both sides.
func ReservesBackedInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		exchanges, err := k.GetAllExchanges(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "reserves-backed",
				fmt.Sprintf("failed to load exchanges: %v", err)), true
		}

		var msg string
		var broken bool
		for _, exchange := range exchanges {
			shares := k.TotalShares(ctx, exchange)
			if !shares.IsPositive() {
				continue
			}
			currency, token := k.Reserves(ctx, exchange)
			if !currency.IsPositive() || !token.IsPositive() {
				broken = true
				msg += fmt.Sprintf(
					"exchange %d: %s shares outstanding with reserves (%s, %s)\n",
					exchange.Id, shares, currency, token)
			}
		}
		return sdk.FormatInvariant(types.ModuleName, "reserves-backed", msg), broken
	}
}

// RegistryIndexInvariant checks that the token index and the exchange
// records agree.
func RegistryIndexInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		exchanges, err := k.GetAllExchanges(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "registry-index",
				fmt.Sprintf("failed to load exchanges: %v", err)), true
		}

		var msg string
		var broken bool
		for _, exchange := range exchanges {
			indexed, err := k.GetExchangeByToken(ctx, exchange.TokenId)
			if err != nil || indexed.Id != exchange.Id {
				broken = true
				msg += fmt.Sprintf("exchange %d: token %d index mismatch\n", exchange.Id, exchange.TokenId)
			}
		}
		return sdk.FormatInvariant(types.ModuleName, "registry-index", msg), broken
	}
}
