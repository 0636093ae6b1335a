package keeper

import (
	"context"
	"fmt"

	"github.com/kestrel-labs/kestrel/x/exchange/types"
)

// InitGenesis initializes the exchange module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid exchange genesis: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	for _, exchange := range genState.Exchanges {
		if err := k.setExchange(ctx, exchange); err != nil {
			return fmt.Errorf("failed to set exchange %d: %w", exchange.Id, err)
		}
		k.setExchangeByToken(ctx, exchange.TokenId, exchange.Id)
	}

	if genState.NextExchangeId > 0 {
		k.setNextExchangeID(ctx, genState.NextExchangeId)
	}
	return nil
}

// ExportGenesis exports the exchange module's state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	exchanges, err := k.GetAllExchanges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export exchanges: %w", err)
	}
	return &types.GenesisState{
		Params:         k.GetParams(ctx),
		Exchanges:      exchanges,
		NextExchangeId: k.nextExchangeID(ctx),
	}, nil
}
