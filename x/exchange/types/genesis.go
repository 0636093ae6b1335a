package types

import (
	"fmt"
)

// GenesisState defines the exchange module's genesis state.
type GenesisState struct {
	Params         Params     `json:"params"`
	Exchanges      []Exchange `json:"exchanges"`
	NextExchangeId uint64     `json:"next_exchange_id"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:         DefaultParams(),
		NextExchangeId: 1,
	}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	seenIDs := make(map[uint64]bool, len(gs.Exchanges))
	seenTokens := make(map[uint64]bool, len(gs.Exchanges))
	seenLiquidity := make(map[uint64]bool, len(gs.Exchanges))
	for _, ex := range gs.Exchanges {
		if ex.Id == 0 || ex.Id >= gs.NextExchangeId {
			return fmt.Errorf("exchange id %d not in [1, %d)", ex.Id, gs.NextExchangeId)
		}
		if seenIDs[ex.Id] {
			return fmt.Errorf("duplicate exchange id %d", ex.Id)
		}
		if seenTokens[ex.TokenId] {
			return fmt.Errorf("duplicate exchange for token %d", ex.TokenId)
		}
		if seenLiquidity[ex.LiquidityId] {
			return fmt.Errorf("duplicate liquidity asset %d", ex.LiquidityId)
		}
		seenIDs[ex.Id] = true
		seenTokens[ex.TokenId] = true
		seenLiquidity[ex.LiquidityId] = true

		if err := ex.Validate(); err != nil {
			return err
		}
	}
	return nil
}
