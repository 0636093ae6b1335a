package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/kestrel-labs/kestrel/x/exchange/types"
)

// CreateExchange registers the exchange for a token's trading pair. The
// call is create-or-get: when the pair already has an exchange the
// existing record is returned and no state changes.
func (k Keeper) CreateExchange(ctx context.Context, tokenID uint64) (types.Exchange, bool, error) {
	pair := types.NewTradingPair(0, tokenID)
	if err := pair.Validate(); err != nil {
		return types.Exchange{}, false, err
	}
	if !k.assetKeeper.HasAsset(ctx, tokenID) {
		return types.Exchange{}, false, types.ErrInvalidPair.Wrapf("token asset %d not registered", tokenID)
	}

	if existing, err := k.GetExchangeByToken(ctx, tokenID); err == nil {
		return existing, false, nil
	}

	exchangeID := k.nextExchangeID(ctx)
	liquidityID, err := k.assetKeeper.RegisterAsset(ctx,
		fmt.Sprintf("Liquidity %d", exchangeID),
		fmt.Sprintf("LP-%d", exchangeID),
		12,
	)
	if err != nil {
		return types.Exchange{}, false, err
	}

	exchange := types.Exchange{
		Id:          exchangeID,
		TokenId:     tokenID,
		LiquidityId: liquidityID,
		Account:     ExchangeAccountAddress(exchangeID).String(),
	}
	if err := k.setExchange(ctx, exchange); err != nil {
		return types.Exchange{}, false, err
	}
	k.setExchangeByToken(ctx, tokenID, exchangeID)
	k.setNextExchangeID(ctx, exchangeID+1)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCreateExchange,
			sdk.NewAttribute(types.AttributeKeyExchangeID, fmt.Sprintf("%d", exchangeID)),
			sdk.NewAttribute(types.AttributeKeyTokenID, fmt.Sprintf("%d", tokenID)),
			sdk.NewAttribute(types.AttributeKeyLiquidityID, fmt.Sprintf("%d", liquidityID)),
			sdk.NewAttribute(types.AttributeKeyAccount, exchange.Account),
		),
	)
	k.metrics.ExchangesTotal.Inc()
	k.Logger(ctx).Info("created exchange",
		"exchange_id", exchangeID, "token_id", tokenID, "liquidity_id", liquidityID)

	return exchange, true, nil
}

// GetExchange returns the exchange record for an id
func (k Keeper) GetExchange(ctx context.Context, exchangeID uint64) (types.Exchange, error) {
	bz := k.getStore(ctx).Get(ExchangeKey(exchangeID))
	if bz == nil {
		return types.Exchange{}, types.ErrExchangeNotFound.Wrapf("exchange %d", exchangeID)
	}
	var exchange types.Exchange
	if err := json.Unmarshal(bz, &exchange); err != nil {
		return types.Exchange{}, fmt.Errorf("failed to unmarshal exchange %d: %w", exchangeID, err)
	}
	return exchange, nil
}

// GetExchangeByToken returns the exchange trading a token
func (k Keeper) GetExchangeByToken(ctx context.Context, tokenID uint64) (types.Exchange, error) {
	bz := k.getStore(ctx).Get(ExchangeByTokenKey(tokenID))
	if bz == nil {
		return types.Exchange{}, types.ErrExchangeNotFound.Wrapf("no exchange for token %d", tokenID)
	}
	return k.GetExchange(ctx, binary.BigEndian.Uint64(bz))
}

// GetExchangeByPair returns the exchange for a canonical trading pair
func (k Keeper) GetExchangeByPair(ctx context.Context, pair types.TradingPair) (types.Exchange, error) {
	if err := pair.Validate(); err != nil {
		return types.Exchange{}, err
	}
	return k.GetExchangeByToken(ctx, pair.Token)
}

// GetAllExchanges returns every registered exchange in id order
func (k Keeper) GetAllExchanges(ctx context.Context) ([]types.Exchange, error) {
	store := k.getStore(ctx)
	iterator := store.Iterator(ExchangeKeyPrefix, append(ExchangeKeyPrefix, 0xFF))
	defer iterator.Close()

	var exchanges []types.Exchange
	for ; iterator.Valid(); iterator.Next() {
		var exchange types.Exchange
		if err := json.Unmarshal(iterator.Value(), &exchange); err != nil {
			return nil, fmt.Errorf("failed to unmarshal exchange: %w", err)
		}
		exchanges = append(exchanges, exchange)
	}
	return exchanges, nil
}

func (k Keeper) setExchange(ctx context.Context, exchange types.Exchange) error {
	bz, err := json.Marshal(exchange)
	if err != nil {
		return fmt.Errorf("failed to marshal exchange %d: %w", exchange.Id, err)
	}
	k.getStore(ctx).Set(ExchangeKey(exchange.Id), bz)
	return nil
}

func (k Keeper) setExchangeByToken(ctx context.Context, tokenID, exchangeID uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, exchangeID)
	k.getStore(ctx).Set(ExchangeByTokenKey(tokenID), bz)
}

func (k Keeper) nextExchangeID(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(ExchangeCountKey)
	if bz == nil {
		return 1
	}
	return binary.BigEndian.Uint64(bz)
}

func (k Keeper) setNextExchangeID(ctx context.Context, next uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, next)
	k.getStore(ctx).Set(ExchangeCountKey, bz)
}
