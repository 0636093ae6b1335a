package types

// exchange module event types
const (
	EventTypeCreateExchange  = "create_exchange"
	EventTypeAddLiquidity    = "add_liquidity"
	EventTypeRemoveLiquidity = "remove_liquidity"
	EventTypeSwap            = "swap"

	AttributeKeyExchangeID     = "exchange_id"
	AttributeKeyTokenID        = "token_id"
	AttributeKeyLiquidityID    = "liquidity_id"
	AttributeKeyAccount        = "account"
	AttributeKeySender         = "sender"
	AttributeKeyRecipient      = "recipient"
	AttributeKeyCurrencyAmount = "currency_amount"
	AttributeKeyTokenAmount    = "token_amount"
	AttributeKeyShares         = "shares"
	AttributeKeyAmountIn       = "amount_in"
	AttributeKeyAmountOut      = "amount_out"
	AttributeKeyHops           = "hops"
)
