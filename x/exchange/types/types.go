package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	assettypes "github.com/kestrel-labs/kestrel/x/asset/types"
)

// TradingPair identifies an exchange by the two assets it trades. Pairs
// are canonicalized lower-id-first on construction, so any two pairs
// over the same assets compare equal.
type TradingPair struct {
	Base  uint64 `json:"base"`
	Token uint64 `json:"token"`
}

// NewTradingPair builds the canonical pair for two asset ids
func NewTradingPair(a, b uint64) TradingPair {
	if a > b {
		a, b = b, a
	}
	return TradingPair{Base: a, Token: b}
}

// Validate checks that the pair trades the base currency against a
// distinct token. Token-for-token trades route across two exchanges
// instead of forming a direct pair.
func (p TradingPair) Validate() error {
	if p.Base == p.Token {
		return ErrInvalidPair.Wrapf("identical asset ids %d", p.Base)
	}
	if p.Base != assettypes.NativeAssetID {
		return ErrInvalidPair.Wrapf("pair (%d, %d) does not include the base currency", p.Base, p.Token)
	}
	return nil
}

func (p TradingPair) String() string {
	return fmt.Sprintf("%d/%d", p.Base, p.Token)
}

// Exchange is one registered currency/token market. All fields are
// immutable once created; reserves live in the asset ledger as the
// balances of Account, and outstanding shares are the total supply of
// the LiquidityId asset.
type Exchange struct {
	Id          uint64 `json:"id"`
	TokenId     uint64 `json:"token_id"`
	LiquidityId uint64 `json:"liquidity_id"`
	Account     string `json:"account"`
}

// Pair returns the exchange's canonical trading pair
func (e Exchange) Pair() TradingPair {
	return NewTradingPair(assettypes.NativeAssetID, e.TokenId)
}

// CustodyAddress returns the exchange's custody account. Stored records
// always carry a valid bech32 address, so a decode failure is a
// corrupted store and panics.
func (e Exchange) CustodyAddress() sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(e.Account)
	if err != nil {
		panic(fmt.Sprintf("exchange %d: corrupted custody account %q: %v", e.Id, e.Account, err))
	}
	return addr
}

// Validate checks the structural constraints of an exchange record
func (e Exchange) Validate() error {
	if e.TokenId == assettypes.NativeAssetID {
		return ErrInvalidPair.Wrap("token id cannot be the base currency")
	}
	if e.LiquidityId == e.TokenId || e.LiquidityId == assettypes.NativeAssetID {
		return fmt.Errorf("exchange %d: liquidity asset %d collides with traded assets", e.Id, e.LiquidityId)
	}
	if e.Account == "" {
		return fmt.Errorf("exchange %d: empty custody account", e.Id)
	}
	return nil
}

// SwapHandleKind discriminates how a hop of a swap path names its exchange.
type SwapHandleKind uint8

const (
	// SwapHandleExchange names an exchange by its id
	SwapHandleExchange SwapHandleKind = 1
	// SwapHandleAsset names an exchange by its traded token's asset id
	SwapHandleAsset SwapHandleKind = 2
)

// SwapHandle is one hop of a multi-exchange swap path. Handles are
// resolved to exchanges once, when the path is planned.
type SwapHandle struct {
	Kind  SwapHandleKind `json:"kind"`
	Value uint64         `json:"value"`
}

// NewExchangeHandle names a hop by exchange id
func NewExchangeHandle(exchangeID uint64) SwapHandle {
	return SwapHandle{Kind: SwapHandleExchange, Value: exchangeID}
}

// NewAssetHandle names a hop by the traded token's asset id
func NewAssetHandle(assetID uint64) SwapHandle {
	return SwapHandle{Kind: SwapHandleAsset, Value: assetID}
}

// Validate checks the handle carries a known kind
func (h SwapHandle) Validate() error {
	switch h.Kind {
	case SwapHandleExchange, SwapHandleAsset:
		return nil
	default:
		return ErrInvalidSwapPath.Wrapf("unknown handle kind %d", h.Kind)
	}
}

func (h SwapHandle) String() string {
	switch h.Kind {
	case SwapHandleExchange:
		return fmt.Sprintf("exchange(%d)", h.Value)
	case SwapHandleAsset:
		return fmt.Sprintf("asset(%d)", h.Value)
	default:
		return fmt.Sprintf("unknown(%d)", h.Value)
	}
}
