package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgCreateExchange{}
	_ sdk.Msg = &MsgAddLiquidity{}
	_ sdk.Msg = &MsgRemoveLiquidity{}
	_ sdk.Msg = &MsgSwapCurrencyForToken{}
	_ sdk.Msg = &MsgSwapTokenForCurrency{}
	_ sdk.Msg = &MsgSwapTokenForToken{}
)

func validatePositive(amount math.Int, name string) error {
	if amount.IsNil() || !amount.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, name)
	}
	return nil
}

func validateNonNegative(amount math.Int, name string) error {
	if amount.IsNil() || amount.IsNegative() {
		return sdkerrors.Wrapf(ErrZeroAmount, "%s must be non-negative", name)
	}
	return nil
}

// MsgCreateExchange registers the exchange for a token, or is a no-op
// returning the existing one.
type MsgCreateExchange struct {
	Creator string `json:"creator"`
	TokenId uint64 `json:"token_id"`
}

func NewMsgCreateExchange(creator string, tokenID uint64) *MsgCreateExchange {
	return &MsgCreateExchange{Creator: creator, TokenId: tokenID}
}

func (m *MsgCreateExchange) Route() string { return RouterKey }
func (m *MsgCreateExchange) Type() string  { return "create_exchange" }

func (m *MsgCreateExchange) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(m.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

func (m *MsgCreateExchange) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(m))
}

func (m *MsgCreateExchange) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	return NewTradingPair(0, m.TokenId).Validate()
}

// MsgAddLiquidity deposits currency plus the matching amount of tokens
// and mints liquidity shares to the sender.
type MsgAddLiquidity struct {
	Sender         string   `json:"sender"`
	ExchangeId     uint64   `json:"exchange_id"`
	CurrencyAmount math.Int `json:"currency_amount"`
	MinLiquidity   math.Int `json:"min_liquidity"`
	MaxTokens      math.Int `json:"max_tokens"`
	Deadline       uint64   `json:"deadline"`
}

func NewMsgAddLiquidity(sender string, exchangeID uint64, currencyAmount, minLiquidity, maxTokens math.Int, deadline uint64) *MsgAddLiquidity {
	return &MsgAddLiquidity{
		Sender:         sender,
		ExchangeId:     exchangeID,
		CurrencyAmount: currencyAmount,
		MinLiquidity:   minLiquidity,
		MaxTokens:      maxTokens,
		Deadline:       deadline,
	}
}

func (m *MsgAddLiquidity) Route() string { return RouterKey }
func (m *MsgAddLiquidity) Type() string  { return "add_liquidity" }

func (m *MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

func (m *MsgAddLiquidity) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(m))
}

func (m *MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}
	if err := validatePositive(m.CurrencyAmount, "currency amount"); err != nil {
		return err
	}
	if err := validatePositive(m.MaxTokens, "max tokens"); err != nil {
		return err
	}
	return validateNonNegative(m.MinLiquidity, "min liquidity")
}

// MsgRemoveLiquidity burns liquidity shares and pays out the pro-rata
// reserves.
type MsgRemoveLiquidity struct {
	Sender      string   `json:"sender"`
	ExchangeId  uint64   `json:"exchange_id"`
	Shares      math.Int `json:"shares"`
	MinCurrency math.Int `json:"min_currency"`
	MinTokens   math.Int `json:"min_tokens"`
	Deadline    uint64   `json:"deadline"`
}

func NewMsgRemoveLiquidity(sender string, exchangeID uint64, shares, minCurrency, minTokens math.Int, deadline uint64) *MsgRemoveLiquidity {
	return &MsgRemoveLiquidity{
		Sender:      sender,
		ExchangeId:  exchangeID,
		Shares:      shares,
		MinCurrency: minCurrency,
		MinTokens:   minTokens,
		Deadline:    deadline,
	}
}

func (m *MsgRemoveLiquidity) Route() string { return RouterKey }
func (m *MsgRemoveLiquidity) Type() string  { return "remove_liquidity" }

func (m *MsgRemoveLiquidity) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

func (m *MsgRemoveLiquidity) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(m))
}

func (m *MsgRemoveLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}
	if err := validatePositive(m.Shares, "shares"); err != nil {
		return err
	}
	if err := validateNonNegative(m.MinCurrency, "min currency"); err != nil {
		return err
	}
	return validateNonNegative(m.MinTokens, "min tokens")
}

// MsgSwapCurrencyForToken sells an exact currency amount for tokens.
type MsgSwapCurrencyForToken struct {
	Sender     string   `json:"sender"`
	ExchangeId uint64   `json:"exchange_id"`
	CurrencyIn math.Int `json:"currency_in"`
	MinTokens  math.Int `json:"min_tokens"`
	Recipient  string   `json:"recipient"`
	Deadline   uint64   `json:"deadline"`
}

func NewMsgSwapCurrencyForToken(sender string, exchangeID uint64, currencyIn, minTokens math.Int, recipient string, deadline uint64) *MsgSwapCurrencyForToken {
	return &MsgSwapCurrencyForToken{
		Sender:     sender,
		ExchangeId: exchangeID,
		CurrencyIn: currencyIn,
		MinTokens:  minTokens,
		Recipient:  recipient,
		Deadline:   deadline,
	}
}

func (m *MsgSwapCurrencyForToken) Route() string { return RouterKey }
func (m *MsgSwapCurrencyForToken) Type() string  { return "swap_currency_for_token" }

func (m *MsgSwapCurrencyForToken) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

func (m *MsgSwapCurrencyForToken) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(m))
}

func (m *MsgSwapCurrencyForToken) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.Recipient); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid recipient address: %s", err)
	}
	if err := validatePositive(m.CurrencyIn, "currency in"); err != nil {
		return err
	}
	return validateNonNegative(m.MinTokens, "min tokens")
}

// MsgSwapTokenForCurrency sells an exact token amount for currency.
type MsgSwapTokenForCurrency struct {
	Sender      string   `json:"sender"`
	ExchangeId  uint64   `json:"exchange_id"`
	TokenIn     math.Int `json:"token_in"`
	MinCurrency math.Int `json:"min_currency"`
	Recipient   string   `json:"recipient"`
	Deadline    uint64   `json:"deadline"`
}

func NewMsgSwapTokenForCurrency(sender string, exchangeID uint64, tokenIn, minCurrency math.Int, recipient string, deadline uint64) *MsgSwapTokenForCurrency {
	return &MsgSwapTokenForCurrency{
		Sender:      sender,
		ExchangeId:  exchangeID,
		TokenIn:     tokenIn,
		MinCurrency: minCurrency,
		Recipient:   recipient,
		Deadline:    deadline,
	}
}

func (m *MsgSwapTokenForCurrency) Route() string { return RouterKey }
func (m *MsgSwapTokenForCurrency) Type() string  { return "swap_token_for_currency" }

func (m *MsgSwapTokenForCurrency) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

func (m *MsgSwapTokenForCurrency) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(m))
}

func (m *MsgSwapTokenForCurrency) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.Recipient); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid recipient address: %s", err)
	}
	if err := validatePositive(m.TokenIn, "token in"); err != nil {
		return err
	}
	return validateNonNegative(m.MinCurrency, "min currency")
}

// MsgSwapTokenForToken sells an exact token amount across a path of
// exchanges for another token, atomically.
type MsgSwapTokenForToken struct {
	Sender       string       `json:"sender"`
	Path         []SwapHandle `json:"path"`
	AmountIn     math.Int     `json:"amount_in"`
	MinAmountOut math.Int     `json:"min_amount_out"`
	Recipient    string       `json:"recipient"`
	Deadline     uint64       `json:"deadline"`
}

func NewMsgSwapTokenForToken(sender string, path []SwapHandle, amountIn, minAmountOut math.Int, recipient string, deadline uint64) *MsgSwapTokenForToken {
	return &MsgSwapTokenForToken{
		Sender:       sender,
		Path:         path,
		AmountIn:     amountIn,
		MinAmountOut: minAmountOut,
		Recipient:    recipient,
		Deadline:     deadline,
	}
}

func (m *MsgSwapTokenForToken) Route() string { return RouterKey }
func (m *MsgSwapTokenForToken) Type() string  { return "swap_token_for_token" }

func (m *MsgSwapTokenForToken) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

func (m *MsgSwapTokenForToken) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(m))
}

func (m *MsgSwapTokenForToken) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.Recipient); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid recipient address: %s", err)
	}
	if len(m.Path) < 2 {
		return sdkerrors.Wrap(ErrInvalidSwapPath, "path needs at least two hops")
	}
	for _, handle := range m.Path {
		if err := handle.Validate(); err != nil {
			return err
		}
	}
	if err := validatePositive(m.AmountIn, "amount in"); err != nil {
		return err
	}
	return validateNonNegative(m.MinAmountOut, "min amount out")
}
