package types

import "fmt"

// Minimal gogoproto plumbing so the hand-written messages satisfy
// sdk.Msg without generated code.

func (m *MsgCreateExchange) Reset()         { *m = MsgCreateExchange{} }
func (m *MsgCreateExchange) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgCreateExchange) ProtoMessage()    {}

func (m *MsgAddLiquidity) Reset()         { *m = MsgAddLiquidity{} }
func (m *MsgAddLiquidity) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgAddLiquidity) ProtoMessage()    {}

func (m *MsgRemoveLiquidity) Reset()         { *m = MsgRemoveLiquidity{} }
func (m *MsgRemoveLiquidity) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgRemoveLiquidity) ProtoMessage()    {}

func (m *MsgSwapCurrencyForToken) Reset()         { *m = MsgSwapCurrencyForToken{} }
func (m *MsgSwapCurrencyForToken) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgSwapCurrencyForToken) ProtoMessage()    {}

func (m *MsgSwapTokenForCurrency) Reset()         { *m = MsgSwapTokenForCurrency{} }
func (m *MsgSwapTokenForCurrency) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgSwapTokenForCurrency) ProtoMessage()    {}

func (m *MsgSwapTokenForToken) Reset()         { *m = MsgSwapTokenForToken{} }
func (m *MsgSwapTokenForToken) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgSwapTokenForToken) ProtoMessage()    {}
