package types

import "fmt"

// Minimal gogoproto plumbing so the hand-written messages satisfy
// sdk.Msg without generated code.

func (m *MsgRegisterAsset) Reset()         { *m = MsgRegisterAsset{} }
func (m *MsgRegisterAsset) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgRegisterAsset) ProtoMessage()    {}

func (m *MsgTransfer) Reset()         { *m = MsgTransfer{} }
func (m *MsgTransfer) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgTransfer) ProtoMessage()    {}

func (m *MsgApprove) Reset()         { *m = MsgApprove{} }
func (m *MsgApprove) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgApprove) ProtoMessage()    {}

func (m *MsgTransferFrom) Reset()         { *m = MsgTransferFrom{} }
func (m *MsgTransferFrom) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgTransferFrom) ProtoMessage()    {}
