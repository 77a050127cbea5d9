// Package dest implements the Destination Handler FSM (spec.md C6): the
// Class-1 receive side of a CFDP Copy File transaction. It accepts inbound
// PDUs via PassPacket, writes file data through the Virtual Filestore, and
// verifies the transferred checksum before optionally emitting a Finished
// PDU. Grounded on original_source/tmtccmd/cfdp/handler/dest.py's
// DestHandler, restructured into the teacher's per-phase file split.
package dest

import cfdp "github.com/go-cfdp/gocfdp"

// State is the coarse busy/idle state of the handler.
type State uint8

const (
	StateIdle State = iota
	StateBusyClass1Nacked
	StateBusyClass2Acked
)

// Step is the fine-grained phase within a busy transaction.
type Step uint8

const (
	StepIdle Step = iota
	StepTransactionStart
	StepReceivingFileData
	StepSendingAckPdu // Class-2; reachable, no transition logic attached.
	StepTransferCompletion
	StepSendingFinishedPdu
)

// StateWrapper is the Destination handler's observable (state, step,
// packet_ready) triple.
type StateWrapper struct {
	State       State
	Step        Step
	PacketReady bool
}

// FsmResult is returned from every StateMachine call.
type FsmResult struct {
	Holder cfdp.PduHolder
	States StateWrapper
}
