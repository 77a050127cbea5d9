// Package source implements the Source Handler FSM (spec.md C5): the
// Class-1 send side of a CFDP Copy File transaction, driven one phase at a
// time through Handler.StateMachine and the confirm/advance handshake.
// Grounded on original_source/tmtccmd/cfdp/handler/source.py's SourceHandler,
// restructured into the teacher's per-phase file split (see pkg/sdo's
// download_block.go / download_segmented.go / download_expedited.go, one
// file per transfer phase).
package source

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
	StepCRCProcedure
	StepSendingMetadata
	StepSendingFileData
	StepSendingEOF
	StepNoticeOfCompletion
)

// StateWrapper is the Source handler's observable (state, step,
// packet_ready) triple. Invariant: State == StateIdle iff Step == StepIdle.
type StateWrapper struct {
	State       State
	Step        Step
	PacketReady bool
}

// FsmResult is returned from every StateMachine call: the PDU holder (which
// may be empty) and the state the handler is in after the call.
type FsmResult struct {
	Holder cfdp.PduHolder
	States StateWrapper
}
