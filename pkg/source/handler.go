package source

import (
	"log/slog"

	cfdp "github.com/go-cfdp/gocfdp"
	"github.com/go-cfdp/gocfdp/internal/queue"
	"github.com/go-cfdp/gocfdp/internal/seqnum"
	"github.com/go-cfdp/gocfdp/pkg/filestore"
	"github.com/go-cfdp/gocfdp/pkg/mib"
	"github.com/go-cfdp/gocfdp/pkg/request"
	"github.com/go-cfdp/gocfdp/pkg/user"
)

// closureQueueCapacity bounds the Source handler's receive queue (spec.md
// §9 "Receive queue (Source side)"): it only ever needs to hold the
// Finished PDU(s) arriving while NOTICE_OF_COMPLETION awaits closure, plus
// whatever a misbehaving peer sends meanwhile before being discarded.
const closureQueueCapacity = 8

// Handler is the Source side of one CFDP transaction: Class-1 Metadata ->
// FileData* -> EOF, one PDU per StateMachine call. A Handler serves at most
// one transaction at a time (spec.md §5 "One transaction at a time per
// Handler"); hosts running several concurrent transfers run one Handler per
// transaction.
type Handler struct {
	localCfg mib.LocalEntityCfg
	user     user.User
	vfs      filestore.VirtualFilestore
	seqNums  seqnum.Provider
	logger   *slog.Logger

	states  StateWrapper
	holder  cfdp.PduHolder
	fields  transferFields
	request request.PutRequest
	recvQ   *queue.Queue
}

// New returns an idle Handler. A nil logger defaults to slog.Default(),
// matching teacher's sdo.NewSDOServer constructor convention.
func New(localCfg mib.LocalEntityCfg, u user.User, vfs filestore.VirtualFilestore, seqNums seqnum.Provider, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{
		localCfg: localCfg,
		user:     u,
		vfs:      vfs,
		seqNums:  seqNums,
		logger:   logger.With("handler", "source"),
		recvQ:    queue.New(closureQueueCapacity),
	}
	h.fields.reset(localCfg.LocalEntityId)
	return h
}

// StartTransaction begins a new transaction from a Put request wrapper and
// the MIB entry for its destination. Returns (true, nil) on success,
// (false, nil) if the handler is already busy, or (false, err) if the
// wrapper does not carry a Put request or no transmission mode can be
// resolved (spec.md §4.3 start_transaction).
func (h *Handler) StartTransaction(req request.Wrapper, remoteCfg mib.RemoteEntityCfg) (bool, error) {
	put, err := req.ToPutRequest()
	if err != nil {
		return false, err
	}
	if h.states.State != StateIdle {
		return false, nil
	}

	transMode, err := selectTransmissionMode(put, remoteCfg)
	if err != nil {
		return false, err
	}

	h.request = put
	h.fields.RemoteCfg = &remoteCfg
	h.fields.PduConfig = cfdp.EmptyPduConfig(h.localCfg.LocalEntityId)
	h.fields.PduConfig.DestEntityId = remoteCfg.RemoteEntityId
	h.fields.PduConfig.TransMode = transMode
	h.fields.PduConfig.CrcFlag = remoteCfg.CrcOnTransmission
	h.fields.PduConfig.Direction = cfdp.DirectionTowardsReceiver
	h.fields.PduConfig.SegCtrl = put.Cfg.SegCtrl

	switch transMode {
	case cfdp.TransmissionModeUnacknowledged:
		h.states.State = StateBusyClass1Nacked
	case cfdp.TransmissionModeAcknowledged:
		h.states.State = StateBusyClass2Acked
	}
	h.states.Step = StepTransactionStart
	h.states.PacketReady = false
	h.holder.Clear()
	return true, nil
}

// selectTransmissionMode implements the request-override-beats-remote-default
// precedence from source.py:_setup_transmission_mode.
func selectTransmissionMode(put request.PutRequest, remoteCfg mib.RemoteEntityCfg) (cfdp.TransmissionMode, error) {
	mode := put.Cfg.TransMode
	if mode == cfdp.TransmissionModeUnset {
		mode = remoteCfg.DefaultTransmissionMode
	}
	switch mode {
	case cfdp.TransmissionModeAcknowledged, cfdp.TransmissionModeUnacknowledged:
		return mode, nil
	default:
		return 0, cfdp.ErrInvalidTransmissionMode
	}
}

// StateMachine advances the handler through as many non-I/O steps as it can
// in one call, stopping as soon as a PDU is placed in the holder
// (PacketReady == true) or the handler returns to IDLE. Calling it again
// while PacketReady is already true is a no-op (spec.md §8 idempotence).
func (h *Handler) StateMachine() (FsmResult, error) {
	if h.states.PacketReady {
		return h.result(), nil
	}
	if h.states.State == StateIdle {
		return h.result(), nil
	}

	if h.states.Step == StepIdle {
		h.states.Step = StepTransactionStart
	}
	if h.states.Step == StepTransactionStart {
		if err := h.transactionStart(); err != nil {
			return h.result(), err
		}
		h.states.Step = StepCRCProcedure
	}
	if h.states.Step == StepCRCProcedure {
		if err := h.crcProcedure(); err != nil {
			return h.result(), err
		}
		h.states.Step = StepSendingMetadata
	}
	if h.states.Step == StepSendingMetadata {
		h.prepareMetadataPdu()
		return h.result(), nil
	}
	if h.states.Step == StepSendingFileData {
		done, err := h.prepareNextFileDataPdu()
		if err != nil {
			return h.result(), err
		}
		if done {
			h.states.Step = StepSendingEOF
			return h.StateMachine()
		}
		return h.result(), nil
	}
	if h.states.Step == StepSendingEOF {
		h.prepareEofPdu()
		return h.result(), nil
	}
	if h.states.Step == StepNoticeOfCompletion {
		h.noticeOfCompletion()
		return h.result(), nil
	}
	return h.result(), nil
}

func (h *Handler) result() FsmResult {
	return FsmResult{Holder: h.holder, States: h.states}
}

// ConfirmPacketSent clears PacketReady. Idempotent: calling it again once
// already clear has no further effect (spec.md §8 idempotence).
func (h *Handler) ConfirmPacketSent() {
	h.states.PacketReady = false
}

// AdvanceFsm moves Step to the next phase. Fails with
// ErrPacketSendNotConfirmed, without mutating state, if PacketReady is still
// true.
func (h *Handler) AdvanceFsm() error {
	if h.states.PacketReady {
		return cfdp.ErrPacketSendNotConfirmed
	}
	switch h.states.Step {
	case StepSendingMetadata:
		h.states.Step = StepSendingFileData
	case StepSendingEOF:
		if h.user != nil && h.localCfg.IndicationCfg.EOFSentIndicationRequired {
			h.user.EOFSentIndication(*h.fields.Transaction)
		}
		h.states.Step = StepNoticeOfCompletion
	}
	return nil
}

// PassPacket enqueues an inbound file-directive PDU — in Class-1 this is
// only ever a Finished PDU, observed while NOTICE_OF_COMPLETION awaits
// closure. File-Data and Metadata PDUs are rejected: a Source handler is
// never the receiving end of a transfer it is driving.
func (h *Handler) PassPacket(holder cfdp.PduHolder) error {
	if !holder.IsFileDirective() {
		return cfdp.ErrInvalidPduForHandler
	}
	if _, err := holder.AsMetadata(); err == nil {
		return cfdp.ErrInvalidPduForHandler
	}
	if !h.recvQ.Push(holder) {
		h.logger.Warn("closure receive queue full, dropping inbound PDU")
	}
	return nil
}

// Reset returns the handler to IDLE/IDLE, discards FileParams and
// PduConfig, and drops any queued inbound PDUs.
func (h *Handler) Reset() {
	h.states = StateWrapper{}
	h.holder.Clear()
	h.fields.reset(h.localCfg.LocalEntityId)
	h.recvQ.Reset()
}
