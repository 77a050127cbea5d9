package dest

import (
	"log/slog"

	cfdp "github.com/go-cfdp/gocfdp"
	"github.com/go-cfdp/gocfdp/internal/queue"
	"github.com/go-cfdp/gocfdp/pkg/filestore"
	"github.com/go-cfdp/gocfdp/pkg/mib"
	"github.com/go-cfdp/gocfdp/pkg/user"
)

// fileDataQueueCapacity and directiveQueueCapacity bound the Destination
// handler's inbound queues (spec.md §9 "kept bounded to prevent unbounded
// memory growth when the host misbehaves" — the same rationale spec.md
// gives for the Source handler's closure-wait queue applies symmetrically
// here).
const (
	fileDataQueueCapacity  = 64
	directiveQueueCapacity = 8
)

// Handler is the receiving side of one CFDP transaction: it accepts inbound
// Metadata, File-Data, and EOF PDUs via PassPacket, writes data through the
// Virtual Filestore, verifies the checksum, and optionally emits a Finished
// PDU. A Handler serves at most one transaction at a time.
type Handler struct {
	localCfg mib.LocalEntityCfg
	user     user.User
	vfs      filestore.VirtualFilestore
	logger   *slog.Logger

	states StateWrapper
	holder cfdp.PduHolder
	fields transferFields

	fileDataQ  *queue.Queue
	directiveQ map[cfdp.DirectiveType]*queue.Queue
}

// New returns an idle Handler.
func New(localCfg mib.LocalEntityCfg, u user.User, vfs filestore.VirtualFilestore, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{
		localCfg:   localCfg,
		user:       u,
		vfs:        vfs,
		logger:     logger.With("handler", "dest"),
		fileDataQ:  queue.New(fileDataQueueCapacity),
		directiveQ: make(map[cfdp.DirectiveType]*queue.Queue),
	}
	h.fields.reset(localCfg.LocalEntityId)
	return h
}

func (h *Handler) directiveQueue(dt cfdp.DirectiveType) *queue.Queue {
	q, ok := h.directiveQ[dt]
	if !ok {
		q = queue.New(directiveQueueCapacity)
		h.directiveQ[dt] = q
	}
	return q
}

// PassPacket sorts an inbound PDU into the File-Data FIFO or the
// file-directive table keyed by directive type, preserving arrival order
// within each (spec.md §4.4 pass_packet).
func (h *Handler) PassPacket(holder cfdp.PduHolder) error {
	if holder.Empty() {
		return cfdp.ErrPduHolderEmpty
	}
	if !holder.IsFileDirective() {
		if !h.fileDataQ.Push(holder) {
			h.logger.Warn("file-data queue full, dropping inbound PDU")
		}
		return nil
	}
	dt, err := holder.PduDirectiveType()
	if err != nil {
		return err
	}
	q := h.directiveQueue(dt)
	if !q.Push(holder) {
		h.logger.Warn("file-directive queue full, dropping inbound PDU", "directive", dt)
	}
	return nil
}

// StateMachine advances the handler as far as it can without blocking on
// more inbound PDUs, stopping once a PDU is placed in the holder or there is
// nothing further to do with what has arrived so far.
func (h *Handler) StateMachine() (FsmResult, error) {
	if h.states.PacketReady {
		return h.result(), nil
	}

	if h.states.State == StateIdle {
		h.tryAcceptMetadata()
		if h.states.State == StateIdle {
			return h.result(), nil
		}
	}

	if h.states.Step == StepReceivingFileData {
		if err := h.receiveFileData(); err != nil {
			return h.result(), err
		}
		if h.states.Step != StepReceivingFileData {
			return h.StateMachine()
		}
		return h.result(), nil
	}
	if h.states.Step == StepTransferCompletion {
		h.transferCompletion()
		return h.StateMachine()
	}
	if h.states.Step == StepSendingFinishedPdu {
		h.prepareFinishedPdu()
		return h.result(), nil
	}
	return h.result(), nil
}

func (h *Handler) result() FsmResult {
	return FsmResult{Holder: h.holder, States: h.states}
}

// ConfirmPacketSent clears PacketReady. Idempotent once cleared.
func (h *Handler) ConfirmPacketSent() {
	h.states.PacketReady = false
}

// AdvanceFsm mirrors the Source handler's handshake: it fails with
// ErrPacketSendNotConfirmed if PacketReady is still true, otherwise raises
// transaction_finished_indication and resets after the Finished PDU (if any)
// has been confirmed sent.
func (h *Handler) AdvanceFsm() error {
	if h.states.PacketReady {
		return cfdp.ErrPacketSendNotConfirmed
	}
	if h.states.Step == StepSendingFinishedPdu {
		h.finishAndReset()
	}
	return nil
}

// Reset returns the handler to IDLE/IDLE and discards all per-transaction
// state and queued inbound PDUs.
func (h *Handler) Reset() {
	h.states = StateWrapper{}
	h.holder.Clear()
	h.fields.reset(h.localCfg.LocalEntityId)
	h.fileDataQ.Reset()
	for _, q := range h.directiveQ {
		q.Reset()
	}
}
