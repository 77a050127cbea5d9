package source

import (
	cfdp "github.com/go-cfdp/gocfdp"
	"github.com/go-cfdp/gocfdp/pkg/user"
)

// prepareEofPdu implements spec.md §4.3 step 6: build the EOF PDU from the
// fixed FileParams checksum and size, emit it, and set PacketReady.
// advance_fsm raises eof_sent_indication and moves Step to
// NOTICE_OF_COMPLETION.
func (h *Handler) prepareEofPdu() {
	pdu := &cfdp.EofPdu{
		Config:        h.fields.PduConfig,
		ConditionCode: cfdp.ConditionNoError,
		FileChecksum:  h.fields.FileParams.Crc32,
		FileSize:      h.fields.FileParams.Size,
	}
	h.holder.Set(pdu)
	h.states.PacketReady = true
}

// noticeOfCompletion implements spec.md §4.3 step 7. When closure was not
// requested it raises transaction_finished_indication and resets
// immediately. When closure was requested it drains the closure-wait queue
// looking for a Finished PDU, discarding anything else it finds while
// waiting (resolving the original source's open TODO on this point — see
// DESIGN.md).
func (h *Handler) noticeOfCompletion() {
	if !h.fields.RemoteCfg.ClosureRequested {
		h.finishAndReset(cfdp.ConditionNoError, cfdp.DeliveryDataComplete, cfdp.FileStatusUnreported)
		return
	}

	var finished *cfdp.FinishedPdu
	h.recvQ.Drain(func(holder cfdp.PduHolder) bool {
		if f, err := holder.AsFinished(); err == nil {
			finished = f
			return false
		}
		h.logger.Debug("discarding non-Finished PDU received while awaiting closure")
		return true
	})
	if finished == nil {
		// Nothing arrived yet this call; StateMachine will be called
		// again once the host has more inbound PDUs to pass in.
		return
	}
	h.finishAndReset(finished.ConditionCode, finished.DeliveryCode, finished.FileStatus)
}

func (h *Handler) finishAndReset(condition cfdp.ConditionCode, delivery cfdp.DeliveryCode, fileStatus cfdp.FileStatus) {
	if h.user != nil {
		h.user.TransactionFinishedIndication(user.TransactionFinishedParams{
			TransactionId: *h.fields.Transaction,
			ConditionCode: condition,
			FileStatus:    fileStatus,
			DeliveryCode:  delivery,
		})
	}
	h.Reset()
}
