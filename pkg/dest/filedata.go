package dest

import (
	cfdp "github.com/go-cfdp/gocfdp"
	"github.com/go-cfdp/gocfdp/pkg/user"
)

// receiveFileData implements spec.md §4.4 step 2. It drains every queued
// File-Data PDU, writing each to the destination file by offset — Class-1
// delivery is unordered, so writing by offset rather than by arrival keeps
// the result correct regardless of arrival order. Only once the File-Data
// queue is fully drained does it look at a pending EOF, satisfying "EOF
// before all data" (spec.md §4.4): the queue is always drained first.
func (h *Handler) receiveFileData() error {
	var writeErr error
	h.fileDataQ.Drain(func(holder cfdp.PduHolder) bool {
		fd, err := holder.AsFileData()
		if err != nil {
			h.logger.Warn("discarding non-file-data entry from file-data queue", "error", err)
			return true
		}
		if h.localCfg.IndicationCfg.FileSegmentRecvIndicationRequired && h.user != nil {
			h.user.FileSegmentRecvIndication(user.FileSegmentRecvParams{
				TransactionId:           *h.fields.Transaction,
				Offset:                  fd.Offset,
				Length:                  uint32(len(fd.FileData)),
				RecordContinuationState: fd.RecordContinuationState,
				SegmentMetadata:         fd.SegmentMetadata,
			})
		}
		if err := h.vfs.Write(h.fields.DestFileName, fd.FileData, fd.Offset); err != nil {
			writeErr = err
			return false
		}
		return true
	})
	if writeErr != nil {
		return writeErr
	}

	eofQ := h.directiveQueue(cfdp.DirectiveEOF)
	holder, ok := eofQ.Pop()
	if !ok {
		return nil
	}
	eof, err := holder.AsEOF()
	if err != nil {
		h.logger.Warn("discarding malformed eof entry", "error", err)
		return nil
	}
	if h.localCfg.IndicationCfg.EOFRecvIndicationRequired && h.user != nil {
		h.user.EOFRecvIndication(*h.fields.Transaction)
	}

	if eof.ConditionCode != cfdp.ConditionNoError {
		// The sender cancelled the transaction; there is no complete file
		// to verify. Report the fault and terminate rather than staying
		// busy in StepReceivingFileData forever.
		h.logger.Warn("eof carried non-nominal condition code, cancelling transaction", "condition", eof.ConditionCode)
		h.fields.ConditionCode = eof.ConditionCode
		h.fields.DeliveryCode = cfdp.DeliveryDataIncomplete
		h.fields.FileStatus = cfdp.FileStatusDiscardedFailure
		h.states.Step = StepSendingFinishedPdu
		return nil
	}

	h.fields.FileParams.Crc32 = eof.FileChecksum
	h.fields.FileParams.Size = eof.FileSize

	if h.states.State == StateBusyClass1Nacked {
		h.states.Step = StepTransferCompletion
	} else {
		h.states.Step = StepSendingAckPdu
	}
	return nil
}
