package dest

import (
	"io"

	cfdp "github.com/go-cfdp/gocfdp"
	"github.com/go-cfdp/gocfdp/internal/crc"
	"github.com/go-cfdp/gocfdp/pkg/user"
)

// destVerifyChunkSize bounds how much of the destination file is held in
// memory at once while recomputing its checksum (spec.md C8 "MUST stream").
// It is independent of the sender's segment length: the destination side
// has no RemoteEntityCfg of its own to draw one from.
const destVerifyChunkSize = 4096

// transferCompletion implements spec.md §4.4 step 3: recompute the
// destination file's checksum using the checksum_type learned from
// Metadata, and compare it against the one the EOF PDU carried.
func (h *Handler) transferCompletion() {
	digest, err := crc.New(toCrcType(h.fields.ChecksumType))
	if err != nil {
		h.fields.DeliveryCode = cfdp.DeliveryDataIncomplete
		h.fields.FileStatus = cfdp.FileStatusChecksumFailure
		h.fields.ConditionCode = cfdp.ConditionFileChecksumFailure
		h.states.Step = StepSendingFinishedPdu
		return
	}

	size := h.fields.FileParams.Size
	if size > 0 {
		file, openErr := h.vfs.Open(h.fields.DestFileName)
		if openErr != nil {
			h.fields.DeliveryCode = cfdp.DeliveryDataIncomplete
			h.fields.FileStatus = cfdp.FileStatusDiscardedFilestore
			h.fields.ConditionCode = cfdp.ConditionFileSizeError
			h.states.Step = StepSendingFinishedPdu
			return
		}
		defer file.Close()

		var offset uint64
		for offset < size {
			readLen := size - offset
			if readLen > destVerifyChunkSize {
				readLen = destVerifyChunkSize
			}
			buf := make([]byte, readLen)
			n, rerr := file.ReadAt(buf, int64(offset))
			if (rerr != nil && rerr != io.EOF) || n == 0 {
				// A short/empty read here means the file is shorter than
				// the size the EOF PDU declared (e.g. a dropped trailing
				// segment); report it instead of spinning forever.
				h.fields.DeliveryCode = cfdp.DeliveryDataIncomplete
				h.fields.FileStatus = cfdp.FileStatusDiscardedFilestore
				h.fields.ConditionCode = cfdp.ConditionFileSizeError
				h.states.Step = StepSendingFinishedPdu
				return
			}
			digest.Write(buf[:n])
			offset += uint64(n)
		}
	}

	if digest.Sum32() == h.fields.FileParams.Crc32 {
		h.fields.DeliveryCode = cfdp.DeliveryDataComplete
		h.fields.FileStatus = cfdp.FileStatusRetained
		h.fields.ConditionCode = cfdp.ConditionNoError
	} else {
		h.fields.DeliveryCode = cfdp.DeliveryDataIncomplete
		h.fields.FileStatus = cfdp.FileStatusChecksumFailure
		h.fields.ConditionCode = cfdp.ConditionFileChecksumFailure
	}
	h.states.Step = StepSendingFinishedPdu
}

// toCrcType adapts the wire-level cfdp.ChecksumType to internal/crc's Type,
// mirroring pkg/source's crc_procedure.go helper of the same shape.
func toCrcType(t cfdp.ChecksumType) crc.Type {
	switch t {
	case cfdp.ChecksumNull:
		return crc.TypeNull
	case cfdp.ChecksumCRC32:
		return crc.Type32
	case cfdp.ChecksumCRC32C:
		return crc.Type32C
	default:
		return crc.Type(0xff)
	}
}

// prepareFinishedPdu implements spec.md §4.4 step 4. If closure was not
// requested the finished indication is raised immediately and the handler
// resets without emitting a PDU; otherwise a Finished PDU is built and
// PacketReady is set, and finishAndReset runs once the host confirms+
// advances.
func (h *Handler) prepareFinishedPdu() {
	if !h.fields.ClosureRequested {
		h.finishAndReset()
		return
	}

	var faultLocation *cfdp.EntityId
	if h.fields.ConditionCode != cfdp.ConditionNoError {
		id := h.fields.PduConfig.DestEntityId
		faultLocation = &id
	}
	pdu := &cfdp.FinishedPdu{
		Config:        h.fields.PduConfig,
		ConditionCode: h.fields.ConditionCode,
		DeliveryCode:  h.fields.DeliveryCode,
		FileStatus:    h.fields.FileStatus,
		FaultLocation: faultLocation,
	}
	h.holder.Set(pdu)
	h.states.PacketReady = true
}

func (h *Handler) finishAndReset() {
	if h.user != nil {
		h.user.TransactionFinishedIndication(user.TransactionFinishedParams{
			TransactionId: *h.fields.Transaction,
			ConditionCode: h.fields.ConditionCode,
			FileStatus:    h.fields.FileStatus,
			DeliveryCode:  h.fields.DeliveryCode,
		})
	}
	h.Reset()
}
