package dest

import (
	cfdp "github.com/go-cfdp/gocfdp"
	"github.com/go-cfdp/gocfdp/pkg/user"
)

// tryAcceptMetadata implements spec.md §4.4 step 1. If no Metadata PDU is
// queued yet the handler stays IDLE. Destination allocates its TransactionId
// straight from the PDU's own header (source id, transaction_seq_num) rather
// than drawing from a sequence number provider — a receiver names the
// transaction the sender already named.
func (h *Handler) tryAcceptMetadata() {
	q := h.directiveQueue(cfdp.DirectiveMetadata)
	holder, ok := q.Pop()
	if !ok {
		return
	}
	meta, err := holder.AsMetadata()
	if err != nil {
		h.logger.Warn("discarding malformed metadata entry", "error", err)
		return
	}

	if meta.Config.TransMode == cfdp.TransmissionModeUnacknowledged {
		h.states.State = StateBusyClass1Nacked
	} else {
		h.states.State = StateBusyClass2Acked
	}
	h.states.Step = StepReceivingFileData

	h.fields.PduConfig = meta.Config
	h.fields.PduConfig.Direction = cfdp.DirectionTowardsSender
	// A Metadata PDU with no checksum_type TLV decodes to the zero value,
	// which is none of the defined ChecksumType constants; treat that as
	// "no checksum requested" rather than letting it fail verification.
	h.fields.ChecksumType = meta.ChecksumType
	if h.fields.ChecksumType != cfdp.ChecksumNull && h.fields.ChecksumType != cfdp.ChecksumCRC32 && h.fields.ChecksumType != cfdp.ChecksumCRC32C {
		h.fields.ChecksumType = cfdp.ChecksumNull
	}
	h.fields.ClosureRequested = meta.ClosureRequested
	h.fields.SourceFileName = meta.SourceFileName
	h.fields.DestFileName = meta.DestFileName
	h.fields.FileParams.Size = meta.FileSize

	if meta.FileSize == 0 {
		// A zero-length transfer emits no File-Data PDU, so nothing else
		// will ever call vfs.Write for this file; create it empty here so
		// the destination file exists once the transfer completes.
		if err := h.vfs.Write(meta.DestFileName, nil, 0); err != nil {
			h.logger.Warn("failed to create empty destination file", "error", err)
		}
	}

	tid := cfdp.NewTransactionId(meta.Config.SourceEntityId, meta.Config.TransactionSeqNum)
	h.fields.Transaction = &tid

	var msgsToUser []cfdp.Tlv
	for _, tlv := range meta.Options {
		if tlv.Type == cfdp.TlvMessageToUser {
			msgsToUser = append(msgsToUser, tlv)
		}
	}

	if h.user != nil {
		h.user.MetadataRecvIndication(user.MetadataRecvParams{
			TransactionId:  tid,
			SourceId:       meta.Config.SourceEntityId,
			FileSize:       meta.FileSize,
			SourceFileName: meta.SourceFileName,
			DestFileName:   meta.DestFileName,
			MsgsToUser:     msgsToUser,
		})
	}
}
