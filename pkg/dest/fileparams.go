package dest

import cfdp "github.com/go-cfdp/gocfdp"

// FileParams tracks what the Destination handler has learned about the file
// being received: its declared size (first from Metadata, then replaced by
// the EOF PDU's size; the two values are not compared) and the checksum the sender computed (from EOF, compared during
// TRANSFER_COMPLETION).
type FileParams struct {
	Size  uint64
	Crc32 uint32
}

func (fp *FileParams) reset() {
	*fp = FileParams{}
}

// transferFields groups the per-transaction state a Handler owns
// exclusively, mirroring pkg/source's transferFields.
type transferFields struct {
	Transaction      *cfdp.TransactionId
	FileParams       FileParams
	PduConfig        cfdp.PduConfig
	ChecksumType     cfdp.ChecksumType
	ClosureRequested bool
	SourceFileName   string
	DestFileName     string
	DeliveryCode     cfdp.DeliveryCode
	FileStatus       cfdp.FileStatus
	ConditionCode    cfdp.ConditionCode
}

func (t *transferFields) reset(localEntityId cfdp.EntityId) {
	*t = transferFields{PduConfig: cfdp.EmptyPduConfig(localEntityId)}
}
