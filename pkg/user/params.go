package user

import cfdp "github.com/go-cfdp/gocfdp"

// MetadataRecvParams carries the fields raised alongside
// User.MetadataRecvIndication.
type MetadataRecvParams struct {
	TransactionId  cfdp.TransactionId
	SourceId       cfdp.EntityId
	FileSize       uint64
	SourceFileName string
	DestFileName   string
	MsgsToUser     []cfdp.Tlv
}

// FileSegmentRecvParams carries the fields raised alongside
// User.FileSegmentRecvIndication.
type FileSegmentRecvParams struct {
	TransactionId         cfdp.TransactionId
	Offset                uint64
	Length                uint32
	RecordContinuationState uint8
	SegmentMetadata       []byte
}

// TransactionFinishedParams carries the fields raised alongside
// User.TransactionFinishedIndication.
type TransactionFinishedParams struct {
	TransactionId cfdp.TransactionId
	ConditionCode cfdp.ConditionCode
	FileStatus    cfdp.FileStatus
	DeliveryCode  cfdp.DeliveryCode
}
