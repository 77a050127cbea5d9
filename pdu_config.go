package cfdp

// TransmissionMode selects Class-1 (Unacknowledged) or Class-2
// (Acknowledged) transfer semantics for a transaction.
type TransmissionMode uint8

const (
	TransmissionModeUnset          TransmissionMode = 0
	TransmissionModeAcknowledged   TransmissionMode = 1
	TransmissionModeUnacknowledged TransmissionMode = 2
)

// Direction records which end of the transaction a PDU travels towards.
type Direction uint8

const (
	DirectionTowardsReceiver Direction = 0
	DirectionTowardsSender   Direction = 1
)

// SegmentationControl mirrors the CFDP PDU header seg_ctrl field; the core
// never interprets it beyond carrying it through to emitted PDUs.
type SegmentationControl uint8

const (
	SegCtrlNotPreserved SegmentationControl = 0
	SegCtrlPreserved    SegmentationControl = 1
)

// PduConfig holds the header fields shared by every PDU of one transaction.
// It is created empty, progressively filled during transaction setup by the
// owning Handler, and each emitted PDU is built against a snapshot of it.
//
// Per spec.md's design note on TransferFieldWrapper, this is a plain struct
// with exported fields — callers read and write them directly; there is no
// getter/setter wrapper mirroring each field.
type PduConfig struct {
	SourceEntityId    EntityId
	DestEntityId      EntityId
	TransactionSeqNum uint64
	TransMode         TransmissionMode
	CrcFlag           bool
	Direction         Direction
	SegCtrl           SegmentationControl
}

// EmptyPduConfig returns a PduConfig with only SourceEntityId populated,
// matching TransferFieldWrapper's constructor in the original source
// (PduConfig.empty() followed by setting source_entity_id).
func EmptyPduConfig(sourceEntityId EntityId) PduConfig {
	return PduConfig{SourceEntityId: sourceEntityId}
}
