package cfdp

// DirectiveType identifies a file-directive PDU's function. File-Data PDUs
// carry no directive type — they are distinguished from directives by
// PduHolder.IsFileDirective.
type DirectiveType uint8

const (
	DirectiveEOF      DirectiveType = 4
	DirectiveFinished DirectiveType = 5
	DirectiveACK      DirectiveType = 6
	DirectiveMetadata DirectiveType = 7
	DirectiveNAK      DirectiveType = 8
	DirectivePrompt   DirectiveType = 9
	DirectiveKeepAlive DirectiveType = 12
)

// ConditionCode is the CFDP condition code carried by EOF and Finished PDUs.
type ConditionCode uint8

const (
	ConditionNoError             ConditionCode = 0
	ConditionFileChecksumFailure ConditionCode = 1
	ConditionFileSizeError       ConditionCode = 2
	ConditionCancelRequestReceived ConditionCode = 6
)

// DeliveryCode reports whether the destination believes it received a
// complete copy of the file.
type DeliveryCode uint8

const (
	DeliveryDataComplete   DeliveryCode = 0
	DeliveryDataIncomplete DeliveryCode = 1
)

// FileStatus reports what the destination did with the delivered file.
type FileStatus uint8

const (
	FileStatusUnreported        FileStatus = 0
	FileStatusRetained          FileStatus = 1
	FileStatusDiscardedFailure  FileStatus = 2
	FileStatusDiscardedFilestore FileStatus = 3
	FileStatusChecksumFailure   FileStatus = 4
)

// TlvType identifies a Metadata PDU option TLV. Only the ones the core
// reads are enumerated; unrecognised TLVs are preserved opaquely.
type TlvType uint8

const (
	TlvMessageToUser       TlvType = 0x02
	TlvFilestoreRequest    TlvType = 0x00
	TlvFaultHandlerOverride TlvType = 0x04
	TlvFlowLabel           TlvType = 0x05
)

// Tlv is an opaque Metadata PDU option.
type Tlv struct {
	Type  TlvType
	Value []byte
}

// MetadataPdu opens a transaction and carries its file-level metadata.
type MetadataPdu struct {
	Config           PduConfig
	ClosureRequested bool
	ChecksumType     ChecksumType
	FileSize         uint64
	SourceFileName   string
	DestFileName     string
	Options          []Tlv
}

// ChecksumType selects the checksum algorithm used over the file contents.
// Declared here (rather than in internal/crc) because it rides on the wire
// inside the Metadata PDU.
type ChecksumType uint8

const (
	ChecksumNull  ChecksumType = 15
	ChecksumCRC32 ChecksumType = 2
	ChecksumCRC32C ChecksumType = 3
)

// FileDataPdu carries one contiguous byte range of the file.
type FileDataPdu struct {
	Config                PduConfig
	Offset                uint64
	FileData              []byte
	SegmentMetadataFlag   bool
	RecordContinuationState uint8
	SegmentMetadata       []byte
}

// EofPdu closes the sending side of a transaction.
type EofPdu struct {
	Config        PduConfig
	ConditionCode ConditionCode
	FileChecksum  uint32
	FileSize      uint64
}

// FinishedPdu is sent by the receiver once closure was requested and the
// transfer has been verified (or has failed).
type FinishedPdu struct {
	Config        PduConfig
	ConditionCode ConditionCode
	DeliveryCode  DeliveryCode
	FileStatus    FileStatus
	// FaultLocation is set only when ConditionCode != ConditionNoError.
	FaultLocation *EntityId
}

// AckPdu and NakPdu are named so the Class-2 state enums and PduHolder type
// switch have somewhere to point; spec.md §1 scopes their actual
// acknowledged-mode semantics out of this core.
type AckPdu struct {
	Config        PduConfig
	DirectiveCode DirectiveType
	ConditionCode ConditionCode
}

type NakPdu struct {
	Config      PduConfig
	StartOfScope uint64
	EndOfScope   uint64
}
