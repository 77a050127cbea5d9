package source

import (
	cfdp "github.com/go-cfdp/gocfdp"
	"github.com/go-cfdp/gocfdp/pkg/mib"
)

// FileParams tracks a transaction's progress through its source file.
// Invariant at rest (between PDUs): 0 <= Offset <= Size; SegmentLen >= 1
// once TRANSACTION_START has run. Crc32 is fixed by the CRC procedure phase
// and not touched again until reset.
type FileParams struct {
	Offset     uint64
	SegmentLen uint32
	Crc32      uint32
	Size       uint64
}

func (fp *FileParams) reset() {
	*fp = FileParams{}
}

// transferFields groups the per-transaction state a Handler owns exclusively
// (spec.md §3 "Ownership"). Plain struct with exported-style field access
// within the package; spec.md §9 explicitly rejects a property-mirroring
// wrapper around PduConfig, so FileParams and PduConfig sit here unwrapped.
type transferFields struct {
	Transaction *cfdp.TransactionId
	FileParams  FileParams
	RemoteCfg   *mib.RemoteEntityCfg
	PduConfig   cfdp.PduConfig
}

func (t *transferFields) reset(localEntityId cfdp.EntityId) {
	t.Transaction = nil
	t.FileParams.reset()
	t.RemoteCfg = nil
	t.PduConfig = cfdp.EmptyPduConfig(localEntityId)
}
