package source

import (
	"io"

	cfdp "github.com/go-cfdp/gocfdp"
	"github.com/go-cfdp/gocfdp/internal/crc"
)

// transactionStart implements spec.md §4.3 step 2: stat the source file,
// seed FileParams, allocate the TransactionId, and raise
// transaction_indication. Always runs unconditionally on entering BUSY.
func (h *Handler) transactionStart() error {
	size, err := h.vfs.StatSize(h.request.Cfg.SourceFile)
	if err != nil {
		return cfdp.ErrSourceFileDoesNotExist
	}
	h.fields.FileParams.Size = size
	h.fields.FileParams.Offset = 0
	h.fields.FileParams.SegmentLen = h.fields.RemoteCfg.MaxFileSegmentLen

	width := h.seqNums.MaxBitWidth()
	switch width {
	case 8, 16, 32, 64:
	default:
		return cfdp.ErrInvalidSeqNumWidth
	}
	seqNum := h.seqNums.GetAndIncrement()
	tid := cfdp.NewTransactionId(h.localCfg.LocalEntityId, seqNum)
	h.fields.Transaction = &tid
	h.fields.PduConfig.TransactionSeqNum = seqNum

	if h.user != nil {
		h.user.TransactionIndication(tid)
	}
	return nil
}

// crcProcedure implements spec.md §4.3 step 3: stream the source file in
// SegmentLen chunks through the checksum service, never reading past EOF and
// never buffering the whole file. Zero-length files are assigned the NULL
// checksum without opening the file at all.
func (h *Handler) crcProcedure() error {
	fp := &h.fields.FileParams
	if fp.Size == 0 {
		fp.Crc32 = crc.NullChecksumU32
		return nil
	}

	digest, err := crc.New(toCrcType(h.fields.RemoteCfg.CrcType))
	if err != nil {
		return cfdp.ErrChecksumNotImplemented
	}

	file, err := h.vfs.Open(h.request.Cfg.SourceFile)
	if err != nil {
		return cfdp.ErrSourceFileDoesNotExist
	}
	defer file.Close()

	var offset uint64
	segLen := uint64(fp.SegmentLen)
	for offset < fp.Size {
		readLen := fp.Size - offset
		if readLen > segLen {
			readLen = segLen
		}
		buf := make([]byte, readLen)
		n, rerr := file.ReadAt(buf, int64(offset))
		if rerr != nil && rerr != io.EOF {
			return cfdp.ErrIllegalArgument
		}
		digest.Write(buf[:n])
		offset += uint64(n)
	}
	fp.Crc32 = digest.Sum32()
	return nil
}

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
