package source

import (
	"io"

	cfdp "github.com/go-cfdp/gocfdp"
)

// prepareNextFileDataPdu implements spec.md §4.3 step 5. It reports done ==
// true without emitting a PDU once Offset has reached Size, letting
// StateMachine fall through to SENDING_EOF in the same call; otherwise it
// reads exactly one segment, emits one File-Data PDU, and advances Offset.
func (h *Handler) prepareNextFileDataPdu() (done bool, err error) {
	fp := &h.fields.FileParams
	if fp.Offset >= fp.Size {
		return true, nil
	}

	readLen := fp.Size - fp.Offset
	if readLen > uint64(fp.SegmentLen) {
		readLen = uint64(fp.SegmentLen)
	}

	file, err := h.vfs.Open(h.request.Cfg.SourceFile)
	if err != nil {
		return false, cfdp.ErrSourceFileDoesNotExist
	}
	defer file.Close()

	buf := make([]byte, readLen)
	n, rerr := file.ReadAt(buf, int64(fp.Offset))
	if rerr != nil && rerr != io.EOF {
		return false, cfdp.ErrIllegalArgument
	}
	if uint64(n) != readLen {
		return false, cfdp.ErrIllegalArgument
	}

	pdu := &cfdp.FileDataPdu{
		Config:              h.fields.PduConfig,
		Offset:              fp.Offset,
		FileData:            buf,
		SegmentMetadataFlag: false,
	}
	h.holder.Set(pdu)
	h.states.PacketReady = true
	fp.Offset += uint64(n)
	return false, nil
}
