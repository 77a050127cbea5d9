package source

import cfdp "github.com/go-cfdp/gocfdp"

// prepareMetadataPdu implements spec.md §4.3 step 4: build the Metadata PDU
// from the request and remote config, place it in the holder, and set
// PacketReady. advance_fsm moves Step to SENDING_FILE_DATA once the host
// confirms the send.
func (h *Handler) prepareMetadataPdu() {
	pdu := &cfdp.MetadataPdu{
		Config:           h.fields.PduConfig,
		ClosureRequested: h.fields.RemoteCfg.ClosureRequested,
		ChecksumType:     h.fields.RemoteCfg.CrcType,
		FileSize:         h.fields.FileParams.Size,
		SourceFileName:   h.request.Cfg.SourceFile,
		DestFileName:     h.request.Cfg.DestFile,
	}
	h.holder.Set(pdu)
	h.states.PacketReady = true
}
