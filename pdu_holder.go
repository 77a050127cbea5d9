package cfdp

// PduHolder is a tagged container carrying at most one concrete PDU value.
// It is a closed sum type over the handful of PDU kinds the core knows
// about, narrowed via type switch the way teacher's od.Streamer narrows its
// Object field (see od/streamer.go:NewStreamer) — there is no dynamic
// dispatch interface here because the set of PDU kinds is fixed.
type PduHolder struct {
	value any
}

// NewPduHolder wraps a concrete PDU value (one of *MetadataPdu, *FileDataPdu,
// *EofPdu, *FinishedPdu, *AckPdu, *NakPdu) or nil for an empty holder.
func NewPduHolder(value any) PduHolder {
	return PduHolder{value: value}
}

// Empty reports whether the holder carries no PDU.
func (h PduHolder) Empty() bool {
	return h.value == nil
}

// Set replaces the held PDU.
func (h *PduHolder) Set(value any) {
	h.value = value
}

// Clear empties the holder.
func (h *PduHolder) Clear() {
	h.value = nil
}

// IsFileDirective reports whether the held PDU is a file directive as
// opposed to file data. An empty holder is not a file directive.
func (h PduHolder) IsFileDirective() bool {
	switch h.value.(type) {
	case *MetadataPdu, *EofPdu, *FinishedPdu, *AckPdu, *NakPdu:
		return true
	default:
		return false
	}
}

// PduDirectiveType returns the directive type of the held PDU, or
// ErrPduTypeMismatch if the holder is empty or holds a File-Data PDU.
func (h PduHolder) PduDirectiveType() (DirectiveType, error) {
	switch h.value.(type) {
	case *MetadataPdu:
		return DirectiveMetadata, nil
	case *EofPdu:
		return DirectiveEOF, nil
	case *FinishedPdu:
		return DirectiveFinished, nil
	case *AckPdu:
		return DirectiveACK, nil
	case *NakPdu:
		return DirectiveNAK, nil
	default:
		return 0, ErrPduTypeMismatch
	}
}

// Config returns the PduConfig embedded in whichever PDU is held, or
// ErrPduHolderEmpty.
func (h PduHolder) Config() (PduConfig, error) {
	switch p := h.value.(type) {
	case *MetadataPdu:
		return p.Config, nil
	case *FileDataPdu:
		return p.Config, nil
	case *EofPdu:
		return p.Config, nil
	case *FinishedPdu:
		return p.Config, nil
	case *AckPdu:
		return p.Config, nil
	case *NakPdu:
		return p.Config, nil
	default:
		return PduConfig{}, ErrPduHolderEmpty
	}
}

// The As* accessors narrow the holder to a specific concrete type, failing
// with ErrPduTypeMismatch if the holder contains something else (or
// ErrPduHolderEmpty if it contains nothing).

func (h PduHolder) AsMetadata() (*MetadataPdu, error) {
	return narrow[*MetadataPdu](h)
}

func (h PduHolder) AsFileData() (*FileDataPdu, error) {
	return narrow[*FileDataPdu](h)
}

func (h PduHolder) AsEOF() (*EofPdu, error) {
	return narrow[*EofPdu](h)
}

func (h PduHolder) AsFinished() (*FinishedPdu, error) {
	return narrow[*FinishedPdu](h)
}

func (h PduHolder) AsAck() (*AckPdu, error) {
	return narrow[*AckPdu](h)
}

func (h PduHolder) AsNak() (*NakPdu, error) {
	return narrow[*NakPdu](h)
}

func narrow[T any](h PduHolder) (T, error) {
	var zero T
	if h.value == nil {
		return zero, ErrPduHolderEmpty
	}
	v, ok := h.value.(T)
	if !ok {
		return zero, ErrPduTypeMismatch
	}
	return v, nil
}
