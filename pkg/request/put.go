// Package request defines the Put request and the tagged request wrapper
// the Source handler's start_transaction operation consumes. Grounded on
// original_source/tmtccmd/cfdp/request.py's PutRequest/CfdpRequestWrapper.
package request

import cfdp "github.com/go-cfdp/gocfdp"

// PutRequestCfg holds the parameters of one Put request.
type PutRequestCfg struct {
	DestinationId cfdp.EntityId
	SourceFile    string
	DestFile      string
	SegCtrl       cfdp.SegmentationControl
	// TransMode overrides the remote entity's default transmission mode
	// when set to anything other than TransmissionModeUnset.
	TransMode cfdp.TransmissionMode
}

// PutRequest is the user-facing request to copy SourceFile to a remote
// entity's DestFile.
type PutRequest struct {
	Cfg PutRequestCfg
}

// RequestType distinguishes the kinds of request CfdpRequestWrapper can
// carry. Only Put is implemented; the others are named so the wrapper's
// shape doesn't need to change when they are.
type RequestType uint8

const (
	RequestTypeNone RequestType = iota
	RequestTypePut
	RequestTypeCancel
	RequestTypeSuspend
	RequestTypeResume
)

// Wrapper is a tagged container for the one request kind the core
// currently implements (Put), kept as a wrapper rather than a bare
// *PutRequest parameter so start_transaction's signature does not need to
// change when Cancel/Suspend/Resume are added.
type Wrapper struct {
	RequestType RequestType
	put         *PutRequest
}

func NewPutWrapper(req PutRequest) Wrapper {
	return Wrapper{RequestType: RequestTypePut, put: &req}
}

// ToPutRequest narrows the wrapper to its PutRequest, failing with
// ErrIllegalArgument if the wrapper does not carry one.
func (w Wrapper) ToPutRequest() (PutRequest, error) {
	if w.RequestType != RequestTypePut || w.put == nil {
		return PutRequest{}, cfdp.ErrIllegalArgument
	}
	return *w.put, nil
}
