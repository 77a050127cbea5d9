// Package cfdp implements the core of the CCSDS File Delivery Protocol
// (CCSDS 727.0-B-5) Copy File procedure: the Source and Destination
// finite-state machines, their shared PDU and configuration types, and the
// narrow interfaces (filestore, user indications) they are driven through.
//
// The package does not transport PDUs. It produces and consumes decoded
// PDU values; framing them onto a link and moving bytes across it is left
// to the host.
package cfdp

import "errors"

var (
	ErrIllegalArgument         = errors.New("cfdp: error in function arguments")
	ErrBusy                    = errors.New("cfdp: handler is busy with another transaction")
	ErrNoRemoteEntityCfgFound  = errors.New("cfdp: no remote entity configuration found for requested destination")
	ErrSourceFileDoesNotExist  = errors.New("cfdp: source file does not exist")
	ErrPacketSendNotConfirmed  = errors.New("cfdp: must confirm current packet was sent before advancing state machine")
	ErrInvalidPduForHandler    = errors.New("cfdp: PDU type is not valid for this handler")
	ErrChecksumNotImplemented  = errors.New("cfdp: checksum type not implemented")
	ErrInvalidTransmissionMode = errors.New("cfdp: invalid or unconfigured transmission mode")
	ErrInvalidSeqNumWidth      = errors.New("cfdp: sequence number provider has an unsupported bit width")
	ErrPduTypeMismatch         = errors.New("cfdp: PDU holder does not contain the requested PDU type")
	ErrPduHolderEmpty          = errors.New("cfdp: PDU holder is empty")
	ErrDuplicateRemoteEntity   = errors.New("cfdp: remote entity id already present in table")
)
