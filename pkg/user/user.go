// Package user defines the narrow callback surface (spec.md C3) through
// which the Source and Destination handlers report transaction lifecycle
// events. Indications are synchronous upcalls; implementations must not
// block the FSM.
package user

import cfdp "github.com/go-cfdp/gocfdp"

// User is implemented by the host to receive transaction lifecycle events.
type User interface {
	// TransactionIndication is raised by the Source handler on entering
	// TRANSACTION_START, always.
	TransactionIndication(id cfdp.TransactionId)

	// EOFSentIndication is raised by the Source handler after the EOF PDU
	// is confirmed sent, if configured.
	EOFSentIndication(id cfdp.TransactionId)

	// TransactionFinishedIndication is raised by either handler on
	// successful completion or terminal fault.
	TransactionFinishedIndication(params TransactionFinishedParams)

	// MetadataRecvIndication is raised by the Destination handler on
	// accepting an inbound Metadata PDU.
	MetadataRecvIndication(params MetadataRecvParams)

	// FileSegmentRecvIndication is raised by the Destination handler per
	// File-Data PDU, if configured.
	FileSegmentRecvIndication(params FileSegmentRecvParams)

	// EOFRecvIndication is raised by the Destination handler on accepting
	// the EOF PDU, if configured.
	EOFRecvIndication(id cfdp.TransactionId)
}
