package cfdp

// TransactionId uniquely identifies one CFDP transaction: the pair of the
// source entity's id and a transaction sequence number that entity assigned.
// Two TransactionId values compare equal iff both fields match.
type TransactionId struct {
	SourceEntityId    EntityId
	TransactionSeqNum uint64
}

func NewTransactionId(sourceEntityId EntityId, seqNum uint64) TransactionId {
	return TransactionId{SourceEntityId: sourceEntityId, TransactionSeqNum: seqNum}
}

func (t TransactionId) Equal(other TransactionId) bool {
	return t.SourceEntityId == other.SourceEntityId && t.TransactionSeqNum == other.TransactionSeqNum
}
