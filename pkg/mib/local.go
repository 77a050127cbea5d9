// Package mib implements the Management Information Base (spec.md C1):
// the local and remote entity configuration that parameterises both the
// Source and Destination handlers.
package mib

import cfdp "github.com/go-cfdp/gocfdp"

// IndicationCfg gates which optional user callbacks a LocalEntityCfg's
// owner wants to receive. Grounded on tmtccmd/cfdp/mib.py's
// LocalIndicationCfg dataclass.
type IndicationCfg struct {
	EOFSentIndicationRequired             bool
	EOFRecvIndicationRequired             bool
	FileSegmentRecvIndicationRequired     bool
	TransactionFinishedIndicationRequired bool
	SuspendedIndicationRequired           bool
	ResumedIndicationRequired             bool
}

// FaultHandlerAction is the action a fault handler takes for a given
// condition code.
type FaultHandlerAction uint8

const (
	FaultHandlerIgnore FaultHandlerAction = iota
	FaultHandlerNotice
	FaultHandlerAbandon
	FaultHandlerCancel
)

// FaultHandlerMap maps a fault condition code to the action the local
// entity takes when that fault occurs.
type FaultHandlerMap map[cfdp.ConditionCode]FaultHandlerAction

// Action returns the configured action for code, defaulting to
// FaultHandlerCancel (CFDP's conservative default) if none is configured.
func (m FaultHandlerMap) Action(code cfdp.ConditionCode) FaultHandlerAction {
	if a, ok := m[code]; ok {
		return a
	}
	return FaultHandlerCancel
}

// LocalEntityCfg describes this CFDP entity: its own id, which user
// indications it wants raised, and its default fault handling policy.
type LocalEntityCfg struct {
	LocalEntityId        cfdp.EntityId
	IndicationCfg        IndicationCfg
	DefaultFaultHandlers FaultHandlerMap
}
