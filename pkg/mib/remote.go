package mib

import cfdp "github.com/go-cfdp/gocfdp"

// RemoteEntityCfg describes one remote CFDP entity as seen from here:
// how large a file segment it should be sent in, which checksum it
// expects, and its default transmission and closure policy.
//
// Invariant: MaxFileSegmentLen >= 1. CrcType must be CRC32 or CRC32C; the
// NULL checksum is used only for zero-length files regardless of CrcType.
type RemoteEntityCfg struct {
	RemoteEntityId           cfdp.EntityId
	MaxFileSegmentLen        uint32
	CrcOnTransmission        bool
	CrcType                  cfdp.ChecksumType
	DefaultTransmissionMode  cfdp.TransmissionMode
	ClosureRequested         bool
}

// RemoteEntityTable maps a remote entity id to its configuration. Key
// uniqueness is an invariant enforced by Add.
type RemoteEntityTable struct {
	entries map[cfdp.EntityId]RemoteEntityCfg
}

// NewRemoteEntityTable returns an empty table.
func NewRemoteEntityTable() *RemoteEntityTable {
	return &RemoteEntityTable{entries: make(map[cfdp.EntityId]RemoteEntityCfg)}
}

// Add inserts cfg, returning false without modifying the table if
// cfg.RemoteEntityId is already present.
func (t *RemoteEntityTable) Add(cfg RemoteEntityCfg) bool {
	if _, exists := t.entries[cfg.RemoteEntityId]; exists {
		return false
	}
	t.entries[cfg.RemoteEntityId] = cfg
	return true
}

// Get returns the configuration for id and whether it was found.
func (t *RemoteEntityTable) Get(id cfdp.EntityId) (RemoteEntityCfg, bool) {
	cfg, ok := t.entries[id]
	return cfg, ok
}
