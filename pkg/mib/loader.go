package mib

import (
	"strconv"

	cfdp "github.com/go-cfdp/gocfdp"
	"gopkg.in/ini.v1"
)

// LoadLocalEntityCfg parses a LocalEntityCfg from an INI file's
// [local-entity] section. This is a convenience constructor only — the
// engine has no dependency on it; every test in this module builds
// LocalEntityCfg values directly with struct literals. Grounded on
// teacher's pkg/od/parser.go, which loads Object Dictionary definitions
// from the same gopkg.in/ini.v1-parsed file format.
//
// Expected keys under [local-entity]:
//
//	entity_id           (hex or decimal)
//	entity_id_width     1|2|4|8
//	eof_sent_indication, eof_recv_indication, file_segment_recv_indication,
//	transaction_finished_indication, suspended_indication, resumed_indication (bool)
func LoadLocalEntityCfg(file any) (LocalEntityCfg, error) {
	cfg, err := ini.Load(file)
	if err != nil {
		return LocalEntityCfg{}, err
	}
	section, err := cfg.GetSection("local-entity")
	if err != nil {
		return LocalEntityCfg{}, err
	}
	width, err := section.Key("entity_id_width").Int()
	if err != nil {
		return LocalEntityCfg{}, err
	}
	id, err := parseEntityIDKey(section, "entity_id", cfdp.EntityWidth(width))
	if err != nil {
		return LocalEntityCfg{}, err
	}
	return LocalEntityCfg{
		LocalEntityId: id,
		IndicationCfg: IndicationCfg{
			EOFSentIndicationRequired:             section.Key("eof_sent_indication").MustBool(false),
			EOFRecvIndicationRequired:             section.Key("eof_recv_indication").MustBool(false),
			FileSegmentRecvIndicationRequired:     section.Key("file_segment_recv_indication").MustBool(false),
			TransactionFinishedIndicationRequired: section.Key("transaction_finished_indication").MustBool(true),
			SuspendedIndicationRequired:           section.Key("suspended_indication").MustBool(false),
			ResumedIndicationRequired:             section.Key("resumed_indication").MustBool(false),
		},
		DefaultFaultHandlers: FaultHandlerMap{},
	}, nil
}

// LoadRemoteEntityTable parses a RemoteEntityTable from an INI file, one
// [remote-entity.<name>] section per remote entity; the entity id is taken
// from the entity_id key, not from the section name. Expected keys per
// section: entity_id (hex or decimal), entity_id_width, max_file_segment_len, crc_on_transmission
// (bool), crc_type (null|crc32|crc32c), default_transmission_mode
// (acknowledged|unacknowledged), closure_requested (bool).
func LoadRemoteEntityTable(file any) (*RemoteEntityTable, error) {
	cfg, err := ini.Load(file)
	if err != nil {
		return nil, err
	}
	table := NewRemoteEntityTable()
	for _, section := range cfg.Sections() {
		name := section.Name()
		if len(name) < len("remote-entity.") || name[:len("remote-entity.")] != "remote-entity." {
			continue
		}
		width, err := section.Key("entity_id_width").Int()
		if err != nil {
			return nil, err
		}
		id, err := parseEntityIDKey(section, "entity_id", cfdp.EntityWidth(width))
		if err != nil {
			return nil, err
		}
		remoteCfg := RemoteEntityCfg{
			RemoteEntityId:          id,
			MaxFileSegmentLen:       uint32(section.Key("max_file_segment_len").MustInt(1024)),
			CrcOnTransmission:       section.Key("crc_on_transmission").MustBool(false),
			CrcType:                 parseChecksumType(section.Key("crc_type").MustString("crc32")),
			DefaultTransmissionMode: parseTransmissionMode(section.Key("default_transmission_mode").MustString("unacknowledged")),
			ClosureRequested:        section.Key("closure_requested").MustBool(false),
		}
		if !table.Add(remoteCfg) {
			return nil, cfdp.ErrDuplicateRemoteEntity
		}
	}
	return table, nil
}

func parseEntityIDKey(section *ini.Section, key string, width cfdp.EntityWidth) (cfdp.EntityId, error) {
	raw := section.Key(key).String()
	value, err := strconv.ParseUint(raw, 0, 64)
	if err != nil {
		return cfdp.EntityId{}, err
	}
	return cfdp.NewEntityId(value, width)
}

func parseChecksumType(s string) cfdp.ChecksumType {
	switch s {
	case "crc32c":
		return cfdp.ChecksumCRC32C
	case "null":
		return cfdp.ChecksumNull
	default:
		return cfdp.ChecksumCRC32
	}
}

func parseTransmissionMode(s string) cfdp.TransmissionMode {
	switch s {
	case "acknowledged":
		return cfdp.TransmissionModeAcknowledged
	case "unacknowledged":
		return cfdp.TransmissionModeUnacknowledged
	default:
		return cfdp.TransmissionModeUnset
	}
}
