// Package filestore implements the Virtual Filestore (spec.md C2): the
// narrow read/write/stat contract both handlers use to reach source and
// destination files, kept independent of any concrete storage backend —
// the same role teacher's od.Streamer plays as the sole gateway to Object
// Dictionary storage (pkg/od/streamer.go).
package filestore

import "io"

// OpenedFile is a handle returned by VirtualFilestore.Open, read from at
// arbitrary offsets via ReadAt — spec.md §4.1 requires "must seek to offset
// before reading", which io.ReaderAt already guarantees by contract.
type OpenedFile interface {
	io.ReaderAt
	io.Closer
}

// VirtualFilestore is the contract the core consumes for file I/O.
// Implementations may be backed by a real filesystem, an in-memory map, or
// a test double; the core never assumes more than this.
type VirtualFilestore interface {
	// StatSize returns the size in bytes of the file at path, failing with
	// ErrFileMissing if it does not exist.
	StatSize(path string) (uint64, error)
	// Open returns a handle for reading path, failing with ErrFileMissing
	// if it does not exist.
	Open(path string) (OpenedFile, error)
	// Write writes data at offset into the file at path, creating the
	// file if it does not exist and extending it as needed.
	Write(path string, data []byte, offset uint64) error
}

// Read is a convenience wrapper that reads exactly length bytes from file
// at offset, failing with ErrIO if fewer bytes are available (spec.md
// §4.1: "reading past EOF fails with IoError").
func Read(file OpenedFile, offset uint64, length uint32) ([]byte, error) {
	buf := make([]byte, length)
	n, err := file.ReadAt(buf, int64(offset))
	if err != nil && err != io.EOF {
		return nil, ErrIO
	}
	if uint32(n) != length {
		return nil, ErrIO
	}
	return buf, nil
}
