package filestore

import (
	"bytes"
	"io"
	"sync"
)

// MemoryFilestore implements VirtualFilestore entirely in memory. It is
// useful for tests and for embedding the core in a process that keeps
// files as buffers rather than on disk.
type MemoryFilestore struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func NewMemoryFilestore() *MemoryFilestore {
	return &MemoryFilestore{files: make(map[string][]byte)}
}

// Put seeds path with the given contents, as a test/setup convenience.
func (m *MemoryFilestore) Put(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	m.files[path] = cp
}

// Get returns the current contents of path, for test assertions.
func (m *MemoryFilestore) Get(path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[path]
	return data, ok
}

func (m *MemoryFilestore) StatSize(path string) (uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[path]
	if !ok {
		return 0, ErrFileMissing
	}
	return uint64(len(data)), nil
}

func (m *MemoryFilestore) Open(path string) (OpenedFile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[path]
	if !ok {
		return nil, ErrFileMissing
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return &memoryFile{reader: bytes.NewReader(cp)}, nil
}

func (m *MemoryFilestore) Write(path string, data []byte, offset uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing := m.files[path]
	end := offset + uint64(len(data))
	if uint64(len(existing)) < end {
		grown := make([]byte, end)
		copy(grown, existing)
		existing = grown
	}
	copy(existing[offset:end], data)
	m.files[path] = existing
	return nil
}

type memoryFile struct {
	reader *bytes.Reader
}

func (f *memoryFile) ReadAt(p []byte, off int64) (int, error) {
	return f.reader.ReadAt(p, off)
}

func (f *memoryFile) Close() error {
	return nil
}

var _ io.ReaderAt = (*memoryFile)(nil)
