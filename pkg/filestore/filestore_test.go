package filestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFilestoreRoundTrip(t *testing.T) {
	fs := NewMemoryFilestore()
	fs.Put("/a", []byte("hello world"))

	size, err := fs.StatSize("/a")
	require.Nil(t, err)
	assert.EqualValues(t, 11, size)

	f, err := fs.Open("/a")
	require.Nil(t, err)
	defer f.Close()

	data, err := Read(f, 6, 5)
	require.Nil(t, err)
	assert.Equal(t, "world", string(data))
}

func TestMemoryFilestoreMissing(t *testing.T) {
	fs := NewMemoryFilestore()
	_, err := fs.StatSize("/missing")
	assert.Equal(t, ErrFileMissing, err)
	_, err = fs.Open("/missing")
	assert.Equal(t, ErrFileMissing, err)
}

func TestMemoryFilestoreWriteExtends(t *testing.T) {
	fs := NewMemoryFilestore()
	assert.Nil(t, fs.Write("/b", []byte("AAAA"), 0))
	assert.Nil(t, fs.Write("/b", []byte("BB"), 4))
	data, ok := fs.Get("/b")
	require.True(t, ok)
	assert.Equal(t, "AAAABB", string(data))
}

func TestReadPastEOFFails(t *testing.T) {
	fs := NewMemoryFilestore()
	fs.Put("/c", []byte("abc"))
	f, err := fs.Open("/c")
	require.Nil(t, err)
	defer f.Close()
	_, err = Read(f, 0, 10)
	assert.Equal(t, ErrIO, err)
}
