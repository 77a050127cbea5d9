package filestore

import (
	"errors"
	"os"
)

// NativeFilestore implements VirtualFilestore against the real filesystem.
type NativeFilestore struct{}

func NewNativeFilestore() *NativeFilestore {
	return &NativeFilestore{}
}

func (*NativeFilestore) StatSize(path string) (uint64, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, ErrFileMissing
		}
		return 0, err
	}
	return uint64(info.Size()), nil
}

func (*NativeFilestore) Open(path string) (OpenedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrFileMissing
		}
		return nil, err
	}
	return f, nil
}

func (*NativeFilestore) Write(path string, data []byte, offset uint64) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteAt(data, int64(offset)); err != nil {
		return err
	}
	return nil
}
