package filestore

import "errors"

var (
	ErrFileMissing = errors.New("filestore: file does not exist")
	ErrIO          = errors.New("filestore: i/o error")
)
