package storage

import "errors"

var (
	// ErrNotFound is returned when a requested file does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidFileType is returned when an image extension is not allowed.
	ErrInvalidFileType = errors.New("invalid file type")
)
