package persistence

import "errors"

var (
	// ErrStorageIO wraps failures to open, read or write the backing file.
	ErrStorageIO = errors.New("task storage I/O failed")
	// ErrSerialization wraps failures to encode tasks for storage.
	ErrSerialization = errors.New("task serialization failed")
)
