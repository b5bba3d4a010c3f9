package store

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Unavailable wraps an adapter I/O failure so callers can errors.Is it
// against ErrStorageUnavailable without seeing backend internals.
func Unavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
