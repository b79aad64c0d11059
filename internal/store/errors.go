package store

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("Record not found")
	ErrUnauthenticated = errors.New("Not authenticated")
)

// ValidationError reports a malformed create payload. It is returned before
// anything is persisted, so callers can show the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// TransientError wraps a network/storage failure on query or create. These
// are at-most-once operations: the store never retries, the caller decides.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}
