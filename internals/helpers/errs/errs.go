package errs

import (
	"errors"
	"fmt"
)

// ValidationError carries the specific reason a request was rejected. The
// reason is sent to the client verbatim, so keep it human-readable.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func NewValidation(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// Not-found outcomes are distinct from generic failures so handlers can map
// them to 404 instead of 500.
var (
	ErrClaimNotFound    = errors.New("claim not found")
	ErrDocumentNotFound = errors.New("document not found")
	ErrFileNotFound     = errors.New("file not found on server")
)

// StoreError wraps a persistence failure. The wrapped detail stays in the
// logs; clients only ever see a generic message.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string { return "store: " + e.Err.Error() }
func (e *StoreError) Unwrap() error { return e.Err }

func Store(err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Err: err}
}

// FileStoreError wraps a failure reading or writing attachment bytes.
type FileStoreError struct {
	Err error
}

func (e *FileStoreError) Error() string { return "filestore: " + e.Err.Error() }
func (e *FileStoreError) Unwrap() error { return e.Err }

func FileStore(err error) error {
	if err == nil {
		return nil
	}
	return &FileStoreError{Err: err}
}
