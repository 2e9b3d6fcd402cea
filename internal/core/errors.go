package core

import (
	"errors"
	"fmt"
)

// Upload sentinels. They describe problems with what the client sent and are
// always wrapped in an *UploadError.
var (
	ErrUnexpectedField = errors.New("unexpected file field")
	ErrTooManyFiles    = errors.New("too many files for field")
	ErrMalformedForm   = errors.New("malformed multipart body")
	ErrValueTooLarge   = errors.New("form value too large")
)

// UploadError reports a rejected part of a multipart submission.
type UploadError struct {
	Field string
	Err   error
}

func (e *UploadError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Field)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// StorageError wraps a failed database operation.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ValidationError is returned when an installed RecordValidator rejects a record.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return "invalid record: " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsClientError reports whether err was caused by the submitted request
// rather than by the server or its dependencies.
func IsClientError(err error) bool {
	var upErr *UploadError
	var valErr *ValidationError
	return errors.As(err, &upErr) || errors.As(err, &valErr)
}
