package core

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"duplicate", errors.New(`ERROR: duplicate key value violates unique constraint "employees_pkey"`), "DB001"},
		{"missing table", &StorageError{Op: "insert employee", Err: errors.New(`relation "employees" does not exist`)}, "DB003"},
		{"refused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), "DB004"},
		{"unexpected field", &UploadError{Field: "avatar", Err: ErrUnexpectedField}, "UPL001"},
		{"too many files", &UploadError{Field: "photo", Err: ErrTooManyFiles}, "UPL002"},
		{"busy", ErrTooManySubmissions, "UPL003"},
		{"malformed", &UploadError{Err: fmt.Errorf("%w: boom", ErrMalformedForm)}, "UPL004"},
		{"body limit", &http.MaxBytesError{Limit: 10}, "UPL005"},
		{"cancelled", fmt.Errorf("list employees: %w", context.Canceled), "UPL007"},
		{"validation", &ValidationError{Err: errors.New("required field is empty: full_name")}, "VAL001"},
		{"unknown", errors.New("something odd"), "ERR000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapError(tt.err).Code; got != tt.want {
				t.Errorf("MapError(%v).Code = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsClientError(t *testing.T) {
	if !IsClientError(fmt.Errorf("wrap: %w", &UploadError{Err: ErrUnexpectedField})) {
		t.Error("wrapped UploadError should be a client error")
	}
	if !IsClientError(&ValidationError{Err: errors.New("x")}) {
		t.Error("ValidationError should be a client error")
	}
	if IsClientError(&StorageError{Op: "insert employee", Err: errors.New("x")}) {
		t.Error("StorageError should not be a client error")
	}
}
