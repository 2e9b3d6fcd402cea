package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// MaxFormValueSize caps a single text part of the onboarding form.
const MaxFormValueSize = 1 << 20

// Submission is a decoded onboarding form: its text values and stored files.
type Submission struct {
	Form    FormValues
	Uploads *UploadSet
}

// ReadSubmission streams a multipart body, writing file parts to store as
// they arrive and collecting text parts.
//
// A file part for an unknown slot, or beyond a slot's maximum, aborts the
// read with an *UploadError. Files already written stay on disk.
func ReadSubmission(ctx context.Context, mr *multipart.Reader, store *FileStore, slots []UploadSlot) (*Submission, error) {
	sub := &Submission{
		Form:    make(FormValues),
		Uploads: NewUploadSet(slots),
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return sub, nil
		}
		if err != nil {
			return sub, readError(err)
		}

		if err := sub.consume(ctx, part, store); err != nil {
			part.Close()
			return sub, err
		}
		part.Close()
	}
}

func (s *Submission) consume(ctx context.Context, part *multipart.Part, store *FileStore) error {
	field := part.FormName()
	if field == "" {
		return nil
	}

	// Browsers send empty file inputs as a part with an empty filename.
	if part.FileName() == "" {
		value, err := io.ReadAll(io.LimitReader(part, MaxFormValueSize+1))
		if err != nil {
			return readError(err)
		}
		if len(value) > MaxFormValueSize {
			return &UploadError{Field: field, Err: ErrValueTooLarge}
		}
		if _, seen := s.Form[field]; !seen {
			s.Form[field] = string(value)
		}
		return nil
	}

	if err := s.Uploads.Admit(field); err != nil {
		return err
	}

	stored, err := store.Save(ctx, field, part.FileName(), part)
	if err != nil {
		return fmt.Errorf("store upload: %w", err)
	}
	s.Uploads.Add(stored)
	return nil
}

// readError classifies a failure while reading the body. An exceeded body
// limit is passed through untouched so callers can answer 413.
func readError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return err
	}
	return &UploadError{Err: fmt.Errorf("%w: %v", ErrMalformedForm, err)}
}
