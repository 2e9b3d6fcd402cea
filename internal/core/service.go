package core

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"

	"github.com/JonMunkholm/prejoin/internal/logging"
)

// Service is the entry point for onboarding operations: storing a
// submission, listing records and exporting them.
type Service struct {
	store     EmployeeStore
	files     *FileStore
	limiter   *SubmissionLimiter
	slots     []UploadSlot
	validator RecordValidator
}

// Option configures a Service.
type Option func(*Service)

// WithValidator installs a record validator run before every insert.
func WithValidator(v RecordValidator) Option {
	return func(s *Service) { s.validator = v }
}

// WithLimiter replaces the default submission limiter.
func WithLimiter(l *SubmissionLimiter) Option {
	return func(s *Service) { s.limiter = l }
}

// NewService wires a store and a file store into a Service.
func NewService(store EmployeeStore, files *FileStore, opts ...Option) *Service {
	s := &Service{
		store: store,
		files: files,
		slots: UploadSlots,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.limiter == nil {
		s.limiter = NewSubmissionLimiter(DefaultMaxConcurrentSubmissions, DefaultMaxSubmissionWait)
	}
	return s
}

// Submit reads an onboarding form, stores its attachments and inserts the
// assembled record. It returns the new record's id.
func (s *Service) Submit(ctx context.Context, mr *multipart.Reader) (int64, error) {
	if err := s.limiter.Acquire(ctx); err != nil {
		submissionsTotal.WithLabelValues("rejected").Inc()
		return 0, err
	}
	defer s.limiter.Release()

	sub, err := ReadSubmission(ctx, mr, s.files, s.slots)
	if err != nil {
		s.countFailure(err)
		return 0, err
	}

	rec := AssembleRecord(sub.Form, sub.Uploads.Names())

	if s.validator != nil {
		if err := s.validator.Validate(rec); err != nil {
			submissionsTotal.WithLabelValues("rejected").Inc()
			return 0, &ValidationError{Err: err}
		}
	}

	id, err := s.store.Insert(ctx, rec)
	if err != nil {
		submissionsTotal.WithLabelValues("failed").Inc()
		return 0, err
	}

	submissionsTotal.WithLabelValues("stored").Inc()
	client := ClientFromContext(ctx)
	logging.WithFields(ctx, "employee_id", id).Info("employee stored",
		"files", sub.Uploads.Len(),
		"client_ip", client.IP,
		"user_agent", client.UserAgent,
	)
	return id, nil
}

func (s *Service) countFailure(err error) {
	if IsClientError(err) {
		submissionsTotal.WithLabelValues("rejected").Inc()
		return
	}
	submissionsTotal.WithLabelValues("failed").Inc()
}

// ListEmployees returns every stored record, newest first. The result is
// never nil.
func (s *Service) ListEmployees(ctx context.Context) ([]EmployeeRecord, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []EmployeeRecord{}
	}
	return records, nil
}

// ExportCSV renders every stored record as CSV.
// The whole document is built before returning so a storage failure never
// produces a truncated download.
func (s *Service) ExportCSV(ctx context.Context) ([]byte, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		return nil, fmt.Errorf("render csv: %w", err)
	}

	exportsTotal.Inc()
	return buf.Bytes(), nil
}

// WaitForSubmissions blocks until in-flight submissions finish or ctx is done.
func (s *Service) WaitForSubmissions(ctx context.Context) error {
	return s.limiter.WaitForDrain(ctx)
}

// SubmissionStatus reports the submission limiter state.
func (s *Service) SubmissionStatus() SubmissionLimiterStatus {
	return s.limiter.Status()
}
