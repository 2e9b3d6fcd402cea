package core

// uploads.go persists onboarding attachments.
//
// Every received part is written verbatim into a single directory under a
// generated name <field>-<unix millis>-<random><ext>. Files are opened with
// O_EXCL so two submissions can never share a name: on the (unlikely) clash
// a new random component is drawn. Nothing is ever deleted.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxNameAttempts bounds retries when a generated name already exists.
const maxNameAttempts = 8

// UploadSlot is a named file field with a declared maximum file count.
type UploadSlot struct {
	Field    string
	Column   string
	MaxCount int
}

// UploadSlots are the attachment fields of the onboarding form.
var UploadSlots = []UploadSlot{
	{Field: "photo", Column: "photo", MaxCount: 1},
	{Field: "resume", Column: "resume", MaxCount: 1},
	{Field: "experienceLetters", Column: "experience_letters", MaxCount: 10},
	{Field: "relievingLetter", Column: "relieving_letter", MaxCount: 1},
	{Field: "salarySlips", Column: "salary_slips", MaxCount: 10},
}

// StoredFile describes one attachment written to disk.
type StoredFile struct {
	Field        string
	Name         string
	Path         string
	OriginalName string
	Size         int64
}

// FileStore writes attachments into a fixed directory.
type FileStore struct {
	dir string

	now    func() time.Time
	random func() string
}

// NewFileStore returns a store rooted at dir, creating the directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	return &FileStore{
		dir:    dir,
		now:    time.Now,
		random: randomSuffix,
	}, nil
}

// Dir returns the directory files are written to.
func (s *FileStore) Dir() string {
	return s.dir
}

// Save copies src to a newly created file for field and returns its details.
// A partially written file is removed when the copy fails.
func (s *FileStore) Save(ctx context.Context, field, originalName string, src io.Reader) (StoredFile, error) {
	ext := safeExt(originalName)

	var (
		f    *os.File
		name string
		err  error
	)
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		name = fmt.Sprintf("%s-%d-%s%s", field, s.now().UnixMilli(), s.random(), ext)
		f, err = os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if !errors.Is(err, fs.ErrExist) {
			break
		}
	}
	if err != nil {
		return StoredFile{}, fmt.Errorf("create %s file: %w", field, err)
	}

	path := f.Name()
	size, copyErr := io.Copy(f, contextReader{ctx: ctx, r: src})
	closeErr := f.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(path)
		return StoredFile{}, fmt.Errorf("write %s file: %w", field, errors.Join(copyErr, closeErr))
	}

	filesStored.WithLabelValues(field).Inc()
	bytesStored.Add(float64(size))

	return StoredFile{
		Field:        field,
		Name:         name,
		Path:         path,
		OriginalName: originalName,
		Size:         size,
	}, nil
}

// randomSuffix mirrors the 9-digit random component of the naming scheme.
func randomSuffix() string {
	return fmt.Sprintf("%09d", uuid.New().ID()%1_000_000_000)
}

// safeExt returns the extension of the client-supplied name, or "" when the
// name carries path separators in its extension.
func safeExt(name string) string {
	ext := filepath.Ext(filepath.Base(name))
	if strings.ContainsAny(ext, `/\`) || ext == "." {
		return ""
	}
	return ext
}

// contextReader stops a copy once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

// UploadSet collects the files received for one submission and enforces
// the per-slot limits.
type UploadSet struct {
	slots map[string]UploadSlot
	files map[string][]StoredFile
	count int
}

// NewUploadSet returns an empty set accepting the given slots.
func NewUploadSet(slots []UploadSlot) *UploadSet {
	bySlot := make(map[string]UploadSlot, len(slots))
	for _, slot := range slots {
		bySlot[slot.Field] = slot
	}
	return &UploadSet{
		slots: bySlot,
		files: make(map[string][]StoredFile),
	}
}

// Admit checks that one more file may be accepted for field.
func (u *UploadSet) Admit(field string) error {
	slot, ok := u.slots[field]
	if !ok {
		return &UploadError{Field: field, Err: ErrUnexpectedField}
	}
	if len(u.files[field]) >= slot.MaxCount {
		return &UploadError{Field: field, Err: ErrTooManyFiles}
	}
	return nil
}

// Add records a stored file.
func (u *UploadSet) Add(f StoredFile) {
	u.files[f.Field] = append(u.files[f.Field], f)
	u.count++
}

// Len returns the number of files stored so far.
func (u *UploadSet) Len() int {
	return u.count
}

// Names returns the comma-joined stored names per slot in upload order.
// Slots with no files are omitted.
func (u *UploadSet) Names() FileNames {
	names := make(FileNames, len(u.files))
	for field, files := range u.files {
		parts := make([]string, len(files))
		for i, f := range files {
			parts[i] = f.Name
		}
		names[field] = strings.Join(parts, ",")
	}
	return names
}
