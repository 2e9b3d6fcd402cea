package core

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"
)

const wantHeader = "id,full_name,dob,gender,mobile,email,current_address,permanent_address," +
	"emergency_contact,driving_license,bike,aadhaar,pan,photo,resume,education_list," +
	"experience_letters,relieving_letter,salary_slips,bank_account,bank_name,ifsc," +
	"tax_details,created_at"

func TestWriteCSV_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	if got := buf.String(); got != wantHeader+"\n" {
		t.Errorf("WriteCSV() = %q, want header only", got)
	}
	if len(ExportColumns) != 24 {
		t.Errorf("len(ExportColumns) = %d, want 24", len(ExportColumns))
	}
}

func TestWriteCSV_Row(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))
	rec := EmployeeRecord{
		ID:        7,
		FullName:  strPtr("A, B"),
		DOB:       strPtr("2000-01-01"),
		CreatedAt: created,
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, []EmployeeRecord{rec}); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}

	want := `7,"A, B",2000-01-01` + strings.Repeat(",", 20) + ",2024-05-01T05:00:00Z"
	if lines[1] != want {
		t.Errorf("row = %q\nwant  %q", lines[1], want)
	}
}

func TestWriteCSV_ParsesBack(t *testing.T) {
	tricky := []string{
		`plain`,
		`has, comma`,
		`she said "hi"`,
		"line one\nline two",
		`"quoted", and
multi`,
	}

	records := make([]EmployeeRecord, len(tricky))
	for i, v := range tricky {
		records[i] = EmployeeRecord{
			ID:             int64(len(tricky) - i),
			FullName:       strPtr(v),
			CurrentAddress: strPtr(v),
			CreatedAt:      time.Unix(int64(1700000000-i), 0),
		}
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("csv.ReadAll() error = %v", err)
	}
	if len(rows) != len(tricky)+1 {
		t.Fatalf("got %d rows, want %d", len(rows), len(tricky)+1)
	}
	if got := strings.Join(rows[0], ","); got != wantHeader {
		t.Errorf("header = %q", got)
	}

	for i, v := range tricky {
		row := rows[i+1]
		if len(row) != 24 {
			t.Fatalf("row %d has %d fields, want 24", i, len(row))
		}
		if row[1] != v {
			t.Errorf("row %d full_name = %q, want %q", i, row[1], v)
		}
		if row[6] != v {
			t.Errorf("row %d current_address = %q, want %q", i, row[6], v)
		}
		if row[2] != "" {
			t.Errorf("row %d dob = %q, want empty", i, row[2])
		}
	}
}

func TestEscapeCSV(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"simple", "simple"},
		{" leading space", " leading space"},
		{"a,b", `"a,b"`},
		{`x"y`, `"x""y"`},
		{"a\nb", "\"a\nb\""},
		{"carriage\rreturn", "carriage\rreturn"},
	}

	for _, tt := range tests {
		if got := escapeCSV(tt.in); got != tt.want {
			t.Errorf("escapeCSV(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
