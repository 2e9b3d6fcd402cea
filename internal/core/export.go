package core

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"
)

// ExportFilename is the attachment name of the CSV download.
const ExportFilename = "prejoining_employees.csv"

// ExportColumns is the fixed CSV header: id, the domain columns, created_at.
// Its 24 names are the 22 inserted columns plus id and created_at.
var ExportColumns = exportColumns()

func exportColumns() []string {
	cols := make([]string, 0, len(DomainColumns)+2)
	cols = append(cols, "id")
	cols = append(cols, DomainColumns...)
	return append(cols, "created_at")
}

// WriteCSV writes the header and one line per record, in the given order.
//
// A field is quoted, with inner quotes doubled, only when it contains a
// comma, a double quote or a newline. Nil values are written as empty fields.
// encoding/csv is not used because it also quotes on carriage returns and
// leading spaces, which would change the output for those values.
func WriteCSV(w io.Writer, records []EmployeeRecord) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(strings.Join(ExportColumns, ","))
	bw.WriteByte('\n')

	for i := range records {
		rec := &records[i]

		bw.WriteString(strconv.FormatInt(rec.ID, 10))
		for _, v := range rec.domainValues() {
			bw.WriteByte(',')
			if v != nil {
				bw.WriteString(escapeCSV(*v))
			}
		}
		bw.WriteByte(',')
		if !rec.CreatedAt.IsZero() {
			bw.WriteString(rec.CreatedAt.UTC().Format(time.RFC3339))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

func escapeCSV(v string) string {
	if !strings.ContainsAny(v, ",\"\n") {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}
