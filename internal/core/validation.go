package core

import (
	"errors"
	"fmt"
	"strings"
)

// RecordValidator checks an assembled record before it is stored.
//
// No validator is installed by default: submissions are stored exactly as
// received. Deployments that want checks plug one in with WithValidator.
type RecordValidator interface {
	Validate(rec EmployeeRecord) error
}

// ValidatorFunc adapts a function to RecordValidator.
type ValidatorFunc func(rec EmployeeRecord) error

// Validate implements RecordValidator.
func (f ValidatorFunc) Validate(rec EmployeeRecord) error {
	return f(rec)
}

// RequireColumns returns a validator rejecting records where any of the named
// domain columns is null. Unknown column names are a configuration error.
func RequireColumns(columns ...string) (RecordValidator, error) {
	index := make(map[string]int, len(DomainColumns))
	for i, col := range DomainColumns {
		index[col] = i
	}

	positions := make([]int, len(columns))
	for i, col := range columns {
		pos, ok := index[col]
		if !ok {
			return nil, fmt.Errorf("unknown column %q", col)
		}
		positions[i] = pos
	}

	return ValidatorFunc(func(rec EmployeeRecord) error {
		values := rec.domainValues()

		var missing []string
		for i, pos := range positions {
			if values[pos] == nil {
				missing = append(missing, columns[i])
			}
		}
		if len(missing) > 0 {
			return errors.New("required field is empty: " + strings.Join(missing, ", "))
		}
		return nil
	}), nil
}
