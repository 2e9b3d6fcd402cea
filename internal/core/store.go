package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EmployeeStore persists onboarding records.
type EmployeeStore interface {
	// Insert stores a new record and returns its generated id.
	Insert(ctx context.Context, rec EmployeeRecord) (int64, error)
	// ListAll returns every record, newest first.
	ListAll(ctx context.Context) ([]EmployeeRecord, error)
}

var (
	insertEmployeeSQL = buildInsertSQL()
	listEmployeesSQL  = fmt.Sprintf(
		"SELECT id, %s, created_at FROM employees ORDER BY created_at DESC, id DESC",
		strings.Join(DomainColumns, ", "),
	)
)

// buildInsertSQL renders the insert for DomainColumns with one positional
// placeholder per column.
func buildInsertSQL() string {
	placeholders := make([]string, len(DomainColumns))
	for i := range DomainColumns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf(
		"INSERT INTO employees (%s) VALUES (%s) RETURNING id",
		strings.Join(DomainColumns, ", "),
		strings.Join(placeholders, ", "),
	)
}

// PostgresStore is the EmployeeStore backed by a pgx connection pool.
// Each call acquires a pooled connection for a single statement.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore returns a store using pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Insert implements EmployeeStore.
func (s *PostgresStore) Insert(ctx context.Context, rec EmployeeRecord) (int64, error) {
	values := rec.domainValues()
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}

	var id int64
	if err := s.pool.QueryRow(ctx, insertEmployeeSQL, args...).Scan(&id); err != nil {
		return 0, &StorageError{Op: "insert employee", Err: err}
	}
	return id, nil
}

// ListAll implements EmployeeStore.
func (s *PostgresStore) ListAll(ctx context.Context) ([]EmployeeRecord, error) {
	rows, err := s.pool.Query(ctx, listEmployeesSQL)
	if err != nil {
		return nil, &StorageError{Op: "list employees", Err: err}
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[EmployeeRecord])
	if err != nil {
		return nil, &StorageError{Op: "list employees", Err: err}
	}
	for i := range records {
		records[i].CreatedAt = records[i].CreatedAt.UTC()
	}
	return records, nil
}
