package core

import (
	"context"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/JonMunkholm/prejoin/internal/config"
	"github.com/JonMunkholm/prejoin/internal/database"
)

func TestInsertSQL(t *testing.T) {
	if !strings.HasPrefix(insertEmployeeSQL, "INSERT INTO employees (full_name, dob, gender,") {
		t.Errorf("insert SQL = %q", insertEmployeeSQL)
	}
	if !strings.Contains(insertEmployeeSQL, "$22)") || strings.Contains(insertEmployeeSQL, "$23") {
		t.Errorf("insert SQL should bind exactly 22 values: %q", insertEmployeeSQL)
	}
	if !strings.HasSuffix(insertEmployeeSQL, "RETURNING id") {
		t.Errorf("insert SQL should return id: %q", insertEmployeeSQL)
	}
	if !strings.HasSuffix(listEmployeesSQL, "ORDER BY created_at DESC, id DESC") {
		t.Errorf("list SQL = %q", listEmployeesSQL)
	}
}

// setupTestPool starts PostgreSQL, applies migrations and returns a pool.
// Skipped unless TEST_INTEGRATION is set.
func setupTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if os.Getenv("TEST_INTEGRATION") == "" {
		t.Skip("skipping integration test: TEST_INTEGRATION not set")
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"docker.io/postgres:17-alpine",
		postgres.WithDatabase("employee_test"),
		postgres.WithUsername("prejoin"),
		postgres.WithPassword("test-password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("container port: %v", err)
	}
	portNum, _ := strconv.Atoi(port.Port())

	cfg := &config.DatabaseConfig{
		Host: host, Port: portNum, User: "prejoin", Password: "test-password",
		Name: "employee_test", SSLMode: "disable", MaxConns: 4,
	}
	if err := database.Migrate(cfg); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func TestPostgresStore_InsertAndList(t *testing.T) {
	pool := setupTestPool(t)
	store := NewPostgresStore(pool)
	ctx := context.Background()

	empty, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("ListAll() on empty table = %d records", len(empty))
	}

	idA, err := store.Insert(ctx, EmployeeRecord{FullName: strPtr("A"), Photo: strPtr("photo-1-1.png")})
	if err != nil {
		t.Fatalf("Insert(A) error = %v", err)
	}
	idB, err := store.Insert(ctx, EmployeeRecord{FullName: strPtr("B, with comma")})
	if err != nil {
		t.Fatalf("Insert(B) error = %v", err)
	}
	if idB <= idA {
		t.Errorf("ids not increasing: %d then %d", idA, idB)
	}

	records, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("ListAll() = %d records, want 2", len(records))
	}
	if records[0].ID != idB || records[1].ID != idA {
		t.Errorf("order = [%d %d], want [%d %d]", records[0].ID, records[1].ID, idB, idA)
	}
	if records[1].Photo == nil || *records[1].Photo != "photo-1-1.png" {
		t.Errorf("Photo = %v", records[1].Photo)
	}
	if records[0].Photo != nil || records[0].Email != nil {
		t.Error("unset columns should read back as nil")
	}
	if records[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}
}
