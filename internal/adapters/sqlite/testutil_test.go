// Package sqlite_test contains integration tests for SQLite repositories.
// Every test database is built by the goose migrations, so tests run
// against the same schema as production.
package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/example/plantops/internal/db"
)

// setupTestDB creates a migrated in-memory database.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := db.OpenInMemory(context.Background())
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// setupFileDB creates a migrated database file with the production
// connection settings, for tests that run writers on several connections.
func setupFileDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := db.Open(context.Background(), filepath.Join(t.TempDir(), "plantops.db"))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedEquipment inserts a test equipment and returns its ID.
func seedEquipment(t *testing.T, db *sql.DB, id, name string) string {
	t.Helper()
	if id == "" {
		id = "EQ-001"
	}
	if name == "" {
		name = "Test Press"
	}
	_, err := db.Exec(
		"INSERT INTO equipment (id, name, type, status, created_at) VALUES (?, ?, 'press', 'working', ?)",
		id, name, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("failed to seed equipment: %v", err)
	}
	return id
}

// seedTask inserts a test task due on due.
func seedTask(t *testing.T, db *sql.DB, id, title, due string) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO tasks (id, title, equipment_id, priority, status, due_date) VALUES (?, ?, 'EQ-001', 'medium', 'open', ?)",
		id, title, due,
	)
	if err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var stamp = time.Date(2025, 3, 14, 9, 26, 53, 589000000, time.UTC)
