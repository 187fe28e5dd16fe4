package test_utils

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "modernc.org/sqlite" // Import the SQLite driver
)

// NewInMemoryDB creates a new in-memory SQLite database for testing.
// Each database is completely isolated from others.
func NewInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// SetupTestDB creates a new in-memory SQLite database and applies all migrations.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db := NewInMemoryDB(t)

	_, err := db.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := ApplyMigrations(t, db); err != nil {
		t.Fatalf("Failed to apply migrations: %v", err)
	}

	return db
}

// ApplyMigrations uses golang-migrate to apply all migrations to the database.
func ApplyMigrations(t *testing.T, db *sql.DB) error {
	t.Helper()

	projectRoot, err := findProjectRoot()
	if err != nil {
		return fmt.Errorf("failed to find project root: %v", err)
	}

	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create sqlite driver: %v", err)
	}

	migrationsPath := fmt.Sprintf("file://%s", filepath.Join(projectRoot, "migrations"))

	m, err := migrate.NewWithDatabaseInstance(migrationsPath, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %v", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %v", err)
	}

	return nil
}

// findProjectRoot walks up from the working directory looking for go.mod,
// so repo tests can run from any package directory.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find project root")
		}
		dir = parent
	}
}
