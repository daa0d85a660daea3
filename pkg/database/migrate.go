package database

import (
	"database/sql"
	"fmt"
	"os"
)

// Migrate applies the schema from the default location.
func Migrate(db *sql.DB) error {
	return MigrateFile(db, "docs/schema.sql")
}

// MigrateFile applies the schema at path. Statements are idempotent
// (CREATE ... IF NOT EXISTS), so re-running on startup is safe.
func MigrateFile(db *sql.DB, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if _, err := db.Exec(string(b)); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
