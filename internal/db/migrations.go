package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.DB) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "add_applicant_contact_fields",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_form_type_specific_fields",
		Up:      migrationV2,
	},
}

// RunMigrations executes all pending migrations
func RunMigrations() error {
	db, err := GetDB()
	if err != nil {
		return fmt.Errorf("failed to get database: %w", err)
	}

	// Create schema_version table if it doesn't exist
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	// Get current schema version
	var currentVersion int
	err = db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	// A fresh install already carries the full schema; record all migrations
	// as applied without running them.
	var caseCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM form_cases").Scan(&caseCount); err == nil && currentVersion == 0 && caseCount == 0 {
		for _, migration := range migrations {
			if _, err := db.Exec("INSERT OR IGNORE INTO schema_version (version) VALUES (?)", migration.Version); err != nil {
				return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
			}
		}
		return nil
	}

	// Run pending migrations
	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		fmt.Printf("Running migration %d: %s\n", migration.Version, migration.Name)

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(db); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		_, err = tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}

		fmt.Printf("✓ Migration %d completed\n", migration.Version)
	}

	return nil
}

// migrationV1 adds phone and email columns for applicant contact data
func migrationV1(db *sql.DB) error {
	for _, column := range []string{"applicant_phone", "applicant_email"} {
		_, err := db.Exec(fmt.Sprintf("ALTER TABLE form_cases ADD COLUMN %s TEXT", column))
		if err != nil {
			// Column already present on fresh installs.
			continue
		}
	}
	return nil
}

// migrationV2 adds the per-form-type payload columns
func migrationV2(db *sql.DB) error {
	columns := []string{
		"service_description TEXT",
		"justification TEXT",
		"amount_cents INTEGER DEFAULT 0",
		"cost_type TEXT",
		"change_request TEXT",
	}
	for _, column := range columns {
		_, err := db.Exec(fmt.Sprintf("ALTER TABLE form_cases ADD COLUMN %s", column))
		if err != nil {
			continue
		}
	}
	return nil
}
