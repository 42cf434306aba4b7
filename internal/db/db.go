package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

var db *sql.DB

var dbInitialized bool

// GetDB returns the database connection, initializing if needed
func GetDB() (*sql.DB, error) {
	if db != nil {
		return db, nil
	}

	caseflowDir, err := baseDir()
	if err != nil {
		return nil, err
	}
	dbPath := filepath.Join(caseflowDir, "caseflow.db")

	// Ensure .caseflow directory exists
	if err := os.MkdirAll(caseflowDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create .caseflow directory: %w", err)
	}

	// Open database connection
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Run migrations on first connection (but avoid recursion)
	if !dbInitialized {
		dbInitialized = true
		if err := InitSchema(); err != nil {
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	return db, nil
}

// Close closes the database connection
func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}

// GetDBPath returns the path to the database file
func GetDBPath() (string, error) {
	caseflowDir, err := baseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(caseflowDir, "caseflow.db"), nil
}

// baseDir resolves the caseflow directory, ~/.caseflow by default.
// CASEFLOW_HOME overrides it for tests and sandboxed setups.
func baseDir() (string, error) {
	if custom := os.Getenv("CASEFLOW_HOME"); custom != "" {
		return custom, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".caseflow"), nil
}
