// Package sqlite_test contains integration tests for SQLite repositories.
//
// This file is the single point where the database schema is loaded for
// tests. All test setup uses db.GetSchemaSQL() so test and production schemas
// cannot drift; do not hardcode CREATE TABLE statements in test files.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/caseflow/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedDepartment inserts a test department and returns its ID.
func seedDepartment(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()
	if name == "" {
		name = "Benefits"
	}
	result, err := db.Exec("INSERT INTO departments (name) VALUES (?)", name)
	if err != nil {
		t.Fatalf("failed to seed department: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}

// seedEmployee inserts a test employee and returns its ID.
func seedEmployee(t *testing.T, db *sql.DB, name, role string, departmentID int64) int64 {
	t.Helper()
	var dept any
	if departmentID > 0 {
		dept = departmentID
	}
	result, err := db.Exec("INSERT INTO employees (name, role, department_id) VALUES (?, ?, ?)", name, role, dept)
	if err != nil {
		t.Fatalf("failed to seed employee: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}

// seedFormCase inserts a minimal test case and returns its ID.
func seedFormCase(t *testing.T, db *sql.DB, departmentID, ownerID int64, status string) int64 {
	t.Helper()
	if status == "" {
		status = "new"
	}
	result, err := db.Exec(`
		INSERT INTO form_cases (form_type, status, department_id, created_by_employee_id, applicant_name, applicant_street, applicant_zip, applicant_city)
		VALUES ('service_request', ?, ?, ?, 'Maria Schmidt', 'Hauptstrasse 12', 10115, 'Berlin')`,
		status, departmentID, ownerID,
	)
	if err != nil {
		t.Fatalf("failed to seed case: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}
