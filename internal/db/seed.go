package db

import (
	"database/sql"
	"fmt"
)

// SeedFixtures populates the database with development fixtures: the standard
// departments, one employee per role, and a sample case with a clarification
// thread. Seeding is idempotent; rows are created only when absent.
func SeedFixtures(database *sql.DB) error {
	departments := []string{"General", "Benefits", "Costs", "Organization"}
	for _, name := range departments {
		if _, err := database.Exec(
			"INSERT INTO departments (name) SELECT ? WHERE NOT EXISTS (SELECT 1 FROM departments WHERE name = ?)",
			name, name,
		); err != nil {
			return fmt.Errorf("seed departments: %w", err)
		}
	}

	employees := []struct {
		name string
		role string
		dept sql.NullInt64
	}{
		{"Anna Becker", "intake", sql.NullInt64{Int64: 1, Valid: true}},
		{"Jonas Weber", "case_worker", sql.NullInt64{Int64: 2, Valid: true}},
		{"Lena Hoffmann", "case_worker", sql.NullInt64{Int64: 3, Valid: true}},
		{"Peter Krause", "data_steward", sql.NullInt64{}},
	}
	for _, e := range employees {
		if _, err := database.Exec(
			"INSERT INTO employees (name, role, department_id) SELECT ?, ?, ? WHERE NOT EXISTS (SELECT 1 FROM employees WHERE name = ?)",
			e.name, e.role, e.dept, e.name,
		); err != nil {
			return fmt.Errorf("seed employees: %w", err)
		}
	}

	var intakeID int64
	if err := database.QueryRow("SELECT id FROM employees WHERE role = 'intake' LIMIT 1").Scan(&intakeID); err != nil {
		return fmt.Errorf("seed cases: no intake employee: %w", err)
	}

	var caseCount int
	if err := database.QueryRow("SELECT COUNT(*) FROM form_cases").Scan(&caseCount); err != nil {
		return fmt.Errorf("seed cases: %w", err)
	}
	if caseCount > 0 {
		return nil
	}

	if _, err := database.Exec(`
		INSERT INTO form_cases (
			form_type, status, department_id, created_by_employee_id,
			applicant_name, applicant_street, applicant_zip, applicant_city,
			subject
		) VALUES ('service_request', 'new', 2, ?, 'Maria Schmidt', 'Hauptstrasse 12', 10115, 'Berlin', 'Housing benefit application')
	`, intakeID); err != nil {
		return fmt.Errorf("seed cases: %w", err)
	}

	return nil
}
