package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/caseflow/internal/ports/secondary"
)

// EmployeeRepository implements secondary.EmployeeRepository with SQLite.
type EmployeeRepository struct {
	db *sql.DB
}

// NewEmployeeRepository creates a new SQLite employee repository.
func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// GetByID retrieves an employee by ID. Missing employees return (nil, nil).
func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*secondary.EmployeeRecord, error) {
	var departmentID sql.NullInt64

	record := &secondary.EmployeeRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, role, department_id FROM employees WHERE id = ?", id,
	).Scan(&record.ID, &record.Name, &record.Role, &departmentID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	record.DepartmentID = departmentID.Int64
	return record, nil
}

// Create persists a new employee and fills in its generated ID.
func (r *EmployeeRepository) Create(ctx context.Context, employee *secondary.EmployeeRecord) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO employees (name, role, department_id) VALUES (?, ?, ?)",
		employee.Name, employee.Role, nullID(employee.DepartmentID),
	)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get employee ID: %w", err)
	}
	employee.ID = id

	return nil
}

// List retrieves all employees ordered by ID.
func (r *EmployeeRepository) List(ctx context.Context) ([]*secondary.EmployeeRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, role, department_id FROM employees ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []*secondary.EmployeeRecord
	for rows.Next() {
		var departmentID sql.NullInt64

		record := &secondary.EmployeeRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &record.Role, &departmentID); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}

		record.DepartmentID = departmentID.Int64
		employees = append(employees, record)
	}

	return employees, rows.Err()
}

// Ensure EmployeeRepository implements the interface
var _ secondary.EmployeeRepository = (*EmployeeRepository)(nil)
