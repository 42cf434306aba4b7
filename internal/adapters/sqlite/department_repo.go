package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/caseflow/internal/ports/secondary"
)

// DepartmentRepository implements secondary.DepartmentRepository with SQLite.
type DepartmentRepository struct {
	db *sql.DB
}

// NewDepartmentRepository creates a new SQLite department repository.
func NewDepartmentRepository(db *sql.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// List retrieves all departments ordered by ID.
func (r *DepartmentRepository) List(ctx context.Context) ([]*secondary.DepartmentRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name FROM departments ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []*secondary.DepartmentRecord
	for rows.Next() {
		record := &secondary.DepartmentRecord{}
		if err := rows.Scan(&record.ID, &record.Name); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, record)
	}

	return departments, rows.Err()
}

// GetByID retrieves a department by ID. Missing rows return (nil, nil).
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*secondary.DepartmentRecord, error) {
	record := &secondary.DepartmentRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name FROM departments WHERE id = ?", id,
	).Scan(&record.ID, &record.Name)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	return record, nil
}

// Ensure DepartmentRepository implements the interface
var _ secondary.DepartmentRepository = (*DepartmentRepository)(nil)
