package primary

import "context"

// DepartmentService defines the primary port for departments.
type DepartmentService interface {
	// ListDepartments lists all departments.
	ListDepartments(ctx context.Context) ([]*Department, error)
}

// Department is the department view returned to callers.
type Department struct {
	ID   int64
	Name string
}
