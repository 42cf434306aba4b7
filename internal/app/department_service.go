package app

import (
	"context"
	"fmt"

	"github.com/example/caseflow/internal/ports/primary"
	"github.com/example/caseflow/internal/ports/secondary"
)

// DepartmentServiceImpl implements the DepartmentService interface.
type DepartmentServiceImpl struct {
	departmentRepo secondary.DepartmentRepository
}

// NewDepartmentService creates a new DepartmentService with injected dependencies.
func NewDepartmentService(departmentRepo secondary.DepartmentRepository) *DepartmentServiceImpl {
	return &DepartmentServiceImpl{departmentRepo: departmentRepo}
}

// ListDepartments lists all departments.
func (s *DepartmentServiceImpl) ListDepartments(ctx context.Context) ([]*primary.Department, error) {
	records, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	departments := make([]*primary.Department, len(records))
	for i, r := range records {
		departments[i] = &primary.Department{ID: r.ID, Name: r.Name}
	}
	return departments, nil
}

// Ensure DepartmentServiceImpl implements the interface
var _ primary.DepartmentService = (*DepartmentServiceImpl)(nil)
