package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/caseflow/internal/faults"
	"github.com/example/caseflow/internal/models"
	"github.com/example/caseflow/internal/ports/primary"
	"github.com/example/caseflow/internal/ports/secondary"
)

// EmployeeServiceImpl implements the EmployeeService interface.
type EmployeeServiceImpl struct {
	employeeRepo   secondary.EmployeeRepository
	departmentRepo secondary.DepartmentRepository
}

// NewEmployeeService creates a new EmployeeService with injected dependencies.
func NewEmployeeService(
	employeeRepo secondary.EmployeeRepository,
	departmentRepo secondary.DepartmentRepository,
) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

// AddEmployee registers an employee.
func (s *EmployeeServiceImpl) AddEmployee(ctx context.Context, req primary.AddEmployeeRequest) (*primary.Employee, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, faults.New(faults.InvalidArgument, "name is required")
	}
	if !models.ValidRole(req.Role) {
		return nil, faults.New(faults.InvalidArgument, "invalid role")
	}
	// A case worker without a department could never act on any case.
	if req.Role == models.RoleCaseWorker && req.DepartmentID <= 0 {
		return nil, faults.New(faults.InvalidArgument, "case worker requires a department")
	}

	if req.DepartmentID > 0 {
		dept, err := s.departmentRepo.GetByID(ctx, req.DepartmentID)
		if err != nil {
			return nil, fmt.Errorf("failed to validate department: %w", err)
		}
		if dept == nil {
			return nil, faults.New(faults.NotFound, "department not found")
		}
	}

	record := &secondary.EmployeeRecord{
		Name:         strings.TrimSpace(req.Name),
		Role:         req.Role,
		DepartmentID: req.DepartmentID,
	}

	if err := s.employeeRepo.Create(ctx, record); err != nil {
		return nil, faults.New(faults.StorageFailure, "error while saving employee")
	}

	return recordToEmployee(record), nil
}

// GetEmployee retrieves an employee by ID.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, employeeID int64) (*primary.Employee, error) {
	if employeeID <= 0 {
		return nil, faults.New(faults.InvalidArgument, "invalid employee id")
	}

	record, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	if record == nil {
		return nil, faults.New(faults.NotFound, "employee not found")
	}

	return recordToEmployee(record), nil
}

// ListEmployees lists all employees.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]*primary.Employee, error) {
	records, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	employees := make([]*primary.Employee, len(records))
	for i, r := range records {
		employees[i] = recordToEmployee(r)
	}
	return employees, nil
}

func recordToEmployee(r *secondary.EmployeeRecord) *primary.Employee {
	return &primary.Employee{
		ID:           r.ID,
		Name:         r.Name,
		Role:         r.Role,
		DepartmentID: r.DepartmentID,
	}
}

// Ensure EmployeeServiceImpl implements the interface
var _ primary.EmployeeService = (*EmployeeServiceImpl)(nil)
