package primary

import "context"

// EmployeeService defines the primary port for employee administration.
// Credential management and token issuance live outside this system; this
// port only covers the directory the case engine resolves actors against.
type EmployeeService interface {
	// AddEmployee registers an employee with a role and optional department.
	AddEmployee(ctx context.Context, req AddEmployeeRequest) (*Employee, error)

	// GetEmployee retrieves an employee by ID.
	GetEmployee(ctx context.Context, employeeID int64) (*Employee, error)

	// ListEmployees lists all employees.
	ListEmployees(ctx context.Context) ([]*Employee, error)
}

// AddEmployeeRequest contains parameters for registering an employee.
type AddEmployeeRequest struct {
	Name         string
	Role         string
	DepartmentID int64 // optional, zero for none
}

// Employee is the employee view returned to callers.
type Employee struct {
	ID           int64
	Name         string
	Role         string
	DepartmentID int64
}
