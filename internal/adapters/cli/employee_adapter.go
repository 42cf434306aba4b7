package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/caseflow/internal/ports/primary"
)

// EmployeeAdapter translates CLI operations to EmployeeService and
// DepartmentService calls.
type EmployeeAdapter struct {
	employees   primary.EmployeeService
	departments primary.DepartmentService
	out         io.Writer
}

// NewEmployeeAdapter creates a new EmployeeAdapter with the given services.
func NewEmployeeAdapter(employees primary.EmployeeService, departments primary.DepartmentService, out io.Writer) *EmployeeAdapter {
	return &EmployeeAdapter{
		employees:   employees,
		departments: departments,
		out:         out,
	}
}

// Add registers an employee.
func (a *EmployeeAdapter) Add(ctx context.Context, name, role string, departmentID int64) error {
	emp, err := a.employees.AddEmployee(ctx, primary.AddEmployeeRequest{
		Name:         name,
		Role:         role,
		DepartmentID: departmentID,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created employee %d: %s (%s)\n", emp.ID, emp.Name, emp.Role)
	return nil
}

// List lists all employees.
func (a *EmployeeAdapter) List(ctx context.Context) error {
	employees, err := a.employees.ListEmployees(ctx)
	if err != nil {
		return err
	}

	if len(employees) == 0 {
		fmt.Fprintln(a.out, "No employees found")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tROLE\tDEPT")
	for _, e := range employees {
		dept := "-"
		if e.DepartmentID != 0 {
			dept = fmt.Sprintf("%d", e.DepartmentID)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.ID, e.Name, e.Role, dept)
	}
	return w.Flush()
}

// ListDepartments lists all departments.
func (a *EmployeeAdapter) ListDepartments(ctx context.Context) error {
	departments, err := a.departments.ListDepartments(ctx)
	if err != nil {
		return err
	}

	if len(departments) == 0 {
		fmt.Fprintln(a.out, "No departments found")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	for _, d := range departments {
		fmt.Fprintf(w, "%d\t%s\n", d.ID, d.Name)
	}
	return w.Flush()
}
