package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/caseflow/internal/wire"
)

// EmployeeCmd returns the employee command
func EmployeeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employee",
		Short: "Manage employees",
		Long:  `Register and list the employees that act on cases.`,
	}

	cmd.AddCommand(employeeAddCmd())
	cmd.AddCommand(employeeListCmd())

	return cmd
}

func employeeAddCmd() *cobra.Command {
	var role string
	var departmentID int64

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Register an employee",
		Long: `Register an employee with a role. Case workers require a department.

Roles: intake, case_worker, data_steward.

Examples:
  caseflow employee add "Anna Becker" --role intake --dept 1
  caseflow employee add "Jonas Weber" --role case_worker --dept 2
  caseflow employee add "Peter Krause" --role data_steward`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.EmployeeAdapter().Add(context.Background(), args[0], role, departmentID)
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "employee role (intake, case_worker, data_steward)")
	cmd.Flags().Int64Var(&departmentID, "dept", 0, "department ID")
	cmd.MarkFlagRequired("role")

	return cmd
}

func employeeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.EmployeeAdapter().List(context.Background())
		},
	}
}

// DepartmentCmd returns the department command
func DepartmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "department",
		Short: "Manage departments",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all departments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.EmployeeAdapter().ListDepartments(context.Background())
		},
	})

	return cmd
}
