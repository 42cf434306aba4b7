package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/caseflow/internal/config"
	"github.com/example/caseflow/internal/wire"
)

// UseCmd returns the use command
func UseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use [employee-id]",
		Short: "Set the acting employee",
		Long: `Set the employee that subsequent commands act as. The choice is stored
in ~/.caseflow/config.json and can be overridden per command with --as.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			employeeID, err := parseID(args[0], "employee id")
			if err != nil {
				return err
			}

			// Reject unknown employees up front instead of on the next command.
			emp, err := wire.EmployeeService().GetEmployee(context.Background(), employeeID)
			if err != nil {
				return err
			}

			if err := config.SetCurrentEmployee(employeeID); err != nil {
				return err
			}

			fmt.Printf("✓ Acting as employee %d: %s (%s)\n", emp.ID, emp.Name, emp.Role)
			return nil
		},
	}
}

// WhoamiCmd returns the whoami command
func WhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the acting employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			employeeID := config.CurrentEmployee()
			if employeeID == 0 {
				fmt.Println("No acting employee configured. Run 'caseflow use <employee-id>'.")
				return nil
			}

			emp, err := wire.EmployeeService().GetEmployee(context.Background(), employeeID)
			if err != nil {
				return err
			}

			fmt.Printf("Employee %d: %s (%s)\n", emp.ID, emp.Name, emp.Role)
			return nil
		},
	}
}
