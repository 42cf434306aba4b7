package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/caseflow/internal/cli"
	"github.com/example/caseflow/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "caseflow",
		Short:   "caseflow - case management for form-based requests",
		Version: version.String(),
		Long: `caseflow is a CLI tool for managing form-based cases: service requests,
cost requests, and org changes. Intake employees file cases, case workers
process them, and data stewards audit everything.`,
	}

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.SeedCmd())
	rootCmd.AddCommand(cli.UseCmd())
	rootCmd.AddCommand(cli.WhoamiCmd())
	rootCmd.AddCommand(cli.CaseCmd())
	rootCmd.AddCommand(cli.AttachmentCmd())
	rootCmd.AddCommand(cli.ClarificationCmd())
	rootCmd.AddCommand(cli.EmployeeCmd())
	rootCmd.AddCommand(cli.DepartmentCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
