package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/caseflow/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the caseflow database",
		Long:  `Initialize the caseflow database at ~/.caseflow/caseflow.db with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing caseflow database at %s\n", dbPath)

			if err := db.InitSchema(); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}

			fmt.Println("✓ Database initialized successfully")

			if seed {
				database, err := db.GetDB()
				if err != nil {
					return err
				}
				if err := db.SeedFixtures(database); err != nil {
					return fmt.Errorf("failed to seed fixtures: %w", err)
				}
				fmt.Println("✓ Seeded departments and employees")
			}

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  caseflow employee list")
			fmt.Println("  caseflow use <employee-id>")
			fmt.Println("  caseflow case create --type service_request ...")

			return nil
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "seed demo departments and employees")
	return cmd
}

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed demo departments and employees",
		Long:  `Insert the demo departments and employees. Safe to run repeatedly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.GetDB()
			if err != nil {
				return err
			}
			if err := db.SeedFixtures(database); err != nil {
				return fmt.Errorf("failed to seed fixtures: %w", err)
			}

			fmt.Println("✓ Seeded departments and employees")
			return nil
		},
	}
}
