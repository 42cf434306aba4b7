// Package cli contains the cobra command tree for the caseflow CLI.
// Commands parse flags and arguments, resolve the acting employee, and
// delegate to the CLI adapters.
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/caseflow/internal/config"
)

// addActorFlag registers the --as flag used to act as a specific employee.
func addActorFlag(cmd *cobra.Command) {
	cmd.Flags().Int64("as", 0, "employee ID to act as (overrides configured employee)")
}

// resolveActor returns the acting employee for a command: the --as flag when
// set, otherwise the configured employee.
func resolveActor(cmd *cobra.Command) (int64, error) {
	actorID, err := cmd.Flags().GetInt64("as")
	if err != nil {
		return 0, err
	}
	if actorID != 0 {
		return actorID, nil
	}

	actorID = config.CurrentEmployee()
	if actorID == 0 {
		return 0, fmt.Errorf("no acting employee: run 'caseflow use <employee-id>' or pass --as")
	}
	return actorID, nil
}

// parseID parses a positional ID argument.
func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", what, arg)
	}
	return id, nil
}
