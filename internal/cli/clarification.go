package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/caseflow/internal/wire"
)

// ClarificationCmd returns the clarification command
func ClarificationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clarification",
		Short: "Manage clarification messages",
		Long:  `Add and read the clarification thread of a case.`,
	}

	cmd.AddCommand(clarificationAddCmd())
	cmd.AddCommand(clarificationListCmd())

	return cmd
}

func clarificationAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [case-id] [message...]",
		Short: "Add a clarification message to a case",
		Long: `Add a clarification message to a case in progress. Case workers of the
responsible department only.

Examples:
  caseflow clarification add 3 "Please attach the signed request form."`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			actorID, err := resolveActor(cmd)
			if err != nil {
				return err
			}
			caseID, err := parseID(args[0], "case id")
			if err != nil {
				return err
			}
			message := strings.Join(args[1:], " ")

			return wire.ClarificationAdapter().Add(context.Background(), actorID, caseID, message)
		},
	}

	addActorFlag(cmd)
	return cmd
}

func clarificationListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [case-id]",
		Short: "List the clarification thread of a case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseID, err := parseID(args[0], "case id")
			if err != nil {
				return err
			}

			return wire.ClarificationAdapter().List(context.Background(), caseID)
		},
	}
}
