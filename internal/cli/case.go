package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/caseflow/internal/models"
	"github.com/example/caseflow/internal/ports/primary"
	"github.com/example/caseflow/internal/wire"
)

// CaseCmd returns the case command
func CaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "case",
		Short: "Manage cases",
		Long:  `File, inspect, and move cases through their lifecycle.`,
	}

	cmd.AddCommand(caseCreateCmd())
	cmd.AddCommand(caseListCmd())
	cmd.AddCommand(caseShowCmd())
	cmd.AddCommand(caseTransitionCmd())
	cmd.AddCommand(caseDeleteCmd())

	return cmd
}

func caseCreateCmd() *cobra.Command {
	var req primary.CreateCaseRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "File a new case",
		Long: `File a new case as the acting intake employee.

The form type decides which payload flags apply: service requests take
--service and --reason, cost requests take --amount-cents and --cost-type,
org changes take --change.

Examples:
  caseflow case create --type service_request --dept 2 \
    --name "Maria Schmidt" --street "Hauptstrasse 12" --zip 10115 --city Berlin \
    --service "replacement laptop"
  caseflow case create --type cost_request --dept 3 \
    --name "Maria Schmidt" --street "Hauptstrasse 12" --zip 10115 --city Berlin \
    --amount-cents 24900 --cost-type travel`,
		RunE: func(cmd *cobra.Command, args []string) error {
			actorID, err := resolveActor(cmd)
			if err != nil {
				return err
			}

			return wire.CaseAdapter().Create(context.Background(), actorID, req)
		},
	}

	addActorFlag(cmd)
	cmd.Flags().StringVar(&req.FormType, "type", models.FormTypeServiceRequest, "form type (service_request, cost_request, org_change)")
	cmd.Flags().Int64Var(&req.DepartmentID, "dept", 0, "responsible department ID")
	cmd.Flags().StringVar(&req.ApplicantName, "name", "", "applicant name")
	cmd.Flags().StringVar(&req.ApplicantStreet, "street", "", "applicant street")
	cmd.Flags().IntVar(&req.ApplicantZip, "zip", 0, "applicant zip code")
	cmd.Flags().StringVar(&req.ApplicantCity, "city", "", "applicant city")
	cmd.Flags().StringVar(&req.ApplicantPhone, "phone", "", "applicant phone (optional)")
	cmd.Flags().StringVar(&req.ApplicantEmail, "email", "", "applicant email (optional)")
	cmd.Flags().StringVar(&req.Subject, "subject", "", "case subject (optional)")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "free-form notes (optional)")
	cmd.Flags().StringVar(&req.ServiceDescription, "service", "", "requested service (service_request)")
	cmd.Flags().StringVar(&req.Justification, "reason", "", "justification (service_request)")
	cmd.Flags().Int64Var(&req.AmountCents, "amount-cents", 0, "requested amount in cents (cost_request)")
	cmd.Flags().StringVar(&req.CostType, "cost-type", "", "cost type (cost_request)")
	cmd.Flags().StringVar(&req.ChangeRequest, "change", "", "requested change (org_change)")

	return cmd
}

func caseListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List visible cases",
		Long: `List the cases visible to the acting employee: data stewards see all
cases, intake employees see their own, case workers see their department.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			actorID, err := resolveActor(cmd)
			if err != nil {
				return err
			}

			return wire.CaseAdapter().List(context.Background(), actorID)
		},
	}

	addActorFlag(cmd)
	return cmd
}

func caseShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [case-id]",
		Short: "Show case details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseID, err := parseID(args[0], "case id")
			if err != nil {
				return err
			}

			return wire.CaseAdapter().Show(context.Background(), caseID)
		},
	}
}

func caseTransitionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transition [case-id] [status]",
		Short: "Move a case to a new status",
		Long: `Move a case to a new status as the acting employee.

Statuses: new, in_progress, in_clarification, done.

A case worker claims a case by moving it to in_progress, which requires at
least one attachment. Only the owning intake employee may pull a case back
from in_clarification to new.

Examples:
  caseflow case transition 3 in_progress
  caseflow case transition 3 done`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			actorID, err := resolveActor(cmd)
			if err != nil {
				return err
			}
			caseID, err := parseID(args[0], "case id")
			if err != nil {
				return err
			}
			desiredStatus := args[1]
			if !models.ValidStatus(desiredStatus) {
				return fmt.Errorf("invalid status: %s", desiredStatus)
			}

			return wire.CaseAdapter().Transition(context.Background(), actorID, caseID, desiredStatus)
		},
	}

	addActorFlag(cmd)
	return cmd
}

func caseDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [case-id]",
		Short: "Delete a case",
		Long:  `Delete a case and its attachments and clarifications. Case workers only.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actorID, err := resolveActor(cmd)
			if err != nil {
				return err
			}
			caseID, err := parseID(args[0], "case id")
			if err != nil {
				return err
			}

			return wire.CaseAdapter().Delete(context.Background(), actorID, caseID)
		},
	}

	addActorFlag(cmd)
	return cmd
}
