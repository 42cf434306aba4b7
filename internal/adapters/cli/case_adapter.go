// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/caseflow/internal/models"
	"github.com/example/caseflow/internal/ports/primary"
)

// CaseAdapter is a thin adapter that translates CLI operations to
// FormCaseService calls. It depends only on the service interface, enabling
// easy testing with mocks.
type CaseAdapter struct {
	service primary.FormCaseService
	out     io.Writer
}

// NewCaseAdapter creates a new CaseAdapter with the given service.
func NewCaseAdapter(service primary.FormCaseService, out io.Writer) *CaseAdapter {
	return &CaseAdapter{
		service: service,
		out:     out,
	}
}

// Create files a new case as the acting employee.
func (a *CaseAdapter) Create(ctx context.Context, actorID int64, req primary.CreateCaseRequest) error {
	resp, err := a.service.CreateCase(ctx, actorID, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created case %d (%s) for %s\n", resp.CaseID, resp.Case.FormType, resp.Case.ApplicantName)
	return nil
}

// List lists the cases visible to the acting employee.
func (a *CaseAdapter) List(ctx context.Context, actorID int64) error {
	cases, err := a.service.ListVisibleCases(ctx, actorID)
	if err != nil {
		return err
	}

	if len(cases) == 0 {
		fmt.Fprintln(a.out, "No cases found")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tSTATUS\tDEPT\tAPPLICANT\tWORKER")
	for _, c := range cases {
		worker := "-"
		if c.ProcessingEmployeeID != 0 {
			worker = fmt.Sprintf("%d", c.ProcessingEmployeeID)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\n",
			c.ID, c.FormType, statusLabel(c.Status), c.DepartmentID, c.ApplicantName, worker)
	}
	return w.Flush()
}

// Show displays details for a single case.
func (a *CaseAdapter) Show(ctx context.Context, caseID int64) error {
	c, err := a.service.GetCase(ctx, caseID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nCase:       %d\n", c.ID)
	fmt.Fprintf(a.out, "Type:       %s\n", c.FormType)
	fmt.Fprintf(a.out, "Status:     %s\n", statusLabel(c.Status))
	fmt.Fprintf(a.out, "Department: %d\n", c.DepartmentID)
	fmt.Fprintf(a.out, "Owner:      %d\n", c.CreatedByEmployeeID)
	if c.ProcessingEmployeeID != 0 {
		fmt.Fprintf(a.out, "Worker:     %d\n", c.ProcessingEmployeeID)
	}
	fmt.Fprintf(a.out, "Applicant:  %s, %s, %d %s\n", c.ApplicantName, c.ApplicantStreet, c.ApplicantZip, c.ApplicantCity)
	if c.ApplicantPhone != "" {
		fmt.Fprintf(a.out, "Phone:      %s\n", c.ApplicantPhone)
	}
	if c.ApplicantEmail != "" {
		fmt.Fprintf(a.out, "Email:      %s\n", c.ApplicantEmail)
	}
	if c.Subject != "" {
		fmt.Fprintf(a.out, "Subject:    %s\n", c.Subject)
	}

	switch c.FormType {
	case models.FormTypeServiceRequest:
		if c.ServiceDescription != "" {
			fmt.Fprintf(a.out, "Service:    %s\n", c.ServiceDescription)
		}
		if c.Justification != "" {
			fmt.Fprintf(a.out, "Reason:     %s\n", c.Justification)
		}
	case models.FormTypeCostRequest:
		fmt.Fprintf(a.out, "Amount:     %d.%02d EUR\n", c.AmountCents/100, c.AmountCents%100)
		if c.CostType != "" {
			fmt.Fprintf(a.out, "Cost type:  %s\n", c.CostType)
		}
	case models.FormTypeOrgChange:
		if c.ChangeRequest != "" {
			fmt.Fprintf(a.out, "Change:     %s\n", c.ChangeRequest)
		}
	}

	if c.Notes != "" {
		fmt.Fprintf(a.out, "Notes:      %s\n", c.Notes)
	}
	fmt.Fprintf(a.out, "Created:    %s\n", c.CreatedAt)
	fmt.Fprintln(a.out)

	return nil
}

// Transition moves a case to the desired status as the acting employee.
func (a *CaseAdapter) Transition(ctx context.Context, actorID, caseID int64, desiredStatus string) error {
	if err := a.service.TransitionStatus(ctx, actorID, caseID, desiredStatus); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Case %d is now %s\n", caseID, desiredStatus)
	return nil
}

// Delete removes a case as the acting employee.
func (a *CaseAdapter) Delete(ctx context.Context, actorID, caseID int64) error {
	if err := a.service.DeleteCase(ctx, actorID, caseID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Deleted case %d\n", caseID)
	return nil
}

func statusLabel(status string) string {
	switch status {
	case models.StatusNew:
		return color.CyanString(status)
	case models.StatusInProgress:
		return color.YellowString(status)
	case models.StatusInClarification:
		return color.MagentaString(status)
	case models.StatusDone:
		return color.GreenString(status)
	}
	return status
}
