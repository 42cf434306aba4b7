package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/caseflow/internal/ports/primary"
)

// ClarificationAdapter translates CLI operations to ClarificationService calls.
type ClarificationAdapter struct {
	service primary.ClarificationService
	out     io.Writer
}

// NewClarificationAdapter creates a new ClarificationAdapter with the given service.
func NewClarificationAdapter(service primary.ClarificationService, out io.Writer) *ClarificationAdapter {
	return &ClarificationAdapter{
		service: service,
		out:     out,
	}
}

// Add appends a clarification message to a case as the acting employee.
func (a *ClarificationAdapter) Add(ctx context.Context, actorID, caseID int64, message string) error {
	msg, err := a.service.AddClarification(ctx, actorID, caseID, message)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Added clarification %d to case %d\n", msg.ID, caseID)
	return nil
}

// List prints the clarification thread of a case, oldest first.
func (a *ClarificationAdapter) List(ctx context.Context, caseID int64) error {
	messages, err := a.service.GetClarificationsByCase(ctx, caseID)
	if err != nil {
		return err
	}

	if len(messages) == 0 {
		fmt.Fprintln(a.out, "No clarifications found")
		return nil
	}

	for _, m := range messages {
		fmt.Fprintf(a.out, "[%s] employee %d:\n  %s\n", m.CreatedAt, m.CreatedByEmployeeID, m.Message)
	}
	return nil
}
