package primary

import "context"

// ClarificationService defines the primary port for clarification messages.
type ClarificationService interface {
	// AddClarification appends a message to a case. Only a case worker in
	// the case's department may add, and only while the case is in progress.
	AddClarification(ctx context.Context, actorID, caseID int64, message string) (*Clarification, error)

	// GetClarificationsByCase lists the messages of a case, oldest first.
	GetClarificationsByCase(ctx context.Context, caseID int64) ([]*Clarification, error)
}

// Clarification is the message view returned to callers.
type Clarification struct {
	ID                  int64
	FormCaseID          int64
	CreatedByEmployeeID int64
	Message             string
	CreatedAt           string
}
