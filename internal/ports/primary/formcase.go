// Package primary defines the primary ports (driving interfaces) of the
// application: the service contracts the CLI and tests consume.
package primary

import "context"

// FormCaseService defines the primary port for case operations.
// Every operation takes the acting employee where permissions apply; the
// service resolves the actor and enforces role, ownership, department, and
// lock rules before touching a case.
type FormCaseService interface {
	// CreateCase files a new case. Only the intake role may create; the
	// actor becomes the case owner and the case starts in status new.
	CreateCase(ctx context.Context, actorID int64, req CreateCaseRequest) (*CreateCaseResponse, error)

	// GetCase retrieves a case by ID.
	GetCase(ctx context.Context, caseID int64) (*FormCase, error)

	// ListVisibleCases lists the cases the actor may see: data stewards see
	// all, intake sees its own, case workers see their department.
	ListVisibleCases(ctx context.Context, actorID int64) ([]*FormCase, error)

	// TransitionStatus validates and applies a status change for the acting
	// employee. Setting the current status again is a successful no-op.
	TransitionStatus(ctx context.Context, actorID, caseID int64, desiredStatus string) error

	// DeleteCase removes a case. Only the case worker role may delete;
	// deletion is unconditional on status.
	DeleteCase(ctx context.Context, actorID, caseID int64) error
}

// CreateCaseRequest contains the draft fields for filing a case.
type CreateCaseRequest struct {
	FormType     string
	DepartmentID int64

	ApplicantName   string
	ApplicantStreet string
	ApplicantZip    int
	ApplicantCity   string
	ApplicantPhone  string
	ApplicantEmail  string

	Subject string
	Notes   string

	ServiceDescription string
	Justification      string
	AmountCents        int64
	CostType           string
	ChangeRequest      string
}

// CreateCaseResponse contains the result of filing a case.
type CreateCaseResponse struct {
	CaseID int64
	Case   *FormCase
}

// FormCase is the case view returned to callers. A ProcessingEmployeeID of
// zero means no case worker holds the lock.
type FormCase struct {
	ID                   int64
	FormType             string
	Status               string
	DepartmentID         int64
	CreatedByEmployeeID  int64
	ProcessingEmployeeID int64

	ApplicantName   string
	ApplicantStreet string
	ApplicantZip    int
	ApplicantCity   string
	ApplicantPhone  string
	ApplicantEmail  string

	Subject string
	Notes   string

	ServiceDescription string
	Justification      string
	AmountCents        int64
	CostType           string
	ChangeRequest      string

	CreatedAt string
	UpdatedAt string
}
