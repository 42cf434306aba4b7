package formcase

import (
	"strings"

	"github.com/example/caseflow/internal/faults"
	"github.com/example/caseflow/internal/models"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Kind    faults.Kind
	Reason  string
}

// Error converts the guard result to a fault if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return faults.New(r.Kind, r.Reason)
}

// CreateCaseContext provides context for case creation guards.
type CreateCaseContext struct {
	ActorRole string

	DepartmentID    int64
	ApplicantName   string
	ApplicantStreet string
	ApplicantZip    int
	ApplicantCity   string
}

// CanCreateCase evaluates whether a case can be created.
// Rules:
// - Actor must have the intake role; every other role gets the same
//   undifferentiated rejection.
// - Required draft fields must be present.
func CanCreateCase(ctx CreateCaseContext) GuardResult {
	if ctx.ActorRole != models.RoleIntake {
		return notAllowed()
	}

	if ctx.DepartmentID <= 0 {
		return invalid("department is required")
	}
	if strings.TrimSpace(ctx.ApplicantName) == "" {
		return invalid("applicant name is required")
	}
	if strings.TrimSpace(ctx.ApplicantStreet) == "" {
		return invalid("applicant street is required")
	}
	if ctx.ApplicantZip <= 0 {
		return invalid("applicant zip is invalid")
	}
	if strings.TrimSpace(ctx.ApplicantCity) == "" {
		return invalid("applicant city is required")
	}

	return GuardResult{Allowed: true}
}

// DeleteCaseContext provides context for case deletion guards.
type DeleteCaseContext struct {
	ActorRole string
}

// CanDeleteCase evaluates whether a case can be deleted.
// Only a CaseWorker may delete, not even the owning Intake. Deletion is
// deliberately unconditional on status: a case in progress or done can be
// removed as an administrative override.
func CanDeleteCase(ctx DeleteCaseContext) GuardResult {
	if ctx.ActorRole != models.RoleCaseWorker {
		return notAllowed()
	}
	return GuardResult{Allowed: true}
}

// VisibilityContext provides context for case visibility evaluation.
type VisibilityContext struct {
	ActorID           int64
	ActorRole         string
	ActorDepartmentID int64

	OwnerID          int64
	CaseDepartmentID int64
}

// CanViewCase evaluates whether an actor may see a case in listings.
// DataSteward sees everything, Intake sees its own cases, CaseWorker sees
// its own department.
func CanViewCase(ctx VisibilityContext) bool {
	switch ctx.ActorRole {
	case models.RoleDataSteward:
		return true
	case models.RoleIntake:
		return ctx.OwnerID == ctx.ActorID
	case models.RoleCaseWorker:
		return ctx.CaseDepartmentID == ctx.ActorDepartmentID
	}
	return false
}

func invalid(reason string) GuardResult {
	return GuardResult{Allowed: false, Kind: faults.InvalidArgument, Reason: reason}
}
