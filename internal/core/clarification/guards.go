// Package clarification contains the pure business logic for clarification
// messages. The gate mirrors the transition engine's role/state pattern:
// only the processing side may raise a clarification, and only at the moment
// it is being raised.
package clarification

import (
	"strings"

	"github.com/example/caseflow/internal/faults"
	"github.com/example/caseflow/internal/models"
)

// MaxMessageLength caps clarification text after trimming.
const MaxMessageLength = 2000

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

// AddContext provides context for the add-clarification guard.
type AddContext struct {
	ActorRole         string
	ActorDepartmentID int64

	CaseDepartmentID int64
	CaseStatus       string

	Message string
}

// CanAdd evaluates whether a clarification message may be added.
// Rules:
//   - Actor must be a CaseWorker in the case's department; every other role,
//     including the case owner, is rejected.
//   - The case must currently be in progress. Clarification text is attached
//     at the moment the worker raises it, before the status flips; a case
//     already in clarification has left the worker's active queue.
//   - Message must be non-blank after trimming and at most MaxMessageLength
//     characters.
func CanAdd(ctx AddContext) GuardResult {
	if ctx.ActorRole != models.RoleCaseWorker {
		return GuardResult{Allowed: false, Kind: faults.Unauthorized, Reason: faults.ReasonNotAllowed}
	}

	if ctx.ActorDepartmentID != ctx.CaseDepartmentID {
		return GuardResult{Allowed: false, Kind: faults.Unauthorized, Reason: faults.ReasonNotAllowed}
	}

	if ctx.CaseStatus != models.StatusInProgress {
		return GuardResult{Allowed: false, Kind: faults.Unauthorized, Reason: faults.ReasonNotAllowed}
	}

	msg := strings.TrimSpace(ctx.Message)
	if msg == "" {
		return GuardResult{Allowed: false, Kind: faults.InvalidArgument, Reason: "message is required"}
	}
	if len([]rune(msg)) > MaxMessageLength {
		return GuardResult{Allowed: false, Kind: faults.InvalidArgument, Reason: "message is too long"}
	}

	return GuardResult{Allowed: true}
}
