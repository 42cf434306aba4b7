// Package formcase contains the pure business logic for case operations.
// Guards are pure functions that evaluate preconditions without side effects;
// the transition table below is the single authority for which status changes
// each role may perform.
package formcase

import (
	"github.com/example/caseflow/internal/faults"
	"github.com/example/caseflow/internal/models"
)

// transitionKey identifies one row of the transition table.
type transitionKey struct {
	Role string
	From string
	To   string
}

// transitionRule describes the extra conditions and lock side effects of an
// allowed transition.
type transitionRule struct {
	// OwnerOnly requires the actor to be the employee who created the case.
	OwnerOnly bool
	// ClaimsLock assigns the actor as processing employee; the case must be
	// unlocked or already locked by the actor.
	ClaimsLock bool
	// NeedsLock requires the actor to be the current processing employee.
	NeedsLock bool
	// ReleasesLock clears the processing employee.
	ReleasesLock bool
}

// transitions is the complete set of allowed status transitions.
// DataSteward appears nowhere: it is rejected before the table is consulted.
// A CaseWorker may never act while a case is in clarification; that state is
// owner-only territory until the owner returns it to new.
var transitions = map[transitionKey]transitionRule{
	{models.RoleCaseWorker, models.StatusNew, models.StatusInProgress}:              {ClaimsLock: true},
	{models.RoleCaseWorker, models.StatusInProgress, models.StatusInClarification}: {NeedsLock: true},
	{models.RoleCaseWorker, models.StatusInProgress, models.StatusDone}:            {NeedsLock: true},
	{models.RoleIntake, models.StatusInClarification, models.StatusNew}:            {OwnerOnly: true, ReleasesLock: true},
}

// TransitionContext provides the state needed to evaluate a status change.
// A LockHolderID of zero means the case is unlocked; a DepartmentID of zero
// on the actor means no department membership.
type TransitionContext struct {
	ActorID           int64
	ActorRole         string
	ActorDepartmentID int64

	CaseDepartmentID int64
	OwnerID          int64
	LockHolderID     int64
	CurrentStatus    string
	DesiredStatus    string

	// HasFinalizedAttachment reports whether the case owns at least one
	// attachment with a bound storage key. Only consulted when leaving new.
	HasFinalizedAttachment bool
}

// TransitionEffect describes the lock mutation a successful transition applies.
type TransitionEffect struct {
	// SetLockHolder, when non-zero, becomes the new processing employee.
	SetLockHolder int64
	// ClearLockHolder releases the processing employee.
	ClearLockHolder bool
}

// Allowed reports whether the transition table contains a row for the given
// role and status pair. It checks structure only; CanTransition enforces
// ownership, department, the attachment gate, and lock semantics.
func Allowed(role, from, to string) bool {
	_, ok := transitions[transitionKey{Role: role, From: from, To: to}]
	return ok
}

// RequiresAttachment reports whether a transition is gated on the case having
// at least one finalized attachment (any transition leaving new).
func RequiresAttachment(from, to string) bool {
	return from == models.StatusNew && to != models.StatusNew
}

// CanTransition evaluates a status change against the transition table.
// Checks run in order and short-circuit: table membership and ownership,
// the attachment gate, department scope, then lock semantics. On success the
// returned effect carries the lock side effect the caller must apply.
func CanTransition(ctx TransitionContext) (GuardResult, TransitionEffect) {
	rule, ok := transitions[transitionKey{Role: ctx.ActorRole, From: ctx.CurrentStatus, To: ctx.DesiredStatus}]
	if !ok {
		return notAllowed(), TransitionEffect{}
	}

	if rule.OwnerOnly && ctx.OwnerID != ctx.ActorID {
		return notAllowed(), TransitionEffect{}
	}

	if RequiresAttachment(ctx.CurrentStatus, ctx.DesiredStatus) && !ctx.HasFinalizedAttachment {
		return GuardResult{
			Allowed: false,
			Kind:    faults.PreconditionFailed,
			Reason:  faults.ReasonAttachmentRequired,
		}, TransitionEffect{}
	}

	// A CaseWorker only acts within its own department, regardless of how
	// valid the transition otherwise is.
	if ctx.ActorRole == models.RoleCaseWorker && ctx.ActorDepartmentID != ctx.CaseDepartmentID {
		return notAllowed(), TransitionEffect{}
	}

	var effect TransitionEffect

	if rule.ClaimsLock {
		if ctx.LockHolderID != 0 && ctx.LockHolderID != ctx.ActorID {
			return notAllowed(), TransitionEffect{}
		}
		effect.SetLockHolder = ctx.ActorID
	}

	if rule.NeedsLock && ctx.LockHolderID != ctx.ActorID {
		return notAllowed(), TransitionEffect{}
	}

	if rule.ReleasesLock {
		effect.ClearLockHolder = true
	}

	return GuardResult{Allowed: true}, effect
}

func notAllowed() GuardResult {
	return GuardResult{Allowed: false, Kind: faults.Unauthorized, Reason: faults.ReasonNotAllowed}
}
