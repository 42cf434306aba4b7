package formcase

import (
	"testing"

	"github.com/example/caseflow/internal/faults"
	"github.com/example/caseflow/internal/models"
)

func TestCanTransition_Table(t *testing.T) {
	tests := []struct {
		name     string
		ctx      TransitionContext
		allowed  bool
		kind     faults.Kind
		reason   string
		setLock  int64
		clrLock  bool
	}{
		{
			name: "worker claims new case",
			ctx: TransitionContext{
				ActorID: 2, ActorRole: models.RoleCaseWorker, ActorDepartmentID: 1,
				CaseDepartmentID: 1, OwnerID: 1,
				CurrentStatus: models.StatusNew, DesiredStatus: models.StatusInProgress,
				HasFinalizedAttachment: true,
			},
			allowed: true,
			setLock: 2,
		},
		{
			name: "attachment gate blocks leaving new",
			ctx: TransitionContext{
				ActorID: 2, ActorRole: models.RoleCaseWorker, ActorDepartmentID: 1,
				CaseDepartmentID: 1, OwnerID: 1,
				CurrentStatus: models.StatusNew, DesiredStatus: models.StatusInProgress,
			},
			allowed: false,
			kind:    faults.PreconditionFailed,
			reason:  faults.ReasonAttachmentRequired,
		},
		{
			name: "lock held by another worker",
			ctx: TransitionContext{
				ActorID: 3, ActorRole: models.RoleCaseWorker, ActorDepartmentID: 1,
				CaseDepartmentID: 1, OwnerID: 1, LockHolderID: 2,
				CurrentStatus: models.StatusNew, DesiredStatus: models.StatusInProgress,
				HasFinalizedAttachment: true,
			},
			allowed: false,
			kind:    faults.Unauthorized,
			reason:  faults.ReasonNotAllowed,
		},
		{
			name: "holder may reclaim its own case",
			ctx: TransitionContext{
				ActorID: 2, ActorRole: models.RoleCaseWorker, ActorDepartmentID: 1,
				CaseDepartmentID: 1, OwnerID: 1, LockHolderID: 2,
				CurrentStatus: models.StatusNew, DesiredStatus: models.StatusInProgress,
				HasFinalizedAttachment: true,
			},
			allowed: true,
			setLock: 2,
		},
		{
			name: "holder completes case",
			ctx: TransitionContext{
				ActorID: 2, ActorRole: models.RoleCaseWorker, ActorDepartmentID: 1,
				CaseDepartmentID: 1, OwnerID: 1, LockHolderID: 2,
				CurrentStatus: models.StatusInProgress, DesiredStatus: models.StatusDone,
			},
			allowed: true,
		},
		{
			name: "non-holder cannot complete",
			ctx: TransitionContext{
				ActorID: 3, ActorRole: models.RoleCaseWorker, ActorDepartmentID: 1,
				CaseDepartmentID: 1, OwnerID: 1, LockHolderID: 2,
				CurrentStatus: models.StatusInProgress, DesiredStatus: models.StatusDone,
			},
			allowed: false,
			kind:    faults.Unauthorized,
			reason:  faults.ReasonNotAllowed,
		},
		{
			name: "holder sends case to clarification",
			ctx: TransitionContext{
				ActorID: 2, ActorRole: models.RoleCaseWorker, ActorDepartmentID: 1,
				CaseDepartmentID: 1, OwnerID: 1, LockHolderID: 2,
				CurrentStatus: models.StatusInProgress, DesiredStatus: models.StatusInClarification,
			},
			allowed: true,
		},
		{
			name: "owner releases clarification and lock",
			ctx: TransitionContext{
				ActorID: 1, ActorRole: models.RoleIntake, ActorDepartmentID: 1,
				CaseDepartmentID: 1, OwnerID: 1, LockHolderID: 2,
				CurrentStatus: models.StatusInClarification, DesiredStatus: models.StatusNew,
			},
			allowed: true,
			clrLock: true,
		},
		{
			name: "non-owner intake cannot release",
			ctx: TransitionContext{
				ActorID: 9, ActorRole: models.RoleIntake, ActorDepartmentID: 1,
				CaseDepartmentID: 1, OwnerID: 1, LockHolderID: 2,
				CurrentStatus: models.StatusInClarification, DesiredStatus: models.StatusNew,
			},
			allowed: false,
			kind:    faults.Unauthorized,
			reason:  faults.ReasonNotAllowed,
		},
		{
			name: "worker cannot touch case in clarification",
			ctx: TransitionContext{
				ActorID: 2, ActorRole: models.RoleCaseWorker, ActorDepartmentID: 1,
				CaseDepartmentID: 1, OwnerID: 1, LockHolderID: 2,
				CurrentStatus: models.StatusInClarification, DesiredStatus: models.StatusInProgress,
			},
			allowed: false,
			kind:    faults.Unauthorized,
			reason:  faults.ReasonNotAllowed,
		},
		{
			name: "worker outside case department",
			ctx: TransitionContext{
				ActorID: 4, ActorRole: models.RoleCaseWorker, ActorDepartmentID: 2,
				CaseDepartmentID: 1, OwnerID: 1,
				CurrentStatus: models.StatusNew, DesiredStatus: models.StatusInProgress,
				HasFinalizedAttachment: true,
			},
			allowed: false,
			kind:    faults.Unauthorized,
			reason:  faults.ReasonNotAllowed,
		},
		{
			name: "intake cannot start processing",
			ctx: TransitionContext{
				ActorID: 1, ActorRole: models.RoleIntake, ActorDepartmentID: 1,
				CaseDepartmentID: 1, OwnerID: 1,
				CurrentStatus: models.StatusNew, DesiredStatus: models.StatusInProgress,
				HasFinalizedAttachment: true,
			},
			allowed: false,
			kind:    faults.Unauthorized,
			reason:  faults.ReasonNotAllowed,
		},
		{
			name: "steward has no transitions",
			ctx: TransitionContext{
				ActorID: 5, ActorRole: models.RoleDataSteward,
				CaseDepartmentID: 1, OwnerID: 1,
				CurrentStatus: models.StatusNew, DesiredStatus: models.StatusInProgress,
				HasFinalizedAttachment: true,
			},
			allowed: false,
			kind:    faults.Unauthorized,
			reason:  faults.ReasonNotAllowed,
		},
		{
			name: "done is terminal",
			ctx: TransitionContext{
				ActorID: 2, ActorRole: models.RoleCaseWorker, ActorDepartmentID: 1,
				CaseDepartmentID: 1, OwnerID: 1, LockHolderID: 2,
				CurrentStatus: models.StatusDone, DesiredStatus: models.StatusInProgress,
			},
			allowed: false,
			kind:    faults.Unauthorized,
			reason:  faults.ReasonNotAllowed,
		},
		{
			name: "worker cannot skip straight to done",
			ctx: TransitionContext{
				ActorID: 2, ActorRole: models.RoleCaseWorker, ActorDepartmentID: 1,
				CaseDepartmentID: 1, OwnerID: 1,
				CurrentStatus: models.StatusNew, DesiredStatus: models.StatusDone,
				HasFinalizedAttachment: true,
			},
			allowed: false,
			kind:    faults.Unauthorized,
			reason:  faults.ReasonNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, effect := CanTransition(tt.ctx)

			if result.Allowed != tt.allowed {
				t.Fatalf("expected allowed=%v, got %v (reason %q)", tt.allowed, result.Allowed, result.Reason)
			}
			if !tt.allowed {
				if result.Kind != tt.kind {
					t.Errorf("expected kind %v, got %v", tt.kind, result.Kind)
				}
				if result.Reason != tt.reason {
					t.Errorf("expected reason %q, got %q", tt.reason, result.Reason)
				}
				return
			}
			if effect.SetLockHolder != tt.setLock {
				t.Errorf("expected SetLockHolder=%d, got %d", tt.setLock, effect.SetLockHolder)
			}
			if effect.ClearLockHolder != tt.clrLock {
				t.Errorf("expected ClearLockHolder=%v, got %v", tt.clrLock, effect.ClearLockHolder)
			}
		})
	}
}

func TestRequiresAttachment(t *testing.T) {
	if !RequiresAttachment(models.StatusNew, models.StatusInProgress) {
		t.Error("expected gate on new -> in_progress")
	}
	if RequiresAttachment(models.StatusInProgress, models.StatusDone) {
		t.Error("expected no gate once the case has left new")
	}
	if RequiresAttachment(models.StatusNew, models.StatusNew) {
		t.Error("expected no gate on a same-status write")
	}
}

func TestAllowed_MatchesTable(t *testing.T) {
	if !Allowed(models.RoleCaseWorker, models.StatusNew, models.StatusInProgress) {
		t.Error("expected worker new -> in_progress in the table")
	}
	if Allowed(models.RoleIntake, models.StatusNew, models.StatusInProgress) {
		t.Error("expected no intake row for new -> in_progress")
	}
	if Allowed(models.RoleDataSteward, models.StatusNew, models.StatusInProgress) {
		t.Error("expected no steward rows at all")
	}
}
