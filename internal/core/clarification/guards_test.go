package clarification

import (
	"strings"
	"testing"

	"github.com/example/caseflow/internal/faults"
	"github.com/example/caseflow/internal/models"
)

func validAddContext() AddContext {
	return AddContext{
		ActorRole:         models.RoleCaseWorker,
		ActorDepartmentID: 1,
		CaseDepartmentID:  1,
		CaseStatus:        models.StatusInProgress,
		Message:           "please resubmit page 2",
	}
}

func TestCanAdd_WorkerInDepartmentAllowed(t *testing.T) {
	result := CanAdd(validAddContext())
	if !result.Allowed {
		t.Fatalf("expected allowed, got %q", result.Reason)
	}
}

func TestCanAdd_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AddContext)
		kind   faults.Kind
	}{
		{"intake rejected", func(c *AddContext) { c.ActorRole = models.RoleIntake }, faults.Unauthorized},
		{"steward rejected", func(c *AddContext) { c.ActorRole = models.RoleDataSteward }, faults.Unauthorized},
		{"foreign department rejected", func(c *AddContext) { c.ActorDepartmentID = 2 }, faults.Unauthorized},
		{"case still new", func(c *AddContext) { c.CaseStatus = models.StatusNew }, faults.Unauthorized},
		{"case already in clarification", func(c *AddContext) { c.CaseStatus = models.StatusInClarification }, faults.Unauthorized},
		{"case done", func(c *AddContext) { c.CaseStatus = models.StatusDone }, faults.Unauthorized},
		{"blank message", func(c *AddContext) { c.Message = " \t " }, faults.InvalidArgument},
		{"overlong message", func(c *AddContext) { c.Message = strings.Repeat("x", MaxMessageLength+1) }, faults.InvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := validAddContext()
			tt.mutate(&ctx)

			result := CanAdd(ctx)

			if result.Allowed {
				t.Fatal("expected rejection")
			}
			if result.Kind != tt.kind {
				t.Errorf("expected kind %v, got %v", tt.kind, result.Kind)
			}
		})
	}
}

func TestCanAdd_LengthCountsRunesAfterTrim(t *testing.T) {
	ctx := validAddContext()
	// 2000 runes plus surrounding whitespace must pass.
	ctx.Message = "  " + strings.Repeat("ü", MaxMessageLength) + "  "

	if result := CanAdd(ctx); !result.Allowed {
		t.Fatalf("expected allowed, got %q", result.Reason)
	}
}
