package app

import (
	"context"
	"strings"
	"testing"

	"github.com/example/caseflow/internal/faults"
	"github.com/example/caseflow/internal/models"
)

// ============================================================================
// Test Helper
// ============================================================================

func newTestClarificationService() (*ClarificationServiceImpl, *mockFormCaseRepository, *mockClarificationRepository) {
	caseRepo := newMockFormCaseRepository()
	employeeRepo := newMockEmployeeRepository()
	clarificationRepo := newMockClarificationRepository()

	employeeRepo.add(intakeID, models.RoleIntake, 1)
	employeeRepo.add(workerID, models.RoleCaseWorker, 1)
	employeeRepo.add(foreignWorker, models.RoleCaseWorker, 2)
	employeeRepo.add(stewardID, models.RoleDataSteward, 0)

	service := NewClarificationService(clarificationRepo, caseRepo, employeeRepo)
	return service, caseRepo, clarificationRepo
}

// ============================================================================
// AddClarification Tests
// ============================================================================

func TestAddClarification_WorkerCanAdd(t *testing.T) {
	service, caseRepo, clarificationRepo := newTestClarificationService()
	ctx := context.Background()

	caseID := seedCase(caseRepo, models.StatusInProgress, workerID)

	msg, err := service.AddClarification(ctx, workerID, caseID, "  please resubmit page 2  ")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if msg.Message != "please resubmit page 2" {
		t.Errorf("expected trimmed message, got %q", msg.Message)
	}
	if len(clarificationRepo.messages) != 1 {
		t.Errorf("expected 1 stored message, got %d", len(clarificationRepo.messages))
	}
}

func TestAddClarification_IntakeCannotAdd(t *testing.T) {
	service, caseRepo, _ := newTestClarificationService()

	caseID := seedCase(caseRepo, models.StatusInProgress, workerID)

	_, err := service.AddClarification(context.Background(), intakeID, caseID, "hello")

	if faults.KindOf(err) != faults.Unauthorized {
		t.Fatalf("expected Unauthorized, got %v", err)
	}
}

func TestAddClarification_RoleCheckedBeforeCaseLoad(t *testing.T) {
	service, caseRepo, _ := newTestClarificationService()

	caseID := seedCase(caseRepo, models.StatusInProgress, workerID)
	caseRepo.getCalls = 0

	_, err := service.AddClarification(context.Background(), stewardID, caseID, "hello")

	if faults.KindOf(err) != faults.Unauthorized {
		t.Fatalf("expected Unauthorized, got %v", err)
	}
	if caseRepo.getCalls != 0 {
		t.Errorf("expected case load to be skipped, got %d reads", caseRepo.getCalls)
	}
}

func TestAddClarification_ForeignDepartmentRejected(t *testing.T) {
	service, caseRepo, _ := newTestClarificationService()

	caseID := seedCase(caseRepo, models.StatusInProgress, workerID)

	_, err := service.AddClarification(context.Background(), foreignWorker, caseID, "hello")

	if faults.KindOf(err) != faults.Unauthorized {
		t.Fatalf("expected Unauthorized, got %v", err)
	}
}

func TestAddClarification_RequiresInProgress(t *testing.T) {
	service, caseRepo, _ := newTestClarificationService()

	for _, status := range []string{models.StatusNew, models.StatusInClarification, models.StatusDone} {
		caseID := seedCase(caseRepo, status, 0)

		_, err := service.AddClarification(context.Background(), workerID, caseID, "hello")

		if faults.KindOf(err) != faults.PreconditionFailed {
			t.Errorf("status %q: expected PreconditionFailed, got %v", status, err)
		}
	}
}

func TestAddClarification_BlankMessageRejected(t *testing.T) {
	service, caseRepo, _ := newTestClarificationService()

	caseID := seedCase(caseRepo, models.StatusInProgress, workerID)

	_, err := service.AddClarification(context.Background(), workerID, caseID, "   ")

	if faults.KindOf(err) != faults.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestAddClarification_OverlongMessageRejected(t *testing.T) {
	service, caseRepo, _ := newTestClarificationService()

	caseID := seedCase(caseRepo, models.StatusInProgress, workerID)

	_, err := service.AddClarification(context.Background(), workerID, caseID, strings.Repeat("a", 2001))

	if faults.KindOf(err) != faults.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestAddClarification_MaxLengthAccepted(t *testing.T) {
	service, caseRepo, _ := newTestClarificationService()

	caseID := seedCase(caseRepo, models.StatusInProgress, workerID)

	if _, err := service.AddClarification(context.Background(), workerID, caseID, strings.Repeat("a", 2000)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestAddClarification_CaseNotFound(t *testing.T) {
	service, _, _ := newTestClarificationService()

	_, err := service.AddClarification(context.Background(), workerID, 42, "hello")

	if faults.KindOf(err) != faults.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

// ============================================================================
// GetClarificationsByCase Tests
// ============================================================================

func TestGetClarificationsByCase_ReturnsInOrder(t *testing.T) {
	service, caseRepo, _ := newTestClarificationService()
	ctx := context.Background()

	caseID := seedCase(caseRepo, models.StatusInProgress, workerID)

	for _, text := range []string{"first", "second", "third"} {
		if _, err := service.AddClarification(ctx, workerID, caseID, text); err != nil {
			t.Fatalf("add %q: %v", text, err)
		}
	}

	messages, err := service.GetClarificationsByCase(ctx, caseID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}
	for i, want := range []string{"first", "second", "third"} {
		if messages[i].Message != want {
			t.Errorf("position %d: expected %q, got %q", i, want, messages[i].Message)
		}
	}
}

func TestGetClarificationsByCase_CaseNotFound(t *testing.T) {
	service, _, _ := newTestClarificationService()

	_, err := service.GetClarificationsByCase(context.Background(), 42)

	if faults.KindOf(err) != faults.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}
