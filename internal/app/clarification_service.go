package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/example/caseflow/internal/core/clarification"
	"github.com/example/caseflow/internal/faults"
	"github.com/example/caseflow/internal/models"
	"github.com/example/caseflow/internal/ports/primary"
	"github.com/example/caseflow/internal/ports/secondary"
)

// ClarificationServiceImpl implements the ClarificationService interface.
type ClarificationServiceImpl struct {
	clarificationRepo secondary.ClarificationRepository
	caseRepo          secondary.FormCaseRepository
	employeeRepo      secondary.EmployeeRepository
}

// NewClarificationService creates a new ClarificationService with injected dependencies.
func NewClarificationService(
	clarificationRepo secondary.ClarificationRepository,
	caseRepo secondary.FormCaseRepository,
	employeeRepo secondary.EmployeeRepository,
) *ClarificationServiceImpl {
	return &ClarificationServiceImpl{
		clarificationRepo: clarificationRepo,
		caseRepo:          caseRepo,
		employeeRepo:      employeeRepo,
	}
}

// AddClarification appends a message to a case for the acting case worker.
func (s *ClarificationServiceImpl) AddClarification(ctx context.Context, actorID, caseID int64, message string) (*primary.Clarification, error) {
	if actorID <= 0 {
		return nil, faults.New(faults.InvalidArgument, faults.ReasonUnknownActor)
	}
	if caseID <= 0 {
		return nil, faults.New(faults.InvalidArgument, faults.ReasonInvalidCaseID)
	}

	actor, err := s.employeeRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve actor: %w", err)
	}
	if actor == nil {
		return nil, faults.New(faults.NotFound, faults.ReasonUnknownActor)
	}

	// Role gate before the case is loaded, same as the transition engine.
	if actor.Role != models.RoleCaseWorker {
		return nil, faults.New(faults.Unauthorized, faults.ReasonNotAllowed)
	}

	formCase, err := s.caseRepo.GetByID(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get case: %w", err)
	}
	if formCase == nil {
		return nil, faults.New(faults.NotFound, faults.ReasonCaseNotFound)
	}

	result := clarification.CanAdd(clarification.AddContext{
		ActorRole:         actor.Role,
		ActorDepartmentID: actor.DepartmentID,
		CaseDepartmentID:  formCase.DepartmentID,
		CaseStatus:        formCase.Status,
		Message:           message,
	})
	if err := result.Error(); err != nil {
		return nil, err
	}

	record := &secondary.ClarificationRecord{
		FormCaseID:          caseID,
		CreatedByEmployeeID: actor.ID,
		Message:             strings.TrimSpace(message),
		CreatedAt:           time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.clarificationRepo.Create(ctx, record); err != nil {
		return nil, faults.New(faults.StorageFailure, "error while saving clarification message")
	}

	return recordToClarification(record), nil
}

// GetClarificationsByCase lists the messages of a case, oldest first.
func (s *ClarificationServiceImpl) GetClarificationsByCase(ctx context.Context, caseID int64) ([]*primary.Clarification, error) {
	if caseID <= 0 {
		return nil, faults.New(faults.InvalidArgument, faults.ReasonInvalidCaseID)
	}

	formCase, err := s.caseRepo.GetByID(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get case: %w", err)
	}
	if formCase == nil {
		return nil, faults.New(faults.NotFound, faults.ReasonCaseNotFound)
	}

	records, err := s.clarificationRepo.GetByCaseID(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clarifications: %w", err)
	}

	messages := make([]*primary.Clarification, len(records))
	for i, r := range records {
		messages[i] = recordToClarification(r)
	}
	return messages, nil
}

func recordToClarification(r *secondary.ClarificationRecord) *primary.Clarification {
	return &primary.Clarification{
		ID:                  r.ID,
		FormCaseID:          r.FormCaseID,
		CreatedByEmployeeID: r.CreatedByEmployeeID,
		Message:             r.Message,
		CreatedAt:           r.CreatedAt,
	}
}

// Ensure ClarificationServiceImpl implements the interface
var _ primary.ClarificationService = (*ClarificationServiceImpl)(nil)
