// Package app implements the primary ports by wiring the pure core guards to
// the secondary persistence ports.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/caseflow/internal/core/formcase"
	"github.com/example/caseflow/internal/faults"
	"github.com/example/caseflow/internal/models"
	"github.com/example/caseflow/internal/ports/primary"
	"github.com/example/caseflow/internal/ports/secondary"
)

// FormCaseServiceImpl implements the FormCaseService interface.
type FormCaseServiceImpl struct {
	caseRepo       secondary.FormCaseRepository
	employeeRepo   secondary.EmployeeRepository
	attachmentRepo secondary.AttachmentRepository
}

// NewFormCaseService creates a new FormCaseService with injected dependencies.
func NewFormCaseService(
	caseRepo secondary.FormCaseRepository,
	employeeRepo secondary.EmployeeRepository,
	attachmentRepo secondary.AttachmentRepository,
) *FormCaseServiceImpl {
	return &FormCaseServiceImpl{
		caseRepo:       caseRepo,
		employeeRepo:   employeeRepo,
		attachmentRepo: attachmentRepo,
	}
}

// CreateCase files a new case for the acting intake employee.
func (s *FormCaseServiceImpl) CreateCase(ctx context.Context, actorID int64, req primary.CreateCaseRequest) (*primary.CreateCaseResponse, error) {
	actor, err := s.resolveActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	result := formcase.CanCreateCase(formcase.CreateCaseContext{
		ActorRole:       actor.Role,
		DepartmentID:    req.DepartmentID,
		ApplicantName:   req.ApplicantName,
		ApplicantStreet: req.ApplicantStreet,
		ApplicantZip:    req.ApplicantZip,
		ApplicantCity:   req.ApplicantCity,
	})
	if err := result.Error(); err != nil {
		return nil, err
	}

	formType := req.FormType
	if formType == "" {
		formType = models.FormTypeServiceRequest
	}
	if !models.ValidFormType(formType) {
		return nil, faults.New(faults.InvalidArgument, "invalid form type")
	}

	exists, err := s.caseRepo.DepartmentExists(ctx, req.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate department: %w", err)
	}
	if !exists {
		return nil, faults.New(faults.NotFound, "department not found")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	record := &secondary.FormCaseRecord{
		FormType:            formType,
		Status:              models.StatusNew,
		DepartmentID:        req.DepartmentID,
		CreatedByEmployeeID: actor.ID,

		ApplicantName:   req.ApplicantName,
		ApplicantStreet: req.ApplicantStreet,
		ApplicantZip:    req.ApplicantZip,
		ApplicantCity:   req.ApplicantCity,
		ApplicantPhone:  req.ApplicantPhone,
		ApplicantEmail:  req.ApplicantEmail,

		Subject: req.Subject,
		Notes:   req.Notes,

		ServiceDescription: req.ServiceDescription,
		Justification:      req.Justification,
		AmountCents:        req.AmountCents,
		CostType:           req.CostType,
		ChangeRequest:      req.ChangeRequest,

		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.caseRepo.Create(ctx, record); err != nil {
		return nil, faults.New(faults.StorageFailure, "error while saving case")
	}

	return &primary.CreateCaseResponse{
		CaseID: record.ID,
		Case:   recordToCase(record),
	}, nil
}

// GetCase retrieves a case by ID.
func (s *FormCaseServiceImpl) GetCase(ctx context.Context, caseID int64) (*primary.FormCase, error) {
	if caseID <= 0 {
		return nil, faults.New(faults.InvalidArgument, faults.ReasonInvalidCaseID)
	}

	record, err := s.caseRepo.GetByID(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get case: %w", err)
	}
	if record == nil {
		return nil, faults.New(faults.NotFound, faults.ReasonCaseNotFound)
	}

	return recordToCase(record), nil
}

// ListVisibleCases lists the cases the actor is allowed to see.
func (s *FormCaseServiceImpl) ListVisibleCases(ctx context.Context, actorID int64) ([]*primary.FormCase, error) {
	actor, err := s.resolveActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	records, err := s.caseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}

	var cases []*primary.FormCase
	for _, r := range records {
		visible := formcase.CanViewCase(formcase.VisibilityContext{
			ActorID:           actor.ID,
			ActorRole:         actor.Role,
			ActorDepartmentID: actor.DepartmentID,
			OwnerID:           r.CreatedByEmployeeID,
			CaseDepartmentID:  r.DepartmentID,
		})
		if visible {
			cases = append(cases, recordToCase(r))
		}
	}
	return cases, nil
}

// TransitionStatus validates and applies a status change.
//
// Checks run in a fixed order and short-circuit: actor resolution, the data
// steward pre-gate, case resolution, the same-status no-op, then the
// transition table with its attachment, department, ownership, and lock
// rules. The no-op returns before any store write, but only after the role
// gate, so a data steward cannot use it to probe case state.
func (s *FormCaseServiceImpl) TransitionStatus(ctx context.Context, actorID, caseID int64, desiredStatus string) error {
	actor, err := s.resolveActor(ctx, actorID)
	if err != nil {
		return err
	}

	// Rejected before the case is loaded so a probing caller cannot learn
	// whether the case exists.
	if actor.Role == models.RoleDataSteward {
		return faults.New(faults.Unauthorized, faults.ReasonNotAllowed)
	}

	if caseID <= 0 {
		return faults.New(faults.InvalidArgument, faults.ReasonInvalidCaseID)
	}

	record, err := s.caseRepo.GetByID(ctx, caseID)
	if err != nil {
		return fmt.Errorf("failed to get case: %w", err)
	}
	if record == nil {
		return faults.New(faults.NotFound, faults.ReasonCaseNotFound)
	}

	if record.Status == desiredStatus {
		return nil
	}

	// The attachment count is only fetched once the transition is otherwise
	// structurally valid, so a disallowed transition is not reported as a
	// missing-attachment problem.
	hasAttachment := false
	if formcase.RequiresAttachment(record.Status, desiredStatus) && formcase.Allowed(actor.Role, record.Status, desiredStatus) {
		n, err := s.attachmentRepo.CountFinalized(ctx, caseID)
		if err != nil {
			return fmt.Errorf("failed to count attachments: %w", err)
		}
		hasAttachment = n > 0
	}

	result, effect := formcase.CanTransition(formcase.TransitionContext{
		ActorID:                actor.ID,
		ActorRole:              actor.Role,
		ActorDepartmentID:      actor.DepartmentID,
		CaseDepartmentID:       record.DepartmentID,
		OwnerID:                record.CreatedByEmployeeID,
		LockHolderID:           record.ProcessingEmployeeID,
		CurrentStatus:          record.Status,
		DesiredStatus:          desiredStatus,
		HasFinalizedAttachment: hasAttachment,
	})
	if err := result.Error(); err != nil {
		return err
	}

	lockHolder := record.ProcessingEmployeeID
	if effect.SetLockHolder != 0 {
		lockHolder = effect.SetLockHolder
	}
	if effect.ClearLockHolder {
		lockHolder = 0
	}

	err = s.caseRepo.UpdateStatus(ctx, caseID, desiredStatus, lockHolder, record.Status, record.ProcessingEmployeeID)
	if errors.Is(err, secondary.ErrStaleCase) {
		// A concurrent writer changed the status or claimed the lock between
		// our read and write; the caller must reload.
		return faults.New(faults.Conflict, faults.ReasonNotAllowed)
	}
	if err != nil {
		return faults.New(faults.StorageFailure, "error while updating status")
	}

	return nil
}

// DeleteCase removes a case for the acting case worker.
func (s *FormCaseServiceImpl) DeleteCase(ctx context.Context, actorID, caseID int64) error {
	actor, err := s.resolveActor(ctx, actorID)
	if err != nil {
		return err
	}

	if result := formcase.CanDeleteCase(formcase.DeleteCaseContext{ActorRole: actor.Role}); !result.Allowed {
		return result.Error()
	}

	if caseID <= 0 {
		return faults.New(faults.InvalidArgument, faults.ReasonInvalidCaseID)
	}

	record, err := s.caseRepo.GetByID(ctx, caseID)
	if err != nil {
		return fmt.Errorf("failed to get case: %w", err)
	}
	if record == nil {
		return faults.New(faults.NotFound, faults.ReasonCaseNotFound)
	}

	if err := s.caseRepo.Delete(ctx, caseID); err != nil {
		return faults.New(faults.StorageFailure, "error deleting case")
	}

	return nil
}

// resolveActor loads the acting employee, mapping the invalid and missing
// cases to the same stable "unknown actor" reason.
func (s *FormCaseServiceImpl) resolveActor(ctx context.Context, actorID int64) (*secondary.EmployeeRecord, error) {
	if actorID <= 0 {
		return nil, faults.New(faults.InvalidArgument, faults.ReasonUnknownActor)
	}

	actor, err := s.employeeRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve actor: %w", err)
	}
	if actor == nil {
		return nil, faults.New(faults.NotFound, faults.ReasonUnknownActor)
	}
	return actor, nil
}

func recordToCase(r *secondary.FormCaseRecord) *primary.FormCase {
	return &primary.FormCase{
		ID:                   r.ID,
		FormType:             r.FormType,
		Status:               r.Status,
		DepartmentID:         r.DepartmentID,
		CreatedByEmployeeID:  r.CreatedByEmployeeID,
		ProcessingEmployeeID: r.ProcessingEmployeeID,

		ApplicantName:   r.ApplicantName,
		ApplicantStreet: r.ApplicantStreet,
		ApplicantZip:    r.ApplicantZip,
		ApplicantCity:   r.ApplicantCity,
		ApplicantPhone:  r.ApplicantPhone,
		ApplicantEmail:  r.ApplicantEmail,

		Subject: r.Subject,
		Notes:   r.Notes,

		ServiceDescription: r.ServiceDescription,
		Justification:      r.Justification,
		AmountCents:        r.AmountCents,
		CostType:           r.CostType,
		ChangeRequest:      r.ChangeRequest,

		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Ensure FormCaseServiceImpl implements the interface
var _ primary.FormCaseService = (*FormCaseServiceImpl)(nil)
