package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/example/caseflow/internal/core/attachment"
	"github.com/example/caseflow/internal/faults"
	"github.com/example/caseflow/internal/ports/primary"
	"github.com/example/caseflow/internal/ports/secondary"
)

// AttachmentServiceImpl implements the AttachmentService interface.
type AttachmentServiceImpl struct {
	attachmentRepo secondary.AttachmentRepository
	caseRepo       secondary.FormCaseRepository
	storage        secondary.AttachmentStorage
}

// NewAttachmentService creates a new AttachmentService with injected dependencies.
func NewAttachmentService(
	attachmentRepo secondary.AttachmentRepository,
	caseRepo secondary.FormCaseRepository,
	storage secondary.AttachmentStorage,
) *AttachmentServiceImpl {
	return &AttachmentServiceImpl{
		attachmentRepo: attachmentRepo,
		caseRepo:       caseRepo,
		storage:        storage,
	}
}

// AddAttachment ingests a PDF as a three-step saga: metadata row with a
// pending key, then the bytes, then the key binding. Any failure compensates
// the completed steps in reverse order, so no row survives with a
// valid-looking key and no orphaned file keeps a deleted row alive.
func (s *AttachmentServiceImpl) AddAttachment(ctx context.Context, req primary.AddAttachmentRequest) (*primary.Attachment, error) {
	if req.CaseID <= 0 {
		return nil, faults.New(faults.InvalidArgument, faults.ReasonInvalidCaseID)
	}
	if req.Content == nil {
		return nil, faults.New(faults.InvalidArgument, "file is missing")
	}

	formCase, err := s.caseRepo.GetByID(ctx, req.CaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get case: %w", err)
	}
	if formCase == nil {
		return nil, faults.New(faults.NotFound, faults.ReasonCaseNotFound)
	}

	result := attachment.CanAdd(attachment.AddContext{
		FileName:             req.FileName,
		ContentType:          req.ContentType,
		SizeBytes:            req.SizeBytes,
		UploadedByEmployeeID: req.UploadedByEmployeeID,
	})
	if err := result.Error(); err != nil {
		return nil, err
	}

	record := &secondary.AttachmentRecord{
		FormCaseID:           req.CaseID,
		FileName:             req.FileName,
		ContentType:          req.ContentType,
		SizeBytes:            req.SizeBytes,
		StorageKey:           attachment.PendingStorageKey,
		UploadedByEmployeeID: req.UploadedByEmployeeID,
		UploadedAt:           time.Now().UTC().Format(time.RFC3339),
	}

	var storageKey string

	saga := attachment.NewSaga(
		attachment.Step{
			Name: "metadata",
			Run: func(ctx context.Context) error {
				if err := s.attachmentRepo.Create(ctx, record); err != nil {
					return faults.New(faults.StorageFailure, "error while saving attachment metadata")
				}
				return nil
			},
			Compensate: func(ctx context.Context) error {
				return s.attachmentRepo.Delete(ctx, record.ID)
			},
		},
		attachment.Step{
			Name: "bytes",
			Run: func(ctx context.Context) error {
				key, err := s.storage.Save(ctx, req.CaseID, record.ID, req.Content)
				if err != nil {
					return faults.New(faults.StorageFailure, "error while saving file")
				}
				storageKey = key
				return nil
			},
			Compensate: func(ctx context.Context) error {
				return s.storage.Delete(ctx, storageKey)
			},
		},
		attachment.Step{
			Name: "bind key",
			Run: func(ctx context.Context) error {
				if err := s.attachmentRepo.UpdateStorageKey(ctx, record.ID, storageKey); err != nil {
					return faults.New(faults.StorageFailure, "error while finalizing attachment")
				}
				return nil
			},
		},
	)

	if err := saga.Execute(ctx, func(step string, err error) {
		log.Printf("attachment saga: compensating %q failed: %v", step, err)
	}); err != nil {
		return nil, err
	}

	record.StorageKey = storageKey
	return recordToAttachment(record), nil
}

// GetAttachmentsByCase lists the attachments of a case.
func (s *AttachmentServiceImpl) GetAttachmentsByCase(ctx context.Context, caseID int64) ([]*primary.Attachment, error) {
	if caseID <= 0 {
		return nil, faults.New(faults.InvalidArgument, faults.ReasonInvalidCaseID)
	}

	records, err := s.attachmentRepo.GetByCaseID(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	attachments := make([]*primary.Attachment, len(records))
	for i, r := range records {
		attachments[i] = recordToAttachment(r)
	}
	return attachments, nil
}

// DeleteAttachment removes an attachment. The blob delete is best-effort; an
// orphaned file is preferable to an orphaned metadata row, because metadata
// drives the attachment gate.
func (s *AttachmentServiceImpl) DeleteAttachment(ctx context.Context, attachmentID int64) error {
	if attachmentID <= 0 {
		return faults.New(faults.InvalidArgument, "invalid attachment id")
	}

	record, err := s.attachmentRepo.GetByID(ctx, attachmentID)
	if err != nil {
		return fmt.Errorf("failed to get attachment: %w", err)
	}
	if record == nil {
		return faults.New(faults.NotFound, "attachment not found")
	}

	if attachment.Finalized(record.StorageKey) {
		if err := s.storage.Delete(ctx, record.StorageKey); err != nil {
			log.Printf("could not delete file for attachment %d: %v", attachmentID, err)
		}
	}

	if err := s.attachmentRepo.Delete(ctx, attachmentID); err != nil {
		return faults.New(faults.StorageFailure, "error deleting attachment")
	}

	return nil
}

// Download opens the stored bytes of a finalized attachment.
func (s *AttachmentServiceImpl) Download(ctx context.Context, attachmentID int64) (*primary.DownloadResult, error) {
	if attachmentID <= 0 {
		return nil, faults.New(faults.InvalidArgument, "invalid attachment id")
	}

	record, err := s.attachmentRepo.GetByID(ctx, attachmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}
	if record == nil {
		return nil, faults.New(faults.NotFound, "attachment not found")
	}

	if !attachment.Finalized(record.StorageKey) {
		return nil, faults.New(faults.PreconditionFailed, "attachment has no file reference")
	}

	stream, err := s.storage.OpenRead(ctx, record.StorageKey)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, faults.New(faults.NotFound, "file not found")
		}
		return nil, faults.New(faults.StorageFailure, "error while opening file")
	}

	return &primary.DownloadResult{
		Content:     stream,
		FileName:    record.FileName,
		ContentType: record.ContentType,
	}, nil
}

func recordToAttachment(r *secondary.AttachmentRecord) *primary.Attachment {
	return &primary.Attachment{
		ID:                   r.ID,
		FormCaseID:           r.FormCaseID,
		FileName:             r.FileName,
		ContentType:          r.ContentType,
		SizeBytes:            r.SizeBytes,
		StorageKey:           r.StorageKey,
		UploadedByEmployeeID: r.UploadedByEmployeeID,
		UploadedAt:           r.UploadedAt,
	}
}

// Ensure AttachmentServiceImpl implements the interface
var _ primary.AttachmentService = (*AttachmentServiceImpl)(nil)
