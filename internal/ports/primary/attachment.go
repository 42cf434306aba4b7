package primary

import (
	"context"
	"io"
)

// AttachmentService defines the primary port for attachment operations.
type AttachmentService interface {
	// AddAttachment ingests a PDF for a case: metadata row first, then the
	// bytes, then the storage key binding, compensating in reverse on any
	// failure so no half-written attachment survives.
	AddAttachment(ctx context.Context, req AddAttachmentRequest) (*Attachment, error)

	// GetAttachmentsByCase lists the attachments of a case.
	GetAttachmentsByCase(ctx context.Context, caseID int64) ([]*Attachment, error)

	// DeleteAttachment removes an attachment: best-effort blob delete, then
	// mandatory metadata delete.
	DeleteAttachment(ctx context.Context, attachmentID int64) error

	// Download opens the stored bytes of a finalized attachment.
	Download(ctx context.Context, attachmentID int64) (*DownloadResult, error)
}

// AddAttachmentRequest contains the metadata and content of an upload.
type AddAttachmentRequest struct {
	CaseID               int64
	FileName             string
	ContentType          string
	SizeBytes            int64
	UploadedByEmployeeID int64
	Content              io.Reader
}

// Attachment is the attachment view returned to callers.
type Attachment struct {
	ID                   int64
	FormCaseID           int64
	FileName             string
	ContentType          string
	SizeBytes            int64
	StorageKey           string
	UploadedByEmployeeID int64
	UploadedAt           string
}

// DownloadResult carries an open attachment stream; the caller closes it.
type DownloadResult struct {
	Content     io.ReadCloser
	FileName    string
	ContentType string
}
