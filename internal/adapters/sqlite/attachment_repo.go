package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/caseflow/internal/ports/secondary"
)

const attachmentSelectCols = "id, form_case_id, file_name, content_type, size_bytes, storage_key, uploaded_by_employee_id, uploaded_at"

// AttachmentRepository implements secondary.AttachmentRepository with SQLite.
type AttachmentRepository struct {
	db *sql.DB
}

// NewAttachmentRepository creates a new SQLite attachment repository.
func NewAttachmentRepository(db *sql.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

// Create persists a new metadata row and fills in its generated ID.
func (r *AttachmentRepository) Create(ctx context.Context, attachment *secondary.AttachmentRecord) error {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO pdf_attachments (form_case_id, file_name, content_type, size_bytes, storage_key, uploaded_by_employee_id)
		VALUES (?, ?, ?, ?, ?, ?)`,
		attachment.FormCaseID, attachment.FileName, attachment.ContentType,
		attachment.SizeBytes, attachment.StorageKey, attachment.UploadedByEmployeeID,
	)
	if err != nil {
		return fmt.Errorf("failed to create attachment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get attachment ID: %w", err)
	}
	attachment.ID = id

	return nil
}

// GetByID retrieves an attachment by ID. Missing rows return (nil, nil).
func (r *AttachmentRepository) GetByID(ctx context.Context, id int64) (*secondary.AttachmentRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+attachmentSelectCols+" FROM pdf_attachments WHERE id = ?", id,
	)

	record, err := scanAttachment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}

	return record, nil
}

// GetByCaseID retrieves all attachments of a case in upload order.
func (r *AttachmentRepository) GetByCaseID(ctx context.Context, caseID int64) ([]*secondary.AttachmentRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+attachmentSelectCols+" FROM pdf_attachments WHERE form_case_id = ? ORDER BY uploaded_at, id",
		caseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	defer rows.Close()

	var attachments []*secondary.AttachmentRecord
	for rows.Next() {
		record, err := scanAttachment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attachment: %w", err)
		}
		attachments = append(attachments, record)
	}

	return attachments, rows.Err()
}

// CountFinalized counts attachments whose storage key is bound. Rows still on
// the pending sentinel never count toward the attachment gate.
func (r *AttachmentRepository) CountFinalized(ctx context.Context, caseID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM pdf_attachments WHERE form_case_id = ? AND storage_key NOT IN ('', 'pending')",
		caseID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attachments: %w", err)
	}
	return count, nil
}

// UpdateStorageKey binds the storage key of a stored file to its row.
func (r *AttachmentRepository) UpdateStorageKey(ctx context.Context, id int64, storageKey string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE pdf_attachments SET storage_key = ? WHERE id = ?",
		storageKey, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update storage key: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("attachment %d not found", id)
	}

	return nil
}

// Delete removes a metadata row.
func (r *AttachmentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM pdf_attachments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("attachment %d not found", id)
	}

	return nil
}

func scanAttachment(row rowScanner) (*secondary.AttachmentRecord, error) {
	var uploadedAt time.Time

	record := &secondary.AttachmentRecord{}
	err := row.Scan(
		&record.ID, &record.FormCaseID, &record.FileName, &record.ContentType,
		&record.SizeBytes, &record.StorageKey, &record.UploadedByEmployeeID, &uploadedAt,
	)
	if err != nil {
		return nil, err
	}

	record.UploadedAt = uploadedAt.Format(time.RFC3339)
	return record, nil
}

// Ensure AttachmentRepository implements the interface
var _ secondary.AttachmentRepository = (*AttachmentRepository)(nil)
