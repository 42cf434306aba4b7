// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/caseflow/internal/ports/secondary"
)

// caseSelectCols is the column list shared by all case queries; scanCase must
// stay aligned with it.
const caseSelectCols = `id, form_type, status, department_id, created_by_employee_id, processing_employee_id,
	applicant_name, applicant_street, applicant_zip, applicant_city, applicant_phone, applicant_email,
	subject, notes, service_description, justification, amount_cents, cost_type, change_request,
	created_at, updated_at`

// FormCaseRepository implements secondary.FormCaseRepository with SQLite.
type FormCaseRepository struct {
	db *sql.DB
}

// NewFormCaseRepository creates a new SQLite form case repository.
func NewFormCaseRepository(db *sql.DB) *FormCaseRepository {
	return &FormCaseRepository{db: db}
}

// Create persists a new case and fills in its generated ID.
func (r *FormCaseRepository) Create(ctx context.Context, formCase *secondary.FormCaseRecord) error {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO form_cases (
			form_type, status, department_id, created_by_employee_id, processing_employee_id,
			applicant_name, applicant_street, applicant_zip, applicant_city, applicant_phone, applicant_email,
			subject, notes, service_description, justification, amount_cents, cost_type, change_request
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		formCase.FormType, formCase.Status, formCase.DepartmentID, formCase.CreatedByEmployeeID,
		nullID(formCase.ProcessingEmployeeID),
		formCase.ApplicantName, formCase.ApplicantStreet, formCase.ApplicantZip, formCase.ApplicantCity,
		nullString(formCase.ApplicantPhone), nullString(formCase.ApplicantEmail),
		nullString(formCase.Subject), nullString(formCase.Notes),
		nullString(formCase.ServiceDescription), nullString(formCase.Justification),
		formCase.AmountCents, nullString(formCase.CostType), nullString(formCase.ChangeRequest),
	)
	if err != nil {
		return fmt.Errorf("failed to create case: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get case ID: %w", err)
	}
	formCase.ID = id

	return nil
}

// GetByID retrieves a case by its ID. Missing cases return (nil, nil).
func (r *FormCaseRepository) GetByID(ctx context.Context, id int64) (*secondary.FormCaseRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+caseSelectCols+" FROM form_cases WHERE id = ?", id,
	)

	record, err := scanCase(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get case: %w", err)
	}

	return record, nil
}

// List retrieves all cases ordered by creation time.
func (r *FormCaseRepository) List(ctx context.Context) ([]*secondary.FormCaseRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+caseSelectCols+" FROM form_cases ORDER BY created_at, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	defer rows.Close()

	var cases []*secondary.FormCaseRecord
	for rows.Next() {
		record, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan case: %w", err)
		}
		cases = append(cases, record)
	}

	return cases, rows.Err()
}

// UpdateStatus performs a compare-and-swap status write. The row is only
// touched while its status and lock holder still match the caller's read;
// otherwise ErrStaleCase is returned and nothing changes.
func (r *FormCaseRepository) UpdateStatus(ctx context.Context, id int64, status string, lockHolderID int64, expectedStatus string, expectedLockHolderID int64) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE form_cases
		SET status = ?, processing_employee_id = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND status = ? AND COALESCE(processing_employee_id, 0) = ?`,
		status, nullID(lockHolderID), id, expectedStatus, expectedLockHolderID,
	)
	if err != nil {
		return fmt.Errorf("failed to update case status: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return secondary.ErrStaleCase
	}

	return nil
}

// Delete removes a case. Attachments and clarifications cascade.
func (r *FormCaseRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM form_cases WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete case: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("case %d not found", id)
	}

	return nil
}

// DepartmentExists checks if a department exists.
func (r *FormCaseRepository) DepartmentExists(ctx context.Context, departmentID int64) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM departments WHERE id = ?", departmentID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check department: %w", err)
	}
	return count > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCase(row rowScanner) (*secondary.FormCaseRecord, error) {
	var (
		processingID sql.NullInt64
		phone        sql.NullString
		email        sql.NullString
		subject      sql.NullString
		notes        sql.NullString
		serviceDesc  sql.NullString
		just         sql.NullString
		amount       sql.NullInt64
		costType     sql.NullString
		change       sql.NullString
		createdAt    time.Time
		updatedAt    time.Time
	)

	record := &secondary.FormCaseRecord{}
	err := row.Scan(
		&record.ID, &record.FormType, &record.Status, &record.DepartmentID, &record.CreatedByEmployeeID,
		&processingID,
		&record.ApplicantName, &record.ApplicantStreet, &record.ApplicantZip, &record.ApplicantCity,
		&phone, &email, &subject, &notes, &serviceDesc, &just, &amount, &costType, &change,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.ProcessingEmployeeID = processingID.Int64
	record.ApplicantPhone = phone.String
	record.ApplicantEmail = email.String
	record.Subject = subject.String
	record.Notes = notes.String
	record.ServiceDescription = serviceDesc.String
	record.Justification = just.String
	record.AmountCents = amount.Int64
	record.CostType = costType.String
	record.ChangeRequest = change.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

func nullID(id int64) sql.NullInt64 {
	if id == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: id, Valid: true}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// Ensure FormCaseRepository implements the interface
var _ secondary.FormCaseRepository = (*FormCaseRepository)(nil)
