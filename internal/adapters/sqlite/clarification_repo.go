package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/caseflow/internal/ports/secondary"
)

// ClarificationRepository implements secondary.ClarificationRepository with SQLite.
type ClarificationRepository struct {
	db *sql.DB
}

// NewClarificationRepository creates a new SQLite clarification repository.
func NewClarificationRepository(db *sql.DB) *ClarificationRepository {
	return &ClarificationRepository{db: db}
}

// Create persists a new message and fills in its generated ID.
func (r *ClarificationRepository) Create(ctx context.Context, message *secondary.ClarificationRecord) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO clarification_messages (form_case_id, created_by_employee_id, message) VALUES (?, ?, ?)",
		message.FormCaseID, message.CreatedByEmployeeID, message.Message,
	)
	if err != nil {
		return fmt.Errorf("failed to create clarification: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get clarification ID: %w", err)
	}
	message.ID = id

	return nil
}

// GetByCaseID retrieves all messages of a case, creation order ascending.
func (r *ClarificationRepository) GetByCaseID(ctx context.Context, caseID int64) ([]*secondary.ClarificationRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, form_case_id, created_by_employee_id, message, created_at FROM clarification_messages WHERE form_case_id = ? ORDER BY created_at ASC, id ASC",
		caseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list clarifications: %w", err)
	}
	defer rows.Close()

	var messages []*secondary.ClarificationRecord
	for rows.Next() {
		var createdAt time.Time

		record := &secondary.ClarificationRecord{}
		if err := rows.Scan(&record.ID, &record.FormCaseID, &record.CreatedByEmployeeID, &record.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan clarification: %w", err)
		}

		record.CreatedAt = createdAt.Format(time.RFC3339)
		messages = append(messages, record)
	}

	return messages, rows.Err()
}

// Ensure ClarificationRepository implements the interface
var _ secondary.ClarificationRepository = (*ClarificationRepository)(nil)
