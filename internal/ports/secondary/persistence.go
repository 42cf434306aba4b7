// Package secondary defines the secondary ports (driven adapters) for the
// application: the interfaces through which services reach persistence and
// blob storage.
package secondary

import (
	"context"
	"errors"
)

// ErrStaleCase is returned by FormCaseRepository.UpdateStatus when the row no
// longer matches the expected status/lock pair, i.e. a concurrent writer got
// there first and the caller's read is stale.
var ErrStaleCase = errors.New("case was modified concurrently")

// FormCaseRepository defines the secondary port for case persistence.
type FormCaseRepository interface {
	// Create persists a new case and fills in its generated ID.
	Create(ctx context.Context, formCase *FormCaseRecord) error

	// GetByID retrieves a case by its ID. Missing cases return (nil, nil).
	GetByID(ctx context.Context, id int64) (*FormCaseRecord, error)

	// List retrieves all cases ordered by creation time.
	List(ctx context.Context) ([]*FormCaseRecord, error)

	// UpdateStatus performs a compare-and-swap status write: the row is only
	// updated when its status and processing employee still match the
	// expected values. A lockHolderID of zero clears the lock. Returns
	// ErrStaleCase when the guard row no longer matches.
	UpdateStatus(ctx context.Context, id int64, status string, lockHolderID int64, expectedStatus string, expectedLockHolderID int64) error

	// Delete removes a case. Attachments and clarifications cascade.
	Delete(ctx context.Context, id int64) error

	// DepartmentExists checks if a department exists (for validation).
	DepartmentExists(ctx context.Context, departmentID int64) (bool, error)
}

// FormCaseRecord represents a case as stored in persistence. A
// ProcessingEmployeeID of zero means the case is unlocked. Timestamps are
// RFC 3339 strings.
type FormCaseRecord struct {
	ID                   int64
	FormType             string
	Status               string
	DepartmentID         int64
	CreatedByEmployeeID  int64
	ProcessingEmployeeID int64

	ApplicantName   string
	ApplicantStreet string
	ApplicantZip    int
	ApplicantCity   string
	ApplicantPhone  string
	ApplicantEmail  string

	Subject string
	Notes   string

	// service_request fields
	ServiceDescription string
	Justification      string

	// cost_request fields
	AmountCents int64
	CostType    string

	// org_change fields
	ChangeRequest string

	CreatedAt string
	UpdatedAt string
}

// EmployeeRepository defines the secondary port for employee lookup.
type EmployeeRepository interface {
	// GetByID retrieves an employee by ID. Missing employees return (nil, nil).
	GetByID(ctx context.Context, id int64) (*EmployeeRecord, error)

	// Create persists a new employee and fills in its generated ID.
	Create(ctx context.Context, employee *EmployeeRecord) error

	// List retrieves all employees ordered by ID.
	List(ctx context.Context) ([]*EmployeeRecord, error)
}

// EmployeeRecord represents an employee as stored in persistence.
// A DepartmentID of zero means no department membership.
type EmployeeRecord struct {
	ID           int64
	Name         string
	Role         string
	DepartmentID int64
}

// AttachmentRepository defines the secondary port for attachment metadata.
type AttachmentRepository interface {
	// Create persists a new metadata row and fills in its generated ID.
	Create(ctx context.Context, attachment *AttachmentRecord) error

	// GetByID retrieves an attachment by ID. Missing rows return (nil, nil).
	GetByID(ctx context.Context, id int64) (*AttachmentRecord, error)

	// GetByCaseID retrieves all attachments of a case, upload order.
	GetByCaseID(ctx context.Context, caseID int64) ([]*AttachmentRecord, error)

	// CountFinalized counts attachments of a case whose storage key is bound,
	// i.e. neither empty nor the pending sentinel.
	CountFinalized(ctx context.Context, caseID int64) (int, error)

	// UpdateStorageKey binds the storage key of a stored file to its row.
	UpdateStorageKey(ctx context.Context, id int64, storageKey string) error

	// Delete removes a metadata row.
	Delete(ctx context.Context, id int64) error
}

// AttachmentRecord represents attachment metadata as stored in persistence.
type AttachmentRecord struct {
	ID                   int64
	FormCaseID           int64
	FileName             string
	ContentType          string
	SizeBytes            int64
	StorageKey           string
	UploadedByEmployeeID int64
	UploadedAt           string
}

// ClarificationRepository defines the secondary port for clarification
// messages. Messages are append-only.
type ClarificationRepository interface {
	// Create persists a new message and fills in its generated ID.
	Create(ctx context.Context, message *ClarificationRecord) error

	// GetByCaseID retrieves all messages of a case, creation order ascending.
	GetByCaseID(ctx context.Context, caseID int64) ([]*ClarificationRecord, error)
}

// ClarificationRecord represents a clarification message as stored in
// persistence.
type ClarificationRecord struct {
	ID                  int64
	FormCaseID          int64
	CreatedByEmployeeID int64
	Message             string
	CreatedAt           string
}

// DepartmentRepository defines the secondary port for departments.
type DepartmentRepository interface {
	// List retrieves all departments ordered by ID.
	List(ctx context.Context) ([]*DepartmentRecord, error)

	// GetByID retrieves a department by ID. Missing rows return (nil, nil).
	GetByID(ctx context.Context, id int64) (*DepartmentRecord, error)
}

// DepartmentRecord represents a department as stored in persistence.
type DepartmentRecord struct {
	ID   int64
	Name string
}
