// Package attachment contains the pure business logic for attachment
// ingestion: upload validation and the compensating saga that keeps metadata
// rows and stored bytes consistent.
package attachment

import (
	"strings"

	"github.com/example/caseflow/internal/faults"
)

// PDFContentType is the only content type accepted for case evidence.
const PDFContentType = "application/pdf"

// PendingStorageKey marks a metadata row whose bytes are not yet stored.
// A row still carrying this sentinel never satisfies the attachment gate.
const PendingStorageKey = "pending"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Kind    faults.Kind
	Reason  string
}

// Error converts the guard result to a fault if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return faults.New(r.Kind, r.Reason)
}

// AddContext provides context for the add-attachment guard.
type AddContext struct {
	FileName             string
	ContentType          string
	SizeBytes            int64
	UploadedByEmployeeID int64
}

// CanAdd evaluates whether attachment metadata is acceptable for ingestion.
// The content type comparison is case-insensitive.
func CanAdd(ctx AddContext) GuardResult {
	if strings.TrimSpace(ctx.FileName) == "" {
		return invalid("file name is required")
	}
	if !strings.EqualFold(ctx.ContentType, PDFContentType) {
		return invalid("only PDF files are allowed")
	}
	if ctx.SizeBytes <= 0 {
		return invalid("file size is invalid")
	}
	if ctx.UploadedByEmployeeID <= 0 {
		return invalid("uploader is required")
	}
	return GuardResult{Allowed: true}
}

// Finalized reports whether a storage key marks fully ingested bytes.
func Finalized(storageKey string) bool {
	return storageKey != "" && storageKey != PendingStorageKey
}

func invalid(reason string) GuardResult {
	return GuardResult{Allowed: false, Kind: faults.InvalidArgument, Reason: reason}
}
