// Package faults defines the error taxonomy shared by all services.
// Every rejected operation maps to one of a small set of kinds plus a
// stable, enumerable reason string that callers can render without parsing.
package faults

import "errors"

// Kind classifies why an operation was rejected.
type Kind int

const (
	// KindUnknown is the zero value for errors that did not come from this package.
	KindUnknown Kind = iota

	// InvalidArgument marks malformed input (non-positive ids, blank fields).
	InvalidArgument

	// Unauthorized marks a resolvable actor lacking permission for an
	// action/state combination. Always reported as "not allowed".
	Unauthorized

	// NotFound marks a missing case, attachment, or employee.
	NotFound

	// PreconditionFailed marks a structurally valid operation blocked by a
	// business rule, e.g. the attachment gate.
	PreconditionFailed

	// Conflict marks a write that lost a race against a concurrent writer.
	Conflict

	// StorageFailure marks persistence or blob I/O failing after validation passed.
	StorageFailure
)

// Stable reason strings. Rejections reuse these verbatim so a UI can match
// on them; authorization failures are deliberately undifferentiated.
const (
	ReasonUnknownActor       = "unknown actor"
	ReasonNotAllowed         = "not allowed"
	ReasonInvalidCaseID      = "invalid case id"
	ReasonCaseNotFound       = "case not found"
	ReasonAttachmentRequired = "at least one attachment is required"
)

// Fault is an error with a taxonomy kind and a stable reason string.
type Fault struct {
	Kind   Kind
	Reason string
}

// Error returns the stable reason string.
func (f *Fault) Error() string { return f.Reason }

// New creates a fault of the given kind.
func New(kind Kind, reason string) *Fault {
	return &Fault{Kind: kind, Reason: reason}
}

// KindOf extracts the kind from an error, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind
	}
	return KindUnknown
}
