// Package models contains domain constants for CaseFlow entities.
// Persistence records live in ports/secondary; SQL lives in adapters/sqlite.
package models

// Case status constants. A case moves through these exclusively via the
// transition engine in core/formcase.
const (
	StatusNew             = "new"
	StatusInProgress      = "in_progress"
	StatusInClarification = "in_clarification"
	StatusDone            = "done"
)

// Statuses lists all valid case statuses.
var Statuses = []string{StatusNew, StatusInProgress, StatusInClarification, StatusDone}

// ValidStatus reports whether s is a known case status.
func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}
