package models

import "time"

const (
	// SystemActor attributes ledger entries written without an authenticated caller.
	SystemActor = "System"
	// UnknownDepartment is recorded when a status update names no department.
	UnknownDepartment = "UNKNOWN"
)

// HistoryEntry is one immutable ledger record of a status-affecting action.
type HistoryEntry struct {
	IssueID    string      `bson:"issueId" json:"-"`
	Timestamp  time.Time   `bson:"timestamp" json:"timestamp"`
	Status     IssueStatus `bson:"status" json:"status"`
	UpdatedBy  string      `bson:"updatedBy" json:"updatedBy"`
	Department string      `bson:"department" json:"department"`
	Notes      string      `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Actor is the caller identity handed over by the access gate.
type Actor struct {
	UserID string
	Email  string
}

// Attribution is the updatedBy value for entries written by this actor.
func (a Actor) Attribution() string {
	if a.Email == "" {
		return SystemActor
	}
	return a.Email
}
