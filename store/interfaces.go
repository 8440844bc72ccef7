package store

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_store.go -package=mocks

import (
	"context"
	"errors"

	"civictrack/models"
)

var (
	ErrNotFound  = errors.New("store: not found")
	ErrDuplicate = errors.New("store: duplicate key")
)

// IssueStore persists issues and their append-only history ledger.
// History entries are append-only: nothing here updates or removes one.
type IssueStore interface {
	// NextSequence atomically increments and returns the counter named key.
	NextSequence(ctx context.Context, key string) (int64, error)
	// InsertIssue stores issue together with its first history entry.
	InsertIssue(ctx context.Context, issue *models.Issue, first models.HistoryEntry) error
	// ApplyStatusChange overwrites the status fields of issue id and appends
	// entry in the same unit of work. Returns ErrNotFound if id is unknown.
	ApplyStatusChange(ctx context.Context, id string, change models.StatusChange, entry models.HistoryEntry) (*models.Issue, error)
	FindIssue(ctx context.Context, id string) (*models.Issue, error)
	// FindIssues returns matching issues, newest reportedDate first.
	FindIssues(ctx context.Context, filter models.IssueFilter) ([]models.Issue, error)
	// History returns the ledger of issue id ordered by timestamp ascending.
	History(ctx context.Context, issueID string) ([]models.HistoryEntry, error)
	// Snapshot returns every issue joined with its ledger, read from one
	// consistent view of the data.
	Snapshot(ctx context.Context) ([]models.IssueRecord, error)
}

// AuthorityStore persists municipal accounts.
type AuthorityStore interface {
	// CreateAuthority returns ErrDuplicate when the email is taken.
	CreateAuthority(ctx context.Context, authority *models.Authority) error
	FindAuthorityByEmail(ctx context.Context, email string) (*models.Authority, error)
	FindAuthorityByID(ctx context.Context, id string) (*models.Authority, error)
}
