package store

import (
	"context"
	"sort"
	"sync"

	"civictrack/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore keeps everything in process memory. Each write is one critical
// section, so the atomicity rules of the Mongo store hold here too.
type MemoryStore struct {
	mu          sync.RWMutex
	counters    map[string]int64
	issues      map[string]models.Issue
	history     map[string][]models.HistoryEntry
	authorities map[primitive.ObjectID]models.Authority
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		counters:    make(map[string]int64),
		issues:      make(map[string]models.Issue),
		history:     make(map[string][]models.HistoryEntry),
		authorities: make(map[primitive.ObjectID]models.Authority),
	}
}

func (m *MemoryStore) NextSequence(ctx context.Context, key string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[key]++
	return m.counters[key], nil
}

func (m *MemoryStore) InsertIssue(ctx context.Context, issue *models.Issue, first models.HistoryEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.issues[issue.ID]; exists {
		return ErrDuplicate
	}
	m.issues[issue.ID] = cloneIssue(*issue)
	first.IssueID = issue.ID
	m.history[issue.ID] = []models.HistoryEntry{first}
	return nil
}

func (m *MemoryStore) ApplyStatusChange(ctx context.Context, id string, change models.StatusChange, entry models.HistoryEntry) (*models.Issue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	issue, ok := m.issues[id]
	if !ok {
		return nil, ErrNotFound
	}
	issue.Status = change.Status
	issue.AssignedTo = cloneAssignment(change.AssignedTo)
	issue.UpdatedDate = change.UpdatedDate
	m.issues[id] = issue

	entry.IssueID = id
	m.history[id] = append(m.history[id], entry)

	updated := cloneIssue(issue)
	return &updated, nil
}

func (m *MemoryStore) FindIssue(ctx context.Context, id string) (*models.Issue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	issue, ok := m.issues[id]
	if !ok {
		return nil, ErrNotFound
	}
	found := cloneIssue(issue)
	return &found, nil
}

func (m *MemoryStore) FindIssues(ctx context.Context, filter models.IssueFilter) ([]models.Issue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	issues := make([]models.Issue, 0, len(m.issues))
	for _, issue := range m.issues {
		if matches(issue, filter) {
			issues = append(issues, cloneIssue(issue))
		}
	}
	sortNewestFirst(issues)
	return issues, nil
}

func (m *MemoryStore) History(ctx context.Context, issueID string) ([]models.HistoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneHistory(m.history[issueID]), nil
}

func (m *MemoryStore) Snapshot(ctx context.Context) ([]models.IssueRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	issues := make([]models.Issue, 0, len(m.issues))
	for _, issue := range m.issues {
		issues = append(issues, cloneIssue(issue))
	}
	sortNewestFirst(issues)

	records := make([]models.IssueRecord, 0, len(issues))
	for _, issue := range issues {
		records = append(records, models.IssueRecord{
			Issue:   issue,
			History: cloneHistory(m.history[issue.ID]),
		})
	}
	return records, nil
}

func (m *MemoryStore) CreateAuthority(ctx context.Context, authority *models.Authority) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.authorities {
		if existing.Email == authority.Email {
			return ErrDuplicate
		}
	}
	if authority.ID.IsZero() {
		authority.ID = primitive.NewObjectID()
	}
	m.authorities[authority.ID] = *authority
	return nil
}

func (m *MemoryStore) FindAuthorityByEmail(ctx context.Context, email string) (*models.Authority, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, authority := range m.authorities {
		if authority.Email == email {
			found := authority
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) FindAuthorityByID(ctx context.Context, id string) (*models.Authority, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	authority, ok := m.authorities[objID]
	if !ok {
		return nil, ErrNotFound
	}
	return &authority, nil
}

func matches(issue models.Issue, filter models.IssueFilter) bool {
	if filter.Status != "" && issue.Status != filter.Status {
		return false
	}
	if filter.Category != "" && issue.Category != filter.Category {
		return false
	}
	if filter.City != "" && issue.Location.City != filter.City {
		return false
	}
	return true
}

func sortNewestFirst(issues []models.Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].ReportedDate.Equal(issues[j].ReportedDate) {
			return issues[i].ID > issues[j].ID
		}
		return issues[i].ReportedDate.After(issues[j].ReportedDate)
	})
}

func cloneIssue(issue models.Issue) models.Issue {
	if issue.Images != nil {
		issue.Images = append([]string(nil), issue.Images...)
	}
	issue.AssignedTo = cloneAssignment(issue.AssignedTo)
	if issue.AuthorityID != nil {
		id := *issue.AuthorityID
		issue.AuthorityID = &id
	}
	return issue
}

func cloneAssignment(a *models.Assignment) *models.Assignment {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

func cloneHistory(entries []models.HistoryEntry) []models.HistoryEntry {
	return append([]models.HistoryEntry{}, entries...)
}
