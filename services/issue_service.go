package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"civictrack/metrics"
	"civictrack/models"
	"civictrack/store"

	"github.com/apex/log"
	"github.com/go-playground/validator/v10"
)

const intakeNotes = "Issue reported by citizen"

// CreateIssueInput is the intake payload. Images may be omitted.
type CreateIssueInput struct {
	Title       string               `json:"title" validate:"required"`
	Description string               `json:"description" validate:"required"`
	Category    models.IssueCategory `json:"category" validate:"required,issue_category"`
	Location    *models.Location     `json:"location" validate:"required"`
	Reporter    *models.Reporter     `json:"reporter" validate:"required"`
	Images      []string             `json:"images"`
}

// UpdateStatusInput is a status change request. An empty department clears
// the current assignment.
type UpdateStatusInput struct {
	Status              models.IssueStatus `json:"status" validate:"required,issue_status"`
	AssignedDepartment  models.Department  `json:"assignedDepartment" validate:"omitempty,department"`
	AssignedOfficerName string             `json:"assignedOfficerName"`
	Notes               string             `json:"notes"`
}

// IssueService is the lifecycle engine: the only writer of issue status,
// assignment and updatedDate, and the only appender to the history ledger.
type IssueService struct {
	store    store.IssueStore
	validate *validator.Validate
	now      func() time.Time
}

type Option func(*IssueService)

// WithClock replaces the wall clock used for timestamps and derived fields.
func WithClock(now func() time.Time) Option {
	return func(s *IssueService) {
		s.now = now
	}
}

func NewIssueService(st store.IssueStore, opts ...Option) *IssueService {
	s := &IssueService{
		store:    st,
		validate: newValidator(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateIssue records a new issue in status NEW along with its first ledger entry.
func (s *IssueService) CreateIssue(ctx context.Context, input CreateIssueInput, actor models.Actor) (*models.IssueView, error) {
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	seq, err := s.store.NextSequence(ctx, IssueSequenceKey(now.Year()))
	if err != nil {
		return nil, internalError("generate issue id", err)
	}

	images := input.Images
	if images == nil {
		images = []string{}
	}

	issue := models.Issue{
		ID:           FormatIssueID(now.Year(), seq),
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		Status:       models.StatusNew,
		Location:     *input.Location,
		Reporter:     *input.Reporter,
		Images:       images,
		ReportedDate: now,
		UpdatedDate:  now,
	}
	if actor.UserID != "" {
		authorityID := actor.UserID
		issue.AuthorityID = &authorityID
	}

	first := models.HistoryEntry{
		IssueID:    issue.ID,
		Timestamp:  now,
		Status:     models.StatusNew,
		UpdatedBy:  models.SystemActor,
		Department: string(input.Category),
		Notes:      intakeNotes,
	}

	if err := s.store.InsertIssue(ctx, &issue, first); err != nil {
		log.WithError(err).WithField("issue_id", issue.ID).Error("Failed to create issue")
		return nil, internalError("create issue", err)
	}

	metrics.IssuesCreatedTotal.WithLabelValues(string(issue.Category)).Inc()
	log.WithFields(log.Fields{
		"issue_id": issue.ID,
		"category": issue.Category,
		"city":     issue.Location.City,
	}).Info("Created new issue")

	view := models.Project(issue, now)
	return &view, nil
}

// UpdateStatus moves an issue to input.Status from whatever state it is in and
// appends the matching ledger entry.
func (s *IssueService) UpdateStatus(ctx context.Context, id string, input UpdateStatusInput, actor models.Actor) (*models.StatusUpdateResult, error) {
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}

	current, err := s.store.FindIssue(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, internalError("find issue", err)
	}

	var assignment *models.Assignment
	department := models.UnknownDepartment
	if input.AssignedDepartment != "" {
		assignment = &models.Assignment{
			Department:  input.AssignedDepartment,
			OfficerName: input.AssignedOfficerName,
		}
		department = string(input.AssignedDepartment)
	}

	notes := input.Notes
	if notes == "" {
		notes = fmt.Sprintf("Status updated to %s", input.Status)
	}

	now := s.now().UTC()
	change := models.StatusChange{
		Status:      input.Status,
		AssignedTo:  assignment,
		UpdatedDate: now,
	}
	entry := models.HistoryEntry{
		IssueID:    id,
		Timestamp:  now,
		Status:     input.Status,
		UpdatedBy:  actor.Attribution(),
		Department: department,
		Notes:      notes,
	}

	updated, err := s.store.ApplyStatusChange(ctx, id, change, entry)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.WithError(err).WithField("issue_id", id).Error("Failed to update issue status")
		return nil, internalError("update issue status", err)
	}

	metrics.StatusUpdatesTotal.WithLabelValues(string(current.Status), string(updated.Status)).Inc()
	log.WithFields(log.Fields{
		"issue_id":   id,
		"from":       current.Status,
		"to":         updated.Status,
		"updated_by": entry.UpdatedBy,
	}).Info("Updated issue status")

	return &models.StatusUpdateResult{
		ID:          updated.ID,
		Status:      updated.Status,
		AssignedTo:  updated.AssignedTo,
		UpdatedDate: updated.UpdatedDate,
	}, nil
}

// ListIssues returns the issues matching filter, newest first.
func (s *IssueService) ListIssues(ctx context.Context, filter models.IssueFilter) ([]models.IssueView, error) {
	issues, err := s.store.FindIssues(ctx, filter)
	if err != nil {
		return nil, internalError("list issues", err)
	}

	now := s.now()
	views := make([]models.IssueView, 0, len(issues))
	for _, issue := range issues {
		views = append(views, models.Project(issue, now))
	}
	return views, nil
}

// GetIssue returns one issue with its history in ledger order.
func (s *IssueService) GetIssue(ctx context.Context, id string) (*models.IssueDetail, error) {
	issue, err := s.store.FindIssue(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, internalError("find issue", err)
	}

	history, err := s.store.History(ctx, id)
	if err != nil {
		return nil, internalError("find history", err)
	}
	if history == nil {
		history = []models.HistoryEntry{}
	}

	return &models.IssueDetail{
		IssueView: models.Project(*issue, s.now()),
		History:   history,
	}, nil
}
