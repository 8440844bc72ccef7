package services

import (
	"context"
	"errors"
	"testing"

	"civictrack/models"
	"civictrack/store"
	"civictrack/store/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errBackend = errors.New("connection reset")

func TestCreateIssueValidationSkipsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockIssueStore(ctrl)
	svc := NewIssueService(st, WithClock(newTestClock(start).Now))

	input := validInput()
	input.Title = ""
	_, err := svc.CreateIssue(context.Background(), input, models.Actor{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateIssueSequenceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockIssueStore(ctrl)
	svc := NewIssueService(st, WithClock(newTestClock(start).Now))

	st.EXPECT().NextSequence(gomock.Any(), "issue-2025").Return(int64(0), errBackend)

	_, err := svc.CreateIssue(context.Background(), validInput(), models.Actor{})
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, errBackend)
}

func TestCreateIssueInsertFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockIssueStore(ctrl)
	svc := NewIssueService(st, WithClock(newTestClock(start).Now))

	gomock.InOrder(
		st.EXPECT().NextSequence(gomock.Any(), "issue-2025").Return(int64(7), nil),
		st.EXPECT().InsertIssue(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, issue *models.Issue, first models.HistoryEntry) error {
				assert.Equal(t, "ISS-2025-007", issue.ID)
				assert.Equal(t, issue.ID, first.IssueID)
				assert.Equal(t, models.StatusNew, first.Status)
				assert.Equal(t, issue.ReportedDate, first.Timestamp)
				return errBackend
			}),
	)

	_, err := svc.CreateIssue(context.Background(), validInput(), models.Actor{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUpdateStatusValidationSkipsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockIssueStore(ctrl)
	svc := NewIssueService(st)

	_, err := svc.UpdateStatus(context.Background(), "ISS-2025-001", UpdateStatusInput{Status: "CLOSED"}, models.Actor{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateStatusNotFoundSkipsWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockIssueStore(ctrl)
	svc := NewIssueService(st)

	st.EXPECT().FindIssue(gomock.Any(), "ISS-2025-404").Return(nil, store.ErrNotFound)

	_, err := svc.UpdateStatus(context.Background(), "ISS-2025-404", UpdateStatusInput{Status: models.StatusResolved}, models.Actor{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatusDisappearedDuringWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockIssueStore(ctrl)
	svc := NewIssueService(st)

	st.EXPECT().FindIssue(gomock.Any(), "ISS-2025-001").Return(&models.Issue{ID: "ISS-2025-001", Status: models.StatusNew}, nil)
	st.EXPECT().ApplyStatusChange(gomock.Any(), "ISS-2025-001", gomock.Any(), gomock.Any()).Return(nil, store.ErrNotFound)

	_, err := svc.UpdateStatus(context.Background(), "ISS-2025-001", UpdateStatusInput{Status: models.StatusResolved}, models.Actor{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatusWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockIssueStore(ctrl)
	svc := NewIssueService(st)

	st.EXPECT().FindIssue(gomock.Any(), "ISS-2025-001").Return(&models.Issue{ID: "ISS-2025-001", Status: models.StatusNew}, nil)
	st.EXPECT().ApplyStatusChange(gomock.Any(), "ISS-2025-001", gomock.Any(), gomock.Any()).Return(nil, errBackend)

	_, err := svc.UpdateStatus(context.Background(), "ISS-2025-001", UpdateStatusInput{Status: models.StatusResolved}, models.Actor{})
	assert.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestGetIssueHistoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockIssueStore(ctrl)
	svc := NewIssueService(st)

	st.EXPECT().FindIssue(gomock.Any(), "ISS-2025-001").Return(&models.Issue{ID: "ISS-2025-001"}, nil)
	st.EXPECT().History(gomock.Any(), "ISS-2025-001").Return(nil, errBackend)

	_, err := svc.GetIssue(context.Background(), "ISS-2025-001")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestListIssuesFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockIssueStore(ctrl)
	svc := NewIssueService(st)

	st.EXPECT().FindIssues(gomock.Any(), models.IssueFilter{City: "Ranchi"}).Return(nil, errBackend)

	_, err := svc.ListIssues(context.Background(), models.IssueFilter{City: "Ranchi"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestAnalyticsReadsOneSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockIssueStore(ctrl)
	clock := newTestClock(start)
	reporter := NewAnalyticsService(st, clock.Now)

	st.EXPECT().Snapshot(gomock.Any()).Return([]models.IssueRecord{
		{Issue: models.Issue{ID: "ISS-2025-001", Status: models.StatusNew, ReportedDate: start}},
	}, nil).Times(1)

	report, err := reporter.Report(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.KPI.TotalIssues)
}

func TestAnalyticsSnapshotFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockIssueStore(ctrl)
	reporter := NewAnalyticsService(st, nil)

	st.EXPECT().Snapshot(gomock.Any()).Return(nil, errBackend)

	_, err := reporter.Report(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
