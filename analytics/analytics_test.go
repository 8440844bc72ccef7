package analytics

import (
	"testing"
	"time"

	"civictrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func entry(status models.IssueStatus, after time.Duration) models.HistoryEntry {
	return models.HistoryEntry{Status: status, Timestamp: t0.Add(after)}
}

func record(id string, status models.IssueStatus, dept models.Department, history ...models.HistoryEntry) models.IssueRecord {
	r := models.IssueRecord{
		Issue:   models.Issue{ID: id, Status: status, ReportedDate: t0, UpdatedDate: t0},
		History: append([]models.HistoryEntry{entry(models.StatusNew, 0)}, history...),
	}
	if dept != "" {
		r.AssignedTo = &models.Assignment{Department: dept}
	}
	return r
}

func TestCompute(t *testing.T) {
	records := []models.IssueRecord{
		record("ISS-2025-001", models.StatusResolved, models.Roads,
			entry(models.StatusAcknowledged, 2*time.Hour),
			entry(models.StatusResolved, 50*time.Hour),
		),
		record("ISS-2025-002", models.StatusNew, ""),
		record("ISS-2025-003", models.StatusInProgress, models.Roads,
			entry(models.StatusInProgress, 10*time.Hour),
		),
	}

	report := Compute(records, t0.Add(100*time.Hour))

	assert.Equal(t, KPI{
		TotalIssues:       3,
		ResolvedIssues:    1,
		AvgResponseTime:   "6.0 hours",
		AvgResolutionTime: "2.1 days",
		OpenSLABreached:   2,
	}, report.KPI)
	require.Len(t, report.DepartmentPerformance, 1)
	assert.Equal(t, DepartmentPerformance{
		Department:         models.Roads,
		IssuesHandled:      2,
		AvgResolutionTime:  "2.1 days",
		ResolvedPercentage: 50,
	}, report.DepartmentPerformance[0])
}

func TestComputeEmpty(t *testing.T) {
	report := Compute(nil, t0)

	assert.Equal(t, 0, report.KPI.TotalIssues)
	assert.Equal(t, "0 hours", report.KPI.AvgResponseTime)
	assert.Equal(t, "0 days", report.KPI.AvgResolutionTime)
	assert.NotNil(t, report.DepartmentPerformance)
	assert.Empty(t, report.DepartmentPerformance)
}

func TestComputeUsesFirstResolution(t *testing.T) {
	records := []models.IssueRecord{
		record("ISS-2025-001", models.StatusResolved, models.Water,
			entry(models.StatusResolved, 10*time.Hour),
			entry(models.StatusInProgress, 20*time.Hour),
			entry(models.StatusResolved, 30*time.Hour),
		),
	}

	report := Compute(records, t0.Add(40*time.Hour))

	assert.Equal(t, "10.0 hours", report.KPI.AvgResolutionTime)
	assert.Equal(t, "10.0 hours", report.DepartmentPerformance[0].AvgResolutionTime)
}

func TestComputeDepartmentOrdering(t *testing.T) {
	var records []models.IssueRecord
	add := func(dept models.Department, n int) {
		for i := 0; i < n; i++ {
			records = append(records, record(string(dept), models.StatusNew, dept))
		}
	}
	add(models.Water, 2)
	add(models.Sanitation, 3)
	add(models.Roads, 2)

	report := Compute(records, t0)

	var order []models.Department
	for _, p := range report.DepartmentPerformance {
		order = append(order, p.Department)
		assert.Equal(t, notAvailable, p.AvgResolutionTime)
		assert.Equal(t, float64(0), p.ResolvedPercentage)
	}
	assert.Equal(t, []models.Department{models.Sanitation, models.Roads, models.Water}, order)
}

func TestComputeResolvedWithoutLedgerEntry(t *testing.T) {
	// Counted as resolved but contributes no resolution sample.
	records := []models.IssueRecord{record("ISS-2025-001", models.StatusResolved, models.Roads)}

	report := Compute(records, t0.Add(time.Hour))

	assert.Equal(t, 1, report.KPI.ResolvedIssues)
	assert.Equal(t, "0 days", report.KPI.AvgResolutionTime)
	assert.Equal(t, notAvailable, report.DepartmentPerformance[0].AvgResolutionTime)
	assert.Equal(t, float64(100), report.DepartmentPerformance[0].ResolvedPercentage)
}

func TestFirstResponse(t *testing.T) {
	history := []models.HistoryEntry{
		entry(models.StatusNew, 0),
		entry(models.StatusInProgress, 5*time.Hour),
		entry(models.StatusAcknowledged, 3*time.Hour),
	}
	at, ok := FirstResponse(history)
	require.True(t, ok)
	assert.Equal(t, t0.Add(3*time.Hour), at)

	_, ok = FirstResponse(history[:1])
	assert.False(t, ok)
}

func TestResolvedPercentage(t *testing.T) {
	tests := []struct {
		resolved, handled int
		want              float64
	}{
		{0, 0, 0},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{3, 3, 100},
		{1, 8, 12.5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolvedPercentage(tt.resolved, tt.handled), "%d/%d", tt.resolved, tt.handled)
	}
}

func TestFormatResponseTime(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, "0 hours"},
		{-1, "0 hours"},
		{5.26, "5.3 hours"},
		{23.9, "23.9 hours"},
		{24, "1.0 days"},
		{36, "1.5 days"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatResponseTime(tt.hours), "%v hours", tt.hours)
	}
}

func TestFormatResolutionTime(t *testing.T) {
	assert.Equal(t, "0 days", FormatResolutionTime(0, false, "0 days"))
	assert.Equal(t, notAvailable, FormatResolutionTime(0, false, notAvailable))
	assert.Equal(t, "12.0 hours", FormatResolutionTime(0.5, true, notAvailable))
	assert.Equal(t, "1.0 days", FormatResolutionTime(1, true, notAvailable))
	assert.Equal(t, "2.5 days", FormatResolutionTime(2.5, true, notAvailable))
}
