// Package analytics computes KPI and department performance figures from a
// snapshot of issues joined with their history ledgers.
//
// Response time is measured to the earliest ACKNOWLEDGED or IN_PROGRESS entry.
// Resolution time is measured to the first RESOLVED entry, so an issue that
// was reopened and resolved again contributes one sample.
package analytics

import (
	"sort"
	"time"

	"civictrack/models"

	"github.com/shopspring/decimal"
)

const notAvailable = "N/A"

type KPI struct {
	TotalIssues       int    `json:"totalIssues"`
	ResolvedIssues    int    `json:"resolvedIssues"`
	AvgResponseTime   string `json:"avgResponseTime"`
	AvgResolutionTime string `json:"avgResolutionTime"`
	OpenSLABreached   int    `json:"openSLABreached"`
}

type DepartmentPerformance struct {
	Department         models.Department `json:"department"`
	IssuesHandled      int               `json:"issuesHandled"`
	AvgResolutionTime  string            `json:"avgResolutionTime"`
	ResolvedPercentage float64           `json:"resolvedPercentage"`
}

type Report struct {
	KPI                   KPI                     `json:"kpi"`
	DepartmentPerformance []DepartmentPerformance `json:"departmentPerformance"`
}

// mean accumulates samples for an average.
type mean struct {
	sum   float64
	count int
}

func (m *mean) add(v float64) {
	m.sum += v
	m.count++
}

func (m mean) value() (float64, bool) {
	if m.count == 0 {
		return 0, false
	}
	return m.sum / float64(m.count), true
}

type departmentTally struct {
	handled    int
	resolved   int
	resolution mean
}

// Compute aggregates records as seen at now.
func Compute(records []models.IssueRecord, now time.Time) Report {
	var (
		kpi        KPI
		response   mean
		resolution mean
	)
	departments := map[models.Department]*departmentTally{}

	for i := range records {
		record := &records[i]
		kpi.TotalIssues++
		if record.Status == models.StatusResolved {
			kpi.ResolvedIssues++
		}
		if record.SLABreachedAt(now) {
			kpi.OpenSLABreached++
		}

		if at, ok := FirstResponse(record.History); ok {
			response.add(at.Sub(record.ReportedDate).Hours())
		}
		resolvedAt, resolved := FirstResolution(record.History)
		if resolved {
			resolution.add(resolvedAt.Sub(record.ReportedDate).Hours() / 24)
		}

		if record.AssignedTo == nil || record.AssignedTo.Department == "" {
			continue
		}
		tally, ok := departments[record.AssignedTo.Department]
		if !ok {
			tally = &departmentTally{}
			departments[record.AssignedTo.Department] = tally
		}
		tally.handled++
		if record.Status == models.StatusResolved {
			tally.resolved++
		}
		if resolved {
			tally.resolution.add(resolvedAt.Sub(record.ReportedDate).Hours() / 24)
		}
	}

	responseHours, _ := response.value()
	kpi.AvgResponseTime = FormatResponseTime(responseHours)
	resolutionDays, ok := resolution.value()
	kpi.AvgResolutionTime = FormatResolutionTime(resolutionDays, ok, "0 days")

	performance := make([]DepartmentPerformance, 0, len(departments))
	for department, tally := range departments {
		days, ok := tally.resolution.value()
		performance = append(performance, DepartmentPerformance{
			Department:         department,
			IssuesHandled:      tally.handled,
			AvgResolutionTime:  FormatResolutionTime(days, ok, notAvailable),
			ResolvedPercentage: ResolvedPercentage(tally.resolved, tally.handled),
		})
	}
	sort.Slice(performance, func(i, j int) bool {
		if performance[i].IssuesHandled != performance[j].IssuesHandled {
			return performance[i].IssuesHandled > performance[j].IssuesHandled
		}
		return performance[i].Department < performance[j].Department
	})

	return Report{KPI: kpi, DepartmentPerformance: performance}
}

// FirstResponse is the timestamp of the earliest ACKNOWLEDGED or IN_PROGRESS entry.
func FirstResponse(history []models.HistoryEntry) (time.Time, bool) {
	return earliest(history, func(s models.IssueStatus) bool {
		return s == models.StatusAcknowledged || s == models.StatusInProgress
	})
}

// FirstResolution is the timestamp of the earliest RESOLVED entry.
func FirstResolution(history []models.HistoryEntry) (time.Time, bool) {
	return earliest(history, func(s models.IssueStatus) bool {
		return s == models.StatusResolved
	})
}

func earliest(history []models.HistoryEntry, match func(models.IssueStatus) bool) (time.Time, bool) {
	var (
		found bool
		at    time.Time
	)
	for _, entry := range history {
		if !match(entry.Status) {
			continue
		}
		if !found || entry.Timestamp.Before(at) {
			at = entry.Timestamp
			found = true
		}
	}
	return at, found
}

// ResolvedPercentage is resolved/handled*100 rounded to 2 decimals, 0 when
// nothing was handled.
func ResolvedPercentage(resolved, handled int) float64 {
	if handled <= 0 {
		return 0
	}
	pct := decimal.NewFromInt(int64(resolved)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(handled))).
		Round(2)
	f, _ := pct.Float64()
	return f
}

// FormatResponseTime renders an hour figure as hours below a day, else days.
func FormatResponseTime(hours float64) string {
	if hours <= 0 {
		return "0 hours"
	}
	if hours >= 24 {
		return oneDecimal(hours/24) + " days"
	}
	return oneDecimal(hours) + " hours"
}

// FormatResolutionTime renders a day figure as hours below one day, else
// days. empty is returned when there is no sample.
func FormatResolutionTime(days float64, ok bool, empty string) string {
	if !ok || days <= 0 {
		return empty
	}
	if days < 1 {
		return oneDecimal(days*24) + " hours"
	}
	return oneDecimal(days) + " days"
}

func oneDecimal(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(1)
}
