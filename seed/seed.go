// Package seed loads a sample dataset through the lifecycle engine, back-dating
// every step so the analytics have something to show.
package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"civictrack/models"
	"civictrack/services"
	"civictrack/store"

	"github.com/apex/log"
)

const reportWindow = 7 * 24 * time.Hour

// Offsets from the report time at which sample issues advance.
const (
	acknowledgeAfter = 2 * time.Hour
	startWorkAfter   = 12 * time.Hour
	resolveAfter     = 48 * time.Hour
)

type sample struct {
	title       string
	description string
	category    models.IssueCategory
	status      models.IssueStatus
	location    models.Location
	reporter    models.Reporter
	department  models.Department
	officer     string
}

var samples = []sample{
	{
		title:       "Large pothole on Main Road near Bus Stand",
		description: "There is a deep pothole causing traffic issues and accidents. Urgent repair needed.",
		category:    models.Potholes,
		status:      models.StatusNew,
		location:    models.Location{Address: "Main Road, near Bus Stand", Ward: "Ward 12", City: "Ranchi", Lat: 23.3441, Lng: 85.3096},
		reporter:    models.Reporter{Name: "Rajesh Kumar", Phone: "+91-98765-43210"},
	},
	{
		title:       "Garbage pile near Market Area",
		description: "Uncollected garbage for 5 days. Creating health hazard and bad smell.",
		category:    models.Garbage,
		status:      models.StatusAcknowledged,
		location:    models.Location{Address: "Market Road, Sector 5", Ward: "Ward 8", City: "Jamshedpur", Lat: 22.8046, Lng: 86.2029},
		reporter:    models.Reporter{Name: "Priya Sharma", Phone: "+91-97654-32109"},
		department:  models.Sanitation,
		officer:     "Amit Singh",
	},
	{
		title:       "Street light not working on Park Street",
		description: "All street lights are off for the past week. Dark area causing safety issues.",
		category:    models.Streetlights,
		status:      models.StatusInProgress,
		location:    models.Location{Address: "Park Street, Block C", Ward: "Ward 15", City: "Ranchi", Lat: 23.3629, Lng: 85.3346},
		reporter:    models.Reporter{Name: "Sunita Devi", Phone: "+91-99876-54321"},
		department:  models.Electricity,
		officer:     "Manoj Yadav",
	},
	{
		title:       "Water pipe leakage causing road damage",
		description: "Underground water pipe leaking heavily. Water wastage and road getting damaged.",
		category:    models.WaterSupply,
		status:      models.StatusResolved,
		location:    models.Location{Address: "MG Road, near School", Ward: "Ward 3", City: "Dhanbad", Lat: 23.7957, Lng: 86.4304},
		reporter:    models.Reporter{Name: "Vikash Tiwari", Phone: "+91-96543-21098"},
		department:  models.Water,
		officer:     "Ravi Mishra",
	},
	{
		title:       "Sewage overflow in residential area",
		description: "Blocked sewage line causing overflow in streets. Health emergency.",
		category:    models.Sewage,
		status:      models.StatusAcknowledged,
		location:    models.Location{Address: "Housing Colony, Sector 9", Ward: "Ward 20", City: "Ranchi", Lat: 23.3725, Lng: 85.3235},
		reporter:    models.Reporter{Name: "Anita Kumari", Phone: "+91-94567-89012"},
		department:  models.Sanitation,
		officer:     "Santosh Kumar",
	},
	{
		title:       "Multiple potholes on Highway stretch",
		description: "Several potholes on 2km highway stretch causing vehicle damage",
		category:    models.Potholes,
		status:      models.StatusInProgress,
		location:    models.Location{Address: "NH-33, near Toll Plaza", Ward: "Ward 25", City: "Jamshedpur", Lat: 22.7925, Lng: 86.1842},
		reporter:    models.Reporter{Name: "Deepak Singh", Phone: "+91-98765-12345"},
		department:  models.Roads,
		officer:     "Ajay Verma",
	},
	{
		title:       "No water supply for 3 days",
		description: "Entire area without water supply. Facing severe crisis.",
		category:    models.WaterSupply,
		status:      models.StatusInProgress,
		location:    models.Location{Address: "Satellite Town, Phase 2", Ward: "Ward 18", City: "Dhanbad", Lat: 23.8103, Lng: 86.4402},
		reporter:    models.Reporter{Name: "Ramesh Gupta", Phone: "+91-93456-78901"},
		department:  models.Water,
		officer:     "Suresh Pandey",
	},
	{
		title:       "Broken street light near park",
		description: "Street light pole damaged and leaning dangerously",
		category:    models.Streetlights,
		status:      models.StatusNew,
		location:    models.Location{Address: "Central Park Road", Ward: "Ward 5", City: "Ranchi", Lat: 23.3550, Lng: 85.3200},
		reporter:    models.Reporter{Name: "Sanjay Kumar", Phone: "+91-91234-56789"},
	},
}

// manualClock is advanced by the seeder between engine calls.
type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time { return c.now }

type step struct {
	status models.IssueStatus
	after  time.Duration
	notes  string
}

// stepsTo lists the transitions that take a fresh issue to target.
func stepsTo(target models.IssueStatus) []step {
	var steps []step
	switch target {
	case models.StatusAcknowledged, models.StatusInProgress, models.StatusResolved:
		steps = append(steps, step{models.StatusAcknowledged, acknowledgeAfter, "Issue acknowledged and assigned"})
	}
	switch target {
	case models.StatusInProgress, models.StatusResolved:
		steps = append(steps, step{models.StatusInProgress, startWorkAfter, "Work started on the issue"})
	}
	if target == models.StatusResolved {
		steps = append(steps, step{models.StatusResolved, resolveAfter, "Issue resolved successfully"})
	}
	return steps
}

// Run creates every sample issue, reported at a random time within the week
// before now, and walks it to its sample status. It returns the created ids.
func Run(ctx context.Context, st store.IssueStore, now time.Time, rnd *rand.Rand) ([]string, error) {
	clock := &manualClock{}
	svc := services.NewIssueService(st, services.WithClock(clock.Now))

	ids := make([]string, 0, len(samples))
	for _, s := range samples {
		reported := now.Add(-time.Duration(rnd.Int64N(int64(reportWindow))))
		clock.now = reported

		location, reporter := s.location, s.reporter
		issue, err := svc.CreateIssue(ctx, services.CreateIssueInput{
			Title:       s.title,
			Description: s.description,
			Category:    s.category,
			Location:    &location,
			Reporter:    &reporter,
		}, models.Actor{})
		if err != nil {
			return ids, fmt.Errorf("seed %q: %w", s.title, err)
		}

		for _, next := range stepsTo(s.status) {
			clock.now = reported.Add(next.after)
			if clock.now.After(now) {
				clock.now = now
			}
			_, err := svc.UpdateStatus(ctx, issue.ID, services.UpdateStatusInput{
				Status:              next.status,
				AssignedDepartment:  s.department,
				AssignedOfficerName: s.officer,
				Notes:               next.notes,
			}, models.Actor{Email: s.officer})
			if err != nil {
				return ids, fmt.Errorf("seed %s to %s: %w", issue.ID, next.status, err)
			}
		}

		log.WithFields(log.Fields{"issue_id": issue.ID, "status": s.status}).Info("Seeded issue")
		ids = append(ids, issue.ID)
	}
	return ids, nil
}
