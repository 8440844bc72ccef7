package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reported = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

func TestAgeAt(t *testing.T) {
	issue := &Issue{ReportedDate: reported}

	tests := []struct {
		name string
		now  time.Time
		want int64
	}{
		{"just reported", reported, 0},
		{"partial hour floors", reported.Add(59 * time.Minute), 0},
		{"two and a half hours", reported.Add(150 * time.Minute), 2},
		{"clock behind report", reported.Add(-3 * time.Hour), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, issue.AgeAt(tt.now))
		})
	}
}

func TestSLABreachedAt(t *testing.T) {
	tests := []struct {
		name   string
		status IssueStatus
		age    time.Duration
		want   bool
	}{
		{"new under threshold", StatusNew, 47 * time.Hour, false},
		{"new at threshold", StatusNew, 48*time.Hour + 30*time.Minute, false},
		{"new over threshold", StatusNew, 49 * time.Hour, true},
		{"in progress over threshold", StatusInProgress, 72 * time.Hour, true},
		{"rejected over threshold", StatusRejected, 72 * time.Hour, true},
		{"resolved over threshold", StatusResolved, 72 * time.Hour, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue := &Issue{Status: tt.status, ReportedDate: reported}
			assert.Equal(t, tt.want, issue.SLABreachedAt(reported.Add(tt.age)))
		})
	}
}

func TestEnumValid(t *testing.T) {
	assert.True(t, StatusInProgress.Valid())
	assert.False(t, IssueStatus("CLOSED").Valid())
	assert.True(t, WaterSupply.Valid())
	assert.False(t, IssueCategory("potholes").Valid())
	assert.True(t, Electricity.Valid())
	assert.False(t, Department("UNKNOWN").Valid())
}

func TestProject(t *testing.T) {
	issue := Issue{ID: "ISS-2025-001", Status: StatusNew, ReportedDate: reported}

	view := Project(issue, reported.Add(50*time.Hour))

	assert.Equal(t, int64(50), view.AgeInHours)
	assert.True(t, view.SLABreached)
	require.NotNil(t, view.Images)
	assert.Empty(t, view.Images)
	assert.Nil(t, issue.Images, "input must not be modified")
}

func TestProjectJSON(t *testing.T) {
	issue := Issue{
		ID:           "ISS-2025-007",
		Status:       StatusNew,
		Location:     Location{City: "Ranchi", Lat: 23.3, Lng: 85.3},
		ReportedDate: reported,
		UpdatedDate:  reported,
	}
	authorityID := "abc"
	issue.AuthorityID = &authorityID

	raw, err := json.Marshal(Project(issue, reported.Add(time.Hour)))
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "ISS-2025-007", doc["id"])
	assert.Equal(t, float64(1), doc["ageInHours"])
	assert.Equal(t, false, doc["slaBreached"])
	assert.Equal(t, []interface{}{}, doc["images"])
	assert.NotContains(t, doc, "assignedTo")
	assert.NotContains(t, doc, "authorityId")
	location := doc["location"].(map[string]interface{})
	assert.Equal(t, 23.3, location["lat"])
}

func TestActorAttribution(t *testing.T) {
	assert.Equal(t, SystemActor, Actor{}.Attribution())
	assert.Equal(t, SystemActor, Actor{UserID: "u1"}.Attribution())
	assert.Equal(t, "officer@city.gov", Actor{UserID: "u1", Email: "officer@city.gov"}.Attribution())
}

func TestAuthorityPassword(t *testing.T) {
	authority := &Authority{Password: "secret123"}
	require.NoError(t, authority.HashPassword())

	assert.NotEqual(t, "secret123", authority.Password)
	assert.True(t, authority.ComparePassword("secret123"))
	assert.False(t, authority.ComparePassword("wrong"))

	raw, err := json.Marshal(authority)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret123")
	assert.NotContains(t, string(raw), "password")
}
