package store

import (
	"testing"
	"time"

	"civictrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestIssueFilterDocument(t *testing.T) {
	assert.Equal(t, bson.M{}, issueFilterDocument(models.IssueFilter{}))
	assert.Equal(t, bson.M{
		"status":        models.StatusNew,
		"category":      models.Garbage,
		"location.city": "Ranchi",
	}, issueFilterDocument(models.IssueFilter{
		Status:   models.StatusNew,
		Category: models.Garbage,
		City:     "Ranchi",
	}))
}

func TestStatusUpdateDocument(t *testing.T) {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("assigns", func(t *testing.T) {
		assignment := &models.Assignment{Department: models.Roads}
		update := statusUpdateDocument(models.StatusChange{Status: models.StatusAcknowledged, AssignedTo: assignment, UpdatedDate: at})

		assert.Equal(t, bson.M{"$set": bson.M{
			"status":      models.StatusAcknowledged,
			"updatedDate": at,
			"assignedTo":  assignment,
		}}, update)
	})

	t.Run("unassigns", func(t *testing.T) {
		update := statusUpdateDocument(models.StatusChange{Status: models.StatusInProgress, UpdatedDate: at})

		assert.Equal(t, bson.M{"assignedTo": ""}, update["$unset"])
		assert.NotContains(t, update["$set"], "assignedTo")
	})
}

func TestSnapshotPipeline(t *testing.T) {
	pipeline := snapshotPipeline()
	require.Len(t, pipeline, 2)
	assert.Equal(t, "$sort", pipeline[0][0].Key)
	assert.Equal(t, "$lookup", pipeline[1][0].Key)

	lookup, ok := pipeline[1][0].Value.(bson.D)
	require.True(t, ok)
	assert.Contains(t, lookup, bson.E{Key: "from", Value: HistoryCollection})
	assert.Contains(t, lookup, bson.E{Key: "foreignField", Value: "issueId"})
}

func TestSortLedger(t *testing.T) {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	entries := []models.HistoryEntry{
		{Status: models.StatusResolved, Timestamp: at.Add(2 * time.Hour)},
		{Status: models.StatusNew, Timestamp: at},
		{Status: models.StatusAcknowledged, Timestamp: at.Add(time.Hour)},
	}

	sortLedger(entries)

	assert.Equal(t, models.StatusNew, entries[0].Status)
	assert.Equal(t, models.StatusAcknowledged, entries[1].Status)
	assert.Equal(t, models.StatusResolved, entries[2].Status)
}
