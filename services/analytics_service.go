package services

import (
	"context"
	"time"

	"civictrack/analytics"
	"civictrack/metrics"
	"civictrack/store"

	"github.com/apex/log"
	"github.com/prometheus/client_golang/prometheus"
)

// AnalyticsService reads one snapshot per request and hands it to the aggregator.
type AnalyticsService struct {
	store store.IssueStore
	now   func() time.Time
}

func NewAnalyticsService(st store.IssueStore, now func() time.Time) *AnalyticsService {
	if now == nil {
		now = time.Now
	}
	return &AnalyticsService{store: st, now: now}
}

func (s *AnalyticsService) Report(ctx context.Context) (*analytics.Report, error) {
	timer := prometheus.NewTimer(metrics.AnalyticsDurationSeconds)
	defer timer.ObserveDuration()

	records, err := s.store.Snapshot(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to read analytics snapshot")
		return nil, internalError("analytics snapshot", err)
	}
	report := analytics.Compute(records, s.now())
	return &report, nil
}
