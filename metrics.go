package nearmiss

import (
	"sync/atomic"
	"time"
)

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCandidate()                  {}
func (NoopMetricsCollector) RecordNewBest(float64)             {}
func (NoopMetricsCollector) RecordSearch(time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CandidateCount   atomic.Int64
	NewBestCount     atomic.Int64
	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchTotalNanos atomic.Int64
}

// RecordCandidate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCandidate() {
	b.CandidateCount.Add(1)
}

// RecordNewBest implements MetricsCollector.
func (b *BasicMetricsCollector) RecordNewBest(float64) {
	b.NewBestCount.Add(1)
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
	}
}
