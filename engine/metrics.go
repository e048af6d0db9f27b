package engine

import "time"

// MetricsCollector receives operational counters from a running search.
// Implement it to integrate with a monitoring system; the nearmiss package
// ships no-op and in-memory collectors.
type MetricsCollector interface {
	// RecordCandidate is called once per evaluated (x, y) pair.
	RecordCandidate()

	// RecordNewBest is called whenever the running best improves.
	RecordNewBest(relativeMiss float64)

	// RecordSearch is called once when the search finishes.
	// err is nil on normal completion.
	RecordSearch(duration time.Duration, err error)
}

type noopMetrics struct{}

func (noopMetrics) RecordCandidate()                  {}
func (noopMetrics) RecordNewBest(float64)             {}
func (noopMetrics) RecordSearch(time.Duration, error) {}
