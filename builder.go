// Package nearmiss searches for near misses of Fermat's Last Theorem.
//
// This file implements the fluent builder API for configuring searches.
// The builder is immutable - each method returns a new builder with the
// updated configuration.
package nearmiss

// Search creates a new search builder for the given exponent.
//
// Example:
//
//	finder, err := nearmiss.Search(3).
//	    Limit(500).
//	    Workers(4).
//	    ProgressEvery(10000).
//	    Build()
func Search(exponent int) Builder {
	return Builder{
		exponent:      exponent,
		limit:         MinBase,
		workers:       1,
		progressEvery: 10000,
	}
}

// Builder is an immutable fluent builder for Finder instances.
// Each method returns a new builder with the updated configuration.
type Builder struct {
	exponent      int
	limit         int64
	workers       int
	progressEvery uint64
	logger        *Logger
	metrics       MetricsCollector
}

// Limit sets the upper bound k for both x and y.
func (b Builder) Limit(k int64) Builder {
	b.limit = k
	return b
}

// Workers sets the number of concurrent row workers.
// Default: 1 (sequential baseline).
func (b Builder) Workers(n int) Builder {
	b.workers = n
	return b
}

// ProgressEvery sets the candidate cadence of progress events.
// Default: 10,000.
func (b Builder) ProgressEvery(n uint64) Builder {
	b.progressEvery = n
	return b
}

// Logger sets the structured logger for search diagnostics.
func (b Builder) Logger(l *Logger) Builder {
	b.logger = l
	return b
}

// Metrics sets the metrics collector.
func (b Builder) Metrics(m MetricsCollector) Builder {
	b.metrics = m
	return b
}

// Build validates the configuration and returns the Finder.
func (b Builder) Build() (*Finder, error) {
	return New(b.exponent, b.limit,
		WithWorkers(b.workers),
		WithProgressEvery(b.progressEvery),
		WithLogger(b.logger),
		WithMetrics(b.metrics),
	)
}

// MustBuild is Build, panicking on invalid parameters.
// Use this only in tests or when inputs were already validated.
func (b Builder) MustBuild() *Finder {
	f, err := b.Build()
	if err != nil {
		panic(err)
	}
	return f
}
