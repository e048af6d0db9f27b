package engine

import (
	"io"
	"log/slog"
)

// Options configures a search Driver.
type Options struct {
	// Workers is the number of concurrent row workers. 1 (the default)
	// runs the baseline sequential enumeration.
	Workers int

	// ProgressEvery is the candidate cadence of ProgressEvents.
	ProgressEvery uint64

	// Logger receives structured diagnostics. Defaults to a discarding
	// logger.
	Logger *slog.Logger

	// Metrics collects operational counters. Defaults to a no-op collector.
	Metrics MetricsCollector
}

// DefaultOptions are the Options applied before any functional overrides.
var DefaultOptions = Options{
	Workers:       1,
	ProgressEvery: 10000,
}

// WithWorkers sets the number of concurrent row workers.
// Values below 1 fall back to the sequential default.
func WithWorkers(n int) func(*Options) {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithProgressEvery sets the candidate cadence of progress events.
// Zero falls back to the default of 10,000.
func WithProgressEvery(n uint64) func(*Options) {
	return func(o *Options) {
		o.ProgressEvery = n
	}
}

// WithLogger sets the structured logger for search diagnostics.
func WithLogger(l *slog.Logger) func(*Options) {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m MetricsCollector) func(*Options) {
	return func(o *Options) {
		o.Metrics = m
	}
}

func (o *Options) applyDefaults() {
	if o.Workers < 1 {
		o.Workers = 1
	}
	if o.ProgressEvery == 0 {
		o.ProgressEvery = DefaultOptions.ProgressEvery
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.Metrics == nil {
		o.Metrics = noopMetrics{}
	}
}
