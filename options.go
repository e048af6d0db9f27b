package nearmiss

type options struct {
	workers       int
	progressEvery uint64
	logger        *Logger
	metrics       MetricsCollector
}

func defaultOptions() options {
	return options{
		workers:       1,
		progressEvery: 10000,
		logger:        NoopLogger(),
		metrics:       NoopMetricsCollector{},
	}
}

// Option configures a Finder at construction time.
type Option func(*options)

// WithWorkers sets the number of concurrent row workers.
// 1 (the default) is the baseline sequential search.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

// WithProgressEvery sets the candidate cadence of progress events.
// Zero keeps the default of 10,000.
func WithProgressEvery(n uint64) Option {
	return func(o *options) {
		if n == 0 {
			return
		}
		o.progressEvery = n
	}
}

// WithLogger sets the structured logger for search diagnostics.
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}
