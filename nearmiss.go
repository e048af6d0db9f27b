package nearmiss

import (
	"context"
	"iter"
	"time"

	"github.com/google/uuid"

	"github.com/fermatlab/nearmiss/engine"
)

// Re-exported engine types so most callers never import the engine package
// directly.
type (
	// Event is a structured notification from a running search.
	Event = engine.Event

	// EventKind discriminates event types.
	EventKind = engine.EventKind

	// NewBestEvent reports an improvement of the running best.
	NewBestEvent = engine.NewBestEvent

	// ProgressEvent reports cumulative progress at the configured cadence.
	ProgressEvent = engine.ProgressEvent

	// CompleteEvent closes every successful stream.
	CompleteEvent = engine.CompleteEvent

	// BestRecord is the winning candidate with its miss magnitudes.
	BestRecord = engine.BestRecord

	// MetricsCollector receives operational counters from a search.
	MetricsCollector = engine.MetricsCollector
)

const (
	// EventNewBest identifies NewBestEvent.
	EventNewBest = engine.EventNewBest
	// EventProgress identifies ProgressEvent.
	EventProgress = engine.EventProgress
	// EventComplete identifies CompleteEvent.
	EventComplete = engine.EventComplete
)

// MinBase is the smallest candidate base; x and y range over [MinBase, k].
const MinBase = engine.MinBase

// Finder is a configured, reusable near-miss search. Each Stream or Run
// call performs a fresh exhaustive search with the same parameters.
type Finder struct {
	exponent int
	limit    int64
	opts     options
}

// New validates the parameters and returns a Finder.
// exponent must lie in [3, 11] and limit must be at least MinBase.
func New(exponent int, limit int64, optFns ...Option) (*Finder, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	// Probe driver: runs the same validation a real search would.
	if _, err := engine.NewDriver(exponent, limit); err != nil {
		return nil, err
	}

	return &Finder{exponent: exponent, limit: limit, opts: opts}, nil
}

// Exponent returns the configured exponent n.
func (f *Finder) Exponent() int { return f.exponent }

// Limit returns the configured upper bound k.
func (f *Finder) Limit() int64 { return f.limit }

// Total returns the number of candidates a full search evaluates.
func (f *Finder) Total() uint64 {
	span := uint64(f.limit - MinBase + 1)
	return span * span
}

// Stream runs the search, yielding events lazily. Each call starts a fresh
// search tagged with its own run ID in the logs.
func (f *Finder) Stream(ctx context.Context) iter.Seq2[Event, error] {
	logger := f.opts.logger.WithRunID(uuid.NewString()).
		WithExponent(f.exponent).
		WithLimit(f.limit)

	d, err := engine.NewDriver(f.exponent, f.limit,
		engine.WithWorkers(f.opts.workers),
		engine.WithProgressEvery(f.opts.progressEvery),
		engine.WithLogger(logger.Logger),
		engine.WithMetrics(f.opts.metrics),
	)
	if err != nil {
		// Parameters were validated in New; reaching this means the Finder
		// was built by hand around the constructor.
		return func(yield func(Event, error) bool) {
			yield(nil, err)
		}
	}

	return d.Stream(ctx)
}

// Result summarizes a completed search.
type Result struct {
	// Best is the winning record, nil only for an empty enumeration.
	Best *BestRecord

	// Checked is the number of candidates evaluated.
	Checked uint64

	// Elapsed is the wall-clock duration of the search.
	Elapsed time.Duration
}

// Run executes the search to completion and returns its summary.
// It is Stream with the event plumbing folded away.
func (f *Finder) Run(ctx context.Context) (*Result, error) {
	var res *Result
	for ev, err := range f.Stream(ctx) {
		if err != nil {
			return nil, err
		}
		if c, ok := ev.(CompleteEvent); ok {
			res = &Result{Best: c.Record, Checked: c.Checked, Elapsed: c.Elapsed}
		}
	}
	return res, nil
}
