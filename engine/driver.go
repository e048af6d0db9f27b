package engine

import (
	"context"
	"iter"
	"math"
	"math/big"
	"sync/atomic"
	"time"

	"github.com/fermatlab/nearmiss/arith"
)

// MinBase is the smallest candidate base. Both x and y range over
// [MinBase, limit].
const MinBase = 10

const (
	stateNotStarted int32 = iota
	stateRunning
	stateComplete
)

var one = big.NewInt(1)

// Driver exhaustively enumerates the (x, y) candidate grid for a fixed
// exponent and bound, tracking the smallest relative miss. A Driver moves
// through NotStarted -> Running -> Complete exactly once; streaming it a
// second time yields ErrAlreadyRun.
type Driver struct {
	exponent int
	limit    int64
	opts     Options
	state    atomic.Int32
}

// NewDriver validates the search parameters and returns a Driver.
func NewDriver(exponent int, limit int64, optFns ...func(*Options)) (*Driver, error) {
	if exponent < 3 || exponent > 11 {
		return nil, ErrInvalidExponent
	}
	if limit < MinBase {
		return nil, ErrInvalidLimit
	}

	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	opts.applyDefaults()

	return &Driver{exponent: exponent, limit: limit, opts: opts}, nil
}

// Exponent returns the configured exponent n.
func (d *Driver) Exponent() int { return d.exponent }

// Limit returns the configured upper bound k.
func (d *Driver) Limit() int64 { return d.limit }

// Total returns the number of candidates the full grid holds.
func (d *Driver) Total() uint64 {
	span := uint64(d.limit - MinBase + 1)
	return span * span
}

// Stream runs the search and yields its events lazily. The sequence ends
// with a CompleteEvent on success, or with a non-nil error on context
// cancellation or an internal invariant violation. Consumers may break
// early; the search stops between candidates.
func (d *Driver) Stream(ctx context.Context) iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		if !d.state.CompareAndSwap(stateNotStarted, stateRunning) {
			yield(nil, ErrAlreadyRun)
			return
		}
		defer d.state.Store(stateComplete)

		if d.opts.Workers > 1 {
			d.streamParallel(ctx, yield)
			return
		}
		d.streamSequential(ctx, yield)
	}
}

// streamSequential is the baseline single-goroutine enumeration: row-major
// over the grid, strictly-smaller relative miss wins.
func (d *Driver) streamSequential(ctx context.Context, yield func(Event, error) bool) {
	var (
		start   = time.Now()
		total   = d.Total()
		checked uint64
		best    *BestRecord
		bestRel = math.Inf(1)
	)

	for x := int64(MinBase); x <= d.limit; x++ {
		for y := int64(MinBase); y <= d.limit; y++ {
			if err := ctx.Err(); err != nil {
				d.opts.Metrics.RecordSearch(time.Since(start), err)
				yield(nil, err)
				return
			}

			rec, err := d.evaluate(x, y)
			if err != nil {
				d.opts.Logger.Error("candidate evaluation failed", "x", x, "y", y, "error", err)
				d.opts.Metrics.RecordSearch(time.Since(start), err)
				yield(nil, err)
				return
			}
			d.opts.Metrics.RecordCandidate()
			checked++

			if rec.RelativeMiss < bestRel {
				bestRel = rec.RelativeMiss
				best = &rec
				d.logNewBest(rec)
				d.opts.Metrics.RecordNewBest(rec.RelativeMiss)
				if !yield(NewBestEvent{Record: rec, Checked: checked, Total: total}, nil) {
					return
				}
			}

			if checked%d.opts.ProgressEvery == 0 {
				ev := ProgressEvent{
					Checked:          checked,
					Total:            total,
					Elapsed:          time.Since(start),
					BestRelativeMiss: bestRel,
				}
				if !yield(ev, nil) {
					return
				}
			}
		}
	}

	elapsed := time.Since(start)
	d.opts.Metrics.RecordSearch(elapsed, nil)
	d.opts.Logger.Info("search complete",
		"exponent", d.exponent, "limit", d.limit,
		"checked", checked, "elapsed", elapsed)
	yield(CompleteEvent{Record: best, Checked: checked, Elapsed: elapsed}, nil)
}

// evaluate runs the pure kernel for one candidate: sum, bracket, miss, and
// the resolved nearer root.
func (d *Driver) evaluate(x, y int64) (BestRecord, error) {
	sum := arith.SumOfPowers(x, y, d.exponent)
	z := arith.Bracket(sum, d.exponent)

	m, err := arith.EvaluateMiss(x, y, z, d.exponent)
	if err != nil {
		return BestRecord{}, err
	}

	resolved := new(big.Int).Set(z)
	if !m.CloserToLower {
		resolved.Add(resolved, one)
	}

	return BestRecord{
		X:             x,
		Y:             y,
		Z:             resolved,
		Sum:           m.Sum,
		AbsoluteMiss:  m.Absolute,
		RelativeMiss:  m.Relative,
		CloserToLower: m.CloserToLower,
		Exact:         m.Exact,
	}, nil
}

func (d *Driver) logNewBest(rec BestRecord) {
	d.opts.Logger.Debug("new best near miss",
		"x", rec.X, "y", rec.Y, "z", rec.Z.String(),
		"absolute_miss", rec.AbsoluteMiss.String(),
		"relative_miss", rec.RelativeMiss)
	if rec.Exact {
		// By Fermat's Last Theorem this cannot fire for the validated
		// envelope; if it ever does, something upstream is wrong.
		d.opts.Logger.Warn("sum is an exact perfect power",
			"x", rec.X, "y", rec.Y, "z", rec.Z.String())
	}
}
