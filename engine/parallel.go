package engine

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// bestTracker is the synchronized best record shared by row workers.
// The atomic relative-miss snapshot keeps the common no-improvement path
// lock-free; the mutex serializes actual replacements.
type bestTracker struct {
	relBits atomic.Uint64 // math.Float64bits of the current best relative miss
	mu      sync.Mutex
	best    *BestRecord
}

func newBestTracker() *bestTracker {
	t := &bestTracker{}
	t.relBits.Store(math.Float64bits(math.Inf(1)))
	return t
}

// tryUpdate installs rec if it beats the current best and reports whether
// it did. Strictly smaller relative miss wins; exact float ties break by
// smallest (x, y) so a parallel run resolves them the same way the
// row-major sequential order does.
func (t *bestTracker) tryUpdate(rec BestRecord) bool {
	if rec.RelativeMiss > math.Float64frombits(t.relBits.Load()) {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.best != nil {
		switch {
		case rec.RelativeMiss > t.best.RelativeMiss:
			return false
		case rec.RelativeMiss == t.best.RelativeMiss:
			if rec.X > t.best.X || (rec.X == t.best.X && rec.Y >= t.best.Y) {
				return false
			}
		}
	}

	cp := rec
	t.best = &cp
	t.relBits.Store(math.Float64bits(rec.RelativeMiss))
	return true
}

// snapshot returns the current best record and its relative miss
// (+Inf when nothing has been evaluated yet).
func (t *bestTracker) snapshot() (*BestRecord, float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.best == nil {
		return nil, math.Inf(1)
	}
	return t.best, t.best.RelativeMiss
}

// streamParallel partitions the grid by x-row across Workers goroutines.
// Events are funneled through a channel to preserve the lazy-sequence
// contract; their interleaving is scheduler-dependent, but the final
// record matches the sequential run (see bestTracker.tryUpdate).
func (d *Driver) streamParallel(parent context.Context, yield func(Event, error) bool) {
	start := time.Now()

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var (
		total   = d.Total()
		tracker = newBestTracker()
		checked atomic.Uint64
		events  = make(chan Event, d.opts.Workers*2)
		rows    = make(chan int64)
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(rows)
		for x := int64(MinBase); x <= d.limit; x++ {
			select {
			case rows <- x:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < d.opts.Workers; i++ {
		g.Go(func() error {
			return d.searchRows(gctx, rows, events, tracker, &checked, total, start)
		})
	}

	done := make(chan error, 1)
	go func() {
		err := g.Wait()
		close(events)
		done <- err
	}()

	for ev := range events {
		if !yield(ev, nil) {
			cancel()
			for range events { // unblock senders until the group exits
			}
			<-done
			d.opts.Metrics.RecordSearch(time.Since(start), context.Canceled)
			return
		}
	}

	if err := <-done; err != nil {
		d.opts.Metrics.RecordSearch(time.Since(start), err)
		yield(nil, err)
		return
	}

	best, _ := tracker.snapshot()
	elapsed := time.Since(start)
	d.opts.Metrics.RecordSearch(elapsed, nil)
	d.opts.Logger.Info("search complete",
		"exponent", d.exponent, "limit", d.limit, "workers", d.opts.Workers,
		"checked", checked.Load(), "elapsed", elapsed)
	yield(CompleteEvent{Record: best, Checked: checked.Load(), Elapsed: elapsed}, nil)
}

// searchRows evaluates whole x-rows pulled from rows until the channel
// drains or the context ends.
func (d *Driver) searchRows(ctx context.Context, rows <-chan int64, events chan<- Event, tracker *bestTracker, checked *atomic.Uint64, total uint64, start time.Time) error {
	for x := range rows {
		for y := int64(MinBase); y <= d.limit; y++ {
			if err := ctx.Err(); err != nil {
				return err
			}

			rec, err := d.evaluate(x, y)
			if err != nil {
				d.opts.Logger.Error("candidate evaluation failed", "x", x, "y", y, "error", err)
				return err
			}
			d.opts.Metrics.RecordCandidate()
			n := checked.Add(1)

			if tracker.tryUpdate(rec) {
				d.logNewBest(rec)
				d.opts.Metrics.RecordNewBest(rec.RelativeMiss)
				select {
				case events <- NewBestEvent{Record: rec, Checked: n, Total: total}:
				case <-ctx.Done():
					return ctx.Err()
				}
			}

			if n%d.opts.ProgressEvery == 0 {
				_, rel := tracker.snapshot()
				ev := ProgressEvent{
					Checked:          n,
					Total:            total,
					Elapsed:          time.Since(start),
					BestRelativeMiss: rel,
				}
				select {
				case events <- ev:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
	}
	return nil
}
