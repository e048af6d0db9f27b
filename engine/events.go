package engine

import (
	"fmt"
	"math/big"
	"time"
)

// BestRecord is the best near miss observed so far: the candidate pair, the
// resolved nearer power root, and the miss magnitudes.
type BestRecord struct {
	// X, Y are the candidate bases.
	X, Y int64

	// Z is the root of the nearer power: the bracketing z when the lower
	// power won the tie-break, z+1 otherwise.
	Z *big.Int

	// Sum is x**n + y**n.
	Sum *big.Int

	// AbsoluteMiss is the distance from Sum to Z**n.
	AbsoluteMiss *big.Int

	// RelativeMiss is AbsoluteMiss / Sum, the quantity the search minimizes.
	RelativeMiss float64

	// CloserToLower reports which side of the bracket won.
	CloserToLower bool

	// Exact reports a zero miss (sum is itself a perfect power).
	Exact bool
}

// EventKind discriminates the events a search emits.
type EventKind int

const (
	// EventNewBest is emitted whenever the running best improves.
	EventNewBest EventKind = iota

	// EventProgress is emitted every ProgressEvery candidates.
	EventProgress

	// EventComplete is the final event of every successful search.
	EventComplete
)

func (k EventKind) String() string {
	switch k {
	case EventNewBest:
		return "NewBest"
	case EventProgress:
		return "Progress"
	case EventComplete:
		return "Complete"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Event is a structured notification from a running search. The driver
// produces events lazily; formatting them is the consumer's business.
type Event interface {
	Kind() EventKind
}

// NewBestEvent reports an improvement of the running best record.
type NewBestEvent struct {
	Record  BestRecord
	Checked uint64
	Total   uint64
}

// Kind implements Event.
func (NewBestEvent) Kind() EventKind { return EventNewBest }

// ProgressEvent reports cumulative progress at the configured cadence,
// independent of whether the best improved.
type ProgressEvent struct {
	Checked uint64
	Total   uint64
	Elapsed time.Duration

	// BestRelativeMiss is the current best, +Inf before the first candidate.
	BestRelativeMiss float64
}

// Kind implements Event.
func (ProgressEvent) Kind() EventKind { return EventProgress }

// CompleteEvent closes the stream. Record is nil only when the enumeration
// range was empty and no candidate was ever evaluated.
type CompleteEvent struct {
	Record  *BestRecord
	Checked uint64
	Elapsed time.Duration
}

// Kind implements Event.
func (CompleteEvent) Kind() EventKind { return EventComplete }
