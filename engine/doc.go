// Package engine implements the near-miss search driver.
//
// A Driver owns the exhaustive enumeration of the (x, y) candidate grid for
// a fixed exponent n and bound k, calling the pure arith kernel per
// candidate and tracking the smallest relative miss seen so far.
//
// # Event model
//
// The driver does not print anything. It produces a lazy sequence of
// structured events (NewBest, Progress, Complete) via iter.Seq2, and the
// consumer decides how to render them. This keeps the numeric core
// testable against events rather than formatted strings.
//
// # Execution modes
//
// Sequential (default):
//   - Row-major enumeration, single goroutine
//   - Deterministic event order
//
// Parallel (.Workers(n) with n > 1):
//   - Grid partitioned by x-row across a fixed worker set (errgroup)
//   - Mutex-guarded best merge with an atomic fast path
//   - Exact relative-miss ties break by smallest (x, y), so the final
//     record matches the sequential run; event interleaving does not
//
// Every candidate evaluation is pure and independent; the shared best
// record is the only synchronized state.
package engine
