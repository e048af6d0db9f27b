// Package nearmiss searches for near misses of Fermat's Last Theorem.
//
// For a fixed exponent n (3 <= n <= 11) and bound k, the search enumerates
// every pair (x, y) with 10 <= x, y <= k and measures how close
// x^n + y^n lands to a perfect n-th power z^n. The pair with the smallest
// relative miss — the absolute distance divided by the sum — is the result.
// All arithmetic is arbitrary precision, so any bound is safe.
//
// # Quick Start (Fluent API)
//
//	finder, err := nearmiss.Search(3).
//	    Limit(500).
//	    Workers(4).
//	    Build()
//	if err != nil {
//	    panic(err)
//	}
//
//	result, err := finder.Run(ctx)
//
// # Streaming
//
// A search produces a lazy sequence of structured events; consumers render
// them however they like and may stop early:
//
//	for event, err := range finder.Stream(ctx) {
//	    if err != nil {
//	        return err
//	    }
//	    switch ev := event.(type) {
//	    case nearmiss.NewBestEvent:
//	        fmt.Printf("new best: %d^n + %d^n near %s^n\n", ev.Record.X, ev.Record.Y, ev.Record.Z)
//	    case nearmiss.CompleteEvent:
//	        fmt.Printf("done after %d candidates\n", ev.Checked)
//	    }
//	}
//
// # Parallel search
//
// Workers(n) with n > 1 spreads grid rows across a worker set. The final
// record is identical to the sequential run; only event interleaving
// differs. The default is the baseline sequential enumeration.
package nearmiss
