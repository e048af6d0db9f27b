package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/time/rate"

	"github.com/fermatlab/nearmiss"
	"github.com/fermatlab/nearmiss/arith"
)

const rule = "=================================================="

func printBanner(w io.Writer) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Fermat's Last Theorem Near Miss Finder")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "This program searches for 'near misses' of Fermat's Last Theorem,")
	fmt.Fprintln(w, "which states that there are no positive integers x, y, and z such")
	fmt.Fprintln(w, "that x^n + y^n = z^n for any n > 2.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The program will search for values where x^n + y^n is close to z^n.")
}

// renderSearch consumes the event stream and formats it for the console.
// Periodic progress lines are throttled so a tiny --progress-every cannot
// flood the terminal; new bests and the final report always print.
func renderSearch(ctx context.Context, w io.Writer, finder *nearmiss.Finder) error {
	n := finder.Exponent()

	fmt.Fprintf(w, "\nSearching for near misses with n=%d and k=%d...\n", n, finder.Limit())
	fmt.Fprintln(w, "This may take some time depending on the values of n and k.")
	fmt.Fprintln(w, "New best results will be displayed as they are found.")
	fmt.Fprintln(w)

	limiter := rate.NewLimiter(rate.Every(200*time.Millisecond), 1)

	var complete *nearmiss.CompleteEvent
	for ev, err := range finder.Stream(ctx) {
		if err != nil {
			return err
		}

		switch e := ev.(type) {
		case nearmiss.NewBestEvent:
			printNewBest(w, e, n)
		case nearmiss.ProgressEvent:
			if limiter.Allow() {
				printProgress(w, e)
			}
		case nearmiss.CompleteEvent:
			complete = &e
		}
	}

	printFinalReport(w, complete, n)
	return nil
}

func printNewBest(w io.Writer, e nearmiss.NewBestEvent, n int) {
	rec := e.Record

	direction := ">"
	if rec.CloserToLower {
		direction = "<"
	}

	fmt.Fprintln(w, "New best result found!")
	fmt.Fprintf(w, "  x = %d, y = %d, z = %s\n", rec.X, rec.Y, rec.Z)
	fmt.Fprintf(w, "  %d^%d + %d^%d %s %s^%d\n", rec.X, n, rec.Y, n, direction, rec.Z, n)
	fmt.Fprintf(w, "  Absolute miss: %s\n", rec.AbsoluteMiss)
	fmt.Fprintf(w, "  Relative miss: %s\n", percent(rec.RelativeMiss, 10))
	fmt.Fprintf(w, "  Progress: %s/%s combinations checked (%s)\n",
		humanize.Comma(int64(e.Checked)), humanize.Comma(int64(e.Total)), fraction(e.Checked, e.Total))
	fmt.Fprintln(w)
}

func printProgress(w io.Writer, e nearmiss.ProgressEvent) {
	fmt.Fprintf(w, "Progress: %s/%s combinations checked (%s)\n",
		humanize.Comma(int64(e.Checked)), humanize.Comma(int64(e.Total)), fraction(e.Checked, e.Total))
	fmt.Fprintf(w, "Elapsed time: %.2f seconds\n", e.Elapsed.Seconds())
	fmt.Fprintf(w, "Current best relative miss: %s\n", percent(e.BestRelativeMiss, 10))
	fmt.Fprintln(w)
}

func printFinalReport(w io.Writer, complete *nearmiss.CompleteEvent, n int) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "SEARCH COMPLETE")
	fmt.Fprintln(w, rule)

	var (
		checked uint64
		elapsed time.Duration
	)
	if complete != nil {
		checked = complete.Checked
		elapsed = complete.Elapsed
	}

	if complete != nil && complete.Record != nil {
		rec := complete.Record
		fmt.Fprintln(w, "Best near miss found:")
		fmt.Fprintf(w, "  x = %d, y = %d, z = %s\n", rec.X, rec.Y, rec.Z)
		fmt.Fprintf(w, "  %d^%d + %d^%d ≈ %s^%d\n", rec.X, n, rec.Y, n, rec.Z, n)
		fmt.Fprintf(w, "  %d^%d + %d^%d = %s\n", rec.X, n, rec.Y, n, rec.Sum)
		fmt.Fprintf(w, "  %s^%d = %s\n", rec.Z, n, arith.Pow(rec.Z, n))
		fmt.Fprintf(w, "  Absolute miss: %s\n", rec.AbsoluteMiss)
		fmt.Fprintf(w, "  Relative miss: %s\n", percent(rec.RelativeMiss, 10))
	} else {
		fmt.Fprintln(w, "No valid near misses found.")
	}

	fmt.Fprintf(w, "\nTotal time: %.2f seconds\n", elapsed.Seconds())
	fmt.Fprintf(w, "Total combinations checked: %s\n", humanize.Comma(int64(checked)))
}

// percent renders v as a percentage with the given number of decimals,
// e.g. percent(0.0985, 10) == "9.8500000000%".
func percent(v float64, decimals int) string {
	return fmt.Sprintf("%.*f%%", decimals, v*100)
}

// fraction renders checked/total as a two-decimal percentage.
func fraction(checked, total uint64) string {
	if total == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(checked)/float64(total)*100)
}
