// Command nearmiss is the interactive console for the near-miss search.
//
// Run without flags for the prompted session; -n and -k skip the prompts
// for scripted use.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fermatlab/nearmiss"
)

var (
	flagPower         int
	flagLimit         int64
	flagWorkers       int
	flagProgressEvery uint64
	flagLogLevel      string
	flagJSONLogs      bool
	flagNoPause       bool
)

var rootCmd = &cobra.Command{
	Use:   "nearmiss",
	Short: "Search for near misses of Fermat's Last Theorem",
	Long: `nearmiss searches for "near misses" of Fermat's Last Theorem, which
states that there are no positive integers x, y, and z such that
x^n + y^n = z^n for any n > 2.

For a chosen power n and upper limit k, every pair (x, y) with
10 <= x, y <= k is checked for how close x^n + y^n lands to a perfect
n-th power z^n. The pair with the smallest relative miss wins.

Without -n and -k the values are prompted interactively.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().IntVarP(&flagPower, "power", "n", 0, "power to use, 2 < n < 12 (prompted when omitted)")
	rootCmd.Flags().Int64VarP(&flagLimit, "limit", "k", 0, "upper limit for x and y, k > 10 (prompted when omitted)")
	rootCmd.Flags().IntVar(&flagWorkers, "workers", 1, "concurrent search workers (1 = sequential)")
	rootCmd.Flags().Uint64Var(&flagProgressEvery, "progress-every", 10000, "candidates between progress updates")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "warn", "diagnostic log level (debug|info|warn|error)")
	rootCmd.Flags().BoolVar(&flagJSONLogs, "json-logs", false, "emit diagnostics as JSON")
	rootCmd.Flags().BoolVar(&flagNoPause, "no-pause", false, "skip the final keypress pause")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())

	printBanner(out)

	// Flags win; anything missing is prompted with the validation loop.
	interactive := false

	n := flagPower
	if n == 0 {
		interactive = true
		v, err := promptInt(in, out, "\nEnter n (power to use, 2 < n < 12): ", validatePower)
		if err != nil {
			return err
		}
		n = v
	} else if err := validatePower(n); err != nil {
		return fmt.Errorf("invalid --power: %w", err)
	}

	k := flagLimit
	if k == 0 {
		interactive = true
		v, err := promptInt(in, out, "Enter k (upper limit for x and y, k > 10): ", validateLimit)
		if err != nil {
			return err
		}
		k = int64(v)
	} else if err := validateLimit(int(k)); err != nil {
		return fmt.Errorf("invalid --limit: %w", err)
	}

	finder, err := nearmiss.Search(n).
		Limit(k).
		Workers(flagWorkers).
		ProgressEvery(flagProgressEvery).
		Logger(buildLogger()).
		Build()
	if err != nil {
		return err
	}

	if err := renderSearch(cmd.Context(), out, finder); err != nil {
		return err
	}

	if interactive && !flagNoPause {
		fmt.Fprint(out, "\nPress Enter to exit...")
		_, _ = in.ReadString('\n')
	}
	return nil
}

func buildLogger() *nearmiss.Logger {
	var level slog.Level
	switch flagLogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	if flagJSONLogs {
		return nearmiss.NewJSONLogger(level)
	}
	return nearmiss.NewTextLogger(level)
}

func validatePower(n int) error {
	if n <= 2 || n >= 12 {
		return fmt.Errorf("n must be between 3 and 11 inclusive")
	}
	return nil
}

func validateLimit(k int) error {
	if k <= 10 {
		return fmt.Errorf("k must be greater than 10")
	}
	return nil
}
