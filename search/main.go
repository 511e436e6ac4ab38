package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

/*
Searches for sums of roots of unity with small house that are not accounted for
by Cassels's theorem.

For each (n, L) the search looks at every canonical tuple [0, j2, j3, ...] of at
most L exponents modulo n, discards the ones that are conjugate to another case,
contain a vanishing sum of roots of unity or match one of the forms in the
theorem, and keeps those whose conjugates all have squared absolute value below
the cutoff. What remains is written to the result file for inspection by hand.
*/

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "search",
	Short:         "Exhaustive search over small sums of roots of unity",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every finished partition")
	rootCmd.AddCommand(runCmd, sortCmd, checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
