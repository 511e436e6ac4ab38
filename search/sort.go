package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"Cassels/results"
)

var sortCmd = &cobra.Command{
	Use:   "sort IN [OUT]",
	Short: "Sort a result file by modulus and then by exponents",
	Long: `Sorts the lines of a result file by modulus and then lexicographically by
exponent tuple. The output is written to OUT, which may be IN itself, or to
standard output. Sorting a sorted file leaves it unchanged.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: sortResults,
}

func sortResults(cmd *cobra.Command, args []string) error {
	// read everything first so that OUT may name the input
	txt, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	if len(args) == 1 {
		return results.Sort(bytes.NewReader(txt), cmd.OutOrStdout())
	}

	var sorted bytes.Buffer
	if err := results.Sort(bytes.NewReader(txt), &sorted); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	if err := os.WriteFile(args[1], sorted.Bytes(), 0o644); err != nil {
		return err
	}
	logger.Info("sorted results", zap.String("in", args[0]), zap.String("out", args[1]))
	return nil
}
