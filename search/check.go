package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"Cassels/cassels"
	"Cassels/common"
	"Cassels/results"
)

var checkCutoff string

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Re-run every filter on the cases in a result file",
	Long: `Reads a result file and runs each case through the full filter cascade again,
reporting every case that one of the filters would have rejected.`,
	Args: cobra.ExactArgs(1),
	RunE: checkResults,
}

func init() {
	checkCmd.Flags().StringVar(&checkCutoff, "cutoff", common.DefaultCutoff, "house squared cutoff the file was produced with")
}

func checkResults(cmd *cobra.Command, args []string) error {
	cutoff, err := common.DecodeCutoff(checkCutoff)
	if err != nil {
		return err
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)
	records, err := results.Read(f)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	checker, err := cassels.NewChecker(cutoff.InexactFloat64())
	if err != nil {
		return err
	}
	bad := 0
	for _, r := range records {
		stage, err := checker.Check(r)
		if err != nil {
			return err
		}
		if stage != cassels.Survived {
			bad++
			logger.Warn("case should have been rejected",
				zap.Stringer("case", r),
				zap.Stringer("stage", stage),
			)
		}
	}
	if bad > 0 {
		return fmt.Errorf("%d of %d cases fail a filter", bad, len(records))
	}
	logger.Info("all cases pass", zap.Int("cases", len(records)), zap.Stringer("cutoff", cutoff))
	return nil
}
