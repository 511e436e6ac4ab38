package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"Cassels/cassels"
	"Cassels/common"
	"Cassels/results"
)

var runOpts struct {
	config     string
	runs       []string
	cutoff     string
	threads    int
	tables     string
	output     string
	cpuProfile string
	memProfile string
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Search one or more (n, L) pairs",
	Long: `Searches each n:L pair in turn, writing the angle table of every new level to
the table file and every surviving case to the result file.

Example:
  search run --run 70:5 --run 420:6 --cutoff 5.01`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runOpts.config, "config", "", "YAML file with runs, cutoff and file names")
	f.StringArrayVar(&runOpts.runs, "run", nil, "n:L pair to search, may be repeated")
	f.StringVar(&runOpts.cutoff, "cutoff", common.DefaultCutoff, "reject cases with house squared at or above this value")
	f.IntVar(&runOpts.threads, "threads", runtime.NumCPU(), "number of partitions searched at once")
	f.StringVar(&runOpts.tables, "tables", "tables.txt", "file receiving the sin/cos tables")
	f.StringVar(&runOpts.output, "output", "results.txt", "file receiving the surviving cases")
	f.StringVar(&runOpts.cpuProfile, "cpuprofile", "", "write cpu profile to file")
	f.StringVar(&runOpts.memProfile, "memprofile", "", "write memory profile to file")
}

// applyConfig fills in every option not given on the command line from the
// configuration file.
func applyConfig(cmd *cobra.Command) error {
	if runOpts.config == "" {
		return nil
	}
	config, err := common.LoadConfig(runOpts.config)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	if !f.Changed("run") {
		for _, run := range config.Runs {
			runOpts.runs = append(runOpts.runs, run.String())
		}
	}
	if !f.Changed("cutoff") && config.Cutoff != "" {
		runOpts.cutoff = config.Cutoff
	}
	if !f.Changed("threads") && config.Threads > 0 {
		runOpts.threads = config.Threads
	}
	if !f.Changed("tables") && config.Tables != "" {
		runOpts.tables = config.Tables
	}
	if !f.Changed("output") && config.Output != "" {
		runOpts.output = config.Output
	}
	return nil
}

func runSearch(cmd *cobra.Command, args []string) (err error) {
	if err := applyConfig(cmd); err != nil {
		return err
	}
	runs, err := common.DecodeRuns(runOpts.runs)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		return errors.New("nothing to search, give at least one --run n:L")
	}
	cutoff, err := common.DecodeCutoff(runOpts.cutoff)
	if err != nil {
		return err
	}

	if runOpts.cpuProfile != "" {
		f, err := os.Create(runOpts.cpuProfile)
		if err != nil {
			return err
		}
		defer func(f *os.File) {
			_ = f.Close()
		}(f)
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}
	defer func() {
		if runOpts.memProfile != "" {
			f, ferr := os.Create(runOpts.memProfile)
			if ferr != nil {
				logger.Error("memory profile", zap.Error(ferr))
				return
			}
			runtime.GC()
			if ferr := pprof.WriteHeapProfile(f); ferr != nil {
				logger.Error("memory profile", zap.Error(ferr))
			}
			_ = f.Close()
		}
	}()

	tablesFile, err := os.Create(runOpts.tables)
	if err != nil {
		return fmt.Errorf("creating table file: %w", err)
	}
	defer closeFile(tablesFile, &err)
	outputFile, err := os.Create(runOpts.output)
	if err != nil {
		return fmt.Errorf("creating result file: %w", err)
	}
	defer closeFile(outputFile, &err)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting search",
		zap.Strings("runs", runOpts.runs),
		zap.Stringer("cutoff", cutoff),
		zap.Int("threads", runOpts.threads),
		zap.String("tables", runOpts.tables),
		zap.String("output", runOpts.output),
	)

	tables := bufio.NewWriter(tablesFile)
	sink := results.NewWriter(outputFile)
	search := cassels.Search{
		Runs:    runs,
		Cutoff:  cutoff.InexactFloat64(),
		Threads: runOpts.threads,
		Logger:  logger,
	}
	t0 := time.Now()
	tally, err := search.Execute(ctx, tables, sink)
	if ferr := tables.Flush(); err == nil && ferr != nil {
		err = fmt.Errorf("flushing table file: %w", ferr)
	}
	if err != nil {
		return err
	}
	logger.Info("search complete",
		zap.Int("survivors", sink.Lines()),
		zap.Duration("elapsed", time.Since(t0)),
		zap.Object("tally", tally),
	)
	return nil
}

func closeFile(f *os.File, err *error) {
	if cerr := f.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("closing %s: %w", f.Name(), cerr)
	}
}
