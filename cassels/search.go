package cassels

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Run is one (n, L) pair of a search.
type Run struct {
	Modulus uint32 `yaml:"n"`
	MaxLen  int    `yaml:"len"`
}

func (r Run) String() string {
	return fmt.Sprintf("%d:%d", r.Modulus, r.MaxLen)
}

// Search runs each pair in order. The angle table of a level is written to
// tables the first time that level is searched; survivors go to sink.
type Search struct {
	Runs    []Run
	Cutoff  float64
	Threads int
	Logger  *zap.Logger
}

// Execute stops at the first failing run.
func (s Search) Execute(ctx context.Context, tables io.Writer, sink Sink) (Tally, error) {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	var total Tally
	written := map[uint32]bool{}
	for _, run := range s.Runs {
		e, err := NewEnumerator(Config{
			Modulus: run.Modulus,
			MaxLen:  run.MaxLen,
			Cutoff:  s.Cutoff,
			Threads: s.Threads,
			Logger:  logger,
		})
		if err != nil {
			return total, fmt.Errorf("run %v: %w", run, err)
		}
		n := e.Params().N
		logger.Info("starting run", zap.Stringer("run", run), zap.Stringer("params", e.Params()))
		if !written[n] {
			if _, err := e.Table().WriteTo(tables); err != nil {
				return total, fmt.Errorf("run %v: %w", run, err)
			}
			written[n] = true
		}
		tally, err := e.Run(ctx, sink)
		total.Add(tally)
		if err != nil {
			return total, fmt.Errorf("run %v: %w", run, err)
		}
	}
	return total, nil
}
