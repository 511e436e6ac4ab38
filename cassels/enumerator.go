package cassels

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"Cassels/cyclotomic"
	"Cassels/results"
)

// cancelCheck is how many tuples a worker examines between context checks.
const cancelCheck = 1 << 12

// Config describes a single run over one modulus.
type Config struct {
	// Modulus is doubled if odd.
	Modulus uint32
	// MaxLen is the largest tuple length searched; every length from 3 up is covered.
	MaxLen  int
	// Cutoff rejects any tuple with a conjugate of squared modulus >= Cutoff.
	Cutoff  float64
	// Threads bounds the number of partitions evaluated at once. Zero means runtime.NumCPU().
	Threads int
	Logger  *zap.Logger
}

// Enumerator generates the canonical tuples for one (n, L) and evaluates them
// in parallel, one worker per leading pair (j2, j3).
type Enumerator struct {
	filter  *Filter
	maxLen  int
	threads int
	logger  *zap.Logger
}

func NewEnumerator(cfg Config) (*Enumerator, error) {
	params, err := NewParams(cfg.Modulus)
	if err != nil {
		return nil, err
	}
	if cfg.MaxLen < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, cfg.MaxLen)
	}
	filter, err := NewFilter(params, cfg.Cutoff)
	if err != nil {
		return nil, err
	}
	e := &Enumerator{
		filter:  filter,
		maxLen:  cfg.MaxLen,
		threads: cfg.Threads,
		logger:  cfg.Logger,
	}
	if e.threads <= 0 {
		e.threads = runtime.NumCPU()
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	return e, nil
}

func (e *Enumerator) Params() Params {
	return e.filter.Params
}

func (e *Enumerator) Table() *cyclotomic.AngleTable {
	return e.filter.Table
}

func (e *Enumerator) Filter() *Filter {
	return e.filter
}

// Partitions returns the leading exponents j3 searched under j2, those in
// [0, n) with gcd(j3, n) >= j2.
func (e *Enumerator) Partitions(j2 uint32) []uint32 {
	return e.filter.Admissible(j2, 0)
}

// Run evaluates every partition and sends survivors to sink. Batches run one
// proper divisor j2 at a time; the sink is flushed after each batch, so a
// failure leaves the complete output of earlier batches behind.
func (e *Enumerator) Run(ctx context.Context, sink Sink) (Tally, error) {
	var total Tally
	t0 := time.Now()
	n := e.filter.N
	for _, j2 := range e.filter.ProperDivisors() {
		tally, err := e.batch(ctx, j2, sink)
		total.Add(tally)
		if err != nil {
			return total, fmt.Errorf("n = %d, j2 = %d: %w", n, j2, err)
		}
		if err := sink.Flush(); err != nil {
			return total, fmt.Errorf("n = %d, j2 = %d: %w", n, j2, err)
		}
		e.logger.Info("finished batch",
			zap.Uint32("n", n),
			zap.Uint32("j2", j2),
			zap.Uint64("survivors", tally.Survivors()),
		)
	}
	e.logger.Info("finished modulus",
		zap.Uint32("n", n),
		zap.Int("maxLen", e.maxLen),
		zap.Float64("cutoff", e.filter.Cutoff),
		zap.Duration("elapsed", time.Since(t0)),
		tallyField(total),
	)
	return total, nil
}

// batch runs the workers for every j3 under j2 and collects their survivors on
// the calling goroutine.
func (e *Enumerator) batch(ctx context.Context, j2 uint32, sink Sink) (Tally, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	partitions := e.Partitions(j2)
	tallies := make([]Tally, len(partitions))
	found := make(chan results.Record, 2*e.threads)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.threads)
	done := make(chan error, 1)
	go func() {
		for i, j3 := range partitions {
			g.Go(func() error {
				return e.work(gctx, j2, j3, found, &tallies[i])
			})
		}
		done <- g.Wait()
		close(found)
	}()

	collector := NewCollector(sink)
	err := collector.Drain(found)
	if err != nil {
		cancel()
		for range found {
		}
	}
	if werr := <-done; err == nil {
		err = werr
	}

	var tally Tally
	for _, t := range tallies {
		tally.Add(t)
	}
	return tally, err
}

// work evaluates every tuple [0, j2, j3, ...] of length 3 to MaxLen whose
// trailing exponents are admissible values >= j3 in non-decreasing order.
func (e *Enumerator) work(ctx context.Context, j2, j3 uint32, found chan<- results.Record, tally *Tally) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n := e.filter.N
	values := e.filter.Admissible(j2, j3)
	tuple := make([]uint32, e.maxLen)
	tuple[0], tuple[1], tuple[2] = 0, j2, j3

	for length := 3; length <= e.maxLen; length++ {
		for tail := range cyclotomic.CombinationsWithReplacement(values, length-3) {
			exponents := tuple[:length]
			copy(exponents[3:], tail)

			stage := e.filter.Reject(exponents)
			tally.Record(stage)
			if stage == Survived {
				select {
				case found <- results.Record{Level: n, Exponents: slices.Clone(exponents)}:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			if tally.Checked%cancelCheck == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
		}
	}
	e.logger.Debug("checked cases",
		zap.Uint32("n", n),
		zap.Uint32("j2", j2),
		zap.Uint32("j3", j3),
		tallyField(*tally),
	)
	return nil
}
