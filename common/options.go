package common

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"Cassels/cassels"
)

var (
	// ErrInvalidRun is returned for a run that is not of the form "n:L".
	ErrInvalidRun = errors.New("run must look like n:L, for instance 420:6")

	runDecoder = regexp.MustCompile(`^\s*([0-9_]+)\s*:\s*([0-9]+)\s*$`)
)

// DecodeRun parses "n:L". Underscores may group the digits of n, as in 1_260:5.
func DecodeRun(s string) (cassels.Run, error) {
	pieces := runDecoder.FindStringSubmatch(s)
	if pieces == nil {
		return cassels.Run{}, fmt.Errorf("%w: %q", ErrInvalidRun, s)
	}
	n, err := strconv.ParseUint(strings.Replace(pieces[1], "_", "", -1), 10, 32)
	if err != nil || n == 0 {
		return cassels.Run{}, fmt.Errorf("%w: bad modulus in %q", ErrInvalidRun, s)
	}
	length, err := strconv.Atoi(pieces[2])
	if err != nil || length < 3 {
		return cassels.Run{}, fmt.Errorf("%w: length in %q must be at least 3", ErrInvalidRun, s)
	}
	return cassels.Run{Modulus: uint32(n), MaxLen: length}, nil
}

// DecodeRuns parses each of the given runs.
func DecodeRuns(specs []string) ([]cassels.Run, error) {
	runs := make([]cassels.Run, 0, len(specs))
	for _, s := range specs {
		run, err := DecodeRun(s)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// DecodeCutoff parses a positive decimal such as "5.01". The exact decimal is
// kept for reporting; the search itself compares against the nearest float64.
func DecodeCutoff(s string) (decimal.Decimal, error) {
	cutoff, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q: %v", cassels.ErrInvalidCutoff, s, err)
	}
	if !cutoff.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %q", cassels.ErrInvalidCutoff, s)
	}
	return cutoff, nil
}
