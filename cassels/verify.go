package cassels

import (
	"fmt"

	"Cassels/results"
)

// Checker re-runs the cascade on records read back from a result file,
// building one filter per level on demand.
type Checker struct {
	cutoff  float64
	filters map[uint32]*Filter
}

func NewChecker(cutoff float64) (*Checker, error) {
	if !(cutoff > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCutoff, cutoff)
	}
	return &Checker{cutoff: cutoff, filters: map[uint32]*Filter{}}, nil
}

// Check returns the stage that rejects r, or Survived. Records must carry an
// even level, as written by a search.
func (c *Checker) Check(r results.Record) (Stage, error) {
	f, ok := c.filters[r.Level]
	if !ok {
		p, err := NewParams(r.Level)
		if err != nil {
			return Survived, err
		}
		if p.N != r.Level {
			return Survived, fmt.Errorf("%w: level %d is odd", ErrInvalidModulus, r.Level)
		}
		f, err = NewFilter(p, c.cutoff)
		if err != nil {
			return Survived, err
		}
		c.filters[r.Level] = f
	}
	for _, e := range r.Exponents {
		if e > r.Level {
			return Survived, fmt.Errorf("record %v: exponent %d exceeds level", r, e)
		}
	}
	return f.Reject(r.Exponents), nil
}
