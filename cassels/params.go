package cassels

import (
	"errors"
	"fmt"
	"slices"

	"modernc.org/mathutil"
)

var (
	// ErrInvalidModulus is returned for n = 0.
	ErrInvalidModulus = errors.New("cassels: modulus must be positive")
	// ErrInvalidLength is returned for tuple lengths below 3.
	ErrInvalidLength = errors.New("cassels: tuple length must be at least 3")
	// ErrInvalidCutoff is returned for a house squared cutoff that is not positive.
	ErrInvalidCutoff = errors.New("cassels: cutoff must be positive")
)

// Params bundles the level and the quotients used by the root of unity
// filters. N3, N5 and N7 are zero when 3, 5 or 7 does not divide N, which
// switches the corresponding filter off.
type Params struct {
	N  uint32
	N2 uint32
	N3 uint32
	N5 uint32
	N7 uint32
}

// NewParams normalizes n0 to an even level, doubling it if odd, and derives
// the quotients.
func NewParams(n0 uint32) (Params, error) {
	if n0 == 0 {
		return Params{}, ErrInvalidModulus
	}
	n := n0
	if n%2 != 0 {
		n = 2 * n0
	}
	p := Params{N: n, N2: n / 2}
	if n%3 == 0 {
		p.N3 = n / 3
	}
	if n%5 == 0 {
		p.N5 = n / 5
	}
	if n%7 == 0 {
		p.N7 = n / 7
	}
	return p, nil
}

func (p Params) String() string {
	return fmt.Sprintf("n = %d (n/2 = %d, n/3 = %d, n/5 = %d, n/7 = %d)", p.N, p.N2, p.N3, p.N5, p.N7)
}

// ProperDivisors returns the divisors d of N with 1 <= d < N, ascending.
func (p Params) ProperDivisors() []uint32 {
	divisors := []uint32{1}
	for _, term := range mathutil.FactorInt(p.N) {
		current := len(divisors)
		power := uint32(1)
		for i := uint32(0); i < term.Power; i++ {
			power *= term.Prime
			for _, d := range divisors[:current] {
				divisors = append(divisors, d*power)
			}
		}
	}
	slices.Sort(divisors)
	return divisors[:len(divisors)-1]
}

// Admissible returns the exponents v in [from, N) allowed after leading
// exponent j2, those with gcd(v, N) >= j2. For j2 = 1 every value is allowed.
func (p Params) Admissible(j2, from uint32) []uint32 {
	var values []uint32
	for v := from; v < p.N; v++ {
		if j2 == 1 || mathutil.GCDUint32(v, p.N) >= j2 {
			values = append(values, v)
		}
	}
	return values
}
