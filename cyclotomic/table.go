package cyclotomic

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/shopspring/decimal"
	"modernc.org/mathutil"
)

// ErrInvalidLevel is returned when a table is requested for level zero.
var ErrInvalidLevel = errors.New("cyclotomic: level must be positive")

// SinCos holds the sine and cosine of a single root of unity.
type SinCos struct {
	Sin float64
	Cos float64
}

// AngleTable holds sin(2πj/n) and cos(2πj/n) for j = 0..n-1 together with the
// units k of Z/nZ, which index the Galois conjugates ζ_n -> ζ_n^k. A table is
// never modified after construction, so a single instance is shared by all
// workers searching the same level.
type AngleTable struct {
	level   uint32
	entries []SinCos
	units   []uint32
}

// NewAngleTable builds the table for the n-th roots of unity.
func NewAngleTable(n uint32) (*AngleTable, error) {
	if n == 0 {
		return nil, ErrInvalidLevel
	}
	t := &AngleTable{
		level:   n,
		entries: make([]SinCos, n),
	}
	for j := uint32(0); j < n; j++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(j) / float64(n))
		t.entries[j] = SinCos{Sin: sin, Cos: cos}
	}
	for k := uint32(1); k < n; k++ {
		if mathutil.GCDUint32(k, n) == 1 {
			t.units = append(t.units, k)
		}
	}
	return t, nil
}

// Level returns n.
func (t *AngleTable) Level() uint32 {
	return t.level
}

// Len returns the number of entries, which is always the level.
func (t *AngleTable) Len() int {
	return len(t.entries)
}

// At returns the entry for angle 2πj/n. j must be less than the level.
func (t *AngleTable) At(j uint32) SinCos {
	return t.entries[j]
}

// Units returns the k in 1..n-1 with gcd(k, n) = 1 in increasing order. The
// returned slice belongs to the table and must not be modified.
func (t *AngleTable) Units() []uint32 {
	return t.units
}

// WriteTo writes one line "<n> <j> <cos> <sin>" per entry. Values are written
// as the shortest decimal that reads back to the same float64, without an
// exponent.
func (t *AngleTable) WriteTo(w io.Writer) (int64, error) {
	total := int64(0)
	for j, e := range t.entries {
		k, err := fmt.Fprintf(w, "%d %d %s %s\n",
			t.level, j,
			decimal.NewFromFloat(e.Cos).String(),
			decimal.NewFromFloat(e.Sin).String(),
		)
		total += int64(k)
		if err != nil {
			return total, fmt.Errorf("writing angle table for n = %d: %w", t.level, err)
		}
	}
	return total, nil
}
