package cassels

import (
	"fmt"

	"Cassels/cyclotomic"
)

// Stage names a step of the filter cascade. Stages run in the order declared
// here, cheapest first, and the first stage that matches rejects the tuple.
type Stage int

const (
	Survived Stage = iota
	Conjugation
	HalfTurn
	ThirdRoot
	FifthRoot
	House
	CasselsForm2
	CasselsForm3
	SeventhRoot

	numStages
)

var stageNames = [numStages]string{
	Survived:     "survived",
	Conjugation:  "conjugation",
	HalfTurn:     "half-turn",
	ThirdRoot:    "zeta3",
	FifthRoot:    "zeta5",
	House:        "house",
	CasselsForm2: "cassels-form-2",
	CasselsForm3: "cassels-form-3",
	SeventhRoot:  "zeta7",
}

func (s Stage) String() string {
	if s < 0 || s >= numStages {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return stageNames[s]
}

// Filter runs the cascade for one level. It holds only values that are never
// modified, so one Filter is shared by every worker of a run.
type Filter struct {
	Params
	Table  *cyclotomic.AngleTable
	Cutoff float64
}

// NewFilter builds the angle table for p.N.
func NewFilter(p Params, cutoff float64) (*Filter, error) {
	if !(cutoff > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCutoff, cutoff)
	}
	table, err := cyclotomic.NewAngleTable(p.N)
	if err != nil {
		return nil, err
	}
	return &Filter{Params: p, Table: table, Cutoff: cutoff}, nil
}

// Reject returns the first stage that discards the tuple, or Survived. Slots
// holding the sentinel N are trimmed first and take no part in any stage.
func (f *Filter) Reject(exponents []uint32) Stage {
	l := cyclotomic.Trim(exponents, f.N)

	switch {
	case f.conjugate(l):
		return Conjugation
	case f.halfTurn(l):
		return HalfTurn
	case f.N3 != 0 && f.thirdRoot(l):
		return ThirdRoot
	case f.N5 != 0 && chain(l, f.N5, 3):
		return FifthRoot
	case !(cyclotomic.Integer{Exponents: l, Table: f.Table}).CompareHouseSquared(f.Cutoff):
		return House
	case len(l) == 3 && f.form2(l):
		return CasselsForm2
	case f.N5 != 0 && len(l) == 4 && f.form3(l):
		return CasselsForm3
	case f.N7 != 0 && chain(l, f.N7, 4):
		return SeventhRoot
	}
	return Survived
}

// conjugate keeps one of each pair of tuples exchanged by complex conjugation.
func (f *Filter) conjugate(l []uint32) bool {
	if len(l) < 3 {
		return false
	}
	return l[2]+l[len(l)-1] > f.N+l[1]
}

// halfTurn finds two roots of unity differing by a factor of -1.
func (f *Filter) halfTurn(l []uint32) bool {
	for a := range l {
		for b := 0; b < a; b++ {
			if l[a] == l[b]+f.N2 {
				return true
			}
		}
	}
	return false
}

// thirdRoot finds two roots of unity differing by a factor of zeta_3 or zeta_3^2.
func (f *Filter) thirdRoot(l []uint32) bool {
	for a := range l {
		for b := 0; b < a; b++ {
			if l[a] == l[b]+f.N3 || l[a] == l[b]+2*f.N3 {
				return true
			}
		}
	}
	return false
}

// chain finds size exponents l[a] > l[b] > ... taken in generation order
// whose consecutive differences are all multiples of step. Three such roots
// with step n/5 or four with step n/7 differ by powers of zeta_5 or zeta_7.
func chain(l []uint32, step uint32, size int) bool {
	var link func(a, depth int) bool
	link = func(a, depth int) bool {
		if depth == size {
			return true
		}
		for b := 0; b < a; b++ {
			if l[a] > l[b] && (l[a]-l[b])%step == 0 && link(b, depth+1) {
				return true
			}
		}
		return false
	}
	for a := range l {
		if link(a, 1) {
			return true
		}
	}
	return false
}

// form2 recognizes length three cases of form (2) in Cassels's theorem.
func (f *Filter) form2(l []uint32) bool {
	n, n2 := int64(f.N), int64(f.N2)
	l1, l2 := int64(l[1]), int64(l[2])
	return l2 == n2-l1 ||
		l2 == n2+2*l1 ||
		(2*l2)%n == n2+l1
}

// form3 recognizes length four cases of form (3) in Cassels's theorem.
// Differences are taken as signed integers; l[1] may exceed l[2].
func (f *Filter) form3(l []uint32) bool {
	n, n5 := int64(f.N), int64(f.N5)
	for _, t := range [3][3]int{{1, 2, 3}, {2, 1, 3}, {3, 1, 2}} {
		i, i1, i2 := t[0], t[1], t[2]
		d0 := int64(l[i]) - int64(l[0])
		d1 := int64(l[i2]) - int64(l[i1])
		if d0%n5 == 0 &&
			d1%n5 == 0 &&
			d0 != d1 &&
			int64(l[1])-int64(l[0])+d1 != n {
			return true
		}
	}
	return false
}
