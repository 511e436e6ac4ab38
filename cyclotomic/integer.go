package cyclotomic

// Integer is the cyclotomic integer Σ ζ_n^e over its exponents, where n is the
// level of the table. Repeated exponents are meaningful. An exponent equal to
// the level marks a slot with no summand and is skipped.
type Integer struct {
	Exponents []uint32
	Table     *AngleTable
}

// Level returns n.
func (c Integer) Level() uint32 {
	return c.Table.level
}

// conjugateSquared returns |σ_k(c)|² where σ_k maps ζ_n to ζ_n^k. The sines and
// cosines are summed first and squared at the end.
func (c Integer) conjugateSquared(k uint32) float64 {
	n := uint64(c.Table.level)
	sinSum := 0.0
	cosSum := 0.0
	for _, e := range c.Exponents {
		if uint64(e) == n {
			continue
		}
		sc := c.Table.entries[uint64(k)*uint64(e)%n]
		sinSum += sc.Sin
		cosSum += sc.Cos
	}
	return cosSum*cosSum + sinSum*sinSum
}

// HouseSquared returns the square of the house of c, the largest |σ(c)|² over
// the Galois conjugates σ. It is 0 when c has no summands.
func (c Integer) HouseSquared() float64 {
	maxHouseSquared := 0.0
	for _, k := range c.Table.units {
		if h := c.conjugateSquared(k); h > maxHouseSquared {
			maxHouseSquared = h
		}
	}
	return maxHouseSquared
}

// CompareHouseSquared reports whether every conjugate has |σ(c)|² < cutoff. It
// stops at the first conjugate that reaches the cutoff, so it is cheaper than
// HouseSquared() < cutoff for the cases that fail.
func (c Integer) CompareHouseSquared(cutoff float64) bool {
	for _, k := range c.Table.units {
		if c.conjugateSquared(k) >= cutoff {
			return false
		}
	}
	return true
}

// Trim drops trailing slots equal to the sentinel n. Tuples are non-decreasing
// after their leading exponents, so sentinels can only appear at the end.
func Trim(exponents []uint32, n uint32) []uint32 {
	for len(exponents) > 0 && exponents[len(exponents)-1] == n {
		exponents = exponents[:len(exponents)-1]
	}
	return exponents
}
