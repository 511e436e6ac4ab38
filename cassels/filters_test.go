package cassels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFilter(t *testing.T, n uint32, cutoff float64) *Filter {
	t.Helper()
	p, err := NewParams(n)
	require.NoError(t, err)
	f, err := NewFilter(p, cutoff)
	require.NoError(t, err)
	return f
}

func TestNewFilter_Cutoff(t *testing.T) {
	p, err := NewParams(70)
	require.NoError(t, err)
	for _, cutoff := range []float64{0, -1} {
		_, err := NewFilter(p, cutoff)
		assert.ErrorIs(t, err, ErrInvalidCutoff)
	}
}

func TestReject_Stages(t *testing.T) {
	const loose = 1e9
	cases := []struct {
		name      string
		level     uint32
		cutoff    float64
		exponents []uint32
		stage     Stage
	}{
		{"conjugate pair", 70, 5.1, []uint32{0, 1, 50, 60}, Conjugation},
		{"negatives", 70, 5.1, []uint32{0, 1, 2, 36}, HalfTurn},
		{"zeta3", 42, 5.1, []uint32{0, 1, 15}, ThirdRoot},
		{"zeta5 triple", 70, 5.1, []uint32{0, 1, 15, 29}, FifthRoot},
		{"large house", 70, 5.1, []uint32{0, 1, 2}, House},
		{"form 2", 70, 5.1, []uint32{0, 1, 34}, CasselsForm2},
		{"form 3", 70, loose, []uint32{0, 14, 1, 29}, CasselsForm3},
		{"zeta7 quadruple", 70, loose, []uint32{0, 1, 11, 21, 31}, SeventhRoot},
		{"survivor", 70, 5.1, []uint32{0, 1, 11, 42, 51}, Survived},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFilter(t, c.level, c.cutoff)
			assert.Equal(t, c.stage, f.Reject(c.exponents), "%v", c.exponents)
		})
	}
}

func TestReject_HouseBoundary(t *testing.T) {
	// house squared of [0, 1, 11, 42, 51] at n = 70 is 3
	tuple := []uint32{0, 1, 11, 42, 51}
	assert.Equal(t, Survived, newFilter(t, 70, 3.000001).Reject(tuple))
	assert.Equal(t, House, newFilter(t, 70, 2.999999).Reject(tuple))
}

func TestReject_Sentinel(t *testing.T) {
	f := newFilter(t, 70, 5.1)
	assert.Equal(t, Survived, f.Reject([]uint32{0, 1, 11, 42, 51, 70}))
	assert.Equal(t, Survived, f.Reject([]uint32{0, 1, 11, 42, 51, 70, 70}))
	// padding a length three form keeps it a length three form
	assert.Equal(t, CasselsForm2, f.Reject([]uint32{0, 1, 34, 70, 70}))
	assert.Equal(t, f.Reject([]uint32{0, 1, 2}), f.Reject([]uint32{0, 1, 2, 70}))
}

func TestChain(t *testing.T) {
	assert.True(t, chain([]uint32{0, 10, 20}, 10, 3))
	assert.False(t, chain([]uint32{0, 10, 20}, 10, 4))
	assert.True(t, chain([]uint32{0, 10, 10, 20}, 10, 3))
	assert.True(t, chain([]uint32{0, 1, 11, 21, 31}, 10, 4))
	assert.False(t, chain([]uint32{0, 0, 0, 0}, 10, 3))
	// l[1] above l[2] does not link backwards
	assert.False(t, chain([]uint32{0, 20, 10}, 10, 3))
	assert.False(t, chain(nil, 10, 3))
}

func TestForm3(t *testing.T) {
	f := newFilter(t, 70, 5.1)
	assert.True(t, f.form3([]uint32{0, 14, 1, 29}))
	assert.False(t, f.form3([]uint32{0, 14, 1, 15}))
	assert.False(t, f.form3([]uint32{0, 1, 2, 3}))
}

func TestForm2(t *testing.T) {
	f := newFilter(t, 70, 5.1)
	assert.True(t, f.form2([]uint32{0, 1, 34}))
	assert.True(t, f.form2([]uint32{0, 1, 37}))
	// 2*53 mod 70 = 36 = 35 + 1
	assert.True(t, f.form2([]uint32{0, 1, 53}))
	assert.False(t, f.form2([]uint32{0, 1, 11}))
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "survived", Survived.String())
	assert.Equal(t, "house", House.String())
	assert.Equal(t, "zeta7", SeventhRoot.String())
	assert.Equal(t, "Stage(42)", Stage(42).String())
}

func TestTally(t *testing.T) {
	var a, b Tally
	a.Record(Survived)
	a.Record(House)
	b.Record(House)
	b.Record(Conjugation)
	a.Add(b)
	assert.Equal(t, uint64(4), a.Checked)
	assert.Equal(t, uint64(2), a.Stages[House])
	assert.Equal(t, uint64(1), a.Survivors())
}
