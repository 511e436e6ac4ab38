package cassels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParams(t *testing.T) {
	_, err := NewParams(0)
	assert.ErrorIs(t, err, ErrInvalidModulus)

	p, err := NewParams(35)
	require.NoError(t, err)
	assert.Equal(t, Params{N: 70, N2: 35, N3: 0, N5: 14, N7: 10}, p)

	p, err = NewParams(420)
	require.NoError(t, err)
	assert.Equal(t, Params{N: 420, N2: 210, N3: 140, N5: 84, N7: 60}, p)

	p, err = NewParams(1)
	require.NoError(t, err)
	assert.Equal(t, Params{N: 2, N2: 1}, p)
}

func TestProperDivisors(t *testing.T) {
	for n, want := range map[uint32][]uint32{
		2:   {1},
		12:  {1, 2, 3, 4, 6},
		70:  {1, 2, 5, 7, 10, 14, 35},
		64:  {1, 2, 4, 8, 16, 32},
		210: {1, 2, 3, 5, 6, 7, 10, 14, 15, 21, 30, 35, 42, 70, 105},
	} {
		p, err := NewParams(n)
		require.NoError(t, err)
		assert.Equal(t, want, p.ProperDivisors(), "n = %d", n)
	}
}

func TestAdmissible(t *testing.T) {
	p, err := NewParams(12)
	require.NoError(t, err)
	assert.Len(t, p.Admissible(1, 0), 12)
	assert.Equal(t, []uint32{5, 6, 7, 8, 9, 10, 11}, p.Admissible(1, 5))
	assert.Equal(t, []uint32{0, 4, 6, 8}, p.Admissible(4, 0))
	assert.Equal(t, []uint32{6, 8}, p.Admissible(4, 5))
	assert.Equal(t, []uint32{0, 6}, p.Admissible(6, 0))
	assert.Empty(t, p.Admissible(6, 7))
}
