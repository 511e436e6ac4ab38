package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Cassels/cassels"
)

func TestDecodeRun(t *testing.T) {
	run, err := DecodeRun("420:6")
	require.NoError(t, err)
	assert.Equal(t, cassels.Run{Modulus: 420, MaxLen: 6}, run)

	run, err = DecodeRun(" 1_260 : 5 ")
	require.NoError(t, err)
	assert.Equal(t, cassels.Run{Modulus: 1260, MaxLen: 5}, run)

	for _, bad := range []string{"", "420", "420:2", "0:5", "a:5", "420:6:1", "99999999999:4"} {
		_, err := DecodeRun(bad)
		assert.ErrorIs(t, err, ErrInvalidRun, bad)
	}
}

func TestDecodeRuns(t *testing.T) {
	runs, err := DecodeRuns([]string{"70:5", "35:4"})
	require.NoError(t, err)
	assert.Equal(t, []cassels.Run{{Modulus: 70, MaxLen: 5}, {Modulus: 35, MaxLen: 4}}, runs)

	_, err = DecodeRuns([]string{"70:5", "oops"})
	assert.ErrorIs(t, err, ErrInvalidRun)
}

func TestDecodeCutoff(t *testing.T) {
	cutoff, err := DecodeCutoff("5.01")
	require.NoError(t, err)
	assert.True(t, cutoff.Equal(decimal.RequireFromString("5.01")))
	assert.Equal(t, "5.01", cutoff.String())
	assert.Equal(t, 5.01, cutoff.InexactFloat64())

	for _, bad := range []string{"", "five", "0", "-5.1"} {
		_, err := DecodeCutoff(bad)
		assert.ErrorIs(t, err, cassels.ErrInvalidCutoff, bad)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "search.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
cutoff: "5.01"
threads: 3
tables: t.txt
output: r.txt
runs:
  - {n: 70, len: 5}
  - n: 420
    len: 6
`), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Cutoff:  "5.01",
		Threads: 3,
		Tables:  "t.txt",
		Output:  "r.txt",
		Runs:    []cassels.Run{{Modulus: 70, MaxLen: 5}, {Modulus: 420, MaxLen: 6}},
	}, config)

	require.NoError(t, os.WriteFile(path, []byte("runs:\n  - {n: 70, len: 2}\n"), 0o644))
	_, err = LoadConfig(path)
	assert.ErrorIs(t, err, ErrInvalidRun)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
