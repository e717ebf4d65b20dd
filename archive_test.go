package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	a, err := OpenRunArchive(path)
	require.NoError(t, err)

	now := time.Now()
	later := newRunRecord("b", now.Add(time.Minute), 1, []Result{{N: 10, Name: "LCG", Elapsed: time.Millisecond}})
	earlier := newRunRecord("a", now, 12345, []Result{
		{N: 10, Name: "LCG", Elapsed: 1500 * time.Microsecond},
		{N: 10, Name: "Xorshift", Elapsed: 2 * time.Second},
	})
	require.NoError(t, a.Save(later))
	require.NoError(t, a.Save(earlier))
	require.NoError(t, a.Close())

	a, err = OpenRunArchive(path)
	require.NoError(t, err)
	defer a.Close()

	runs, err := a.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "a", runs[0].ID)
	assert.Equal(t, "b", runs[1].ID)
	assert.Equal(t, uint64(12345), runs[0].Seed)
	assert.Equal(t, []ArchivedRow{
		{N: 10, Function: "LCG", Seconds: 0.0015},
		{N: 10, Function: "Xorshift", Seconds: 2},
	}, runs[0].Rows)
}

func TestRunArchiveEmpty(t *testing.T) {
	a, err := OpenRunArchive(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer a.Close()

	runs, err := a.Runs()
	require.NoError(t, err)
	assert.Empty(t, runs)
}
