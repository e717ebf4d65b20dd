package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter counts calls to Next.
type counter struct {
	name  string
	calls int
	err   error
}

func (c *counter) Name() string { return c.name }

func (c *counter) Next() uint64 {
	c.calls++
	return uint64(c.calls)
}

func (c *counter) Err() error { return c.err }

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestHarnessMeasure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timing.csv")
	table, err := CreateResultsTable(path)
	require.NoError(t, err)
	h := NewHarness(table)

	a, b := &counter{name: "A"}, &counter{name: "B"}
	for _, n := range []int{10, 1000} {
		for _, g := range []Generator{a, b} {
			res, err := h.Measure(g, n)
			require.NoError(t, err)
			assert.Equal(t, n, res.N)
			assert.Equal(t, g.Name(), res.Name)
			assert.True(t, res.Elapsed >= 0)
		}
	}
	require.NoError(t, table.Close())

	// shared state: the second measurement continues the sequence
	assert.Equal(t, 1010, a.calls)
	assert.Equal(t, 1010, b.calls)

	records := readCSV(t, path)
	require.Len(t, records, 5)
	assert.Equal(t, []string{"n", "Function", "Time"}, records[0])
	var order [][2]string
	for _, r := range records[1:] {
		order = append(order, [2]string{r[0], r[1]})
	}
	assert.Equal(t, [][2]string{{"10", "A"}, {"10", "B"}, {"1000", "A"}, {"1000", "B"}}, order)

	stats := h.Stats()
	require.Len(t, stats, 2)
	assert.Equal(t, "A", stats[0].Name)
	assert.Equal(t, int64(2), stats[0].Calls)
	assert.Equal(t, int64(1010), stats[0].Values)
	assert.True(t, stats[0].Fastest <= stats[0].Slowest)
}

func TestHarnessReportsGeneratorFault(t *testing.T) {
	table, err := CreateResultsTable(filepath.Join(t.TempDir(), "timing.csv"))
	require.NoError(t, err)
	defer table.Close()
	h := NewHarness(table)

	g := &counter{name: "Faulty", err: ErrRDRandExhausted}
	res, err := h.Measure(g, 5)
	assert.True(t, errors.Is(err, ErrRDRandExhausted))
	assert.Equal(t, 5, g.calls)
	// the row is recorded even though the run failed
	assert.Equal(t, []Result{res}, table.Rows())
}

func TestResultsTableUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "timing.csv")
	_, err := CreateResultsTable(path)
	assert.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "0.000123", formatSeconds(123000))
	assert.Equal(t, "1.5", formatSeconds(1500000000))
	assert.Equal(t, "0", formatSeconds(0))
}

func TestGeneratorStats(t *testing.T) {
	s := GeneratorStats{Values: 1000, Total: 2000}
	assert.Equal(t, 2.0, s.NsPerValue())
	assert.InDelta(t, 5e8, s.ValuesPerSecond(), 1)
	assert.Zero(t, GeneratorStats{}.NsPerValue())
	assert.Zero(t, GeneratorStats{}.ValuesPerSecond())
}
