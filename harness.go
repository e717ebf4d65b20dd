package main

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spacemonkeygo/monkit/v3"
)

// sink keeps the timed loops from being optimized away.
var sink uint64

// Harness times generators and records each measurement in a results table.
// A monkit timer per generator keeps the distribution of all its runs.
type Harness struct {
	table  *ResultsTable
	timers map[string]*monkit.Timer
	values map[string]int64
	order  []string
}

func NewHarness(table *ResultsTable) *Harness {
	return &Harness{
		table:  table,
		timers: make(map[string]*monkit.Timer),
		values: make(map[string]int64),
	}
}

// Measure calls gen.Next exactly n times and appends (n, name, elapsed) to the
// table. A latched generator failure is returned after the row is recorded.
func (h *Harness) Measure(gen Generator, n int) (Result, error) {
	name := gen.Name()
	timer := h.timer(name)

	var acc uint64
	running := timer.Start()
	for i := 0; i < n; i++ {
		acc += gen.Next()
	}
	elapsed := running.Stop()
	sink += acc

	h.values[name] += int64(n)
	res := Result{N: n, Name: name, Elapsed: elapsed}
	if err := h.table.Append(res); err != nil {
		return res, err
	}
	if f, ok := gen.(Faulter); ok && f.Err() != nil {
		return res, errors.Wrapf(f.Err(), "%s with n = %d", name, n)
	}
	return res, nil
}

func (h *Harness) timer(name string) *monkit.Timer {
	t, ok := h.timers[name]
	if !ok {
		t = monkit.NewTimer(monkit.NewSeriesKey(name))
		h.timers[name] = t
		h.order = append(h.order, name)
	}
	return t
}

// GeneratorStats aggregates every measurement of one generator.
type GeneratorStats struct {
	Name    string
	Calls   int64
	Values  int64
	Total   time.Duration
	Fastest time.Duration
	Slowest time.Duration
}

// NsPerValue is the mean cost of one Next call.
func (s GeneratorStats) NsPerValue() float64 {
	if s.Values == 0 {
		return 0
	}
	return float64(s.Total.Nanoseconds()) / float64(s.Values)
}

// ValuesPerSecond is the overall throughput.
func (s GeneratorStats) ValuesPerSecond() float64 {
	if s.Total <= 0 {
		return 0
	}
	return float64(s.Values) / s.Total.Seconds()
}

// Stats returns per-generator aggregates in first-measured order.
func (h *Harness) Stats() []GeneratorStats {
	stats := make([]GeneratorStats, 0, len(h.order))
	for _, name := range h.order {
		dist := h.timers[name].Values()
		stats = append(stats, GeneratorStats{
			Name:    name,
			Calls:   dist.Count,
			Values:  h.values[name],
			Total:   dist.Sum,
			Fastest: dist.Low,
			Slowest: dist.High,
		})
	}
	return stats
}
