package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// printSummary writes the per-generator totals gathered by the harness.
func printSummary(w io.Writer, stats []GeneratorStats, runtime time.Duration) {
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 80))
	fmt.Fprintln(w, "SUMMARY")
	fmt.Fprintf(w, "%s\n", strings.Repeat("=", 80))
	fmt.Fprintf(w, "%-16s %6s %16s %14s %10s %18s\n",
		"Generator", "Runs", "Values", "Total", "ns/value", "Throughput")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, s := range stats {
		fmt.Fprintf(w, "%-16s %6d %16s %14s %10.3f %18s\n",
			s.Name,
			s.Calls,
			humanize.Comma(s.Values),
			s.Total.Round(time.Microsecond),
			s.NsPerValue(),
			humanize.SIWithDigits(s.ValuesPerSecond(), 2, "values/s"),
		)
	}

	fmt.Fprintf(w, "%s\n", strings.Repeat("=", 80))
	fmt.Fprintf(w, "TOTAL RUNTIME: %v\n", runtime.Round(time.Millisecond))
}

// printHistory lists archived runs.
func printHistory(w io.Writer, runs []RunRecord) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No archived runs.")
		return
	}
	fmt.Fprintf(w, "%-36s  %-20s  %-14s %8s %6s\n", "Run", "Started", "", "Seed", "Rows")
	fmt.Fprintln(w, strings.Repeat("-", 90))
	for _, r := range runs {
		fmt.Fprintf(w, "%-36s  %-20s  %-14s %8d %6d\n",
			r.ID,
			r.Started.Format("2006-01-02 15:04:05"),
			humanize.Time(r.Started),
			r.Seed,
			len(r.Rows),
		)
	}
}
