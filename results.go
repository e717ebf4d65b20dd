package main

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// resultsHeader is the first line of every results file. Time is in seconds.
var resultsHeader = []string{"n", "Function", "Time"}

// Result is one timing measurement.
type Result struct {
	N       int
	Name    string
	Elapsed time.Duration
}

// Seconds returns the elapsed time as written to the results file.
func (r Result) Seconds() float64 {
	return r.Elapsed.Seconds()
}

func (r Result) record() []string {
	return []string{
		strconv.Itoa(r.N),
		r.Name,
		formatSeconds(r.Elapsed),
	}
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}

// ResultsTable is the append-only timing CSV. Rows are flushed as they are
// appended and kept in memory in order.
type ResultsTable struct {
	file   *os.File
	writer *csv.Writer
	rows   []Result
}

// CreateResultsTable truncates path and writes the header.
func CreateResultsTable(path string) (*ResultsTable, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	t := &ResultsTable{
		file:   file,
		writer: csv.NewWriter(file),
	}
	if err := t.write(resultsHeader); err != nil {
		file.Close()
		return nil, err
	}
	return t, nil
}

// Append records one row.
func (t *ResultsTable) Append(r Result) error {
	t.rows = append(t.rows, r)
	return t.write(r.record())
}

func (t *ResultsTable) write(record []string) error {
	if err := t.writer.Write(record); err != nil {
		return errors.Wrap(err, "could not write results row")
	}
	t.writer.Flush()
	return errors.Wrap(t.writer.Error(), "could not flush results")
}

// Rows returns a copy of the rows appended so far.
func (t *ResultsTable) Rows() []Result {
	out := make([]Result, len(t.rows))
	copy(out, t.rows)
	return out
}

// Close flushes and closes the underlying file.
func (t *ResultsTable) Close() error {
	t.writer.Flush()
	if err := t.writer.Error(); err != nil {
		t.file.Close()
		return errors.Wrap(err, "could not flush results")
	}
	return errors.Wrap(t.file.Close(), "could not close results")
}
