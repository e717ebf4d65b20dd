package main

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// progress is an optional bar over all harness calls of a run. The zero value
// draws nothing.
type progress struct {
	bar *progressbar.ProgressBar
}

func newProgress(enabled bool, w io.Writer, total int) progress {
	if !enabled {
		return progress{}
	}
	return progress{bar: progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("timing"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)}
}

func (p progress) step() {
	if p.bar != nil {
		p.bar.Add(1)
	}
}

func (p progress) finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}
