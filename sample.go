package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

// WriteSample writes n values from gen to path, one decimal integer per line,
// truncating any previous file.
func WriteSample(gen Generator, n int, path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create sample file for %s", gen.Name())
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "could not close sample file %s", path)
		}
	}()

	w := bufio.NewWriter(file)
	line := make([]byte, 0, 24)
	for i := 0; i < n; i++ {
		line = strconv.AppendUint(line[:0], gen.Next(), 10)
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return errors.Wrapf(err, "could not write sample file %s", path)
		}
	}
	return errors.Wrapf(w.Flush(), "could not write sample file %s", path)
}

// writeSamples dumps n values of every generator into cfg.SampleDir. Fresh
// generators are used so the files only depend on the seeds.
func writeSamples(cfg *Config, n int) []error {
	var errs []error
	for _, gen := range newGenerators(cfg) {
		path := filepath.Join(cfg.SampleDir, sampleFile(gen.Name()))
		if err := WriteSample(gen, n, path); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
