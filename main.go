package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spacemonkeygo/monotime"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the whole program: parse the configuration, time every generator for
// every iteration count and report. It returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "prng-bench: ", 0)

	opts, err := parseCommandLine(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		logger.Printf("could not parse configuration: %v", err)
		return 1
	}

	cfg, errs := NewConfig(opts...)
	if len(errs) > 0 {
		logger.Println("error in config:")
		for _, e := range errs {
			logger.Println(e)
		}
		return 1
	}

	if cfg.History {
		return history(cfg, stdout, logger)
	}

	b := &bench{
		cfg:    cfg,
		stdout: stdout,
		stderr: stderr,
		log:    logger,
	}
	return b.run()
}

type bench struct {
	cfg    *Config
	stdout io.Writer
	stderr io.Writer
	log    *log.Logger
}

func (b *bench) run() int {
	cfg := b.cfg
	id := uuid.New().String()
	started := time.Now()
	start := monotime.Monotonic()

	var archive *RunArchive
	if cfg.ArchivePath != "" {
		a, err := OpenRunArchive(cfg.ArchivePath)
		if err != nil {
			b.log.Println(err)
			return 1
		}
		defer a.Close()
		archive = a
	}

	table, err := CreateResultsTable(cfg.ResultsPath)
	if err != nil {
		b.log.Printf("Failed to open file for writing: %v", err)
		return 1
	}

	if !RDRandSupported() {
		b.log.Printf("RDRAND is not available on this CPU, RDRand rows time the %q failure path", cfg.RDRandPolicy)
	}

	harness := NewHarness(table)
	gens := newGenerators(cfg)
	bar := newProgress(cfg.Progress, b.stderr, len(cfg.Counts)*len(gens))

	if !cfg.Quiet {
		fmt.Fprintf(b.stdout, "Run %s: seed %d, %d iteration counts, results in %s\n",
			id, cfg.Seed, len(cfg.Counts), cfg.ResultsPath)
	}

	var failures uint64
	for i, n := range cfg.Counts {
		if cfg.shouldSample(i, n) {
			for _, err := range writeSamples(cfg, cfg.sampleSize(n)) {
				b.log.Printf("could not write sample: %v", err)
			}
		}
		if cfg.FreshState && i > 0 {
			failures += rdrandFailures(gens)
			gens = newGenerators(cfg)
		}

		for _, gen := range gens {
			res, err := harness.Measure(gen, n)
			bar.step()
			if !cfg.Quiet {
				fmt.Fprintf(b.stdout, "%s with n = %d took %s seconds.\n", res.Name, res.N, formatSeconds(res.Elapsed))
			}
			if err != nil {
				bar.finish()
				table.Close()
				b.log.Printf("timing aborted: %v", err)
				return 1
			}
		}
		if !cfg.Quiet {
			fmt.Fprintln(b.stdout, "-----------")
		}
	}
	bar.finish()

	if err := table.Close(); err != nil {
		b.log.Println(err)
		return 1
	}

	failures += rdrandFailures(gens)
	if failures > 0 && cfg.RDRandPolicy != RDRandIgnore {
		b.log.Printf("RDRAND returned %d values without a successful hardware read", failures)
	}

	printSummary(b.stdout, harness.Stats(), monotime.Monotonic()-start)

	if archive != nil {
		if err := archive.Save(newRunRecord(id, started, cfg.Seed, table.Rows())); err != nil {
			b.log.Printf("could not archive run: %v", err)
			return 1
		}
		fmt.Fprintf(b.stdout, "Run archived to %s\n", cfg.ArchivePath)
	}
	return 0
}

// rdrandFailures sums the failed hardware reads of the RDRand sources in gens.
func rdrandFailures(gens []Generator) uint64 {
	var n uint64
	for _, gen := range gens {
		if rd, ok := gen.(*RDRand); ok {
			n += rd.Failures()
		}
	}
	return n
}

func history(cfg *Config, stdout io.Writer, logger *log.Logger) int {
	archive, err := OpenRunArchive(cfg.ArchivePath)
	if err != nil {
		logger.Println(err)
		return 1
	}
	defer archive.Close()

	runs, err := archive.Runs()
	if err != nil {
		logger.Println(err)
		return 1
	}
	printHistory(stdout, runs)
	return 0
}
