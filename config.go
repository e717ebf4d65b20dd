package main

import (
	"fmt"
	"strconv"
	"strings"
)

// SamplePolicy decides when raw sample files are written during a run.
type SamplePolicy string

const (
	SampleOff  SamplePolicy = "off"
	SampleOnce SamplePolicy = "once"
	SampleEach SamplePolicy = "each"
	SampleAt   SamplePolicy = "at"
)

// Config holds every knob of a benchmark run. The zero-argument defaults
// reproduce the classic fixed run: seed 12345, counts 1e4 through 1e9 and
// results in timing_results.csv.
type Config struct {
	Seed        uint64
	Counts      []int
	ResultsPath string

	SampleDir    string
	SamplePolicy SamplePolicy
	SampleAt     int
	SampleCount  int

	RDRandPolicy  RDRandPolicy
	RDRandRetries int
	RDRandBits    int

	// FreshState rebuilds every generator from its seed before each
	// iteration count instead of letting the sequence run on.
	FreshState bool

	ArchivePath string
	History     bool
	Progress    bool
	Quiet       bool
}

type ConfigOption func(c *Config) error

// DefaultCounts is the ascending list of iteration counts timed by default.
var DefaultCounts = []int{1e4, 1e5, 1e6, 1e7, 1e8, 1e9}

func defaultConfig() Config {
	return Config{
		Seed:          12345,
		Counts:        append([]int(nil), DefaultCounts...),
		ResultsPath:   "timing_results.csv",
		SampleDir:     ".",
		SamplePolicy:  SampleAt,
		SampleAt:      1e4,
		SampleCount:   1e4,
		RDRandPolicy:  RDRandRetry,
		RDRandRetries: 10,
		RDRandBits:    32,
	}
}

// NewConfig applies options over the defaults and validates the result. All
// option and validation errors are returned together.
func NewConfig(options ...ConfigOption) (*Config, []error) {
	c := defaultConfig()

	var errs []error
	for _, option := range options {
		if err := option(&c); err != nil {
			errs = append(errs, err)
		}
	}
	errs = append(errs, c.validate()...)

	if len(errs) > 0 {
		return nil, errs
	}
	return &c, nil
}

func (c *Config) validate() []error {
	var errs []error
	if len(c.Counts) == 0 {
		errs = append(errs, fmt.Errorf("at least one iteration count is required"))
	}
	for i, n := range c.Counts {
		if n <= 0 {
			errs = append(errs, fmt.Errorf("iteration count must be positive, got %d", n))
		}
		if i > 0 && n <= c.Counts[i-1] {
			errs = append(errs, fmt.Errorf("iteration counts must be strictly ascending: %d follows %d", n, c.Counts[i-1]))
		}
	}
	if c.ResultsPath == "" {
		errs = append(errs, fmt.Errorf("results path must not be empty"))
	}
	switch c.SamplePolicy {
	case SampleOff, SampleOnce, SampleEach, SampleAt:
	default:
		errs = append(errs, fmt.Errorf("unknown sample policy %q, use off, once, each or at", c.SamplePolicy))
	}
	if c.SampleAt <= 0 {
		errs = append(errs, fmt.Errorf("sample-at must be positive, got %d", c.SampleAt))
	}
	if c.SampleCount <= 0 {
		errs = append(errs, fmt.Errorf("sample-count must be positive, got %d", c.SampleCount))
	}
	switch c.RDRandPolicy {
	case RDRandIgnore, RDRandRetry, RDRandStrict:
	default:
		errs = append(errs, fmt.Errorf("unknown rdrand policy %q, use ignore, retry or strict", c.RDRandPolicy))
	}
	if c.RDRandRetries < 1 {
		errs = append(errs, fmt.Errorf("rdrand-retries must be at least 1, got %d", c.RDRandRetries))
	}
	if c.RDRandBits != 32 && c.RDRandBits != 64 {
		errs = append(errs, fmt.Errorf("rdrand-bits must be 32 or 64, got %d", c.RDRandBits))
	}
	if c.History && c.ArchivePath == "" {
		errs = append(errs, fmt.Errorf("--history requires --archive"))
	}
	return errs
}

// shouldSample reports whether samples are due before timing count n, the
// i-th entry of the count list.
func (c *Config) shouldSample(i, n int) bool {
	switch c.SamplePolicy {
	case SampleOnce:
		return i == 0
	case SampleEach:
		return true
	case SampleAt:
		return n == c.SampleAt
	}
	return false
}

// sampleSize is the number of values written when samples are due at count n.
func (c *Config) sampleSize(n int) int {
	if c.SamplePolicy == SampleAt {
		return n
	}
	return c.SampleCount
}

func Seed(seed string) ConfigOption {
	return func(c *Config) error {
		s, err := strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return fmt.Errorf("could not convert seed to an unsigned integer: %s", seed)
		}
		c.Seed = s
		return nil
	}
}

// Counts accepts a comma separated list, e.g. "1000,10000,100000".
func Counts(list string) ConfigOption {
	return func(c *Config) error {
		var counts []int
		for _, field := range strings.Split(list, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			n, err := parseCount(field)
			if err != nil {
				return err
			}
			counts = append(counts, n)
		}
		c.Counts = counts
		return nil
	}
}

// parseCount accepts plain integers and the 1e6 shorthand.
func parseCount(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("could not convert iteration count to integer: %s", s)
	}
	return int(f), nil
}

func ResultsPath(path string) ConfigOption {
	return func(c *Config) error {
		c.ResultsPath = path
		return nil
	}
}

func SampleDir(dir string) ConfigOption {
	return func(c *Config) error {
		c.SampleDir = dir
		return nil
	}
}

func Samples(policy string) ConfigOption {
	return func(c *Config) error {
		c.SamplePolicy = SamplePolicy(strings.ToLower(policy))
		return nil
	}
}

func SampleAtCount(n string) ConfigOption {
	return func(c *Config) error {
		v, err := parseCount(n)
		if err != nil {
			return fmt.Errorf("could not convert sample-at to integer: %s", n)
		}
		c.SampleAt = v
		return nil
	}
}

func SampleCount(n string) ConfigOption {
	return func(c *Config) error {
		v, err := parseCount(n)
		if err != nil {
			return fmt.Errorf("could not convert sample-count to integer: %s", n)
		}
		c.SampleCount = v
		return nil
	}
}

func RDRandFailurePolicy(policy string) ConfigOption {
	return func(c *Config) error {
		c.RDRandPolicy = RDRandPolicy(strings.ToLower(policy))
		return nil
	}
}

func RDRandRetries(n string) ConfigOption {
	return func(c *Config) error {
		v, err := strconv.Atoi(n)
		if err != nil {
			return fmt.Errorf("could not convert rdrand-retries to integer: %s", n)
		}
		c.RDRandRetries = v
		return nil
	}
}

func RDRandBits(bits string) ConfigOption {
	return func(c *Config) error {
		v, err := strconv.Atoi(bits)
		if err != nil {
			return fmt.Errorf("could not convert rdrand-bits to integer: %s", bits)
		}
		c.RDRandBits = v
		return nil
	}
}

func FreshState(on bool) ConfigOption {
	return func(c *Config) error {
		c.FreshState = on
		return nil
	}
}

func ArchiveTo(path string) ConfigOption {
	return func(c *Config) error {
		c.ArchivePath = path
		return nil
	}
}

func History(on bool) ConfigOption {
	return func(c *Config) error {
		c.History = on
		return nil
	}
}

func Progress(on bool) ConfigOption {
	return func(c *Config) error {
		c.Progress = on
		return nil
	}
}

func Quiet(on bool) ConfigOption {
	return func(c *Config) error {
		c.Quiet = on
		return nil
	}
}
