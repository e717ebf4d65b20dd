package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"
)

type options struct {
	file  []ConfigOption
	flags []ConfigOption
	err   error
}

// parseCommandLine turns command line flags, and a YAML file passed with -c,
// into config options. File options come first so flags always win.
func parseCommandLine(args []string, usage io.Writer) ([]ConfigOption, error) {
	pf := createFlagSet(usage)
	o := options{}
	if err := pf.ParseAll(args, parseFlag(&o)); err != nil {
		return nil, err
	}
	if o.err != nil {
		return nil, o.err
	}
	if pf.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(pf.Args(), " "))
	}
	return append(o.file, o.flags...), nil
}

func createFlagSet(usage io.Writer) *pflag.FlagSet {
	pf := pflag.NewFlagSet("prng-bench", pflag.ContinueOnError)
	pf.SetOutput(usage)
	pf.Usage = func() {
		fmt.Fprintf(usage, "Usage of prng-bench:\nprng-bench [options]\n\nWith no options the classic run is performed: seed 12345, n = 1e4 .. 1e9, results in timing_results.csv.\n")
		fmt.Fprintf(usage, "\n%s", pf.FlagUsagesWrapped(100))
	}

	pf.StringP("config", "c", "", "Use yaml configuration file")
	pf.String("seed", "12345", "Seed for the LCG, Mersenne Twister and Xorshift generators")
	pf.String("counts", "1e4,1e5,1e6,1e7,1e8,1e9", "Ascending, comma separated iteration counts")
	pf.StringP("results", "o", "timing_results.csv", "Path of the timing results CSV")
	pf.String("sample-dir", ".", "Directory for the *_sample.txt files")
	pf.String("sample-policy", "at", "When to write samples: off, once, each or at")
	pf.String("sample-at", "1e4", "With --sample-policy=at, write n samples when the iteration count equals this value")
	pf.String("sample-count", "1e4", "With --sample-policy=once or each, number of values per sample file")
	pf.String("rdrand-policy", "retry", "RDRAND failure handling: ignore, retry or strict")
	pf.String("rdrand-retries", "10", "Retries after a failed RDRAND before giving up")
	pf.String("rdrand-bits", "32", "RDRAND output width, 32 or 64")
	pf.Bool("fresh-state", false, "Reseed every generator before each iteration count")
	pf.String("archive", "", "Append each run to this bbolt database")
	pf.Bool("history", false, "List the runs stored in --archive and exit")
	pf.Bool("progress", false, "Show a progress bar on stderr")
	pf.BoolP("quiet", "q", false, "Do not print a line per timing result")

	return pf
}

func parseFlag(o *options) func(*pflag.Flag, string) error {
	return func(flag *pflag.Flag, value string) error {
		switch flag.Name {
		case "config":
			opts, err := parseFromFile(value)
			if err != nil {
				o.err = err
				return err
			}
			o.file = append(o.file, opts...)
		default:
			option, err := handleOption(flag.Name, value)
			if err != nil {
				o.err = err
				return err
			}
			o.flags = append(o.flags, option)
		}
		return nil
	}
}

// handleOption maps a flag or YAML key to its option.
func handleOption(name string, value string) (ConfigOption, error) {
	switch name {
	case "seed":
		return Seed(value), nil
	case "counts":
		return Counts(value), nil
	case "results":
		return ResultsPath(value), nil
	case "sample-dir":
		return SampleDir(value), nil
	case "sample-policy":
		return Samples(value), nil
	case "sample-at":
		return SampleAtCount(value), nil
	case "sample-count":
		return SampleCount(value), nil
	case "rdrand-policy":
		return RDRandFailurePolicy(value), nil
	case "rdrand-retries":
		return RDRandRetries(value), nil
	case "rdrand-bits":
		return RDRandBits(value), nil
	case "fresh-state":
		return boolOption(name, value, FreshState)
	case "archive":
		return ArchiveTo(value), nil
	case "history":
		return boolOption(name, value, History)
	case "progress":
		return boolOption(name, value, Progress)
	case "quiet":
		return boolOption(name, value, Quiet)
	default:
		return nil, fmt.Errorf("unknown option: %s", name)
	}
}

func boolOption(name string, value string, opt func(on bool) ConfigOption) (ConfigOption, error) {
	if value == "" {
		return opt(true), nil
	}
	on, err := strconv.ParseBool(value)
	if err != nil {
		return nil, fmt.Errorf("invalid value for %s: %s", name, value)
	}
	return opt(on), nil
}

func parseFromFile(fpath string) ([]ConfigOption, error) {
	var options []ConfigOption
	data, err := ioutil.ReadFile(fpath)
	if err != nil {
		return options, errors.Wrap(err, "could not read config file")
	}

	cfg := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return options, errors.Wrapf(err, "could not parse config file %s", fpath)
	}
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		var value string
		switch v := cfg[k].(type) {
		case string:
			value = v
		case int:
			value = strconv.Itoa(v)
		case uint64:
			value = strconv.FormatUint(v, 10)
		case float64:
			value = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			value = strconv.FormatBool(v)
		// lists are only meaningful for counts
		case []interface{}:
			parts := make([]string, 0, len(v))
			for _, item := range v {
				parts = append(parts, fmt.Sprint(item))
			}
			value = strings.Join(parts, ",")
		default:
			return options, fmt.Errorf("could not process config key %s, unknown type", k)
		}
		if k == "config" {
			return options, fmt.Errorf("config files cannot include other config files")
		}
		opt, err := handleOption(k, value)
		if err != nil {
			return options, err
		}
		options = append(options, opt)
	}
	return options, nil
}
