package main

// Generator is the capability shared by every benchmarked source: produce the
// next value from internal mutable state.
type Generator interface {
	Name() string
	Next() uint64
}

// Faulter is implemented by sources that can fail at runtime. Err returns the
// first latched failure, if any.
type Faulter interface {
	Err() error
}

// Generator labels as written to the results table.
const (
	NameLCG             = "LCG"
	NameMersenneTwister = "MersenneTwister"
	NameXorshift        = "Xorshift"
	NameRDRand          = "RDRand"
)

// newGenerators builds the four sources in their fixed benchmark order.
func newGenerators(cfg *Config) []Generator {
	return []Generator{
		NewLCG(cfg.Seed),
		NewMersenneTwister(uint32(cfg.Seed)),
		NewXorshift(uint32(cfg.Seed)),
		NewRDRand(cfg.RDRandBits, cfg.RDRandPolicy, cfg.RDRandRetries),
	}
}

// sampleFile maps a generator label to the name of its sample dump.
func sampleFile(name string) string {
	switch name {
	case NameLCG:
		return "lcg_sample.txt"
	case NameMersenneTwister:
		return "mt_sample.txt"
	case NameXorshift:
		return "xorshift_sample.txt"
	case NameRDRand:
		return "rdrand_sample.txt"
	}
	return name + "_sample.txt"
}
