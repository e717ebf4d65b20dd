package main

// LCG implements a linear congruential generator with Knuth's MMIX multiplier,
// reduced modulo 2^32.
type LCG struct {
	state uint64
}

const (
	lcgMultiplier uint64 = 6364136223846793005
	lcgIncrement  uint64 = 1
	lcgModulus    uint64 = 1 << 32
)

// NewLCG creates a new LCG
func NewLCG(seed uint64) *LCG {
	return &LCG{state: seed}
}

// Name returns the generator name
func (l *LCG) Name() string {
	return NameLCG
}

// Next advances the state and returns its low 32 bits. The multiplication
// wraps at 2^64 before the modulus is applied.
func (l *LCG) Next() uint64 {
	l.state = (lcgMultiplier*l.state + lcgIncrement) % lcgModulus
	return uint64(uint32(l.state))
}
