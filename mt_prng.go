package main

// MT19937 parameters, see Matsumoto and Nishimura (1998).
const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
	mtInitMult  = 1812433253
)

// MersenneTwister implements the 32-bit MT19937 generator. Its output is
// bit-identical to std::mt19937 and the reference mt19937ar.c for the same
// integer seed.
type MersenneTwister struct {
	mt    [mtN]uint32
	index int
}

// NewMersenneTwister creates a new Mersenne Twister seeded like init_genrand.
func NewMersenneTwister(seed uint32) *MersenneTwister {
	m := &MersenneTwister{}
	m.Seed(seed)
	return m
}

// Name returns the generator name
func (m *MersenneTwister) Name() string {
	return NameMersenneTwister
}

// Seed resets the state from a 32-bit seed.
func (m *MersenneTwister) Seed(seed uint32) {
	m.mt[0] = seed
	for i := 1; i < mtN; i++ {
		prev := m.mt[i-1]
		m.mt[i] = mtInitMult*(prev^(prev>>30)) + uint32(i)
	}
	m.index = mtN
}

// Next returns the next tempered 32-bit output.
func (m *MersenneTwister) Next() uint64 {
	if m.index >= mtN {
		m.twist()
	}

	y := m.mt[m.index]
	m.index++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return uint64(y)
}

// twist regenerates all mtN words of state at once.
func (m *MersenneTwister) twist() {
	for i := 0; i < mtN; i++ {
		y := (m.mt[i] & mtUpperMask) | (m.mt[(i+1)%mtN] & mtLowerMask)
		v := m.mt[(i+mtM)%mtN] ^ (y >> 1)
		if y&1 != 0 {
			v ^= mtMatrixA
		}
		m.mt[i] = v
	}
	m.index = 0
}
