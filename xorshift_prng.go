package main

// Xorshift implements Marsaglia's 32-bit xorshift with the 13/17/5 triple.
//
// A zero seed is a fixed point: the generator returns 0 forever.
type Xorshift struct {
	state uint32
}

// NewXorshift creates a new Xorshift generator. The seed is used as given.
func NewXorshift(seed uint32) *Xorshift {
	return &Xorshift{state: seed}
}

// Name returns the generator name
func (x *Xorshift) Name() string {
	return NameXorshift
}

func (x *Xorshift) Next() uint64 {
	s := x.state
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	x.state = s
	return uint64(s)
}
