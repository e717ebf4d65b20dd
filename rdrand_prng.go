package main

import (
	"github.com/cenkalti/backoff"
	"github.com/pkg/errors"
	"golang.org/x/sys/cpu"
)

// RDRandPolicy decides what happens when the RDRAND instruction reports that
// no random value was available.
type RDRandPolicy string

const (
	// RDRandIgnore returns whatever the instruction left behind, without retrying.
	RDRandIgnore RDRandPolicy = "ignore"
	// RDRandRetry retries a bounded number of times before giving up.
	RDRandRetry RDRandPolicy = "retry"
	// RDRandStrict retries like RDRandRetry and latches an error when the
	// retries run out.
	RDRandStrict RDRandPolicy = "strict"
)

// ErrRDRandExhausted is latched by a strict RDRand once the hardware failed to
// deliver a value within the retry budget.
var ErrRDRandExhausted = errors.New("rdrand: hardware random value unavailable")

var errRDRandNotReady = errors.New("rdrand: carry flag clear")

var hasRDRAND = cpu.X86.HasRDRAND

// RDRandSupported reports whether the running CPU implements RDRAND.
func RDRandSupported() bool {
	return hasRDRAND
}

// RDRand wraps the hardware RDRAND instruction. Unlike the other generators
// it has no seed and no reproducible sequence.
type RDRand struct {
	policy  RDRandPolicy
	retries uint64
	read    func() (uint64, bool)

	failures uint64
	err      error
}

// NewRDRand creates a new RDRAND source producing bits-wide values (32 or 64).
// On CPUs without RDRAND every read fails and is handled by policy.
func NewRDRand(bits int, policy RDRandPolicy, retries int) *RDRand {
	r := &RDRand{
		policy:  policy,
		retries: uint64(retries),
		read:    readRDRand32,
	}
	if bits == 64 {
		r.read = readRDRand64
	}
	if !hasRDRAND {
		r.read = readUnsupported
	}
	return r
}

// Name returns the generator name
func (r *RDRand) Name() string {
	return NameRDRand
}

// Next returns one hardware value. When the instruction fails the configured
// policy decides between returning the stale value, retrying, or latching
// ErrRDRandExhausted.
func (r *RDRand) Next() uint64 {
	v, ok := r.read()
	if ok {
		return v
	}
	if r.policy != RDRandIgnore {
		v, ok = r.retry()
		if ok {
			return v
		}
		if r.policy == RDRandStrict && r.err == nil {
			r.err = errors.Wrapf(ErrRDRandExhausted, "after %d retries", r.retries)
		}
	}
	r.failures++
	return v
}

// retry performs up to r.retries further reads with no delay between them.
func (r *RDRand) retry() (v uint64, ok bool) {
	read := func() error {
		v, ok = r.read()
		if !ok {
			return errRDRandNotReady
		}
		return nil
	}
	// WithMaxRetries treats 0 as unbounded.
	if r.retries <= 1 {
		if r.retries == 1 {
			read()
		}
		return v, ok
	}
	err := backoff.Retry(read, backoff.WithMaxRetries(&backoff.ZeroBackOff{}, r.retries-1))
	return v, err == nil
}

// Failures returns how many values were handed out without a successful
// hardware read.
func (r *RDRand) Failures() uint64 {
	return r.failures
}

// Err implements Faulter
func (r *RDRand) Err() error {
	return r.err
}

func readRDRand32() (uint64, bool) {
	v, ok := rdrand32()
	return uint64(v), ok
}

func readRDRand64() (uint64, bool) {
	return rdrand64()
}

func readUnsupported() (uint64, bool) {
	return 0, false
}
