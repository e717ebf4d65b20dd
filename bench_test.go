package main

import (
	"testing"

	"github.com/valyala/fastrand"
)

var benchSink uint64

func benchmarkGenerator(b *testing.B, g Generator) {
	b.SetBytes(4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink += g.Next()
	}
}

func BenchmarkLCG(b *testing.B)             { benchmarkGenerator(b, NewLCG(12345)) }
func BenchmarkMersenneTwister(b *testing.B) { benchmarkGenerator(b, NewMersenneTwister(12345)) }
func BenchmarkXorshift(b *testing.B)        { benchmarkGenerator(b, NewXorshift(12345)) }

func BenchmarkRDRand(b *testing.B) {
	if !RDRandSupported() {
		b.Skip("RDRAND not available")
	}
	benchmarkGenerator(b, NewRDRand(32, RDRandRetry, 10))
}

// BenchmarkFastrand is a baseline from an optimized third-party generator.
func BenchmarkFastrand(b *testing.B) {
	var r fastrand.RNG
	b.SetBytes(4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink += uint64(r.Uint32())
	}
}

func BenchmarkHarness(b *testing.B) {
	table, err := CreateResultsTable(b.TempDir() + "/timing.csv")
	if err != nil {
		b.Fatal(err)
	}
	defer table.Close()
	h := NewHarness(table)
	g := NewXorshift(12345)

	b.ResetTimer()
	if _, err := h.Measure(g, b.N); err != nil {
		b.Fatal(err)
	}
}
