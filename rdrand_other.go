//go:build !amd64

package main

func rdrand32() (v uint32, ok bool) {
	return 0, false
}

func rdrand64() (v uint64, ok bool) {
	return 0, false
}
