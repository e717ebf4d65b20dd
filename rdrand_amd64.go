package main

// Implemented in rdrand_amd64.s. ok mirrors the carry flag.

func rdrand32() (v uint32, ok bool)

func rdrand64() (v uint64, ok bool)
