// Package rng provides an injectable uniform random source for the
// simulation engine, so probabilistic behavior can be pinned in tests.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"
)

// Source is the uniform random stream consumed by engine code. Every
// probabilistic function in the simulator takes a Source rather than
// calling the global rand functions.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform value in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// New returns a Source seeded with the given value.
func New(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewDefault returns a Source seeded from the wall clock.
func NewDefault() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Between returns a uniform value in [min, max).
func Between(src Source, min, max float64) float64 {
	return min + src.Float64()*(max-min)
}

// IntBetween returns a uniform integer in [min, max] inclusive.
func IntBetween(src Source, min, max int) int {
	if max <= min {
		return min
	}
	return min + src.Intn(max-min+1)
}
