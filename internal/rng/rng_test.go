package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsDeterministicPerSeed(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
	c := New(43)
	assert.NotEqual(t, New(42).Float64(), c.Float64())
}

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	require.NoError(t, err)
	b, err := NewSeed()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestBetweenStaysInRange(t *testing.T) {
	src := New(7)
	for i := 0; i < 1000; i++ {
		v := Between(src, 0.88, 1.12)
		assert.GreaterOrEqual(t, v, 0.88)
		assert.Less(t, v, 1.12)
	}
}

func TestIntBetweenInclusive(t *testing.T) {
	src := New(7)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := IntBetween(src, -1, 2)
		assert.GreaterOrEqual(t, v, -1)
		assert.LessOrEqual(t, v, 2)
		seen[v] = true
	}
	// Both endpoints are reachable
	assert.True(t, seen[-1])
	assert.True(t, seen[2])

	assert.Equal(t, 5, IntBetween(src, 5, 5))
	assert.Equal(t, 5, IntBetween(src, 5, 3))
}

func TestFixedReplaysSequence(t *testing.T) {
	f := NewFixed(0.1, 0.9)
	assert.Equal(t, 0.1, f.Float64())
	assert.Equal(t, 0.9, f.Float64())
	// The sequence cycles
	assert.Equal(t, 0.1, f.Float64())
}

func TestFixedDefaultsToMidpoint(t *testing.T) {
	f := NewFixed()
	assert.Equal(t, 0.5, f.Float64())
	// Midpoint pins Between on a symmetric window at 1.0
	assert.InDelta(t, 1.0, Between(NewFixed(), 0.88, 1.12), 1e-12)
}

func TestFixedIntn(t *testing.T) {
	assert.Equal(t, 0, NewFixed(0.0).Intn(10))
	assert.Equal(t, 5, NewFixed(0.5).Intn(10))
	assert.Equal(t, 9, NewFixed(0.999).Intn(10))
	assert.Panics(t, func() { NewFixed(0.5).Intn(0) })
}
