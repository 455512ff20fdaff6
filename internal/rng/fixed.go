package rng

// Fixed is a Source that replays a predetermined sequence of values,
// cycling when exhausted. Intended for tests that need exact outcomes.
type Fixed struct {
	values []float64
	pos    int
}

// NewFixed creates a Fixed source over the given values. An empty
// sequence behaves as a constant 0.5 stream.
func NewFixed(values ...float64) *Fixed {
	if len(values) == 0 {
		values = []float64{0.5}
	}
	return &Fixed{values: values}
}

// Float64 returns the next value in the sequence.
func (f *Fixed) Float64() float64 {
	v := f.values[f.pos%len(f.values)]
	f.pos++
	return v
}

// Intn maps the next sequence value onto [0, n).
func (f *Fixed) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with non-positive n")
	}
	v := int(f.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}
