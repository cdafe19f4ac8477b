// Package lcg is a small deterministic pseudo-random generator for building
// reproducible test and benchmark inputs.
package lcg

import "math"

// Generator constants. Multiplier % 4 == 1 and an odd Increment give the
// full 2^32 period.
const (
	Multiplier uint32 = 5
	Increment  uint32 = 3

	// DefaultSeed is the seed used by the fuzz and benchmark harnesses.
	DefaultSeed uint32 = 0x1337

	// MaxWidth is the widest Range that In covers completely.
	MaxWidth uint64 = math.MaxUint32
)

// Range is the half-open integer range [Min, Max).
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Width returns Max - Min, or 0 for an empty range. It does not overflow
// for any pair of int bounds.
func (r Range) Width() uint64 {
	if r.Max <= r.Min {
		return 0
	}
	return uint64(r.Max) - uint64(r.Min)
}

// Rand is a linear congruential generator: state = state*Multiplier + Increment
// modulo 2^32. It is not safe for concurrent use.
type Rand struct {
	state uint32
}

// New returns a generator seeded with seed.
func New(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Next advances the generator and returns the new state.
func (r *Rand) Next() uint32 {
	r.state = r.state*Multiplier + Increment
	return r.state
}

// In returns a value in rg. An empty range always yields rg.Min and does not
// advance the generator. Ranges wider than MaxWidth only yield values in
// [rg.Min, rg.Min+MaxWidth].
func (r *Rand) In(rg Range) int {
	w := rg.Width()
	if w == 0 {
		return rg.Min
	}
	return rg.Min + int(uint64(r.Next())%w)
}

// Vector returns a slice whose length is drawn from length and whose elements
// are drawn from values.
func (r *Rand) Vector(length, values Range) []int {
	n := r.In(length)
	v := make([]int, n)
	for i := range v {
		v[i] = r.In(values)
	}
	return v
}

// Vectors returns n vectors drawn from a generator seeded with seed. The
// same arguments always produce the same vectors.
func Vectors(seed uint32, n int, length, values Range) [][]int {
	r := New(seed)
	out := make([][]int, n)
	for i := range out {
		out[i] = r.Vector(length, values)
	}
	return out
}
