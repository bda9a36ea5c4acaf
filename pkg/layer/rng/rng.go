// Package rng implements the position-seeded generator used by layer stages.
//
// A Rand is built once from a world seed and a per-stage salt, then
// re-initialized at every absolute coordinate before drawing. The values
// drawn after InitAt(x, z) depend only on (seed, salt, x, z), never on what
// was drawn before, so disjoint windows can be generated in any order.
package rng

import (
	"errors"
	"fmt"
)

// Knuth's MMIX multiplier and increment.
const (
	knuthA int64 = 6364136223846793005
	knuthC int64 = 1442695040888963407
)

// ErrInvalidBound is returned by NextInt for a non-positive bound.
var ErrInvalidBound = errors.New("rng: bound must be > 0")

// stepKnuth advances an LCG with modulus 2^64.
func stepKnuth(state int64) int64 {
	return state*knuthA + knuthC
}

// stepSalted advances the state using stepKnuth(state) as the multiplier
// and c as the increment.
func stepSalted(state, c int64) int64 {
	return state*stepKnuth(state) + c
}

// Rand is a deterministic generator addressable by 2D coordinate.
// The zero value is usable but draws from it carry no spatial meaning.
type Rand struct {
	base  int64 // derived from seed and salt, fixed after New
	state int64 // reset by InitAt, advanced by Next
}

// New derives a generator from a salt, which tells stages apart, and the
// world seed.
func New(salt, seed int64) *Rand {
	primary := salt
	for range 3 {
		primary = stepSalted(primary, salt)
	}

	base := seed
	for range 3 {
		base = stepSalted(base, primary)
	}
	return &Rand{base: base}
}

// Base returns the value every InitAt starts from.
func (r *Rand) Base() int64 { return r.base }

// InitAt resets the cursor for the absolute coordinate (x, z).
func (r *Rand) InitAt(x, z int64) {
	s := r.base
	s = stepSalted(s, x)
	s = stepSalted(s, z)
	s = stepSalted(s, x)
	s = stepSalted(s, z)
	r.state = s
}

// Next returns the top 40 bits of the cursor, sign included, and advances.
func (r *Rand) Next() int64 {
	result := r.state >> 24
	r.state = stepSalted(r.state, r.base)
	return result
}

// NextInt returns a value in [0, max).
// Call InitAt first when the value feeds spatial data.
func (r *Rand) NextInt(max int32) (int32, error) {
	if max <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidBound, max)
	}

	// Go's % truncates, so the remainder lies in (-max, max).
	result := int32(r.Next() % int64(max))
	if result < 0 {
		result += max
	}
	return result, nil
}
