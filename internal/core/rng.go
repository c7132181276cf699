package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Float64 returns a random value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// Shared draws from the process-wide math/rand/v2 generator. It is the
// default whenever no seed is configured.
type Shared struct{}

// Bool returns a random boolean value.
func (Shared) Bool() bool { return rand.IntN(2) == 1 }

// Float64 returns a random value in [0, 1).
func (Shared) Float64() float64 { return rand.Float64() }
