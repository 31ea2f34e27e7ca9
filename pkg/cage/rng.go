package cage

import "math/rand/v2"

// RNG is the explicit source of randomness handed to rules, initializers
// and agents. Two RNGs built from the same seed yield the same sequence.
type RNG struct {
	r *rand.Rand
}

// NewRNG returns a PCG-backed generator for seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns an int in [0, n), or 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Float64 returns a float in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Uint8n returns a state in [0, n), or 0 when n is 0.
func (r *RNG) Uint8n(n uint8) uint8 {
	if n == 0 {
		return 0
	}
	return uint8(r.r.IntN(int(n)))
}

// Perm returns a random permutation of [0, n).
func (r *RNG) Perm(n int) []int {
	if n <= 0 {
		return nil
	}
	return r.r.Perm(n)
}
