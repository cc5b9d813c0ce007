// Package rng provides the bounded random draws used by every probabilistic
// decision in the game.
package rng

import (
	"math/rand"
	"time"
)

// Source draws uniformly distributed integers.
type Source interface {
	// IntInRange returns a uniform integer in [min, max], both inclusive.
	IntInRange(min, max int) int
}

// Rand is a seeded Source backed by math/rand.
// It is not safe for concurrent use; each game session owns one.
type Rand struct {
	rng *rand.Rand
}

// New creates a Rand with the given seed. A zero seed uses the current time.
func New(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// IntInRange returns a uniform integer in [min, max].
// Swapped bounds are accepted; equal bounds return that value.
func (r *Rand) IntInRange(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + r.rng.Intn(max-min+1)
}

var _ Source = (*Rand)(nil)
