package engine

import (
	"time"

	"golang.org/x/exp/rand"
)

// RandSource supplies uniform integers in [0, n) for food placement
type RandSource interface {
	Intn(n int) int
}

// NewRand returns a PRNG seeded with seed, or with the current time when seed is 0
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}
