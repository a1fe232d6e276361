package randutil

import (
	rand "math/rand/v2"

	"github.com/lox/unomatch/uno"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by
// rand/v2 so that all call sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Shuffler returns the production deck shuffler for a seed: a Fisher-Yates
// permutation over a New-seeded generator.
func Shuffler(seed int64) uno.Shuffler {
	return uno.RandomShuffler(New(seed))
}

// DealerRandomizer returns a dealer-selection function for match play,
// mapping a player count to a dealer index drawn from a New-seeded
// generator.
func DealerRandomizer(seed int64) func(playerCount int) int {
	rng := New(seed)
	return func(playerCount int) int {
		return rng.IntN(playerCount)
	}
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
