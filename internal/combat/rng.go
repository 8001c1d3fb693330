package combat

import "math/rand"

// RNG is the engine's injected pseudo-random source: every dice roll and
// chance check goes through it, so a round replays bit-for-bit given the
// identical RoundInput + RNG state, and the engine never reaches for
// package-level math/rand directly.
type RNG interface {
	// Intn returns a pseudo-random int in [0, n).
	Intn(n int) int
	// Float64 returns a pseudo-random float64 in [0, 1).
	Float64() float64
}

// NewSeededRNG seeds a PRNG from the round number and a caster instance id,
// matching
func NewSeededRNG(roundNumber int, casterInstanceSeed int64) RNG {
	seed := int64(roundNumber)*1_000_003 + casterInstanceSeed
	return rand.New(rand.NewSource(seed))
}
