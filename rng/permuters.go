package rng

import "github.com/xor-shift/simplerng/util"

// Transition constants, one named set per engine variant. These are part of
// the sequence contract: changing them changes every value a seed produces.
const (
	// the Knuth MMIX multiplier, also the PCG reference multiplier
	LCG64Multiplier uint64 = 6364136223846793005
	LCG64Increment  uint64 = 1

	LCG32Multiplier uint64 = 1664525
	LCG32Increment  uint64 = 1013904223
)

// advances a state word by the full-width congruential step; overflow wraps
// mod 2^64
func lcg64PermuteState(s uint64) uint64 {
	return s*LCG64Multiplier + LCG64Increment
}

// advances a state word by the legacy step: congruential arithmetic in 64
// bits, then only the low 32 bits survive
func lcg32PermuteState(s uint64) uint64 {
	return uint64(uint32(s*LCG32Multiplier + LCG32Increment))
}

// advances a state word with the 64-bit congruential step, then permutes the
// result with an xorshift and a rotation picked from its own top bits
// https://www.pcg-random.org
func pcgPermuteState(s uint64) uint64 {
	s = lcg64PermuteState(s)

	x := ((s >> 18) ^ s) >> 27
	rot := uint(s >> 59)

	return util.RotR(x, rot)
}
