package rng

import "fmt"

// Float scaling denominators per engine variant. The canonical path scales
// the top 53 bits of the raw word; the legacy path keeps the old 2^32
// divisor, which is exact because the truncated engine never produces a
// value outside 32 bits.
const (
	floatDenominator       = 1 << 53
	legacyFloatDenominator = 1 << 32
)

// GenRange returns a value in [min, max], both bounds inclusive, consuming
// one raw output. The mapping is a plain modulo reduction: spans that do
// not evenly divide 2^64 carry a slight bias toward the low end, which is
// fine for a non-cryptographic source. Panics unless max > min; clamping
// instead would silently corrupt the distribution the caller asked for.
func (gen *Generator) GenRange(min, max uint64) uint64 {
	if max <= min {
		panic(fmt.Sprintf("rng: invalid range (min: %d, max: %d)", min, max))
	}

	span := max - min + 1
	if span == 0 {
		// max-min+1 wrapped, the requested range is the whole uint64 domain
		return gen.Next() + min
	}

	return (gen.Next() % span) + min
}

// GenFloat returns a value in [0, 1). Dividing the full raw word by 2^64
// rounds to exactly 1.0 near the top of the range, escaping the half-open
// interval, so the canonical path uses the top 53 bits over 2^53 instead.
func (gen *Generator) GenFloat() float64 {
	if gen.algorithm == LCG32 {
		return float64(gen.Next()) / legacyFloatDenominator
	}

	return float64(gen.Next()>>11) / floatDenominator
}

// GenBool returns the low bit of one raw output as a boolean.
func (gen *Generator) GenBool() bool {
	return gen.Next()&1 == 1
}

// GenUnsigned returns a random unsigned integer of the given bit width (8,
// 16, 32 or 64): the low bits of one raw output, zero-extended into a
// uint64. Panics for any other width.
func (gen *Generator) GenUnsigned(width int) uint64 {
	switch width {
	case 8:
		return uint64(uint8(gen.Next()))
	case 16:
		return uint64(uint16(gen.Next()))
	case 32:
		return uint64(uint32(gen.Next()))
	case 64:
		return gen.Next()
	default:
		panic(fmt.Sprintf("rng: unsupported bit width %d", width))
	}
}

// GenSigned returns a random signed integer of the given bit width (8, 16,
// 32 or 64): the low bits of one raw output reinterpreted as two's
// complement, sign-extended into an int64. Panics for any other width.
func (gen *Generator) GenSigned(width int) int64 {
	switch width {
	case 8:
		return int64(int8(gen.Next()))
	case 16:
		return int64(int16(gen.Next()))
	case 32:
		return int64(int32(gen.Next()))
	case 64:
		return int64(gen.Next())
	default:
		panic(fmt.Sprintf("rng: unsupported bit width %d", width))
	}
}

// PickRandom returns a pointer to a uniformly chosen element of slice, or
// nil when the slice is empty. The pointer aliases the caller's backing
// array; nothing is copied or retained by the generator.
func PickRandom[T any](gen *Generator, slice []T) *T {
	if len(slice) == 0 {
		return nil
	}

	if len(slice) == 1 {
		// GenRange demands max > min, which a one-element slice cannot
		// satisfy
		return &slice[0]
	}

	idx := gen.GenRange(0, uint64(len(slice))-1)

	return &slice[idx]
}
