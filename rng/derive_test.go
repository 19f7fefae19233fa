package rng

import "testing"

func mustPanic(t *testing.T, fn func()) {
	t.Helper()

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()

	fn()
}

func TestGenRangeContainment(t *testing.T) {
	gen := New(42)

	for i := 0; i < 10000; i++ {
		v := gen.GenRange(10, 20)
		if v < 10 || v > 20 {
			t.Fatalf("sample %d out of [10, 20]: %d", i, v)
		}
	}
}

func TestGenRangeSmallRangeCoverage(t *testing.T) {
	gen := New(42)

	seen := map[uint64]bool{}
	for i := 0; i < 10000; i++ {
		seen[gen.GenRange(1, 6)] = true
	}

	for face := uint64(1); face <= 6; face++ {
		if !seen[face] {
			t.Fatalf("value %d never produced in 10000 samples", face)
		}
	}
}

func TestGenRangeFullDomain(t *testing.T) {
	gen := New(7)

	// span wraps to 0 here; must not divide by it
	_ = gen.GenRange(0, ^uint64(0))
}

func TestGenFloatBound(t *testing.T) {
	for _, algorithm := range []Algorithm{LCG, LCG32, PCG} {
		gen := New(42)
		gen.SetAlgorithm(algorithm)

		for i := 0; i < 10000; i++ {
			f := gen.GenFloat()
			if f < 0.0 || f >= 1.0 {
				t.Fatalf("algorithm %d, sample %d out of [0, 1): %v", algorithm, i, f)
			}
		}
	}
}

func TestGenBoolDistribution(t *testing.T) {
	gen := New(1)

	trues, falses := 0, 0
	for i := 0; i < 1000; i++ {
		if gen.GenBool() {
			trues++
		} else {
			falses++
		}
	}

	if trues == 0 || falses == 0 {
		t.Fatalf("degenerate boolean stream: %d true, %d false", trues, falses)
	}
}

func TestGenUnsignedTruncation(t *testing.T) {
	limits := map[int]uint64{
		8:  0xFF,
		16: 0xFFFF,
		32: 0xFFFFFFFF,
	}

	for width, limit := range limits {
		gen := New(99)

		for i := 0; i < 1000; i++ {
			if v := gen.GenUnsigned(width); v > limit {
				t.Fatalf("width %d produced %d, above %d", width, v, limit)
			}
		}
	}
}

func TestGenSignedRange(t *testing.T) {
	gen := New(99)

	for i := 0; i < 1000; i++ {
		v := gen.GenSigned(8)

		if v < -128 || v > 127 {
			t.Fatalf("width 8 produced %d, outside [-128, 127]", v)
		}

		// the value must already be its own 8-bit sign extension
		if v != int64(int8(v)) {
			t.Fatalf("width 8 produced %d, which is not sign-extended", v)
		}
	}

	for i := 0; i < 1000; i++ {
		v := gen.GenSigned(16)
		if v != int64(int16(v)) {
			t.Fatalf("width 16 produced %d, which is not sign-extended", v)
		}
	}
}

func TestPickRandomEmpty(t *testing.T) {
	gen := New(5)

	var empty []int
	for i := 0; i < 10; i++ {
		if got := PickRandom(gen, empty); got != nil {
			t.Fatalf("picked %v from an empty slice", *got)
		}

		// mutate the generator between attempts
		_ = gen.Next()
	}
}

func TestPickRandomSingle(t *testing.T) {
	gen := New(5)

	s := []string{"only"}
	got := PickRandom(gen, s)

	if got != &s[0] {
		t.Fatal("single-element pick did not alias the slice")
	}
}

func TestPickRandomAliases(t *testing.T) {
	gen := New(123)

	s := []int{10, 20, 30, 40}
	got := PickRandom(gen, s)
	if got == nil {
		t.Fatal("picked nil from a non-empty slice")
	}

	aliases := false
	for i := range s {
		if got == &s[i] {
			aliases = true
		}
	}

	if !aliases {
		t.Fatalf("returned pointer (%v) does not point into the slice", *got)
	}
}

func TestInvalidArguments(t *testing.T) {
	gen := New(1)

	mustPanic(t, func() { gen.GenRange(5, 5) })
	mustPanic(t, func() { gen.GenRange(10, 1) })
	mustPanic(t, func() { gen.GenUnsigned(24) })
	mustPanic(t, func() { gen.GenUnsigned(0) })
	mustPanic(t, func() { gen.GenSigned(12) })
}

func TestDrainSequence(t *testing.T) {
	gen := New(123)

	v := []int{1, 2, 3, 4}
	for len(v) > 1 {
		idx := gen.GenRange(0, uint64(len(v))-1)
		v = append(v[:idx], v[idx+1:]...)
	}
	v = v[:0]

	if len(v) != 0 {
		t.Fatalf("%d elements left after draining", len(v))
	}

	// three range draws consume three raw outputs; the end state is fixed
	// by the seed
	if gen.state != 851242957276175054 {
		t.Fatalf("unexpected end state %d", gen.state)
	}
}
