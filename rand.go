// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package statem

// Deterministic seedable generator, the canonical example domain for
// state-threading computations.
//
// The generator is Knuth's MMIX linear congruential generator:
//
//	seed' = seed*6364136223846793005 + 1442695040888963407  (mod 2^64)
//
// Contract: Next is total and deterministic — the same seed always yields
// the same (next seed, draw) pair. The raw draw is the new seed value
// itself; derived computations reduce it to the range they need.

// Seed is the threaded generator state.
// A Seed is an ordinary immutable value: advancing the generator produces a
// new Seed rather than mutating the old one, so independent chains started
// from the same Seed observe identical draws.
type Seed uint64

const (
	mmixMultiplier = 6364136223846793005
	mmixIncrement  = 1442695040888963407
)

// Next advances the seed and returns the new seed with the raw 64-bit draw.
// Arithmetic wraps modulo 2^64 per Go's defined uint64 overflow.
func Next(s Seed) (Seed, uint64) {
	next := s*mmixMultiplier + mmixIncrement
	return next, uint64(next)
}

// NextUint64 is Next as a computation over Seed state.
func NextUint64() State[Seed, uint64] {
	return func(s Seed) (Seed, uint64) {
		return Next(s)
	}
}

// IntN produces a draw in [0, n). Panics if n is not positive.
// Reduction is by modulo; the resulting bias is negligible for n far below
// 2^64 and acceptable for this generator's illustrative role.
func IntN(n int) State[Seed, int] {
	if n <= 0 {
		panic("statem: IntN requires positive n")
	}
	return Map(NextUint64(), func(raw uint64) int {
		return int(raw % uint64(n))
	})
}

// Bool produces a draw from the top bit of the raw output.
func Bool() State[Seed, bool] {
	return Map(NextUint64(), func(raw uint64) bool {
		return raw>>63 == 1
	})
}

// Roll produces a die face in [1, 6].
func Roll() State[Seed, int] {
	return Map(IntN(6), func(face int) int {
		return face + 1
	})
}
