// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package statem

// Monad operations for state-threading computations.
//
// Minimal definition: Pure (unit) and Bind are necessary and sufficient.
// Map and Then are derived operations kept as optimizations to avoid
// intermediate closure allocations.

// Bind sequences two computations (monadic bind).
// The resulting computation runs m on the incoming state, passes the produced
// value to f, and runs the computation returned by f on the state m produced.
//
// Ordering: m's transition always executes strictly before the computation
// returned by f, and the state consumed by the second is exactly the state
// produced by the first.
//
// Failures from m or f propagate to the caller unchanged.
func Bind[S, A, B any](m State[S, A], f func(A) State[S, B]) State[S, B] {
	return func(s S) (S, B) {
		s1, a := m(s)
		return f(a)(s1)
	}
}

// Map applies a pure function to the produced value.
// The new state is passed through unchanged. Composition is lazy: the
// underlying transition executes only when the resulting computation is run,
// and every run re-executes it — there is no caching.
//
// Allocation note: Map is equivalent to Bind(m, compose(Pure, f)) but
// avoids the intermediate Pure closure, making it the preferred choice
// when the transformation is pure.
func Map[S, A, B any](m State[S, A], f func(A) B) State[S, B] {
	return func(s S) (S, B) {
		s1, a := m(s)
		return s1, f(a)
	}
}

// Then sequences two computations, discarding the first value.
// This is more efficient than Bind when the second computation
// does not depend on the first value.
//
// Allocation note: Then avoids the closure capture of a transformation
// function that would occur with Bind(m, func(_ A) { return n }).
func Then[S, A, B any](m State[S, A], n State[S, B]) State[S, B] {
	return func(s S) (S, B) {
		s1, _ := m(s)
		return n(s1)
	}
}
