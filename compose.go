// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package statem

// Aggregate combinators for sequencing many computations.
// These evaluate with a loop rather than nested Bind closures, so call depth
// stays constant regardless of how many computations are composed.
// Semantics are identical to the equivalent Bind chain: state threads left
// to right, each computation consuming exactly the state its predecessor
// produced.

// Map2 combines the values of two computations with f.
// ma runs first; mb consumes the state ma produced.
func Map2[S, A, B, C any](ma State[S, A], mb State[S, B], f func(A, B) C) State[S, C] {
	return func(s S) (S, C) {
		s1, a := ma(s)
		s2, b := mb(s1)
		return s2, f(a, b)
	}
}

// Map3 combines the values of three computations with f.
// Computations run in argument order, threading the state through each.
func Map3[S, A, B, C, D any](ma State[S, A], mb State[S, B], mc State[S, C], f func(A, B, C) D) State[S, D] {
	return func(s S) (S, D) {
		s1, a := ma(s)
		s2, b := mb(s1)
		s3, c := mc(s2)
		return s3, f(a, b, c)
	}
}

// Collect runs the computations in order and produces their values in the
// same order.
func Collect[S, V any](ms []State[S, V]) State[S, []V] {
	return func(s S) (S, []V) {
		vs := make([]V, len(ms))
		for i, m := range ms {
			s, vs[i] = m(s)
		}
		return s, vs
	}
}

// Replicate runs m n times and produces the n values in draw order.
// Each run consumes the state produced by the previous one.
func Replicate[S, V any](n int, m State[S, V]) State[S, []V] {
	return func(s S) (S, []V) {
		vs := make([]V, max(n, 0))
		for i := range vs {
			s, vs[i] = m(s)
		}
		return s, vs
	}
}

// Traverse maps each element of xs to a computation with f and runs the
// computations in element order, producing the results in the same order.
func Traverse[S, A, B any](xs []A, f func(A) State[S, B]) State[S, []B] {
	return func(s S) (S, []B) {
		bs := make([]B, len(xs))
		for i, x := range xs {
			s, bs[i] = f(x)(s)
		}
		return s, bs
	}
}

// Fold runs the computations in order, accumulating their values with f
// starting from init. Unlike Collect, no intermediate slice is built.
func Fold[S, V, A any](ms []State[S, V], init A, f func(A, V) A) State[S, A] {
	return func(s S) (S, A) {
		acc := init
		for _, m := range ms {
			var v V
			s, v = m(s)
			acc = f(acc, v)
		}
		return s, acc
	}
}
