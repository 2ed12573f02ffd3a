// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package statem

// State represents a state-threading computation.
// State[S, V] consumes a state of type S and produces a new state of type S
// together with a value of type V.
//
// A computation is a pure transition function: running the same computation
// with the same input state always yields the same (state, value) pair.
// State values are never mutated in place — every transition produces a new
// state value. Computations are immutable after construction and may be run
// from multiple goroutines concurrently without coordination, provided the
// wrapped transition functions are themselves free of shared mutable state.
type State[S, V any] func(S) (S, V)

// Pure lifts a value into a computation that leaves the state untouched.
// The resulting computation returns the incoming state unchanged alongside
// the given value.
func Pure[S, V any](v V) State[S, V] {
	return func(s S) (S, V) {
		return s, v
	}
}

// New creates a computation from a transition function.
// This is the primitive constructor for computations that need direct
// access to the incoming state.
func New[S, V any](f func(S) (S, V)) State[S, V] {
	return State[S, V](f)
}

// Run applies the transition to the given state and returns the new state
// with the produced value.
// Failures raised by the wrapped function propagate to the caller
// unchanged — Run neither catches nor suppresses them.
func (m State[S, V]) Run(s S) (S, V) {
	return m(s)
}

// Eval runs the computation and returns only the produced value.
func (m State[S, V]) Eval(s S) V {
	_, v := m(s)
	return v
}

// Exec runs the computation and returns only the final state.
func (m State[S, V]) Exec(s S) S {
	final, _ := m(s)
	return final
}
