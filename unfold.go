// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package statem

import "iter"

// Unfolding: lazy sequence generation from an initial state and a step
// function, driven one value at a time by an external consumer.

// Step is the transition contract for unfolding.
// A step consumes a state and either produces the next value together with
// the state for the following invocation, or returns None to terminate the
// sequence.
type Step[S, V any] func(S) Option[Pair[V, S]]

// Unfold produces a lazy sequence of values from an initial state and a
// step function. The state returned by each step is exactly the state
// consumed by the next; the sequence ends when the step returns None or
// the consumer stops pulling.
//
// The sequence holds no mutable cursor: every range over it restarts from
// the captured initial state, so iterating twice yields the same values.
//
// The sequence is infinite unless the step's own logic terminates it; cap
// consumption with Take when ranging over an unbounded step.
func Unfold[S, V any](initial S, step Step[S, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		s := initial
		for {
			p, ok := step(s).Get()
			if !ok {
				return
			}
			if !yield(p.Fst) {
				return
			}
			s = p.Snd
		}
	}
}

// Forever adapts a computation into a step that never terminates.
// Each invocation runs the computation on the incoming state and passes the
// produced state to the next invocation.
func Forever[S, V any](m State[S, V]) Step[S, V] {
	return func(s S) Option[Pair[V, S]] {
		next, v := m(s)
		return Some(Pair[V, S]{Fst: v, Snd: next})
	}
}

// Take caps a sequence at n values.
// The counter lives inside each range, so a capped sequence remains
// re-rangeable like its source.
func Take[V any](n int, seq iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		if n <= 0 {
			return
		}
		remaining := n
		for v := range seq {
			if !yield(v) {
				return
			}
			remaining--
			if remaining == 0 {
				return
			}
		}
	}
}
