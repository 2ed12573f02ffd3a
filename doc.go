// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package statem provides direct-style state-threading computations in Go.
//
// The core type [State] represents a pure transition function from a state
// value to a pair of a new state and a produced value. Composition operators
// thread the state through chains of computations, replacing in-place
// mutation of shared state with explicit, immutable state values.
//
// # Design Philosophy
//
// statem provides:
//   - A minimal but complete core: [Pure] and [Bind] with derived [Map]
//     and [Then]
//   - Referential transparency as the central contract: the same
//     computation applied to the same state always yields the same pair
//   - Error transparency: failures from wrapped functions propagate to the
//     caller of Run unchanged, never caught or suppressed
//
// # Core Operations
//
// Minimal monad operations:
//
//   - [Pure]: Lift a value into a computation that leaves the state alone
//   - [Bind]: Sequence two computations, threading the state through both
//
// Derived operations:
//
//   - [Map]: Adapt the produced value, passing the state through unchanged
//   - [Then]: Sequence, discarding the first value
//
// Construction and execution:
//
//   - [New]: Create a computation from a transition function
//   - [State.Run]: Apply the transition, returning (new state, value)
//   - [State.Eval], [State.Exec]: Projections of Run
//
// # State Access
//
//   - [Get], [Put], [Modify], [Gets]: Primitives for computations that
//     inspect or replace the threaded state directly
//
// # Aggregate Combinators
//
// Loop-based sequencing of many computations with constant call depth:
//
//   - [Map2], [Map3]: Combine the values of several computations
//   - [Collect]: Run a slice of computations in order
//   - [Replicate]: Run one computation n times
//   - [Traverse]: Map elements to computations and run them in order
//   - [Fold]: Accumulate values without building a slice
//
// # Unfolding
//
// Lazy sequence generation from an initial state and a [Step] function,
// terminating when the step returns [None]:
//
//   - [Unfold]: Produce an iter.Seq, re-rangeable from the initial state
//   - [Forever]: Adapt a computation into a non-terminating step
//   - [Take]: Cap consumption of an unbounded sequence
//
// # Option Type
//
// [Option] models explicit absence (the unfold termination signal):
//
//   - [Some], [None]: Constructors
//   - [Option.IsSome], [Option.IsNone], [Option.Get]: Accessors
//   - [MatchOption], [MapOption], [FlatMapOption]: Combinators
//   - [Pair]: Tuple type for step results
//
// # Deterministic Generator
//
// A seedable linear congruential generator serves as the worked example of
// state threading. [Next] documents the exact seed-to-output contract;
// [NextUint64], [IntN], [Bool], and [Roll] expose draws as computations
// over [Seed] state.
//
// # Example
//
//	triple := statem.Bind(statem.Roll(), func(a int) statem.State[statem.Seed, [3]int] {
//		return statem.Bind(statem.Roll(), func(b int) statem.State[statem.Seed, [3]int] {
//			return statem.Map(statem.Roll(), func(c int) [3]int {
//				return [3]int{a, b, c}
//			})
//		})
//	})
//
//	_, dice := triple.Run(0) // same seed, same dice, every run
package statem
