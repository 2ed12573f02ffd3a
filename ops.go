// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package statem

// State-access primitives.
// These are the building blocks for computations that inspect or replace
// the threaded state directly.

// Get produces the current state as its value, leaving the state untouched.
func Get[S any]() State[S, S] {
	return func(s S) (S, S) {
		return s, s
	}
}

// Put replaces the current state with the given one.
func Put[S any](s S) State[S, struct{}] {
	return func(S) (S, struct{}) {
		return s, struct{}{}
	}
}

// Modify applies f to the current state and produces the new state as its
// value.
func Modify[S any](f func(S) S) State[S, S] {
	return func(s S) (S, S) {
		next := f(s)
		return next, next
	}
}

// Gets projects a value out of the current state, leaving the state
// untouched.
func Gets[S, V any](f func(S) V) State[S, V] {
	return func(s S) (S, V) {
		return s, f(s)
	}
}
