// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package statem

// Option represents a value that is either present (Some) or absent (None).
// It is the explicit absence type used where a missing value is meaningful,
// notably as the termination signal of a Step function.
type Option[V any] struct {
	present bool
	value   V
}

// Some creates a present value.
func Some[V any](v V) Option[V] {
	return Option[V]{present: true, value: v}
}

// None creates an absent value.
func None[V any]() Option[V] {
	return Option[V]{}
}

// IsSome returns true if the value is present.
func (o Option[V]) IsSome() bool {
	return o.present
}

// IsNone returns true if the value is absent.
func (o Option[V]) IsNone() bool {
	return !o.present
}

// Get returns the value and true, or zero and false.
func (o Option[V]) Get() (V, bool) {
	if o.present {
		return o.value, true
	}
	var zero V
	return zero, false
}

// MatchOption pattern matches on the Option, calling onSome or onNone.
func MatchOption[V, T any](o Option[V], onSome func(V) T, onNone func() T) T {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies a function to the present value.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.present {
		return Some(f(o.value))
	}
	return None[B]()
}

// FlatMapOption sequences two Option computations.
func FlatMapOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.present {
		return f(o.value)
	}
	return None[B]()
}

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}
