package result

import (
	"fmt"

	"github.com/okutsen/lawcheck/pkg/optional"
)

// Result holds either a success value of type T or a failure value of type E.
// Exactly one variant is active; instances are immutable and combinators
// return new instances. E is a full type parameter so MapErr can change it.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, ok: true}
}

func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// Catch runs op once, synchronously, and captures its outcome: a normal
// return becomes Ok, a non-nil error becomes Err. This is the only bridge
// from the error-return execution model into the value model.
func Catch[T any](op func() (T, error)) Result[T, error] {
	v, err := op()
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

// FromTuple converts an already-evaluated (value, error) pair.
func FromTuple[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.ok
}

// ErrValue returns the failure payload and whether the Result is Err.
func (r Result[T, E]) ErrValue() (E, bool) {
	return r.err, !r.ok
}

// UnwrapOr returns the success value or def when Err. Total, never fails.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// Map applies f to the success value; Err passes through untouched and f is
// not invoked.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](f(r.value))
	}
	return Err[U](r.err)
}

// MapErr applies f to the failure payload; Ok passes through untouched.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T](f(r.err))
}

// FlatMap chains f over the success value, returning f's Result directly.
// The error type is the same on both sides, which is what keeps chains flat.
func FlatMap[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return f(r.value)
	}
	return Err[U](r.err)
}

// Fold reduces the Result to a single value by selecting one of the two
// handlers.
func Fold[T, E, U any](r Result[T, E], onOk func(T) U, onErr func(E) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// ToOptional keeps the success value and discards the failure payload.
func ToOptional[T, E any](r Result[T, E]) optional.Optional[T] {
	if r.ok {
		return optional.Some(r.value)
	}
	return optional.None[T]()
}

// Equal reports whether both are Ok with equal values or both are Err with
// equal payloads. The combinators themselves never compare payloads; this is
// for callers and tests.
func Equal[T, E comparable](a, b Result[T, E]) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return a.value == b.value
	}
	return a.err == b.err
}
