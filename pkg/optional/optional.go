package optional

import "fmt"

// Optional holds either a value of type T or nothing. Exactly one variant is
// active; instances are immutable and combinators return new instances.
type Optional[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromOk lifts Go's (value, ok) convention, e.g. map lookups.
func FromOk[T any](v T, ok bool) Optional[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr treats a nil pointer as None and dereferences otherwise.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Optional[T]) IsSome() bool {
	return o.ok
}

func (o Optional[T]) IsNone() bool {
	return !o.ok
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// UnwrapOr returns the wrapped value or def when None. Total, never fails.
func (o Optional[T]) UnwrapOr(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// ToPtr returns a pointer to a copy of the value, or nil when None.
func (o Optional[T]) ToPtr() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

func (o Optional[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Map applies f to the wrapped value when present. None passes through and f
// is not invoked.
func Map[T, U any](o Optional[T], f func(T) U) Optional[U] {
	if o.ok {
		return Some(f(o.value))
	}
	return None[U]()
}

// FlatMap chains f over the wrapped value, returning f's Optional directly so
// no nesting is introduced.
func FlatMap[T, U any](o Optional[T], f func(T) Optional[U]) Optional[U] {
	if o.ok {
		return f(o.value)
	}
	return None[U]()
}

// Flatten collapses exactly one level of nesting. Map and FlatMap never do
// this implicitly.
func Flatten[T any](o Optional[Optional[T]]) Optional[T] {
	if o.ok {
		return o.value
	}
	return None[T]()
}

// Fold reduces the Optional to a single value by selecting one of the two
// handlers.
func Fold[T, U any](o Optional[T], onNone func() U, onSome func(T) U) U {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}

// Equal reports whether both are None or both are Some with equal values.
func Equal[T comparable](a, b Optional[T]) bool {
	if a.ok != b.ok {
		return false
	}
	return !a.ok || a.value == b.value
}
