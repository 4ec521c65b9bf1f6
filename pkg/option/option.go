package option

import "fmt"

// Option represents an optional value: Some wrapping a value of type T, or
// None. The zero value is None, so Options embed safely. Values are stored
// inline and never cloned; an Option holding a reference type aliases it.
//
// An Option is in exactly one variant. Values are immutable; combinators
// either return the receiver unchanged or construct a fresh Option. None has
// no canonical instance: all comparisons are structural, and every
// None[T]() is interchangeable with every other.
type Option[T any] struct {
	value T
	some  bool
}

// Some creates an Option wrapping value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

// None creates an empty Option of the given type.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk converts Go's (value, ok) idiom, as returned by map lookups and
// type assertions, into an Option.
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// FromPtr creates an Option from a pointer, treating nil as None. The
// pointee is not copied.
func FromPtr[T any](ptr *T) Option[*T] {
	if ptr == nil {
		return None[*T]()
	}
	return Some(ptr)
}

// IsSome reports whether the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// IsSomeAnd reports whether the Option is Some and its value satisfies pred.
func (o Option[T]) IsSomeAnd(pred func(T) bool) bool {
	return o.some && pred(o.value)
}

// IsNoneOr reports whether the Option is None or its value satisfies pred.
func (o Option[T]) IsNoneOr(pred func(T) bool) bool {
	return !o.some || pred(o.value)
}

// Filter keeps the value only when pred holds for it; otherwise None.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}
	return None[T]()
}

// Inspect calls fn with the contained value when Some and returns the
// receiver unchanged. No-op on None.
func (o Option[T]) Inspect(fn func(T)) Option[T] {
	if o.some {
		fn(o.value)
	}
	return o
}

// Or returns the receiver when Some, otherwise other. The alternative is
// evaluated by the caller regardless of the variant; use OrElse when it is
// expensive or has side effects.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

// OrElse returns the receiver when Some, otherwise the result of fn. fn runs
// only on the None branch.
func (o Option[T]) OrElse(fn func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return fn()
}

// Xor returns whichever of the receiver and other is Some when exactly one
// of them is; otherwise None. The receiver is inspected first.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	if o.some && !other.some {
		return o
	}
	if !o.some && other.some {
		return other
	}
	return None[T]()
}

// Unwrap returns the contained value.
//
// Panics when the Option is None; reserve it for states known to be
// unreachable and prefer UnwrapOr or UnwrapOrElse in normal control flow.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic("Called `Option.unwrap()` on a `None` value")
	}
	return o.value
}

// Expect returns the contained value. Panics with msg, verbatim, when the
// Option is None.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic(msg)
	}
	return o.value
}

// UnwrapOr returns the contained value, or def when None.
func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// UnwrapOrElse returns the contained value, or the result of fn when None.
// fn runs only on the None branch.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.some {
		return o.value
	}
	return fn()
}

// Get returns the contained value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// ToPtr returns a pointer to a copy of the contained value, or nil when
// None.
func (o Option[T]) ToPtr() *T {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

// String implements fmt.Stringer for debugging output.
func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
