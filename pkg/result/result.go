package result

import "fmt"

// Result represents either success carrying a value of type T or failure
// carrying an error payload of type E. E is unconstrained: it does not have
// to implement the error interface, any type is a legal payload.
//
// A Result is in exactly one variant. Values are immutable; combinators
// either return the receiver unchanged or construct a fresh Result. The zero
// value is Err with a zero payload.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok creates a successful Result wrapping value. The error type parameter
// comes first so that it alone needs spelling out at call sites:
//
//	result.Ok[error](42)
func Ok[E, T any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err creates a failed Result wrapping err:
//
//	result.Err[int]("boom")
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err, ok: false}
}

// FromPair converts a conventional (value, error) return into a Result,
// treating a nil error as success.
func FromPair[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[error](value)
}

// IsOk reports whether the Result is the success variant.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the Result is the failure variant.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// IsOkAnd reports whether the Result is Ok and its value satisfies pred.
func (r Result[T, E]) IsOkAnd(pred func(T) bool) bool {
	return r.ok && pred(r.value)
}

// IsErrAnd reports whether the Result is Err and its payload satisfies pred.
func (r Result[T, E]) IsErrAnd(pred func(E) bool) bool {
	return !r.ok && pred(r.err)
}

// Inspect calls fn with the contained value when Ok and returns the receiver
// unchanged. No-op on Err.
func (r Result[T, E]) Inspect(fn func(T)) Result[T, E] {
	if r.ok {
		fn(r.value)
	}
	return r
}

// InspectErr calls fn with the error payload when Err and returns the
// receiver unchanged. No-op on Ok.
func (r Result[T, E]) InspectErr(fn func(E)) Result[T, E] {
	if !r.ok {
		fn(r.err)
	}
	return r
}

// Or returns the receiver when Ok, otherwise other. The alternative is
// evaluated by the caller regardless of the variant; use OrElse when the
// alternative is expensive or has side effects.
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return other
}

// OrElse returns the receiver when Ok, otherwise the result of fn applied to
// the error payload. fn runs only on the Err branch.
func (r Result[T, E]) OrElse(fn func(E) Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return fn(r.err)
}

// Unwrap returns the contained value.
//
// Panics when the Result is Err; reserve it for states known to be
// unreachable and prefer UnwrapOr or UnwrapOrElse in normal control flow.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(fmt.Sprintf("Called `Result.unwrap()` on an `Err` value: %v", r.err))
	}
	return r.value
}

// UnwrapErr returns the error payload. Panics when the Result is Ok.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(fmt.Sprintf("Called `Result.unwrapErr()` on an `Ok` value: %v", r.value))
	}
	return r.err
}

// UnwrapOr returns the contained value, or def when Err.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// UnwrapOrElse returns the contained value, or fn applied to the error
// payload when Err. fn runs only on the Err branch.
func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.err)
}

// Expect returns the contained value. Panics with msg, verbatim, when the
// Result is Err.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(msg)
	}
	return r.value
}

// ExpectErr returns the error payload. Panics with msg, verbatim, when the
// Result is Ok.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		panic(msg)
	}
	return r.err
}

// Get returns the contained value and whether it is present.
func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.ok
}

// GetErr returns the error payload and whether it is present.
func (r Result[T, E]) GetErr() (E, bool) {
	return r.err, !r.ok
}

// String implements fmt.Stringer for debugging output.
func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
