package result

import (
	"context"
	"fmt"

	"github.com/neono-dev/tstd/pkg/taggederr"
)

// TagCaught is the tag stamped on errors produced when a capture constructor
// recovers a panic without a custom catch mapping.
const TagCaught = "CaughtError"

// panicError normalizes a recovered panic value into an error.
func panicError(rec any) error {
	if err, ok := rec.(error); ok {
		return err
	}
	return fmt.Errorf("%v", rec)
}

func caught(rec any) error {
	err := panicError(rec)
	return taggederr.Wrap(TagCaught, err.Error(), err)
}

// TryCatch runs f and captures its outcome: Ok with the returned value on
// normal completion, Err when f panics. The recovered failure is wrapped in
// a tagged error (TagCaught) and never re-raised.
func TryCatch[T any](f func() T) (res Result[T, error]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Err[T](caught(rec))
		}
	}()
	return Ok[error](f())
}

// TryCatchWith is TryCatch with a caller-supplied catch mapping: a recovered
// failure is normalized to an error and passed through catch to produce the
// Err payload.
func TryCatchWith[T, E any](f func() T, catch func(error) E) (res Result[T, E]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Err[T](catch(panicError(rec)))
		}
	}()
	return Ok[E](f())
}

// Try runs an effectful computation in Go's native (value, error) shape and
// converts its outcome into a Result. A returned error becomes Err with that
// error unchanged; a panic is captured like TryCatch does.
func Try[T any](f func() (T, error)) (res Result[T, error]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Err[T](caught(rec))
		}
	}()
	return FromPair(f())
}

// TryWith is Try with a caller-supplied catch mapping applied to the
// returned error or to the normalized panic failure.
func TryWith[T, E any](f func() (T, error), catch func(error) E) (res Result[T, E]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Err[T](catch(panicError(rec)))
		}
	}()
	v, err := f()
	if err != nil {
		return Err[T](catch(err))
	}
	return Ok[E](v)
}

// TryAwait is the asynchronous capture form: it awaits a blocking,
// context-aware computation and converts its outcome into a Result under the
// same rules as Try. The context is handed to the computation, not raced
// against it; once invoked, f runs to completion or failure.
func TryAwait[T any](ctx context.Context, f func(context.Context) (T, error)) (res Result[T, error]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Err[T](caught(rec))
		}
	}()
	return FromPair(f(ctx))
}

// TryAwaitWith is TryAwait with a caller-supplied catch mapping.
func TryAwaitWith[T, E any](ctx context.Context, f func(context.Context) (T, error), catch func(error) E) (res Result[T, E]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Err[T](catch(panicError(rec)))
		}
	}()
	v, err := f(ctx)
	if err != nil {
		return Err[T](catch(err))
	}
	return Ok[E](v)
}
