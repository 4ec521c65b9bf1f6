package result

// Combinators that change the value or error type live here as package-level
// functions; Go methods cannot introduce type parameters.

// And returns other when r is Ok, otherwise carries r's error forward.
// The argument is evaluated by the caller regardless of the variant.
func And[T, U, E any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if r.ok {
		return other
	}
	return Err[U](r.err)
}

// AndThen applies fn to the contained value when Ok, otherwise carries the
// error forward. fn runs only on the Ok branch.
func AndThen[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return fn(r.value)
	}
	return Err[U](r.err)
}

// Map transforms the contained value when Ok, leaving an Err untouched.
func Map[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.ok {
		return Ok[E](fn(r.value))
	}
	return Err[U](r.err)
}

// MapErr transforms the error payload when Err, leaving an Ok untouched.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return Ok[F](r.value)
	}
	return Err[T](fn(r.err))
}

// MapOr returns fn applied to the contained value when Ok, otherwise def.
// The return is a bare value, not a Result; this is deliberately asymmetric
// with option.MapOr, which re-wraps.
func MapOr[T, U, E any](r Result[T, E], def U, fn func(T) U) U {
	if r.ok {
		return fn(r.value)
	}
	return def
}

// MapOrElse returns fn applied to the contained value when Ok, otherwise
// defFn applied to the error payload. Like MapOr it returns a bare value.
func MapOrElse[T, U, E any](r Result[T, E], defFn func(E) U, fn func(T) U) U {
	if r.ok {
		return fn(r.value)
	}
	return defFn(r.err)
}

// Flatten removes exactly one level of Result nesting.
func Flatten[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	if r.ok {
		return r.value
	}
	return Err[T](r.err)
}
