package option

import "github.com/neono-dev/tstd/pkg/result"

// Combinators that change the contained type live here as package-level
// functions; Go methods cannot introduce type parameters. Conversions
// between Option and Result also live here, on the option side, keeping the
// dependency between the two algebras one-directional.

// And returns other when o is Some, otherwise None. The argument is
// evaluated by the caller regardless of the variant; use AndThen when it is
// expensive or has side effects.
func And[T, U any](o Option[T], other Option[U]) Option[U] {
	if o.some {
		return other
	}
	return None[U]()
}

// AndThen applies fn to the contained value when Some, otherwise None. fn
// runs only on the Some branch.
func AndThen[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.some {
		return fn(o.value)
	}
	return None[U]()
}

// Map transforms the contained value when Some, leaving None untouched.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if o.some {
		return Some(fn(o.value))
	}
	return None[U]()
}

// MapOr returns Some of fn applied to the contained value, or Some(def) when
// None. The return stays wrapped so further Option combinators chain after
// it; this is deliberately asymmetric with result.MapOr, which returns bare
// values.
func MapOr[T, U any](o Option[T], def U, fn func(T) U) Option[U] {
	if o.some {
		return Some(fn(o.value))
	}
	return Some(def)
}

// MapOrElse is MapOr with a lazily-evaluated default. Like MapOr the return
// stays wrapped in Some.
func MapOrElse[T, U any](o Option[T], defFn func() U, fn func(T) U) Option[U] {
	if o.some {
		return Some(fn(o.value))
	}
	return Some(defFn())
}

// Flatten removes exactly one level of Option nesting; Some(None) and None
// both flatten to None.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if o.some {
		return o.value
	}
	return None[T]()
}

// Pair holds the two values produced by Zip and consumed by Unzip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip pairs two options: Some(Pair) when both are Some, otherwise None. The
// receiver-side option is inspected first.
func Zip[T, U any](o Option[T], other Option[U]) Option[Pair[T, U]] {
	if o.some && other.some {
		return Some(Pair[T, U]{First: o.value, Second: other.value})
	}
	return None[Pair[T, U]]()
}

// ZipWith combines two options through fn when both are Some, otherwise
// None.
func ZipWith[T, U, R any](o Option[T], other Option[U], fn func(T, U) R) Option[R] {
	if o.some && other.some {
		return Some(fn(o.value, other.value))
	}
	return None[R]()
}

// Unzip splits an Option of a Pair into an Option per side; None splits into
// two Nones.
func Unzip[A, B any](o Option[Pair[A, B]]) (Option[A], Option[B]) {
	if o.some {
		return Some(o.value.First), Some(o.value.Second)
	}
	return None[A](), None[B]()
}

// Transpose turns an Option of a Result inside out: Some(Ok(v)) becomes
// Ok(Some(v)), Some(Err(e)) becomes Err(e), and None becomes Ok(None) — no
// failure is synthesized for absence.
func Transpose[T, E any](o Option[result.Result[T, E]]) result.Result[Option[T], E] {
	if !o.some {
		return result.Ok[E](None[T]())
	}
	return result.Map(o.value, Some[T])
}

// TransposeBack is the inverse of Transpose: Ok(Some(v)) becomes
// Some(Ok(v)), Ok(None) becomes None, and Err(e) becomes Some(Err(e)).
func TransposeBack[T, E any](r result.Result[Option[T], E]) Option[result.Result[T, E]] {
	if o, ok := r.Get(); ok {
		return Map(o, result.Ok[E, T])
	}
	e, _ := r.GetErr()
	return Some(result.Err[T](e))
}

// OkOr converts the Option to a Result, manufacturing err on the None case.
func OkOr[T, E any](o Option[T], err E) result.Result[T, E] {
	if o.some {
		return result.Ok[E](o.value)
	}
	return result.Err[T](err)
}

// OkOrElse is OkOr with a lazily-manufactured error. errFn runs only on the
// None branch.
func OkOrElse[T, E any](o Option[T], errFn func() E) result.Result[T, E] {
	if o.some {
		return result.Ok[E](o.value)
	}
	return result.Err[T](errFn())
}

// FromResult embeds a Result's success in an Option, discarding the error
// payload: Ok(v) becomes Some(v), Err becomes None.
func FromResult[T, E any](r result.Result[T, E]) Option[T] {
	return FromOk(r.Get())
}

// FromResultErr is the error-side counterpart of FromResult: Err(e) becomes
// Some(e), Ok becomes None.
func FromResultErr[T, E any](r result.Result[T, E]) Option[E] {
	return FromOk(r.GetErr())
}
