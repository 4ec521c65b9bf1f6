// Package result provides Result[T, E], a two-variant sum type for
// success/failure control flow without sentinel errors.
//
// Key operations:
//   - Ok/Err/FromPair: construct a Result
//   - IsOk/IsErr/IsOkAnd/IsErrAnd: inspect the variant
//   - Map/MapErr/AndThen/And/Or/OrElse/Flatten: compose results
//   - MapOr/MapOrElse: collapse to a bare value with a fallback
//   - Unwrap/UnwrapErr/Expect/ExpectErr: assert a variant (panic on mismatch)
//   - Try/TryWith/TryCatch/TryCatchWith/TryAwait/TryAwaitWith: capture an
//     effectful computation's outcome as a Result; failures are never re-raised
//   - Collect: aggregate a slice of results, joining all errors
//
// Plainly named combinators (And, Or, MapOr) take already-evaluated
// arguments; the Else/Then variants take closures evaluated only on the
// relevant branch. Callers rely on that distinction to keep side effects off
// the skipped branch.
package result
