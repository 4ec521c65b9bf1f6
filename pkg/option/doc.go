// Package option provides Option[T], a two-variant sum type for optional
// values: Some wrapping a value, or None.
//
// Key operations:
//   - Some/None/FromOk/FromPtr: construct an Option
//   - IsSome/IsNone/IsSomeAnd/IsNoneOr: inspect the variant
//   - Map/AndThen/And/Or/OrElse/Xor/Filter/Flatten: compose options
//   - MapOr/MapOrElse: transform with a fallback (the result stays wrapped)
//   - Zip/ZipWith/Unzip: combine and split pairs of options
//   - Transpose/TransposeBack/OkOr/OkOrElse/FromResult/FromResultErr: convert
//     to and from the result algebra
//   - Unwrap/Expect/UnwrapOr/UnwrapOrElse: extract the value (the first two
//     panic on None)
//
// Plainly named combinators (And, Or, MapOr) take already-evaluated
// arguments; the Else/Then variants take closures evaluated only on the
// relevant branch. Whenever both operands could decide the outcome (Xor,
// Zip), the receiver's variant is inspected first.
package option
