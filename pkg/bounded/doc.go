// Package bounded provides range-checked constructors for branded integer
// types.
//
// A Range brands accepted values with a fixed-width integer type; rejection
// is a Result carrying a tagged out-of-range error, so constructors compose
// with the result combinators instead of panicking.
package bounded
