// Package duration provides an immutable duration value object with
// millisecond resolution, hash-based comparability and result-typed
// division.
package duration
