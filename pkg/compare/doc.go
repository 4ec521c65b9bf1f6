// Package compare defines hash-based equality and ordering for value
// objects.
//
// A type opts in by implementing Hashable (equality by stable hash code)
// and, when it has a natural order, Ordered (Hashable plus CompareTo).
// Helpers Equal, Less, Max, Min and Clamp operate on those interfaces.
package compare
