// Package hashcode computes stable 64-bit hash codes for value objects.
//
// Codes are deterministic across processes and restarts, which makes them
// safe to use as an equality basis (see the compare package). The underlying
// hash is xxHash.
package hashcode
