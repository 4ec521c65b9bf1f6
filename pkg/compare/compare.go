package compare

// Hashable is implemented by value objects whose identity is captured by a
// stable hash code (see the hashcode package).
type Hashable interface {
	HashCode() uint64
}

// Ordered extends Hashable with a total order over values of the same type.
// CompareTo returns a negative number when the receiver sorts before other,
// zero when they are equal, and a positive number otherwise.
type Ordered[T any] interface {
	Hashable
	CompareTo(other T) int
}

// Equal reports whether two hashable values are equal, judged by hash code.
func Equal(a, b Hashable) bool {
	return a.HashCode() == b.HashCode()
}

// Less reports whether a sorts strictly before b.
func Less[T Ordered[T]](a, b T) bool {
	return a.CompareTo(b) < 0
}

// Max returns the larger of a and b; a wins ties.
func Max[T Ordered[T]](a, b T) T {
	if a.CompareTo(b) >= 0 {
		return a
	}
	return b
}

// Min returns the smaller of a and b; a wins ties.
func Min[T Ordered[T]](a, b T) T {
	if a.CompareTo(b) <= 0 {
		return a
	}
	return b
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp[T Ordered[T]](v, lo, hi T) T {
	if v.CompareTo(lo) < 0 {
		return lo
	}
	if v.CompareTo(hi) > 0 {
		return hi
	}
	return v
}
