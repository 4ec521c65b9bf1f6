package pipe

// Chain wraps a value to enable fluent left-to-right threading when every
// step keeps the same type. It is sugar over Pipe for long same-type
// pipelines.
type Chain[T any] struct {
	v T
}

// From starts a chain at v.
func From[T any](v T) Chain[T] {
	return Chain[T]{v: v}
}

// Then applies fn to the current value and continues the chain.
func (c Chain[T]) Then(fn func(T) T) Chain[T] {
	return Chain[T]{v: fn(c.v)}
}

// Tap runs a side effect against the current value without changing it.
func (c Chain[T]) Tap(fn func(T)) Chain[T] {
	fn(c.v)
	return c
}

// Value ends the chain and returns the threaded value.
func (c Chain[T]) Value() T {
	return c.v
}
