package pipe

// Pipe threads start through fns strictly left to right, each function
// receiving the previous one's output. With no functions it returns start
// unchanged. Pipe performs no error handling of its own: a panic inside any
// step propagates immediately and aborts the rest of the chain.
func Pipe[T any](start T, fns ...func(T) T) T {
	v := start
	for _, fn := range fns {
		v = fn(v)
	}
	return v
}

// The fixed-arity forms below thread a value through steps whose types
// differ. Go has no variadic type parameters, so each chain length gets its
// own function; Pipe8 is the longest chain observed in practice.

func Pipe2[A, B, C any](start A, f1 func(A) B, f2 func(B) C) C {
	return f2(f1(start))
}

func Pipe3[A, B, C, D any](start A, f1 func(A) B, f2 func(B) C, f3 func(C) D) D {
	return f3(Pipe2(start, f1, f2))
}

func Pipe4[A, B, C, D, E any](start A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E) E {
	return f4(Pipe3(start, f1, f2, f3))
}

func Pipe5[A, B, C, D, E, F any](start A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F) F {
	return f5(Pipe4(start, f1, f2, f3, f4))
}

func Pipe6[A, B, C, D, E, F, G any](start A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F, f6 func(F) G) G {
	return f6(Pipe5(start, f1, f2, f3, f4, f5))
}

func Pipe7[A, B, C, D, E, F, G, H any](start A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F, f6 func(F) G, f7 func(G) H) H {
	return f7(Pipe6(start, f1, f2, f3, f4, f5, f6))
}

func Pipe8[A, B, C, D, E, F, G, H, I any](start A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F, f6 func(F) G, f7 func(G) H, f8 func(H) I) I {
	return f8(Pipe7(start, f1, f2, f3, f4, f5, f6, f7))
}
