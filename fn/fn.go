// Package fn provides statically typed composition helpers for the
// common case where every callable takes one value and returns one
// value.  Everything here is checked at compile time; the reflection
// based zug package handles heterogeneous arities, access modes, and
// late binding.
package fn

// Identity returns its argument unchanged.
func Identity[T any](t T) T { return t }

// Const returns a function that ignores its argument and returns c.
func Const[B, A any](c B) func(A) B {
	return func(A) B { return c }
}

// Compose combines same-typed functions right to left:
// Compose(f, g)(x) is f(g(x)).
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(x T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			x = fns[i](x)
		}
		return x
	}
}

// Pipe combines same-typed functions left to right:
// Pipe(f, g)(x) is g(f(x)).
func Pipe[T any](fns ...func(T) T) func(T) T {
	return func(x T) T {
		for _, fn := range fns {
			x = fn(x)
		}
		return x
	}
}

// Compose2 applies g first, then f: Compose2(f, g)(x) is f(g(x)).
func Compose2[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Compose3 applies h first, then g, then f.
func Compose3[A, B, C, D any](
	f func(C) D,
	g func(B) C,
	h func(A) B,
) func(A) D {
	return Compose2(Compose2(f, g), h)
}

// Compose4 composes four functions right to left.
func Compose4[A, B, C, D, E any](
	f func(D) E,
	g func(C) D,
	h func(B) C,
	i func(A) B,
) func(A) E {
	return Compose2(Compose3(f, g, h), i)
}

// Compose5 composes five functions right to left.
func Compose5[A, B, C, D, E, F any](
	f func(E) F,
	g func(D) E,
	h func(C) D,
	i func(B) C,
	j func(A) B,
) func(A) F {
	return Compose2(Compose4(f, g, h, i), j)
}

// Compose6 composes six functions right to left.
func Compose6[A, B, C, D, E, F, G any](
	f func(F) G,
	g func(E) F,
	h func(D) E,
	i func(C) D,
	j func(B) C,
	k func(A) B,
) func(A) G {
	return Compose2(Compose5(f, g, h, i, j), k)
}

// Compose7 composes seven functions right to left.
func Compose7[A, B, C, D, E, F, G, H any](
	f func(G) H,
	g func(F) G,
	h func(E) F,
	i func(D) E,
	j func(C) D,
	k func(B) C,
	l func(A) B,
) func(A) H {
	return Compose2(Compose6(f, g, h, i, j, k), l)
}

// Compose8 composes eight functions right to left.
func Compose8[A, B, C, D, E, F, G, H, I any](
	f func(H) I,
	g func(G) H,
	h func(F) G,
	i func(E) F,
	j func(D) E,
	k func(C) D,
	l func(B) C,
	m func(A) B,
) func(A) I {
	return Compose2(Compose7(f, g, h, i, j, k, l), m)
}
