// Package fp is the statically typed counterpart of the function, predicate
// and curry packages: the same combinators over plain Go funcs, checked by
// the compiler instead of dispatched at run time.
//
// Example:
//
//	value := fp.Pipe("go",
//		func(s string) string { return strings.ToUpper(s) },
//		func(s string) string { return s + "!" },
//	)
package fp

// Identity returns the supplied value unchanged.
//
// Example:
//
//	value := Identity(42)
func Identity[T any](v T) T {
	return v
}

// Constant returns a function that always returns v.
//
// Example:
//
//	getDefault := Constant(time.Minute)
//	fmt.Println(getDefault())
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Always returns a unary function that ignores its argument and returns v.
//
// Example:
//
//	zero := Always[string](0)
//	fmt.Println(zero("anything")) // 0
func Always[A, T any](v T) func(A) T {
	return func(A) T {
		return v
	}
}

// Pipe applies a sequence of functions to value. All functions must accept and
// return the same type.
//
// Example:
//
//	result := Pipe(2,
//		func(n int) int { return n * 2 },
//		func(n int) int { return n + 1 },
//	)
func Pipe[T any](value T, fns ...func(T) T) T {
	result := value
	for _, fn := range fns {
		result = fn(result)
	}
	return result
}

// Compose composes functions in right-to-left order.
//
// Example:
//
//	fn := Compose(
//		func(n int) int { return n * 2 },
//		func(n int) int { return n + 3 },
//	)
//	value := fn(5)
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		result := value
		for i := len(fns) - 1; i >= 0; i-- {
			result = fns[i](result)
		}
		return result
	}
}

// After returns f ∘ g: g runs first and may change the type.
//
// Example:
//
//	length := After(func(n int) bool { return n > 3 }, func(s string) int { return len(s) })
//	fmt.Println(length("gopher")) // true
func After[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Then returns g ∘ f: f runs first.
func Then[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return After(g, f)
}
