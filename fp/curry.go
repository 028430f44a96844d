package fp

// Curry converts a binary function into its curried form.
//
// Example:
//
//	add := func(a, b int) int { return a + b }
//	curried := Curry(add)
//	addFive := curried(5)
//	result := addFive(3)
func Curry[A any, B any, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return fn(a, b)
		}
	}
}

// Curry3 converts a ternary function into its curried form.
func Curry3[A, B, C, D any](fn func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return Curry(func(b B, c C) D {
			return fn(a, b, c)
		})
	}
}

// RCurry curries a binary function from the right: the first call supplies
// the second parameter.
//
// Example:
//
//	sub := RCurry(func(a, b int) int { return a - b })
//	minusOne := sub(1)
//	fmt.Println(minusOne(10)) // 9
func RCurry[A, B, C any](fn func(A, B) C) func(B) func(A) C {
	return Curry(Flip(fn))
}

// RCurry3 curries a ternary function from the right.
func RCurry3[A, B, C, D any](fn func(A, B, C) D) func(C) func(B) func(A) D {
	return Curry3(func(c C, b B, a A) D {
		return fn(a, b, c)
	})
}

// Uncurry is the inverse of Curry.
func Uncurry[A, B, C any](fn func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return fn(a)(b)
	}
}

// Flip swaps the parameters of a binary function.
func Flip[A, B, C any](fn func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return fn(a, b)
	}
}

// Partial binds the first parameter of a binary function.
func Partial[A, B, C any](fn func(A, B) C, a A) func(B) C {
	return Curry(fn)(a)
}

// RPartial binds the second parameter of a binary function.
func RPartial[A, B, C any](fn func(A, B) C, b B) func(A) C {
	return RCurry(fn)(b)
}
