package fp

import "golang.org/x/exp/constraints"

// Number is the set of types pointwise arithmetic is defined on.
type Number interface {
	constraints.Integer | constraints.Float
}

// Add returns x -> f(x) + g(x).
func Add[T any, R Number](f, g func(T) R) func(T) R {
	return func(x T) R {
		return f(x) + g(x)
	}
}

// Sub returns x -> f(x) - g(x).
func Sub[T any, R Number](f, g func(T) R) func(T) R {
	return func(x T) R {
		return f(x) - g(x)
	}
}

// Mul returns x -> f(x) * g(x).
func Mul[T any, R Number](f, g func(T) R) func(T) R {
	return func(x T) R {
		return f(x) * g(x)
	}
}

// Neg returns x -> -f(x).
func Neg[T any, R Number](f func(T) R) func(T) R {
	return func(x T) R {
		return -f(x)
	}
}

// Scale returns x -> c * f(x).
func Scale[T any, R Number](c R, f func(T) R) func(T) R {
	return func(x T) R {
		return c * f(x)
	}
}

// Sum adds fs pointwise. The empty sum is the zero function.
func Sum[T any, R Number](fs ...func(T) R) func(T) R {
	return func(x T) R {
		var total R
		for _, f := range fs {
			total += f(x)
		}
		return total
	}
}

// Not returns x -> !p(x).
func Not[T any](p func(T) bool) func(T) bool {
	return func(x T) bool {
		return !p(x)
	}
}

// And returns x -> p(x) && q(x).
func And[T any](p, q func(T) bool) func(T) bool {
	return func(x T) bool {
		return p(x) && q(x)
	}
}

// Or returns x -> p(x) || q(x).
func Or[T any](p, q func(T) bool) func(T) bool {
	return func(x T) bool {
		return p(x) || q(x)
	}
}
