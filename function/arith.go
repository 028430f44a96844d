package function

import (
	"errors"

	"github.com/charmingruby/pointfree/compose"
	"github.com/charmingruby/pointfree/internal/numeric"
)

// ErrDivisionByZero is raised when a quotient is evaluated with a zero divisor.
var ErrDivisionByZero = numeric.ErrDivisionByZero

type binaryFunc func(a, b any) (any, error)

// arith runs fn and reports non-numeric operands as unsupported.
func arith(op string, fn binaryFunc, a, b any) (any, error) {
	res, err := fn(a, b)
	if errors.Is(err, numeric.ErrNotNumber) {
		return nil, compose.Unsupported(op, a, b)
	}
	return res, err
}

func (f Function) unary(op string, fn func(any) (any, error)) Function {
	return func(x any) any {
		v := f(x)
		res, err := fn(v)
		if err != nil {
			compose.Raise(compose.UnsupportedUnary(op, v))
		}
		return res
	}
}

// pointwise builds x -> left(x) op right(x). reflected puts other on the left.
func (f Function) pointwise(op string, other any, fn binaryFunc, reflected bool) (Function, error) {
	g, ok := compose.Unary(other)
	if !ok {
		if reflected {
			return nil, compose.Unsupported(op, other, f)
		}
		return nil, compose.Unsupported(op, f, other)
	}
	left, right := f, Function(g)
	if reflected {
		left, right = right, left
	}
	return func(x any) any {
		a := left(x)
		b := right(x)
		return compose.Must(arith(op, fn, a, b))
	}, nil
}

// Plus returns x -> +f(x).
func (f Function) Plus() Function {
	return f.unary("unary +", numeric.Pos)
}

// Negate returns x -> -f(x).
func (f Function) Negate() Function {
	return f.unary("unary -", numeric.Neg)
}

// Add returns x -> f(x) + other(x). other must be callable.
func (f Function) Add(other any) (Function, error) {
	return f.pointwise("+", other, numeric.Add, false)
}

// Sub returns x -> f(x) - other(x).
func (f Function) Sub(other any) (Function, error) {
	return f.pointwise("-", other, numeric.Sub, false)
}

// Mul returns x -> f(x) * other(x). Multiplying by a scalar is RMul.
func (f Function) Mul(other any) (Function, error) {
	return f.pointwise("*", other, numeric.Mul, false)
}

// Div returns x -> f(x) / other(x) as a float64 quotient.
func (f Function) Div(other any) (Function, error) {
	return f.pointwise("/", other, numeric.TrueDiv, false)
}

// FloorDiv returns x -> f(x) // other(x), rounded toward negative infinity.
func (f Function) FloorDiv(other any) (Function, error) {
	return f.pointwise("//", other, numeric.FloorDiv, false)
}

// Pow returns x -> f(x) ** exp. exp must be a real number.
func (f Function) Pow(exp any) (Function, error) {
	if !numeric.IsNumber(exp) {
		return nil, compose.Unsupported("**", f, exp)
	}
	return func(x any) any {
		return compose.Must(arith("**", numeric.Pow, f(x), exp))
	}, nil
}

// RAdd returns x -> other(x) + f(x). A numeric zero on the left returns f
// itself, which lets a sum seeded with 0 fold over Functions.
func (f Function) RAdd(other any) (Function, error) {
	if numeric.IsZero(other) {
		return f, nil
	}
	return f.pointwise("+", other, numeric.Add, true)
}

// RSub returns x -> other(x) - f(x).
func (f Function) RSub(other any) (Function, error) {
	return f.pointwise("-", other, numeric.Sub, true)
}

// RMul returns c * f for a number c, scaling every result, or
// x -> other(x) * f(x) for a callable other.
func (f Function) RMul(other any) (Function, error) {
	if numeric.IsNumber(other) {
		return func(x any) any {
			return compose.Must(arith("*", numeric.Mul, other, f(x)))
		}, nil
	}
	return f.pointwise("*", other, numeric.Mul, true)
}

// RDiv returns x -> other(x) / f(x).
func (f Function) RDiv(other any) (Function, error) {
	return f.pointwise("/", other, numeric.TrueDiv, true)
}

// RFloorDiv returns x -> other(x) // f(x).
func (f Function) RFloorDiv(other any) (Function, error) {
	return f.pointwise("//", other, numeric.FloorDiv, true)
}
