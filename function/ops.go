package function

import (
	"github.com/charmingruby/pointfree/compose"
	"github.com/charmingruby/pointfree/internal/numeric"
)

// Add evaluates left + right for any mix of Functions and numbers. A
// Function on the left gets the first chance, a Function on the right is
// reached through its reflected method, and two numbers are simply added.
//
// Example:
//
//	f, _ := function.Add(0, addSix) // addSix, unchanged
//	n, _ := function.Add(2, 3)      // 5
func Add(left, right any) (any, error) {
	return dispatch("+", left, right, Function.Add, Function.RAdd, numeric.Add)
}

// Mul evaluates left * right. A number times a Function scales it; a
// Function times a number is unsupported, mirroring that scalars multiply
// from the left.
func Mul(left, right any) (any, error) {
	return dispatch("*", left, right, Function.Mul, Function.RMul, numeric.Mul)
}

func dispatch(
	op string,
	left, right any,
	forward, reflected func(Function, any) (Function, error),
	values binaryFunc,
) (any, error) {
	lf, leftIsFunc := left.(Function)
	if leftIsFunc {
		res, err := forward(lf, right)
		switch {
		case err == nil:
			return res, nil
		case !compose.IsUnsupported(err):
			return nil, err
		}
	}
	if rf, ok := right.(Function); ok {
		res, err := reflected(rf, left)
		if err != nil {
			return nil, err
		}
		return res, nil
	}
	if leftIsFunc {
		return nil, compose.Unsupported(op, left, right)
	}
	return arith(op, values, left, right)
}

// Sum adds fs starting from the numeric seed 0. Plain callables are lifted
// with Unary first. An empty sum is Zero.
func Sum(fs ...any) (Function, error) {
	var acc any = 0
	for _, f := range fs {
		if _, isFunc := f.(Function); !isFunc {
			if g, ok := compose.Unary(f); ok {
				f = Function(g)
			}
		}
		next, err := Add(acc, f)
		if err != nil {
			return nil, err
		}
		acc = next
	}
	switch v := acc.(type) {
	case Function:
		return v, nil
	default:
		if numeric.IsZero(v) {
			return Zero, nil
		}
		return nil, compose.UnsupportedUnary("sum", v)
	}
}
