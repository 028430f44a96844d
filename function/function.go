// Package function provides Function, a unary function wrapper with
// pointwise arithmetic and composition.
//
// Functions are combined without naming their arguments:
//
//	addSix := function.Of(func(x int) int { return x + 6 })
//	double := function.Of(func(x int) int { return 2 * x })
//	sum, _ := addSix.Add(double)   // x -> (x+6) + 2x
//	h, _ := addSix.Before(math.Abs) // x -> |x+6|
//	fmt.Println(sum(4), h.(function.Function)(-10))
//
// Every operation returns a new Function closing over its operands; the
// receiver is never modified.
package function

import (
	"github.com/charmingruby/pointfree/compose"
	"github.com/charmingruby/pointfree/fp"
)

// Function wraps a unary function from any value to any value.
type Function func(any) any

// Unary lifts any callable into a Function. See compose.Unary for what
// counts as callable.
func Unary(f any) (Function, error) {
	if fn, ok := f.(Function); ok {
		return fn, nil
	}
	g, ok := compose.Unary(f)
	if !ok {
		return nil, compose.UnsupportedUnary("unary", f)
	}
	return g, nil
}

// Of lifts a typed Go func into a Function. Arguments that are not a T are
// coerced the way compose.As does; a mismatch raises an evaluation error.
func Of[T, R any](f func(T) R) Function {
	return func(x any) any {
		return f(compose.Must(compose.As[T](x)))
	}
}

// Identity returns its argument.
var Identity = Of(fp.Identity[any])

// Zero returns 0 for every input. It is the additive identity of Function.
var Zero = Constant(0)

// Constant returns a Function that yields c regardless of its input.
func Constant(c any) Function {
	k := fp.Constant(c)
	return func(any) any {
		return k()
	}
}

// Apply invokes the wrapped function.
func (f Function) Apply(x any) any {
	return f(x)
}

// Call invokes the wrapped function and reports evaluation failures, such as
// arithmetic on non-numbers, as an error instead of a panic.
func (f Function) Call(x any) (res any, err error) {
	defer logFailure(x, &err)
	defer compose.Recover(&err)
	return f(x), nil
}

func logFailure(x any, errp *error) {
	if *errp != nil {
		log.Debugf("Evaluation failed for argument of type %T: %v", x, *errp)
	}
}

// After returns f ∘ other. When other is not callable it is treated as an
// argument and the result is f(other).
func (f Function) After(other any) (any, error) {
	g, ok := compose.Unary(other)
	if !ok {
		return f.Call(other)
	}
	return Function(compose.Chain(g, f)), nil
}

// Before returns other ∘ f. A Composable operand decides the result type
// through its own After, so a Function followed by a Predicate is a
// Predicate.
func (f Function) Before(other any) (any, error) {
	if c, ok := other.(compose.Composable); ok {
		return c.After(f)
	}
	if g, ok := compose.Unary(other); ok {
		return Function(compose.Chain(f, g)), nil
	}
	return nil, compose.Unsupported("before", f, other)
}

// RAfter returns other ∘ f for a callable other on the left of the
// operation.
func (f Function) RAfter(other any) (any, error) {
	if !compose.IsCallable(other) {
		return nil, compose.Unsupported("after", other, f)
	}
	return f.Before(other)
}

// RBefore returns f ∘ other for other on the left of the operation. A plain
// value on the left is fed into f.
func (f Function) RBefore(other any) (any, error) {
	return f.After(other)
}

// Compose chains fs right to left: Compose(f, g)(x) is f(g(x)). With no
// arguments it returns Identity.
func Compose(fs ...Function) Function {
	return func(x any) any {
		result := x
		for i := len(fs) - 1; i >= 0; i-- {
			result = fs[i](result)
		}
		return result
	}
}

// Pipe chains fs left to right: Pipe(f, g)(x) is g(f(x)).
func Pipe(fs ...Function) Function {
	return func(x any) any {
		result := x
		for _, fn := range fs {
			result = fn(result)
		}
		return result
	}
}
