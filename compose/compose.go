// Package compose defines the composition capability shared by the wrapper
// types of this module and the operand classification used to dispatch on it.
//
// Composition comes in two directions. "After" is mathematical composition,
// f.After(g) is f ∘ g: g runs first. "Before" is the pipeline order,
// f.Before(g) is g ∘ f: f runs first. When the operand of After is not a
// function at all, After applies the receiver to it instead, so the same
// operation reads as composition or application depending on what it is given.
//
// Example:
//
//	addSix := function.Of(func(x int) int { return x + 6 })
//	double := func(x int) int { return 2 * x }
//	h, _ := compose.After(addSix, double) // x -> addSix(double(x))
//	v, _ := compose.After(addSix, 5)      // 11
package compose

import "github.com/charmingruby/pointfree/internal/numeric"

// Composable is implemented by every wrapper that can take part in
// composition. All four methods are pure and return either a new composed
// wrapper or, for After with a plain value, the result of the application.
type Composable interface {
	// After returns self ∘ other. A non-callable other is applied to:
	// the result is self(other).
	After(other any) (any, error)
	// Before returns other ∘ self.
	Before(other any) (any, error)
	// RAfter is After with the receiver on the right-hand side: other ∘ self.
	RAfter(other any) (any, error)
	// RBefore is Before with the receiver on the right-hand side: self ∘ other.
	RBefore(other any) (any, error)
}

// Kind is the capability set an operand exposes.
type Kind uint8

const (
	// KindValue is any value without a more specific capability.
	KindValue Kind = iota
	// KindNumeric is a Go integer or floating point number.
	KindNumeric
	// KindCallable is a unary function that is not Composable.
	KindCallable
	// KindComposable implements Composable.
	KindComposable
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindCallable:
		return "callable"
	case KindComposable:
		return "composable"
	default:
		return "value"
	}
}

// Classify reports the most specific capability of v.
func Classify(v any) Kind {
	if _, ok := v.(Composable); ok {
		return KindComposable
	}
	if _, ok := Unary(v); ok {
		return KindCallable
	}
	if numeric.IsNumber(v) {
		return KindNumeric
	}
	return KindValue
}

// IsCallable reports whether v can be invoked with one argument.
func IsCallable(v any) bool {
	_, ok := Unary(v)
	return ok
}

// Chain returns the function that runs inner and feeds its result to outer.
func Chain(inner, outer func(any) any) func(any) any {
	return func(x any) any {
		return outer(inner(x))
	}
}

// After evaluates left ∘ right the way a binary operator would: the left
// operand's After gets the first chance, the right operand's RAfter the second.
func After(left, right any) (any, error) {
	return dispatch("after", left, right,
		func(c Composable, o any) (any, error) { return c.After(o) },
		func(c Composable, o any) (any, error) { return c.RAfter(o) },
	)
}

// Before evaluates right ∘ left, i.e. left runs first, with the same
// left-then-reflected dispatch as After.
func Before(left, right any) (any, error) {
	return dispatch("before", left, right,
		func(c Composable, o any) (any, error) { return c.Before(o) },
		func(c Composable, o any) (any, error) { return c.RBefore(o) },
	)
}

func dispatch(
	op string,
	left, right any,
	forward, reflected func(Composable, any) (any, error),
) (any, error) {
	var leftErr error
	if c, ok := left.(Composable); ok {
		res, err := forward(c, right)
		if err == nil || !IsUnsupported(err) {
			return res, err
		}
		leftErr = err
	}
	if c, ok := right.(Composable); ok {
		return reflected(c, left)
	}
	if leftErr != nil {
		return nil, leftErr
	}
	return nil, Unsupported(op, left, right)
}
