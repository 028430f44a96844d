// Package predicate provides Predicate, a boolean-valued unary function with
// logical operators and composition.
//
// Example:
//
//	isPositive := predicate.Of(func(x int) bool { return x > 0 })
//	isEven := func(x int) bool { return x%2 == 0 }
//	both, _ := isPositive.And(isEven)
//	fmt.Println(both(4), isPositive.Invert()(4)) // true false
//
// Composing a Predicate after any function still yields a Predicate, while a
// Predicate followed by an arbitrary function yields a function.Function,
// because the final result is no longer guaranteed to be a bool.
package predicate

import (
	"reflect"

	"github.com/charmingruby/pointfree/compose"
	"github.com/charmingruby/pointfree/function"
)

// Predicate wraps a unary function returning a bool.
type Predicate func(any) bool

// Unary lifts any callable into a Predicate. Results that are not bool are
// interpreted with Truthy.
func Unary(p any) (Predicate, error) {
	switch fn := p.(type) {
	case Predicate:
		return fn, nil
	case func(any) bool:
		if fn != nil {
			return fn, nil
		}
	}
	g, ok := compose.Unary(p)
	if !ok {
		return nil, compose.UnsupportedUnary("predicate", p)
	}
	return func(x any) bool {
		return Truthy(g(x))
	}, nil
}

// Of lifts a typed Go predicate into a Predicate.
func Of[T any](p func(T) bool) Predicate {
	return func(x any) bool {
		return p(compose.Must(compose.As[T](x)))
	}
}

// Truthy converts an arbitrary result into a bool: false for nil, zero
// numbers, empty strings and empty slices, maps, arrays or channels; the
// bool itself for bools; true for everything else.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Func, reflect.Interface:
		return !rv.IsNil()
	default:
		return true
	}
}

// Test evaluates the predicate.
func (p Predicate) Test(x any) bool {
	return p(x)
}

// Apply evaluates the predicate and returns the bool as an any, which makes
// a Predicate usable wherever a callable is expected.
func (p Predicate) Apply(x any) any {
	return p(x)
}

// Call evaluates the predicate and reports evaluation failures as an error.
func (p Predicate) Call(x any) (ok bool, err error) {
	defer compose.Recover(&err)
	return p(x), nil
}

// Invert returns x -> !p(x).
func (p Predicate) Invert() Predicate {
	return func(x any) bool {
		return !p(x)
	}
}

// And returns x -> p(x) && other(x). other must be callable.
func (p Predicate) And(other any) (Predicate, error) {
	q, err := operand("&", p, other, false)
	if err != nil {
		return nil, err
	}
	return func(x any) bool {
		return p(x) && q(x)
	}, nil
}

// Or returns x -> p(x) || other(x).
func (p Predicate) Or(other any) (Predicate, error) {
	q, err := operand("|", p, other, false)
	if err != nil {
		return nil, err
	}
	return func(x any) bool {
		return p(x) || q(x)
	}, nil
}

// RAnd returns x -> other(x) && p(x).
func (p Predicate) RAnd(other any) (Predicate, error) {
	q, err := operand("&", p, other, true)
	if err != nil {
		return nil, err
	}
	return func(x any) bool {
		return q(x) && p(x)
	}, nil
}

// ROr returns x -> other(x) || p(x).
func (p Predicate) ROr(other any) (Predicate, error) {
	q, err := operand("|", p, other, true)
	if err != nil {
		return nil, err
	}
	return func(x any) bool {
		return q(x) || p(x)
	}, nil
}

func operand(op string, p Predicate, other any, reflected bool) (Predicate, error) {
	if !compose.IsCallable(other) {
		if reflected {
			return nil, compose.Unsupported(op, other, p)
		}
		return nil, compose.Unsupported(op, p, other)
	}
	return Unary(other)
}

// After returns p ∘ other, which is again a Predicate. A non-callable other
// is treated as an argument and the result is p(other).
func (p Predicate) After(other any) (any, error) {
	g, ok := compose.Unary(other)
	if !ok {
		return p.Call(other)
	}
	return Predicate(func(x any) bool {
		return p(g(x))
	}), nil
}

// Before returns other ∘ p. The result is whatever other makes of it: a
// Composable other decides through its own After, and a plain callable
// yields a function.Function.
func (p Predicate) Before(other any) (any, error) {
	if c, ok := other.(compose.Composable); ok {
		return c.After(p)
	}
	if g, ok := compose.Unary(other); ok {
		return function.Function(compose.Chain(p.Apply, g)), nil
	}
	return nil, compose.Unsupported("before", p, other)
}

// RAfter returns other ∘ p for a callable other on the left of the
// operation.
func (p Predicate) RAfter(other any) (any, error) {
	if !compose.IsCallable(other) {
		return nil, compose.Unsupported("after", other, p)
	}
	return p.Before(other)
}

// RBefore returns p ∘ other for other on the left of the operation. A plain
// value on the left is tested by p.
func (p Predicate) RBefore(other any) (any, error) {
	return p.After(other)
}

// All returns the conjunction of ps. All() is always true.
func All(ps ...Predicate) Predicate {
	return func(x any) bool {
		for _, p := range ps {
			if !p(x) {
				return false
			}
		}
		return true
	}
}

// Any returns the disjunction of ps. Any() is always false.
func Any(ps ...Predicate) Predicate {
	return func(x any) bool {
		for _, p := range ps {
			if p(x) {
				return true
			}
		}
		return false
	}
}
