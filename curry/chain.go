package curry

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"github.com/charmingruby/pointfree/compose"
	"github.com/charmingruby/pointfree/function"
	"github.com/charmingruby/pointfree/predicate"
)

// chain is the state behind one node: the function, how many parameters are
// still unbound and the arguments bound so far, already in call order.
// Binding copies the state, so sibling chains never share arguments.
type chain struct {
	fn        func(args []any) any
	arity     int
	remaining int
	bound     []any
	order     Order
	final     Final
}

func (c chain) node() Unary {
	if c.remaining <= 1 {
		return c.terminal()
	}
	return function.Function(func(x any) any {
		next := c
		next.bound = c.bind(x)
		next.remaining--
		return next.node()
	})
}

// bind returns a fresh argument list with x added on the side dictated by
// the order.
func (c chain) bind(x any) []any {
	args := make([]any, 0, len(c.bound)+1)
	if c.order == Backward {
		args = append(args, x)
		return append(args, c.bound...)
	}
	args = append(args, c.bound...)
	return append(args, x)
}

func (c chain) terminal() Unary {
	call := func(x any) any {
		args := c.bound
		// A nullary chain still needs one call; its argument is ignored.
		if c.remaining == 1 {
			args = c.bind(x)
		}
		log.Tracef("Applying %d-ary function: %v", c.arity,
			newLogClosure(func() string { return spew.Sdump(args) }))
		return c.fn(args)
	}
	if c.final == FinalPredicate {
		return predicate.Predicate(func(x any) bool {
			return predicate.Truthy(call(x))
		})
	}
	return function.Function(call)
}

// Partial binds args to the leftmost parameters of an arity-ary fn. The
// returned func takes the remaining arity-len(args) arguments.
//
// Example:
//
//	greet, _ := curry.Partial(func(greeting, name string) string {
//		return greeting + ", " + name
//	}, 2, "hello")
//	fmt.Println(greet("gopher")) // hello, gopher
func Partial(fn any, arity int, args ...any) (func(rest ...any) any, error) {
	return partial(fn, arity, args, Forward)
}

// RPartial binds args to the rightmost parameters of an arity-ary fn.
func RPartial(fn any, arity int, args ...any) (func(rest ...any) any, error) {
	return partial(fn, arity, args, Backward)
}

func partial(fn any, arity int, args []any, order Order) (func(rest ...any) any, error) {
	if arity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidArity, arity)
	}
	if len(args) > arity {
		return nil, fmt.Errorf("%w: %d arguments bound to a %d-ary function",
			ErrArityMismatch, len(args), arity)
	}
	call, err := compose.Nary(fn, arity)
	if err != nil {
		return nil, err
	}
	bound := append([]any(nil), args...)
	want := arity - len(bound)
	return func(rest ...any) any {
		if len(rest) != want {
			compose.Raise(fmt.Errorf("%w: want %d arguments, got %d",
				ErrArityMismatch, want, len(rest)))
		}
		all := make([]any, 0, arity)
		if order == Backward {
			all = append(append(all, rest...), bound...)
		} else {
			all = append(append(all, bound...), rest...)
		}
		return call(all)
	}, nil
}
