// Package curry turns n-ary functions into chains of unary wrappers.
//
// Each call on a chain binds one argument and returns the next node. Nodes
// before the last are always function.Function values; the node that
// receives the last argument is of the final wrapper kind, a Function by
// default or a predicate.Predicate with WithPredicate, and calling it runs the
// decorated function.
//
// Example:
//
//	dec, _ := curry.Curry(3)
//	volume, _ := dec(func(l, w, h int) int { return l * w * h })
//	fmt.Println(volume.Apply(2).(curry.Unary).Apply(3).(curry.Unary).Apply(4)) // 24
//
// Reverse binds from the right, so a reverse-curried subtraction applied to
// a and then b computes b - a.
package curry

import (
	"errors"
	"fmt"

	"github.com/charmingruby/pointfree/compose"
)

var (
	// ErrInvalidArity is returned for a negative arity.
	ErrInvalidArity = errors.New("curry: arity must be a non-negative integer")
	// ErrArityMismatch is returned when the decorated function cannot take
	// the configured number of arguments.
	ErrArityMismatch = compose.ErrArityMismatch
	// ErrNotFunction is returned when the decorated value is not a function.
	ErrNotFunction = compose.ErrNotFunction
)

// Unary is a node of a curried chain: a function.Function or a
// predicate.Predicate.
type Unary interface {
	compose.Composable
	compose.Applier
}

// Order selects which parameter each call binds.
type Order uint8

const (
	// Forward binds parameters left to right.
	Forward Order = iota
	// Backward binds parameters right to left.
	Backward
)

// String implements fmt.Stringer.
func (o Order) String() string {
	if o == Backward {
		return "backward"
	}
	return "forward"
}

// Final selects the wrapper type of the last node of a chain.
type Final uint8

const (
	// FinalFunction makes the last node a function.Function.
	FinalFunction Final = iota
	// FinalPredicate makes the last node a predicate.Predicate whose result
	// is the truthiness of the full application.
	FinalPredicate
)

// Config controls how a chain is built.
type Config struct {
	Final Final
}

// Option mutates a Config.
type Option func(*Config)

// WithFinal sets the final wrapper kind.
func WithFinal(f Final) Option {
	return func(c *Config) {
		c.Final = f
	}
}

// WithPredicate makes the last node a predicate.Predicate.
func WithPredicate() Option {
	return WithFinal(FinalPredicate)
}

// Decorator turns a function of the configured arity into the head of a
// chain. fn is a func(...any) any or any Go func with one result whose
// parameters accept n arguments.
type Decorator func(fn any) (Unary, error)

// Curry returns a Decorator binding n arguments left to right.
func Curry(n int, opts ...Option) (Decorator, error) {
	return New(n, Forward, opts...)
}

// Reverse returns a Decorator binding n arguments right to left: the first
// call supplies the last parameter.
func Reverse(n int, opts ...Option) (Decorator, error) {
	return New(n, Backward, opts...)
}

// New returns a Decorator for n arguments bound in the given order. The
// arity is validated here, before any function is decorated.
func New(n int, order Order, opts ...Option) (Decorator, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidArity, n)
	}
	cfg := Config{Final: FinalFunction}
	for _, opt := range opts {
		opt(&cfg)
	}
	return func(fn any) (Unary, error) {
		call, err := compose.Nary(fn, n)
		if err != nil {
			return nil, err
		}
		log.Tracef("Curried %T with arity=%d order=%v final=%v", fn, n, order, cfg.Final)
		c := chain{
			fn:        call,
			arity:     n,
			remaining: n,
			order:     order,
			final:     cfg.Final,
		}
		return c.node(), nil
	}, nil
}

// Must returns u or panics with err. It is meant for package level chains
// built from functions known to have the right arity.
func Must(u Unary, err error) Unary {
	if err != nil {
		panic(err)
	}
	return u
}
