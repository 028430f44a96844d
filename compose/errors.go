package compose

import (
	"errors"
	"fmt"
)

// ErrUnsupportedOperand is matched by every OperandError.
var ErrUnsupportedOperand = errors.New("unsupported operand type")

// OperandError reports an operation that was given operands lacking the
// capability it needs. The receiver of the failed operation is left intact.
type OperandError struct {
	Op    string
	Left  any
	Right any
	// Unary is set for single-operand operations, where Right is unused.
	Unary bool
}

// Unsupported builds the error for a binary operation.
func Unsupported(op string, left, right any) *OperandError {
	return &OperandError{Op: op, Left: left, Right: right}
}

// UnsupportedUnary builds the error for a single-operand operation.
func UnsupportedUnary(op string, operand any) *OperandError {
	return &OperandError{Op: op, Left: operand, Unary: true}
}

// Error implements error.
func (e *OperandError) Error() string {
	if e.Unary {
		return fmt.Sprintf("%s for %s: %T", ErrUnsupportedOperand, e.Op, e.Left)
	}
	return fmt.Sprintf("%s(s) for %s: %T and %T", ErrUnsupportedOperand, e.Op, e.Left, e.Right)
}

// Unwrap returns ErrUnsupportedOperand.
func (e *OperandError) Unwrap() error {
	return ErrUnsupportedOperand
}

// IsUnsupported reports whether err is an unsupported-operand failure.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupportedOperand)
}

// EvalError carries a failure that happened while a wrapped function was
// being evaluated. Wrappers evaluate as plain Go funcs without an error
// result, so such failures travel as a panic with an *EvalError value until a
// Call method turns them back into an error with Recover.
type EvalError struct {
	Err error
}

// Error implements error.
func (e *EvalError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying failure.
func (e *EvalError) Unwrap() error {
	return e.Err
}

// Raise aborts the current evaluation with err.
func Raise(err error) {
	panic(&EvalError{Err: err})
}

// Must returns v or raises err when it is not nil.
func Must[T any](v T, err error) T {
	if err != nil {
		Raise(err)
	}
	return v
}

// Recover stores a raised evaluation failure in *errp. It must be deferred
// directly. Panics that were not produced by Raise propagate unchanged.
//
// Example:
//
//	func (f Function) Call(x any) (res any, err error) {
//		defer compose.Recover(&err)
//		return f(x), nil
//	}
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	ev, ok := r.(*EvalError)
	if !ok {
		panic(r)
	}
	*errp = ev.Err
}
