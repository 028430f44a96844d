package compose

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/charmingruby/pointfree/internal/numeric"
)

var (
	// ErrNotFunction is returned when a function was expected.
	ErrNotFunction = errors.New("not a function")
	// ErrArityMismatch is returned when a function cannot be called with the
	// requested number of arguments.
	ErrArityMismatch = errors.New("arity mismatch")
)

// Applier is implemented by wrappers that can be applied to one argument.
type Applier interface {
	Apply(x any) any
}

// Unary adapts v to a unary func when v is callable: an Applier, a
// func(any) any, a func(any) bool, or any Go func with exactly one
// non-variadic parameter and one result. Arguments handed to a reflected
// func are coerced with Coerce; a mismatch raises an OperandError.
func Unary(v any) (func(any) any, bool) {
	switch f := v.(type) {
	case nil:
		return nil, false
	case Applier:
		return f.Apply, true
	case func(any) any:
		return f, f != nil
	case func(any) bool:
		if f == nil {
			return nil, false
		}
		return func(x any) any { return f(x) }, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, false
	}
	t := rv.Type()
	if t.NumIn() != 1 || t.IsVariadic() || t.NumOut() != 1 {
		return nil, false
	}
	in := t.In(0)
	return func(x any) any {
		arg := Must(Coerce(x, in))
		return rv.Call([]reflect.Value{arg})[0].Interface()
	}, true
}

// Nary adapts fn to a func taking its arguments as a slice. fn is either a
// func(...any) any, which accepts any n, or a Go func with exactly one result
// whose parameter list accepts n arguments.
func Nary(fn any, n int) (func(args []any) any, error) {
	switch f := fn.(type) {
	case nil:
		return nil, fmt.Errorf("%w: <nil>", ErrNotFunction)
	case func(...any) any:
		if f == nil {
			return nil, fmt.Errorf("%w: nil %T", ErrNotFunction, fn)
		}
		return func(args []any) any { return f(args...) }, nil
	}

	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, fmt.Errorf("%w: %T", ErrNotFunction, fn)
	}
	t := rv.Type()
	if t.NumOut() != 1 {
		return nil, fmt.Errorf("%w: %s must return exactly one value", ErrNotFunction, t)
	}
	switch {
	case t.IsVariadic() && n < t.NumIn()-1:
		return nil, fmt.Errorf("%w: %s needs at least %d arguments, got %d",
			ErrArityMismatch, t, t.NumIn()-1, n)
	case !t.IsVariadic() && t.NumIn() != n:
		return nil, fmt.Errorf("%w: %s takes %d arguments, got %d",
			ErrArityMismatch, t, t.NumIn(), n)
	}

	return func(args []any) any {
		in := make([]reflect.Value, len(args))
		for i, a := range args {
			in[i] = Must(Coerce(a, param(t, i)))
		}
		return rv.Call(in)[0].Interface()
	}, nil
}

func param(t reflect.Type, i int) reflect.Type {
	if t.IsVariadic() && i >= t.NumIn()-1 {
		return t.In(t.NumIn() - 1).Elem()
	}
	return t.In(i)
}

// Coerce prepares x to be passed as a parameter of type t. Assignable values
// pass through, numbers convert between numeric kinds when no value is lost,
// and nil becomes the zero value of nillable types.
func Coerce(x any, t reflect.Type) (reflect.Value, error) {
	if x == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: cannot use <nil> as %s", ErrUnsupportedOperand, t)
	}
	v := reflect.ValueOf(x)
	if v.Type().AssignableTo(t) {
		return v, nil
	}
	if numeric.IsNumber(x) && isNumberKind(t.Kind()) {
		out, ok := convertNumber(v, t)
		if !ok {
			return reflect.Value{}, fmt.Errorf("%w: %T %v does not fit in %s",
				ErrUnsupportedOperand, x, x, t)
		}
		return out, nil
	}
	return reflect.Value{}, fmt.Errorf("%w: cannot use %T as %s", ErrUnsupportedOperand, x, t)
}

// convertNumber converts v to t. Conversions to an integer type must be
// exact: fractional floats, out of range values and sign flips are refused.
// Float targets accept any number with the usual rounding.
func convertNumber(v reflect.Value, t reflect.Type) (reflect.Value, bool) {
	out := v.Convert(t)
	if isFloatKind(t.Kind()) {
		return out, true
	}
	if isFloatKind(v.Kind()) {
		f := v.Float()
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return reflect.Value{}, false
		}
		if isSignedKind(t.Kind()) {
			if f < math.MinInt64 || f >= math.MaxInt64 || out.OverflowInt(int64(f)) {
				return reflect.Value{}, false
			}
			return out, true
		}
		if f < 0 || f >= math.MaxUint64 || out.OverflowUint(uint64(f)) {
			return reflect.Value{}, false
		}
		return out, true
	}
	switch {
	case isSignedKind(v.Kind()) && isSignedKind(t.Kind()):
		return out, !out.OverflowInt(v.Int())
	case isSignedKind(v.Kind()):
		return out, v.Int() >= 0 && !out.OverflowUint(uint64(v.Int()))
	case isSignedKind(t.Kind()):
		return out, v.Uint() <= math.MaxInt64 && !out.OverflowInt(int64(v.Uint()))
	default:
		return out, !out.OverflowUint(v.Uint())
	}
}

func isFloatKind(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func isSignedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

// As asserts x to T the way Coerce would pass it as a parameter of type T.
func As[T any](x any) (T, error) {
	var zero T
	if v, ok := x.(T); ok {
		return v, nil
	}
	v, err := Coerce(x, reflect.TypeOf(&zero).Elem())
	if err != nil || x == nil {
		return zero, err
	}
	return v.Interface().(T), nil
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
