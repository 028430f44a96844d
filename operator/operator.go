// Package operator exposes Go's comparison, arithmetic, bitwise and sequence
// operators as curried chains.
//
// Binary operators are reverse curried: the first call supplies the right
// operand. That makes partially applied operators read naturally:
//
//	isAdult := operator.Ge(18).(predicate.Predicate) // x >= 18
//	minusOne := operator.Sub(1).(function.Function)   // x - 1
//	fmt.Println(isAdult(21), minusOne(10))            // true 9
//
// Comparisons end in a predicate.Predicate, everything else in a
// function.Function. The higher-order Map, Filter and Reduce are forward
// curried and take the function first, so they chain with composition.
package operator

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"

	"github.com/charmingruby/pointfree/compose"
	"github.com/charmingruby/pointfree/curry"
	"github.com/charmingruby/pointfree/function"
	"github.com/charmingruby/pointfree/internal/numeric"
)

var (
	// ErrNotFound is raised by IndexOf when the value is absent.
	ErrNotFound = errors.New("operator: value not found")
	// ErrIndexOutOfRange is raised by GetItem for an index past either end.
	ErrIndexOutOfRange = errors.New("operator: index out of range")
	// ErrEmptySequence is raised by Reduce on an empty sequence.
	ErrEmptySequence = errors.New("operator: reduce of empty sequence")
	// ErrNoAttribute is raised by GetAttr for an unknown field or key.
	ErrNoAttribute = errors.New("operator: no such attribute")
)

func build(order curry.Order, final curry.Final, fn func(a, b any) any) function.Function {
	dec, err := curry.New(2, order, curry.WithFinal(final))
	if err != nil {
		panic(err)
	}
	head := curry.Must(dec(fn))
	return head.(function.Function)
}

func reverse(final curry.Final, fn func(a, b any) any) function.Function {
	return build(curry.Backward, final, fn)
}

func forward(fn func(a, b any) any) function.Function {
	return build(curry.Forward, curry.FinalFunction, fn)
}

// Comparisons. Lt(a)(b) reports b < a.
var (
	Lt = ordered("<", func(c int) bool { return c < 0 })
	Le = ordered("<=", func(c int) bool { return c <= 0 })
	Gt = ordered(">", func(c int) bool { return c > 0 })
	Ge = ordered(">=", func(c int) bool { return c >= 0 })

	// Eq(a)(b) reports b == a. Numbers compare by value across types,
	// anything else with reflect.DeepEqual.
	Eq = reverse(curry.FinalPredicate, func(a, b any) any { return equal(a, b) })
	Ne = reverse(curry.FinalPredicate, func(a, b any) any { return !equal(a, b) })

	// Is(a)(b) reports whether b and a are the same value: the same pointer,
	// map, slice, func or channel, or equal comparable values. Is(nil)
	// tests for nil.
	Is    = reverse(curry.FinalPredicate, func(a, b any) any { return identical(a, b) })
	IsNot = reverse(curry.FinalPredicate, func(a, b any) any { return !identical(a, b) })
)

func ordered(op string, holds func(c int) bool) function.Function {
	return reverse(curry.FinalPredicate, func(a, b any) any {
		c, err := compare(a, b)
		if errors.Is(err, numeric.ErrUnordered) {
			return false
		}
		if err != nil {
			compose.Raise(compose.Unsupported(op, a, b))
		}
		return holds(c)
	})
}

func compare(a, b any) (int, error) {
	if numeric.IsNumber(a) && numeric.IsNumber(b) {
		return numeric.Compare(a, b)
	}
	sa, okA := a.(string)
	sb, okB := b.(string)
	if okA && okB {
		return cmp.Compare(sa, sb), nil
	}
	return 0, compose.ErrUnsupportedOperand
}

func equal(a, b any) bool {
	if numeric.IsNumber(a) && numeric.IsNumber(b) {
		c, err := numeric.Compare(a, b)
		return err == nil && c == 0
	}
	return reflect.DeepEqual(a, b)
}

func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	}
	// Value.Comparable looks inside interface fields, where == would panic.
	return va.Comparable() && vb.Comparable() && va.Equal(vb)
}

// Arithmetic. Sub(a)(b) computes b - a.
var (
	Add      = arithmetic("+", numeric.Add)
	Sub      = arithmetic("-", numeric.Sub)
	Mul      = arithmetic("*", numeric.Mul)
	TrueDiv  = arithmetic("/", numeric.TrueDiv)
	FloorDiv = arithmetic("//", numeric.FloorDiv)
	Mod      = arithmetic("%", numeric.Mod)
	Pow      = arithmetic("**", numeric.Pow)
)

// Bitwise. LShift(n)(b) computes b << n.
var (
	And    = arithmetic("&", numeric.And)
	Or     = arithmetic("|", numeric.Or)
	Xor    = arithmetic("^", numeric.Xor)
	LShift = arithmetic("<<", numeric.Shl)
	RShift = arithmetic(">>", numeric.Shr)
)

// After(f)(g) composes g ∘ f, or applies g to f when f is a plain value.
var After = reverse(curry.FinalFunction, func(a, b any) any {
	return compose.Must(compose.After(a, b))
})

func arithmetic(op string, fn func(a, b any) (any, error)) function.Function {
	return reverse(curry.FinalFunction, func(a, b any) any {
		res, err := fn(a, b)
		switch {
		case errors.Is(err, numeric.ErrNotNumber), errors.Is(err, numeric.ErrNotInteger):
			compose.Raise(compose.Unsupported(op, a, b))
		case err != nil:
			compose.Raise(fmt.Errorf("%s: %w", op, err))
		}
		return res
	})
}
