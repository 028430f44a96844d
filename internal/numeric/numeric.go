// Package numeric implements arithmetic over Go numbers held in interface
// values. Operands of the same dynamic type keep that type; mixed operands are
// promoted to int64, uint64 or float64 (float wins over integers, signed wins
// over unsigned).
//
// Example:
//
//	sum, err := numeric.Add(2, 3.5) // 5.5 (float64)
package numeric

import (
	"errors"
	"math"
	"reflect"
)

var (
	// ErrNotNumber is returned when an operand is not a Go integer or float.
	ErrNotNumber = errors.New("numeric: operand is not a number")
	// ErrNotInteger is returned by bitwise operations on non-integer operands.
	ErrNotInteger = errors.New("numeric: operand is not an integer")
	// ErrDivisionByZero is returned by TrueDiv, FloorDiv and Mod.
	ErrDivisionByZero = errors.New("numeric: division by zero")
	// ErrNegativeShift is returned by Shl and Shr for negative shift counts.
	ErrNegativeShift = errors.New("numeric: negative shift count")
	// ErrUnordered is returned by Compare when either operand is NaN.
	ErrUnordered = errors.New("numeric: unordered comparison")
)

type class uint8

const (
	classUint class = iota + 1
	classInt
	classFloat
)

type number struct {
	class class
	i     int64
	u     uint64
	f     float64
	typ   reflect.Type
}

func parse(v any) (number, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{class: classInt, i: rv.Int(), typ: rv.Type()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{class: classUint, u: rv.Uint(), typ: rv.Type()}, true
	case reflect.Float32, reflect.Float64:
		return number{class: classFloat, f: rv.Float(), typ: rv.Type()}, true
	default:
		return number{}, false
	}
}

func (n number) float() float64 {
	switch n.class {
	case classInt:
		return float64(n.i)
	case classUint:
		return float64(n.u)
	default:
		return n.f
	}
}

func (n number) int() int64 {
	if n.class == classUint {
		return int64(n.u)
	}
	return n.i
}

// IsNumber reports whether v holds a Go integer or floating point value.
func IsNumber(v any) bool {
	_, ok := parse(v)
	return ok
}

// IsInteger reports whether v holds a Go integer value.
func IsInteger(v any) bool {
	n, ok := parse(v)
	return ok && n.class != classFloat
}

// IsZero reports whether v is a number equal to zero.
func IsZero(v any) bool {
	n, ok := parse(v)
	if !ok {
		return false
	}
	switch n.class {
	case classInt:
		return n.i == 0
	case classUint:
		return n.u == 0
	default:
		return n.f == 0
	}
}

// pair brings two operands to a common class and remembers the type the
// result should be converted back to.
type pair struct {
	class class
	a, b  number
	typ   reflect.Type
}

func promote(x, y any) (pair, error) {
	a, ok := parse(x)
	if !ok {
		return pair{}, ErrNotNumber
	}
	b, ok := parse(y)
	if !ok {
		return pair{}, ErrNotNumber
	}
	if a.typ == b.typ {
		return pair{class: a.class, a: a, b: b, typ: a.typ}, nil
	}
	switch {
	case a.class == classFloat || b.class == classFloat:
		return pair{class: classFloat, a: a, b: b, typ: reflect.TypeOf(float64(0))}, nil
	case a.class == classInt || b.class == classInt:
		return pair{class: classInt, a: a, b: b, typ: reflect.TypeOf(int64(0))}, nil
	default:
		return pair{class: classUint, a: a, b: b, typ: reflect.TypeOf(uint64(0))}, nil
	}
}

func (p pair) wrap(v any) any {
	return reflect.ValueOf(v).Convert(p.typ).Interface()
}

func (p pair) apply(
	ints func(a, b int64) int64,
	uints func(a, b uint64) uint64,
	floats func(a, b float64) float64,
) any {
	switch p.class {
	case classInt:
		return p.wrap(ints(p.a.int(), p.b.int()))
	case classUint:
		return p.wrap(uints(p.a.u, p.b.u))
	default:
		return p.wrap(floats(p.a.float(), p.b.float()))
	}
}

// Add returns x + y.
func Add(x, y any) (any, error) {
	p, err := promote(x, y)
	if err != nil {
		return nil, err
	}
	return p.apply(
		func(a, b int64) int64 { return a + b },
		func(a, b uint64) uint64 { return a + b },
		func(a, b float64) float64 { return a + b },
	), nil
}

// Sub returns x - y.
func Sub(x, y any) (any, error) {
	p, err := promote(x, y)
	if err != nil {
		return nil, err
	}
	return p.apply(
		func(a, b int64) int64 { return a - b },
		func(a, b uint64) uint64 { return a - b },
		func(a, b float64) float64 { return a - b },
	), nil
}

// Mul returns x * y.
func Mul(x, y any) (any, error) {
	p, err := promote(x, y)
	if err != nil {
		return nil, err
	}
	return p.apply(
		func(a, b int64) int64 { return a * b },
		func(a, b uint64) uint64 { return a * b },
		func(a, b float64) float64 { return a * b },
	), nil
}

// TrueDiv returns x / y as a float64 regardless of the operand kinds.
func TrueDiv(x, y any) (any, error) {
	a, ok := parse(x)
	if !ok {
		return nil, ErrNotNumber
	}
	b, ok := parse(y)
	if !ok {
		return nil, ErrNotNumber
	}
	if b.float() == 0 {
		return nil, ErrDivisionByZero
	}
	return a.float() / b.float(), nil
}

// FloorDiv returns x / y rounded toward negative infinity.
func FloorDiv(x, y any) (any, error) {
	p, err := promote(x, y)
	if err != nil {
		return nil, err
	}
	if IsZero(y) {
		return nil, ErrDivisionByZero
	}
	return p.apply(
		func(a, b int64) int64 {
			q := a / b
			if a%b != 0 && (a < 0) != (b < 0) {
				q--
			}
			return q
		},
		func(a, b uint64) uint64 { return a / b },
		func(a, b float64) float64 { return math.Floor(a / b) },
	), nil
}

// Mod returns the remainder of x / y carrying the sign of y.
func Mod(x, y any) (any, error) {
	p, err := promote(x, y)
	if err != nil {
		return nil, err
	}
	if IsZero(y) {
		return nil, ErrDivisionByZero
	}
	return p.apply(
		func(a, b int64) int64 {
			r := a % b
			if r != 0 && (r < 0) != (b < 0) {
				r += b
			}
			return r
		},
		func(a, b uint64) uint64 { return a % b },
		func(a, b float64) float64 {
			r := math.Mod(a, b)
			if r != 0 && (r < 0) != (b < 0) {
				r += b
			}
			return r
		},
	), nil
}

// Pow returns x raised to y. An integer base with a non-negative integer
// exponent stays integral and keeps the base's type; anything else is
// computed as float64.
func Pow(x, y any) (any, error) {
	base, ok := parse(x)
	if !ok {
		return nil, ErrNotNumber
	}
	exp, ok := parse(y)
	if !ok {
		return nil, ErrNotNumber
	}
	if base.class != classFloat && exp.class != classFloat && (exp.class == classUint || exp.i >= 0) {
		n := uint64(exp.int())
		if base.class == classUint {
			r := uint64(1)
			for b := base.u; n > 0; n >>= 1 {
				if n&1 == 1 {
					r *= b
				}
				b *= b
			}
			return reflect.ValueOf(r).Convert(base.typ).Interface(), nil
		}
		r := int64(1)
		for b := base.i; n > 0; n >>= 1 {
			if n&1 == 1 {
				r *= b
			}
			b *= b
		}
		return reflect.ValueOf(r).Convert(base.typ).Interface(), nil
	}
	return math.Pow(base.float(), exp.float()), nil
}

// Neg returns -x.
func Neg(x any) (any, error) {
	n, ok := parse(x)
	if !ok {
		return nil, ErrNotNumber
	}
	var r any
	switch n.class {
	case classInt:
		r = -n.i
	case classUint:
		r = -n.u
	default:
		r = -n.f
	}
	return reflect.ValueOf(r).Convert(n.typ).Interface(), nil
}

// Pos returns +x, which is x itself for every Go number.
func Pos(x any) (any, error) {
	if !IsNumber(x) {
		return nil, ErrNotNumber
	}
	return x, nil
}

// Compare returns -1, 0 or +1 depending on whether x is less than, equal to
// or greater than y.
func Compare(x, y any) (int, error) {
	p, err := promote(x, y)
	if err != nil {
		return 0, err
	}
	sign := func(lt, gt bool) int {
		switch {
		case lt:
			return -1
		case gt:
			return 1
		default:
			return 0
		}
	}
	switch p.class {
	case classInt:
		a, b := p.a.int(), p.b.int()
		return sign(a < b, a > b), nil
	case classUint:
		return sign(p.a.u < p.b.u, p.a.u > p.b.u), nil
	default:
		a, b := p.a.float(), p.b.float()
		if math.IsNaN(a) || math.IsNaN(b) {
			return 0, ErrUnordered
		}
		return sign(a < b, a > b), nil
	}
}

func integers(x, y any) (pair, error) {
	p, err := promote(x, y)
	if err != nil {
		return pair{}, err
	}
	if p.class == classFloat {
		return pair{}, ErrNotInteger
	}
	return p, nil
}

func bitwise(x, y any, ints func(a, b int64) int64, uints func(a, b uint64) uint64) (any, error) {
	p, err := integers(x, y)
	if err != nil {
		return nil, err
	}
	return p.apply(ints, uints, nil), nil
}

// And returns x & y.
func And(x, y any) (any, error) {
	return bitwise(x, y,
		func(a, b int64) int64 { return a & b },
		func(a, b uint64) uint64 { return a & b },
	)
}

// Or returns x | y.
func Or(x, y any) (any, error) {
	return bitwise(x, y,
		func(a, b int64) int64 { return a | b },
		func(a, b uint64) uint64 { return a | b },
	)
}

// Xor returns x ^ y.
func Xor(x, y any) (any, error) {
	return bitwise(x, y,
		func(a, b int64) int64 { return a ^ b },
		func(a, b uint64) uint64 { return a ^ b },
	)
}

func shift(x, y any, op func(n number, s uint64) any) (any, error) {
	n, ok := parse(x)
	if !ok {
		return nil, ErrNotNumber
	}
	s, ok := parse(y)
	if !ok {
		return nil, ErrNotNumber
	}
	if n.class == classFloat || s.class == classFloat {
		return nil, ErrNotInteger
	}
	if s.class == classInt && s.i < 0 {
		return nil, ErrNegativeShift
	}
	count := s.u
	if s.class == classInt {
		count = uint64(s.i)
	}
	return reflect.ValueOf(op(n, count)).Convert(n.typ).Interface(), nil
}

// Shl returns x << y in the type of x.
func Shl(x, y any) (any, error) {
	return shift(x, y, func(n number, s uint64) any {
		if n.class == classUint {
			return n.u << s
		}
		return n.i << s
	})
}

// Shr returns x >> y in the type of x. Signed values shift arithmetically.
func Shr(x, y any) (any, error) {
	return shift(x, y, func(n number, s uint64) any {
		if n.class == classUint {
			return n.u >> s
		}
		return n.i >> s
	})
}
