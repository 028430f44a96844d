package operator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/charmingruby/pointfree/compose"
	"github.com/charmingruby/pointfree/curry"
	"github.com/charmingruby/pointfree/internal/numeric"
	"github.com/charmingruby/pointfree/internal/seq"
	"github.com/charmingruby/pointfree/predicate"
)

// Sequence operators, reverse curried like the binary operators above:
// Contains(x)(s) reports whether x is in s, Concat(b)(a) is a followed by b.
var (
	Contains = reverse(curry.FinalPredicate, func(s, x any) any { return contains(s, x) })
	Concat   = reverse(curry.FinalFunction, concat)
	CountOf  = reverse(curry.FinalFunction, func(s, x any) any { return countOf(s, x) })
	GetItem  = reverse(curry.FinalFunction, getItem)
	IndexOf  = reverse(curry.FinalFunction, func(s, x any) any { return indexOf(s, x) })
	GetAttr  = reverse(curry.FinalFunction, getAttr)
)

// Higher-order operators, forward curried so the function comes first:
// Map(f)(s) returns f applied to every element of s as a []any.
var (
	Map    = forward(mapItems)
	Filter = forward(filterItems)
	Reduce = forward(reduceItems)
)

func items(op string, s any) []any {
	out, ok := seq.Items(s)
	if !ok {
		compose.Raise(compose.UnsupportedUnary(op, s))
	}
	return out
}

func contains(s, x any) bool {
	if str, ok := stringOf(s); ok {
		if sub, ok := stringOf(x); ok {
			return strings.Contains(str, sub)
		}
		compose.Raise(compose.Unsupported("in", x, s))
	}
	if rv := reflect.ValueOf(s); rv.Kind() == reflect.Map {
		key, err := compose.Coerce(x, rv.Type().Key())
		if err != nil {
			return false
		}
		return rv.MapIndex(key).IsValid()
	}
	return seq.Index(items("in", s), func(v any) bool { return equal(v, x) }) >= 0
}

func concat(a, b any) any {
	if sa, ok := stringOf(a); ok {
		if sb, ok := stringOf(b); ok {
			return sa + sb
		}
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() == reflect.Slice && vb.Kind() == reflect.Slice && va.Type() == vb.Type() {
		out := reflect.MakeSlice(va.Type(), 0, va.Len()+vb.Len())
		out = reflect.AppendSlice(out, va)
		return reflect.AppendSlice(out, vb).Interface()
	}
	compose.Raise(compose.Unsupported("concat", a, b))
	return nil
}

func countOf(s, x any) int {
	return seq.Count(items("countOf", s), func(v any) bool { return equal(v, x) })
}

func indexOf(s, x any) int {
	i := seq.Index(items("indexOf", s), func(v any) bool { return equal(v, x) })
	if i < 0 {
		compose.Raise(fmt.Errorf("%w: %v", ErrNotFound, x))
	}
	return i
}

// getItem indexes slices, arrays and strings, counting negative indexes from
// the end, and looks keys up in maps.
func getItem(s, key any) any {
	if rv := reflect.ValueOf(s); rv.Kind() == reflect.Map {
		k, err := compose.Coerce(key, rv.Type().Key())
		if err != nil {
			compose.Raise(err)
		}
		v := rv.MapIndex(k)
		if !v.IsValid() {
			compose.Raise(fmt.Errorf("%w: key %v", ErrNotFound, key))
		}
		return v.Interface()
	}
	if !numeric.IsInteger(key) {
		compose.Raise(compose.Unsupported("getitem", s, key))
	}
	all := items("getitem", s)
	i := compose.Must(compose.As[int](key))
	if i < 0 {
		i += len(all)
	}
	if i < 0 || i >= len(all) {
		compose.Raise(fmt.Errorf("%w: %v with length %d", ErrIndexOutOfRange, key, len(all)))
	}
	return all[i]
}

// getAttr reads an exported struct field, through any pointers, or a map
// entry keyed by name.
func getAttr(obj, name any) any {
	field, ok := name.(string)
	if !ok {
		compose.Raise(compose.Unsupported("getattr", obj, name))
	}
	rv := reflect.ValueOf(obj)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			compose.Raise(fmt.Errorf("%w: %s on nil", ErrNoAttribute, field))
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		sf, found := rv.Type().FieldByName(field)
		if found && sf.IsExported() {
			return rv.FieldByIndex(sf.Index).Interface()
		}
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			v := rv.MapIndex(reflect.ValueOf(field).Convert(rv.Type().Key()))
			if v.IsValid() {
				return v.Interface()
			}
		}
	}
	compose.Raise(fmt.Errorf("%w: %T has no %s", ErrNoAttribute, obj, field))
	return nil
}

func callable(op string, f any) func(any) any {
	g, ok := compose.Unary(f)
	if !ok {
		compose.Raise(compose.UnsupportedUnary(op, f))
	}
	return g
}

func mapItems(f, s any) any {
	return seq.Map(items("map", s), callable("map", f))
}

func filterItems(p, s any) any {
	test := callable("filter", p)
	return seq.Filter(items("filter", s), func(v any) bool {
		return predicate.Truthy(test(v))
	})
}

func reduceItems(f, s any) any {
	combine, err := compose.Nary(f, 2)
	if err != nil {
		compose.Raise(err)
	}
	acc, ok := seq.Reduce(items("reduce", s), func(a, b any) any {
		return combine([]any{a, b})
	})
	if !ok {
		compose.Raise(ErrEmptySequence)
	}
	return acc
}

func stringOf(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}
