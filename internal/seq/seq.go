// Package seq holds slice helpers shared by the curried sequence operators.
// Dynamic sequences (slices, arrays and strings behind an any) are first
// flattened with Items and then processed with the generic helpers.
package seq

import "reflect"

// Items returns the elements of a slice or array, or the runes of a string
// as one-character strings. ok is false for any other value.
func Items(v any) (items []any, ok bool) {
	if s, isString := v.(string); isString {
		runes := []rune(s)
		return Map(runes, func(r rune) any { return string(r) }), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	case reflect.String:
		return Items(rv.String())
	default:
		return nil, false
	}
}

// Map transforms each element using fn and returns a new slice with the same
// length as input.
func Map[A any, B any](in []A, fn func(A) B) []B {
	if len(in) == 0 {
		return []B{}
	}
	out := make([]B, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

// Filter keeps values satisfying predicate. The returned slice shares no
// backing array with the input.
func Filter[T any](in []T, predicate func(T) bool) []T {
	if len(in) == 0 {
		return []T{}
	}
	result := make([]T, 0, len(in))
	for _, v := range in {
		if predicate(v) {
			result = append(result, v)
		}
	}
	return result
}

// Reduce applies fn across elements, returning false when slice empty.
func Reduce[T any](in []T, fn func(T, T) T) (T, bool) {
	if len(in) == 0 {
		var zero T
		return zero, false
	}
	acc := in[0]
	for i := 1; i < len(in); i++ {
		acc = fn(acc, in[i])
	}
	return acc, true
}

// FoldLeft reduces the slice from left to right starting from init.
func FoldLeft[A any, B any](in []A, init B, fn func(B, A) B) B {
	acc := init
	for _, v := range in {
		acc = fn(acc, v)
	}
	return acc
}

// Index returns the position of the first element satisfying predicate, or
// -1.
func Index[T any](in []T, predicate func(T) bool) int {
	for i, v := range in {
		if predicate(v) {
			return i
		}
	}
	return -1
}

// Count returns how many elements satisfy predicate.
func Count[T any](in []T, predicate func(T) bool) int {
	return FoldLeft(in, 0, func(n int, v T) int {
		if predicate(v) {
			return n + 1
		}
		return n
	})
}
