package seq_test

import (
	"reflect"
	"testing"

	"github.com/charmingruby/pointfree/internal/seq"
)

func TestItems(t *testing.T) {
	items, ok := seq.Items([]int{1, 2, 3})
	if !ok || !reflect.DeepEqual(items, []any{1, 2, 3}) {
		t.Fatalf("unexpected slice items %v", items)
	}
	items, ok = seq.Items([2]string{"a", "b"})
	if !ok || !reflect.DeepEqual(items, []any{"a", "b"}) {
		t.Fatalf("unexpected array items %v", items)
	}
	items, ok = seq.Items("héllo")
	if !ok || len(items) != 5 || items[1] != "é" {
		t.Fatalf("unexpected string items %v", items)
	}
	if _, ok := seq.Items(42); ok {
		t.Fatalf("int is not a sequence")
	}
}

func TestMapFilterReduce(t *testing.T) {
	src := []int{1, 2, 3, 4}
	mapped := seq.Map(src, func(v int) int { return v * v })
	if mapped[0] != 1 || mapped[3] != 16 {
		t.Fatalf("unexpected map output")
	}
	filtered := seq.Filter(mapped, func(v int) bool { return v%2 == 0 })
	if !reflect.DeepEqual(filtered, []int{4, 16}) {
		t.Fatalf("unexpected filter output %v", filtered)
	}
	red, ok := seq.Reduce(filtered, func(acc, next int) int { return acc + next })
	if !ok || red != 20 {
		t.Fatalf("unexpected reduce result")
	}
	if _, ok := seq.Reduce([]int{}, func(a, b int) int { return a + b }); ok {
		t.Fatalf("reduce of empty slice must report false")
	}
}

func TestIndexCount(t *testing.T) {
	src := []string{"a", "b", "a", "c"}
	isA := func(s string) bool { return s == "a" }
	if got := seq.Index(src, isA); got != 0 {
		t.Fatalf("unexpected index %d", got)
	}
	if got := seq.Index(src, func(s string) bool { return s == "z" }); got != -1 {
		t.Fatalf("missing element must yield -1, got %d", got)
	}
	if got := seq.Count(src, isA); got != 2 {
		t.Fatalf("unexpected count %d", got)
	}
}
