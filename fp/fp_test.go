package fp_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charmingruby/pointfree/fp"
)

func TestPipeComposeCurry(t *testing.T) {
	sum := func(a, b int) int { return a + b }
	curried := fp.Curry(sum)
	if curried(2)(3) != 5 {
		t.Fatalf("unexpected curry result")
	}
	pipeline := fp.Compose(
		func(i int) int { return i * 2 },
		func(i int) int { return i + 1 },
	)
	if pipeline(3) != 8 {
		t.Fatalf("compose result mismatch")
	}
	final := fp.Pipe(1, func(i int) int { return i + 1 }, func(i int) int { return i * 5 })
	if final != 10 {
		t.Fatalf("pipe result mismatch")
	}
}

func TestCurryOrder(t *testing.T) {
	tuple := func(a, b, c int) [3]int { return [3]int{a, b, c} }

	require.Equal(t, [3]int{1, 2, 3}, fp.Curry3(tuple)(1)(2)(3))
	require.Equal(t, [3]int{3, 2, 1}, fp.RCurry3(tuple)(1)(2)(3))

	sub := func(a, b int) int { return a - b }
	require.Equal(t, 7, fp.Curry(sub)(10)(3))
	require.Equal(t, -7, fp.RCurry(sub)(10)(3))
	require.Equal(t, 7, fp.Uncurry(fp.Curry(sub))(10, 3))
	require.Equal(t, -7, fp.Flip(sub)(10, 3))
	require.Equal(t, 9, fp.Partial(sub, 10)(1))
	require.Equal(t, 9, fp.RPartial(sub, 1)(10))
}

func TestAfterThen(t *testing.T) {
	length := func(s string) int { return len(s) }
	long := func(n int) bool { return n > 3 }

	require.True(t, fp.After(long, length)("gopher"))
	require.False(t, fp.Then(length, long)("go"))

	describe := fp.Then(length, strconv.Itoa)
	require.Equal(t, "6", describe("gopher"))
}

func TestConstants(t *testing.T) {
	require.Equal(t, 42, fp.Identity(42))
	require.Equal(t, "x", fp.Constant("x")())
	require.Equal(t, 0, fp.Always[string](0)("anything"))
}

func TestAlgebra(t *testing.T) {
	square := func(x int) int { return x * x }
	inc := func(x int) int { return x + 1 }

	require.Equal(t, 13, fp.Add(square, inc)(3))
	require.Equal(t, 5, fp.Sub(square, inc)(3))
	require.Equal(t, 36, fp.Mul(square, inc)(3))
	require.Equal(t, -9, fp.Neg(square)(3))
	require.Equal(t, 27, fp.Scale(3, square)(3))
	require.Equal(t, 20, fp.Sum(square, inc, inc, fp.Always[int](3))(3))
	require.Equal(t, 0, fp.Sum[int, int]()(3))

	even := func(x int) bool { return x%2 == 0 }
	positive := func(x int) bool { return x > 0 }
	require.True(t, fp.Not(even)(3))
	require.True(t, fp.And(even, positive)(4))
	require.False(t, fp.And(even, positive)(-4))
	require.True(t, fp.Or(even, positive)(-4))
}
