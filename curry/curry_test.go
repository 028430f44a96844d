package curry_test

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btclog/v2"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/pointfree/compose"
	"github.com/charmingruby/pointfree/curry"
	"github.com/charmingruby/pointfree/function"
	"github.com/charmingruby/pointfree/predicate"
)

func tuple4(a, b, c, d int) [4]int {
	return [4]int{a, b, c, d}
}

// apply feeds args one at a time through a chain, checking every node.
func apply(t require.TestingT, head curry.Unary, args ...any) any {
	var v any = head
	for _, a := range args {
		node, ok := v.(curry.Unary)
		require.True(t, ok, "expected a chain node, got %T", v)
		v = node.Apply(a)
	}
	return v
}

func TestCurryForward(t *testing.T) {
	dec, err := curry.Curry(4)
	require.NoError(t, err)
	head, err := dec(tuple4)
	require.NoError(t, err)

	require.Equal(t, [4]int{1, 2, 3, 4}, apply(t, head, 1, 2, 3, 4))
}

func TestCurryReverse(t *testing.T) {
	dec, err := curry.Reverse(4)
	require.NoError(t, err)
	head, err := dec(tuple4)
	require.NoError(t, err)

	require.Equal(t, [4]int{4, 3, 2, 1}, apply(t, head, 1, 2, 3, 4))
}

func TestNodeTypes(t *testing.T) {
	gt := func(a, b int) bool { return a > b }

	dec, err := curry.Curry(2, curry.WithPredicate())
	require.NoError(t, err)
	head, err := dec(gt)
	require.NoError(t, err)
	require.IsType(t, function.Function(nil), head)

	last := head.Apply(1)
	require.IsType(t, predicate.Predicate(nil), last)
	require.False(t, last.(predicate.Predicate)(2))

	rdec, err := curry.Reverse(2, curry.WithPredicate())
	require.NoError(t, err)
	rhead, err := rdec(gt)
	require.NoError(t, err)
	require.True(t, rhead.Apply(1).(predicate.Predicate)(2))

	// Intermediate nodes are always functions, whatever the final kind.
	dec, err = curry.Curry(3, curry.WithFinal(curry.FinalPredicate))
	require.NoError(t, err)
	head, err = dec(func(a, b, c int) bool { return a < b && b < c })
	require.NoError(t, err)
	mid := head.Apply(1)
	require.IsType(t, function.Function(nil), mid)
	require.IsType(t, predicate.Predicate(nil), mid.(curry.Unary).Apply(2))
	require.Equal(t, true, apply(t, head, 1, 2, 3))
}

func TestPredicateEquality(t *testing.T) {
	dec, err := curry.Curry(2, curry.WithPredicate())
	require.NoError(t, err)
	eq, err := dec(func(a, b int) bool { return a == b })
	require.NoError(t, err)

	require.IsType(t, function.Function(nil), eq)
	one := eq.Apply(1)
	require.IsType(t, predicate.Predicate(nil), one)
	require.False(t, one.(predicate.Predicate)(3))
	require.True(t, one.(predicate.Predicate)(1))
}

func TestPredicateTruthiness(t *testing.T) {
	dec, err := curry.Curry(2, curry.WithPredicate())
	require.NoError(t, err)
	sub, err := dec(func(a, b int) int { return a - b })
	require.NoError(t, err)

	require.False(t, sub.Apply(4).(predicate.Predicate)(4))
	require.True(t, sub.Apply(4).(predicate.Predicate)(3))
}

func TestNullaryAndUnary(t *testing.T) {
	dec, err := curry.Curry(0)
	require.NoError(t, err)
	head, err := dec(func() int { return 42 })
	require.NoError(t, err)
	require.IsType(t, function.Function(nil), head)
	// The single call's argument is ignored.
	require.Equal(t, 42, head.Apply(nil))
	require.Equal(t, 42, head.Apply("ignored"))

	pdec, err := curry.Curry(0, curry.WithPredicate())
	require.NoError(t, err)
	phead, err := pdec(func() bool { return true })
	require.NoError(t, err)
	require.IsType(t, predicate.Predicate(nil), phead)
	require.True(t, phead.(predicate.Predicate)(nil))

	dec, err = curry.Curry(1)
	require.NoError(t, err)
	head, err = dec(func(x int) int { return x * 10 })
	require.NoError(t, err)
	require.Equal(t, 30, head.Apply(3))
}

func TestInvalidArity(t *testing.T) {
	_, err := curry.Curry(-1)
	require.ErrorIs(t, err, curry.ErrInvalidArity)

	_, err = curry.Reverse(-3)
	require.ErrorIs(t, err, curry.ErrInvalidArity)

	_, err = curry.New(-1, curry.Forward, curry.WithPredicate())
	require.ErrorIs(t, err, curry.ErrInvalidArity)
}

func TestDecorateErrors(t *testing.T) {
	dec, err := curry.Curry(2)
	require.NoError(t, err)

	_, err = dec(func(a int) int { return a })
	require.ErrorIs(t, err, curry.ErrArityMismatch)

	_, err = dec(5)
	require.ErrorIs(t, err, curry.ErrNotFunction)

	require.Panics(t, func() {
		curry.Must(dec(5))
	})
}

func TestVariadicAcceptsAnyArity(t *testing.T) {
	dec, err := curry.Curry(3)
	require.NoError(t, err)
	head, err := dec(func(args ...any) any {
		total := 0
		for _, a := range args {
			total += a.(int)
		}
		return total
	})
	require.NoError(t, err)
	require.Equal(t, 6, apply(t, head, 1, 2, 3))
}

func TestSiblingChainsAreIndependent(t *testing.T) {
	dec, err := curry.Curry(3)
	require.NoError(t, err)
	head, err := dec(func(a, b, c int) [3]int { return [3]int{a, b, c} })
	require.NoError(t, err)

	shared := head.Apply(1).(curry.Unary)
	left := shared.Apply(2).(curry.Unary)
	right := shared.Apply(5).(curry.Unary)

	require.Equal(t, [3]int{1, 5, 6}, right.Apply(6))
	require.Equal(t, [3]int{1, 2, 3}, left.Apply(3))
	// Nodes can be applied again.
	require.Equal(t, [3]int{1, 2, 9}, left.Apply(9))
}

func TestEvaluationErrors(t *testing.T) {
	dec, err := curry.Curry(2)
	require.NoError(t, err)
	add, err := dec(func(a, b int) int { return a + b })
	require.NoError(t, err)

	last := add.Apply("x").(function.Function)
	_, err = last.Call(2)
	require.ErrorIs(t, err, compose.ErrUnsupportedOperand)

	v, err := add.Apply(1).(function.Function).Call(2)
	require.NoError(t, err)
	require.Equal(t, 3, v)

	// Fractional floats are not truncated into int parameters.
	_, err = add.Apply(2.9).(function.Function).Call(0.9)
	require.ErrorIs(t, err, compose.ErrUnsupportedOperand)

	v, err = add.Apply(2.0).(function.Function).Call(1.0)
	require.NoError(t, err)
	require.Equal(t, 3, v)
}

func TestChainsCompose(t *testing.T) {
	dec, err := curry.Reverse(2)
	require.NoError(t, err)
	sub, err := dec(func(a, b int) int { return a - b })
	require.NoError(t, err)

	minusOne := sub.Apply(1).(function.Function)
	double := func(x int) int { return 2 * x }

	h, err := minusOne.Before(double)
	require.NoError(t, err)
	require.Equal(t, 18, h.(function.Function)(10))
}

func TestPartial(t *testing.T) {
	left, err := curry.Partial(tuple4, 4, 1, 2)
	require.NoError(t, err)
	require.Equal(t, [4]int{1, 2, 3, 4}, left(3, 4))

	right, err := curry.RPartial(tuple4, 4, 3, 4)
	require.NoError(t, err)
	require.Equal(t, [4]int{1, 2, 3, 4}, right(1, 2))

	all, err := curry.Partial(tuple4, 4, 1, 2, 3, 4)
	require.NoError(t, err)
	require.Equal(t, [4]int{1, 2, 3, 4}, all())

	require.PanicsWithError(t, "arity mismatch: want 2 arguments, got 1", func() {
		left(3)
	})

	_, err = curry.Partial(tuple4, 4, 1, 2, 3, 4, 5)
	require.ErrorIs(t, err, curry.ErrArityMismatch)

	_, err = curry.RPartial(tuple4, -1)
	require.ErrorIs(t, err, curry.ErrInvalidArity)

	_, err = curry.Partial("nope", 1)
	require.ErrorIs(t, err, curry.ErrNotFunction)
}

func TestOrderString(t *testing.T) {
	require.Equal(t, "forward", curry.Forward.String())
	require.Equal(t, "backward", curry.Backward.String())
}

func TestTraceLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := btclog.NewSLogger(btclog.NewDefaultHandler(&buf))
	logger.SetLevel(btclog.LevelTrace)
	curry.UseLogger(logger)
	defer curry.DisableLog()

	dec, err := curry.Curry(2)
	require.NoError(t, err)
	add, err := dec(func(a, b int) int { return a + b })
	require.NoError(t, err)
	require.Equal(t, 5, apply(t, add, 2, 3))

	require.Contains(t, buf.String(), "Curried")
	require.Contains(t, buf.String(), "Applying 2-ary function")
}
