package calc

import (
	"bytes"
	"errors"
	"log"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/calc/ast"
	"github.com/xiam/calc/lexer"
)

var (
	i    = func(v int64) *ast.Node { return ast.NewInt(nil, v) }
	add  = func(args ...*ast.Node) *ast.Node { return ast.NewAdd(nil, args...) }
	mult = func(args ...*ast.Node) *ast.Node { return ast.NewMult(nil, args...) }
)

func TestEval(t *testing.T) {
	testCases := []struct {
		In  *ast.Node
		Out int64
	}{
		{In: i(42), Out: 42},
		{In: i(0), Out: 0},
		{In: i(-7), Out: -7},
		{In: add(), Out: 0},
		{In: mult(), Out: 1},
		{In: add(i(5)), Out: 5},
		{In: mult(i(5)), Out: 5},
		{In: add(i(1), i(2)), Out: 3},
		{In: mult(i(3), i(4)), Out: 12},
		{In: add(i(1), i(2), i(3), i(4)), Out: 10},
		{In: mult(i(1), i(2), i(3), i(4)), Out: 24},
		{In: mult(i(3), i(0), i(4)), Out: 0},
		{In: add(mult(i(2), i(3)), i(4)), Out: 10},
		{In: mult(add(i(1), i(2)), add(i(3), i(4))), Out: 21},
		{In: mult(add(i(1), i(2)), add(i(3), i(4), i(5))), Out: 36},
		{In: add(add(), mult()), Out: 1},
		{In: mult(add(), i(9)), Out: 0},
		{In: add(i(-3), i(5)), Out: 2},
		{In: mult(i(-3), i(-5)), Out: 15},
	}

	for _, tc := range testCases {
		v, err := Eval(tc.In)
		require.NoError(t, err, "node %s", tc.In)
		assert.Equal(t, tc.Out, v, "node %s", tc.In)
	}
}

func TestEvalDoesNotModifyTree(t *testing.T) {
	node := mult(add(i(1), i(2)), add(i(3), i(4)))
	before := ast.Encode(node)

	for n := 0; n < 3; n++ {
		v, err := Eval(node)
		require.NoError(t, err)
		assert.Equal(t, int64(21), v)
	}

	assert.Equal(t, before, ast.Encode(node))
}

func TestEvalOverflow(t *testing.T) {
	testCases := []struct {
		In   *ast.Node
		Wrap int64
	}{
		{In: add(i(math.MaxInt64), i(1)), Wrap: math.MinInt64},
		{In: add(i(math.MinInt64), i(-1)), Wrap: math.MaxInt64},
		{In: add(i(1), i(math.MaxInt64)), Wrap: math.MinInt64},
		{In: mult(i(math.MaxInt64), i(2)), Wrap: -2},
		{In: mult(i(math.MinInt64), i(-1)), Wrap: math.MinInt64},
		{In: mult(i(-1), i(math.MinInt64)), Wrap: math.MinInt64},
		{In: mult(i(4294967296), i(4294967296)), Wrap: 0},
		{In: add(i(1), mult(i(math.MaxInt64), i(3))), Wrap: math.MaxInt64 - 1},
	}

	wrap := New(WithOverflow(OverflowWrap))

	for _, tc := range testCases {
		_, err := Eval(tc.In)
		assert.True(t, errors.Is(err, ErrOverflow), "node %s: %v", tc.In, err)

		v, err := wrap.Eval(tc.In)
		require.NoError(t, err, "node %s", tc.In)
		assert.Equal(t, tc.Wrap, v, "node %s", tc.In)
	}
}

func TestEvalBoundaries(t *testing.T) {
	testCases := []struct {
		In  *ast.Node
		Out int64
	}{
		{In: add(i(math.MaxInt64), i(0)), Out: math.MaxInt64},
		{In: add(i(math.MaxInt64-1), i(1)), Out: math.MaxInt64},
		{In: add(i(math.MinInt64), i(0)), Out: math.MinInt64},
		{In: add(i(math.MaxInt64), i(math.MinInt64)), Out: -1},
		{In: mult(i(math.MinInt64), i(1)), Out: math.MinInt64},
		{In: mult(i(math.MaxInt64), i(-1)), Out: -math.MaxInt64},
		{In: mult(i(3037000499), i(3037000499)), Out: 9223372030926249001},
	}

	for _, tc := range testCases {
		v, err := Eval(tc.In)
		require.NoError(t, err, "node %s", tc.In)
		assert.Equal(t, tc.Out, v, "node %s", tc.In)
	}
}

func TestEvalInvalidNode(t *testing.T) {
	testCases := []*ast.Node{
		nil,
		{},
		add(i(1), nil),
		mult(i(1), add(&ast.Node{})),
	}

	for _, node := range testCases {
		_, err := Eval(node)
		assert.True(t, errors.Is(err, ErrInvalidNode), "node %s: %v", node, err)

		var eerr *EvalError
		assert.True(t, errors.As(err, &eerr))
	}
}

func TestEvalFailFast(t *testing.T) {
	var buf bytes.Buffer
	e := New(WithLogger(log.New(&buf, "", 0)))

	bad := &ast.Node{}
	node := add(mult(i(2), i(3)), bad, add(i(1), i(2)), i(math.MaxInt64))

	_, err := e.Eval(node)
	require.Error(t, err)

	var eerr *EvalError
	require.True(t, errors.As(err, &eerr))
	assert.Same(t, bad, eerr.Node)
	assert.True(t, errors.Is(err, ErrInvalidNode))
	assert.False(t, errors.Is(err, ErrOverflow))

	out := buf.String()
	assert.Contains(t, out, "eval: (mult 2 3) = 6")
	assert.NotContains(t, out, "(add 1 2)")
}

func TestEvalMaxDepth(t *testing.T) {
	nested := func(depth int) *ast.Node {
		node := i(1)
		for n := 0; n < depth; n++ {
			node = add(node)
		}
		return node
	}

	v, err := Eval(nested(DefaultMaxDepth))
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	_, err = Eval(nested(DefaultMaxDepth + 1))
	assert.True(t, errors.Is(err, ErrTooDeep))

	_, err = New(WithMaxDepth(3)).Eval(nested(4))
	assert.True(t, errors.Is(err, ErrTooDeep))

	v, err = New(WithMaxDepth(0)).Eval(nested(DefaultMaxDepth * 3))
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
}

func TestEvalErrorMessage(t *testing.T) {
	tok := lexer.NewToken(lexer.TokenOpenExpression, "(", 2, 5)
	node := ast.NewAdd(tok, i(math.MaxInt64), i(1))

	_, err := Eval(node)
	assert.EqualError(t, err, "2:5: integer overflow: (add 9223372036854775807 1)")

	_, err = Eval(nil)
	assert.EqualError(t, err, "invalid node: nil")
}

func TestEvalConcurrent(t *testing.T) {
	node := mult(add(i(1), i(2)), add(i(3), i(4), i(5)))
	e := New()

	var wg sync.WaitGroup
	results := make([]int64, 16)
	for n := range results {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			v, err := e.Eval(node)
			if err == nil {
				results[n] = v
			}
		}(n)
	}
	wg.Wait()

	for _, v := range results {
		assert.Equal(t, int64(36), v)
	}
}

func TestEvalLogger(t *testing.T) {
	var buf bytes.Buffer
	e := New(WithLogger(log.New(&buf, "", 0)))

	v, err := e.Eval(mult(add(i(1), i(2)), add()))
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "eval: (add 1 2) = 3"))
	assert.True(t, strings.HasPrefix(lines[1], "eval: (add) = 0"))
	assert.True(t, strings.HasPrefix(lines[2], "eval: (mult (add 1 2) (add)) = 0"))
}

func TestOverflowPolicyString(t *testing.T) {
	assert.Equal(t, "error", OverflowError.String())
	assert.Equal(t, "wrap", OverflowWrap.String())
	assert.Equal(t, "unknown", OverflowPolicy(9).String())
}
