package calc

import (
	"fmt"
	"log"
	"math"

	"github.com/kr/pretty"

	"github.com/xiam/calc/ast"
)

type reducer func(acc, v int64) (int64, bool)

// Evaluator reduces trees to integers. Its configuration never changes after
// New, so an Evaluator can be shared between goroutines.
type Evaluator struct {
	maxDepth int
	overflow OverflowPolicy
	logger   *log.Logger
}

// New creates an evaluator.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		maxDepth: DefaultMaxDepth,
		overflow: OverflowError,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEvaluator = New()

// Eval reduces node with the default evaluator.
func Eval(node *ast.Node) (int64, error) {
	return defaultEvaluator.Eval(node)
}

// Eval reduces node to an integer. node is never modified.
func (e *Evaluator) Eval(node *ast.Node) (int64, error) {
	return e.eval(node, 0)
}

func (e *Evaluator) eval(node *ast.Node, depth int) (int64, error) {
	if node == nil {
		return 0, newEvalError(nil, fmt.Errorf("%w: nil", ErrInvalidNode))
	}

	switch node.Type() {
	case ast.NodeTypeInt:
		return node.Int(), nil

	case ast.NodeTypeAdd:
		return e.fold(node, depth, 0, e.add)

	case ast.NodeTypeMult:
		return e.fold(node, depth, 1, e.mul)
	}

	return 0, newEvalError(node, ErrInvalidNode)
}

// fold reduces the arguments of node left to right. An empty list reduces to
// identity. The first argument that fails stops the reduction.
func (e *Evaluator) fold(node *ast.Node, depth int, identity int64, fn reducer) (int64, error) {
	if e.maxDepth > 0 && depth >= e.maxDepth {
		return 0, newEvalError(node, fmt.Errorf("%w: limit is %d", ErrTooDeep, e.maxDepth))
	}

	if node.Len() == 0 {
		e.trace(node, identity)
		return identity, nil
	}

	acc, err := e.eval(node.Arg(0), depth+1)
	if err != nil {
		return 0, err
	}

	for i := 1; i < node.Len(); i++ {
		v, err := e.eval(node.Arg(i), depth+1)
		if err != nil {
			return 0, err
		}

		var ok bool
		if acc, ok = fn(acc, v); !ok {
			return 0, newEvalError(node, ErrOverflow)
		}
	}

	e.trace(node, acc)
	return acc, nil
}

func (e *Evaluator) add(a, b int64) (int64, bool) {
	s := a + b
	if e.overflow == OverflowWrap {
		return s, true
	}
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return s, true
}

func (e *Evaluator) mul(a, b int64) (int64, bool) {
	p := a * b
	if e.overflow == OverflowWrap || a == 0 || b == 0 {
		return p, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) || p/b != a {
		return 0, false
	}
	return p, true
}

func (e *Evaluator) trace(node *ast.Node, v int64) {
	if e.logger == nil {
		return
	}
	e.logger.Printf("eval: %s = %d -- %# v", node, v, pretty.Formatter(node.Token()))
}
