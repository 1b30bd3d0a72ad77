package calc

import (
	"errors"
	"fmt"

	"github.com/xiam/calc/ast"
)

var (
	ErrOverflow    = errors.New("integer overflow")
	ErrInvalidNode = errors.New("invalid node")
	ErrTooDeep     = errors.New("expression too deeply nested")
)

// EvalError is returned by the evaluator. Node is the node that could not
// be reduced.
type EvalError struct {
	Err  error
	Node *ast.Node
}

func newEvalError(node *ast.Node, err error) *EvalError {
	return &EvalError{
		Err:  err,
		Node: node,
	}
}

func (e *EvalError) Error() string {
	if e.Node == nil {
		return e.Err.Error()
	}
	msg := fmt.Sprintf("%v: %s", e.Err, e.Node)
	if tok := e.Node.Token(); tok != nil {
		msg = fmt.Sprintf("%v: %s", tok.Position(), msg)
	}
	return msg
}

func (e *EvalError) Unwrap() error {
	return e.Err
}
