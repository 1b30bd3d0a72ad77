// Package calc parses and evaluates S-expressions made of integers and the
// variadic add and mult operators:
//
//	(mult (add 1 2) (add 3 4 5))
//
// An empty (add) is 0 and an empty (mult) is 1.
package calc

import (
	"github.com/xiam/calc/ast"
	"github.com/xiam/calc/parser"
)

// Parse reads one expression from in.
func Parse(in string, opts ...parser.Option) (*ast.Node, error) {
	return parser.ParseString(in, opts...)
}

// EvalString parses and evaluates in with the default parser and evaluator
// settings.
func EvalString(in string) (int64, error) {
	node, err := Parse(in)
	if err != nil {
		return 0, err
	}
	return Eval(node)
}
