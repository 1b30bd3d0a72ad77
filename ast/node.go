// Package ast defines the tree produced by the parser: integer leaves and
// variadic add and mult expressions.
package ast

import (
	"fmt"

	"github.com/xiam/calc/lexer"
)

// Node represents a node of the AST. Nodes are immutable once created.
type Node struct {
	nt  NodeType
	tok *lexer.Token

	v    int64
	args []*Node
}

func newNode(nt NodeType, tok *lexer.Token, v int64, args []*Node) *Node {
	return &Node{
		nt:   nt,
		tok:  tok,
		v:    v,
		args: args,
	}
}

func newVector(nt NodeType, tok *lexer.Token, args []*Node) *Node {
	list := make([]*Node, len(args))
	copy(list, args)
	return newNode(nt, tok, 0, list)
}

// NewInt creates an integer leaf. tok may be nil.
func NewInt(tok *lexer.Token, v int64) *Node {
	return newNode(NodeTypeInt, tok, v, nil)
}

// NewAdd creates a node that sums its arguments. tok may be nil.
func NewAdd(tok *lexer.Token, args ...*Node) *Node {
	return newVector(NodeTypeAdd, tok, args)
}

// NewMult creates a node that multiplies its arguments. tok may be nil.
func NewMult(tok *lexer.Token, args ...*Node) *Node {
	return newVector(NodeTypeMult, tok, args)
}

// Token returns the token associated to the node
func (n *Node) Token() *lexer.Token {
	return n.tok
}

// Type returns the type of the node
func (n *Node) Type() NodeType {
	return n.nt
}

// Int returns the value of an integer leaf
func (n *Node) Int() int64 {
	return n.v
}

// Len returns the number of arguments of the node
func (n *Node) Len() int {
	return len(n.args)
}

// Arg returns the i-th argument of the node
func (n *Node) Arg(i int) *Node {
	return n.args[i]
}

// Args returns a copy of the arguments of the node
func (n *Node) Args() []*Node {
	list := make([]*Node, len(n.args))
	copy(list, n.args)
	return list
}

// IsValue returns true if the node is of type value
func (n *Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsVector returns true if the node is of type vector
func (n *Node) IsVector() bool {
	return n.nt&nodeTypeVector > 0
}

// Equal reports whether n and m have the same shape and values. Source
// positions are not compared.
func (n *Node) Equal(m *Node) bool {
	if n == nil || m == nil {
		return n == m
	}
	if n.nt != m.nt || n.v != m.v || len(n.args) != len(m.args) {
		return false
	}
	for i := range n.args {
		if !n.args[i].Equal(m.args[i]) {
			return false
		}
	}
	return true
}

func (n *Node) String() string {
	return string(Encode(n))
}

// GoString is used by %#v.
func (n *Node) GoString() string {
	if n == nil {
		return "<nil>"
	}
	switch n.nt {
	case NodeTypeInt:
		return fmt.Sprintf("Int(%d)", n.v)
	case NodeTypeAdd, NodeTypeMult:
		s := goNames[n.nt] + "(["
		for i := range n.args {
			if i > 0 {
				s += ", "
			}
			s += n.args[i].GoString()
		}
		return s + "])"
	}
	return goNames[NodeTypeInvalid]
}

var goNames = map[NodeType]string{
	NodeTypeInvalid: "Invalid",
	NodeTypeAdd:     "Add",
	NodeTypeMult:    "Mult",
}
