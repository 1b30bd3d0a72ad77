package ast

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n *Node) {
	Fprint(os.Stdout, n)
}

// Fprint writes a human-readable, indented representation of a node to w.
func Fprint(w io.Writer, n *Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) {
	indent := strings.Repeat("    ", level)
	if n == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}
	fmt.Fprintf(w, "%s(%s): ", indent, n.Type())
	switch n.Type() {

	case NodeTypeAdd, NodeTypeMult:
		fmt.Fprintf(w, "[%d] (%v)\n", n.Len(), n.Token())
		for i := range n.args {
			printLevel(w, n.args[i], level+1)
		}

	case NodeTypeInt:
		fmt.Fprintf(w, "%d (%v)\n", n.Int(), n.Token())

	default:
		fmt.Fprintf(w, "\n")
	}
}

// Encode transforms a node into its text representation. Trees built by the
// parser encode to text that parses back into an equal tree.
func Encode(n *Node) []byte {
	return encodeNode(nil, n)
}

func encodeNode(buf []byte, n *Node) []byte {
	if n == nil {
		return append(buf, ":nil"...)
	}
	switch n.Type() {
	case NodeTypeInt:
		return strconv.AppendInt(buf, n.Int(), 10)

	case NodeTypeAdd, NodeTypeMult:
		buf = append(buf, '(')
		buf = append(buf, n.Type().Keyword()...)
		for i := range n.args {
			buf = append(buf, ' ')
			buf = encodeNode(buf, n.args[i])
		}
		return append(buf, ')')
	}
	return append(buf, ":invalid"...)
}
