package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeValue  NodeType = 128
	nodeTypeVector NodeType = 256

	NodeTypeInvalid NodeType = 0

	NodeTypeInt = nodeTypeValue | 1

	NodeTypeAdd  = nodeTypeVector | 1
	NodeTypeMult = nodeTypeVector | 2
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return nodeTypeName[NodeTypeInvalid]
}

var nodeTypeName = map[NodeType]string{
	NodeTypeInvalid: "invalid",
	NodeTypeInt:     "int",
	NodeTypeAdd:     "add",
	NodeTypeMult:    "mult",
}

// Keyword returns the word that introduces a compound expression of the
// given type, or an empty string for leaves.
func (nt NodeType) Keyword() string {
	switch nt {
	case NodeTypeAdd, NodeTypeMult:
		return nodeTypeName[nt]
	}
	return ""
}
