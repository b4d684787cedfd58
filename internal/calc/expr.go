package calc

// Node is a node in the syntax tree of an expression. Binary operators use
// both children; prefix and postfix operators and the absolute-value
// operator use only Left; Number is a leaf. Parents exclusively own their
// children, and a tree is never mutated once the parser returns it.
type Node struct {
	Typ   NodeType
	Value float64
	Left  *Node
	Right *Node
}

// NewNode creates a new operator node with the given children.
func NewNode(typ NodeType, left *Node, right *Node) *Node {
	n := new(Node)
	n.Typ = typ
	n.Left = left
	n.Right = right
	return n
}

// NewNumberNode creates a new leaf node carrying a numeric literal.
func NewNumberNode(value float64) *Node {
	return &Node{Typ: NodeNumber, Value: value}
}

const (
	NodeNumber NodeType = iota
	NodePlus
	NodeMinus
	NodeMultiply
	NodeDivide
	NodeModulo
	NodeFactorial
	NodeBar
	NodePrefixPlus
	NodePrefixMinus
)

// NodeType identifies the operation performed by a syntax tree node.
type NodeType uint

func (nt NodeType) String() string {
	switch nt {
	case NodeNumber:
		return "Number"
	case NodePlus:
		return "Plus"
	case NodeMinus:
		return "Minus"
	case NodeMultiply:
		return "Multiply"
	case NodeDivide:
		return "Divide"
	case NodeModulo:
		return "Modulo"
	case NodeFactorial:
		return "Factorial"
	case NodeBar:
		return "Bar"
	case NodePrefixPlus:
		return "PrefixPlus"
	case NodePrefixMinus:
		return "PrefixMinus"
	}
	return ""
}
