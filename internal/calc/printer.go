package calc

import (
	"fmt"
	"strconv"
)

// AstPrinter renders a syntax tree as a parenthesized prefix expression,
// e.g. "(+ 1 (* 2 3))" for "1 + 2 * 3".
type AstPrinter struct{}

func (printer *AstPrinter) Print(node *Node) string {
	if node == nil {
		return "()"
	}
	switch node.Typ {
	case NodeNumber:
		return strconv.FormatFloat(node.Value, 'f', -1, 64)
	case NodePlus:
		return printer.binary("+", node)
	case NodeMinus:
		return printer.binary("-", node)
	case NodeMultiply:
		return printer.binary("*", node)
	case NodeDivide:
		return printer.binary("/", node)
	case NodeModulo:
		return printer.binary("%", node)
	case NodeFactorial:
		return printer.unary("!", node)
	case NodeBar:
		return printer.unary("abs", node)
	case NodePrefixPlus:
		return printer.unary("+", node)
	case NodePrefixMinus:
		return printer.unary("-", node)
	}
	return fmt.Sprintf("(?%s)", node.Typ.String())
}

func (printer *AstPrinter) binary(op string, node *Node) string {
	return fmt.Sprintf(
		"(%s %s %s)",
		op,
		printer.Print(node.Left),
		printer.Print(node.Right),
	)
}

func (printer *AstPrinter) unary(op string, node *Node) string {
	return fmt.Sprintf("(%s %s)", op, printer.Print(node.Left))
}
