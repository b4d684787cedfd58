package calc

import (
	"fmt"
	"math"
)

// Evaluate computes the numeric value of an arithmetic expression given as
// text. It runs the full pipeline, scanning the text into tokens, parsing
// the tokens into a syntax tree, and reducing the tree to a 64-bit float.
// Every call is independent and stateless; on failure the error describes
// the first problem encountered, annotated with its source position.
func Evaluate(text string) (float64, error) {
	scanner := NewScanner([]rune(text))
	tokens, err := scanner.Scan()
	if err != nil {
		return 0, err
	}
	parser := NewParser(tokens)
	root, err := parser.Parse()
	if err != nil {
		return 0, err
	}
	return evalNode(root)
}

// evalNode recursively reduces a syntax tree to its numeric value. A nil
// tree evaluates to 0. Division by zero follows IEEE semantics and yields
// an infinity or NaN rather than an error.
func evalNode(node *Node) (float64, error) {
	if node == nil {
		return 0, nil
	}
	switch node.Typ {
	case NodeNumber:
		return node.Value, nil
	case NodePlus:
		left, right, err := evalChildren(node)
		if err != nil {
			return 0, err
		}
		return left + right, nil
	case NodeMinus:
		left, right, err := evalChildren(node)
		if err != nil {
			return 0, err
		}
		return left - right, nil
	case NodeMultiply:
		left, right, err := evalChildren(node)
		if err != nil {
			return 0, err
		}
		return left * right, nil
	case NodeDivide:
		left, right, err := evalChildren(node)
		if err != nil {
			return 0, err
		}
		return left / right, nil
	case NodeModulo:
		left, right, err := evalChildren(node)
		if err != nil {
			return 0, err
		}
		return math.Mod(left, right), nil
	case NodePrefixPlus:
		return evalNode(node.Left)
	case NodePrefixMinus:
		operand, err := evalNode(node.Left)
		if err != nil {
			return 0, err
		}
		return -operand, nil
	case NodeBar:
		operand, err := evalNode(node.Left)
		if err != nil {
			return 0, err
		}
		return math.Abs(operand), nil
	case NodeFactorial:
		operand, err := evalNode(node.Left)
		if err != nil {
			return 0, err
		}
		return factorial(operand)
	}
	// The parser never emits any other node type in a completed tree.
	return 0, fmt.Errorf("cannot evaluate node %s", node.Typ.String())
}

func evalChildren(node *Node) (float64, float64, error) {
	left, err := evalNode(node.Left)
	if err != nil {
		return 0, 0, err
	}
	right, err := evalNode(node.Right)
	if err != nil {
		return 0, 0, err
	}
	return left, right, nil
}

// factorial computes n! as the iterative product 2*3*...*n. Negative,
// non-integral, NaN, and infinite operands are outside the domain and are
// rejected instead of being truncated.
func factorial(n float64) (float64, error) {
	if n < 0 || n != math.Trunc(n) || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, NewFactorialError(n)
	}
	f := 1.0
	for i := uint64(2); i <= uint64(n); i++ {
		f *= float64(i)
		if math.IsInf(f, 1) {
			// The product only grows from here; stop early.
			break
		}
	}
	return f, nil
}
