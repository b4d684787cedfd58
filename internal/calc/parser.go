package calc

// Parser composes the syntax tree for an arithmetic expression from the
// sequence of tokens produced by the scanner, using precedence climbing.
//
// Binding powers (higher binds tighter; the left/right pair of an infix
// operator encodes its associativity):
//
//	infix   + -    left 1, right 2 (left-associative)
//	infix   * / %  left 3, right 4 (left-associative)
//	prefix  + -    right 5
//	postfix !      left 7
//
// An infix operator whose left power is below the caller's minimum returns
// control to the caller, which decides whether to keep absorbing operators;
// this is what makes the scheme encode precedence and associativity without
// a separate grammar rule per level, and lets the prefix and postfix
// operators interleave with the binary ones.
type Parser struct {
	current int
	tokens  []*Token
}

// NewParser creates a new parser over the given token list.
func NewParser(tokens []*Token) *Parser {
	return &Parser{0, tokens}
}

// Parse builds the syntax tree for the whole token list. The first error
// encountered aborts the parse; no partial tree is ever returned.
func (parser *Parser) Parse() (*Node, error) {
	return parser.parseExpr(0, NewToken(NONE, "", 0, 0))
}

// parseExpr parses a subexpression whose operators all bind at least as
// tightly as minPower. prev is the token consumed just before the
// subexpression starts; it is only used for error messages.
func (parser *Parser) parseExpr(minPower int, prev *Token) (*Node, error) {
	lhs, err := parser.parseLhs(prev)
	if err != nil {
		return nil, err
	}

	for {
		token := parser.peek()
		if token.Typ == END {
			return lhs, nil
		}
		if !isOperator(token.Typ) && token.Typ != R_PAREN && token.Typ != BAR {
			return nil, NewUnexpectedTokenError(token)
		}

		if leftPower, isPostfix := postfixBindingPower(token.Typ); isPostfix {
			if leftPower < minPower {
				return lhs, nil
			}
			parser.advance()
			lhs = NewNode(NodeFactorial, lhs, nil)
			continue
		}

		if leftPower, rightPower, isInfix := infixBindingPower(token.Typ); isInfix {
			if leftPower < minPower {
				return lhs, nil
			}
			parser.advance()
			rhs, err := parser.parseExpr(rightPower, token)
			if err != nil {
				return nil, err
			}
			lhs = NewNode(infixNodeType(token.Typ), lhs, rhs)
			continue
		}

		// A closing ')' or '|'; the enclosing parseLhs consumes it.
		return lhs, nil
	}
}

// parseLhs parses the left-hand side of a subexpression: a number, a
// bracketed or bar-delimited group, or a prefix operator and its operand.
func (parser *Parser) parseLhs(prev *Token) (*Node, error) {
	token := parser.advance()
	switch token.Typ {
	case NUMBER:
		return NewNumberNode(token.Literal), nil
	case L_PAREN:
		lhs, err := parser.parseExpr(0, token)
		if err != nil {
			return nil, err
		}
		if next := parser.advance(); next.Typ != R_PAREN {
			return nil, NewBracketError(token)
		}
		return lhs, nil
	case BAR:
		operand, err := parser.parseExpr(0, token)
		if err != nil {
			return nil, err
		}
		if next := parser.advance(); next.Typ != BAR {
			return nil, NewBracketError(token)
		}
		return NewNode(NodeBar, operand, nil), nil
	case END:
		return nil, parser.operandError(prev, token)
	default:
		if rightPower, isPrefix := prefixBindingPower(token.Typ); isPrefix {
			operand, err := parser.parseExpr(rightPower, token)
			if err != nil {
				return nil, err
			}
			return NewNode(prefixNodeType(token.Typ), operand, nil), nil
		}
		return nil, NewUnexpectedTokenError(token)
	}
}

// operandError picks the error for an END token found where an operand was
// expected.
func (parser *Parser) operandError(prev *Token, end *Token) error {
	switch {
	case isOperator(prev.Typ):
		return NewOperandError(prev)
	case prev.Typ == NONE:
		return NewEmptyExpressionError(end.Pos)
	default:
		return NewParseError(prev, "expected an operand before end of input")
	}
}

// isOperator returns true for the token types the parser accepts as
// operators. POWER is scanned but carries no binding power, so it is not an
// operator here and surfaces as an unexpected token.
func isOperator(typ TokenType) bool {
	switch typ {
	case PLUS, MINUS, MULTIPLY, DIVIDE, MODULO, FACTORIAL:
		return true
	}
	return false
}

// infixBindingPower returns the left and right binding powers of an infix
// operator. Left < right makes the operator left-associative.
func infixBindingPower(typ TokenType) (int, int, bool) {
	switch typ {
	case PLUS, MINUS:
		return 1, 2, true
	case MULTIPLY, DIVIDE, MODULO:
		return 3, 4, true
	}
	return 0, 0, false
}

// prefixBindingPower returns the right binding power of a prefix operator.
func prefixBindingPower(typ TokenType) (int, bool) {
	switch typ {
	case PLUS, MINUS:
		return 5, true
	}
	return 0, false
}

// postfixBindingPower returns the left binding power of a postfix operator.
func postfixBindingPower(typ TokenType) (int, bool) {
	if typ == FACTORIAL {
		return 7, true
	}
	return 0, false
}

func infixNodeType(typ TokenType) NodeType {
	switch typ {
	case PLUS:
		return NodePlus
	case MINUS:
		return NodeMinus
	case MULTIPLY:
		return NodeMultiply
	case DIVIDE:
		return NodeDivide
	case MODULO:
		return NodeModulo
	}
	panic("calc: no infix node for token " + typ.String())
}

func prefixNodeType(typ TokenType) NodeType {
	switch typ {
	case PLUS:
		return NodePrefixPlus
	case MINUS:
		return NodePrefixMinus
	}
	panic("calc: no prefix node for token " + typ.String())
}

// peek returns the token at the current position without consuming it.
// Reading past the last token always yields a fresh END token.
func (parser *Parser) peek() *Token {
	if parser.current >= len(parser.tokens) {
		return NewToken(END, "", 0, 0)
	}
	return parser.tokens[parser.current]
}

// advance consumes and returns the token at the current position, yielding
// END tokens once the list is exhausted.
func (parser *Parser) advance() *Token {
	token := parser.peek()
	if parser.current < len(parser.tokens) {
		parser.current++
	}
	return token
}
