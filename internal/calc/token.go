package calc

import "fmt"

// Token groups the characters of a single lexeme with additional information
// that was obtained during the scanning phase.
type Token struct {
	Typ     TokenType
	Lexeme  string
	Literal float64
	Pos     int
}

// NewToken creates a new token. Pos is the rune offset of the lexeme's first
// character in the source text.
func NewToken(typ TokenType, lexeme string, literal float64, pos int) *Token {
	t := new(Token)
	t.Typ = typ
	t.Lexeme = lexeme
	t.Literal = literal
	t.Pos = pos
	return t
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %s %v", t.Typ.String(), t.Lexeme, t.Literal)
}

const (
	// NONE marks a scanned character sequence that produced no token, e.g.
	// skipped whitespace. It never appears in a scanned token list.
	NONE TokenType = iota

	// Single-character operator tokens
	PLUS
	MINUS
	MULTIPLY
	DIVIDE
	MODULO
	POWER
	FACTORIAL
	COMMA
	L_PAREN
	R_PAREN
	EQUAL
	BAR

	// Literals
	NUMBER
	IDENT

	// END is the sentinel appended once after the last token of every scan.
	END
)

// TokenType identifies the kind of a scanned token.
type TokenType uint

func (tt TokenType) String() string {
	switch tt {
	case PLUS:
		return "Plus"
	case MINUS:
		return "Minus"
	case MULTIPLY:
		return "Multiply"
	case DIVIDE:
		return "Divide"
	case MODULO:
		return "Modulo"
	case POWER:
		return "Power"
	case FACTORIAL:
		return "Factorial"
	case COMMA:
		return "Comma"
	case L_PAREN:
		return "LParen"
	case R_PAREN:
		return "RParen"
	case EQUAL:
		return "Equals"
	case BAR:
		return "Bar"
	case NUMBER:
		return "Number"
	case IDENT:
		return "Identifier"
	case END:
		return "End"
	case NONE:
		return "None"
	}
	return ""
}
