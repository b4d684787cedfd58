package calc

import (
	"strconv"
	"unicode"
)

// Scanner reads the input expression and collects all the tokens that can be
// found in it.
type Scanner struct {
	start   int
	current int
	source  []rune
	tokens  []*Token
	err     error
}

// NewScanner creates a new token scanner over the given source text.
func NewScanner(source []rune) *Scanner {
	scanner := new(Scanner)
	scanner.start = 0
	scanner.current = 0
	scanner.source = source
	scanner.tokens = make([]*Token, 0)
	return scanner
}

// Scan reads the source and collects all the tokens that were found. The
// returned list always ends with exactly one END token. Characters that do
// not begin any token are skipped; a numeric literal that fails to parse as
// a 64-bit float stops the scan with a *NumberError.
func (scanner *Scanner) Scan() ([]*Token, error) {
	if scanner.err != nil {
		return nil, scanner.err
	}
	if len(scanner.tokens) != 0 {
		return scanner.tokens, nil
	}

	for scanner.hasNext() {
		scanner.start = scanner.current
		switch r := scanner.advance(); r {
		case '+':
			scanner.addToken(PLUS, 0)
		case '-':
			scanner.addToken(MINUS, 0)
		case '/':
			scanner.addToken(DIVIDE, 0)
		case '%':
			scanner.addToken(MODULO, 0)
		case '^':
			scanner.addToken(POWER, 0)
		case '!':
			scanner.addToken(FACTORIAL, 0)
		case ',':
			scanner.addToken(COMMA, 0)
		case '(', '[':
			scanner.addToken(L_PAREN, 0)
		case ')', ']':
			scanner.addToken(R_PAREN, 0)
		case '=':
			scanner.addToken(EQUAL, 0)
		case '|':
			scanner.addToken(BAR, 0)
		case '*':
			// '**' is an alternative spelling of '^'
			if scanner.match('*') {
				scanner.addToken(POWER, 0)
			} else {
				scanner.addToken(MULTIPLY, 0)
			}
		default:
			if unicode.IsDigit(r) || r == '.' {
				if err := scanner.scanNumber(); err != nil {
					scanner.err = err
					return nil, err
				}
			} else if unicode.IsLetter(r) {
				scanner.scanIdentifier()
			}
			// Anything else, whitespace included, produces no token.
		}
	}
	scanner.tokens = append(
		scanner.tokens,
		NewToken(END, "", 0, len(scanner.source)),
	)
	return scanner.tokens, nil
}

// scanNumber consumes a numeric literal. The literal may contain digits,
// '.', and an uppercase 'E' exponent marker; a lowercase 'e' ends the
// literal.
func (scanner *Scanner) scanNumber() error {
	for unicode.IsDigit(scanner.peek()) || scanner.peek() == '.' || scanner.peek() == 'E' {
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	literal, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return NewNumberError(lexeme, scanner.start)
	}
	scanner.tokens = append(
		scanner.tokens,
		NewToken(NUMBER, lexeme, literal, scanner.start),
	)
	return nil
}

// scanIdentifier consumes a letters-only identifier. Digits and underscores
// end the identifier.
func (scanner *Scanner) scanIdentifier() {
	for unicode.IsLetter(scanner.peek()) {
		scanner.advance()
	}
	scanner.addToken(IDENT, 0)
}

// addToken appends the lexeme from `start` to `current` as a token of the
// given type carrying the given literal.
func (scanner *Scanner) addToken(typ TokenType, literal float64) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	tok := NewToken(typ, lexeme, literal, scanner.start)
	scanner.tokens = append(scanner.tokens, tok)
}

// hasNext returns true if the scanner has not read past the source length.
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current position.
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// match checks if the rune at the current position is equal to the given
// rune, and consumes it when they are equal.
func (scanner *Scanner) match(expected rune) bool {
	if !scanner.hasNext() {
		return false
	}
	if scanner.source[scanner.current] != expected {
		return false
	}
	scanner.current++
	return true
}

// peek returns the rune at the current position, but does not consume it.
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}
