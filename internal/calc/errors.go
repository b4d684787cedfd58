package calc

import (
	"fmt"
	"strconv"
)

// InputError is implemented by every error produced from user input. Pos
// returns the rune offset in the source text that the error refers to.
type InputError interface {
	error
	Pos() int
}

var (
	_ InputError = (*NumberError)(nil)
	_ InputError = (*ParseError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*UnexpectedTokenError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)

// NumberError reports a numeric literal that could not be parsed as a
// 64-bit float.
type NumberError struct {
	lexeme   string
	position int
}

// NewNumberError creates a new malformed-number scanning error.
func NewNumberError(lexeme string, position int) error {
	return &NumberError{lexeme, position}
}

func (err *NumberError) Error() string {
	return fmt.Sprintf(
		"malformed number %q at position %d",
		err.lexeme,
		err.position,
	)
}

func (err *NumberError) Pos() int {
	return err.position
}

// ParseError wraps a message returned by the parser with information on
// where the error occurred.
type ParseError struct {
	token   *Token
	message string
}

// NewParseError creates a new generic parse error at the given token.
func NewParseError(token *Token, message string) error {
	return &ParseError{token, message}
}

func (err *ParseError) Error() string {
	if err.token.Typ == END {
		return fmt.Sprintf("parse error at end of input: %s", err.message)
	}
	return fmt.Sprintf(
		"parse error at position %d: %s",
		err.token.Pos,
		err.message,
	)
}

func (err *ParseError) Pos() int {
	return err.token.Pos
}

// BracketError reports an opening '(' or '|' whose matching closer was
// never found.
type BracketError struct {
	open *Token
}

// NewBracketError creates a new unmatched-bracket error naming the opening
// token.
func NewBracketError(open *Token) error {
	return &BracketError{open}
}

func (err *BracketError) Error() string {
	if err.open.Typ == BAR {
		return fmt.Sprintf(
			"expected closing '|' to match '|' at position %d",
			err.open.Pos,
		)
	}
	return fmt.Sprintf(
		"expected ')' to match '(' at position %d",
		err.open.Pos,
	)
}

func (err *BracketError) Pos() int {
	return err.open.Pos
}

// OperandError reports an operator that ran into the end of the input while
// expecting an operand.
type OperandError struct {
	op *Token
}

// NewOperandError creates a new missing-operand error naming the operator.
func NewOperandError(op *Token) error {
	return &OperandError{op}
}

func (err *OperandError) Error() string {
	return fmt.Sprintf(
		"operator %s at position %d expects an operand but gets end of input",
		err.op.Typ.String(),
		err.op.Pos,
	)
}

func (err *OperandError) Pos() int {
	return err.op.Pos
}

// UnexpectedTokenError reports a token the parser does not accept at the
// current position.
type UnexpectedTokenError struct {
	token *Token
}

// NewUnexpectedTokenError creates a new unexpected-token error.
func NewUnexpectedTokenError(token *Token) error {
	return &UnexpectedTokenError{token}
}

func (err *UnexpectedTokenError) Error() string {
	return fmt.Sprintf(
		"unexpected token %s at position %d",
		err.token.Typ.String(),
		err.token.Pos,
	)
}

func (err *UnexpectedTokenError) Pos() int {
	return err.token.Pos
}

// EmptyExpressionError reports an input that contained no tokens at all.
type EmptyExpressionError struct {
	position int
}

// NewEmptyExpressionError creates a new empty-expression error.
func NewEmptyExpressionError(position int) error {
	return &EmptyExpressionError{position}
}

func (err *EmptyExpressionError) Error() string {
	return "empty expression"
}

func (err *EmptyExpressionError) Pos() int {
	return err.position
}

// FactorialError reports a factorial applied to a value outside its domain.
type FactorialError struct {
	value float64
}

// NewFactorialError creates a new factorial domain error.
func NewFactorialError(value float64) error {
	return &FactorialError{value}
}

func (err *FactorialError) Error() string {
	return fmt.Sprintf(
		"factorial is undefined for %s",
		strconv.FormatFloat(err.value, 'f', -1, 64),
	)
}
