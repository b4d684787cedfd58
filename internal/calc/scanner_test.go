package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokEnd(pos int) *Token {
	return NewToken(END, "", 0, pos)
}

func TestScanSingleToken(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*Token
	}{
		// single character tokens
		{"+", []*Token{{PLUS, "+", 0, 0}, tokEnd(1)}},
		{"-", []*Token{{MINUS, "-", 0, 0}, tokEnd(1)}},
		{"*", []*Token{{MULTIPLY, "*", 0, 0}, tokEnd(1)}},
		{"/", []*Token{{DIVIDE, "/", 0, 0}, tokEnd(1)}},
		{"%", []*Token{{MODULO, "%", 0, 0}, tokEnd(1)}},
		{"^", []*Token{{POWER, "^", 0, 0}, tokEnd(1)}},
		{"!", []*Token{{FACTORIAL, "!", 0, 0}, tokEnd(1)}},
		{",", []*Token{{COMMA, ",", 0, 0}, tokEnd(1)}},
		{"(", []*Token{{L_PAREN, "(", 0, 0}, tokEnd(1)}},
		{")", []*Token{{R_PAREN, ")", 0, 0}, tokEnd(1)}},
		{"=", []*Token{{EQUAL, "=", 0, 0}, tokEnd(1)}},
		{"|", []*Token{{BAR, "|", 0, 0}, tokEnd(1)}},
		// square brackets alias to parentheses
		{"[", []*Token{{L_PAREN, "[", 0, 0}, tokEnd(1)}},
		{"]", []*Token{{R_PAREN, "]", 0, 0}, tokEnd(1)}},
		// double star is an alternative power spelling
		{"**", []*Token{{POWER, "**", 0, 0}, tokEnd(2)}},
		// literals
		{"1", []*Token{{NUMBER, "1", 1, 0}, tokEnd(1)}},
		{"103", []*Token{{NUMBER, "103", 103, 0}, tokEnd(3)}},
		{"0.1", []*Token{{NUMBER, "0.1", 0.1, 0}, tokEnd(3)}},
		{"123.456", []*Token{{NUMBER, "123.456", 123.456, 0}, tokEnd(7)}},
		{"12E3", []*Token{{NUMBER, "12E3", 12000, 0}, tokEnd(4)}},
		{".5", []*Token{{NUMBER, ".5", 0.5, 0}, tokEnd(2)}},
		{"max", []*Token{{IDENT, "max", 0, 0}, tokEnd(3)}},
		{"", []*Token{tokEnd(0)}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		toks, err := NewScanner([]rune(tc.src)).Scan()

		assert.NoError(err, tc.src)
		assert.Equal(tc.toks, toks, tc.src)
	}
}

func TestScanTokenSequence(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*Token
	}{
		{
			"103 + 1",
			[]*Token{
				{NUMBER, "103", 103, 0},
				{PLUS, "+", 0, 4},
				{NUMBER, "1", 1, 6},
				tokEnd(7),
			},
		},
		{
			"+103+1",
			[]*Token{
				{PLUS, "+", 0, 0},
				{NUMBER, "103", 103, 1},
				{PLUS, "+", 0, 4},
				{NUMBER, "1", 1, 5},
				tokEnd(6),
			},
		},
		{
			"(123.20 + 1.21) * 40",
			[]*Token{
				{L_PAREN, "(", 0, 0},
				{NUMBER, "123.20", 123.20, 1},
				{PLUS, "+", 0, 8},
				{NUMBER, "1.21", 1.21, 10},
				{R_PAREN, ")", 0, 14},
				{MULTIPLY, "*", 0, 16},
				{NUMBER, "40", 40, 18},
				tokEnd(20),
			},
		},
		{
			"max(1, 2)",
			[]*Token{
				{IDENT, "max", 0, 0},
				{L_PAREN, "(", 0, 3},
				{NUMBER, "1", 1, 4},
				{COMMA, ",", 0, 5},
				{NUMBER, "2", 2, 7},
				{R_PAREN, ")", 0, 8},
				tokEnd(9),
			},
		},
		{
			"2 ** 3",
			[]*Token{
				{NUMBER, "2", 2, 0},
				{POWER, "**", 0, 2},
				{NUMBER, "3", 3, 5},
				tokEnd(6),
			},
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		toks, err := NewScanner([]rune(tc.src)).Scan()

		assert.NoError(err, tc.src)
		assert.Equal(tc.toks, toks, tc.src)
	}
}

func TestScanSkipsUnrecognizedCharacters(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*Token
	}{
		{"        ", []*Token{tokEnd(8)}},
		{"\t\r\n", []*Token{tokEnd(3)}},
		{"#@$", []*Token{tokEnd(3)}},
		{
			"1 ? 2",
			[]*Token{
				{NUMBER, "1", 1, 0},
				{NUMBER, "2", 2, 4},
				tokEnd(5),
			},
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		toks, err := NewScanner([]rune(tc.src)).Scan()

		assert.NoError(err, tc.src)
		assert.Equal(tc.toks, toks, tc.src)
	}
}

// Identifiers are letters only; a digit ends the identifier and starts a new
// token. The scanner also accepts an uppercase 'E' exponent marker inside a
// number but not a lowercase 'e'.
func TestScanIdentifierAndExponentQuirks(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*Token
	}{
		{
			"abc123",
			[]*Token{
				{IDENT, "abc", 0, 0},
				{NUMBER, "123", 123, 3},
				tokEnd(6),
			},
		},
		{
			"12e3",
			[]*Token{
				{NUMBER, "12", 12, 0},
				{IDENT, "e", 0, 2},
				{NUMBER, "3", 3, 3},
				tokEnd(4),
			},
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		toks, err := NewScanner([]rune(tc.src)).Scan()

		assert.NoError(err, tc.src)
		assert.Equal(tc.toks, toks, tc.src)
	}
}

func TestScanMalformedNumber(t *testing.T) {
	testCases := []struct {
		src string
		msg string
	}{
		{"123.45.3", `malformed number "123.45.3" at position 0`},
		{".", `malformed number "." at position 0`},
		{"12E", `malformed number "12E" at position 0`},
		{"1 + 2..3", `malformed number "2..3" at position 4`},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		toks, err := NewScanner([]rune(tc.src)).Scan()

		assert.Nil(toks, tc.src)
		assert.EqualError(err, tc.msg, tc.src)
	}
}

func TestScanIsIdempotent(t *testing.T) {
	assert := assert.New(t)

	scanner := NewScanner([]rune("1 + 2"))
	first, err := scanner.Scan()
	assert.NoError(err)
	second, err := scanner.Scan()
	assert.NoError(err)

	assert.Equal(first, second)
}
