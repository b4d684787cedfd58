/*
Package calc evaluates arithmetic expressions supplied as text, producing a
64-bit floating point result or a descriptive, position-annotated error.

The pipeline has three stages, each stateless per call:

	text -> Scanner -> tokens -> Parser -> syntax tree -> evaluation -> float64

Supported syntax:

	expr    --> NUMBER
	          | "(" expr ")" | "[" expr "]"
	          | "|" expr "|"
	          | ( "+" | "-" ) expr
	          | expr ( "+" | "-" | "*" | "/" | "%" ) expr
	          | expr "!" ;

Parsing uses precedence climbing rather than one grammar rule per level; the
binding powers are documented on Parser. "|" takes the absolute value of the
enclosed expression and "!" is the postfix factorial.

Identifiers, "," and "=" are scanned but not accepted by the parser; "^" and
"**" scan as a power token that the parser likewise rejects.
*/
package calc
