package parser

// regenerate tokentype_string.go with `go generate ./internal/parser`
//
//go:generate stringer -type=TokenType
type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Layout tokens synthesized by the scanner
	NEWLINE
	INDENT
	DEDENT

	// Identifiers + literals
	IDENTIFIER
	NUMBER
	FLOAT_NUMBER
	HEX_NUMBER
	STRING

	// Keywords
	DEF
	IF
	ELIF
	ELSE
	FOR
	IN
	RETURN
	PASS
	BREAK
	ASSERT
	AND
	OR
	NOT
	IS
	TRUE
	FALSE

	// Operators
	PLUS
	MINUS
	STAR
	STAR_STAR
	SLASH
	SLASH_SLASH
	PERCENT
	AT
	AMPERSAND
	PIPE
	CARET
	TILDE
	LESS_LESS
	GREATER_GREATER
	LESS
	LESS_EQUAL
	GREATER
	GREATER_EQUAL
	EQUAL_EQUAL
	BANG_EQUAL
	EQUAL
	ARROW

	// Assignment operators
	PLUS_EQUAL
	MINUS_EQUAL
	STAR_EQUAL
	SLASH_EQUAL
	PERCENT_EQUAL

	// Separators
	COMMA
	DOT
	SEMICOLON
	COLON

	// Brackets
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACKET
	RIGHT_BRACKET
	LEFT_BRACE
	RIGHT_BRACE
)

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}
