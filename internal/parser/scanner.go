package parser

import (
	"fmt"
	"unicode"
)

type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position
}

type Scanner struct {
	source      string
	tokens      []Token
	start       int
	current     int
	line        int
	startColumn int
	column      int
	indents     []int
	parenDepth  int
	atLineStart bool
	errors      []ScanError
}

type ScanError struct {
	Message  string
	Position Position // line, column, offset
	Length   int      // optional: how many characters it covers
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source:      source,
		line:        1,
		column:      1,
		indents:     []int{0},
		atLineStart: true,
	}
}

func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		if s.atLineStart && s.parenDepth == 0 {
			s.scanIndentation()
			continue
		}
		s.start = s.current
		s.startColumn = s.column
		s.scanToken()
	}

	// A final line without a trailing newline still terminates.
	if !s.atLineStart {
		s.addSyntheticToken(NEWLINE)
	}
	for len(s.indents) > 1 {
		s.indents = s.indents[:len(s.indents)-1]
		s.addSyntheticToken(DEDENT)
	}

	s.tokens = append(s.tokens, Token{Type: EOF, Position: Position{Line: s.line, Column: s.column, Offset: s.current}})
	return s.tokens
}

// scanIndentation measures the leading whitespace of a logical line and
// emits INDENT/DEDENT tokens against the indentation stack. Blank lines
// and comment-only lines produce nothing.
func (s *Scanner) scanIndentation() {
	s.start = s.current
	s.startColumn = s.column

	width := 0
	for !s.isAtEnd() {
		c := s.peek()
		if c == ' ' {
			width++
			s.advance()
			continue
		}
		if c == '\t' {
			s.reportError("tab character in indentation; use spaces")
			s.advance()
			width++
			continue
		}
		break
	}

	if s.isAtEnd() {
		return
	}

	switch s.peek() {
	case '\n':
		s.advance() // blank line
		return
	case '\r':
		s.advance()
		return
	case '#':
		for s.peek() != '\n' && !s.isAtEnd() {
			s.advance() // comment-only line
		}
		return
	}

	s.atLineStart = false

	top := s.indents[len(s.indents)-1]
	if width > top {
		s.indents = append(s.indents, width)
		s.addSyntheticToken(INDENT)
		return
	}
	for width < top {
		s.indents = s.indents[:len(s.indents)-1]
		s.addSyntheticToken(DEDENT)
		top = s.indents[len(s.indents)-1]
	}
	if width != top {
		s.reportError("unindent does not match any outer indentation level")
	}
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	// Brackets; the scanner tracks depth so that newlines inside
	// brackets join lines, as in Python.
	case '(':
		s.parenDepth++
		s.addToken(LEFT_PAREN)
	case ')':
		if s.parenDepth > 0 {
			s.parenDepth--
		}
		s.addToken(RIGHT_PAREN)
	case '[':
		s.parenDepth++
		s.addToken(LEFT_BRACKET)
	case ']':
		if s.parenDepth > 0 {
			s.parenDepth--
		}
		s.addToken(RIGHT_BRACKET)
	case '{':
		s.parenDepth++
		s.addToken(LEFT_BRACE)
	case '}':
		if s.parenDepth > 0 {
			s.parenDepth--
		}
		s.addToken(RIGHT_BRACE)

	// Simple single-character tokens
	case ',':
		s.addToken(COMMA)
	case '.':
		s.addToken(DOT)
	case ';':
		s.addToken(SEMICOLON)
	case ':':
		s.addToken(COLON)
	case '~':
		s.addToken(TILDE)
	case '@':
		s.addToken(AT)
	case '^':
		s.addToken(CARET)
	case '&':
		s.addToken(AMPERSAND)
	case '|':
		s.addToken(PIPE)

	// Operators with potential multi-character variants
	case '+':
		s.scanPlusOperator()
	case '-':
		s.scanMinusOperator()
	case '*':
		s.scanStarOperator()
	case '/':
		s.scanSlashOperator()
	case '%':
		s.scanPercentOperator()
	case '<':
		s.scanLessOperator()
	case '>':
		s.scanGreaterOperator()
	case '=':
		s.scanEqualOperator()
	case '!':
		s.scanBangOperator()

	// Whitespace (ignored)
	case ' ', '\r', '\t':
		// Ignore whitespace
	case '\n':
		if s.parenDepth == 0 {
			s.addSyntheticToken(NEWLINE)
			s.atLineStart = true
		}

	// Comments run to the end of the line
	case '#':
		for s.peek() != '\n' && !s.isAtEnd() {
			s.advance()
		}

	// String literals
	case '"', '\'':
		s.scanString(c)

	default:
		s.scanDefault(c)
	}
}

// Operator scanning methods for better organization

func (s *Scanner) scanPlusOperator() {
	if s.matchNext('=') {
		s.addToken(PLUS_EQUAL)
	} else {
		s.addToken(PLUS)
	}
}

func (s *Scanner) scanMinusOperator() {
	if s.matchNext('=') {
		s.addToken(MINUS_EQUAL)
	} else if s.matchNext('>') {
		s.addToken(ARROW)
	} else {
		s.addToken(MINUS)
	}
}

func (s *Scanner) scanStarOperator() {
	if s.matchNext('*') {
		s.addToken(STAR_STAR)
	} else if s.matchNext('=') {
		s.addToken(STAR_EQUAL)
	} else {
		s.addToken(STAR)
	}
}

func (s *Scanner) scanSlashOperator() {
	if s.matchNext('/') {
		s.addToken(SLASH_SLASH)
	} else if s.matchNext('=') {
		s.addToken(SLASH_EQUAL)
	} else {
		s.addToken(SLASH)
	}
}

func (s *Scanner) scanPercentOperator() {
	if s.matchNext('=') {
		s.addToken(PERCENT_EQUAL)
	} else {
		s.addToken(PERCENT)
	}
}

func (s *Scanner) scanLessOperator() {
	if s.matchNext('=') {
		s.addToken(LESS_EQUAL)
	} else if s.matchNext('<') {
		s.addToken(LESS_LESS)
	} else {
		s.addToken(LESS)
	}
}

func (s *Scanner) scanGreaterOperator() {
	if s.matchNext('=') {
		s.addToken(GREATER_EQUAL)
	} else if s.matchNext('>') {
		s.addToken(GREATER_GREATER)
	} else {
		s.addToken(GREATER)
	}
}

func (s *Scanner) scanEqualOperator() {
	if s.matchNext('=') {
		s.addToken(EQUAL_EQUAL)
	} else {
		s.addToken(EQUAL)
	}
}

func (s *Scanner) scanBangOperator() {
	if s.matchNext('=') {
		s.addToken(BANG_EQUAL)
	} else {
		s.reportError("unexpected character: '!'")
	}
}

func (s *Scanner) scanDefault(c byte) {
	if isDigit(c) {
		s.scanNumber()
	} else if isAlpha(c) {
		s.scanIdentifier()
	} else {
		s.reportError(fmt.Sprintf("Unexpected character: %q", c))
	}
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) addToken(tokenType TokenType) {
	text := s.source[s.start:s.current]
	s.tokens = append(s.tokens, Token{
		Type:   tokenType,
		Lexeme: text,
		Position: Position{
			Line:   s.line,
			Column: s.startColumn,
			Offset: s.start,
		},
	})
}

// addSyntheticToken emits a layout token (NEWLINE, INDENT, DEDENT) that
// has no lexeme of its own.
func (s *Scanner) addSyntheticToken(tokenType TokenType) {
	line := s.line
	if tokenType == NEWLINE {
		line = s.line - 1
	}
	s.tokens = append(s.tokens, Token{
		Type: tokenType,
		Position: Position{
			Line:   line,
			Column: s.startColumn,
			Offset: s.start,
		},
	})
}

func (s *Scanner) reportError(message string) {
	s.errors = append(s.errors, ScanError{
		Message:  message,
		Position: Position{Line: s.line, Column: s.startColumn, Offset: s.start},
		Length:   s.current - s.start,
	})
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return unicode.IsLetter(rune(c)) || c == '_'
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') ||
		('a' <= c && c <= 'f') ||
		('A' <= c && c <= 'F')
}

func (s *Scanner) scanIdentifier() {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	text := s.source[s.start:s.current]
	s.addToken(lookupIdentifier(text))
}

func (s *Scanner) scanNumber() {
	if s.source[s.start] == '0' && (s.peek() == 'x' || s.peek() == 'X') {
		s.advance()
		if !isHexDigit(s.peek()) {
			s.reportError("Invalid hex literal: expected hex digit after 0x")
			return
		}
		for isHexDigit(s.peek()) {
			s.advance()
		}
		s.addToken(HEX_NUMBER)
		return
	}

	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
		s.addToken(FLOAT_NUMBER)
		return
	}
	s.addToken(NUMBER)
}

func (s *Scanner) scanString(quote byte) {
	var value []byte
	for s.peek() != quote && s.peek() != '\n' && !s.isAtEnd() {
		c := s.advance()
		if c == '\\' && !s.isAtEnd() {
			value = append(value, unescape(s.advance())...)
			continue
		}
		value = append(value, c)
	}
	if s.isAtEnd() || s.peek() == '\n' {
		s.reportError("Unterminated string.")
		return
	}
	s.advance() // closing quote
	s.tokens = append(s.tokens, Token{Type: STRING, Lexeme: string(value), Position: Position{
		Line: s.line, Column: s.startColumn, Offset: s.start},
	})
}

func unescape(c byte) []byte {
	switch c {
	case 'n':
		return []byte{'\n'}
	case 't':
		return []byte{'\t'}
	case 'r':
		return []byte{'\r'}
	case '0':
		return []byte{0}
	case '\\', '\'', '"':
		return []byte{c}
	default:
		// Unknown escapes keep the backslash, as Python does.
		return []byte{'\\', c}
	}
}

func lookupIdentifier(text string) TokenType {
	if t, ok := KEYWORDS[text]; ok {
		return t
	}
	return IDENTIFIER
}
