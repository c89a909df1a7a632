package parser

import (
	"testing"
)

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "def if elif else for in return pass break assert and or not is True False balance"
	expected := []TokenType{
		DEF, IF, ELIF, ELSE, FOR, IN, RETURN, PASS, BREAK, ASSERT,
		AND, OR, NOT, IS, TRUE, FALSE, IDENTIFIER,
	}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %v, got %v", i, exp, tokens[i].Type)
		}
	}
}

func TestNumbersKeepTheirLexemes(t *testing.T) {
	input := "42 0x1F 0xabc 3.14 10.0 7."
	expectedTypes := []TokenType{NUMBER, HEX_NUMBER, HEX_NUMBER, FLOAT_NUMBER, FLOAT_NUMBER, FLOAT_NUMBER}
	expectedLexemes := []string{"42", "0x1F", "0xabc", "3.14", "10.0", "7."}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) < len(expectedTypes) {
		t.Fatalf("expected at least %d tokens, got %d", len(expectedTypes), len(tokens))
	}

	for i := range expectedTypes {
		if tokens[i].Type != expectedTypes[i] {
			t.Errorf("token %d: expected %v, got %v", i, expectedTypes[i], tokens[i].Type)
		}
		if tokens[i].Lexeme != expectedLexemes[i] {
			t.Errorf("token %d: expected lexeme %q, got %q", i, expectedLexemes[i], tokens[i].Lexeme)
		}
	}
}

func TestOperators(t *testing.T) {
	input := "+ - * ** / // % @ & | ^ << >> < <= > >= == != = -> += -= *= /= %="
	expected := []TokenType{
		PLUS, MINUS, STAR, STAR_STAR, SLASH, SLASH_SLASH, PERCENT, AT,
		AMPERSAND, PIPE, CARET, LESS_LESS, GREATER_GREATER,
		LESS, LESS_EQUAL, GREATER, GREATER_EQUAL, EQUAL_EQUAL, BANG_EQUAL,
		EQUAL, ARROW, PLUS_EQUAL, MINUS_EQUAL, STAR_EQUAL, SLASH_EQUAL, PERCENT_EQUAL,
	}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %v, got %v", i, exp, tokens[i].Type)
		}
	}
}

func TestIndentationTokens(t *testing.T) {
	input := "def f():\n    if x:\n        pass\n    return\n"
	expected := []TokenType{
		DEF, IDENTIFIER, LEFT_PAREN, RIGHT_PAREN, COLON, NEWLINE,
		INDENT, IF, IDENTIFIER, COLON, NEWLINE,
		INDENT, PASS, NEWLINE,
		DEDENT, RETURN, NEWLINE,
		DEDENT, EOF,
	}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %v, got %v", i, exp, tokens[i].Type)
		}
	}
}

func TestBlankAndCommentLinesProduceNothing(t *testing.T) {
	input := "x = 1\n\n# a comment\ny = 2\n"
	expected := []TokenType{
		IDENTIFIER, EQUAL, NUMBER, NEWLINE,
		IDENTIFIER, EQUAL, NUMBER, NEWLINE,
		EOF,
	}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %v, got %v", i, exp, tokens[i].Type)
		}
	}
}

func TestBracketsJoinLines(t *testing.T) {
	input := "f(1,\n  2)\n"
	expected := []TokenType{
		IDENTIFIER, LEFT_PAREN, NUMBER, COMMA, NUMBER, RIGHT_PAREN, NEWLINE, EOF,
	}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %v, got %v", i, exp, tokens[i].Type)
		}
	}
}

func TestInconsistentDedentIsAnError(t *testing.T) {
	input := "if x:\n    pass\n  pass\n"

	scanner := NewScanner(input)
	scanner.ScanTokens()

	if len(scanner.errors) == 0 {
		t.Error("expected a scan error for an unmatched dedent level")
	}
}

func TestMissingFinalNewline(t *testing.T) {
	input := "x = 1"

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	last := tokens[len(tokens)-1]
	if last.Type != EOF {
		t.Fatalf("expected EOF, got %v", last.Type)
	}
	if tokens[len(tokens)-2].Type != NEWLINE {
		t.Errorf("a final line without a newline should still end with NEWLINE")
	}
}

func TestStringEscapes(t *testing.T) {
	scanner := NewScanner(`x = 'a\nb'`)
	tokens := scanner.ScanTokens()

	if tokens[2].Type != STRING || tokens[2].Lexeme != "a\nb" {
		t.Errorf("expected STRING with resolved escape, got %v %q", tokens[2].Type, tokens[2].Lexeme)
	}
}

func TestUnterminatedString(t *testing.T) {
	scanner := NewScanner("x = 'oops\n")
	scanner.ScanTokens()

	if len(scanner.errors) == 0 {
		t.Error("expected a scan error for an unterminated string")
	}
}
