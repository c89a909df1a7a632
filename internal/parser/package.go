package parser

import "github.com/tmdwlsdktkfkdgo/vyper-semantics/internal/ast"

func ParseSource(path string, source string) (*ast.Module, []ParseError, []ScanError) {
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()

	parser := NewParser(path, tokens)
	module := parser.ParseModule()

	return module, parser.errors, scanner.errors
}
