package parser

import (
	"github.com/tmdwlsdktkfkdgo/vyper-semantics/internal/ast"
)

type Parser struct {
	filename string
	tokens   []Token
	current  int
	errors   []ParseError
}

type ParseError struct {
	Message  string
	Position Position
}

func NewParser(filename string, tokens []Token) *Parser {
	return &Parser{
		filename: filename,
		tokens:   tokens,
	}
}

func (p *Parser) Errors() []ParseError {
	return p.errors
}

// ParseModule parses a whole source file: a sequence of top-level
// declarations and statements. Classification of top-level shapes into
// events, globals and functions is the translator's job, not the
// parser's.
func (p *Parser) ParseModule() *ast.Module {
	module := &ast.Module{}
	if len(p.tokens) > 0 {
		module.Pos = p.makePos(p.tokens[0])
	}

	var body []ast.Stmt
	for !p.isAtEnd() {
		if p.match(NEWLINE) {
			continue
		}
		body = append(body, p.parseStatementLine()...)
	}

	module.Body = body
	module.EndPos = p.makePos(p.peek())
	return module
}

// parseStatementLine parses one logical line: either a compound
// statement (which owns its suite) or a run of simple statements
// separated by semicolons.
func (p *Parser) parseStatementLine() []ast.Stmt {
	switch {
	case p.check(AT) || p.check(DEF):
		if fn := p.parseFunctionDef(); fn != nil {
			return []ast.Stmt{fn}
		}
		return nil
	case p.check(IF):
		return []ast.Stmt{p.parseIfFrom(IF)}
	case p.check(FOR):
		if loop := p.parseFor(); loop != nil {
			return []ast.Stmt{loop}
		}
		return nil
	default:
		return p.parseSimpleStmtLine()
	}
}

func (p *Parser) parseFunctionDef() *ast.FunctionDef {
	var decorators []ast.Ident
	var start Token
	first := true

	for p.check(AT) {
		tok := p.advance()
		if first {
			start = tok
			first = false
		}
		name, ok := p.consumeIdent("expected decorator name after '@'")
		if !ok {
			p.synchronizeToLineEnd()
			continue
		}
		decorators = append(decorators, name)
		p.consume(NEWLINE, "expected newline after decorator")
	}

	defTok := p.consume(DEF, "expected 'def'")
	if defTok.Type == ILLEGAL {
		p.synchronizeToLineEnd()
		return nil
	}
	if first {
		start = defTok
	}

	name, ok := p.consumeIdent("expected function name")
	if !ok {
		p.synchronizeToLineEnd()
		return nil
	}

	params := p.parseParameters()

	var returns ast.Expr
	if p.match(ARROW) {
		returns = p.parseExpr()
	}

	body := p.parseSuite()

	return &ast.FunctionDef{
		Pos:        p.makePos(start),
		EndPos:     p.makeEndPos(p.previous()),
		Decorators: decorators,
		Name:       name,
		Params:     params,
		Returns:    returns,
		Body:       body,
	}
}

func (p *Parser) parseParameters() []*ast.Param {
	p.consume(LEFT_PAREN, "expected '(' after function name")
	var params []*ast.Param

	for !p.check(RIGHT_PAREN) && !p.isAtEnd() {
		name, ok := p.consumeIdent("expected parameter name")
		if !ok {
			break
		}

		var annotation ast.Expr
		if p.match(COLON) {
			annotation = p.parseExpr()
		}

		endPos := p.makeEndPos(p.previous())
		params = append(params, &ast.Param{
			Pos:        name.Pos,
			EndPos:     endPos,
			Name:       name,
			Annotation: annotation,
		})

		if !p.match(COMMA) {
			break
		}
	}

	p.consume(RIGHT_PAREN, "expected ')' after parameter list")
	return params
}

// parseIfFrom parses a conditional opened by either "if" or "elif"; an
// elif chain nests as a single-item else branch, the way Python's own
// grammar desugars it.
func (p *Parser) parseIfFrom(keyword TokenType) *ast.If {
	start := p.consume(keyword, "expected 'if'")
	test := p.parseExpr()
	body := p.parseSuite()

	var orelse []ast.Stmt
	if p.check(ELIF) {
		orelse = []ast.Stmt{p.parseIfFrom(ELIF)}
	} else if p.match(ELSE) {
		orelse = p.parseSuite()
	}

	return &ast.If{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(p.previous()),
		Test:   test,
		Body:   body,
		Orelse: orelse,
	}
}

func (p *Parser) parseFor() *ast.For {
	start := p.consume(FOR, "expected 'for'")
	target, ok := p.consumeIdent("expected loop variable after 'for'")
	if !ok {
		p.synchronizeToLineEnd()
		return nil
	}
	p.consume(IN, "expected 'in' after loop variable")
	iter := p.parseExpr()
	body := p.parseSuite()

	return &ast.For{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(p.previous()),
		Target: target,
		Iter:   iter,
		Body:   body,
	}
}

// parseSuite parses the body of a compound statement: either an
// indented block after a newline, or simple statements inline on the
// same line ("for i in range(10): pass").
func (p *Parser) parseSuite() []ast.Stmt {
	p.consume(COLON, "expected ':'")

	if p.match(NEWLINE) {
		p.consume(INDENT, "expected an indented block")
		var body []ast.Stmt
		for !p.check(DEDENT) && !p.isAtEnd() {
			if p.match(NEWLINE) {
				continue
			}
			body = append(body, p.parseStatementLine()...)
		}
		p.consume(DEDENT, "expected end of indented block")
		return body
	}

	return p.parseSimpleStmtLine()
}
