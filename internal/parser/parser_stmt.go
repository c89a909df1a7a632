package parser

import (
	"github.com/tmdwlsdktkfkdgo/vyper-semantics/internal/ast"
)

// parseSimpleStmtLine parses semicolon-separated simple statements up
// to the end of the logical line.
func (p *Parser) parseSimpleStmtLine() []ast.Stmt {
	var stmts []ast.Stmt
	for {
		if stmt := p.parseSimpleStmt(); stmt != nil {
			stmts = append(stmts, stmt)
		}
		if !p.match(SEMICOLON) {
			break
		}
		// Tolerate a trailing semicolon.
		if p.check(NEWLINE) || p.isAtEnd() {
			break
		}
	}
	p.endLine()
	return stmts
}

func (p *Parser) parseSimpleStmt() ast.Stmt {
	switch {
	case p.check(RETURN):
		return p.parseReturnStmt()
	case p.check(PASS):
		tok := p.advance()
		return &ast.Pass{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok)}
	case p.check(BREAK):
		tok := p.advance()
		return &ast.Break{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok)}
	case p.check(ASSERT):
		return p.parseAssertStmt()
	default:
		return p.parseExprBasedStmt()
	}
}

func (p *Parser) parseReturnStmt() *ast.Return {
	start := p.consume(RETURN, "expected 'return'")
	var value ast.Expr
	if !p.atStmtEnd() {
		value = p.parseExpr()
	}
	return &ast.Return{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(p.previous()),
		Value:  value,
	}
}

func (p *Parser) parseAssertStmt() *ast.Assert {
	start := p.consume(ASSERT, "expected 'assert'")
	test := p.parseExpr()

	// Python allows an optional message expression; the translator
	// ignores it, as the downstream IR has no slot for it.
	var msg ast.Expr
	if p.match(COMMA) {
		msg = p.parseExpr()
	}

	return &ast.Assert{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(p.previous()),
		Test:   test,
		Msg:    msg,
	}
}

// parseExprBasedStmt parses the statement forms that begin with an
// expression: annotated declarations, assignments, augmented
// assignments and bare expression statements.
func (p *Parser) parseExprBasedStmt() ast.Stmt {
	expr := p.parseExpr()

	if bad, ok := expr.(*ast.BadExpr); ok {
		p.synchronizeUntil(NEWLINE, SEMICOLON)
		return &ast.BadStmt{Bad: bad.Bad}
	}

	if p.check(COLON) {
		target, ok := expr.(*ast.Ident)
		if !ok {
			p.errorAtCurrent("only a simple name can carry a type annotation")
			p.synchronizeUntil(NEWLINE, SEMICOLON)
			return &ast.BadStmt{Bad: ast.BadNode{
				Pos:     expr.NodePos(),
				EndPos:  expr.NodeEndPos(),
				Message: "invalid annotation target",
			}}
		}
		p.advance() // ':'
		annotation := p.parseExpr()

		var value ast.Expr
		if p.match(EQUAL) {
			value = p.parseExpr()
		}

		return &ast.AnnAssign{
			Pos:        target.Pos,
			EndPos:     p.makeEndPos(p.previous()),
			Target:     *target,
			Annotation: annotation,
			Value:      value,
		}
	}

	if p.match(EQUAL) {
		value := p.parseExpr()
		return &ast.Assign{
			Pos:    expr.NodePos(),
			EndPos: p.makeEndPos(p.previous()),
			Target: expr,
			Value:  value,
		}
	}

	if isAugAssignOperator(p.peek()) {
		opTok := p.advance()
		value := p.parseExpr()
		return &ast.AugAssign{
			Pos:    expr.NodePos(),
			EndPos: p.makeEndPos(p.previous()),
			Target: expr,
			Op:     augAssignOp(opTok),
			Value:  value,
		}
	}

	return &ast.ExprStmt{
		Pos:    expr.NodePos(),
		EndPos: expr.NodeEndPos(),
		Value:  expr,
	}
}

func (p *Parser) atStmtEnd() bool {
	return p.check(NEWLINE) || p.check(SEMICOLON) || p.isAtEnd()
}

// endLine consumes the NEWLINE that closes a logical line, reporting
// and recovering when something else is found first.
func (p *Parser) endLine() {
	if p.match(NEWLINE) || p.isAtEnd() {
		return
	}
	p.errorAtCurrent("expected end of line")
	p.synchronizeToLineEnd()
}

func isAugAssignOperator(tok Token) bool {
	switch tok.Type {
	case PLUS_EQUAL, MINUS_EQUAL, STAR_EQUAL, SLASH_EQUAL, PERCENT_EQUAL:
		return true
	default:
		return false
	}
}

// augAssignOp strips the '=' so AugAssign carries the bare binary
// operator, matching the operator table keys.
func augAssignOp(tok Token) string {
	switch tok.Type {
	case PLUS_EQUAL:
		return "+"
	case MINUS_EQUAL:
		return "-"
	case STAR_EQUAL:
		return "*"
	case SLASH_EQUAL:
		return "/"
	case PERCENT_EQUAL:
		return "%"
	default:
		return tok.Lexeme
	}
}
