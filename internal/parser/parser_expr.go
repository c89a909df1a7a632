package parser

import (
	"github.com/tmdwlsdktkfkdgo/vyper-semantics/internal/ast"
)

// binaryPrecedence covers the arithmetic and bitwise rungs, tightest
// last. Comparisons, "and"/"or" and prefix "not" sit above this table
// because Python gives them their own grammar rungs: comparisons chain
// and two of their operators are spelled with two tokens.
var binaryPrecedence = map[TokenType]int{
	PIPE:            1,
	CARET:           2,
	AMPERSAND:       3,
	LESS_LESS:       4,
	GREATER_GREATER: 4,
	PLUS:            5,
	MINUS:           5,
	STAR:            6,
	SLASH:           6,
	SLASH_SLASH:     6,
	PERCENT:         6,
	AT:              6,
	STAR_STAR:       8,
}

func (p *Parser) parseExpr() ast.Expr {
	return p.parseOrExpr()
}

func (p *Parser) parseOrExpr() ast.Expr {
	expr := p.parseAndExpr()
	for p.check(OR) {
		op := p.advance()
		right := p.parseAndExpr()
		expr = &ast.BoolOpExpr{
			Pos:    expr.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     op.Lexeme,
			Left:   expr,
			Right:  right,
		}
	}
	return expr
}

func (p *Parser) parseAndExpr() ast.Expr {
	expr := p.parseNotExpr()
	for p.check(AND) {
		op := p.advance()
		right := p.parseNotExpr()
		expr = &ast.BoolOpExpr{
			Pos:    expr.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     op.Lexeme,
			Left:   expr,
			Right:  right,
		}
	}
	return expr
}

func (p *Parser) parseNotExpr() ast.Expr {
	if p.check(NOT) {
		op := p.advance()
		value := p.parseNotExpr()
		return &ast.UnaryExpr{
			Pos:    p.makePos(op),
			EndPos: value.NodeEndPos(),
			Op:     op.Lexeme,
			Value:  value,
		}
	}
	return p.parseComparison()
}

// parseComparison collects a full comparison chain into one node, so
// "a < b < c" survives as a single CompareExpr with two operators.
func (p *Parser) parseComparison() ast.Expr {
	expr := p.parsePrattExpr(0)

	var ops []string
	var comparators []ast.Expr
	for {
		op, ok := p.matchCompareOp()
		if !ok {
			break
		}
		right := p.parsePrattExpr(0)
		ops = append(ops, op)
		comparators = append(comparators, right)
	}

	if len(ops) == 0 {
		return expr
	}
	return &ast.CompareExpr{
		Pos:         expr.NodePos(),
		EndPos:      comparators[len(comparators)-1].NodeEndPos(),
		Left:        expr,
		Ops:         ops,
		Comparators: comparators,
	}
}

func (p *Parser) matchCompareOp() (string, bool) {
	switch {
	case p.match(LESS):
		return "<", true
	case p.match(LESS_EQUAL):
		return "<=", true
	case p.match(GREATER):
		return ">", true
	case p.match(GREATER_EQUAL):
		return ">=", true
	case p.match(EQUAL_EQUAL):
		return "==", true
	case p.match(BANG_EQUAL):
		return "!=", true
	case p.match(IN):
		return "in", true
	case p.match(IS):
		if p.match(NOT) {
			return "is not", true
		}
		return "is", true
	case p.check(NOT) && p.checkNext(IN):
		p.advance()
		p.advance()
		return "not in", true
	}
	return "", false
}

func (p *Parser) parsePrattExpr(minPrec int) ast.Expr {
	expr := p.parsePrefixExpr()

	for {
		tok := p.peek()
		prec, ok := binaryPrecedence[tok.Type]
		if !ok || prec < minPrec {
			break
		}

		p.advance()
		next := prec + 1
		if tok.Type == STAR_STAR { // right-associative
			next = prec
		}
		right := p.parsePrattExpr(next)

		expr = &ast.BinaryExpr{
			Pos:    expr.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     tok.Lexeme,
			Left:   expr,
			Right:  right,
		}
	}

	return expr
}

func (p *Parser) parsePrefixExpr() ast.Expr {
	if p.match(MINUS, PLUS, TILDE) {
		op := p.previous()
		// "**" binds tighter than a prefix sign, as in Python.
		value := p.parsePrattExpr(binaryPrecedence[STAR_STAR])
		return &ast.UnaryExpr{
			Pos:    p.makePos(op),
			EndPos: value.NodeEndPos(),
			Op:     op.Lexeme,
			Value:  value,
		}
	}

	return p.parsePostfixExpr(p.parsePrimaryExpr())
}

func (p *Parser) parsePostfixExpr(expr ast.Expr) ast.Expr {
	for {
		if p.match(DOT) {
			field := p.consume(IDENTIFIER, "expected attribute name after '.'")
			expr = &ast.Attribute{
				Pos:    expr.NodePos(),
				EndPos: p.makeEndPos(field),
				Value:  expr,
				Attr:   field.Lexeme,
			}
		} else if p.check(LEFT_PAREN) {
			p.advance()
			args, keywords, rparen := p.parseCallArgs()
			expr = &ast.Call{
				Pos:      expr.NodePos(),
				EndPos:   p.makeEndPos(rparen),
				Func:     expr,
				Args:     args,
				Keywords: keywords,
			}
		} else if p.check(LEFT_BRACKET) {
			p.advance()
			index := p.parseExpr()
			end := p.consume(RIGHT_BRACKET, "expected ']' after subscript")
			expr = &ast.Subscript{
				Pos:    expr.NodePos(),
				EndPos: p.makeEndPos(end),
				Value:  expr,
				Index:  index,
			}
		} else {
			break
		}
	}

	return expr
}

// parseCallArgs parses the argument list of a call up to and including
// the closing paren. Keyword arguments are kept separate; the
// translator decides whether they are allowed.
func (p *Parser) parseCallArgs() ([]ast.Expr, []*ast.Keyword, Token) {
	var args []ast.Expr
	var keywords []*ast.Keyword

	for !p.check(RIGHT_PAREN) && !p.isAtEnd() {
		if p.check(IDENTIFIER) && p.checkNext(EQUAL) {
			name := p.makeIdent(p.advance())
			p.advance() // '='
			value := p.parseExpr()
			keywords = append(keywords, &ast.Keyword{
				Pos:    name.Pos,
				EndPos: value.NodeEndPos(),
				Name:   name,
				Value:  value,
			})
		} else {
			args = append(args, p.parseExpr())
		}

		if !p.match(COMMA) {
			break
		}
	}

	rparen := p.consume(RIGHT_PAREN, "expected ')' after arguments")
	return args, keywords, rparen
}

func (p *Parser) parsePrimaryExpr() ast.Expr {
	if p.match(NUMBER, HEX_NUMBER) {
		tok := p.previous()
		return &ast.NumberLit{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Lexeme: tok.Lexeme,
		}
	}

	if p.match(FLOAT_NUMBER) {
		tok := p.previous()
		return &ast.NumberLit{
			Pos:     p.makePos(tok),
			EndPos:  p.makeEndPos(tok),
			Lexeme:  tok.Lexeme,
			IsFloat: true,
		}
	}

	if p.match(STRING) {
		tok := p.previous()
		return &ast.StringLit{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Value:  tok.Lexeme,
		}
	}

	if p.match(TRUE, FALSE) {
		tok := p.previous()
		return &ast.BoolLit{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Value:  tok.Type == TRUE,
		}
	}

	if p.match(IDENTIFIER) {
		tok := p.previous()
		ident := p.makeIdent(tok)
		return &ident
	}

	if p.match(LEFT_PAREN) {
		expr := p.parseExpr()
		p.consume(RIGHT_PAREN, "expected ')'")
		return expr
	}

	if p.match(LEFT_BRACKET) {
		return p.parseListLit()
	}

	if p.match(LEFT_BRACE) {
		return p.parseDictLit()
	}

	tok := p.peek()
	p.errorAtCurrent("unexpected token in expression")
	bad := &ast.BadExpr{
		Bad: ast.BadNode{
			Pos:     p.makePos(tok),
			EndPos:  p.makeEndPos(tok),
			Message: "unexpected token in expression: " + tok.Lexeme,
		},
	}
	p.advance()
	return bad
}

func (p *Parser) parseListLit() ast.Expr {
	start := p.previous()
	var elts []ast.Expr

	for !p.check(RIGHT_BRACKET) && !p.isAtEnd() {
		elts = append(elts, p.parseExpr())
		if !p.match(COMMA) {
			break
		}
	}

	end := p.consume(RIGHT_BRACKET, "expected ']' after list elements")
	return &ast.ListLit{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Elts:   elts,
	}
}

func (p *Parser) parseDictLit() ast.Expr {
	start := p.previous()
	var keys, values []ast.Expr

	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		key := p.parseExpr()
		p.consume(COLON, "expected ':' after dict key")
		value := p.parseExpr()
		keys = append(keys, key)
		values = append(values, value)
		if !p.match(COMMA) {
			break
		}
	}

	end := p.consume(RIGHT_BRACE, "expected '}' after dict entries")
	return &ast.DictLit{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Keys:   keys,
		Values: values,
	}
}
