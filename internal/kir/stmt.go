package kir

import (
	"fmt"
	"strings"

	"github.com/tmdwlsdktkfkdgo/vyper-semantics/internal/ast"
	"github.com/tmdwlsdktkfkdgo/vyper-semantics/internal/errors"
)

// translateStmts renders a statement block one indentation level
// deeper than its enclosing block. depth counts the enclosing levels
// and is threaded explicitly through every recursive call; the program
// assembler starts function bodies at depth 1.
func (t *translator) translateStmts(body []ast.Stmt, depth int) (string, error) {
	indent := "\n" + strings.Repeat("  ", depth+1)

	var parts []string
	for _, stmt := range body {
		s, err := t.translateStmt(stmt, depth+1)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		return "", nil
	}
	return indent + strings.Join(parts, indent), nil
}

func (t *translator) translateStmt(node ast.Stmt, depth int) (string, error) {
	switch n := node.(type) {
	case *ast.AnnAssign:
		return t.translateVarDecl(n.Target.Name, n.Annotation)

	case *ast.Assign:
		target, err := t.translateVar(n.Target)
		if err != nil {
			return "", err
		}
		value, err := t.translateExpr(n.Value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%%assign(%s, %s)", target, value), nil

	case *ast.AugAssign:
		sym, ok := binOps[n.Op]
		if !ok {
			return "", errors.Unsupportedf(n.Pos, "augmented assignment operator", "%q", n.Op)
		}
		target, err := t.translateVar(n.Target)
		if err != nil {
			return "", err
		}
		value, err := t.translateExpr(n.Value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%%augassign(%s=, %s, %s)", sym, target, value), nil

	case *ast.If:
		test, err := t.translateExpr(n.Test)
		if err != nil {
			return "", err
		}
		body, err := t.translateStmts(n.Body, depth)
		if err != nil {
			return "", err
		}
		if len(n.Orelse) == 0 {
			return fmt.Sprintf("%%if(%s,%s)", test, body), nil
		}
		orelse, err := t.translateStmts(n.Orelse, depth)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%%if(%s,%s,%s)", test, body, orelse), nil

	case *ast.For:
		return t.translateFor(n, depth)

	case *ast.Break:
		return "%break", nil

	case *ast.Pass:
		return "%pass", nil

	case *ast.Return:
		if n.Value == nil {
			return "%return", nil
		}
		value, err := t.translateExpr(n.Value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%%return(%s)", value), nil

	case *ast.Assert:
		test, err := t.translateExpr(n.Test)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%%assert(%s)", test), nil

	case *ast.ExprStmt:
		return t.translateExprStmt(n)
	}
	return "", errors.Unsupported(node.NodePos(), "statement")
}

// translateFor distinguishes range loops from iteration over an
// arbitrary expression: range with one bound is a count, with two a
// start and a count; everything else renders as %forlist.
func (t *translator) translateFor(loop *ast.For, depth int) (string, error) {
	body, err := t.translateStmts(loop.Body, depth)
	if err != nil {
		return "", err
	}

	if call, ok := loop.Iter.(*ast.Call); ok {
		if fn, ok := call.Func.(*ast.Ident); ok && fn.Name == "range" {
			switch len(call.Args) {
			case 1:
				count, err := t.translateExpr(call.Args[0])
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("%%forrange(%s, %s,%s)", loop.Target.Name, count, body), nil
			case 2:
				start, err := t.translateExpr(call.Args[0])
				if err != nil {
					return "", err
				}
				end, err := t.translateExpr(call.Args[1])
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("%%forrange(%s, %s, %s,%s)", loop.Target.Name, start, end, body), nil
			default:
				return "", errors.Unsupportedf(call.Pos, "range loop", "expected one or two bounds, got %d", len(call.Args))
			}
		}
	}

	iter, err := t.translateExpr(loop.Iter)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%%forlist(%s, %s,%s)", loop.Target.Name, iter, body), nil
}

// translateExprStmt covers the statement-position call forms: event
// logging, send, selfdestruct, and the bare throw keyword. Any other
// expression used as a statement has no IR rendering.
func (t *translator) translateExprStmt(stmt *ast.ExprStmt) (string, error) {
	if name, ok := stmt.Value.(*ast.Ident); ok && name.Name == "throw" {
		return "%throw", nil
	}

	call, ok := stmt.Value.(*ast.Call)
	if !ok {
		return "", errors.Unsupported(stmt.Pos, "expression statement")
	}

	switch fn := call.Func.(type) {
	case *ast.Attribute:
		if base, ok := fn.Value.(*ast.Ident); ok && base.Name == "log" {
			args, err := t.translateExprList(call.Args, " ")
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%%log(%s, %s)", fn.Attr, args), nil
		}

	case *ast.Ident:
		switch fn.Name {
		case "send":
			args, err := t.translateExprList(call.Args, ", ")
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%%send(%s)", args), nil
		case "selfdestruct":
			args, err := t.translateExprList(call.Args, ", ")
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%%selfdestruct(%s)", args), nil
		}
	}
	return "", errors.Unsupported(stmt.Pos, "call statement")
}
