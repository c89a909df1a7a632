package kir

import (
	"fmt"
	"strings"

	"github.com/tmdwlsdktkfkdgo/vyper-semantics/internal/ast"
	"github.com/tmdwlsdktkfkdgo/vyper-semantics/internal/errors"
)

func (t *translator) translateExpr(node ast.Expr) (string, error) {
	switch n := node.(type) {
	case *ast.NumberLit, *ast.StringLit, *ast.BoolLit:
		return t.translateConst(node)

	case *ast.Ident:
		switch n.Name {
		case "self":
			return "%self", nil
		case "true", "false":
			// Lowercase spellings of the boolean constants.
			return n.Name, nil
		}
		return t.translateVar(n)

	case *ast.BinaryExpr:
		sym, ok := binOps[n.Op]
		if !ok {
			return "", errors.Unsupportedf(n.Pos, "binary operator", "%q", n.Op)
		}
		left, err := t.translateExpr(n.Left)
		if err != nil {
			return "", err
		}
		right, err := t.translateExpr(n.Right)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%%binop(%s, %s, %s)", sym, left, right), nil

	case *ast.CompareExpr:
		if len(n.Ops) > 1 {
			return "", errors.Unsupportedf(n.Pos, "comparison", "chained comparisons are not supported")
		}
		sym, ok := compareOps[n.Ops[0]]
		if !ok {
			return "", errors.Unsupportedf(n.Pos, "comparison operator", "%q", n.Ops[0])
		}
		left, err := t.translateExpr(n.Left)
		if err != nil {
			return "", err
		}
		right, err := t.translateExpr(n.Comparators[0])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%%compareop(%s, %s, %s)", sym, left, right), nil

	case *ast.BoolOpExpr:
		sym, ok := boolOps[n.Op]
		if !ok {
			return "", errors.Unsupportedf(n.Pos, "boolean operator", "%q", n.Op)
		}
		left, err := t.translateExpr(n.Left)
		if err != nil {
			return "", err
		}
		right, err := t.translateExpr(n.Right)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%%boolop(%s, %s, %s)", sym, left, right), nil

	case *ast.UnaryExpr:
		sym, ok := unaryOps[n.Op]
		if !ok {
			return "", errors.Unsupportedf(n.Pos, "unary operator", "%q", n.Op)
		}
		value, err := t.translateExpr(n.Value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%%unaryop(%s, %s)", sym, value), nil

	case *ast.Attribute:
		if base, ok := n.Value.(*ast.Ident); ok {
			if props, ok := reservedProperties[base.Name]; ok && props[n.Attr] {
				return "%" + base.Name + "." + n.Attr, nil
			}
		}
		return t.translateVar(n)

	case *ast.Subscript:
		return t.translateVar(n)

	case *ast.ListLit:
		elts, err := t.translateExprList(n.Elts, " ")
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%%list(%s)", elts), nil

	case *ast.Call:
		return t.translateCall(n)
	}
	return "", errors.Unsupported(node.NodePos(), "expression")
}

// translateCall handles the two supported call shapes: a bare-name
// call (reserved or generic function) and an internal self.method
// call. Anything else, external calls included, is unsupported.
func (t *translator) translateCall(call *ast.Call) (string, error) {
	switch fn := call.Func.(type) {
	case *ast.Ident:
		if len(call.Keywords) != 0 {
			return "", errors.Unsupportedf(call.Keywords[0].Pos, "call", "named arguments are not supported")
		}
		if fn.Name == weiValueFunc {
			return t.translateWeiValueCall(call)
		}
		args, err := t.translateExprList(call.Args, ", ")
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%%%s(%s)", fn.Name, args), nil

	case *ast.Attribute:
		if base, ok := fn.Value.(*ast.Ident); ok && base.Name == "self" {
			args, err := t.translateExprList(call.Args, " ")
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%%icall(%s, %s)", fn.Attr, args), nil
		}
	}
	return "", errors.Unsupported(call.Pos, "call")
}

// translateWeiValueCall renders the wei-scaling built-in, whose second
// argument is a bare unit identifier (or its string spelling), not an
// expression.
func (t *translator) translateWeiValueCall(call *ast.Call) (string, error) {
	if len(call.Args) != 2 {
		return "", errors.Unsupportedf(call.Pos, "call", "%s takes a value and a unit name", weiValueFunc)
	}
	value, err := t.translateExpr(call.Args[0])
	if err != nil {
		return "", err
	}

	var unit string
	switch u := call.Args[1].(type) {
	case *ast.Ident:
		unit = u.Name
	case *ast.StringLit:
		unit = u.Value
	default:
		return "", errors.Unsupportedf(call.Args[1].NodePos(), "call", "%s expects a unit name as second argument", weiValueFunc)
	}
	return fmt.Sprintf("%%%s(%s, %s)", weiValueFunc, value, unit), nil
}

// translateVar renders a variable-reference chain: a plain name is a
// local, self.<field> is a storage variable, and subscripts and
// attribute accesses recurse into the chain's base.
func (t *translator) translateVar(node ast.Expr) (string, error) {
	switch n := node.(type) {
	case *ast.Ident:
		return fmt.Sprintf("%%var(%s)", n.Name), nil

	case *ast.Attribute:
		if base, ok := n.Value.(*ast.Ident); ok && base.Name == "self" {
			return fmt.Sprintf("%%svar(%s)", n.Attr), nil
		}
		base, err := t.translateVar(n.Value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%%attribute(%s, %s)", base, n.Attr), nil

	case *ast.Subscript:
		base, err := t.translateVar(n.Value)
		if err != nil {
			return "", err
		}
		index, err := t.translateExpr(n.Index)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%%subscript(%s, %s)", base, index), nil
	}
	return "", errors.Unsupported(node.NodePos(), "variable reference")
}

func (t *translator) translateExprList(exprs []ast.Expr, sep string) (string, error) {
	var parts []string
	for _, expr := range exprs {
		s, err := t.translateExpr(expr)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, sep), nil
}
