package kir

import (
	"fmt"
	"strings"

	"github.com/tmdwlsdktkfkdgo/vyper-semantics/internal/ast"
	"github.com/tmdwlsdktkfkdgo/vyper-semantics/internal/errors"
)

// translateType maps a type-annotation node to an IR Type term. nil
// stands for an omitted annotation and renders as %void.
func (t *translator) translateType(node ast.Expr) (string, error) {
	switch n := node.(type) {
	case nil:
		return "%void", nil

	case *ast.Ident:
		return "%" + n.Name, nil

	case *ast.CompareExpr:
		// Byte arrays are written as a size bound: bytes <= 256.
		if base, ok := n.Left.(*ast.Ident); ok && base.Name == "bytes" && len(n.Comparators) == 1 {
			if size, ok := n.Comparators[0].(*ast.NumberLit); ok && !size.IsFloat {
				length, err := intConstString(size)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("%%bytesT(%s)", length), nil
			}
		}
		return "", errors.Unsupportedf(n.Pos, "type annotation", "byte array types are written as bytes <= N")

	case *ast.Subscript:
		base, err := t.translateType(n.Value)
		if err != nil {
			return "", err
		}
		// An integer index is a list length; a type-shaped index is a
		// mapping key.
		if size, ok := n.Index.(*ast.NumberLit); ok && !size.IsFloat {
			length, err := t.translateConst(size)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%%listT(%s, %s)", base, length), nil
		}
		key, err := t.translateType(n.Index)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%%mapT(%s, %s)", base, key), nil

	case *ast.DictLit:
		decls, err := t.translateVarDecls(n)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%%structT(%s)", decls), nil

	case *ast.Call:
		return t.translateUnitType(n)
	}
	return "", errors.Unsupported(node.NodePos(), "type annotation")
}

// translateUnitType renders a unit-typed numeric: the callee is the
// pure numeric type, the first argument the unit expression, and a
// trailing "positional" argument marks the value as positional.
func (t *translator) translateUnitType(call *ast.Call) (string, error) {
	base, err := t.translateType(call.Func)
	if err != nil {
		return "", err
	}
	if len(call.Args) == 0 {
		return "", errors.Unsupportedf(call.Pos, "unit type", "missing unit expression")
	}

	unit, err := t.translateUnit(call.Args[0])
	if err != nil {
		return "", err
	}

	positional := "false"
	if last, ok := call.Args[len(call.Args)-1].(*ast.Ident); ok && last.Name == "positional" {
		positional = "true"
	}
	return fmt.Sprintf("%%unitT(%s, %s, %s)", base, unit, positional), nil
}

// translateUnit renders a unit-algebra expression: a base-unit name,
// an integer exponent, or {*, /, **} combinations of those.
func (t *translator) translateUnit(node ast.Expr) (string, error) {
	switch n := node.(type) {
	case *ast.Ident:
		return "%" + n.Name, nil

	case *ast.NumberLit:
		if n.IsFloat {
			return "", errors.Unsupportedf(n.Pos, "unit expression", "exponents must be integers")
		}
		return intConstString(n)

	case *ast.BinaryExpr:
		sym, ok := unitOps[n.Op]
		if !ok {
			return "", errors.Unsupportedf(n.Pos, "unit operator", "%q", n.Op)
		}
		left, err := t.translateUnit(n.Left)
		if err != nil {
			return "", err
		}
		right, err := t.translateUnit(n.Right)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s(%s, %s)", sym, left, right), nil
	}
	return "", errors.Unsupported(node.NodePos(), "unit expression")
}

func (t *translator) translateVarDecl(name string, annotation ast.Expr) (string, error) {
	typ, err := t.translateType(annotation)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%%vdecl(%s, %s)", name, typ), nil
}

// translateVarDecls renders a dict-shaped annotation as a struct field
// list, each pair following the single-declaration rule.
func (t *translator) translateVarDecls(dict *ast.DictLit) (string, error) {
	var parts []string
	for i := range dict.Keys {
		key, ok := dict.Keys[i].(*ast.Ident)
		if !ok {
			return "", errors.Unsupported(dict.Keys[i].NodePos(), "struct field name")
		}
		decl, err := t.translateVarDecl(key.Name, dict.Values[i])
		if err != nil {
			return "", err
		}
		parts = append(parts, decl)
	}
	return strings.Join(parts, " "), nil
}
