// Package kir translates a parsed Viper module into the prefix-term
// intermediate representation consumed by the K semantics. Every
// translate function is pure: it renders bottom-up from the node's
// fields, returns the first unsupported construct it meets, and never
// emits partial output.
package kir

import (
	"fmt"
	"strings"

	"github.com/tmdwlsdktkfkdgo/vyper-semantics/internal/ast"
	"github.com/tmdwlsdktkfkdgo/vyper-semantics/internal/errors"
)

// translator bundles the read-only inputs every translation step
// shares; the only other state is the explicit block depth parameter.
type translator struct {
	src *SourceText
}

// Translate renders a whole module as a %pgm term. src must be the
// text the module was parsed from; it is consulted only for
// hex-literal recovery.
func Translate(module *ast.Module, src *SourceText) (string, error) {
	t := &translator{src: src}
	return t.translateProgram(module)
}

// translateProgram partitions the top-level declarations into events,
// storage globals, constructors and functions in one scan, then
// renders the buckets in that fixed order.
func (t *translator) translateProgram(module *ast.Module) (string, error) {
	var events, globals, inits, defs []string

	for _, node := range module.Body {
		switch n := node.(type) {
		case *ast.AnnAssign:
			if marker, ok := eventMarkerCall(n); ok {
				event, err := t.translateEvent(n, marker)
				if err != nil {
					return "", err
				}
				events = append(events, event)
				continue
			}
			global, err := t.translateGlobal(n)
			if err != nil {
				return "", err
			}
			globals = append(globals, global)

		case *ast.FunctionDef:
			def, err := t.translateDef(n)
			if err != nil {
				return "", err
			}
			// Uniqueness of the constructor is not checked here; every
			// one found lands in the init bucket in source order.
			if n.Name.Name == constructorName {
				inits = append(inits, def)
			} else {
				defs = append(defs, def)
			}

		default:
			return "", errors.Unsupported(node.NodePos(), "top-level declaration")
		}
	}

	return fmt.Sprintf("%%pgm(%s,%s,%s,%s\n)",
		joinTerms(events, "\n", ""),
		joinTerms(globals, "\n", " "),
		joinTerms(inits, "\n", " "),
		joinTerms(defs, "\n", " ")), nil
}

func eventMarkerCall(decl *ast.AnnAssign) (*ast.Call, bool) {
	call, ok := decl.Annotation.(*ast.Call)
	if !ok {
		return nil, false
	}
	name, ok := call.Func.(*ast.Ident)
	if !ok || name.Name != eventMarker {
		return nil, false
	}
	return call, true
}

func (t *translator) translateEvent(decl *ast.AnnAssign, marker *ast.Call) (string, error) {
	if len(marker.Args) != 1 {
		return "", errors.Unsupportedf(marker.Pos, "event declaration", "expected exactly one parameter block")
	}
	params, ok := marker.Args[0].(*ast.DictLit)
	if !ok {
		return "", errors.Unsupportedf(marker.Args[0].NodePos(), "event declaration", "parameter block must be a dict literal")
	}

	var parts []string
	for i := range params.Keys {
		key, ok := params.Keys[i].(*ast.Ident)
		if !ok {
			return "", errors.Unsupported(params.Keys[i].NodePos(), "event parameter name")
		}
		param, err := t.translateEventParam(key, params.Values[i])
		if err != nil {
			return "", err
		}
		parts = append(parts, param)
	}
	return fmt.Sprintf("  %%event(%s, %s)", decl.Target.Name, strings.Join(parts, " ")), nil
}

// translateEventParam renders one event parameter; an indexed(...)
// wrapper around the type sets the indexed flag.
func (t *translator) translateEventParam(key *ast.Ident, value ast.Expr) (string, error) {
	switch v := value.(type) {
	case *ast.Call:
		if name, ok := v.Func.(*ast.Ident); ok && name.Name == "indexed" && len(v.Args) == 1 {
			typ, err := t.translateType(v.Args[0])
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%%eparam(%s, %s, true)", key.Name, typ), nil
		}
	case *ast.Ident:
		typ, err := t.translateType(v)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%%eparam(%s, %s, false)", key.Name, typ), nil
	}
	return "", errors.Unsupported(value.NodePos(), "event parameter type")
}

// translateGlobal renders a storage declaration. A call-shaped
// annotation is a visibility wrapper around the type; without one the
// declaration defaults to private.
func (t *translator) translateGlobal(decl *ast.AnnAssign) (string, error) {
	if call, ok := decl.Annotation.(*ast.Call); ok {
		visibility, ok := call.Func.(*ast.Ident)
		if !ok {
			return "", errors.Unsupported(call.Func.NodePos(), "global visibility wrapper")
		}
		if len(call.Args) != 1 {
			return "", errors.Unsupportedf(call.Pos, "global declaration", "visibility wrapper expects exactly one type")
		}
		typ, err := t.translateType(call.Args[0])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("  %%svdecl(%s, %s, %%%s)", decl.Target.Name, typ, visibility.Name), nil
	}

	typ, err := t.translateType(decl.Annotation)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("  %%svdecl(%s, %s, %%private)", decl.Target.Name, typ), nil
}

func (t *translator) translateDef(fn *ast.FunctionDef) (string, error) {
	var decorators []string
	for _, d := range fn.Decorators {
		decorators = append(decorators, "%@"+d.Name)
	}

	var params []string
	for _, p := range fn.Params {
		typ, err := t.translateType(p.Annotation)
		if err != nil {
			return "", err
		}
		params = append(params, fmt.Sprintf("%%param(%s, %s)", p.Name.Name, typ))
	}

	returns, err := t.translateType(fn.Returns)
	if err != nil {
		return "", err
	}
	body, err := t.translateStmts(fn.Body, 1)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("  %%fdecl(%s, %s, %s, %s,%s)",
		strings.Join(decorators, " "),
		fn.Name.Name,
		strings.Join(params, " "),
		returns,
		body), nil
}

// joinTerms joins rendered terms on newlines, each bucket opening with
// a newline of its own; empty buckets collapse to their placeholder.
func joinTerms(parts []string, sep, empty string) string {
	if len(parts) == 0 {
		return empty
	}
	return sep + strings.Join(parts, sep)
}
