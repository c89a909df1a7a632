package ast

import (
	"fmt"
	"strings"
)

// The String methods render a compact, source-like form used by tests
// and debug logging. They are not the IR rendering; that lives in
// internal/kir.

func (m *Module) String() string {
	var b strings.Builder
	for i, stmt := range m.Body {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(stmt.String())
	}
	return b.String()
}

func (i *Ident) String() string {
	return i.Name
}

func (bs *BadStmt) String() string {
	return fmt.Sprintf("BadStmt: %s", bs.Bad.Message)
}

func (be *BadExpr) String() string {
	return fmt.Sprintf("BadExpr: %s", be.Bad.Message)
}

func (f *FunctionDef) String() string {
	var b strings.Builder

	for _, dec := range f.Decorators {
		b.WriteString("@" + dec.Name + "\n")
	}

	b.WriteString("def " + f.Name.Name + "(")
	for i, param := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(param.String())
	}
	b.WriteString(")")

	if f.Returns != nil {
		b.WriteString(" -> " + f.Returns.String())
	}

	b.WriteString(":")
	writeSuite(&b, f.Body)
	return b.String()
}

func (p *Param) String() string {
	if p.Annotation == nil {
		return p.Name.Name
	}
	return fmt.Sprintf("%s: %s", p.Name.Name, p.Annotation.String())
}

func (a *AnnAssign) String() string {
	if a.Value == nil {
		return fmt.Sprintf("%s: %s", a.Target.Name, a.Annotation.String())
	}
	return fmt.Sprintf("%s: %s = %s", a.Target.Name, a.Annotation.String(), a.Value.String())
}

func (a *Assign) String() string {
	return fmt.Sprintf("%s = %s", a.Target.String(), a.Value.String())
}

func (a *AugAssign) String() string {
	return fmt.Sprintf("%s %s= %s", a.Target.String(), a.Op, a.Value.String())
}

func (i *If) String() string {
	var b strings.Builder
	b.WriteString("if " + i.Test.String() + ":")
	writeSuite(&b, i.Body)
	if len(i.Orelse) > 0 {
		b.WriteString("\nelse:")
		writeSuite(&b, i.Orelse)
	}
	return b.String()
}

func (f *For) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("for %s in %s:", f.Target.Name, f.Iter.String()))
	writeSuite(&b, f.Body)
	return b.String()
}

func (*Break) String() string {
	return "break"
}

func (*Pass) String() string {
	return "pass"
}

func (r *Return) String() string {
	if r.Value == nil {
		return "return"
	}
	return "return " + r.Value.String()
}

func (a *Assert) String() string {
	if a.Msg == nil {
		return "assert " + a.Test.String()
	}
	return fmt.Sprintf("assert %s, %s", a.Test.String(), a.Msg.String())
}

func (e *ExprStmt) String() string {
	return e.Value.String()
}

func (n *NumberLit) String() string {
	if n.Neg {
		return "-" + n.Lexeme
	}
	return n.Lexeme
}

func (s *StringLit) String() string {
	return fmt.Sprintf("%q", s.Value)
}

func (b *BoolLit) String() string {
	if b.Value {
		return "True"
	}
	return "False"
}

func (a *Attribute) String() string {
	return a.Value.String() + "." + a.Attr
}

func (s *Subscript) String() string {
	return fmt.Sprintf("%s[%s]", s.Value.String(), s.Index.String())
}

func (c *Call) String() string {
	var b strings.Builder
	b.WriteString(c.Func.String() + "(")
	for i, arg := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	for i, kw := range c.Keywords {
		if i > 0 || len(c.Args) > 0 {
			b.WriteString(", ")
		}
		b.WriteString(kw.String())
	}
	b.WriteString(")")
	return b.String()
}

func (k *Keyword) String() string {
	return fmt.Sprintf("%s=%s", k.Name.Name, k.Value.String())
}

func (l *ListLit) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, elt := range l.Elts {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(elt.String())
	}
	b.WriteString("]")
	return b.String()
}

func (d *DictLit) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i := range d.Keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(d.Keys[i].String() + ": " + d.Values[i].String())
	}
	b.WriteString("}")
	return b.String()
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op, b.Right.String())
}

func (c *CompareExpr) String() string {
	var b strings.Builder
	b.WriteString("(" + c.Left.String())
	for i, op := range c.Ops {
		b.WriteString(" " + op + " " + c.Comparators[i].String())
	}
	b.WriteString(")")
	return b.String()
}

func (b *BoolOpExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op, b.Right.String())
}

func (u *UnaryExpr) String() string {
	if u.Op == "not" {
		return "(not " + u.Value.String() + ")"
	}
	return "(" + u.Op + u.Value.String() + ")"
}

func writeSuite(b *strings.Builder, body []Stmt) {
	for _, stmt := range body {
		b.WriteString("\n    " + strings.ReplaceAll(stmt.String(), "\n", "\n    "))
	}
}
