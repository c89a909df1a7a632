package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFunctionDefString(t *testing.T) {
	fn := &FunctionDef{
		Decorators: []Ident{{Name: "public"}},
		Name:       Ident{Name: "get"},
		Params: []*Param{
			{Name: Ident{Name: "_key"}, Annotation: &Ident{Name: "address"}},
		},
		Returns: &Ident{Name: "num256"},
		Body: []Stmt{
			&Return{Value: &Subscript{
				Value: &Attribute{Value: &Ident{Name: "self"}, Attr: "table"},
				Index: &Ident{Name: "_key"},
			}},
		},
	}

	expected := "@public\ndef get(_key: address) -> num256:\n    return self.table[_key]"
	assert.Equal(t, expected, fn.String())
}

func TestNumberLitStringCarriesSign(t *testing.T) {
	lit := &NumberLit{Lexeme: "0xAb", Neg: true}
	assert.Equal(t, "-0xAb", lit.String())
}

func TestIfStringWithElse(t *testing.T) {
	stmt := &If{
		Test:   &Ident{Name: "a"},
		Body:   []Stmt{&Pass{}},
		Orelse: []Stmt{&Break{}},
	}
	assert.Equal(t, "if a:\n    pass\nelse:\n    break", stmt.String())
}

func TestCompareExprStringKeepsChain(t *testing.T) {
	expr := &CompareExpr{
		Left:        &Ident{Name: "a"},
		Ops:         []string{"<", "<"},
		Comparators: []Expr{&Ident{Name: "b"}, &Ident{Name: "c"}},
	}
	assert.Equal(t, "(a < b < c)", expr.String())
}

func TestDictLitString(t *testing.T) {
	expr := &DictLit{
		Keys:   []Expr{&Ident{Name: "x"}, &Ident{Name: "y"}},
		Values: []Expr{&Ident{Name: "num"}, &Ident{Name: "num"}},
	}
	assert.Equal(t, "{x: num, y: num}", expr.String())
}
