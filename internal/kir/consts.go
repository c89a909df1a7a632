package kir

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/tmdwlsdktkfkdgo/vyper-semantics/internal/ast"
	"github.com/tmdwlsdktkfkdgo/vyper-semantics/internal/errors"
)

// Decimal fixed-point values carry at most ten places; anything beyond
// that is dropped, not an error.
const fixed10MaxPlaces = 10

func (t *translator) translateConst(node ast.Expr) (string, error) {
	switch n := node.(type) {
	case *ast.NumberLit:
		if n.IsFloat {
			return t.translateFixed10(n)
		}
		// The position points at the digits even after sign folding,
		// so a negative hex literal still recovers its spelling (and,
		// like the source notation itself, drops the sign).
		if digits := t.src.HexLiteralAt(n.Pos); digits != "" {
			return fmt.Sprintf("%%hex(\"%s\")", digits), nil
		}
		return intConstString(n)
	case *ast.StringLit:
		return "\"" + n.Value + "\"", nil
	case *ast.BoolLit:
		if n.Value {
			return "true", nil
		}
		return "false", nil
	}
	return "", errors.Unsupported(node.NodePos(), "constant")
}

// translateFixed10 renders a decimal literal as %fixed10(A, B) where B
// is the smallest power of ten that makes A integral, capped at 10^10.
// The conversion works on the lexeme text, not a float, so values like
// 2.1 stay exact.
func (t *translator) translateFixed10(lit *ast.NumberLit) (string, error) {
	whole, frac, _ := strings.Cut(lit.Lexeme, ".")
	frac = strings.TrimRight(frac, "0")
	if len(frac) > fixed10MaxPlaces {
		frac = frac[:fixed10MaxPlaces]
	}

	num := new(big.Int)
	if _, ok := num.SetString(whole+frac, 10); !ok {
		return "", errors.Unsupportedf(lit.Pos, "decimal literal", "malformed lexeme %q", lit.Lexeme)
	}
	if lit.Neg {
		num.Neg(num)
	}

	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(frac))), nil)
	return fmt.Sprintf("%%fixed10(%s, %s)", num, den), nil
}

// intConstString renders an integer literal in canonical decimal form,
// folding in the sign set by the negative-literal pre-pass.
func intConstString(lit *ast.NumberLit) (string, error) {
	v := new(big.Int)
	if _, ok := v.SetString(lit.Lexeme, 10); !ok {
		return "", errors.Unsupportedf(lit.Pos, "integer literal", "malformed lexeme %q", lit.Lexeme)
	}
	if lit.Neg {
		v.Neg(v)
	}
	return v.String(), nil
}
