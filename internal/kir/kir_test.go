package kir

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tmdwlsdktkfkdgo/vyper-semantics/internal/ast"
	"github.com/tmdwlsdktkfkdgo/vyper-semantics/internal/parser"
)

// translateSource runs the pipeline the CLI runs: parse, fold negative
// literals, translate.
func translateSource(t *testing.T, source string) (string, error) {
	t.Helper()
	module, parseErrs, scanErrs := parser.ParseSource("test.v.py", source)
	require.Empty(t, scanErrs, "test source should scan cleanly")
	require.Empty(t, parseErrs, "test source should parse cleanly")
	ast.FoldNegativeLiterals(module)
	return Translate(module, NewSourceText(source))
}

func mustTranslate(t *testing.T, source string) string {
	t.Helper()
	out, err := translateSource(t, source)
	require.NoError(t, err)
	return out
}

// mustTranslateBody wraps statement lines in a single function so
// statement and expression tests need not repeat the scaffolding.
func mustTranslateBody(t *testing.T, lines ...string) string {
	t.Helper()
	return mustTranslate(t, bodySource(lines...))
}

func bodySource(lines ...string) string {
	var b strings.Builder
	b.WriteString("def f():\n")
	for _, line := range lines {
		b.WriteString("    " + line + "\n")
	}
	return b.String()
}
