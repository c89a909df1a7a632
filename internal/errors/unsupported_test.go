package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmdwlsdktkfkdgo/vyper-semantics/internal/ast"
)

func TestStructuralFlavor(t *testing.T) {
	err := Unsupported(ast.Position{Line: 4, Column: 1}, "top-level declaration")

	u, ok := AsUnsupported(err)
	require.True(t, ok)
	assert.True(t, u.Structural())
	assert.Equal(t, "unsupported top-level declaration", err.Error())
	assert.Equal(t, 4, u.Pos.Line)
}

func TestDetailFlavor(t *testing.T) {
	err := Unsupportedf(ast.Position{}, "comparison operator", "%q", "is")

	u, ok := AsUnsupported(err)
	require.True(t, ok)
	assert.False(t, u.Structural())
	assert.Equal(t, `unsupported comparison operator: "is"`, err.Error())
}

func TestAsUnsupportedThroughWrapping(t *testing.T) {
	inner := Unsupported(ast.Position{Line: 7}, "call")
	wrapped := fmt.Errorf("translating function %q: %w", "deposit", inner)

	u, ok := AsUnsupported(wrapped)
	require.True(t, ok)
	assert.Equal(t, "call", u.Construct)
	assert.Equal(t, 7, u.Pos.Line)
}

func TestAsUnsupportedRejectsOtherErrors(t *testing.T) {
	_, ok := AsUnsupported(fmt.Errorf("plain failure"))
	assert.False(t, ok)
}
