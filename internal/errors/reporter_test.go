package errors

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/tmdwlsdktkfkdgo/vyper-semantics/internal/ast"
)

func TestFormatDiagnostic(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	reporter := NewReporter("token.v.py", "a = 1\nb = foo(1)\n")
	out := reporter.Format("unsupported call", ast.Position{Line: 2, Column: 5}, 3)

	expected := "error: unsupported call\n" +
		"   ┌─ token.v.py:2:5\n" +
		"   │\n" +
		"  2│b = foo(1)\n" +
		"   │    ^^^\n\n"
	assert.Equal(t, expected, out)
}

func TestFormatClampsMarkerLength(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	reporter := NewReporter("t.v.py", "x\n")
	out := reporter.Format("oops", ast.Position{Line: 1, Column: 1}, 0)

	assert.Contains(t, out, "│^\n")
}

func TestFormatOutOfRangeLine(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	reporter := NewReporter("t.v.py", "x = 1\n")
	out := reporter.Format("late failure", ast.Position{Line: 99, Column: 1}, 1)

	// No source line to show, but the header still points at the spot.
	assert.Contains(t, out, "t.v.py:99:1")
}
