package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/tmdwlsdktkfkdgo/vyper-semantics/internal/ast"
)

// Reporter renders diagnostics against the original source with a
// line-number gutter and a caret marker under the offending span.
type Reporter struct {
	filename string
	lines    []string
}

func NewReporter(filename, source string) *Reporter {
	return &Reporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// Format renders one diagnostic. length is the width of the caret
// marker and is clamped to at least one column.
func (r *Reporter) Format(message string, pos ast.Position, length int) string {
	var lineContent string
	if pos.Line >= 1 && pos.Line <= len(r.lines) {
		lineContent = r.lines[pos.Line-1]
	}

	if length < 1 {
		length = 1
	}
	marker := strings.Repeat(" ", max(0, pos.Column-1)) + strings.Repeat("^", length)

	red := color.New(color.FgRed).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	// Compute width for the line number column; the minimum keeps
	// short files visually aligned.
	lineNumberWidth := len(fmt.Sprintf("%d", pos.Line))
	if lineNumberWidth < 3 {
		lineNumberWidth = 3
	}
	indent := strings.Repeat(" ", lineNumberWidth)

	return fmt.Sprintf(
		"%s: %s\n%s┌─ %s:%d:%d\n%s│\n%*d│%s\n%s│%s\n\n",
		red("error"),
		message,
		indent,
		r.filename, pos.Line, pos.Column,
		indent,
		lineNumberWidth, pos.Line, lineContent,
		indent,
		bold(marker),
	)
}
