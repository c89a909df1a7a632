package kir

import (
	"strings"

	"github.com/tmdwlsdktkfkdgo/vyper-semantics/internal/ast"
)

// SourceText is the read-only side input for literal fidelity: the raw
// source split into lines, indexed by the positions the parser
// recorded on each node.
type SourceText struct {
	lines []string
}

func NewSourceText(source string) *SourceText {
	return &SourceText{lines: strings.Split(source, "\n")}
}

// HexLiteralAt re-scans the source at pos for a "0x" prefix and
// returns the literal's contiguous hex digits verbatim, or "" when the
// literal there was written in decimal. The parsed value alone cannot
// tell the two spellings apart, so this is the one lookup that needs
// the raw text.
func (s *SourceText) HexLiteralAt(pos ast.Position) string {
	if pos.Line < 1 || pos.Line > len(s.lines) {
		return ""
	}
	line := s.lines[pos.Line-1]
	if pos.Column < 1 || pos.Column > len(line) {
		return ""
	}

	rest := line[pos.Column-1:]
	if !strings.HasPrefix(rest, "0x") {
		return ""
	}

	end := 2
	for end < len(rest) && isHexDigit(rest[end]) {
		end++
	}
	return rest[2:end]
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') ||
		('a' <= c && c <= 'f') ||
		('A' <= c && c <= 'F')
}
