package errors

import (
	"errors"
	"fmt"

	"github.com/tmdwlsdktkfkdgo/vyper-semantics/internal/ast"
)

// UnsupportedConstructError is the translator's single error kind: the
// source parsed fine, but its shape has no rendering in the output
// term language. Detail distinguishes the two flavors: empty means the
// node kind itself has no mapping, non-empty means the kind is
// recognized but one of its details falls outside the supported
// subset. Both abort the whole translation.
type UnsupportedConstructError struct {
	Construct string
	Detail    string
	Pos       ast.Position
}

func (e *UnsupportedConstructError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("unsupported %s", e.Construct)
	}
	return fmt.Sprintf("unsupported %s: %s", e.Construct, e.Detail)
}

// Structural reports whether the node's shape itself had no mapping,
// as opposed to a recognized shape with an out-of-subset detail.
func (e *UnsupportedConstructError) Structural() bool {
	return e.Detail == ""
}

func Unsupported(pos ast.Position, construct string) error {
	return &UnsupportedConstructError{Construct: construct, Pos: pos}
}

func Unsupportedf(pos ast.Position, construct, format string, args ...interface{}) error {
	return &UnsupportedConstructError{
		Construct: construct,
		Detail:    fmt.Sprintf(format, args...),
		Pos:       pos,
	}
}

// AsUnsupported unwraps err into an UnsupportedConstructError.
func AsUnsupported(err error) (*UnsupportedConstructError, bool) {
	var u *UnsupportedConstructError
	if errors.As(err, &u) {
		return u, true
	}
	return nil, false
}
