package unit

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/yaklabco/gocorrect/pkg/source"
)

// Resolved is a parsed and type-checked Go file.
// It is read-only once returned by Resolve.
type Resolved struct {
	Path    string
	Content []byte
	Text    *source.Text

	Fset *token.FileSet
	Tok  *token.File
	File *ast.File

	Pkg  *types.Package
	Info *types.Info

	Session     *Session
	Diagnostics []Diagnostic
	Identity    Identity
}

// Offset converts pos to a byte offset, or source.NoOffset when pos does
// not belong to this file.
func (u *Resolved) Offset(pos token.Pos) int {
	if !pos.IsValid() || u.Tok == nil {
		return source.NoOffset
	}
	base := u.Tok.Base()
	if int(pos) < base || int(pos) > base+u.Tok.Size() {
		return source.NoOffset
	}
	return int(pos) - base
}

// Pos converts a byte offset to a position, or token.NoPos when the offset
// lies outside the file.
func (u *Resolved) Pos(offset int) token.Pos {
	if u.Tok == nil || offset < 0 || offset > u.Tok.Size() {
		return token.NoPos
	}
	return u.Tok.Pos(offset)
}

// NodeRange returns the byte range of n. Nodes with no position yield a
// range at source.NoOffset.
func (u *Resolved) NodeRange(n ast.Node) source.Range {
	start := u.Offset(n.Pos())
	end := u.Offset(n.End())
	if start < 0 || end < start {
		return source.Range{Offset: source.NoOffset}
	}
	return source.RangeFromOffsets(start, end)
}

// DiagnosticsWithCode returns the diagnostics carrying code, in file order.
func (u *Resolved) DiagnosticsWithCode(code string) []Diagnostic {
	var out []Diagnostic
	for _, d := range u.Diagnostics {
		if d.Code == code {
			out = append(out, d)
		}
	}
	return out
}
