package correction

import (
	"go/ast"

	"github.com/yaklabco/gocorrect/pkg/source"
	"github.com/yaklabco/gocorrect/pkg/unit"
)

// Utils answers text questions about the context's file.
type Utils struct {
	unit *unit.Resolved
	text *source.Text
}

func newUtils(u *unit.Resolved) *Utils {
	text := u.Text
	if text == nil {
		text = source.NewText(u.Content)
	}
	return &Utils{unit: u, text: text}
}

// EOL returns the file's line terminator.
func (u *Utils) EOL() string {
	return u.text.EOL()
}

// Text returns the file's line index.
func (u *Utils) Text() *source.Text {
	return u.text
}

// NodeRange returns the byte range of n.
func (u *Utils) NodeRange(n ast.Node) source.Range {
	return u.unit.NodeRange(n)
}

// NodeText returns the source text of n.
func (u *Utils) NodeText(n ast.Node) string {
	return u.text.Slice(u.NodeRange(n))
}

// RangeText returns the source text covered by r.
func (u *Utils) RangeText(r source.Range) string {
	return u.text.Slice(r)
}

// IndentAt returns the indentation of the line containing offset.
func (u *Utils) IndentAt(offset int) string {
	return u.text.IndentAt(offset)
}

// IndentOf returns the indentation of the line on which n starts.
func (u *Utils) IndentOf(n ast.Node) string {
	return u.text.IndentAt(u.NodeRange(n).Offset)
}
