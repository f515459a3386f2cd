package correction

import (
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/yaklabco/gocorrect/pkg/unit"
)

// NodeLocator finds the syntax node covering an offset range.
type NodeLocator interface {
	// Locate returns the path from the found node up to the *ast.File,
	// innermost first, or nil when no node covers [start, end].
	Locate(u *unit.Resolved, start, end int) []ast.Node
}

// DefaultLocator returns the innermost node whose span contains the inclusive
// range [start, end]. Among siblings that both qualify, the first in source
// order wins.
type DefaultLocator struct{}

// Locate implements NodeLocator.
func (DefaultLocator) Locate(u *unit.Resolved, start, end int) []ast.Node {
	if u == nil || u.File == nil || start < 0 || end < 0 {
		return nil
	}

	var found []ast.Node
	in := inspector.New([]*ast.File{u.File})
	in.WithStack(nil, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}

		r := u.NodeRange(n)
		if r.Offset < 0 || r.End() < start || r.Offset > end {
			return false
		}
		if r.Offset <= start && end <= r.End() {
			if found == nil || descends(stack, found[0], len(found)) {
				found = reversed(stack)
			}
		}
		return true
	})

	return found
}

// descends reports whether stack passes through node at the given depth.
func descends(stack []ast.Node, node ast.Node, depth int) bool {
	return len(stack) > depth && stack[depth-1] == node
}

func reversed(stack []ast.Node) []ast.Node {
	path := make([]ast.Node, len(stack))
	for i, n := range stack {
		path[len(stack)-1-i] = n
	}
	return path
}

// PathEnclosingLocator delegates to astutil.PathEnclosingInterval, which
// treats [start, end) as half-open and snaps whitespace to the enclosing
// node the way gopls does.
type PathEnclosingLocator struct{}

// Locate implements NodeLocator.
func (PathEnclosingLocator) Locate(u *unit.Resolved, start, end int) []ast.Node {
	if u == nil || u.File == nil || start < 0 || end < start {
		return nil
	}

	startPos, endPos := u.Pos(start), u.Pos(end)
	if startPos == token.NoPos || endPos == token.NoPos {
		return nil
	}

	path, _ := astutil.PathEnclosingInterval(u.File, startPos, endPos)
	return path
}
