package correction

import (
	"go/ast"
	"go/types"

	"github.com/yaklabco/gocorrect/pkg/change"
	"github.com/yaklabco/gocorrect/pkg/config"
	"github.com/yaklabco/gocorrect/pkg/source"
	"github.com/yaklabco/gocorrect/pkg/unit"
)

// Context carries everything producers need for one computation pass over
// one file. Derived fields are computed once at construction; the anchor
// node is found lazily by ResolveAnchorNode.
//
// A Context is not safe for concurrent use.
type Context struct {
	// Unit is the resolved file.
	Unit *unit.Resolved

	// Workspace supplies file content to change builders.
	Workspace change.Workspace

	// Diagnostic is the problem being fixed, or nil for assists.
	Diagnostic *unit.Diagnostic

	// SelectionOffset is source.NoOffset when nothing is selected.
	SelectionOffset int
	SelectionLength int

	// SelectionEnd is SelectionOffset+SelectionLength, or source.NoOffset.
	SelectionEnd int

	// Identity describes the file.
	Identity unit.Identity

	// TypesInfo and Package form the file's type environment.
	TypesInfo *types.Info
	Package   *types.Package

	Session       *unit.Session
	SessionHelper *SessionHelper
	Utils         *Utils

	// Framework is set for Go test files when the testing framework is enabled.
	Framework *unit.TestSupport

	// Locator finds nodes for both the anchor and covered-node searches.
	Locator NodeLocator

	anchor anchorCache
}

type anchorCache struct {
	resolved   bool
	start, end int
	path       []ast.Node
}

// ContextOption configures NewContext.
type ContextOption func(*Context)

// WithDiagnostic attaches the diagnostic being fixed.
func WithDiagnostic(d *unit.Diagnostic) ContextOption {
	return func(c *Context) {
		c.Diagnostic = d
	}
}

// WithSelection sets the user's selection.
func WithSelection(offset, length int) ContextOption {
	return func(c *Context) {
		c.SelectionOffset = offset
		c.SelectionLength = length
	}
}

// WithLocator replaces the DefaultLocator.
func WithLocator(l NodeLocator) ContextOption {
	return func(c *Context) {
		c.Locator = l
	}
}

// NewContext builds a context for u. Without WithSelection the selection is
// absent.
func NewContext(u *unit.Resolved, ws change.Workspace, opts ...ContextOption) (*Context, error) {
	if u == nil {
		return nil, ErrNilUnit
	}
	if ws == nil {
		return nil, ErrNilWorkspace
	}

	c := &Context{
		Unit:            u,
		Workspace:       ws,
		SelectionOffset: source.NoOffset,
		Locator:         DefaultLocator{},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.SelectionEnd = source.NewSelection(c.SelectionOffset, c.SelectionLength).End()
	c.Identity = u.Identity
	c.TypesInfo = u.Info
	c.Package = u.Pkg
	c.Session = u.Session
	if c.Session == nil {
		c.Session = unit.NewSession(nil)
	}
	c.SessionHelper = newSessionHelper(u)
	c.Utils = newUtils(u)
	if c.Session.FrameworkEnabled(config.FrameworkTesting) {
		c.Framework = unit.DetectTestSupport(u)
	}

	return c, nil
}

// NewFixContext builds a context for fixing d. The selection is set to the
// diagnostic's span.
func NewFixContext(u *unit.Resolved, ws change.Workspace, d *unit.Diagnostic, opts ...ContextOption) (*Context, error) {
	if d == nil {
		return nil, ErrNoDiagnostic
	}
	opts = append([]ContextOption{WithDiagnostic(d), WithSelection(d.Offset, d.Length)}, opts...)
	return NewContext(u, ws, opts...)
}

// NewAssistContext builds a context for assists at a selection.
func NewAssistContext(u *unit.Resolved, ws change.Workspace, offset, length int, opts ...ContextOption) (*Context, error) {
	opts = append([]ContextOption{WithSelection(offset, length)}, opts...)
	return NewContext(u, ws, opts...)
}

// Selection returns the selection as a value.
func (c *Context) Selection() source.Selection {
	return source.NewSelection(c.SelectionOffset, c.SelectionLength)
}

// ResolveAnchorNode locates the node covering [SelectionOffset, SelectionEnd]
// and reports whether one was found. The result is cached for the current
// selection; changing the selection fields makes the next call search again.
func (c *Context) ResolveAnchorNode() bool {
	start, end := c.SelectionOffset, c.SelectionEnd
	if c.anchor.resolved && c.anchor.start == start && c.anchor.end == end {
		return c.anchor.path != nil
	}

	var path []ast.Node
	if start >= 0 {
		path = c.Locator.Locate(c.Unit, start, end)
	}
	c.anchor = anchorCache{resolved: true, start: start, end: end, path: path}
	return path != nil
}

// Node returns the anchor node, or nil before a successful ResolveAnchorNode.
func (c *Context) Node() ast.Node {
	if len(c.anchor.path) == 0 {
		return nil
	}
	return c.anchor.path[0]
}

// Path returns the anchor node and its ancestors, innermost first.
func (c *Context) Path() []ast.Node {
	return c.anchor.path
}

// IsLintEnabled reports whether the named lint is enabled for this file.
func (c *Context) IsLintEnabled(name string) bool {
	return c.Session.IsLintEnabled(name)
}
