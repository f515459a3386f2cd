package correction

import (
	"go/ast"

	"github.com/yaklabco/gocorrect/pkg/source"
)

// Base holds the configured context and the helpers shared by every
// producer variant.
type Base struct {
	ctx     *Context
	covered coveredCache
}

type coveredCache struct {
	resolved bool
	path     []ast.Node
}

// Configure binds the producer to c and drops cached results.
func (b *Base) Configure(c *Context) {
	b.ctx = c
	b.covered = coveredCache{}
}

// Configured reports whether Configure has been called.
func (b *Base) Configured() bool {
	return b.ctx != nil
}

// Context returns the bound context. It panics before Configure.
func (b *Base) Context() *Context {
	if b.ctx == nil {
		panic(errNotConfigured)
	}
	return b.ctx
}

// Node returns the context's anchor node.
func (b *Base) Node() ast.Node {
	return b.Context().Node()
}

// CoveredPath returns the node covering the diagnostic and its ancestors,
// innermost first. It is nil when the context carries no diagnostic.
// The search runs once per configuration.
func (b *Base) CoveredPath() []ast.Node {
	c := b.Context()
	if b.covered.resolved {
		return b.covered.path
	}
	b.covered.resolved = true

	d := c.Diagnostic
	if d == nil {
		return nil
	}

	// Inclusive end; a zero-length diagnostic at offset 0 clamps to [0,0].
	end := max(d.Offset+d.Length-1, 0)
	b.covered.path = c.Locator.Locate(c.Unit, d.Offset, end)
	return b.covered.path
}

// CoveredNode returns the innermost node covering the diagnostic, or nil.
func (b *Base) CoveredNode() ast.Node {
	path := b.CoveredPath()
	if len(path) == 0 {
		return nil
	}
	return path[0]
}

// BodyKind classifies a function body by its enclosing declaration.
type BodyKind int

const (
	BodyClosure BodyKind = iota + 1
	BodyFunction
	BodyMethod
)

func (k BodyKind) String() string {
	switch k {
	case BodyClosure:
		return "closure"
	case BodyFunction:
		return "function"
	case BodyMethod:
		return "method"
	default:
		return "unknown"
	}
}

// FunctionBody is the body of the innermost function enclosing a node.
type FunctionBody struct {
	Kind BodyKind

	// Decl is the *ast.FuncLit or *ast.FuncDecl owning the body.
	Decl ast.Node
	Type *ast.FuncType
	Body *ast.BlockStmt
}

// FuncDecl returns the declaration for function and method bodies.
func (fb *FunctionBody) FuncDecl() (*ast.FuncDecl, bool) {
	fd, ok := fb.Decl.(*ast.FuncDecl)
	return fd, ok
}

// EnclosingFunctionBody walks outward from the anchor node and returns the
// body of the first closure, function or method found, or nil.
func (b *Base) EnclosingFunctionBody() *FunctionBody {
	return enclosingFunctionBody(b.Context().Path())
}

func enclosingFunctionBody(path []ast.Node) *FunctionBody {
	for _, n := range path {
		switch n := n.(type) {
		case *ast.FuncLit:
			return &FunctionBody{Kind: BodyClosure, Decl: n, Type: n.Type, Body: n.Body}
		case *ast.FuncDecl:
			if n.Body == nil {
				// Declared without a body (assembly or linkname).
				return nil
			}
			kind := BodyFunction
			if n.Recv != nil {
				kind = BodyMethod
			}
			return &FunctionBody{Kind: kind, Decl: n, Type: n.Type, Body: n.Body}
		}
	}
	return nil
}

// IsOperatorSelected reports whether the selection targets be's operator.
func (b *Base) IsOperatorSelected(be *ast.BinaryExpr) bool {
	c := b.Context()
	if c.SelectionOffset < 0 {
		return false
	}

	left := source.Operand{Range: c.Utils.NodeRange(be.X), Compound: isBinary(be.X)}
	right := source.Operand{Range: c.Utils.NodeRange(be.Y), Compound: isBinary(be.Y)}
	return source.IsOperatorSelected(left, right, c.Selection().Range())
}

func isBinary(e ast.Expr) bool {
	_, ok := e.(*ast.BinaryExpr)
	return ok
}

// IsLintEnabled reports whether the named lint is enabled for the file.
func (b *Base) IsLintEnabled(name string) bool {
	return b.Context().IsLintEnabled(name)
}

// RangeText returns the file text covered by r.
func (b *Base) RangeText(r source.Range) string {
	return b.Context().Utils.RangeText(r)
}
