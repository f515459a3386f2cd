package producers

import (
	"context"
	"go/ast"

	"github.com/yaklabco/gocorrect/pkg/change"
	"github.com/yaklabco/gocorrect/pkg/correction"
)

// AddTParallel marks a top-level test as parallel by inserting
// t.Parallel() as its first statement.
type AddTParallel struct {
	correction.ProducerBase
}

// NewAddTParallel returns an unconfigured producer.
func NewAddTParallel() *AddTParallel {
	return &AddTParallel{}
}

// AssistKind implements correction.Producer.
func (p *AddTParallel) AssistKind() correction.Kind {
	return AssistAddTParallel
}

// AssistArguments implements correction.Producer.
func (p *AddTParallel) AssistArguments() []any {
	name, _ := p.testParam()
	if name == "" {
		name = "t"
	}
	return []any{name}
}

func (p *AddTParallel) testParam() (string, *ast.FuncDecl) {
	c := p.Context()
	if c.Framework == nil {
		return "", nil
	}

	body := p.EnclosingFunctionBody()
	if body == nil || body.Kind != correction.BodyFunction {
		return "", nil
	}
	fn, _ := body.FuncDecl()
	name, ok := c.Framework.TestParam(fn)
	if !ok {
		return "", nil
	}
	return name, fn
}

// Compute implements correction.Producer.
func (p *AddTParallel) Compute(_ context.Context, b *change.Builder) error {
	name, fn := p.testParam()
	if fn == nil || callsParallel(fn.Body, name) {
		return nil
	}

	c := p.Context()
	utils := c.Utils
	eol := utils.EOL()
	funcIndent := utils.IndentOf(fn)
	lbrace := c.Unit.Offset(fn.Body.Lbrace)

	fset := c.Unit.Fset
	lbraceLine := fset.Position(fn.Body.Lbrace).Line
	firstOnBraceLine := len(fn.Body.List) > 0 && fset.Position(fn.Body.List[0].Pos()).Line == lbraceLine

	indent := funcIndent + "\t"
	if len(fn.Body.List) > 0 && !firstOnBraceLine {
		indent = utils.IndentOf(fn.Body.List[0])
	}

	text := eol + indent + name + ".Parallel()"
	switch {
	case firstOnBraceLine:
		text += eol + indent
	case len(fn.Body.List) == 0 && fset.Position(fn.Body.Rbrace).Line == lbraceLine:
		text += eol + funcIndent
	}

	return b.AddFileEdit(c.Identity.Path, func(fb *change.FileBuilder) error {
		fb.Insert(lbrace+1, text)
		return nil
	})
}

// callsParallel reports whether body already calls name.Parallel() at its
// top level.
func callsParallel(body *ast.BlockStmt, name string) bool {
	for _, stmt := range body.List {
		expr, ok := stmt.(*ast.ExprStmt)
		if !ok {
			continue
		}
		call, ok := expr.X.(*ast.CallExpr)
		if !ok {
			continue
		}
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok || sel.Sel.Name != "Parallel" {
			continue
		}
		if recv, ok := sel.X.(*ast.Ident); ok && recv.Name == name {
			return true
		}
	}
	return false
}
