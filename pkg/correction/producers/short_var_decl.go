package producers

import (
	"context"
	"go/ast"
	"go/token"

	"github.com/yaklabco/gocorrect/pkg/change"
	"github.com/yaklabco/gocorrect/pkg/correction"
	"github.com/yaklabco/gocorrect/pkg/source"
)

// ConvertToShortVarDecl rewrites a local `var x = e` as `x := e`.
type ConvertToShortVarDecl struct {
	correction.ProducerBase
}

// NewConvertToShortVarDecl returns an unconfigured producer.
func NewConvertToShortVarDecl() *ConvertToShortVarDecl {
	return &ConvertToShortVarDecl{}
}

// AssistKind implements correction.Producer.
func (p *ConvertToShortVarDecl) AssistKind() correction.Kind {
	return AssistConvertToShortVarDecl
}

// Compute implements correction.Producer.
func (p *ConvertToShortVarDecl) Compute(_ context.Context, b *change.Builder) error {
	if p.IsLintEnabled(LintPreferVarDeclaration) {
		return nil
	}
	if p.EnclosingFunctionBody() == nil {
		return nil
	}

	decl := localVarDecl(p.Context().Path())
	if decl == nil || decl.Lparen.IsValid() || len(decl.Specs) != 1 {
		return nil
	}

	spec, ok := decl.Specs[0].(*ast.ValueSpec)
	if !ok || spec.Type != nil || len(spec.Values) == 0 || onlyBlank(spec.Names) {
		return nil
	}

	c := p.Context()
	unit := c.Unit
	keyword := source.RangeFromOffsets(unit.Offset(decl.Pos()), unit.Offset(spec.Names[0].Pos()))
	assign := source.RangeFromOffsets(
		unit.Offset(spec.Names[len(spec.Names)-1].End()),
		unit.Offset(spec.Values[0].Pos()),
	)

	return b.AddFileEdit(c.Identity.Path, func(fb *change.FileBuilder) error {
		fb.Delete(keyword)
		fb.Replace(assign, " := ")
		return nil
	})
}

// onlyBlank reports whether every name is the blank identifier, which
// leaves a short declaration with no new variables.
func onlyBlank(names []*ast.Ident) bool {
	for _, name := range names {
		if name.Name != "_" {
			return false
		}
	}
	return true
}

// localVarDecl returns the var declaration statement on path, if the
// declaration sits directly in a statement list.
func localVarDecl(path []ast.Node) *ast.GenDecl {
	for i, n := range path {
		decl, ok := n.(*ast.GenDecl)
		if !ok {
			continue
		}
		if decl.Tok != token.VAR || i+1 >= len(path) {
			return nil
		}
		if _, inStmt := path[i+1].(*ast.DeclStmt); !inStmt {
			return nil
		}
		return decl
	}
	return nil
}
