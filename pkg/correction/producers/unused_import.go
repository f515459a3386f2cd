package producers

import (
	"context"
	"go/ast"
	"strconv"

	"github.com/yaklabco/gocorrect/pkg/change"
	"github.com/yaklabco/gocorrect/pkg/correction"
)

// RemoveUnusedImport deletes an import the type checker reported as unused.
// The whole import declaration goes when the spec is its only member.
type RemoveUnusedImport struct {
	correction.ProducerBase
}

// NewRemoveUnusedImport returns an unconfigured producer.
func NewRemoveUnusedImport() *RemoveUnusedImport {
	return &RemoveUnusedImport{}
}

// FixKind implements correction.Producer.
func (p *RemoveUnusedImport) FixKind() correction.Kind {
	return FixRemoveUnusedImport
}

// FixArguments implements correction.Producer.
func (p *RemoveUnusedImport) FixArguments() []any {
	spec, _ := p.importSpec()
	if spec == nil {
		return []any{""}
	}
	path, err := strconv.Unquote(spec.Path.Value)
	if err != nil {
		path = spec.Path.Value
	}
	return []any{path}
}

func (p *RemoveUnusedImport) importSpec() (*ast.ImportSpec, *ast.GenDecl) {
	var spec *ast.ImportSpec
	for _, n := range p.CoveredPath() {
		switch n := n.(type) {
		case *ast.ImportSpec:
			spec = n
		case *ast.GenDecl:
			if spec != nil {
				return spec, n
			}
			return nil, nil
		}
	}
	return nil, nil
}

// Compute implements correction.Producer.
func (p *RemoveUnusedImport) Compute(_ context.Context, b *change.Builder) error {
	spec, decl := p.importSpec()
	if spec == nil {
		return nil
	}

	var target ast.Node = spec
	if len(decl.Specs) == 1 {
		target = decl
	}

	c := p.Context()
	r := c.Utils.Text().FullLines(c.Utils.NodeRange(target))

	return b.AddFileEdit(c.Identity.Path, func(fb *change.FileBuilder) error {
		fb.Delete(r)
		return nil
	})
}
