package producers

import (
	"context"
	"go/ast"
	"iter"

	"github.com/yaklabco/gocorrect/pkg/change"
	"github.com/yaklabco/gocorrect/pkg/correction"
)

// AddMissingSwitchCases offers one AddSwitchCase per constant of the switch
// tag's type that no case handles.
type AddMissingSwitchCases struct {
	correction.MultiProducerBase
}

// NewAddMissingSwitchCases returns an unconfigured multi-producer.
func NewAddMissingSwitchCases() *AddMissingSwitchCases {
	return &AddMissingSwitchCases{}
}

// Producers implements correction.MultiProducer.
func (m *AddMissingSwitchCases) Producers() iter.Seq[correction.Producer] {
	return func(yield func(correction.Producer) bool) {
		sw := coveredSwitch(m.CoveredPath())
		if sw == nil {
			return
		}

		c := m.Context()
		named, missing := c.Unit.MissingSwitchCases(sw)
		if len(missing) == 0 {
			return
		}

		qualifier, ok := c.SessionHelper.Qualifier(named.Obj().Pkg())
		if !ok {
			return
		}

		for _, cnst := range missing {
			name := cnst.Name()
			if qualifier != "" {
				name = qualifier + "." + name
			}
			if !yield(m.Adopt(&AddSwitchCase{Switch: sw, Name: name})) {
				return
			}
		}
	}
}

func coveredSwitch(path []ast.Node) *ast.SwitchStmt {
	for _, n := range path {
		switch n := n.(type) {
		case *ast.SwitchStmt:
			return n
		case *ast.FuncDecl, *ast.FuncLit:
			return nil
		}
	}
	return nil
}

// AddSwitchCase appends `case Name:` as the last clause of Switch.
type AddSwitchCase struct {
	correction.ProducerBase

	Switch *ast.SwitchStmt

	// Name is the constant as the file refers to it.
	Name string
}

// FixKind implements correction.Producer.
func (p *AddSwitchCase) FixKind() correction.Kind {
	return FixAddSwitchCase
}

// FixArguments implements correction.Producer.
func (p *AddSwitchCase) FixArguments() []any {
	return []any{p.Name}
}

// Compute implements correction.Producer.
func (p *AddSwitchCase) Compute(_ context.Context, b *change.Builder) error {
	if p.Switch == nil || p.Name == "" {
		return nil
	}

	c := p.Context()
	text := c.Utils.Text()
	eol := text.EOL()
	indent := c.Utils.IndentOf(p.Switch)
	rbrace := c.Unit.Offset(p.Switch.Body.Rbrace)
	clause := "case " + p.Name + ":"

	return b.AddFileEdit(c.Identity.Path, func(fb *change.FileBuilder) error {
		if text.IsBlankBefore(rbrace) {
			fb.Insert(text.LineStart(rbrace), indent+clause+eol)
			return nil
		}
		fb.Insert(rbrace, eol+indent+clause+eol+indent)
		return nil
	})
}
