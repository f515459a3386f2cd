package producers

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"

	"github.com/yaklabco/gocorrect/pkg/change"
	"github.com/yaklabco/gocorrect/pkg/correction"
	"github.com/yaklabco/gocorrect/pkg/source"
)

// ExchangeOperands swaps the operands of a binary expression whose operator
// is selected. Ordered comparisons are mirrored so the meaning is kept.
type ExchangeOperands struct {
	correction.ProducerBase
}

// NewExchangeOperands returns an unconfigured producer.
func NewExchangeOperands() *ExchangeOperands {
	return &ExchangeOperands{}
}

// AssistKind implements correction.Producer.
func (p *ExchangeOperands) AssistKind() correction.Kind {
	return AssistExchangeOperands
}

// mirrored maps each exchangeable operator to its replacement.
//
//nolint:gochecknoglobals // Read-only lookup table.
var mirrored = map[token.Token]token.Token{
	token.EQL:  token.EQL,
	token.NEQ:  token.NEQ,
	token.LSS:  token.GTR,
	token.GTR:  token.LSS,
	token.LEQ:  token.GEQ,
	token.GEQ:  token.LEQ,
	token.ADD:  token.ADD,
	token.MUL:  token.MUL,
	token.AND:  token.AND,
	token.OR:   token.OR,
	token.XOR:  token.XOR,
	token.LAND: token.LAND,
	token.LOR:  token.LOR,
}

// Compute implements correction.Producer.
func (p *ExchangeOperands) Compute(_ context.Context, b *change.Builder) error {
	c := p.Context()

	be, ok := p.Node().(*ast.BinaryExpr)
	if !ok || !p.IsOperatorSelected(be) {
		return nil
	}

	op, ok := mirrored[be.Op]
	if !ok || (be.Op == token.ADD && isString(c.SessionHelper.TypeOf(be))) {
		return nil
	}

	utils := c.Utils
	leftRange := utils.NodeRange(be.X)
	rightRange := utils.NodeRange(be.Y)
	leftText := utils.NodeText(be.X)
	rightText := utils.NodeText(be.Y)

	// The left operand moves right; keep its grouping when it binds at the
	// same level as the operator.
	if x, isBin := be.X.(*ast.BinaryExpr); isBin && x.Op.Precedence() == be.Op.Precedence() {
		leftText = "(" + leftText + ")"
	}

	return b.AddFileEdit(c.Identity.Path, func(fb *change.FileBuilder) error {
		fb.Replace(leftRange, rightText)
		if op != be.Op {
			opOffset := c.Unit.Offset(be.OpPos)
			fb.Replace(source.NewRange(opOffset, len(be.Op.String())), op.String())
		}
		fb.Replace(rightRange, leftText)
		return nil
	})
}

func isString(t types.Type) bool {
	if t == nil {
		return false
	}
	basic, ok := t.Underlying().(*types.Basic)
	return ok && basic.Info()&types.IsString != 0
}
