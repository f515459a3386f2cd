package correction

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"slices"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/yaklabco/gocorrect/internal/logging"
	"github.com/yaklabco/gocorrect/pkg/change"
)

// Result contains the corrections computed for one context.
type Result struct {
	Corrections []Correction

	// ProducerErrors maps producer IDs to the faults they raised.
	ProducerErrors map[string]error
}

// HasErrors reports whether any producer failed.
func (r *Result) HasErrors() bool {
	return len(r.ProducerErrors) > 0
}

// Processor runs registered producers against contexts.
type Processor struct {
	// Registry supplies the factories.
	Registry *Registry

	// only restricts the run to these producer IDs when non-empty.
	only map[string]bool
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithOnly restricts the processor to the given producer IDs.
func WithOnly(ids ...string) ProcessorOption {
	return func(p *Processor) {
		if len(ids) == 0 {
			return
		}
		p.only = make(map[string]bool, len(ids))
		for _, id := range ids {
			p.only[id] = true
		}
	}
}

// NewProcessor returns a processor over reg; nil selects DefaultRegistry.
func NewProcessor(reg *Registry, opts ...ProcessorOption) *Processor {
	if reg == nil {
		reg = DefaultRegistry
	}
	p := &Processor{Registry: reg}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Fixes computes fixes for the context's diagnostic.
func (p *Processor) Fixes(ctx context.Context, c *Context) (*Result, error) {
	if c.Diagnostic == nil {
		return nil, ErrNoDiagnostic
	}
	return p.run(ctx, c, p.Registry.FixFactories(c.Diagnostic.Code), false)
}

// Assists computes assists for the context's selection.
func (p *Processor) Assists(ctx context.Context, c *Context) (*Result, error) {
	logger := logging.FromContext(ctx)
	if !c.ResolveAnchorNode() {
		logger.Debug("no node at selection",
			logging.FieldPath, c.Identity.Path,
			logging.FieldOffset, c.SelectionOffset,
			logging.FieldLength, c.SelectionLength)
		return &Result{ProducerErrors: make(map[string]error)}, nil
	}

	logger.Debug("anchor resolved",
		logging.FieldPath, c.Identity.Path,
		logging.FieldNode, astutil.NodeDescription(c.Node()))
	return p.run(ctx, c, p.Registry.AssistFactories(), true)
}

func (p *Processor) run(ctx context.Context, c *Context, factories []Factory, assist bool) (*Result, error) {
	logger := logging.FromContext(ctx)
	result := &Result{ProducerErrors: make(map[string]error)}

	switch {
	case c.Identity.Generated:
		logger.Debug("skipping file", logging.FieldPath, c.Identity.Path, logging.FieldReason, "generated")
		return result, nil
	case c.Identity.Vendored:
		logger.Debug("skipping file", logging.FieldPath, c.Identity.Path, logging.FieldReason, "vendored")
		return result, nil
	case c.Session.IsExcluded(c.Identity.Path):
		logger.Debug("skipping file", logging.FieldPath, c.Identity.Path, logging.FieldReason, "excluded")
		return result, nil
	}

	if !assist {
		// Fixes anchor on the diagnostic span as well.
		c.ResolveAnchorNode()
	}

	for _, f := range factories {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("corrections cancelled: %w", err)
		}

		if p.only != nil && !p.only[f.ID] {
			continue
		}
		if !c.Session.IsProducerEnabled(f.ID) {
			logger.Debug("producer disabled", logging.FieldProducer, f.ID)
			continue
		}

		corrections, err := p.runFactory(ctx, c, f, assist)
		result.Corrections = append(result.Corrections, corrections...)
		if err != nil {
			logger.Warn("producer failed", logging.FieldProducer, f.ID, logging.FieldError, err)
			result.ProducerErrors[f.ID] = err
		}
	}

	slices.SortStableFunc(result.Corrections, func(a, b Correction) int {
		if c := cmp.Compare(b.Kind.Priority, a.Kind.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Message, b.Message)
	})

	logger.Debug("corrections computed",
		logging.FieldPath, c.Identity.Path,
		logging.FieldCorrections, len(result.Corrections))

	return result, nil
}

// runFactory computes every producer one factory stands for. A panic
// anywhere in the factory, its expansion, or its producers becomes a
// PanicError; corrections computed before the fault are kept.
func (p *Processor) runFactory(
	ctx context.Context,
	c *Context,
	f Factory,
	assist bool,
) (corrections []Correction, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = errors.Join(err, &PanicError{ProducerID: f.ID, Value: v, Stack: debug.Stack()})
		}
	}()

	ctx = logging.With(ctx, logging.FieldProducer, f.ID)
	provider := f.New()
	provider.Configure(c)

	var errs []error
	for producer := range Expand(provider) {
		kind, args := producer.FixKind(), producer.FixArguments()
		if assist {
			kind, args = producer.AssistKind(), producer.AssistArguments()
		}
		if kind.IsZero() {
			continue
		}

		correction, err := compute(ctx, c, producer, kind, args)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if correction != nil {
			correction.ProducerID = f.ID
			corrections = append(corrections, *correction)
		}
	}

	return corrections, errors.Join(errs...)
}

func compute(ctx context.Context, c *Context, producer Producer, kind Kind, args []any) (*Correction, error) {
	builder := change.NewBuilder(c.Workspace)
	if err := producer.Compute(ctx, builder); err != nil {
		return nil, fmt.Errorf("compute %s: %w", kind.ID, err)
	}
	if !builder.HasEdits() {
		logging.FromContext(ctx).Debug("no edit", logging.FieldKind, kind.ID)
		return nil, nil
	}

	message := kind.Format(args...)
	sc, err := builder.SourceChange(kind.ID, message)
	if err != nil {
		return nil, fmt.Errorf("compute %s: %w", kind.ID, err)
	}

	return &Correction{Kind: kind, Message: message, Change: sc}, nil
}
