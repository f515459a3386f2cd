package correction

import (
	"context"
	"iter"

	"github.com/yaklabco/gocorrect/pkg/change"
)

// Provider is either a Producer or a MultiProducer.
type Provider interface {
	// Configure binds the provider to c. Reconfiguring resets any state
	// derived from a previous context.
	Configure(c *Context)
}

// Producer computes a single fix or assist.
type Producer interface {
	Provider

	// FixKind returns the kind offered as a fix, or the zero Kind.
	FixKind() Kind

	// FixArguments fill the FixKind message template.
	FixArguments() []any

	// AssistKind returns the kind offered as an assist, or the zero Kind.
	AssistKind() Kind

	// AssistArguments fill the AssistKind message template.
	AssistArguments() []any

	// Compute records zero or one edit in b. Unmet preconditions return
	// nil without touching b.
	Compute(ctx context.Context, b *change.Builder) error
}

// MultiProducer yields several producers, each already configured with
// the multi-producer's context.
type MultiProducer interface {
	Provider

	// Producers returns a finite, single-use sequence.
	Producers() iter.Seq[Producer]
}

// Expand returns the producers p stands for: p itself when it is a
// Producer, or the producers it yields when it is a MultiProducer.
func Expand(p Provider) iter.Seq[Producer] {
	switch v := p.(type) {
	case Producer:
		return func(yield func(Producer) bool) {
			yield(v)
		}
	case MultiProducer:
		return v.Producers()
	default:
		return func(func(Producer) bool) {}
	}
}

// ProducerBase gives a Producer the shared helpers and absent metadata.
// Embed it and override the methods that apply.
type ProducerBase struct {
	Base
}

// FixKind returns the zero Kind.
func (*ProducerBase) FixKind() Kind { return Kind{} }

// FixArguments returns nil.
func (*ProducerBase) FixArguments() []any { return nil }

// AssistKind returns the zero Kind.
func (*ProducerBase) AssistKind() Kind { return Kind{} }

// AssistArguments returns nil.
func (*ProducerBase) AssistArguments() []any { return nil }

// MultiProducerBase gives a MultiProducer the shared helpers.
type MultiProducerBase struct {
	Base
}

// Adopt configures p with the multi-producer's context and returns it.
func (m *MultiProducerBase) Adopt(p Producer) Producer {
	p.Configure(m.Context())
	return p
}
