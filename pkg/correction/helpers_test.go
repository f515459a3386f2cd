package correction_test

import (
	"context"
	"go/types"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocorrect/pkg/change"
	"github.com/yaklabco/gocorrect/pkg/config"
	"github.com/yaklabco/gocorrect/pkg/correction"
	"github.com/yaklabco/gocorrect/pkg/unit"
)

func emptyImporter() unit.ImporterFunc {
	return func(p string) (*types.Package, error) {
		pkg := types.NewPackage(p, path.Base(p))
		pkg.MarkComplete()
		return pkg, nil
	}
}

// resolveUnit resolves src as the only file of its package. A nil cfg uses
// defaults.
func resolveUnit(t *testing.T, name, src string, cfg *config.Config) *unit.Resolved {
	t.Helper()

	u, err := unit.Resolve(context.Background(), name, []byte(src), unit.NewSession(cfg),
		unit.WithImporter(emptyImporter()))
	require.NoError(t, err)
	return u
}

func workspaceFor(t *testing.T, u *unit.Resolved) change.Workspace {
	t.Helper()

	ws, err := change.NewMemWorkspace(map[string][]byte{u.Path: u.Content})
	require.NoError(t, err)
	return ws
}

// assistAt builds an assist context selecting the first occurrence of
// needle in the unit's source.
func assistAt(t *testing.T, u *unit.Resolved, needle string) *correction.Context {
	t.Helper()

	offset := strings.Index(string(u.Content), needle)
	require.GreaterOrEqual(t, offset, 0, "needle %q not in source", needle)

	c, err := correction.NewAssistContext(u, workspaceFor(t, u), offset, len(needle))
	require.NoError(t, err)
	return c
}

// fakeProducer computes whatever its compute func records.
type fakeProducer struct {
	correction.ProducerBase

	fix     correction.Kind
	assist  correction.Kind
	args    []any
	compute func(p *fakeProducer, b *change.Builder) error
}

func (p *fakeProducer) FixKind() correction.Kind { return p.fix }
func (p *fakeProducer) FixArguments() []any { return p.args }
func (p *fakeProducer) AssistKind() correction.Kind { return p.assist }
func (p *fakeProducer) AssistArguments() []any { return p.args }

func (p *fakeProducer) Compute(_ context.Context, b *change.Builder) error {
	if p.compute == nil {
		return nil
	}
	return p.compute(p, b)
}

// insertAtStart records an insertion of text at offset 0.
func insertAtStart(text string) func(p *fakeProducer, b *change.Builder) error {
	return func(p *fakeProducer, b *change.Builder) error {
		return b.AddFileEdit(p.Context().Identity.Path, func(fb *change.FileBuilder) error {
			fb.Insert(0, text)
			return nil
		})
	}
}
