package producers_test

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
	"github.com/yaklabco/gocorrect/pkg/correction/producers"
	"github.com/yaklabco/gocorrect/pkg/unit"
)

func emptyImporter() unit.ImporterFunc {
	return func(p string) (*types.Package, error) {
		pkg := types.NewPackage(p, path.Base(p))
		pkg.MarkComplete()
		return pkg, nil
	}
}

// fixture is a resolved file plus a workspace holding it.
type fixture struct {
	unit *unit.Resolved
	ws   change.Workspace
}

func newFixture(t *testing.T, name, src string, cfg *config.Config, imp types.Importer) *fixture {
	t.Helper()

	if imp == nil {
		imp = emptyImporter()
	}
	u, err := unit.Resolve(context.Background(), name, []byte(src), unit.NewSession(cfg), unit.WithImporter(imp))
	require.NoError(t, err)

	ws, err := change.NewMemWorkspace(map[string][]byte{name: []byte(src)})
	require.NoError(t, err)

	return &fixture{unit: u, ws: ws}
}

func processor(id string) *correction.Processor {
	reg := correction.NewRegistry()
	producers.Register(reg)
	return correction.NewProcessor(reg, correction.WithOnly(id))
}

// assists runs producer id on the selection marked by the first "$" in
// src, or the span between the first pair of "$"s.
func assists(t *testing.T, id, name, marked string, cfg *config.Config) (*fixture, *correction.Result) {
	t.Helper()

	src, offset, length := parseSelection(t, marked)
	f := newFixture(t, name, src, cfg, nil)

	c, err := correction.NewAssistContext(f.unit, f.ws, offset, length)
	require.NoError(t, err)

	result, err := processor(id).Assists(context.Background(), c)
	require.NoError(t, err)
	require.False(t, result.HasErrors(), "producer errors: %v", result.ProducerErrors)
	return f, result
}

// fixes runs producer id on every diagnostic with code in f.
func fixes(t *testing.T, id string, f *fixture, code string) []correction.Correction {
	t.Helper()

	var out []correction.Correction
	for _, d := range f.unit.DiagnosticsWithCode(code) {
		c, err := correction.NewFixContext(f.unit, f.ws, &d)
		require.NoError(t, err)

		result, err := processor(id).Fixes(context.Background(), c)
		require.NoError(t, err)
		require.False(t, result.HasErrors(), "producer errors: %v", result.ProducerErrors)
		out = append(out, result.Corrections...)
	}
	return out
}

func parseSelection(t *testing.T, marked string) (string, int, int) {
	t.Helper()

	start := strings.Index(marked, "$")
	require.GreaterOrEqual(t, start, 0, "no selection marker")
	rest := marked[start+1:]

	end := strings.Index(rest, "$")
	if end < 0 {
		return marked[:start] + rest, start, 0
	}
	return marked[:start] + rest[:end] + rest[end+1:], start, end
}

// applied returns the content of f's file after c's edits.
func applied(t *testing.T, f *fixture, c correction.Correction) string {
	t.Helper()

	files, err := c.Change.Preview(f.ws)
	require.NoError(t, err)
	content, ok := files[f.unit.Path]
	require.True(t, ok, "change does not touch %s", f.unit.Path)
	return string(content)
}
