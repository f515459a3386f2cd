package runner_test

import (
	"context"
	"fmt"
	"go/types"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocorrect/pkg/change"
	"github.com/yaklabco/gocorrect/pkg/correction"
	"github.com/yaklabco/gocorrect/pkg/correction/producers"
	"github.com/yaklabco/gocorrect/pkg/runner"
	"github.com/yaklabco/gocorrect/pkg/unit"
)

func emptyImporter() unit.ImporterFunc {
	return func(p string) (*types.Package, error) {
		pkg := types.NewPackage(p, path.Base(p))
		pkg.MarkComplete()
		return pkg, nil
	}
}

func resolve(t *testing.T, name, src string) *unit.Resolved {
	t.Helper()

	u, err := unit.Resolve(context.Background(), name, []byte(src), nil, unit.WithImporter(emptyImporter()))
	require.NoError(t, err)
	return u
}

func newProcessor() *correction.Processor {
	reg := correction.NewRegistry()
	producers.Register(reg)
	return correction.NewProcessor(reg)
}

func TestRunOrder(t *testing.T) {
	t.Parallel()

	var reqs []runner.Request
	for i := range 20 {
		src := fmt.Sprintf("package main\n\nimport \"pkg%d\"\n", i)
		u := resolve(t, fmt.Sprintf("file%02d.go", i), src)
		reqs = append(reqs, runner.DiagnosticRequests(nil, u)...)
	}
	require.Len(t, reqs, 20)

	result, err := runner.New(newProcessor(), runner.WithJobs(4)).Run(context.Background(), reqs)
	require.NoError(t, err)

	require.Len(t, result.Outcomes, 20)
	for i, o := range result.Outcomes {
		require.NoError(t, o.Error)
		assert.Equal(t, fmt.Sprintf("file%02d.go", i), o.Request.Path())
		require.Len(t, o.Result.Corrections, 1)
		assert.Equal(t, fmt.Sprintf("Remove unused import pkg%d", i), o.Result.Corrections[0].Message)
	}

	assert.Equal(t, 20, result.Stats.Requests)
	assert.Equal(t, 20, result.Stats.Corrections)
	assert.Zero(t, result.Stats.Failed)
	assert.False(t, result.HasFailures())
	assert.Len(t, result.Corrections(), 20)
}

func TestRunMixedRequests(t *testing.T) {
	t.Parallel()

	src := "package main\n\nimport \"os\"\n\nvar a, b = 1, 2\n\nvar x = a < b\n"
	u := resolve(t, "main.go", src)
	diags := u.DiagnosticsWithCode(unit.CodeUnusedImport)
	require.Len(t, diags, 1)

	reqs := []runner.Request{
		runner.AssistRequest(u, strings.Index(src, "<"), 1),
		runner.FixRequest(u, &diags[0]),
		runner.FixRequest(nil, &unit.Diagnostic{Code: unit.CodeUnusedImport}),
	}

	result, err := runner.New(newProcessor()).Run(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, result.Outcomes, 3)

	assist := result.Outcomes[0]
	require.NoError(t, assist.Error)
	require.Len(t, assist.Result.Corrections, 1)
	assert.Equal(t, producers.IDExchangeOperands, assist.Result.Corrections[0].ProducerID)

	fix := result.Outcomes[1]
	require.NoError(t, fix.Error)
	require.Len(t, fix.Result.Corrections, 1)
	assert.Equal(t, producers.IDRemoveUnusedImport, fix.Result.Corrections[0].ProducerID)

	bad := result.Outcomes[2]
	require.ErrorIs(t, bad.Error, correction.ErrNilUnit)
	assert.Nil(t, bad.Result)

	assert.Equal(t, 1, result.Stats.Failed)
	assert.True(t, result.HasFailures())
}

func TestRunWorkspace(t *testing.T) {
	t.Parallel()

	u := resolve(t, "main.go", "package main\n\nimport \"os\"\n")
	reqs := runner.DiagnosticRequests(nil, u)
	require.Len(t, reqs, 1)

	// A workspace without the file makes the fix fail inside the producer.
	ws, err := change.NewMemWorkspace(nil)
	require.NoError(t, err)

	result, err := runner.New(newProcessor(), runner.WithWorkspace(ws)).Run(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, result.Outcomes, 1)

	o := result.Outcomes[0]
	require.NoError(t, o.Error)
	assert.Empty(t, o.Result.Corrections)
	require.ErrorIs(t, o.Result.ProducerErrors[producers.IDRemoveUnusedImport], change.ErrFileNotFound)
	assert.Equal(t, 1, result.Stats.ProducerErrors)
	assert.True(t, result.HasFailures())
}

func TestRunContextOptions(t *testing.T) {
	t.Parallel()

	src := "package main\n\nvar a, b = 1, 2\n\nvar x = a < b\n"
	u := resolve(t, "main.go", src)
	reqs := []runner.Request{runner.AssistRequest(u, strings.Index(src, "<"), 1)}

	r := runner.New(newProcessor(), runner.WithContextOptions(correction.WithLocator(correction.PathEnclosingLocator{})))
	result, err := r.Run(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, result.Outcomes, 1)
	require.NoError(t, result.Outcomes[0].Error)
	assert.Len(t, result.Outcomes[0].Result.Corrections, 1)
}

func TestRunEmptyAndCancelled(t *testing.T) {
	t.Parallel()

	result, err := runner.New(nil).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, result.Outcomes)

	u := resolve(t, "main.go", "package main\n\nimport \"os\"\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = runner.New(newProcessor()).Run(ctx, runner.DiagnosticRequests(nil, u))
	require.ErrorIs(t, err, context.Canceled)
}

func TestDiagnosticRequests(t *testing.T) {
	t.Parallel()

	u := resolve(t, "main.go", "package main\n\nimport \"os\"\n\nfunc main() {\n\tx := undefined\n}\n")
	require.NotEmpty(t, u.DiagnosticsWithCode(unit.CodeTypeError))

	reg := correction.NewRegistry()
	producers.Register(reg)

	reqs := runner.DiagnosticRequests(reg, u)
	require.Len(t, reqs, 1, "only diagnostics with a registered fix")
	assert.True(t, reqs[0].IsFix())
	assert.Equal(t, unit.CodeUnusedImport, reqs[0].Diagnostic.Code)

	assert.Empty(t, runner.DiagnosticRequests(correction.NewRegistry(), u))
}
