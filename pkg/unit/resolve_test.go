package unit_test

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocorrect/pkg/unit"
)

// emptyImporter returns empty, complete packages for every import path.
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

func TestResolve(t *testing.T) {
	t.Parallel()

	u := resolve(t, "main.go", "package main\n\nvar x = 1\n")

	require.NotNil(t, u.File)
	require.NotNil(t, u.Pkg)
	assert.Equal(t, "main", u.Pkg.Name())
	assert.Empty(t, u.Diagnostics)
	assert.Equal(t, "Go", u.Identity.Language)
	assert.True(t, u.Identity.IsGo())
	assert.False(t, u.Identity.Generated)
	assert.NotNil(t, u.Session)

	obj := u.Pkg.Scope().Lookup("x")
	require.NotNil(t, obj)
	assert.Equal(t, "int", obj.Type().String())
}

func TestResolveDiagnostics(t *testing.T) {
	t.Parallel()

	src := "package main\n\nimport \"os\"\n\nfunc main() {\n\tunused := 1\n}\n"
	u := resolve(t, "main.go", src)

	imports := u.DiagnosticsWithCode(unit.CodeUnusedImport)
	require.Len(t, imports, 1)
	assert.Equal(t, `"os"`, src[imports[0].Offset:imports[0].Offset+imports[0].Length])

	vars := u.DiagnosticsWithCode(unit.CodeUnusedVariable)
	require.Len(t, vars, 1)
	assert.Equal(t, "unused", src[vars[0].Offset:vars[0].Offset+vars[0].Length])

	assert.Less(t, imports[0].Offset, vars[0].Offset, "diagnostics are sorted by offset")
}

func TestResolveAliasedUnusedImport(t *testing.T) {
	t.Parallel()

	src := "package main\n\nimport f \"fmt\"\n"
	u := resolve(t, "main.go", src)

	imports := u.DiagnosticsWithCode(unit.CodeUnusedImport)
	require.Len(t, imports, 1)
	assert.Equal(t, `f "fmt"`, src[imports[0].Offset:imports[0].Offset+imports[0].Length])
}

func TestResolveSyntaxError(t *testing.T) {
	t.Parallel()

	u := resolve(t, "broken.go", "package main\n\nfunc main() {\n\tx := \n}\n")

	require.NotNil(t, u.File)
	syntax := u.DiagnosticsWithCode(unit.CodeSyntaxError)
	assert.NotEmpty(t, syntax)
}

func TestResolveGenerated(t *testing.T) {
	t.Parallel()

	u := resolve(t, "gen.go", "// Code generated by stringer. DO NOT EDIT.\n\npackage main\n")
	assert.True(t, u.Identity.Generated)
}

func TestResolveCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := unit.Resolve(ctx, "main.go", []byte("package main\n"), nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestResolvedPositions(t *testing.T) {
	t.Parallel()

	src := "package main\n\nvar x = 1\n"
	u := resolve(t, "main.go", src)

	decl := u.File.Decls[0].(*ast.GenDecl)
	spec := decl.Specs[0].(*ast.ValueSpec)
	name := spec.Names[0]

	r := u.NodeRange(name)
	assert.Equal(t, 18, r.Offset)
	assert.Equal(t, 1, r.Length)
	assert.Equal(t, name.Pos(), u.Pos(18))

	assert.Equal(t, -1, u.Offset(token.NoPos))
	assert.Equal(t, token.NoPos, u.Pos(-1))
	assert.Equal(t, token.NoPos, u.Pos(len(src)+1))
	assert.Equal(t, len(src), u.Offset(u.Pos(len(src))))
}

func TestResolveMissingSwitchCases(t *testing.T) {
	t.Parallel()

	const header = "package main\n\ntype Color int\n\nconst (\n\tRed Color = iota\n\tGreen\n\tBlue\n\tCrimson = Red\n)\n\n"

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "missing constants",
			body:    "func f(c Color) {\n\tswitch c {\n\tcase Red:\n\t}\n}\n",
			message: "missing cases in switch of type Color: Green, Blue",
		},
		{
			name: "alias counts as handled",
			body: "func f(c Color) {\n\tswitch c {\n\tcase Crimson, Green, Blue:\n\t}\n}\n",
		},
		{
			name: "default clause",
			body: "func f(c Color) {\n\tswitch c {\n\tdefault:\n\t}\n}\n",
		},
		{
			name: "untyped tag",
			body: "func f(n int) {\n\tswitch n {\n\tcase 1:\n\t}\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := header + tt.body
			u := resolve(t, "main.go", src)
			got := u.DiagnosticsWithCode(unit.CodeMissingSwitchCase)

			if tt.message == "" {
				assert.Empty(t, got)
				return
			}

			require.Len(t, got, 1)
			assert.Equal(t, tt.message, got[0].Message)
			assert.Equal(t, "switch", src[got[0].Offset:got[0].Offset+got[0].Length])
			assert.Equal(t, unit.SeverityWarning, got[0].Severity)
		})
	}
}
