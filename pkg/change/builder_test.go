package change_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocorrect/pkg/change"
	"github.com/yaklabco/gocorrect/pkg/source"
)

func memWorkspace(t *testing.T, files map[string]string) *change.FSWorkspace {
	t.Helper()

	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	return change.NewFSWorkspace(fs)
}

func TestBuilder(t *testing.T) {
	t.Parallel()

	ws := memWorkspace(t, map[string]string{
		"b.go": "package b\n",
		"a.go": "package a\n\nvar x = 1\n",
	})

	builder := change.NewBuilder(ws)
	assert.False(t, builder.HasEdits())

	require.NoError(t, builder.AddFileEdit("b.go", func(fb *change.FileBuilder) error {
		assert.Equal(t, "b.go", fb.Path())
		fb.Replace(source.NewRange(8, 1), "bb")
		return nil
	}))
	require.NoError(t, builder.AddFileEdit("a.go", func(fb *change.FileBuilder) error {
		fb.Insert(fb.Text().Len(), "var y = 2\n")
		fb.Delete(source.NewRange(11, 10))
		return nil
	}))

	assert.True(t, builder.HasEdits())

	sc, err := builder.SourceChange("fix.test", "Test change")
	require.NoError(t, err)
	assert.Equal(t, "fix.test", sc.ID)
	assert.Equal(t, "Test change", sc.Message)
	require.Len(t, sc.Edits, 2)
	assert.Equal(t, "b.go", sc.Edits[0].Path, "files keep first-edit order")

	fe, ok := sc.FileEdit("a.go")
	require.True(t, ok)
	assert.Equal(t, 11, fe.Edits[0].StartOffset, "edits are sorted")

	out, err := sc.Preview(ws)
	require.NoError(t, err)
	assert.Equal(t, "package a\n\nvar y = 2\n", string(out["a.go"]))
	assert.Equal(t, "package bb\n", string(out["b.go"]))
}

func TestBuilderErrors(t *testing.T) {
	t.Parallel()

	ws := memWorkspace(t, map[string]string{"a.go": "package a\n"})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		builder := change.NewBuilder(ws)
		err := builder.AddFileEdit("nope.go", func(*change.FileBuilder) error { return nil })
		require.ErrorIs(t, err, change.ErrFileNotFound)
		assert.False(t, builder.HasEdits())
	})

	t.Run("conflicting edits", func(t *testing.T) {
		t.Parallel()

		builder := change.NewBuilder(ws)
		require.NoError(t, builder.AddFileEdit("a.go", func(fb *change.FileBuilder) error {
			fb.Delete(source.NewRange(0, 5))
			fb.Delete(source.NewRange(3, 4))
			return nil
		}))

		_, err := builder.SourceChange("x", "x")
		var conflict *change.ConflictError
		require.ErrorAs(t, err, &conflict)
	})

	t.Run("edit past end", func(t *testing.T) {
		t.Parallel()

		builder := change.NewBuilder(ws)
		require.NoError(t, builder.AddFileEdit("a.go", func(fb *change.FileBuilder) error {
			fb.Insert(100, "x")
			return nil
		}))

		_, err := builder.SourceChange("x", "x")
		var invalid *change.ValidationError
		require.ErrorAs(t, err, &invalid)
	})
}

func TestWorkspace(t *testing.T) {
	t.Parallel()

	ws, err := change.NewMemWorkspace(map[string][]byte{
		"pkg/a/a.go": []byte("package a\n"),
	})
	require.NoError(t, err)

	assert.True(t, ws.Exists("pkg/a/a.go"))
	assert.False(t, ws.Exists("pkg/a"))
	assert.False(t, ws.Exists("pkg/b.go"))

	content, err := ws.ReadFile("pkg/a/a.go")
	require.NoError(t, err)
	assert.Equal(t, "package a\n", string(content))

	_, err = ws.ReadFile("pkg/b.go")
	require.ErrorIs(t, err, change.ErrFileNotFound)
}
