package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocorrect/internal/configloader"
	"github.com/yaklabco/gocorrect/internal/logging"
	"github.com/yaklabco/gocorrect/pkg/correction/producers"
	"github.com/yaklabco/gocorrect/pkg/runner"
)

// Not parallel: LoadSession changes the default logger's level.
func TestLoadSession(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gocorrect.yaml"), []byte(`
linter:
  rules:
    prefer-var-declaration: true
producers:
  exchange-operands:
    enabled: false
exclude: ["gen/**"]
log_level: debug
`), 0o644))

	t.Cleanup(func() { logging.SetLevel("info") })

	session, loaded, err := runner.LoadSession(context.Background(), configloader.LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, ".gocorrect.yaml")}, loaded.LoadedFrom)
	assert.True(t, session.IsLintEnabled(producers.LintPreferVarDeclaration))
	assert.False(t, session.IsProducerEnabled(producers.IDExchangeOperands))
	assert.True(t, session.IsProducerEnabled(producers.IDRemoveUnusedImport))
	assert.True(t, session.IsExcluded("gen/types.go"))
	assert.Equal(t, log.DebugLevel, logging.Default().GetLevel())
}

func TestLoadSessionInvalid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gocorrect.yaml"), []byte("exclude: [\"[unclosed\"]\n"), 0o644))

	_, _, err := runner.LoadSession(context.Background(), configloader.LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	})
	require.Error(t, err)
}
