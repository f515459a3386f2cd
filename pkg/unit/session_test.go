package unit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gocorrect/pkg/config"
	"github.com/yaklabco/gocorrect/pkg/unit"
)

func TestSession(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.SetLint("prefer-var-declaration", true)
	cfg.SetProducerEnabled("exchange-operands", false)
	cfg.Exclude = []string{"vendor/**", "**/*_gen.go", "[bad"}

	session := unit.NewSession(cfg)

	assert.True(t, session.IsLintEnabled("prefer-var-declaration"))
	assert.False(t, session.IsLintEnabled("unknown"))
	assert.False(t, session.IsProducerEnabled("exchange-operands"))
	assert.True(t, session.IsProducerEnabled("add-t-parallel"))
	assert.True(t, session.FrameworkEnabled(config.FrameworkTesting))

	assert.True(t, session.IsExcluded("vendor/github.com/x/y.go"))
	assert.True(t, session.IsExcluded("pkg/model/types_gen.go"))
	assert.False(t, session.IsExcluded("pkg/model/types.go"))

	cfg.SetLint("prefer-var-declaration", false)
	assert.True(t, session.IsLintEnabled("prefer-var-declaration"), "session keeps its own copy")
}

func TestSessionDefaults(t *testing.T) {
	t.Parallel()

	session := unit.NewSession(nil)
	assert.True(t, session.IsProducerEnabled("anything"))
	assert.False(t, session.IsExcluded("main.go"))
	assert.Equal(t, config.NewConfig(), session.Config())
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	id := unit.NewIdentity("vendor/github.com/pkg/errors/errors.go", []byte("package errors\n"))
	assert.True(t, id.Vendored)
	assert.True(t, id.IsGo())

	id = unit.NewIdentity("internal/app/app.go", []byte("package app\n"))
	assert.False(t, id.Vendored)
	assert.False(t, id.Generated)
}
