package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gocorrect/pkg/config"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	off := false
	on := true

	base := config.NewConfig()
	base.SetLint("a", true)
	base.SetLint("b", true)
	base.Producers["p1"] = config.ProducerConfig{Enabled: &off}
	base.Exclude = []string{"vendor/**"}
	base.Jobs = 2

	override := &config.Config{
		Linter: config.LinterConfig{Rules: map[string]bool{"b": false, "c": true}},
		Producers: map[string]config.ProducerConfig{
			"p1": {},
			"p2": {Enabled: &on},
		},
		LogLevel: "debug",
	}

	merged := merge(base, override)

	assert.Equal(t, map[string]bool{"a": true, "b": false, "c": true}, merged.Linter.Rules)
	assert.False(t, merged.ProducerEnabled("p1"), "unset override keeps base switch")
	assert.True(t, merged.ProducerEnabled("p2"))
	assert.Equal(t, []string{"vendor/**"}, merged.Exclude)
	assert.Equal(t, []string{config.FrameworkTesting}, merged.Frameworks)
	assert.Equal(t, 2, merged.Jobs)
	assert.Equal(t, "debug", merged.LogLevel)

	assert.True(t, base.Linter.Rules["b"], "base is not mutated")
}

func TestMergeNil(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Same(t, cfg, merge(nil, cfg))
	assert.Same(t, cfg, merge(cfg, nil))
}

func TestParseSliceValue(t *testing.T) {
	t.Parallel()

	assert.Nil(t, parseSliceValue(""))
	assert.Equal(t, []string{"a", "b"}, parseSliceValue(" a, ,b "))
}
