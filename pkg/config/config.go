// Package config defines the analysis options consulted while computing
// corrections. These types are pure data structures; discovery and merging
// live in internal/configloader.
package config

import "slices"

// FrameworkTesting names the standard library testing framework.
const FrameworkTesting = "testing"

// ProducerConfig holds per-producer switches.
type ProducerConfig struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// LinterConfig records which lint rules are enabled for the analyzed code.
// Producers consult it to avoid offering edits a lint would flag.
type LinterConfig struct {
	// Rules maps lint names to their enablement. In YAML it may be written
	// either as a list of enabled names or as a name: bool mapping.
	Rules map[string]bool `yaml:"rules,omitempty"`
}

// Config is the root configuration structure for gocorrect.
type Config struct {
	// Linter holds lint enablement.
	Linter LinterConfig `yaml:"linter"`

	// Producers holds per-producer switches keyed by producer ID.
	Producers map[string]ProducerConfig `yaml:"producers,omitempty"`

	// Frameworks lists enabled framework extensions (e.g. "testing").
	Frameworks []string `yaml:"frameworks,omitempty"`

	// Exclude holds glob patterns of paths that never receive corrections.
	Exclude []string `yaml:"exclude,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty"`

	// Jobs bounds the batch runner's concurrency. Zero means NumCPU.
	Jobs int `yaml:"jobs,omitempty"`
}

// NewConfig returns a configuration populated with defaults.
func NewConfig() *Config {
	return &Config{
		Linter:     LinterConfig{Rules: make(map[string]bool)},
		Producers:  make(map[string]ProducerConfig),
		Frameworks: []string{FrameworkTesting},
		LogLevel:   "info",
	}
}

// LintEnabled reports whether the named lint rule is enabled.
// Unknown lints are disabled.
func (c *Config) LintEnabled(name string) bool {
	if c == nil {
		return false
	}
	return c.Linter.Rules[name]
}

// SetLint records the enablement of a lint rule.
func (c *Config) SetLint(name string, enabled bool) {
	if c.Linter.Rules == nil {
		c.Linter.Rules = make(map[string]bool)
	}
	c.Linter.Rules[name] = enabled
}

// ProducerEnabled reports whether the producer with the given ID may run.
// Producers are enabled unless explicitly switched off.
func (c *Config) ProducerEnabled(id string) bool {
	if c == nil {
		return true
	}
	pc, ok := c.Producers[id]
	if !ok || pc.Enabled == nil {
		return true
	}
	return *pc.Enabled
}

// SetProducerEnabled switches a producer on or off.
func (c *Config) SetProducerEnabled(id string, enabled bool) {
	if c.Producers == nil {
		c.Producers = make(map[string]ProducerConfig)
	}
	c.Producers[id] = ProducerConfig{Enabled: &enabled}
}

// FrameworkEnabled reports whether the named framework extension is enabled.
func (c *Config) FrameworkEnabled(name string) bool {
	if c == nil {
		return false
	}
	return slices.Contains(c.Frameworks, name)
}
