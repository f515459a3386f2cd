package config

import (
	"bytes"
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts linter rules as either a list of enabled names or a
// mapping of names to booleans.
func (l *LinterConfig) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Rules yaml.Node `yaml:"rules"`
	}
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("decode linter: %w", err)
	}

	rules, err := decodeRules(&raw.Rules)
	if err != nil {
		return err
	}
	l.Rules = rules
	return nil
}

func decodeRules(node *yaml.Node) (map[string]bool, error) {
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.SequenceNode:
		var names []string
		if err := node.Decode(&names); err != nil {
			return nil, fmt.Errorf("decode linter rules: %w", err)
		}
		rules := make(map[string]bool, len(names))
		for _, name := range names {
			rules[name] = true
		}
		return rules, nil
	case yaml.MappingNode:
		var rules map[string]bool
		if err := node.Decode(&rules); err != nil {
			return nil, fmt.Errorf("decode linter rules: %w", err)
		}
		return rules, nil
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("line %d: linter rules must be a list or a mapping", node.Line)
}

// ToYAML serializes the configuration to YAML format.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(YAMLIndent())

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if cfg.Linter.Rules == nil {
		cfg.Linter.Rules = make(map[string]bool)
	}
	if cfg.Producers == nil {
		cfg.Producers = make(map[string]ProducerConfig)
	}

	return cfg, nil
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := &Config{
		LogLevel: c.LogLevel,
		Jobs:     c.Jobs,
	}

	if c.Linter.Rules != nil {
		clone.Linter.Rules = maps.Clone(c.Linter.Rules)
	}

	if c.Producers != nil {
		clone.Producers = make(map[string]ProducerConfig, len(c.Producers))
		for id, pc := range c.Producers {
			clone.Producers[id] = pc.clone()
		}
	}

	if c.Frameworks != nil {
		clone.Frameworks = make([]string, len(c.Frameworks))
		copy(clone.Frameworks, c.Frameworks)
	}

	if c.Exclude != nil {
		clone.Exclude = make([]string, len(c.Exclude))
		copy(clone.Exclude, c.Exclude)
	}

	return clone
}

func (pc ProducerConfig) clone() ProducerConfig {
	if pc.Enabled == nil {
		return ProducerConfig{}
	}
	enabled := *pc.Enabled
	return ProducerConfig{Enabled: &enabled}
}

// YAMLIndent returns the default YAML indentation.
func YAMLIndent() int {
	return 2
}
