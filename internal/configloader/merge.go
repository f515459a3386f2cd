package configloader

import (
	"maps"

	"github.com/yaklabco/gocorrect/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Maps: deep merge, with override's values taking precedence
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	result.Linter.Rules = mergeLints(base.Linter.Rules, override.Linter.Rules)
	result.Producers = mergeProducers(base.Producers, override.Producers)

	if override.Frameworks != nil {
		result.Frameworks = override.Frameworks
	}
	if override.Exclude != nil {
		result.Exclude = override.Exclude
	}

	return &result
}

func mergeLints(base, override map[string]bool) map[string]bool {
	if base == nil && override == nil {
		return nil
	}

	result := make(map[string]bool, len(base)+len(override))
	maps.Copy(result, base)
	maps.Copy(result, override)
	return result
}

// mergeProducers deep merges producer switches. An override entry without
// an explicit Enabled keeps the base value.
func mergeProducers(base, override map[string]config.ProducerConfig) map[string]config.ProducerConfig {
	if base == nil && override == nil {
		return nil
	}

	result := make(map[string]config.ProducerConfig, len(base)+len(override))
	maps.Copy(result, base)

	for id, pc := range override {
		if pc.Enabled == nil {
			if _, ok := result[id]; ok {
				continue
			}
		}
		result[id] = pc
	}

	return result
}
