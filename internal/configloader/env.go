package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/gocorrect/pkg/config"
)

// envVarPrefix is the prefix for all gocorrect environment variables.
const envVarPrefix = "GOCORRECT_"

type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeInt
	envTypeSlice
)

type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"LINTS":             {field: "linter.rules", typ: envTypeSlice},
	"DISABLE_PRODUCERS": {field: "producers.disabled", typ: envTypeSlice},
	"FRAMEWORKS":        {field: "frameworks", typ: envTypeSlice},
	"EXCLUDE":           {field: "exclude", typ: envTypeSlice},
	"LOG_LEVEL":         {field: "log_level", typ: envTypeString},
	"JOBS":              {field: "jobs", typ: envTypeInt},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with GOCORRECT_ (e.g., GOCORRECT_LINTS).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "log_level":
		cfg.LogLevel = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

func setSliceField(cfg *config.Config, field string, values []string) error {
	switch field {
	case "linter.rules":
		for _, name := range values {
			cfg.SetLint(name, true)
		}
	case "producers.disabled":
		for _, id := range values {
			cfg.SetProducerEnabled(id, false)
		}
	case "frameworks":
		cfg.Frameworks = values
	case "exclude":
		cfg.Exclude = values
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}
