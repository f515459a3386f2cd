package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/gocorrect/internal/logging"
	"github.com/yaklabco/gocorrect/pkg/config"
	"github.com/yaklabco/gocorrect/pkg/correction"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "producers.foo").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown producers).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// knownFrameworks lists framework extensions gocorrect understands.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownFrameworks = map[string]bool{
	config.FrameworkTesting: true,
}

// Validate checks a configuration for errors and warnings. Producer IDs
// unknown to registry produce warnings; a nil registry skips that check.
func Validate(cfg *config.Config, registry *correction.Registry) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if _, err := logging.ParseLevel(cfg.LogLevel); cfg.LogLevel != "" && err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: fmt.Sprintf("invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	for name := range cfg.Linter.Rules {
		if strings.TrimSpace(name) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "linter.rules",
				Value:   name,
				Message: "lint name must not be empty",
			})
		}
	}

	validateProducers(cfg, registry, result)

	for _, name := range cfg.Frameworks {
		if !knownFrameworks[name] {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "frameworks",
				Value:   name,
				Message: fmt.Sprintf("unknown framework %q; it will be ignored", name),
			})
		}
	}

	for i, pattern := range cfg.Exclude {
		if _, err := glob.Compile(filepath.ToSlash(pattern), '/'); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("exclude[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}

	return result
}

func validateProducers(cfg *config.Config, registry *correction.Registry, result *ValidationResult) {
	for id := range cfg.Producers {
		if strings.TrimSpace(id) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "producers",
				Value:   id,
				Message: "producer ID must not be empty",
			})
			continue
		}

		if registry == nil {
			continue
		}
		if _, ok := registry.Get(id); !ok {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "producers." + id,
				Value:   id,
				Message: fmt.Sprintf("unknown producer %q; it will be ignored", id),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, registry *correction.Registry, filePath string) *ValidationResult {
	result := Validate(cfg, registry)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
