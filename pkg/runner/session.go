package runner

import (
	"context"
	"fmt"

	"github.com/yaklabco/gocorrect/internal/configloader"
	"github.com/yaklabco/gocorrect/internal/logging"
	"github.com/yaklabco/gocorrect/pkg/unit"
)

// LoadSession resolves the layered configuration and returns a session over
// it. The configured log level is applied to the default logger and
// configuration warnings are logged.
func LoadSession(ctx context.Context, opts configloader.LoadOptions) (*unit.Session, *configloader.LoadResult, error) {
	loaded, err := configloader.Load(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}

	if loaded.Config.LogLevel != "" {
		logging.SetLevel(loaded.Config.LogLevel)
	}

	logger := logging.FromContext(ctx)
	for _, path := range loaded.LoadedFrom {
		logger.Debug("loaded config", logging.FieldPath, path)
	}
	for _, w := range loaded.Warnings {
		logger.Warn("config warning", logging.FieldReason, w)
	}

	return unit.NewSession(loaded.Config), loaded, nil
}
