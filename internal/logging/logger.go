// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// ErrUnknownLevel is returned by ParseLevel for names it does not accept.
var ErrUnknownLevel = errors.New("unknown log level")

//nolint:gochecknoglobals // Package-level logger is intentional for convenience
var defaultLogger atomic.Pointer[log.Logger]

// ParseLevel maps a configured level name to a logger level. Names are
// case-insensitive and "warning" is accepted for "warn". Only debug, info,
// warn and error are valid.
func ParseLevel(level string) (log.Level, error) {
	name := strings.ToLower(strings.TrimSpace(level))
	if name == "warning" {
		name = "warn"
	}

	lvl, err := log.ParseLevel(name)
	if err != nil || lvl < log.DebugLevel || lvl > log.ErrorLevel {
		return log.InfoLevel, fmt.Errorf("%w %q", ErrUnknownLevel, level)
	}
	return lvl, nil
}

// New creates a logger writing to stderr at the given level. Unknown
// levels fall back to info.
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a logger writing logfmt-style text to w.
func NewWithWriter(w io.Writer, level string) *log.Logger {
	lvl, _ := ParseLevel(level)
	return log.NewWithOptions(w, log.Options{
		Level:     lvl,
		Formatter: log.LogfmtFormatter,
	})
}

// Default returns the package-level default logger, creating it at info
// level on first use.
func Default() *log.Logger {
	if logger := defaultLogger.Load(); logger != nil {
		return logger
	}
	defaultLogger.CompareAndSwap(nil, New("info"))
	return defaultLogger.Load()
}

// SetDefault replaces the package-level default logger.
func SetDefault(logger *log.Logger) {
	defaultLogger.Store(logger)
}

// SetLevel updates the level of the default logger. Unknown levels select
// info.
func SetLevel(level string) {
	lvl, _ := ParseLevel(level)
	Default().SetLevel(lvl)
}
