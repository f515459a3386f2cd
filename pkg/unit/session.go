package unit

import (
	"path/filepath"

	"github.com/gobwas/glob"

	"github.com/yaklabco/gocorrect/pkg/config"
)

// Session answers analysis-option queries for the units it resolves.
// It is immutable and safe for concurrent use.
type Session struct {
	cfg     *config.Config
	exclude []glob.Glob
}

// NewSession returns a session over cfg. A nil cfg uses defaults.
// Exclude patterns that fail to compile are ignored; configloader rejects
// them before a session is built.
func NewSession(cfg *config.Config) *Session {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	s := &Session{cfg: cfg.Clone()}
	for _, pattern := range cfg.Exclude {
		g, err := glob.Compile(filepath.ToSlash(pattern), '/')
		if err != nil {
			continue
		}
		s.exclude = append(s.exclude, g)
	}
	return s
}

// IsExcluded reports whether path matches one of the exclude patterns.
func (s *Session) IsExcluded(path string) bool {
	path = filepath.ToSlash(path)
	for _, g := range s.exclude {
		if g.Match(path) {
			return true
		}
	}
	return false
}

// Config returns a copy of the session's options.
func (s *Session) Config() *config.Config {
	return s.cfg.Clone()
}

// IsLintEnabled reports whether the named lint rule is enabled.
func (s *Session) IsLintEnabled(name string) bool {
	return s.cfg.LintEnabled(name)
}

// IsProducerEnabled reports whether the producer with the given ID may run.
func (s *Session) IsProducerEnabled(id string) bool {
	return s.cfg.ProducerEnabled(id)
}

// FrameworkEnabled reports whether the named framework extension is enabled.
func (s *Session) FrameworkEnabled(name string) bool {
	return s.cfg.FrameworkEnabled(name)
}
