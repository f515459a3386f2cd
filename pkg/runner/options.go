// Package runner evaluates correction requests in batches and drives
// whole-tree fix runs.
package runner

import (
	"go/types"

	"github.com/spf13/afero"

	"github.com/yaklabco/gocorrect/pkg/unit"
)

// Options controls discovery and resolution for FixAll.
type Options struct {
	// Paths are the files or directories to process, relative to
	// WorkingDir. Empty means WorkingDir itself.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// ExcludeGlobs skip files or directories, matched against paths
	// relative to WorkingDir. The session's exclude patterns are added.
	ExcludeGlobs []string

	// Fs is the filesystem to read from. Defaults to the host filesystem.
	Fs afero.Fs

	// Session supplies analysis options. Defaults to unit.NewSession(nil).
	Session *unit.Session

	// Importer resolves imports during type checking. Defaults to the
	// compiler export data importer.
	Importer types.Importer
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

func (o Options) fs() afero.Fs {
	if o.Fs == nil {
		return afero.NewOsFs()
	}
	return o.Fs
}

func (o Options) session() *unit.Session {
	if o.Session == nil {
		return unit.NewSession(nil)
	}
	return o.Session
}

// excludes returns ExcludeGlobs followed by the session's patterns.
func (o Options) excludes() []string {
	out := append([]string(nil), o.ExcludeGlobs...)
	return append(out, o.session().Config().Exclude...)
}
