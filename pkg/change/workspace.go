package change

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrFileNotFound is returned when a workspace has no file at a path.
var ErrFileNotFound = errors.New("file not found")

// Workspace is the read side of an editing workspace.
type Workspace interface {
	ReadFile(path string) ([]byte, error)
	Exists(path string) bool
}

// FSWorkspace reads files from an afero filesystem.
type FSWorkspace struct {
	fs afero.Fs
}

// NewFSWorkspace returns a workspace over fs.
func NewFSWorkspace(fs afero.Fs) *FSWorkspace {
	return &FSWorkspace{fs: fs}
}

// NewOSWorkspace returns a workspace over the host filesystem.
func NewOSWorkspace() *FSWorkspace {
	return NewFSWorkspace(afero.NewOsFs())
}

// NewMemWorkspace returns an in-memory workspace holding files.
func NewMemWorkspace(files map[string][]byte) (*FSWorkspace, error) {
	fs := afero.NewMemMapFs()
	for path, content := range files {
		if dir := filepath.Dir(path); dir != "." {
			if err := fs.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if err := afero.WriteFile(fs, path, content, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
	}
	return NewFSWorkspace(fs), nil
}

// ReadFile returns the content of path. A missing file yields an error
// wrapping ErrFileNotFound.
func (w *FSWorkspace) ReadFile(path string) ([]byte, error) {
	content, err := afero.ReadFile(w.fs, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return content, nil
}

// Exists reports whether path names a regular file.
func (w *FSWorkspace) Exists(path string) bool {
	info, err := w.fs.Stat(path)
	return err == nil && !info.IsDir()
}
