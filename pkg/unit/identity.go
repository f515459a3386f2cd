package unit

import (
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// Identity describes what kind of file a unit is.
type Identity struct {
	Path     string
	Language string

	// Generated is set for machine-generated files.
	Generated bool

	// Vendored is set for files under a vendor directory.
	Vendored bool
}

// NewIdentity classifies the file at path with the given content.
func NewIdentity(path string, content []byte) Identity {
	return Identity{
		Path:      path,
		Language:  enry.GetLanguage(filepath.Base(path), content),
		Generated: enry.IsGenerated(path, content),
		Vendored:  enry.IsVendor(filepath.ToSlash(path)),
	}
}

// IsGo reports whether the file was identified as Go source.
func (id Identity) IsGo() bool {
	return id.Language == "Go"
}
