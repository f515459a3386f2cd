// Package change describes edits to source files without applying them to
// disk. Producers accumulate edits in a Builder, which validates them into a
// SourceChange for an external workspace to apply.
package change

import "github.com/yaklabco/gocorrect/pkg/source"

// TextEdit represents a single text replacement in a file.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int `json:"start"`

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int `json:"end"`

	// NewText is the replacement text.
	NewText string `json:"newText"`
}

// Range returns the replaced span.
func (e TextEdit) Range() source.Range {
	return source.RangeFromOffsets(e.StartOffset, e.EndOffset)
}

// FileEdit groups the edits for one file, sorted and non-overlapping.
type FileEdit struct {
	Path  string     `json:"path"`
	Edits []TextEdit `json:"edits"`
}

// SourceChange is a validated, multi-file edit description.
type SourceChange struct {
	// ID identifies the kind of change (e.g. "fix.removeUnusedImport").
	ID string `json:"id"`

	// Message is the user-facing description.
	Message string `json:"message"`

	Edits []FileEdit `json:"edits"`
}

// FileEdit returns the edits for path, if any.
func (sc *SourceChange) FileEdit(path string) (FileEdit, bool) {
	for _, fe := range sc.Edits {
		if fe.Path == path {
			return fe, true
		}
	}
	return FileEdit{}, false
}
