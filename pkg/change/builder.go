package change

import (
	"fmt"
	"slices"

	"github.com/yaklabco/gocorrect/pkg/source"
)

// Builder accumulates edits across files for one SourceChange.
// It is not safe for concurrent use.
type Builder struct {
	ws    Workspace
	files map[string]*FileBuilder
	order []string
}

// NewBuilder returns an empty builder reading file content from ws.
func NewBuilder(ws Workspace) *Builder {
	return &Builder{
		ws:    ws,
		files: make(map[string]*FileBuilder),
	}
}

// AddFileEdit runs build against the file builder for path. The file's
// content is read from the workspace on first use.
func (b *Builder) AddFileEdit(path string, build func(fb *FileBuilder) error) error {
	fb, err := b.file(path)
	if err != nil {
		return err
	}
	return build(fb)
}

func (b *Builder) file(path string) (*FileBuilder, error) {
	if fb, ok := b.files[path]; ok {
		return fb, nil
	}

	content, err := b.ws.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("edit %s: %w", path, err)
	}

	fb := &FileBuilder{path: path, text: source.NewText(content)}
	b.files[path] = fb
	b.order = append(b.order, path)
	return fb, nil
}

// HasEdits reports whether any edit was recorded.
func (b *Builder) HasEdits() bool {
	for _, fb := range b.files {
		if len(fb.edits) > 0 {
			return true
		}
	}
	return false
}

// SourceChange validates the accumulated edits and returns them as a change.
// Files are listed in the order they were first edited.
func (b *Builder) SourceChange(id, message string) (*SourceChange, error) {
	sc := &SourceChange{ID: id, Message: message}

	for _, path := range b.order {
		fb := b.files[path]
		if len(fb.edits) == 0 {
			continue
		}

		edits, err := PrepareEdits(fb.edits, fb.text.Len())
		if err != nil {
			return nil, fmt.Errorf("prepare edits for %s: %w", path, err)
		}
		sc.Edits = append(sc.Edits, FileEdit{Path: path, Edits: edits})
	}

	return sc, nil
}

// FileBuilder accumulates edits for a single file.
type FileBuilder struct {
	path  string
	text  *source.Text
	edits []TextEdit
}

// Path returns the file being edited.
func (fb *FileBuilder) Path() string {
	return fb.path
}

// Text returns the file's original content.
func (fb *FileBuilder) Text() *source.Text {
	return fb.text
}

// Replace replaces the bytes covered by r with text.
func (fb *FileBuilder) Replace(r source.Range, text string) {
	fb.edits = append(fb.edits, TextEdit{
		StartOffset: r.Offset,
		EndOffset:   r.End(),
		NewText:     text,
	})
}

// Insert inserts text at offset.
func (fb *FileBuilder) Insert(offset int, text string) {
	fb.Replace(source.NewRange(offset, 0), text)
}

// Delete removes the bytes covered by r.
func (fb *FileBuilder) Delete(r source.Range) {
	fb.Replace(r, "")
}

// Edits returns a copy of the recorded edits in insertion order.
func (fb *FileBuilder) Edits() []TextEdit {
	return slices.Clone(fb.edits)
}
