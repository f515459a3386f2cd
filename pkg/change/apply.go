package change

import (
	"bytes"
	"fmt"
)

// ApplyEdits applies a sorted, validated slice of edits to content.
// Edits must be prepared with PrepareEdits before calling.
// Returns the modified content.
func ApplyEdits(content []byte, edits []TextEdit) []byte {
	if len(edits) == 0 {
		return content
	}

	delta := 0
	for _, e := range edits {
		delta += len(e.NewText) - (e.EndOffset - e.StartOffset)
	}

	var out bytes.Buffer
	out.Grow(len(content) + delta)

	cursor := 0
	for _, e := range edits {
		out.Write(content[cursor:e.StartOffset])
		out.WriteString(e.NewText)
		cursor = e.EndOffset
	}
	out.Write(content[cursor:])

	return out.Bytes()
}

// Preview returns the post-edit content of every file the change touches,
// read from ws. Nothing is written.
func (sc *SourceChange) Preview(ws Workspace) (map[string][]byte, error) {
	out := make(map[string][]byte, len(sc.Edits))
	for _, fe := range sc.Edits {
		content, err := ws.ReadFile(fe.Path)
		if err != nil {
			return nil, fmt.Errorf("preview %s: %w", fe.Path, err)
		}

		edits, err := PrepareEdits(fe.Edits, len(content))
		if err != nil {
			return nil, fmt.Errorf("preview %s: %w", fe.Path, err)
		}
		out[fe.Path] = ApplyEdits(content, edits)
	}
	return out, nil
}
