package change

import (
	"bytes"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// diffContext is the number of unchanged lines around each hunk.
const diffContext = 3

// Diff is a unified diff of one file before and after a change.
type Diff struct {
	Path     string
	Original []byte
	Modified []byte

	// Additions and Deletions count changed lines.
	Additions int
	Deletions int

	unified string
}

// GenerateDiff compares original and modified. It returns nil when the
// content is identical.
func GenerateDiff(path string, original, modified []byte) (*Diff, error) {
	if bytes.Equal(original, modified) {
		return nil, nil
	}

	a := difflib.SplitLines(string(original))
	b := difflib.SplitLines(string(modified))

	unified, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        a,
		B:        b,
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  diffContext,
	})
	if err != nil {
		return nil, fmt.Errorf("diff %s: %w", path, err)
	}

	d := &Diff{Path: path, Original: original, Modified: modified, unified: unified}
	for _, op := range difflib.NewMatcher(a, b).GetOpCodes() {
		switch op.Tag {
		case 'r':
			d.Deletions += op.I2 - op.I1
			d.Additions += op.J2 - op.J1
		case 'd':
			d.Deletions += op.I2 - op.I1
		case 'i':
			d.Additions += op.J2 - op.J1
		}
	}
	return d, nil
}

// HasChanges reports whether the diff changes any line.
func (d *Diff) HasChanges() bool {
	return d != nil && (d.Additions > 0 || d.Deletions > 0)
}

// String returns the unified diff text with ---/+++ headers.
func (d *Diff) String() string {
	if d == nil {
		return ""
	}
	return d.unified
}

// Diffs previews sc against ws and returns one diff per changed file, in
// the order the change lists them.
func (sc *SourceChange) Diffs(ws Workspace) ([]*Diff, error) {
	var diffs []*Diff
	for _, fe := range sc.Edits {
		original, err := ws.ReadFile(fe.Path)
		if err != nil {
			return nil, fmt.Errorf("diff %s: %w", fe.Path, err)
		}

		edits, err := PrepareEdits(fe.Edits, len(original))
		if err != nil {
			return nil, fmt.Errorf("diff %s: %w", fe.Path, err)
		}

		d, err := GenerateDiff(fe.Path, original, ApplyEdits(original, edits))
		if err != nil {
			return nil, err
		}
		if d != nil {
			diffs = append(diffs, d)
		}
	}
	return diffs, nil
}
