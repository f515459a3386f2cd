package source

// NoOffset marks an absent selection.
const NoOffset = -1

// Selection is the user's selected region. Offset is NoOffset when nothing
// is selected.
type Selection struct {
	Offset int
	Length int
}

// NewSelection returns a selection of length bytes at offset.
func NewSelection(offset, length int) Selection {
	return Selection{Offset: offset, Length: length}
}

// NoSelection returns the absent selection.
func NoSelection() Selection {
	return Selection{Offset: NoOffset}
}

// IsNone reports whether the selection is absent.
func (s Selection) IsNone() bool {
	return s.Offset < 0
}

// End returns Offset+Length, or NoOffset when the selection is absent.
func (s Selection) End() int {
	if s.IsNone() {
		return NoOffset
	}
	return s.Offset + s.Length
}

// Range converts the selection to a Range. The result is meaningless for an
// absent selection.
func (s Selection) Range() Range {
	return Range{Offset: s.Offset, Length: s.Length}
}
