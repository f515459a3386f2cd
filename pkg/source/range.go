// Package source provides byte-offset geometry over Go source text:
// ranges, selections, operator-selection checks, and a line index with
// end-of-line detection.
package source

import "fmt"

// Range is a half-open byte interval [Offset, Offset+Length).
type Range struct {
	Offset int
	Length int
}

// NewRange returns the range starting at offset spanning length bytes.
func NewRange(offset, length int) Range {
	return Range{Offset: offset, Length: length}
}

// RangeFromOffsets returns the range [start, end).
func RangeFromOffsets(start, end int) Range {
	return Range{Offset: start, Length: end - start}
}

// End returns the exclusive end offset.
func (r Range) End() int {
	return r.Offset + r.Length
}

// IsEmpty reports whether the range spans no bytes.
func (r Range) IsEmpty() bool {
	return r.Length == 0
}

// ContainsOffset reports whether offset falls inside the range.
func (r Range) ContainsOffset(offset int) bool {
	return r.Offset <= offset && offset < r.End()
}

// Intersects reports whether the two ranges share at least one byte.
func (r Range) Intersects(other Range) bool {
	return r.Offset < other.End() && other.Offset < r.End()
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Offset, r.End())
}

// Contains reports whether inner lies entirely within outer.
// An empty inner range at outer's end is contained.
func Contains(outer, inner Range) bool {
	return outer.Offset <= inner.Offset && inner.End() <= outer.End()
}
