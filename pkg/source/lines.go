package source

import "sort"

// LineInfo describes one line of content.
type LineInfo struct {
	// StartOffset is the offset of the first byte of the line.
	StartOffset int

	// NewlineStart is the offset of the line terminator, or the line's end
	// when it has none.
	NewlineStart int

	// EndOffset is the offset just past the terminator.
	EndOffset int
}

// BuildLines constructs line metadata from content.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, char := range content {
		if char == '\n' {
			newlineStart := idx
			if idx > 0 && content[idx-1] == '\r' {
				newlineStart = idx - 1
			}

			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: newlineStart,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Last line may not have a trailing newline.
	lines = append(lines, LineInfo{
		StartOffset:  lineStart,
		NewlineStart: len(content),
		EndOffset:    len(content),
	})

	return lines
}

// DetectEOL returns the terminator of the first line in content, or "\n"
// when content has no line terminator.
func DetectEOL(content []byte) string {
	for idx, char := range content {
		if char == '\n' {
			if idx > 0 && content[idx-1] == '\r' {
				return "\r\n"
			}
			return "\n"
		}
	}
	return "\n"
}

// Text is an immutable view of file content with a line index.
type Text struct {
	content []byte
	lines   []LineInfo
	eol     string
}

// NewText indexes content. The slice must not be modified afterwards.
func NewText(content []byte) *Text {
	return &Text{
		content: content,
		lines:   BuildLines(content),
		eol:     DetectEOL(content),
	}
}

// Len returns the content length in bytes.
func (t *Text) Len() int {
	return len(t.content)
}

// Content returns the underlying bytes.
func (t *Text) Content() []byte {
	return t.content
}

// EOL returns the line terminator used by the content.
func (t *Text) EOL() string {
	return t.eol
}

// LineCount returns the number of lines.
func (t *Text) LineCount() int {
	return len(t.lines)
}

// Slice returns the text covered by r. Out-of-bounds ranges are clipped to
// the content, so the result may be shorter than r.Length.
func (t *Text) Slice(r Range) string {
	start := max(r.Offset, 0)
	end := min(r.End(), len(t.content))
	if start >= end {
		return ""
	}
	return string(t.content[start:end])
}

// LineAt converts a byte offset to 1-based line and column numbers.
// Column counts bytes, not runes.
// Returns (0, 0) if the offset is out of range.
func (t *Text) LineAt(offset int) (int, int) {
	idx := t.lineIndex(offset)
	if idx < 0 {
		return 0, 0
	}
	return idx + 1, offset - t.lines[idx].StartOffset + 1
}

// Line returns metadata for the line containing offset.
func (t *Text) Line(offset int) (LineInfo, bool) {
	idx := t.lineIndex(offset)
	if idx < 0 {
		return LineInfo{}, false
	}
	return t.lines[idx], true
}

// LineStart returns the offset of the first byte of the line containing
// offset, or NoOffset when offset is out of range.
func (t *Text) LineStart(offset int) int {
	line, ok := t.Line(offset)
	if !ok {
		return NoOffset
	}
	return line.StartOffset
}

// IndentAt returns the leading spaces and tabs of the line containing offset.
func (t *Text) IndentAt(offset int) string {
	line, ok := t.Line(offset)
	if !ok {
		return ""
	}

	end := line.StartOffset
	for end < line.NewlineStart && (t.content[end] == ' ' || t.content[end] == '\t') {
		end++
	}
	return string(t.content[line.StartOffset:end])
}

// IsBlankBefore reports whether only spaces and tabs precede offset on its line.
func (t *Text) IsBlankBefore(offset int) bool {
	start := t.LineStart(offset)
	if start < 0 {
		return false
	}
	for _, char := range t.content[start:offset] {
		if char != ' ' && char != '\t' {
			return false
		}
	}
	return true
}

// FullLines widens r to whole lines, terminator included, when nothing but
// whitespace shares those lines with r. Otherwise r is returned unchanged.
func (t *Text) FullLines(r Range) Range {
	if r.Offset < 0 || r.End() > len(t.content) || !t.IsBlankBefore(r.Offset) {
		return r
	}

	last, ok := t.Line(r.End())
	if !ok {
		return r
	}
	for _, char := range t.content[r.End():last.NewlineStart] {
		if char != ' ' && char != '\t' {
			return r
		}
	}

	return RangeFromOffsets(t.LineStart(r.Offset), last.EndOffset)
}

func (t *Text) lineIndex(offset int) int {
	if offset < 0 || offset > len(t.content) || len(t.lines) == 0 {
		return -1
	}
	if offset == len(t.content) {
		return len(t.lines) - 1
	}

	idx := sort.Search(len(t.lines), func(i int) bool {
		return t.lines[i].EndOffset > offset
	})
	if idx >= len(t.lines) {
		idx = len(t.lines) - 1
	}
	return idx
}
