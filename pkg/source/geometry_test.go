package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gocorrect/pkg/source"
)

func TestIsOperatorSelected(t *testing.T) {
	t.Parallel()

	left := source.Operand{Range: source.NewRange(0, 5)}
	right := source.Operand{Range: source.NewRange(10, 5)}

	tests := []struct {
		name  string
		left  source.Operand
		right source.Operand
		sel   source.Range
		want  bool
	}{
		{
			name:  "selection between operands",
			left:  left,
			right: right,
			sel:   source.NewRange(6, 2),
			want:  true,
		},
		{
			name:  "caret right after left operand",
			left:  left,
			right: right,
			sel:   source.NewRange(5, 0),
			want:  true,
		},
		{
			name:  "whole gap selected",
			left:  left,
			right: right,
			sel:   source.NewRange(5, 5),
			want:  true,
		},
		{
			name:  "exact span of simple operands",
			left:  left,
			right: right,
			sel:   source.NewRange(0, 15),
			want:  true,
		},
		{
			name:  "exact span with compound left operand",
			left:  source.Operand{Range: left.Range, Compound: true},
			right: right,
			sel:   source.NewRange(0, 15),
			want:  false,
		},
		{
			name:  "exact span with compound right operand",
			left:  left,
			right: source.Operand{Range: right.Range, Compound: true},
			sel:   source.NewRange(0, 15),
			want:  false,
		},
		{
			name:  "partial overlap with left operand",
			left:  left,
			right: right,
			sel:   source.NewRange(3, 4),
			want:  false,
		},
		{
			name:  "partial overlap with right operand",
			left:  left,
			right: right,
			sel:   source.NewRange(8, 4),
			want:  false,
		},
		{
			name:  "inside left operand",
			left:  left,
			right: right,
			sel:   source.NewRange(1, 1),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, source.IsOperatorSelected(tt.left, tt.right, tt.sel))
		})
	}
}

func TestContains(t *testing.T) {
	t.Parallel()

	outer := source.NewRange(10, 10)

	assert.True(t, source.Contains(outer, source.NewRange(10, 10)))
	assert.True(t, source.Contains(outer, source.NewRange(12, 3)))
	assert.True(t, source.Contains(outer, source.NewRange(20, 0)))
	assert.False(t, source.Contains(outer, source.NewRange(9, 2)))
	assert.False(t, source.Contains(outer, source.NewRange(15, 6)))
}

func TestRange(t *testing.T) {
	t.Parallel()

	r := source.RangeFromOffsets(4, 9)
	assert.Equal(t, 5, r.Length)
	assert.Equal(t, 9, r.End())
	assert.Equal(t, "[4,9)", r.String())
	assert.True(t, r.ContainsOffset(4))
	assert.False(t, r.ContainsOffset(9))
	assert.True(t, r.Intersects(source.NewRange(8, 3)))
	assert.False(t, r.Intersects(source.NewRange(9, 3)))
	assert.True(t, source.NewRange(3, 0).IsEmpty())
}

func TestSelectionEnd(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ offset, length int }{
		{0, 0}, {0, 7}, {5, 0}, {12, 30}, {1 << 20, 3},
	} {
		sel := source.NewSelection(tc.offset, tc.length)
		assert.Equal(t, tc.offset+tc.length, sel.End())
		assert.False(t, sel.IsNone())
	}

	none := source.NoSelection()
	assert.True(t, none.IsNone())
	assert.Equal(t, source.NoOffset, none.End())
}
