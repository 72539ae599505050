package render

import (
	"testing"

	"github.com/presentwallah/engine/internal/models"
	"github.com/stretchr/testify/require"
)

func TestBulletLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "glyphs stripped and canonical glyph reapplied",
			content: "• First\nSecond\n\n- Third",
			want:    []string{"First", "• Second", "• Third"},
		},
		{
			name:    "single line stays glyph free",
			content: "► Only point",
			want:    []string{"Only point"},
		},
		{
			name:    "whitespace lines dropped",
			content: "  \n* one\n   \n▪ two  ",
			want:    []string{"one", "• two"},
		},
		{
			name:    "empty content",
			content: "",
			want:    []string{},
		},
		{
			name:    "glyph-only lines dropped",
			content: "•\nreal point\n- another",
			want:    []string{"real point", "• another"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BulletLines(tt.content)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				require.Equal(t, tt.want[i], got[i])
			}
		})
	}
}

func TestSortSectionsByOrderIndex(t *testing.T) {
	sections := []models.Section{
		{Title: "c", OrderIndex: 2},
		{Title: "a", OrderIndex: 0},
		{Title: "b", OrderIndex: 1},
	}
	sorted := SortSections(sections)
	require.Equal(t, []string{"a", "b", "c"}, []string{sorted[0].Title, sorted[1].Title, sorted[2].Title})
	// input untouched
	require.Equal(t, "c", sections[0].Title)
}
