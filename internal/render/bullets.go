package render

import (
	"sort"
	"strings"

	"github.com/presentwallah/engine/internal/models"
)

// Leading glyphs stripped from incoming lines before the canonical bullet
// is reapplied.
const bulletGlyphs = "•-*►▪"

const bulletPrefix = "• "

// BulletLines normalizes free-text content into the lines rendered on a
// content slide: split on newline, trim, drop empties, strip any leading
// bullet glyph, then prefix every line after the first with the canonical
// glyph. A single-line content stays glyph-free.
func BulletLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(strings.TrimLeft(line, bulletGlyphs))
		if line == "" {
			continue
		}
		if len(out) == 0 {
			out = append(out, line)
		} else {
			out = append(out, bulletPrefix+line)
		}
	}
	return out
}

// SortSections returns a copy ordered by ascending order-index, the only
// order in which sections are ever rendered.
func SortSections(sections []models.Section) []models.Section {
	out := make([]models.Section, len(sections))
	copy(out, sections)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OrderIndex < out[j].OrderIndex
	})
	return out
}
