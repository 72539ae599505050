package render

import "github.com/unidoc/unioffice/color"

// Palette is the 4-color scheme a template applies uniformly across a
// rendered deck.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Text      color.Color
}

// DefaultTemplate is used when a project names an unknown template.
const DefaultTemplate = "modern"

// templates is table-driven so new styles only touch this map, never the
// rendering call sites.
var templates = map[string]Palette{
	"modern": {
		Primary:   color.RGB(15, 32, 96),
		Secondary: color.RGB(30, 58, 138),
		Accent:    color.RGB(220, 230, 255),
		Text:      color.RGB(40, 40, 40),
	},
	"minimal": {
		Primary:   color.RGB(50, 50, 50),
		Secondary: color.RGB(100, 100, 100),
		Accent:    color.RGB(240, 240, 240),
		Text:      color.RGB(60, 60, 60),
	},
	"corporate": {
		Primary:   color.RGB(0, 51, 102),
		Secondary: color.RGB(0, 102, 204),
		Accent:    color.RGB(230, 240, 255),
		Text:      color.RGB(30, 30, 30),
	},
	"creative": {
		Primary:   color.RGB(123, 31, 162),
		Secondary: color.RGB(156, 39, 176),
		Accent:    color.RGB(243, 229, 245),
		Text:      color.RGB(50, 50, 50),
	},
}

// ResolveTemplate returns the palette for the named template, falling back
// to the default for unknown or empty names. It never fails.
func ResolveTemplate(name string) Palette {
	if p, ok := templates[name]; ok {
		return p
	}
	return templates[DefaultTemplate]
}
