package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveTemplateFallsBackToModern(t *testing.T) {
	modern := ResolveTemplate("modern")
	require.Equal(t, modern, ResolveTemplate("unknown-name"))
	require.Equal(t, modern, ResolveTemplate(""))
}

func TestResolveTemplateKnownStyles(t *testing.T) {
	seen := map[Palette]string{}
	for _, name := range []string{"modern", "minimal", "corporate", "creative"} {
		p := ResolveTemplate(name)
		if prev, dup := seen[p]; dup {
			t.Fatalf("templates %q and %q share a palette", prev, name)
		}
		seen[p] = name
	}
}
