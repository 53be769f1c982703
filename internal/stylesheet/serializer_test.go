package stylesheet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialize_SectionOrder(t *testing.T) {
	s := NewStore()
	s.Upsert(".p-4", "", []Property{{Name: "padding", Value: "1rem"}})
	s.Upsert(".md\\:p-4", "(min-width: 768px)", []Property{{Name: "padding", Value: "1rem"}})
	s.CustomProperty("--my-width", "initial")

	css := Serialize(s, SerializeOptions{})

	kf := strings.Index(css, "@keyframes spin")
	root := strings.Index(css, ":root {")
	base := strings.Index(css, ".p-4 {")
	media := strings.Index(css, "@media (min-width: 768px) {")
	require.True(t, kf >= 0 && root > kf && base > root && media > base,
		"expected keyframes, :root, base rules, media groups in order")
}

func TestSerialize_PrettyRuleFormat(t *testing.T) {
	s := NewStore()
	s.Upsert(".p-4", "", []Property{{Name: "padding", Value: "1rem"}})

	css := Serialize(s, SerializeOptions{})
	assert.Contains(t, css, ".p-4 {\n  padding: 1rem;\n}\n\n")
}

func TestSerialize_MinifiedRuleFormat(t *testing.T) {
	s := NewStore()
	s.Upsert(".p-4", "", []Property{{Name: "padding", Value: "1rem"}, {Name: "margin", Value: "0"}})

	css := Serialize(s, SerializeOptions{Minify: true})
	assert.Contains(t, css, ".p-4{padding:1rem;margin:0}")
	assert.NotContains(t, css, "\n")
}

func TestSerialize_Important(t *testing.T) {
	s := NewStore()
	s.Upsert(".x", "", []Property{{Name: "color", Value: "red", Important: true}})

	assert.Contains(t, Serialize(s, SerializeOptions{}), "color: red !important;")
	assert.Contains(t, Serialize(s, SerializeOptions{Minify: true}), "color:red!important")
}

func TestSerialize_MediaGroupMinified(t *testing.T) {
	s := NewStore()
	s.Upsert(".a", "(min-width: 640px)", []Property{{Name: "display", Value: "flex"}})
	s.Upsert(".b", "(min-width: 640px)", []Property{{Name: "display", Value: "grid"}})

	css := Serialize(s, SerializeOptions{Minify: true})
	assert.Contains(t, css, "@media (min-width: 640px){.a{display:flex}.b{display:grid}}")
}

func TestSerialize_KeyframePreambleComplete(t *testing.T) {
	css := Serialize(NewStore(), SerializeOptions{})
	for _, name := range KeyframeNames() {
		assert.Contains(t, css, "@keyframes "+name+" {")
	}
}

func TestSerialize_TreeShakeKeyframes(t *testing.T) {
	css := Serialize(NewStore(), SerializeOptions{
		TreeShakeKeyframes: true,
		UsedKeyframes:      map[string]bool{"spin": true},
	})
	assert.Contains(t, css, "@keyframes spin")
	assert.NotContains(t, css, "@keyframes pulse")
	assert.NotContains(t, css, "@keyframes bounce")
}

func TestSerialize_NoRootBlockWithoutCustomProperties(t *testing.T) {
	css := Serialize(NewStore(), SerializeOptions{})
	assert.NotContains(t, css, ":root")
}

// Minified output carries the same declarations as pretty output, just
// without whitespace.
func TestSerialize_StructuralEquivalence(t *testing.T) {
	s := NewStore()
	s.Upsert(".p-4", "", []Property{{Name: "padding", Value: "1rem"}})
	s.Upsert(".bg-blue-500", "", []Property{{Name: "background-color", Value: "#3b82f6"}})
	s.Upsert(".md\\:flex", "(min-width: 768px)", []Property{{Name: "display", Value: "flex"}})

	pretty := Serialize(s, SerializeOptions{})
	min := Serialize(s, SerializeOptions{Minify: true})

	normalize := func(css string) string {
		css = strings.ReplaceAll(css, "\n", "")
		css = strings.ReplaceAll(css, "  ", "")
		css = strings.ReplaceAll(css, " {", "{")
		css = strings.ReplaceAll(css, ": ", ":")
		css = strings.ReplaceAll(css, ", ", ",")
		css = strings.ReplaceAll(css, ";}", "}")
		return css
	}
	assert.Equal(t, normalize(pretty), normalize(min))
}

func TestSerialize_Deterministic(t *testing.T) {
	build := func() string {
		s := NewStore()
		s.Upsert(".a", "", []Property{{Name: "color", Value: "red"}})
		s.Upsert(".b", "(min-width: 768px)", []Property{{Name: "color", Value: "blue"}})
		s.Upsert(".c", "(min-width: 1024px)", []Property{{Name: "color", Value: "green"}})
		s.CustomProperty("--x", "initial")
		return Serialize(s, SerializeOptions{})
	}
	first := build()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, build())
	}
}
