package parser

import (
	"testing"

	"github.com/aethelur/tailgen/internal/stylesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, class string) []stylesheet.Property {
	t.Helper()
	return NewRegistry(nil).Parse(class)
}

func TestRegistry_FamilyCoverage(t *testing.T) {
	tests := []struct {
		class string
		want  []stylesheet.Property
	}{
		{"p-4", []stylesheet.Property{{Name: "padding", Value: "1rem"}}},
		{"px-4", []stylesheet.Property{
			{Name: "padding-left", Value: "1rem"},
			{Name: "padding-right", Value: "1rem"},
		}},
		{"m-auto", []stylesheet.Property{{Name: "margin", Value: "auto"}}},
		{"-m-2", []stylesheet.Property{{Name: "margin", Value: "-0.5rem"}}},
		{"gap-2", []stylesheet.Property{{Name: "gap", Value: "0.5rem"}}},
		{"gap-x-2", []stylesheet.Property{{Name: "column-gap", Value: "0.5rem"}}},
		{"w-full", []stylesheet.Property{{Name: "width", Value: "100%"}}},
		{"w-1/3", []stylesheet.Property{{Name: "width", Value: "33.333333%"}}},
		{"h-screen", []stylesheet.Property{{Name: "height", Value: "100vh"}}},
		{"size-4", []stylesheet.Property{
			{Name: "width", Value: "1rem"},
			{Name: "height", Value: "1rem"},
		}},
		{"max-w-xl", []stylesheet.Property{{Name: "max-width", Value: "36rem"}}},
		{"flex", []stylesheet.Property{{Name: "display", Value: "flex"}}},
		{"hidden", []stylesheet.Property{{Name: "display", Value: "none"}}},
		{"flex-1", []stylesheet.Property{{Name: "flex", Value: "1 1 0%"}}},
		{"grid-cols-3", []stylesheet.Property{{Name: "grid-template-columns", Value: "repeat(3, minmax(0, 1fr))"}}},
		{"bg-blue-500", []stylesheet.Property{{Name: "background-color", Value: "#3b82f6"}}},
		{"text-blue-500", []stylesheet.Property{{Name: "color", Value: "#3b82f6"}}},
		{"text-lg", []stylesheet.Property{
			{Name: "font-size", Value: "1.125rem"},
			{Name: "line-height", Value: "1.75rem"},
		}},
		{"border", []stylesheet.Property{{Name: "border-width", Value: "1px"}}},
		{"rounded-full", []stylesheet.Property{{Name: "border-radius", Value: "9999px"}}},
		{"opacity-50", []stylesheet.Property{{Name: "opacity", Value: "0.5"}}},
		{"top-[4px]", []stylesheet.Property{{Name: "top", Value: "4px"}}},
		{"cursor-pointer", []stylesheet.Property{{Name: "cursor", Value: "pointer"}}},
		{"select-none", []stylesheet.Property{{Name: "user-select", Value: "none"}}},
		{"scroll-mt-4", []stylesheet.Property{{Name: "scroll-margin-top", Value: "1rem"}}},
		{"sr-only", nil}, // shape checked separately
	}
	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			got := parse(t, tt.class)
			if tt.want == nil {
				assert.NotNil(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

// Keyword collisions resolve by priority: structural parsers claim their
// tokens before the palette parser sees the class.
func TestRegistry_PriorityDisambiguation(t *testing.T) {
	got := parse(t, "text-lg")
	require.Len(t, got, 2)
	assert.Equal(t, "font-size", got[0].Name)

	got = parse(t, "text-blue-500")
	require.Len(t, got, 1)
	assert.Equal(t, "color", got[0].Name)

	got = parse(t, "border-2")
	require.Len(t, got, 1)
	assert.Equal(t, "border-width", got[0].Name)

	got = parse(t, "border-blue-500")
	require.Len(t, got, 1)
	assert.Equal(t, "border-color", got[0].Name)
}

func TestRegistry_ArbitraryValues(t *testing.T) {
	assert.Equal(t,
		[]stylesheet.Property{{Name: "width", Value: "100px"}},
		parse(t, "w-[100px]"))
	assert.Equal(t,
		[]stylesheet.Property{{Name: "width", Value: "var(--my-width)"}},
		parse(t, "w-(--my-width)"))
	assert.Equal(t,
		[]stylesheet.Property{{Name: "background-color", Value: "#1e40af"}},
		parse(t, "bg-[#1e40af]"))
}

func TestRegistry_ArbitraryUnderscores(t *testing.T) {
	got := parse(t, "grid-cols-[1fr_2fr]")
	require.Len(t, got, 1)
	assert.Equal(t, "1fr 2fr", got[0].Value)
}

func TestRegistry_MalformedArbitraryIsSoftMiss(t *testing.T) {
	assert.Nil(t, parse(t, "w-[100px"))
	assert.Nil(t, parse(t, "bg-(--brand"))
	assert.Nil(t, parse(t, "w-[]"))
}

func TestRegistry_UnrecognizedClass(t *testing.T) {
	assert.Nil(t, parse(t, "bogus-utility"))
	assert.Nil(t, parse(t, "p-"))
	assert.Nil(t, parse(t, ""))
}

func TestColorValue_OpacityModifier(t *testing.T) {
	got := parse(t, "bg-black/50")
	require.Len(t, got, 1)
	assert.Equal(t, "rgba(0, 0, 0, 0.5)", got[0].Value)

	got = parse(t, "bg-white/5")
	require.Len(t, got, 1)
	assert.Equal(t, "rgba(255, 255, 255, 0.05)", got[0].Value)

	got = parse(t, "bg-blue-500/100")
	require.Len(t, got, 1)
	assert.Equal(t, "rgba(59, 130, 246, 1)", got[0].Value)

	got = parse(t, "text-current/50")
	require.Len(t, got, 1)
	assert.Equal(t, "color-mix(in srgb, currentColor 50%, transparent)", got[0].Value)

	assert.Nil(t, parse(t, "bg-black/101"))
	assert.Nil(t, parse(t, "bg-black/abc"))
}

func TestSROnly(t *testing.T) {
	got := parse(t, "sr-only")
	require.Len(t, got, 9)
	assert.Equal(t, stylesheet.Property{Name: "position", Value: "absolute"}, got[0])
	assert.Contains(t, got, stylesheet.Property{Name: "clip", Value: "rect(0, 0, 0, 0)"})
}

func TestRegistry_DisabledCategory(t *testing.T) {
	r := NewRegistry(func(c Category) bool { return c != CategorySpacing })
	assert.Nil(t, r.Parse("p-4"))
	assert.NotNil(t, r.Parse("flex"))
	assert.NotNil(t, r.Parse("bg-blue-500"))
}

func TestRegistry_DispatchOrder(t *testing.T) {
	r := NewRegistry(nil)
	parsers := r.Parsers()
	require.NotEmpty(t, parsers)
	for i := 1; i < len(parsers); i++ {
		assert.GreaterOrEqual(t,
			parsers[i-1].Metadata().Priority, parsers[i].Metadata().Priority)
	}
	assert.Equal(t, CategoryAccessibility, parsers[0].Metadata().Category)
}

func TestRegistry_NeverPanics(t *testing.T) {
	r := NewRegistry(nil)
	for _, class := range []string{
		"", "-", "--", "[", "]", "p-[", "bg-[url(", "w-(", "-m-", "/", "p-4/",
		"text-[", "border-[#", "grid-cols-[", ":::", "md:",
	} {
		assert.NotPanics(t, func() { r.Parse(class) }, class)
	}
}

func TestCustomPropertyRefs(t *testing.T) {
	assert.Equal(t, []string{"--brand"}, CustomPropertyRefs("bg-(--brand)"))
	assert.Equal(t, []string{"--my-width"}, CustomPropertyRefs("w-(--my-width)"))
	assert.Nil(t, CustomPropertyRefs("bg-blue-500"))
	assert.Nil(t, CustomPropertyRefs("bg-[url(http://x)]"))
}
