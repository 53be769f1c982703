package scale

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpacing(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"0", "0px"},
		{"px", "1px"},
		{"0.5", "0.125rem"},
		{"1", "0.25rem"},
		{"4", "1rem"},
		{"16", "4rem"},
		{"96", "24rem"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := Spacing(tt.token)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpacing_WholeStepsExhaustive(t *testing.T) {
	// Every whole step of the published scale up to 12 plus the larger
	// jumps must resolve; a gap here is a correctness bug.
	for _, n := range []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12,
		14, 16, 20, 24, 28, 32, 36, 40, 44, 48, 52, 56, 60, 64, 72, 80, 96} {
		_, ok := Spacing(strconv.Itoa(n))
		assert.True(t, ok, "spacing %d missing", n)
	}
}

func TestSpacing_Unknown(t *testing.T) {
	for _, token := range []string{"", "13", "97", "4.5", "-4", "full"} {
		_, ok := Spacing(token)
		assert.False(t, ok, "token %q should not resolve", token)
	}
}

func TestFraction(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"1/2", "50%"},
		{"1/3", "33.333333%"},
		{"2/3", "66.666667%"},
		{"3/4", "75%"},
		{"11/12", "91.666667%"},
		{"full", "100%"},
	}

	for _, tt := range tests {
		got, ok := Fraction(tt.token)
		require.True(t, ok, tt.token)
		assert.Equal(t, tt.want, got)
	}

	_, ok := Fraction("5/7")
	assert.False(t, ok)
}

func TestColor(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"blue-500", "#3b82f6"},
		{"red-500", "#ef4444"},
		{"gray-50", "#f9fafb"},
		{"slate-950", "#020617"},
		{"black", "#000000"},
		{"white", "#ffffff"},
		{"transparent", "transparent"},
		{"current", "currentColor"},
		{"inherit", "inherit"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := Color(tt.token)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColor_AllShadesPresent(t *testing.T) {
	shades := []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}
	families := []string{
		"slate", "gray", "zinc", "neutral", "stone", "red", "orange",
		"amber", "yellow", "lime", "green", "emerald", "teal", "cyan",
		"sky", "blue", "indigo", "violet", "purple", "fuchsia", "pink", "rose",
	}
	for _, family := range families {
		for _, shade := range shades {
			v, ok := Color(family + "-" + shade)
			assert.True(t, ok, "%s-%s missing", family, shade)
			assert.Regexp(t, `^#[0-9a-f]{6}$`, v)
		}
	}
}

func TestColorTokens_Deterministic(t *testing.T) {
	assert.Equal(t, ColorTokens(), ColorTokens())
	assert.NotEmpty(t, ColorTokens())
}

func TestFontSize(t *testing.T) {
	entry, ok := FontSize("base")
	require.True(t, ok)
	assert.Equal(t, "1rem", entry.Size)
	assert.Equal(t, "1.5rem", entry.LineHeight)

	entry, ok = FontSize("xs")
	require.True(t, ok)
	assert.Equal(t, "0.75rem", entry.Size)

	_, ok = FontSize("10xl")
	assert.False(t, ok)
}

func TestFontWeight(t *testing.T) {
	for token, want := range map[string]string{
		"thin":   "100",
		"normal": "400",
		"bold":   "700",
		"black":  "900",
	} {
		got, ok := FontWeight(token)
		require.True(t, ok, token)
		assert.Equal(t, want, got)
	}
}

func TestBorderRadius(t *testing.T) {
	// The bare "rounded" class resolves through the empty token.
	got, ok := BorderRadius("")
	require.True(t, ok)
	assert.Equal(t, "0.25rem", got)

	got, ok = BorderRadius("full")
	require.True(t, ok)
	assert.Equal(t, "9999px", got)

	got, ok = BorderRadius("none")
	require.True(t, ok)
	assert.Equal(t, "0px", got)
}

func TestBorderWidth(t *testing.T) {
	got, ok := BorderWidth("")
	require.True(t, ok)
	assert.Equal(t, "1px", got)

	got, ok = BorderWidth("2")
	require.True(t, ok)
	assert.Equal(t, "2px", got)

	_, ok = BorderWidth("3")
	assert.False(t, ok)
}

func TestBoxShadow(t *testing.T) {
	_, ok := BoxShadow("")
	assert.True(t, ok)
	_, ok = BoxShadow("md")
	assert.True(t, ok)

	got, ok := BoxShadow("none")
	require.True(t, ok)
	assert.Equal(t, "0 0 #0000", got)
}

func TestOpacitySteps(t *testing.T) {
	got, ok := Opacity("50")
	require.True(t, ok)
	assert.Equal(t, "0.5", got)

	got, ok = Opacity("100")
	require.True(t, ok)
	assert.Equal(t, "1", got)

	_, ok = Opacity("57")
	assert.False(t, ok)
}

func TestDurationAndEasing(t *testing.T) {
	got, ok := Duration("150")
	require.True(t, ok)
	assert.Equal(t, "150ms", got)

	got, ok = Easing("in-out")
	require.True(t, ok)
	assert.Equal(t, "cubic-bezier(0.4, 0, 0.2, 1)", got)
}

func TestAnimation(t *testing.T) {
	v, ok := Animation("spin")
	require.True(t, ok)
	assert.Contains(t, v, "spin")

	names := AnimationNames()
	assert.Contains(t, names, "spin")
	assert.Contains(t, names, "bounce")
}

func TestGridTemplate(t *testing.T) {
	got, ok := GridTemplate("3")
	require.True(t, ok)
	assert.Equal(t, "repeat(3, minmax(0, 1fr))", got)

	got, ok = GridTemplate("none")
	require.True(t, ok)
	assert.Equal(t, "none", got)

	for _, bad := range []string{"0", "13", "03", "-1"} {
		_, ok := GridTemplate(bad)
		assert.False(t, ok, bad)
	}
}

func TestGridSpan(t *testing.T) {
	got, ok := GridSpan("2")
	require.True(t, ok)
	assert.Equal(t, "span 2 / span 2", got)

	got, ok = GridSpan("full")
	require.True(t, ok)
	assert.Equal(t, "1 / -1", got)
}

func TestZIndex(t *testing.T) {
	got, ok := ZIndex("10")
	require.True(t, ok)
	assert.Equal(t, "10", got)

	got, ok = ZIndex("auto")
	require.True(t, ok)
	assert.Equal(t, "auto", got)

	_, ok = ZIndex("15")
	assert.False(t, ok)
}

func TestMaxWidth(t *testing.T) {
	got, ok := MaxWidth("prose")
	require.True(t, ok)
	assert.Equal(t, "65ch", got)

	got, ok = MaxWidth("xl")
	require.True(t, ok)
	assert.Equal(t, "36rem", got)
}
