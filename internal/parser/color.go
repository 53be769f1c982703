package parser

import (
	"strconv"
	"strings"

	"github.com/aethelur/tailgen/internal/scale"
	"github.com/aethelur/tailgen/internal/stylesheet"
)

// resolveColor maps a class body to a CSS color: palette token, bracket
// arbitrary value or custom-property reference.
func resolveColor(body string) (string, bool) {
	if v, ok := scale.Color(body); ok {
		return v, true
	}
	return rawValue(body)
}

// colorValue resolves a color body with an optional "/NN" opacity
// modifier. Known hex palette entries expand to rgba(); anything else
// (named colors, var() references, arbitrary values) falls back to a
// color-mix() passthrough instead of failing.
func colorValue(body string) (string, bool) {
	base, modifier := splitModifier(body)
	color, ok := resolveColor(base)
	if !ok {
		return "", false
	}
	if modifier == "" {
		return color, true
	}
	pct, ok := opacityPercent(modifier)
	if !ok {
		return "", false
	}
	if r, g, b, ok := hexToRGB(color); ok {
		return "rgba(" + itoa(r) + ", " + itoa(g) + ", " + itoa(b) + ", " + alphaString(pct) + ")", true
	}
	return "color-mix(in srgb, " + color + " " + strconv.Itoa(pct) + "%, transparent)", true
}

// colorFamily emits one property for a "prefix-{color}" class, or nil.
func colorFamily(class, prefix, property string) []stylesheet.Property {
	body, ok := strings.CutPrefix(class, prefix)
	if !ok || body == "" {
		return nil
	}
	v, ok := colorValue(body)
	if !ok {
		return nil
	}
	return single(property, v)
}

// opacityPercent parses the /NN modifier: an integer percent 0..100.
func opacityPercent(s string) (int, bool) {
	if s == "" || len(s) > 3 {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return n, true
}

// alphaString renders NN/100 as a compact decimal ("50" -> "0.5").
func alphaString(pct int) string {
	if pct == 100 {
		return "1"
	}
	if pct == 0 {
		return "0"
	}
	s := strconv.FormatFloat(float64(pct)/100, 'f', -1, 64)
	return s
}

// hexToRGB parses #rgb and #rrggbb forms.
func hexToRGB(s string) (int, int, int, bool) {
	if !strings.HasPrefix(s, "#") {
		return 0, 0, 0, false
	}
	hex := s[1:]
	switch len(hex) {
	case 3:
		r, ok1 := hexNibble(hex[0])
		g, ok2 := hexNibble(hex[1])
		b, ok3 := hexNibble(hex[2])
		if !ok1 || !ok2 || !ok3 {
			return 0, 0, 0, false
		}
		return r*17, g*17, b*17, true
	case 6:
		r, ok1 := hexByte(hex[0], hex[1])
		g, ok2 := hexByte(hex[2], hex[3])
		b, ok3 := hexByte(hex[4], hex[5])
		if !ok1 || !ok2 || !ok3 {
			return 0, 0, 0, false
		}
		return r, g, b, true
	}
	return 0, 0, 0, false
}

func hexNibble(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

func hexByte(hi, lo byte) (int, bool) {
	h, ok1 := hexNibble(hi)
	l, ok2 := hexNibble(lo)
	if !ok1 || !ok2 {
		return 0, false
	}
	return h*16 + l, true
}

func itoa(n int) string { return strconv.Itoa(n) }
