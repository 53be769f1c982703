package parser

import (
	"strings"

	"github.com/aethelur/tailgen/internal/stylesheet"
)

// backgroundParser owns the non-color background utilities: gradients
// and their stops, sizing, positioning, repeat, attachment, clip and
// origin. Background colors belong to the color parser downstream.
type backgroundParser struct{}

func (p *backgroundParser) Metadata() Metadata {
	return Metadata{
		Priority: 740,
		Category: CategoryBackgrounds,
		Patterns: []string{
			"bg-gradient-to-{dir}", "from-{color}", "to-{color}",
			"bg-auto|cover|contain", "bg-center|top|bottom|left|right",
			"bg-repeat*", "bg-fixed|local|scroll", "bg-clip-*", "bg-origin-*",
			"bg-none", "bg-[url(...)]",
		},
	}
}

var gradientDirections = map[string]string{
	"t":  "to top",
	"tr": "to top right",
	"r":  "to right",
	"br": "to bottom right",
	"b":  "to bottom",
	"bl": "to bottom left",
	"l":  "to left",
	"tl": "to top left",
}

var bgKeywords = map[string][]stylesheet.Property{
	"bg-auto":      single("background-size", "auto"),
	"bg-cover":     single("background-size", "cover"),
	"bg-contain":   single("background-size", "contain"),
	"bg-center":    single("background-position", "center"),
	"bg-top":       single("background-position", "top"),
	"bg-bottom":    single("background-position", "bottom"),
	"bg-left":      single("background-position", "left"),
	"bg-right":     single("background-position", "right"),
	"bg-left-top":     single("background-position", "left top"),
	"bg-left-bottom":  single("background-position", "left bottom"),
	"bg-right-top":    single("background-position", "right top"),
	"bg-right-bottom": single("background-position", "right bottom"),
	"bg-repeat":       single("background-repeat", "repeat"),
	"bg-no-repeat":    single("background-repeat", "no-repeat"),
	"bg-repeat-x":     single("background-repeat", "repeat-x"),
	"bg-repeat-y":     single("background-repeat", "repeat-y"),
	"bg-repeat-round": single("background-repeat", "round"),
	"bg-repeat-space": single("background-repeat", "space"),
	"bg-fixed":        single("background-attachment", "fixed"),
	"bg-local":        single("background-attachment", "local"),
	"bg-scroll":       single("background-attachment", "scroll"),
	"bg-clip-border":  single("background-clip", "border-box"),
	"bg-clip-padding": single("background-clip", "padding-box"),
	"bg-clip-content": single("background-clip", "content-box"),
	"bg-clip-text":    single("background-clip", "text"),
	"bg-origin-border":  single("background-origin", "border-box"),
	"bg-origin-padding": single("background-origin", "padding-box"),
	"bg-origin-content": single("background-origin", "content-box"),
	"bg-none":           single("background-image", "none"),
}

func (p *backgroundParser) TryParse(class string) []stylesheet.Property {
	if out, ok := bgKeywords[class]; ok {
		return out
	}

	if dir, ok := strings.CutPrefix(class, "bg-gradient-to-"); ok {
		d, ok := gradientDirections[dir]
		if !ok {
			return nil
		}
		// Stops land in the --gradient-from/--gradient-to custom
		// properties emitted by from-*/to-* on the same element.
		return single("background-image",
			"linear-gradient("+d+", var(--gradient-from, transparent), var(--gradient-to, transparent))")
	}
	if body, ok := strings.CutPrefix(class, "from-"); ok {
		if v, ok := colorValue(body); ok {
			return single("--gradient-from", v)
		}
		return nil
	}
	if body, ok := strings.CutPrefix(class, "to-"); ok {
		if v, ok := colorValue(body); ok {
			return single("--gradient-to", v)
		}
		return nil
	}

	// bg-[url(...)] and other image-like arbitrary values; color-like
	// ones stay with the color parser.
	if body, ok := strings.CutPrefix(class, "bg-"); ok && strings.HasPrefix(body, "[") {
		if v, ok := stripArbitrary(body); ok && (strings.HasPrefix(v, "url(") || strings.Contains(v, "gradient(")) {
			return single("background-image", v)
		}
	}

	return nil
}
