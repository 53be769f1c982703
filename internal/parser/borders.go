package parser

import (
	"strings"

	"github.com/aethelur/tailgen/internal/scale"
	"github.com/aethelur/tailgen/internal/stylesheet"
)

// borderParser owns border widths and styles, radii, divide widths,
// outline and ring utilities. Border colors are the color parser's
// family; width/style tokens that miss their tables return nil so color
// bodies can fall through.
type borderParser struct{}

func (p *borderParser) Metadata() Metadata {
	return Metadata{
		Priority: 720,
		Category: CategoryBorders,
		Patterns: []string{
			"border", "border-{w}", "border-x|y|t|r|b|l-{w}",
			"border-solid|dashed|dotted|double|hidden|none",
			"rounded", "rounded-{r}", "rounded-t|r|b|l|tl|tr|br|bl-{r}",
			"divide-x|y-{w}", "divide-solid|dashed|dotted|double|none",
			"outline", "outline-{w}", "outline-offset-{n}",
			"ring", "ring-{w}", "ring-offset-{n}",
		},
	}
}

var borderStyleKeywords = map[string]string{
	"solid":  "solid",
	"dashed": "dashed",
	"dotted": "dotted",
	"double": "double",
	"hidden": "hidden",
	"none":   "none",
}

// roundedCorners maps side suffixes to their corner properties.
var roundedCorners = map[string][]string{
	"":   {"border-radius"},
	"t":  {"border-top-left-radius", "border-top-right-radius"},
	"r":  {"border-top-right-radius", "border-bottom-right-radius"},
	"b":  {"border-bottom-right-radius", "border-bottom-left-radius"},
	"l":  {"border-top-left-radius", "border-bottom-left-radius"},
	"tl": {"border-top-left-radius"},
	"tr": {"border-top-right-radius"},
	"br": {"border-bottom-right-radius"},
	"bl": {"border-bottom-left-radius"},
}

var borderSides = map[string][]string{
	"":  {"border-width"},
	"x": {"border-left-width", "border-right-width"},
	"y": {"border-top-width", "border-bottom-width"},
	"t": {"border-top-width"},
	"r": {"border-right-width"},
	"b": {"border-bottom-width"},
	"l": {"border-left-width"},
}

func (p *borderParser) TryParse(class string) []stylesheet.Property {
	if class == "border" {
		return single("border-width", "1px")
	}
	if class == "rounded" {
		v, _ := scale.BorderRadius("")
		return single("border-radius", v)
	}
	if class == "ring" {
		return p.ring("")
	}
	if class == "outline" {
		return single("outline-style", "solid")
	}
	if class == "outline-none" {
		return props("outline", "2px solid transparent", "outline-offset", "2px")
	}

	if body, ok := strings.CutPrefix(class, "rounded-"); ok {
		return p.rounded(body)
	}
	if body, ok := strings.CutPrefix(class, "divide-"); ok {
		return p.divide(body)
	}
	if body, ok := strings.CutPrefix(class, "outline-"); ok {
		return p.outline(body)
	}
	if body, ok := strings.CutPrefix(class, "ring-"); ok {
		return p.ring(body)
	}
	if body, ok := strings.CutPrefix(class, "border-"); ok {
		return p.border(body)
	}

	return nil
}

func (p *borderParser) border(body string) []stylesheet.Property {
	if v, ok := borderStyleKeywords[body]; ok {
		return single("border-style", v)
	}

	side := ""
	rest := body
	if sub, tail, ok := splitDash(body); ok {
		if _, sided := borderSides[sub]; sided {
			side, rest = sub, tail
		}
	} else if _, sided := borderSides[body]; sided {
		// border-x and friends with no width default to 1px.
		return expand(borderSides[body], "1px")
	}

	if v, ok := scale.BorderWidth(rest); ok {
		return expand(borderSides[side], v)
	}
	if side != "" {
		if v, ok := rawValue(rest); ok {
			return expand(borderSides[side], v)
		}
		return nil
	}
	if isWrapped(rest) {
		if v, ok := rawValue(rest); ok {
			return single("border-width", v)
		}
		return nil
	}
	// Not a width or style: probably a color, not ours.
	return nil
}

func (p *borderParser) rounded(body string) []stylesheet.Property {
	side := ""
	rest := body
	if sub, tail, ok := splitDash(body); ok {
		if _, sided := roundedCorners[sub]; sided {
			side, rest = sub, tail
		}
	} else if _, sided := roundedCorners[body]; sided && body != "" {
		v, _ := scale.BorderRadius("")
		return expand(roundedCorners[body], v)
	}

	if v, ok := scale.BorderRadius(rest); ok {
		return expand(roundedCorners[side], v)
	}
	if v, ok := rawValue(rest); ok {
		return expand(roundedCorners[side], v)
	}
	return nil
}

func (p *borderParser) divide(body string) []stylesheet.Property {
	if v, ok := borderStyleKeywords[body]; ok && body != "hidden" {
		return single("border-style", v)
	}
	sub, rest, ok := splitDash(body)
	if !ok {
		if body == "x" {
			return single("border-left-width", "1px")
		}
		if body == "y" {
			return single("border-top-width", "1px")
		}
		return nil
	}
	if sub != "x" && sub != "y" {
		return nil
	}
	width, widthOK := scale.BorderWidth(rest)
	if !widthOK {
		width, widthOK = rawValue(rest)
	}
	if !widthOK {
		return nil
	}
	if sub == "x" {
		return single("border-left-width", width)
	}
	return single("border-top-width", width)
}

func (p *borderParser) outline(body string) []stylesheet.Property {
	if v, ok := borderStyleKeywords[body]; ok && body != "hidden" && body != "none" {
		return single("outline-style", v)
	}
	if rest, ok := strings.CutPrefix(body, "offset-"); ok {
		if v, ok := scale.OutlineWidth(rest); ok {
			return single("outline-offset", v)
		}
		if v, ok := rawValue(rest); ok {
			return single("outline-offset", v)
		}
		return nil
	}
	if v, ok := scale.OutlineWidth(body); ok {
		return single("outline-width", v)
	}
	if isWrapped(body) {
		if v, ok := rawValue(body); ok && looksLikeLength(v) {
			return single("outline-width", v)
		}
	}
	return nil
}

// ring renders as a box-shadow spread, the closest plain-CSS equivalent
// of the upstream ring utilities.
func (p *borderParser) ring(body string) []stylesheet.Property {
	if rest, ok := strings.CutPrefix(body, "offset-"); ok {
		if v, ok := scale.OutlineWidth(rest); ok {
			return single("outline-offset", v)
		}
		return nil
	}
	if v, ok := scale.RingWidth(body); ok {
		return single("box-shadow", "0 0 0 "+v+" rgb(59 130 246 / 0.5)")
	}
	return nil
}
