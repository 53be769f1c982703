package parser

import (
	"strings"

	"github.com/aethelur/tailgen/internal/stylesheet"
)

// svgParser owns fill, stroke color and stroke width.
type svgParser struct{}

func (p *svgParser) Metadata() Metadata {
	return Metadata{
		Priority: 680,
		Category: CategorySVG,
		Patterns: []string{"fill-{color}", "stroke-{color}", "stroke-{w}"},
	}
}

var strokeWidths = map[string]string{
	"0": "0",
	"1": "1",
	"2": "2",
}

func (p *svgParser) TryParse(class string) []stylesheet.Property {
	if body, ok := strings.CutPrefix(class, "fill-"); ok {
		if body == "none" {
			return single("fill", "none")
		}
		if v, ok := colorValue(body); ok {
			return single("fill", v)
		}
		return nil
	}
	if body, ok := strings.CutPrefix(class, "stroke-"); ok {
		if body == "none" {
			return single("stroke", "none")
		}
		if v, ok := strokeWidths[body]; ok {
			return single("stroke-width", v)
		}
		if v, ok := colorValue(body); ok {
			return single("stroke", v)
		}
		return nil
	}
	return nil
}
