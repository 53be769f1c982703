package parser

import (
	"strings"

	"github.com/aethelur/tailgen/internal/scale"
	"github.com/aethelur/tailgen/internal/stylesheet"
)

// tableParser owns table layout utilities.
type tableParser struct{}

func (p *tableParser) Metadata() Metadata {
	return Metadata{
		Priority: 880,
		Category: CategoryTables,
		Patterns: []string{
			"border-collapse", "border-separate", "border-spacing-{n}",
			"table-auto", "table-fixed", "caption-top", "caption-bottom",
		},
	}
}

func (p *tableParser) TryParse(class string) []stylesheet.Property {
	switch class {
	case "border-collapse":
		return single("border-collapse", "collapse")
	case "border-separate":
		return single("border-collapse", "separate")
	case "table-auto":
		return single("table-layout", "auto")
	case "table-fixed":
		return single("table-layout", "fixed")
	case "caption-top":
		return single("caption-side", "top")
	case "caption-bottom":
		return single("caption-side", "bottom")
	}

	if body, ok := strings.CutPrefix(class, "border-spacing-"); ok {
		if sub, rest, found := splitDash(body); found && (sub == "x" || sub == "y") {
			if v, ok := scale.Spacing(rest); ok {
				if sub == "x" {
					return single("border-spacing", v+" 0")
				}
				return single("border-spacing", "0 "+v)
			}
			return nil
		}
		if v, ok := scale.Spacing(body); ok {
			return single("border-spacing", v)
		}
		if v, ok := rawValue(body); ok {
			return single("border-spacing", v)
		}
		return nil
	}

	return nil
}
