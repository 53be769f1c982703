package parser

import (
	"strings"

	"github.com/aethelur/tailgen/internal/scale"
	"github.com/aethelur/tailgen/internal/stylesheet"
)

// flexGridParser owns flexbox and grid utilities: direction, wrap, grow,
// shrink, basis, order, templates, spans and all alignment families.
type flexGridParser struct{}

func (p *flexGridParser) Metadata() Metadata {
	return Metadata{
		Priority: 840,
		Category: CategoryFlexGrid,
		Patterns: []string{
			"flex-row|col|wrap|nowrap", "flex-1|auto|initial|none",
			"grow", "shrink", "basis-{n}", "order-{n}",
			"grid-cols-{n}", "grid-rows-{n}", "col-span-{n}", "row-span-{n}",
			"grid-flow-*", "auto-cols-*", "auto-rows-*",
			"justify-*", "items-*", "content-*", "self-*", "place-*",
		},
	}
}

var flexKeywords = map[string][]stylesheet.Property{
	"flex-row":          single("flex-direction", "row"),
	"flex-row-reverse":  single("flex-direction", "row-reverse"),
	"flex-col":          single("flex-direction", "column"),
	"flex-col-reverse":  single("flex-direction", "column-reverse"),
	"flex-wrap":         single("flex-wrap", "wrap"),
	"flex-wrap-reverse": single("flex-wrap", "wrap-reverse"),
	"flex-nowrap":       single("flex-wrap", "nowrap"),
	"flex-1":            single("flex", "1 1 0%"),
	"flex-auto":         single("flex", "1 1 auto"),
	"flex-initial":      single("flex", "0 1 auto"),
	"flex-none":         single("flex", "none"),
	"grow":              single("flex-grow", "1"),
	"grow-0":            single("flex-grow", "0"),
	"shrink":            single("flex-shrink", "1"),
	"shrink-0":          single("flex-shrink", "0"),
}

var justifyKeywords = map[string]string{
	"normal":  "normal",
	"start":   "flex-start",
	"end":     "flex-end",
	"center":  "center",
	"between": "space-between",
	"around":  "space-around",
	"evenly":  "space-evenly",
	"stretch": "stretch",
}

var alignItemsKeywords = map[string]string{
	"start":    "flex-start",
	"end":      "flex-end",
	"center":   "center",
	"baseline": "baseline",
	"stretch":  "stretch",
}

var alignContentKeywords = map[string]string{
	"normal":   "normal",
	"start":    "flex-start",
	"end":      "flex-end",
	"center":   "center",
	"between":  "space-between",
	"around":   "space-around",
	"evenly":   "space-evenly",
	"baseline": "baseline",
	"stretch":  "stretch",
}

var alignSelfKeywords = map[string]string{
	"auto":     "auto",
	"start":    "flex-start",
	"end":      "flex-end",
	"center":   "center",
	"stretch":  "stretch",
	"baseline": "baseline",
}

var placeKeywords = map[string]string{
	"start":   "start",
	"end":     "end",
	"center":  "center",
	"between": "space-between",
	"around":  "space-around",
	"evenly":  "space-evenly",
	"baseline": "baseline",
	"stretch": "stretch",
	"auto":    "auto",
}

var gridFlowKeywords = map[string]string{
	"row":       "row",
	"col":       "column",
	"dense":     "dense",
	"row-dense": "row dense",
	"col-dense": "column dense",
}

var autoTrackKeywords = map[string]string{
	"auto": "auto",
	"min":  "min-content",
	"max":  "max-content",
	"fr":   "minmax(0, 1fr)",
}

func (p *flexGridParser) TryParse(class string) []stylesheet.Property {
	if out, ok := flexKeywords[class]; ok {
		return out
	}

	if body, ok := strings.CutPrefix(class, "basis-"); ok {
		if body == "auto" {
			return single("flex-basis", "auto")
		}
		if v, ok := scale.SpacingOrFraction(body); ok {
			return single("flex-basis", v)
		}
		if v, ok := rawValue(body); ok {
			return single("flex-basis", v)
		}
		return nil
	}

	if body, ok := strings.CutPrefix(class, "order-"); ok {
		if v, ok := scale.Order(body); ok {
			return single("order", v)
		}
		if v, ok := rawValue(body); ok {
			return single("order", v)
		}
		return nil
	}

	if body, ok := strings.CutPrefix(class, "flex-"); ok {
		// Remaining flex-* forms are arbitrary: flex-[2_2_0%].
		if v, ok := rawValue(body); ok {
			return single("flex", v)
		}
		return nil
	}

	if body, ok := strings.CutPrefix(class, "grid-cols-"); ok {
		return p.template("grid-template-columns", body)
	}
	if body, ok := strings.CutPrefix(class, "grid-rows-"); ok {
		return p.template("grid-template-rows", body)
	}
	if body, ok := strings.CutPrefix(class, "grid-flow-"); ok {
		if v, ok := gridFlowKeywords[body]; ok {
			return single("grid-auto-flow", v)
		}
		return nil
	}
	if body, ok := strings.CutPrefix(class, "auto-cols-"); ok {
		return p.autoTrack("grid-auto-columns", body)
	}
	if body, ok := strings.CutPrefix(class, "auto-rows-"); ok {
		return p.autoTrack("grid-auto-rows", body)
	}

	if props := p.gridPlacement(class, "col"); props != nil {
		return props
	}
	if props := p.gridPlacement(class, "row"); props != nil {
		return props
	}

	if body, ok := strings.CutPrefix(class, "justify-items-"); ok {
		if v, ok := placeKeywords[body]; ok {
			return single("justify-items", v)
		}
		return nil
	}
	if body, ok := strings.CutPrefix(class, "justify-self-"); ok {
		if v, ok := placeKeywords[body]; ok {
			return single("justify-self", v)
		}
		return nil
	}
	if body, ok := strings.CutPrefix(class, "justify-"); ok {
		if v, ok := justifyKeywords[body]; ok {
			return single("justify-content", v)
		}
		return nil
	}
	if body, ok := strings.CutPrefix(class, "items-"); ok {
		if v, ok := alignItemsKeywords[body]; ok {
			return single("align-items", v)
		}
		return nil
	}
	if body, ok := strings.CutPrefix(class, "content-"); ok {
		if v, ok := alignContentKeywords[body]; ok {
			return single("align-content", v)
		}
		return nil
	}
	if body, ok := strings.CutPrefix(class, "self-"); ok {
		if v, ok := alignSelfKeywords[body]; ok {
			return single("align-self", v)
		}
		return nil
	}
	if body, ok := strings.CutPrefix(class, "place-content-"); ok {
		if v, ok := placeKeywords[body]; ok {
			return single("place-content", v)
		}
		return nil
	}
	if body, ok := strings.CutPrefix(class, "place-items-"); ok {
		if v, ok := placeKeywords[body]; ok {
			return single("place-items", v)
		}
		return nil
	}
	if body, ok := strings.CutPrefix(class, "place-self-"); ok {
		if v, ok := placeKeywords[body]; ok {
			return single("place-self", v)
		}
		return nil
	}

	return nil
}

func (p *flexGridParser) template(property, body string) []stylesheet.Property {
	if v, ok := scale.GridTemplate(body); ok {
		return single(property, v)
	}
	if v, ok := rawValue(body); ok {
		return single(property, v)
	}
	return nil
}

func (p *flexGridParser) autoTrack(property, body string) []stylesheet.Property {
	if v, ok := autoTrackKeywords[body]; ok {
		return single(property, v)
	}
	if v, ok := rawValue(body); ok {
		return single(property, v)
	}
	return nil
}

// gridPlacement handles col-span/col-start/col-end and the row twins.
func (p *flexGridParser) gridPlacement(class, axis string) []stylesheet.Property {
	property := "grid-column"
	if axis == "row" {
		property = "grid-row"
	}
	if body, ok := strings.CutPrefix(class, axis+"-span-"); ok {
		if v, ok := scale.GridSpan(body); ok {
			return single(property, v)
		}
		return nil
	}
	if body, ok := strings.CutPrefix(class, axis+"-start-"); ok {
		if v, ok := scale.GridLine(body); ok {
			return single(property+"-start", v)
		}
		return nil
	}
	if body, ok := strings.CutPrefix(class, axis+"-end-"); ok {
		if v, ok := scale.GridLine(body); ok {
			return single(property+"-end", v)
		}
		return nil
	}
	if class == axis+"-auto" {
		return single(property, "auto")
	}
	return nil
}
