package parser

import (
	"strings"

	"github.com/aethelur/tailgen/internal/scale"
	"github.com/aethelur/tailgen/internal/stylesheet"
)

// layoutParser owns display, position, visibility, overflow, object
// fitting, z-index, floats, columns and aspect ratio.
type layoutParser struct{}

func (p *layoutParser) Metadata() Metadata {
	return Metadata{
		Priority: 860,
		Category: CategoryLayout,
		Patterns: []string{
			"block", "flex", "grid", "hidden", "inline*",
			"static|fixed|absolute|relative|sticky",
			"overflow-*", "object-*", "z-{n}", "float-*", "clear-*",
			"visible", "invisible", "isolate", "aspect-*", "columns-{n}",
			"box-border", "box-content",
		},
	}
}

// displayKeywords are exact-match classes mapping straight to display.
var displayKeywords = map[string]string{
	"block":              "block",
	"inline-block":       "inline-block",
	"inline":             "inline",
	"flex":               "flex",
	"inline-flex":        "inline-flex",
	"grid":               "grid",
	"inline-grid":        "inline-grid",
	"table":              "table",
	"inline-table":       "inline-table",
	"table-row":          "table-row",
	"table-cell":         "table-cell",
	"table-caption":      "table-caption",
	"table-column":       "table-column",
	"table-column-group": "table-column-group",
	"table-header-group": "table-header-group",
	"table-footer-group": "table-footer-group",
	"table-row-group":    "table-row-group",
	"flow-root":          "flow-root",
	"contents":           "contents",
	"list-item":          "list-item",
	"hidden":             "none",
}

var positionKeywords = map[string]string{
	"static":   "static",
	"fixed":    "fixed",
	"absolute": "absolute",
	"relative": "relative",
	"sticky":   "sticky",
}

var overflowKeywords = map[string]string{
	"auto":    "auto",
	"hidden":  "hidden",
	"clip":    "clip",
	"visible": "visible",
	"scroll":  "scroll",
}

var objectFitKeywords = map[string]string{
	"contain":    "contain",
	"cover":      "cover",
	"fill":       "fill",
	"none":       "none",
	"scale-down": "scale-down",
}

var objectPositionKeywords = map[string]string{
	"bottom":       "bottom",
	"center":       "center",
	"left":         "left",
	"left-bottom":  "left bottom",
	"left-top":     "left top",
	"right":        "right",
	"right-bottom": "right bottom",
	"right-top":    "right top",
	"top":          "top",
}

func (p *layoutParser) TryParse(class string) []stylesheet.Property {
	if v, ok := displayKeywords[class]; ok {
		return single("display", v)
	}
	if v, ok := positionKeywords[class]; ok {
		return single("position", v)
	}

	switch class {
	case "visible":
		return single("visibility", "visible")
	case "invisible":
		return single("visibility", "hidden")
	case "collapse":
		return single("visibility", "collapse")
	case "isolate":
		return single("isolation", "isolate")
	case "isolation-auto":
		return single("isolation", "auto")
	case "box-border":
		return single("box-sizing", "border-box")
	case "box-content":
		return single("box-sizing", "content-box")
	case "float-left":
		return single("float", "left")
	case "float-right":
		return single("float", "right")
	case "float-none":
		return single("float", "none")
	case "clear-left":
		return single("clear", "left")
	case "clear-right":
		return single("clear", "right")
	case "clear-both":
		return single("clear", "both")
	case "clear-none":
		return single("clear", "none")
	}

	if body, ok := strings.CutPrefix(class, "overflow-"); ok {
		if sub, rest, found := splitDash(body); found && (sub == "x" || sub == "y") {
			if v, ok := overflowKeywords[rest]; ok {
				return single("overflow-"+sub, v)
			}
			return nil
		}
		if v, ok := overflowKeywords[body]; ok {
			return single("overflow", v)
		}
		return nil
	}

	if body, ok := strings.CutPrefix(class, "object-"); ok {
		if v, ok := objectFitKeywords[body]; ok {
			return single("object-fit", v)
		}
		if v, ok := objectPositionKeywords[body]; ok {
			return single("object-position", v)
		}
		if v, ok := rawValue(body); ok {
			return single("object-position", v)
		}
		return nil
	}

	if body, ok := strings.CutPrefix(class, "z-"); ok {
		if v, ok := scale.ZIndex(body); ok {
			return single("z-index", v)
		}
		if v, ok := rawValue(body); ok {
			return single("z-index", v)
		}
		return nil
	}

	if body, ok := strings.CutPrefix(class, "aspect-"); ok {
		if v, ok := scale.AspectRatio(body); ok {
			return single("aspect-ratio", v)
		}
		if v, ok := rawValue(body); ok {
			return single("aspect-ratio", v)
		}
		return nil
	}

	if body, ok := strings.CutPrefix(class, "columns-"); ok {
		if v, ok := scale.GridLine(body); ok && v != "auto" {
			return single("columns", v)
		}
		if body == "auto" {
			return single("columns", "auto")
		}
		if v, ok := rawValue(body); ok {
			return single("columns", v)
		}
		return nil
	}

	return nil
}
