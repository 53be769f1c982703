package parser

import (
	"strings"

	"github.com/aethelur/tailgen/internal/stylesheet"
)

// interactivityParser owns cursor, user-select, pointer-events, resize,
// scroll behavior and margins/padding, touch-action, will-change and
// appearance.
type interactivityParser struct{}

func (p *interactivityParser) Metadata() Metadata {
	return Metadata{
		Priority: 600,
		Category: CategoryInteractivity,
		Patterns: []string{
			"cursor-{kind}", "select-{mode}", "pointer-events-*", "resize*",
			"scroll-auto|smooth", "scroll-m*-{n}", "scroll-p*-{n}",
			"touch-*", "will-change-*", "appearance-none",
		},
	}
}

var cursorKeywords = map[string]string{
	"auto":         "auto",
	"default":      "default",
	"pointer":      "pointer",
	"wait":         "wait",
	"text":         "text",
	"move":         "move",
	"help":         "help",
	"not-allowed":  "not-allowed",
	"none":         "none",
	"context-menu": "context-menu",
	"progress":     "progress",
	"cell":         "cell",
	"crosshair":    "crosshair",
	"grab":         "grab",
	"grabbing":     "grabbing",
	"zoom-in":      "zoom-in",
	"zoom-out":     "zoom-out",
	"col-resize":   "col-resize",
	"row-resize":   "row-resize",
}

var selectKeywords = map[string]string{
	"none": "none",
	"text": "text",
	"all":  "all",
	"auto": "auto",
}

var touchKeywords = map[string]string{
	"auto":         "auto",
	"none":         "none",
	"pan-x":        "pan-x",
	"pan-left":     "pan-left",
	"pan-right":    "pan-right",
	"pan-y":        "pan-y",
	"pan-up":       "pan-up",
	"pan-down":     "pan-down",
	"pinch-zoom":   "pinch-zoom",
	"manipulation": "manipulation",
}

var willChangeKeywords = map[string]string{
	"auto":      "auto",
	"scroll":    "scroll-position",
	"contents":  "contents",
	"transform": "transform",
}

func (p *interactivityParser) TryParse(class string) []stylesheet.Property {
	switch class {
	case "resize-none":
		return single("resize", "none")
	case "resize-y":
		return single("resize", "vertical")
	case "resize-x":
		return single("resize", "horizontal")
	case "resize":
		return single("resize", "both")
	case "scroll-auto":
		return single("scroll-behavior", "auto")
	case "scroll-smooth":
		return single("scroll-behavior", "smooth")
	case "appearance-none":
		return single("appearance", "none")
	case "pointer-events-none":
		return single("pointer-events", "none")
	case "pointer-events-auto":
		return single("pointer-events", "auto")
	}

	if body, ok := strings.CutPrefix(class, "cursor-"); ok {
		if v, ok := cursorKeywords[body]; ok {
			return single("cursor", v)
		}
		if v, ok := rawValue(body); ok {
			return single("cursor", v)
		}
		return nil
	}
	if body, ok := strings.CutPrefix(class, "select-"); ok {
		if v, ok := selectKeywords[body]; ok {
			return single("user-select", v)
		}
		return nil
	}
	if body, ok := strings.CutPrefix(class, "touch-"); ok {
		if v, ok := touchKeywords[body]; ok {
			return single("touch-action", v)
		}
		return nil
	}
	if body, ok := strings.CutPrefix(class, "will-change-"); ok {
		if v, ok := willChangeKeywords[body]; ok {
			return single("will-change", v)
		}
		if v, ok := rawValue(body); ok {
			return single("will-change", v)
		}
		return nil
	}

	// scroll-m / scroll-p mirror the margin and padding shorthands.
	if body, ok := strings.CutPrefix(class, "scroll-"); ok {
		if prefix, rest, found := splitDash(body); found {
			if names, ok := marginProps[prefix]; ok {
				if v, ok := spacingValue(rest, false); ok {
					return expand(scrollPrefixed(names, "scroll-"), v)
				}
				return nil
			}
			if names, ok := paddingProps[prefix]; ok {
				if v, ok := spacingValue(rest, false); ok {
					return expand(scrollPrefixed(names, "scroll-"), v)
				}
				return nil
			}
		}
		return nil
	}

	return nil
}

// scrollPrefixed turns margin/padding property names into their
// scroll-margin/scroll-padding counterparts.
func scrollPrefixed(names []string, prefix string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = prefix + n
	}
	return out
}
