package parser

import (
	"strings"

	"github.com/aethelur/tailgen/internal/scale"
	"github.com/aethelur/tailgen/internal/stylesheet"
)

// transformParser owns scale, rotate, translate, skew and
// transform-origin. Each utility emits a complete transform value;
// composition across utilities is cascade-resolved.
type transformParser struct{}

func (p *transformParser) Metadata() Metadata {
	return Metadata{
		Priority: 800,
		Category: CategoryTransforms,
		Patterns: []string{
			"scale-{n}", "scale-x|y-{n}", "rotate-{deg}", "-rotate-{deg}",
			"translate-x|y-{n}", "-translate-x|y-{n}", "skew-x|y-{deg}",
			"origin-{pos}", "transform-none",
		},
	}
}

var scaleSteps = map[string]string{
	"0":   "0",
	"50":  ".5",
	"75":  ".75",
	"90":  ".9",
	"95":  ".95",
	"100": "1",
	"105": "1.05",
	"110": "1.1",
	"125": "1.25",
	"150": "1.5",
}

var rotateSteps = map[string]string{
	"0":   "0deg",
	"1":   "1deg",
	"2":   "2deg",
	"3":   "3deg",
	"6":   "6deg",
	"12":  "12deg",
	"45":  "45deg",
	"90":  "90deg",
	"180": "180deg",
}

var skewSteps = map[string]string{
	"0":  "0deg",
	"1":  "1deg",
	"2":  "2deg",
	"3":  "3deg",
	"6":  "6deg",
	"12": "12deg",
}

var originKeywords = map[string]string{
	"center":       "center",
	"top":          "top",
	"top-right":    "top right",
	"right":        "right",
	"bottom-right": "bottom right",
	"bottom":       "bottom",
	"bottom-left":  "bottom left",
	"left":         "left",
	"top-left":     "top left",
}

func (p *transformParser) TryParse(class string) []stylesheet.Property {
	if class == "transform-none" {
		return single("transform", "none")
	}
	if class == "transform-gpu" {
		return single("transform", "translateZ(0)")
	}

	negative := false
	if strings.HasPrefix(class, "-") {
		negative = true
		class = class[1:]
	}

	if body, ok := strings.CutPrefix(class, "origin-"); ok {
		if negative {
			return nil
		}
		if v, ok := originKeywords[body]; ok {
			return single("transform-origin", v)
		}
		if v, ok := rawValue(body); ok {
			return single("transform-origin", v)
		}
		return nil
	}

	if body, ok := strings.CutPrefix(class, "scale-"); ok {
		if negative {
			return nil
		}
		axis, rest := axisSplit(body)
		v, ok := scaleSteps[rest]
		if !ok {
			if v, ok = rawValue(rest); !ok {
				return nil
			}
		}
		switch axis {
		case "x":
			return single("transform", "scaleX("+v+")")
		case "y":
			return single("transform", "scaleY("+v+")")
		default:
			return single("transform", "scale("+v+")")
		}
	}

	if body, ok := strings.CutPrefix(class, "rotate-"); ok {
		v, ok := rotateSteps[body]
		if !ok {
			if v, ok = rawValue(body); !ok {
				return nil
			}
		}
		if negative {
			v = "-" + v
		}
		return single("transform", "rotate("+v+")")
	}

	if body, ok := strings.CutPrefix(class, "translate-"); ok {
		axis, rest := axisSplit(body)
		if axis == "" {
			return nil
		}
		v, ok := scale.SpacingOrFraction(rest)
		if !ok {
			if v, ok = rawValue(rest); !ok {
				return nil
			}
		}
		if negative {
			v = "-" + v
		}
		if axis == "x" {
			return single("transform", "translateX("+v+")")
		}
		return single("transform", "translateY("+v+")")
	}

	if body, ok := strings.CutPrefix(class, "skew-"); ok {
		axis, rest := axisSplit(body)
		if axis == "" {
			return nil
		}
		v, ok := skewSteps[rest]
		if !ok {
			if v, ok = rawValue(rest); !ok {
				return nil
			}
		}
		if negative {
			v = "-" + v
		}
		if axis == "x" {
			return single("transform", "skewX("+v+")")
		}
		return single("transform", "skewY("+v+")")
	}

	return nil
}

// axisSplit separates an optional leading "x-"/"y-" axis marker.
func axisSplit(body string) (string, string) {
	if rest, ok := strings.CutPrefix(body, "x-"); ok {
		return "x", rest
	}
	if rest, ok := strings.CutPrefix(body, "y-"); ok {
		return "y", rest
	}
	return "", body
}
