package parser

import (
	"strings"

	"github.com/aethelur/tailgen/internal/scale"
	"github.com/aethelur/tailgen/internal/stylesheet"
)

// filterParser owns filter and backdrop-filter utilities. Each class
// emits a complete filter value; stacking multiple filter utilities on
// one element composes through the cascade (last wins), the deliberate
// simplification over upstream's variable pipeline.
type filterParser struct{}

func (p *filterParser) Metadata() Metadata {
	return Metadata{
		Priority: 780,
		Category: CategoryFilters,
		Patterns: []string{
			"blur-{s}", "brightness-{n}", "contrast-{n}", "grayscale",
			"hue-rotate-{deg}", "invert", "saturate-{n}", "sepia",
			"drop-shadow-{s}", "backdrop-blur-{s}", "backdrop-*",
		},
	}
}

var percentageSteps = map[string]string{
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
	"200": "2",
}

var hueSteps = map[string]string{
	"0":   "0deg",
	"15":  "15deg",
	"30":  "30deg",
	"60":  "60deg",
	"90":  "90deg",
	"180": "180deg",
}

func (p *filterParser) TryParse(class string) []stylesheet.Property {
	if body, ok := strings.CutPrefix(class, "backdrop-"); ok {
		if fn, ok := p.filterValue(body); ok {
			return single("backdrop-filter", fn)
		}
		return nil
	}
	if fn, ok := p.filterValue(class); ok {
		return single("filter", fn)
	}
	if class == "filter-none" {
		return single("filter", "none")
	}
	return nil
}

// filterValue maps one utility body to a filter function string.
func (p *filterParser) filterValue(class string) (string, bool) {
	switch class {
	case "grayscale":
		return "grayscale(100%)", true
	case "grayscale-0":
		return "grayscale(0)", true
	case "invert":
		return "invert(100%)", true
	case "invert-0":
		return "invert(0)", true
	case "sepia":
		return "sepia(100%)", true
	case "sepia-0":
		return "sepia(0)", true
	case "blur":
		v, _ := scale.Blur("")
		return "blur(" + v + ")", true
	}

	if body, ok := strings.CutPrefix(class, "blur-"); ok {
		if v, ok := scale.Blur(body); ok {
			return "blur(" + v + ")", true
		}
		if v, ok := rawValue(body); ok {
			return "blur(" + v + ")", true
		}
		return "", false
	}
	if body, ok := strings.CutPrefix(class, "brightness-"); ok {
		return p.percentage("brightness", body)
	}
	if body, ok := strings.CutPrefix(class, "contrast-"); ok {
		return p.percentage("contrast", body)
	}
	if body, ok := strings.CutPrefix(class, "saturate-"); ok {
		return p.percentage("saturate", body)
	}
	if body, ok := strings.CutPrefix(class, "hue-rotate-"); ok {
		if v, ok := hueSteps[body]; ok {
			return "hue-rotate(" + v + ")", true
		}
		if v, ok := rawValue(body); ok {
			return "hue-rotate(" + v + ")", true
		}
		return "", false
	}
	if body, ok := strings.CutPrefix(class, "drop-shadow-"); ok {
		if v, ok := scale.DropShadow(body); ok {
			return v, true
		}
		if v, ok := rawValue(body); ok {
			return "drop-shadow(" + v + ")", true
		}
		return "", false
	}
	if class == "drop-shadow" {
		v, _ := scale.DropShadow("")
		return v, true
	}

	return "", false
}

func (p *filterParser) percentage(fn, body string) (string, bool) {
	if v, ok := percentageSteps[body]; ok {
		return fn + "(" + v + ")", true
	}
	if v, ok := rawValue(body); ok {
		return fn + "(" + v + ")", true
	}
	return "", false
}
