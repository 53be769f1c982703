package parser

import (
	"strings"

	"github.com/aethelur/tailgen/internal/scale"
	"github.com/aethelur/tailgen/internal/stylesheet"
)

// effectsParser owns box shadows, opacity and blend modes. Shadow
// handling is consolidated here: presets, arbitrary values and nothing
// else (the historical second shadow table is gone).
type effectsParser struct{}

func (p *effectsParser) Metadata() Metadata {
	return Metadata{
		Priority: 760,
		Category: CategoryEffects,
		Patterns: []string{
			"shadow", "shadow-{preset}", "shadow-[...]",
			"opacity-{n}", "mix-blend-{mode}", "bg-blend-{mode}",
		},
	}
}

var blendModes = map[string]string{
	"normal":      "normal",
	"multiply":    "multiply",
	"screen":      "screen",
	"overlay":     "overlay",
	"darken":      "darken",
	"lighten":     "lighten",
	"color-dodge": "color-dodge",
	"color-burn":  "color-burn",
	"hard-light":  "hard-light",
	"soft-light":  "soft-light",
	"difference":  "difference",
	"exclusion":   "exclusion",
	"hue":         "hue",
	"saturation":  "saturation",
	"color":       "color",
	"luminosity":  "luminosity",
}

func (p *effectsParser) TryParse(class string) []stylesheet.Property {
	if class == "shadow" {
		v, _ := scale.BoxShadow("")
		return single("box-shadow", v)
	}
	if body, ok := strings.CutPrefix(class, "shadow-"); ok {
		if v, ok := scale.BoxShadow(body); ok {
			return single("box-shadow", v)
		}
		if isWrapped(body) {
			if v, ok := rawValue(body); ok {
				return single("box-shadow", v)
			}
		}
		return nil
	}
	if body, ok := strings.CutPrefix(class, "opacity-"); ok {
		if v, ok := scale.Opacity(body); ok {
			return single("opacity", v)
		}
		if v, ok := rawValue(body); ok {
			return single("opacity", v)
		}
		return nil
	}
	if body, ok := strings.CutPrefix(class, "mix-blend-"); ok {
		if v, ok := blendModes[body]; ok {
			return single("mix-blend-mode", v)
		}
		return nil
	}
	if body, ok := strings.CutPrefix(class, "bg-blend-"); ok {
		if v, ok := blendModes[body]; ok {
			return single("background-blend-mode", v)
		}
		return nil
	}
	return nil
}
