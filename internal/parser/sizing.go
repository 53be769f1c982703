package parser

import (
	"strings"

	"github.com/aethelur/tailgen/internal/scale"
	"github.com/aethelur/tailgen/internal/stylesheet"
)

// sizingParser owns width, height, size and the min/max variants.
type sizingParser struct{}

func (p *sizingParser) Metadata() Metadata {
	return Metadata{
		Priority: 640,
		Category: CategorySizing,
		Patterns: []string{
			"w-{n}", "h-{n}", "size-{n}", "w-1/2", "w-full", "w-screen",
			"min-w-{n}", "max-w-{size}", "min-h-{n}", "max-h-{n}",
		},
	}
}

var sizingKeywords = map[string]string{
	"auto": "auto",
	"min":  "min-content",
	"max":  "max-content",
	"fit":  "fit-content",
}

func (p *sizingParser) TryParse(class string) []stylesheet.Property {
	switch {
	case strings.HasPrefix(class, "min-w-"):
		return p.sized("min-width", class[len("min-w-"):], "")
	case strings.HasPrefix(class, "max-w-"):
		return p.maxWidth(class[len("max-w-"):])
	case strings.HasPrefix(class, "min-h-"):
		return p.sized("min-height", class[len("min-h-"):], "100vh")
	case strings.HasPrefix(class, "max-h-"):
		return p.sized("max-height", class[len("max-h-"):], "100vh")
	case strings.HasPrefix(class, "w-"):
		return p.sized("width", class[len("w-"):], "100vw")
	case strings.HasPrefix(class, "h-"):
		return p.sized("height", class[len("h-"):], "100vh")
	case strings.HasPrefix(class, "size-"):
		body := class[len("size-"):]
		if v, ok := p.value(body, ""); ok {
			return props("width", v, "height", v)
		}
	}
	return nil
}

func (p *sizingParser) sized(property, body, screen string) []stylesheet.Property {
	if v, ok := p.value(body, screen); ok {
		return single(property, v)
	}
	return nil
}

func (p *sizingParser) value(body, screen string) (string, bool) {
	if body == "" {
		return "", false
	}
	if body == "screen" && screen != "" {
		return screen, true
	}
	if v, ok := sizingKeywords[body]; ok {
		return v, true
	}
	if v, ok := scale.SpacingOrFraction(body); ok {
		return v, true
	}
	return rawValue(body)
}

func (p *sizingParser) maxWidth(body string) []stylesheet.Property {
	if v, ok := scale.MaxWidth(body); ok {
		return single("max-width", v)
	}
	if v, ok := scale.SpacingOrFraction(body); ok {
		return single("max-width", v)
	}
	if v, ok := rawValue(body); ok {
		return single("max-width", v)
	}
	return nil
}
