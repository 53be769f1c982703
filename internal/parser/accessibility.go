package parser

import "github.com/aethelur/tailgen/internal/stylesheet"

// accessibilityParser owns the screen-reader visibility utilities.
type accessibilityParser struct{}

func (p *accessibilityParser) Metadata() Metadata {
	return Metadata{
		Priority: 900,
		Category: CategoryAccessibility,
		Patterns: []string{"sr-only", "not-sr-only"},
	}
}

func (p *accessibilityParser) TryParse(class string) []stylesheet.Property {
	switch class {
	case "sr-only":
		return props(
			"position", "absolute",
			"width", "1px",
			"height", "1px",
			"padding", "0",
			"margin", "-1px",
			"overflow", "hidden",
			"clip", "rect(0, 0, 0, 0)",
			"white-space", "nowrap",
			"border-width", "0",
		)
	case "not-sr-only":
		return props(
			"position", "static",
			"width", "auto",
			"height", "auto",
			"padding", "0",
			"margin", "0",
			"overflow", "visible",
			"clip", "auto",
			"white-space", "normal",
		)
	}
	return nil
}
