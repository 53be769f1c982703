package parser

import (
	"strings"

	"github.com/aethelur/tailgen/internal/stylesheet"
)

// colorParser owns every palette-driven color family: backgrounds, text,
// borders, outline, divide, decoration, accent and caret. It runs after
// the structural parsers so keyword collisions (border-2, text-lg,
// outline-dashed) are already resolved.
type colorParser struct{}

func (p *colorParser) Metadata() Metadata {
	return Metadata{
		Priority: 660,
		Category: CategoryColors,
		Patterns: []string{
			"bg-{color}[/NN]", "text-{color}[/NN]", "border-{color}[/NN]",
			"border-x|y|t|r|b|l-{color}", "outline-{color}", "divide-{color}",
			"decoration-{color}", "accent-{color}", "caret-{color}",
		},
	}
}

// families maps class prefixes to target properties, tried in order so
// longer prefixes win ("border-t-" before "border-").
var colorFamilies = []struct {
	prefix   string
	property string
}{
	{"bg-", "background-color"},
	{"text-", "color"},
	{"border-x-", "border-left-color"}, // paired below
	{"border-y-", "border-top-color"},
	{"border-t-", "border-top-color"},
	{"border-r-", "border-right-color"},
	{"border-b-", "border-bottom-color"},
	{"border-l-", "border-left-color"},
	{"border-", "border-color"},
	{"outline-", "outline-color"},
	{"divide-", "border-color"},
	{"decoration-", "text-decoration-color"},
	{"accent-", "accent-color"},
	{"caret-", "caret-color"},
}

func (p *colorParser) TryParse(class string) []stylesheet.Property {
	for _, fam := range colorFamilies {
		body, ok := strings.CutPrefix(class, fam.prefix)
		if !ok || body == "" {
			continue
		}
		v, ok := colorValue(body)
		if !ok {
			// The prefix matched but the body is not a color; keep trying
			// shorter prefixes (border-t-2 falls through to nothing here
			// and the borders parser has already had its chance).
			continue
		}
		switch fam.prefix {
		case "border-x-":
			return props("border-left-color", v, "border-right-color", v)
		case "border-y-":
			return props("border-top-color", v, "border-bottom-color", v)
		default:
			return single(fam.property, v)
		}
	}
	return nil
}
