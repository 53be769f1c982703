// Package parser holds the utility parsers: one per CSS property family,
// each recognizing its class-name patterns and emitting declarations.
// Parsers are pure functions over their static tables; "not my family" is
// a nil return, never an error. The registry tries parsers in descending
// priority order and stops at the first match.
package parser

import (
	"sort"

	"github.com/aethelur/tailgen/internal/stylesheet"
)

// Category tags a parser family for config toggles and diagnostics.
type Category string

const (
	CategoryAccessibility Category = "accessibility"
	CategoryTables        Category = "tables"
	CategoryLayout        Category = "layout"
	CategoryFlexGrid      Category = "flexgrid"
	CategoryTransitions   Category = "transitions"
	CategoryTransforms    Category = "transforms"
	CategoryFilters       Category = "filters"
	CategoryEffects       Category = "effects"
	CategoryBackgrounds   Category = "backgrounds"
	CategoryBorders       Category = "borders"
	CategoryTypography    Category = "typography"
	CategorySVG           Category = "svg"
	CategoryColors        Category = "colors"
	CategorySizing        Category = "sizing"
	CategorySpacing       Category = "spacing"
	CategoryInteractivity Category = "interactivity"
)

// Categories lists every parser category.
var Categories = []Category{
	CategoryAccessibility,
	CategoryTables,
	CategoryLayout,
	CategoryFlexGrid,
	CategoryTransitions,
	CategoryTransforms,
	CategoryFilters,
	CategoryEffects,
	CategoryBackgrounds,
	CategoryBorders,
	CategoryTypography,
	CategorySVG,
	CategoryColors,
	CategorySizing,
	CategorySpacing,
	CategoryInteractivity,
}

// Metadata describes a parser for dispatch ordering and diagnostics.
// Static, set at construction, never mutated.
type Metadata struct {
	Priority uint32
	Category Category
	Patterns []string
}

// UtilityParser recognizes one family of class-name patterns. TryParse
// returns nil for anything outside the family; it must never panic, even
// on adversarial input.
type UtilityParser interface {
	TryParse(class string) []stylesheet.Property
	Metadata() Metadata
}

// Registry is the ordered parser collection for one session.
type Registry struct {
	parsers []UtilityParser
}

// NewRegistry builds every parser whose category the enabled func admits
// (nil enables all) and orders them by descending priority. Registration
// order breaks priority ties, so construction is deterministic.
func NewRegistry(enabled func(Category) bool) *Registry {
	all := []UtilityParser{
		&accessibilityParser{},
		&tableParser{},
		&layoutParser{},
		&flexGridParser{},
		&transitionParser{},
		&transformParser{},
		&filterParser{},
		&effectsParser{},
		&backgroundParser{},
		&borderParser{},
		&typographyParser{},
		&svgParser{},
		&colorParser{},
		&sizingParser{},
		&spacingParser{},
		&interactivityParser{},
	}

	r := &Registry{}
	for _, p := range all {
		if enabled == nil || enabled(p.Metadata().Category) {
			r.parsers = append(r.parsers, p)
		}
	}
	sort.SliceStable(r.parsers, func(i, j int) bool {
		return r.parsers[i].Metadata().Priority > r.parsers[j].Metadata().Priority
	})
	return r
}

// Parse tries every registered parser in priority order; first match wins.
func (r *Registry) Parse(class string) []stylesheet.Property {
	for _, p := range r.parsers {
		if props := p.TryParse(class); props != nil {
			return props
		}
	}
	return nil
}

// Parsers returns the registered parsers in dispatch order.
func (r *Registry) Parsers() []UtilityParser {
	return r.parsers
}

// props is a small constructor shorthand used across the parser files.
func props(pairs ...string) []stylesheet.Property {
	out := make([]stylesheet.Property, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, stylesheet.Property{Name: pairs[i], Value: pairs[i+1]})
	}
	return out
}

func single(name, value string) []stylesheet.Property {
	return []stylesheet.Property{{Name: name, Value: value}}
}
