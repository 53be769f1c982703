package tailgen

import "github.com/aethelur/tailgen/internal/parser"

// Config is the flat toggle set for one generation session. Category
// fields deactivate whole parser families; output fields steer the
// serializer. A Config is read-only during a pass and may be swapped
// wholesale between passes via Generator.SetConfig.
type Config struct {
	// Utility categories. All enabled in DefaultConfig.
	Accessibility bool
	Tables        bool
	Layout        bool
	FlexGrid      bool
	Transitions   bool
	Transforms    bool
	Filters       bool
	Effects       bool
	Backgrounds   bool
	Borders       bool
	Typography    bool
	SVG           bool
	Colors        bool
	Sizing        bool
	Spacing       bool
	Interactivity bool

	// Output options.
	Minify             bool
	TreeShakeKeyframes bool
	SourceMaps         bool // accepted, not yet acted on
}

// DefaultConfig enables every utility category with pretty output.
func DefaultConfig() Config {
	return Config{
		Accessibility: true,
		Tables:        true,
		Layout:        true,
		FlexGrid:      true,
		Transitions:   true,
		Transforms:    true,
		Filters:       true,
		Effects:       true,
		Backgrounds:   true,
		Borders:       true,
		Typography:    true,
		SVG:           true,
		Colors:        true,
		Sizing:        true,
		Spacing:       true,
		Interactivity: true,
	}
}

// Validate rejects configurations no session could do useful work with.
func (c Config) Validate() error {
	any := false
	for _, cat := range parser.Categories {
		if c.categoryEnabled(cat) {
			any = true
			break
		}
	}
	if !any {
		return &ConfigError{Reason: "every utility category is disabled"}
	}
	if c.SourceMaps && c.Minify {
		return &ConfigError{Reason: "source maps are not available for minified output"}
	}
	return nil
}

func (c Config) categoryEnabled(cat parser.Category) bool {
	switch cat {
	case parser.CategoryAccessibility:
		return c.Accessibility
	case parser.CategoryTables:
		return c.Tables
	case parser.CategoryLayout:
		return c.Layout
	case parser.CategoryFlexGrid:
		return c.FlexGrid
	case parser.CategoryTransitions:
		return c.Transitions
	case parser.CategoryTransforms:
		return c.Transforms
	case parser.CategoryFilters:
		return c.Filters
	case parser.CategoryEffects:
		return c.Effects
	case parser.CategoryBackgrounds:
		return c.Backgrounds
	case parser.CategoryBorders:
		return c.Borders
	case parser.CategoryTypography:
		return c.Typography
	case parser.CategorySVG:
		return c.SVG
	case parser.CategoryColors:
		return c.Colors
	case parser.CategorySizing:
		return c.Sizing
	case parser.CategorySpacing:
		return c.Spacing
	case parser.CategoryInteractivity:
		return c.Interactivity
	}
	return false
}
