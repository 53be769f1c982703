package parser

import (
	"strings"

	"github.com/aethelur/tailgen/internal/scale"
	"github.com/aethelur/tailgen/internal/stylesheet"
)

// spacingParser owns padding, margin, gap, space-between and inset
// utilities. Margin and inset accept the leading "-" negative marker.
type spacingParser struct{}

func (p *spacingParser) Metadata() Metadata {
	return Metadata{
		Priority: 620,
		Category: CategorySpacing,
		Patterns: []string{
			"p-{n}", "px-{n}", "py-{n}", "pt|pr|pb|pl|ps|pe-{n}",
			"m-{n}", "mx-{n}", "my-{n}", "mt|mr|mb|ml|ms|me-{n}", "-m*-{n}",
			"space-x-{n}", "space-y-{n}", "gap-{n}", "gap-x-{n}", "gap-y-{n}",
			"inset-{n}", "top|right|bottom|left-{n}", "start|end-{n}",
		},
	}
}

// paddingProps maps the padding shorthand prefixes to their properties.
var paddingProps = map[string][]string{
	"p":  {"padding"},
	"px": {"padding-left", "padding-right"},
	"py": {"padding-top", "padding-bottom"},
	"pt": {"padding-top"},
	"pr": {"padding-right"},
	"pb": {"padding-bottom"},
	"pl": {"padding-left"},
	"ps": {"padding-inline-start"},
	"pe": {"padding-inline-end"},
}

var marginProps = map[string][]string{
	"m":  {"margin"},
	"mx": {"margin-left", "margin-right"},
	"my": {"margin-top", "margin-bottom"},
	"mt": {"margin-top"},
	"mr": {"margin-right"},
	"mb": {"margin-bottom"},
	"ml": {"margin-left"},
	"ms": {"margin-inline-start"},
	"me": {"margin-inline-end"},
}

var insetProps = map[string][]string{
	"inset":   {"top", "right", "bottom", "left"},
	"inset-x": {"left", "right"},
	"inset-y": {"top", "bottom"},
	"top":     {"top"},
	"right":   {"right"},
	"bottom":  {"bottom"},
	"left":    {"left"},
	"start":   {"inset-inline-start"},
	"end":     {"inset-inline-end"},
}

func (p *spacingParser) TryParse(class string) []stylesheet.Property {
	negative := false
	if strings.HasPrefix(class, "-") {
		negative = true
		class = class[1:]
	}

	prefix, body, ok := splitDash(class)
	if !ok {
		return nil
	}

	if names, ok := paddingProps[prefix]; ok && !negative {
		if v, ok := spacingValue(body, false); ok {
			return expand(names, v)
		}
		return nil
	}
	if names, ok := marginProps[prefix]; ok {
		v, ok := spacingValue(body, true)
		if v, ok = negate(v, ok, negative); ok {
			return expand(names, v)
		}
		return nil
	}

	switch prefix {
	case "gap":
		if negative {
			return nil
		}
		if sub, rest, ok := splitDash(body); ok && (sub == "x" || sub == "y") {
			if v, ok := spacingValue(rest, false); ok {
				if sub == "x" {
					return single("column-gap", v)
				}
				return single("row-gap", v)
			}
			return nil
		}
		if v, ok := spacingValue(body, false); ok {
			return single("gap", v)
		}
		return nil
	case "space":
		if negative {
			return nil
		}
		// space-x / space-y emit plain margins on the element itself; the
		// sibling-combinator form upstream uses is out of reach for a
		// flat property list and the flat form covers the common layouts.
		sub, rest, ok := splitDash(body)
		if !ok {
			return nil
		}
		if v, valid := spacingValue(rest, false); valid {
			if sub == "x" {
				return single("margin-left", v)
			}
			if sub == "y" {
				return single("margin-top", v)
			}
		}
		return nil
	}

	// inset-x-4 / inset-y-4 need the compound prefix re-joined.
	if prefix == "inset" {
		names := insetProps["inset"]
		if sub, rest, ok := splitDash(body); ok && (sub == "x" || sub == "y") {
			names = insetProps["inset-"+sub]
			body = rest
		}
		v, ok := insetValue(body)
		if v, ok = negate(v, ok, negative); ok {
			return expand(names, v)
		}
		return nil
	}
	if names, ok := insetProps[prefix]; ok {
		v, valid := insetValue(body)
		if v, valid = negate(v, valid, negative); valid {
			return expand(names, v)
		}
		return nil
	}

	return nil
}

// spacingValue resolves a spacing body: scale token, "auto" where
// allowed, arbitrary value or custom property.
func spacingValue(body string, allowAuto bool) (string, bool) {
	if body == "" {
		return "", false
	}
	if body == "auto" {
		return "auto", allowAuto
	}
	if v, ok := scale.Spacing(body); ok {
		return v, true
	}
	return rawValue(body)
}

// insetValue additionally accepts fractions and "full"/"auto".
func insetValue(body string) (string, bool) {
	if body == "auto" {
		return "auto", true
	}
	if v, ok := scale.SpacingOrFraction(body); ok {
		return v, true
	}
	return rawValue(body)
}

func expand(names []string, value string) []stylesheet.Property {
	out := make([]stylesheet.Property, 0, len(names))
	for _, n := range names {
		out = append(out, stylesheet.Property{Name: n, Value: value})
	}
	return out
}

// negate prefixes a resolved length with "-" for negative utilities.
// Zero stays zero; keywords and var() references refuse negation.
func negate(value string, ok bool, negative bool) (string, bool) {
	if !ok {
		return "", false
	}
	if !negative || value == "0px" || value == "0" {
		return value, true
	}
	if value == "auto" || strings.HasPrefix(value, "var(") {
		return "", false
	}
	return "-" + value, true
}

// splitDash splits "p-4" into ("p", "4"). Returns false when there is no
// dash or the prefix is empty.
func splitDash(s string) (string, string, bool) {
	i := strings.IndexByte(s, '-')
	if i <= 0 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}
