// Package variant resolves modifier prefixes on utility classes
// ("hover:", "md:", "dark:", "group-hover:") into selector
// transformations or media queries. Each variant maps to exactly one of
// the two, never both.
package variant

import "strings"

// Variant is one resolved modifier. Exactly one of SelectorSuffix,
// AncestorPrefix or MediaQuery is non-empty.
type Variant struct {
	Name           string
	SelectorSuffix string // appended to the class selector (":hover")
	AncestorPrefix string // prepended to the selector (".dark ", ".group:hover ")
	MediaQuery     string // buckets the rule under @media
}

// IsMedia reports whether this variant buckets its rule under a media query.
func (v Variant) IsMedia() bool { return v.MediaQuery != "" }

var variants = buildVariants()

func buildVariants() map[string]Variant {
	m := make(map[string]Variant, 96)

	suffix := func(name, sel string) { m[name] = Variant{Name: name, SelectorSuffix: sel} }
	prefix := func(name, sel string) { m[name] = Variant{Name: name, AncestorPrefix: sel} }
	media := func(name, query string) { m[name] = Variant{Name: name, MediaQuery: query} }

	// Pseudo-class variants.
	suffix("hover", ":hover")
	suffix("focus", ":focus")
	suffix("focus-within", ":focus-within")
	suffix("focus-visible", ":focus-visible")
	suffix("active", ":active")
	suffix("visited", ":visited")
	suffix("target", ":target")
	suffix("first", ":first-child")
	suffix("last", ":last-child")
	suffix("only", ":only-child")
	suffix("odd", ":nth-child(odd)")
	suffix("even", ":nth-child(even)")
	suffix("first-of-type", ":first-of-type")
	suffix("last-of-type", ":last-of-type")
	suffix("empty", ":empty")
	suffix("disabled", ":disabled")
	suffix("enabled", ":enabled")
	suffix("checked", ":checked")
	suffix("indeterminate", ":indeterminate")
	suffix("required", ":required")
	suffix("valid", ":valid")
	suffix("invalid", ":invalid")
	suffix("placeholder-shown", ":placeholder-shown")
	suffix("read-only", ":read-only")

	// Data-attribute states.
	suffix("data-hover", "[data-hover]")
	suffix("data-focus", "[data-focus]")
	suffix("data-active", "[data-active]")
	suffix("data-open", "[data-open]")
	suffix("data-closed", "[data-closed]")
	suffix("data-selected", "[data-selected]")
	suffix("data-disabled", "[data-disabled]")

	// Group and peer compounds.
	for _, state := range []struct{ name, pseudo string }{
		{"hover", ":hover"},
		{"focus", ":focus"},
		{"focus-within", ":focus-within"},
		{"active", ":active"},
		{"disabled", ":disabled"},
		{"checked", ":checked"},
		{"invalid", ":invalid"},
	} {
		prefix("group-"+state.name, ".group"+state.pseudo+" ")
		prefix("peer-"+state.name, ".peer"+state.pseudo+" ~ ")
	}

	// Class-based dark mode: ancestor selector, not a media query.
	prefix("dark", ".dark ")

	// Responsive breakpoints.
	media("sm", "(min-width: 640px)")
	media("md", "(min-width: 768px)")
	media("lg", "(min-width: 1024px)")
	media("xl", "(min-width: 1280px)")
	media("2xl", "(min-width: 1536px)")

	// Device and preference media.
	media("motion-reduce", "(prefers-reduced-motion: reduce)")
	media("motion-safe", "(prefers-reduced-motion: no-preference)")
	media("pointer-coarse", "(pointer: coarse)")
	media("pointer-fine", "(pointer: fine)")
	media("contrast-more", "(prefers-contrast: more)")
	media("contrast-less", "(prefers-contrast: less)")
	media("portrait", "(orientation: portrait)")
	media("landscape", "(orientation: landscape)")
	media("print", "print")

	return m
}

// Lookup returns the variant for a prefix name ("hover").
func Lookup(name string) (Variant, bool) {
	v, ok := variants[name]
	return v, ok
}

// Split peels every recognized variant prefix off a class string and
// returns them in order with the remaining base class. Splitting stops at
// the first unrecognized segment, which is then part of the base and will
// surface as an unrecognized class downstream. Colons inside brackets or
// parens (arbitrary values like bg-[url(http://x)]) never split.
func Split(class string) ([]Variant, string) {
	var found []Variant
	rest := class
	for {
		idx := segmentColon(rest)
		if idx < 0 {
			return found, rest
		}
		v, ok := variants[rest[:idx]]
		if !ok {
			return found, rest
		}
		found = append(found, v)
		rest = rest[idx+1:]
	}
}

// segmentColon returns the index of the first ':' outside bracket or
// paren nesting, or -1.
func segmentColon(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// Apply composes the variant chain onto an escaped class selector and
// returns the final selector plus the media query string (empty for the
// base bucket). Ancestor prefixes prepend in order, pseudo suffixes
// append in order, and multiple media variants combine with "and".
func Apply(selector string, variants []Variant) (string, string) {
	var prefixes, suffixes strings.Builder
	var queries []string
	for _, v := range variants {
		switch {
		case v.AncestorPrefix != "":
			prefixes.WriteString(v.AncestorPrefix)
		case v.SelectorSuffix != "":
			suffixes.WriteString(v.SelectorSuffix)
		case v.MediaQuery != "":
			queries = append(queries, v.MediaQuery)
		}
	}
	return prefixes.String() + selector + suffixes.String(), strings.Join(queries, " and ")
}
