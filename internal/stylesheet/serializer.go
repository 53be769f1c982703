package stylesheet

import "strings"

// SerializeOptions controls emission. Pretty and minified output are
// structurally identical: same preamble, same rule order, same
// declarations, different whitespace.
type SerializeOptions struct {
	Minify bool
	// TreeShakeKeyframes drops preamble blocks whose name is absent from
	// UsedKeyframes. Off by default: upstream always emits the full set.
	TreeShakeKeyframes bool
	UsedKeyframes      map[string]bool
}

// Serialize renders the store to CSS text: @keyframes preamble, :root
// custom properties, base rules in insertion order, then @media groups.
func Serialize(store *Store, opts SerializeOptions) string {
	var b strings.Builder

	writeKeyframes(&b, opts)
	writeRoot(&b, store.CustomProperties(), opts.Minify)

	for _, rule := range store.BaseRules() {
		writeRule(&b, rule, opts.Minify, "")
	}

	for _, query := range store.MediaQueries() {
		if opts.Minify {
			b.WriteString("@media ")
			b.WriteString(query)
			b.WriteString("{")
			for _, rule := range store.MediaRules(query) {
				writeRule(&b, rule, true, "")
			}
			b.WriteString("}")
		} else {
			b.WriteString("@media ")
			b.WriteString(query)
			b.WriteString(" {\n")
			for _, rule := range store.MediaRules(query) {
				writeRule(&b, rule, false, "  ")
			}
			b.WriteString("}\n\n")
		}
	}

	return b.String()
}

func writeKeyframes(b *strings.Builder, opts SerializeOptions) {
	for _, kf := range keyframePreamble {
		if opts.TreeShakeKeyframes && !opts.UsedKeyframes[kf.Name] {
			continue
		}
		if opts.Minify {
			b.WriteString("@keyframes ")
			b.WriteString(kf.Name)
			b.WriteString("{")
			b.WriteString(minifyBlock(kf.Body))
			b.WriteString("}")
		} else {
			b.WriteString("@keyframes ")
			b.WriteString(kf.Name)
			b.WriteString(" {\n")
			b.WriteString(kf.Body)
			b.WriteString("\n}\n\n")
		}
	}
}

func writeRoot(b *strings.Builder, custom []Property, minify bool) {
	if len(custom) == 0 {
		return
	}
	if minify {
		b.WriteString(":root{")
		for i, p := range custom {
			if i > 0 {
				b.WriteString(";")
			}
			b.WriteString(p.Name)
			b.WriteString(":")
			b.WriteString(p.Value)
		}
		b.WriteString("}")
		return
	}
	b.WriteString(":root {\n")
	for _, p := range custom {
		b.WriteString("  ")
		b.WriteString(p.Name)
		b.WriteString(": ")
		b.WriteString(p.Value)
		b.WriteString(";\n")
	}
	b.WriteString("}\n\n")
}

func writeRule(b *strings.Builder, rule *Rule, minify bool, indent string) {
	if minify {
		b.WriteString(rule.Selector)
		b.WriteString("{")
		for i, p := range rule.Properties {
			if i > 0 {
				b.WriteString(";")
			}
			b.WriteString(p.Name)
			b.WriteString(":")
			b.WriteString(p.Value)
			if p.Important {
				b.WriteString("!important")
			}
		}
		b.WriteString("}")
		return
	}

	b.WriteString(indent)
	b.WriteString(rule.Selector)
	b.WriteString(" {\n")
	for _, p := range rule.Properties {
		b.WriteString(indent)
		b.WriteString("  ")
		b.WriteString(p.Name)
		b.WriteString(": ")
		b.WriteString(p.Value)
		if p.Important {
			b.WriteString(" !important")
		}
		b.WriteString(";\n")
	}
	b.WriteString(indent)
	b.WriteString("}\n")
	if indent == "" {
		b.WriteString("\n")
	}
}

// minifyBlock re-flows a pretty keyframe body into minified form.
func minifyBlock(body string) string {
	var b strings.Builder
	for _, line := range strings.Split(body, "\n") {
		b.WriteString(strings.TrimSpace(line))
	}
	s := b.String()
	s = strings.ReplaceAll(s, " {", "{")
	s = strings.ReplaceAll(s, ": ", ":")
	s = strings.ReplaceAll(s, ", ", ",")
	s = strings.ReplaceAll(s, ";}", "}")
	return s
}
