package parser

import "strings"

// Arbitrary and custom-property value handling, shared by most parsers.
//
// Bracket form:  w-[100px]     -> the inner text is the CSS value verbatim,
//                                 with underscores standing in for spaces.
// Paren form:    w-(--my-w)    -> wrapped as var(--my-w).
//
// An opened-but-unclosed wrapper is a soft no-match: the class falls
// through dispatch as unrecognized rather than raising a hard error.

// stripArbitrary unwraps "[...]" and converts underscore placeholders to
// spaces. No CSS validation happens here; garbage in, garbage out.
func stripArbitrary(body string) (string, bool) {
	if len(body) < 2 || body[0] != '[' || body[len(body)-1] != ']' {
		return "", false
	}
	inner := body[1 : len(body)-1]
	if inner == "" {
		return "", false
	}
	return unescapeUnderscores(inner), true
}

// stripCustomProperty unwraps "(--name)" into "var(--name)".
func stripCustomProperty(body string) (string, bool) {
	name, ok := customPropertyName(body)
	if !ok {
		return "", false
	}
	return "var(" + name + ")", true
}

// customPropertyName unwraps "(--name)" into "--name".
func customPropertyName(body string) (string, bool) {
	if len(body) < 4 || body[0] != '(' || body[len(body)-1] != ')' {
		return "", false
	}
	inner := body[1 : len(body)-1]
	if !strings.HasPrefix(inner, "--") || len(inner) == 2 {
		return "", false
	}
	return inner, true
}

// rawValue resolves either wrapper form. Used by parsers whose scale
// lookup failed and that accept arbitrary values.
func rawValue(body string) (string, bool) {
	if v, ok := stripArbitrary(body); ok {
		return v, true
	}
	return stripCustomProperty(body)
}

// isWrapped reports whether body uses either wrapper syntax, closed or
// not. Parsers use it to claim bracketed bodies they own even when the
// wrapper is malformed, so "w-[100px" dies quietly inside one family.
func isWrapped(body string) bool {
	return strings.HasPrefix(body, "[") || strings.HasPrefix(body, "(")
}

// unescapeUnderscores converts "_" to " " except when the underscore is
// backslash-escaped or part of a url() token, matching the upstream
// space-placeholder convention for multi-word values.
func unescapeUnderscores(v string) string {
	if strings.Contains(v, "url(") {
		return v
	}
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c == '\\' && i+1 < len(v) && v[i+1] == '_' {
			b.WriteByte('_')
			i++
			continue
		}
		if c == '_' {
			b.WriteByte(' ')
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// splitModifier splits "blue-500/50" into ("blue-500", "50"). The slash
// inside a bracket or paren wrapper is part of the value, not a modifier.
func splitModifier(body string) (string, string) {
	depth := 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case '/':
			if depth == 0 {
				return body[:i], body[i+1:]
			}
		}
	}
	return body, ""
}

// CustomPropertyRefs returns every --name referenced via the paren syntax
// anywhere in a class body. The dispatcher registers these on the :root
// block.
func CustomPropertyRefs(class string) []string {
	var refs []string
	for i := 0; i < len(class); i++ {
		if class[i] != '(' {
			continue
		}
		end := strings.IndexByte(class[i:], ')')
		if end < 0 {
			break
		}
		if name, ok := customPropertyName(class[i : i+end+1]); ok {
			refs = append(refs, name)
		}
		i += end
	}
	return refs
}
