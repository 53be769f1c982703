package stylesheet

import "strings"

// EscapeClass turns a raw class name into a CSS identifier usable in a
// selector. Characters outside [a-zA-Z0-9_-] are backslash-escaped so
// names like "top-[4px]" or "hover:bg-blue-500/50" stay valid CSS:
// ".top-\[4px\]", ".hover\:bg-blue-500\/50".
func EscapeClass(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 8)
	for i := 0; i < len(name); i++ {
		c := name[i]
		// A CSS identifier cannot start with a digit; use a code-point
		// escape there ("2xl:p-4" -> "\32 xl\:p-4").
		if i == 0 && c >= '0' && c <= '9' {
			b.WriteString("\\3")
			b.WriteByte(c)
			b.WriteByte(' ')
			continue
		}
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
			b.WriteByte(c)
		default:
			b.WriteByte('\\')
			b.WriteByte(c)
		}
	}
	return b.String()
}

// ClassSelector returns the escaped selector for a class name, including
// the leading dot.
func ClassSelector(name string) string {
	return "." + EscapeClass(name)
}
