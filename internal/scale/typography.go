package scale

// FontSizeEntry pairs a font-size with its default line-height, matching
// the upstream convention of emitting both per text-* utility.
type FontSizeEntry struct {
	Size       string
	LineHeight string
}

var fontSize = map[string]FontSizeEntry{
	"xs":   {"0.75rem", "1rem"},
	"sm":   {"0.875rem", "1.25rem"},
	"base": {"1rem", "1.5rem"},
	"lg":   {"1.125rem", "1.75rem"},
	"xl":   {"1.25rem", "1.75rem"},
	"2xl":  {"1.5rem", "2rem"},
	"3xl":  {"1.875rem", "2.25rem"},
	"4xl":  {"2.25rem", "2.5rem"},
	"5xl":  {"3rem", "1"},
	"6xl":  {"3.75rem", "1"},
	"7xl":  {"4.5rem", "1"},
	"8xl":  {"6rem", "1"},
	"9xl":  {"8rem", "1"},
}

var fontWeight = map[string]string{
	"thin":       "100",
	"extralight": "200",
	"light":      "300",
	"normal":     "400",
	"medium":     "500",
	"semibold":   "600",
	"bold":       "700",
	"extrabold":  "800",
	"black":      "900",
}

var fontFamily = map[string]string{
	"sans":  `ui-sans-serif, system-ui, sans-serif, "Apple Color Emoji", "Segoe UI Emoji", "Segoe UI Symbol", "Noto Color Emoji"`,
	"serif": `ui-serif, Georgia, Cambria, "Times New Roman", Times, serif`,
	"mono":  `ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, "Liberation Mono", "Courier New", monospace`,
}

var lineHeight = map[string]string{
	"none":    "1",
	"tight":   "1.25",
	"snug":    "1.375",
	"normal":  "1.5",
	"relaxed": "1.625",
	"loose":   "2",
	"3":       "0.75rem",
	"4":       "1rem",
	"5":       "1.25rem",
	"6":       "1.5rem",
	"7":       "1.75rem",
	"8":       "2rem",
	"9":       "2.25rem",
	"10":      "2.5rem",
}

var letterSpacing = map[string]string{
	"tighter": "-0.05em",
	"tight":   "-0.025em",
	"normal":  "0em",
	"wide":    "0.025em",
	"wider":   "0.05em",
	"widest":  "0.1em",
}

// FontSize returns the size/line-height pair for a named step ("lg").
func FontSize(token string) (FontSizeEntry, bool) {
	v, ok := fontSize[token]
	return v, ok
}

// FontWeight returns the numeric weight for a named step ("semibold" -> "600").
func FontWeight(token string) (string, bool) {
	v, ok := fontWeight[token]
	return v, ok
}

// FontFamily returns the font stack for a named family ("mono").
func FontFamily(token string) (string, bool) {
	v, ok := fontFamily[token]
	return v, ok
}

// LineHeight returns the value for a leading-* token.
func LineHeight(token string) (string, bool) {
	v, ok := lineHeight[token]
	return v, ok
}

// LetterSpacing returns the value for a tracking-* token.
func LetterSpacing(token string) (string, bool) {
	v, ok := letterSpacing[token]
	return v, ok
}
