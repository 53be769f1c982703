package scale

// boxShadow holds the shadow presets. Multi-part values keep literal
// commas; these strings are emitted verbatim.
var boxShadow = map[string]string{
	"sm":    "0 1px 2px 0 rgb(0 0 0 / 0.05)",
	"":      "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)", // bare "shadow"
	"md":    "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)",
	"lg":    "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)",
	"xl":    "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)",
	"2xl":   "0 25px 50px -12px rgb(0 0 0 / 0.25)",
	"inner": "inset 0 2px 4px 0 rgb(0 0 0 / 0.05)",
	"none":  "0 0 #0000",
}

var dropShadow = map[string]string{
	"sm":   "drop-shadow(0 1px 1px rgb(0 0 0 / 0.05))",
	"":     "drop-shadow(0 1px 2px rgb(0 0 0 / 0.1)) drop-shadow(0 1px 1px rgb(0 0 0 / 0.06))",
	"md":   "drop-shadow(0 4px 3px rgb(0 0 0 / 0.07)) drop-shadow(0 2px 2px rgb(0 0 0 / 0.06))",
	"lg":   "drop-shadow(0 10px 8px rgb(0 0 0 / 0.04)) drop-shadow(0 4px 3px rgb(0 0 0 / 0.1))",
	"xl":   "drop-shadow(0 20px 13px rgb(0 0 0 / 0.03)) drop-shadow(0 8px 5px rgb(0 0 0 / 0.08))",
	"2xl":  "drop-shadow(0 25px 25px rgb(0 0 0 / 0.15))",
	"none": "drop-shadow(0 0 #0000)",
}

var blur = map[string]string{
	"none": "0",
	"sm":   "4px",
	"":     "8px", // bare "blur"
	"md":   "12px",
	"lg":   "16px",
	"xl":   "24px",
	"2xl":  "40px",
	"3xl":  "64px",
}

var opacity = map[string]string{
	"0":   "0",
	"5":   "0.05",
	"10":  "0.1",
	"15":  "0.15",
	"20":  "0.2",
	"25":  "0.25",
	"30":  "0.3",
	"35":  "0.35",
	"40":  "0.4",
	"45":  "0.45",
	"50":  "0.5",
	"55":  "0.55",
	"60":  "0.6",
	"65":  "0.65",
	"70":  "0.7",
	"75":  "0.75",
	"80":  "0.8",
	"85":  "0.85",
	"90":  "0.9",
	"95":  "0.95",
	"100": "1",
}

// BoxShadow returns the preset for a shadow-* suffix; the empty token is
// the bare "shadow" default.
func BoxShadow(token string) (string, bool) {
	v, ok := boxShadow[token]
	return v, ok
}

// DropShadow returns the filter value for a drop-shadow-* suffix.
func DropShadow(token string) (string, bool) {
	v, ok := dropShadow[token]
	return v, ok
}

// Blur returns the radius for a blur-* suffix; the empty token is the bare
// "blur" default.
func Blur(token string) (string, bool) {
	v, ok := blur[token]
	return v, ok
}

// Opacity returns the fractional alpha for an opacity-* step ("50" -> "0.5").
func Opacity(token string) (string, bool) {
	v, ok := opacity[token]
	return v, ok
}
