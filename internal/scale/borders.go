package scale

var borderRadius = map[string]string{
	"none": "0px",
	"sm":   "0.125rem",
	"":     "0.25rem", // bare "rounded"
	"md":   "0.375rem",
	"lg":   "0.5rem",
	"xl":   "0.75rem",
	"2xl":  "1rem",
	"3xl":  "1.5rem",
	"full": "9999px",
}

var borderWidth = map[string]string{
	"":  "1px", // bare "border"
	"0": "0px",
	"2": "2px",
	"4": "4px",
	"8": "8px",
}

var outlineWidth = map[string]string{
	"0": "0px",
	"1": "1px",
	"2": "2px",
	"4": "4px",
	"8": "8px",
}

var ringWidth = map[string]string{
	"":  "3px", // bare "ring"
	"0": "0px",
	"1": "1px",
	"2": "2px",
	"4": "4px",
	"8": "8px",
}

// BorderRadius returns the radius for a rounded-* suffix; the empty token
// is the bare "rounded" default.
func BorderRadius(token string) (string, bool) {
	v, ok := borderRadius[token]
	return v, ok
}

// BorderWidth returns the width for a border-* suffix; the empty token is
// the bare "border" default.
func BorderWidth(token string) (string, bool) {
	v, ok := borderWidth[token]
	return v, ok
}

// OutlineWidth returns the width for an outline-* suffix.
func OutlineWidth(token string) (string, bool) {
	v, ok := outlineWidth[token]
	return v, ok
}

// RingWidth returns the width for a ring-* suffix; the empty token is the
// bare "ring" default.
func RingWidth(token string) (string, bool) {
	v, ok := ringWidth[token]
	return v, ok
}
