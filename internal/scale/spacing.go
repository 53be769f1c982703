// Package scale holds the static value tables the utility parsers draw
// from: the spacing scale, the color palette, typography scales, shadow
// presets and so on. All lookups are pure functions over fixed maps; the
// only failure mode is "not found".
package scale

// spacing is the 0-96 spacing scale including fractional steps.
// Values are rem-based with a 0.25rem (4px) base unit.
var spacing = map[string]string{
	"0":    "0px",
	"px":   "1px",
	"0.5":  "0.125rem",
	"1":    "0.25rem",
	"1.5":  "0.375rem",
	"2":    "0.5rem",
	"2.5":  "0.625rem",
	"3":    "0.75rem",
	"3.5":  "0.875rem",
	"4":    "1rem",
	"5":    "1.25rem",
	"6":    "1.5rem",
	"7":    "1.75rem",
	"8":    "2rem",
	"9":    "2.25rem",
	"10":   "2.5rem",
	"11":   "2.75rem",
	"12":   "3rem",
	"14":   "3.5rem",
	"16":   "4rem",
	"20":   "5rem",
	"24":   "6rem",
	"28":   "7rem",
	"32":   "8rem",
	"36":   "9rem",
	"40":   "10rem",
	"44":   "11rem",
	"48":   "12rem",
	"52":   "13rem",
	"56":   "14rem",
	"60":   "15rem",
	"64":   "16rem",
	"72":   "18rem",
	"80":   "20rem",
	"96":   "24rem",
}

// fraction maps percentage fractions 1/2 .. 11/12 plus "full".
var fraction = map[string]string{
	"1/2":   "50%",
	"1/3":   "33.333333%",
	"2/3":   "66.666667%",
	"1/4":   "25%",
	"2/4":   "50%",
	"3/4":   "75%",
	"1/5":   "20%",
	"2/5":   "40%",
	"3/5":   "60%",
	"4/5":   "80%",
	"1/6":   "16.666667%",
	"2/6":   "33.333333%",
	"3/6":   "50%",
	"4/6":   "66.666667%",
	"5/6":   "83.333333%",
	"1/12":  "8.333333%",
	"2/12":  "16.666667%",
	"3/12":  "25%",
	"4/12":  "33.333333%",
	"5/12":  "41.666667%",
	"6/12":  "50%",
	"7/12":  "58.333333%",
	"8/12":  "66.666667%",
	"9/12":  "75%",
	"10/12": "83.333333%",
	"11/12": "91.666667%",
	"full":  "100%",
}

// maxWidth maps the named max-width steps.
var maxWidth = map[string]string{
	"0":    "0rem",
	"none": "none",
	"xs":   "20rem",
	"sm":   "24rem",
	"md":   "28rem",
	"lg":   "32rem",
	"xl":   "36rem",
	"2xl":  "42rem",
	"3xl":  "48rem",
	"4xl":  "56rem",
	"5xl":  "64rem",
	"6xl":  "72rem",
	"7xl":  "80rem",
	"full": "100%",
	"min":  "min-content",
	"max":  "max-content",
	"fit":  "fit-content",
	"prose": "65ch",
	"screen-sm":  "640px",
	"screen-md":  "768px",
	"screen-lg":  "1024px",
	"screen-xl":  "1280px",
	"screen-2xl": "1536px",
}

// Spacing returns the CSS length for a spacing scale token ("4" -> "1rem").
func Spacing(token string) (string, bool) {
	v, ok := spacing[token]
	return v, ok
}

// Fraction returns the percentage for a fractional token ("1/2" -> "50%").
func Fraction(token string) (string, bool) {
	v, ok := fraction[token]
	return v, ok
}

// MaxWidth returns the length for a named max-width token ("prose" -> "65ch").
func MaxWidth(token string) (string, bool) {
	v, ok := maxWidth[token]
	return v, ok
}

// SpacingOrFraction resolves a token against the spacing scale first, then
// the fraction table. Sizing utilities (w-1/2, h-4) accept both forms.
func SpacingOrFraction(token string) (string, bool) {
	if v, ok := spacing[token]; ok {
		return v, true
	}
	v, ok := fraction[token]
	return v, ok
}
