package scale

var zIndex = map[string]string{
	"0":    "0",
	"10":   "10",
	"20":   "20",
	"30":   "30",
	"40":   "40",
	"50":   "50",
	"auto": "auto",
}

var order = map[string]string{
	"1":     "1",
	"2":     "2",
	"3":     "3",
	"4":     "4",
	"5":     "5",
	"6":     "6",
	"7":     "7",
	"8":     "8",
	"9":     "9",
	"10":    "10",
	"11":    "11",
	"12":    "12",
	"first": "-9999",
	"last":  "9999",
	"none":  "0",
}

var aspectRatio = map[string]string{
	"auto":   "auto",
	"square": "1 / 1",
	"video":  "16 / 9",
}

// GridTemplate returns repeat(n, minmax(0, 1fr)) for grid-cols-n /
// grid-rows-n tokens 1-12, or "none".
func GridTemplate(token string) (string, bool) {
	if token == "none" {
		return "none", true
	}
	if n, ok := smallInt(token, 12); ok {
		return "repeat(" + n + ", minmax(0, 1fr))", true
	}
	return "", false
}

// GridSpan returns "span n / span n" for col-span-n / row-span-n tokens.
func GridSpan(token string) (string, bool) {
	if token == "full" {
		return "1 / -1", true
	}
	if n, ok := smallInt(token, 12); ok {
		return "span " + n + " / span " + n, true
	}
	return "", false
}

// GridLine validates col-start/col-end/row-start/row-end line numbers.
func GridLine(token string) (string, bool) {
	if token == "auto" {
		return "auto", true
	}
	if n, ok := smallInt(token, 13); ok {
		return n, true
	}
	return "", false
}

// smallInt accepts base-10 integers 1..max, returned in canonical form.
func smallInt(token string, max int) (string, bool) {
	if token == "" || len(token) > 2 || (len(token) > 1 && token[0] == '0') {
		return "", false
	}
	n := 0
	for i := 0; i < len(token); i++ {
		c := token[i]
		if c < '0' || c > '9' {
			return "", false
		}
		n = n*10 + int(c-'0')
	}
	if n < 1 || n > max {
		return "", false
	}
	return token, true
}

// ZIndex returns the value for a z-* token.
func ZIndex(token string) (string, bool) {
	v, ok := zIndex[token]
	return v, ok
}

// Order returns the value for an order-* token.
func Order(token string) (string, bool) {
	v, ok := order[token]
	return v, ok
}

// AspectRatio returns the ratio for an aspect-* token.
func AspectRatio(token string) (string, bool) {
	v, ok := aspectRatio[token]
	return v, ok
}
