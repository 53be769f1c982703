package parser

import (
	"strings"

	"github.com/aethelur/tailgen/internal/scale"
	"github.com/aethelur/tailgen/internal/stylesheet"
)

// typographyParser owns fonts, text sizing/alignment, decoration,
// transforms, whitespace, leading, tracking, lists and indent. Text
// colors belong to the color parser; this one deliberately rejects
// palette bodies so dispatch falls through.
type typographyParser struct{}

func (p *typographyParser) Metadata() Metadata {
	return Metadata{
		Priority: 700,
		Category: CategoryTypography,
		Patterns: []string{
			"text-{size}", "text-left|center|right|justify",
			"font-{family}", "font-{weight}", "italic", "not-italic",
			"underline", "overline", "line-through", "no-underline",
			"decoration-*", "underline-offset-{n}",
			"uppercase", "lowercase", "capitalize", "normal-case",
			"leading-{n}", "tracking-{t}", "whitespace-*", "break-*",
			"indent-{n}", "align-*", "list-*", "truncate", "antialiased",
		},
	}
}

var textAlignKeywords = map[string]string{
	"left":    "left",
	"center":  "center",
	"right":   "right",
	"justify": "justify",
	"start":   "start",
	"end":     "end",
}

var textOverflowKeywords = map[string][]stylesheet.Property{
	"truncate": {
		{Name: "overflow", Value: "hidden"},
		{Name: "text-overflow", Value: "ellipsis"},
		{Name: "white-space", Value: "nowrap"},
	},
	"text-ellipsis": single("text-overflow", "ellipsis"),
	"text-clip":     single("text-overflow", "clip"),
}

var textTransformKeywords = map[string]string{
	"uppercase":   "uppercase",
	"lowercase":   "lowercase",
	"capitalize":  "capitalize",
	"normal-case": "none",
}

var decorationLineKeywords = map[string]string{
	"underline":    "underline",
	"overline":     "overline",
	"line-through": "line-through",
	"no-underline": "none",
}

var decorationStyleKeywords = map[string]string{
	"solid":  "solid",
	"double": "double",
	"dotted": "dotted",
	"dashed": "dashed",
	"wavy":   "wavy",
}

var whitespaceKeywords = map[string]string{
	"normal":       "normal",
	"nowrap":       "nowrap",
	"pre":          "pre",
	"pre-line":     "pre-line",
	"pre-wrap":     "pre-wrap",
	"break-spaces": "break-spaces",
}

var verticalAlignKeywords = map[string]string{
	"baseline":    "baseline",
	"top":         "top",
	"middle":      "middle",
	"bottom":      "bottom",
	"text-top":    "text-top",
	"text-bottom": "text-bottom",
	"sub":         "sub",
	"super":       "super",
}

var listKeywords = map[string][]stylesheet.Property{
	"list-none":    single("list-style-type", "none"),
	"list-disc":    single("list-style-type", "disc"),
	"list-decimal": single("list-style-type", "decimal"),
	"list-inside":  single("list-style-position", "inside"),
	"list-outside": single("list-style-position", "outside"),
}

func (p *typographyParser) TryParse(class string) []stylesheet.Property {
	if out, ok := textOverflowKeywords[class]; ok {
		return out
	}
	if v, ok := textTransformKeywords[class]; ok {
		return single("text-transform", v)
	}
	if v, ok := decorationLineKeywords[class]; ok {
		return single("text-decoration-line", v)
	}
	if out, ok := listKeywords[class]; ok {
		return out
	}

	switch class {
	case "italic":
		return single("font-style", "italic")
	case "not-italic":
		return single("font-style", "normal")
	case "antialiased":
		return props("-webkit-font-smoothing", "antialiased", "-moz-osx-font-smoothing", "grayscale")
	case "break-normal":
		return props("overflow-wrap", "normal", "word-break", "normal")
	case "break-words":
		return single("overflow-wrap", "break-word")
	case "break-all":
		return single("word-break", "break-all")
	case "break-keep":
		return single("word-break", "keep-all")
	}

	if body, ok := strings.CutPrefix(class, "text-"); ok {
		return p.text(body)
	}
	if body, ok := strings.CutPrefix(class, "font-"); ok {
		return p.font(body)
	}
	if body, ok := strings.CutPrefix(class, "underline-offset-"); ok {
		if v, ok := scale.Spacing(body); ok {
			return single("text-underline-offset", v)
		}
		if v, ok := rawValue(body); ok {
			return single("text-underline-offset", v)
		}
		return nil
	}
	if body, ok := strings.CutPrefix(class, "decoration-"); ok {
		if v, ok := decorationStyleKeywords[body]; ok {
			return single("text-decoration-style", v)
		}
		switch body {
		case "auto", "from-font":
			return single("text-decoration-thickness", body)
		case "0", "1", "2", "4", "8":
			return single("text-decoration-thickness", body+"px")
		}
		// Colors fall through to the color parser.
		return nil
	}
	if body, ok := strings.CutPrefix(class, "leading-"); ok {
		if v, ok := scale.LineHeight(body); ok {
			return single("line-height", v)
		}
		if v, ok := rawValue(body); ok {
			return single("line-height", v)
		}
		return nil
	}
	if body, ok := strings.CutPrefix(class, "tracking-"); ok {
		if v, ok := scale.LetterSpacing(body); ok {
			return single("letter-spacing", v)
		}
		if v, ok := rawValue(body); ok {
			return single("letter-spacing", v)
		}
		return nil
	}
	if body, ok := strings.CutPrefix(class, "whitespace-"); ok {
		if v, ok := whitespaceKeywords[body]; ok {
			return single("white-space", v)
		}
		return nil
	}
	if body, ok := strings.CutPrefix(class, "indent-"); ok {
		if v, ok := scale.Spacing(body); ok {
			return single("text-indent", v)
		}
		if v, ok := rawValue(body); ok {
			return single("text-indent", v)
		}
		return nil
	}
	if body, ok := strings.CutPrefix(class, "align-"); ok {
		if v, ok := verticalAlignKeywords[body]; ok {
			return single("vertical-align", v)
		}
		if v, ok := rawValue(body); ok {
			return single("vertical-align", v)
		}
		return nil
	}

	return nil
}

// text resolves text-* bodies that belong to typography: named sizes,
// alignment keywords and length-like arbitrary values. Palette tokens
// return nil so the color parser can claim them.
func (p *typographyParser) text(body string) []stylesheet.Property {
	if entry, ok := scale.FontSize(body); ok {
		return props("font-size", entry.Size, "line-height", entry.LineHeight)
	}
	if v, ok := textAlignKeywords[body]; ok {
		return single("text-align", v)
	}
	if strings.HasPrefix(body, "[") {
		if v, ok := stripArbitrary(body); ok && looksLikeLength(v) {
			return single("font-size", v)
		}
	}
	return nil
}

func (p *typographyParser) font(body string) []stylesheet.Property {
	if v, ok := scale.FontFamily(body); ok {
		return single("font-family", v)
	}
	if v, ok := scale.FontWeight(body); ok {
		return single("font-weight", v)
	}
	if strings.HasPrefix(body, "[") {
		if v, ok := stripArbitrary(body); ok {
			if looksLikeNumber(v) {
				return single("font-weight", v)
			}
			return single("font-family", v)
		}
	}
	return nil
}

// looksLikeLength reports whether an arbitrary value starts like a CSS
// length or percentage, which disambiguates text-[14px] (font-size) from
// text-[#f00] (color, another parser's business).
func looksLikeLength(v string) bool {
	if v == "" {
		return false
	}
	c := v[0]
	return (c >= '0' && c <= '9') || c == '.' || c == '-'
}

func looksLikeNumber(v string) bool {
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		if v[i] < '0' || v[i] > '9' {
			return false
		}
	}
	return true
}
