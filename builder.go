package tailgen

import "strings"

// ClassBuilder assembles canonical class strings programmatically. It is
// a convenience facade: the strings it produces go through the same
// AddClass path as scanned ones, so builder output and hand-written
// markup always agree.
//
//	classes := tailgen.NewClassBuilder().
//		Padding("4").
//		BackgroundColor("blue-500").
//		Hover(func(b *tailgen.ClassBuilder) {
//			b.BackgroundColor("blue-600")
//		}).
//		Classes()
type ClassBuilder struct {
	classes []string
}

// NewClassBuilder returns an empty builder.
func NewClassBuilder() *ClassBuilder {
	return &ClassBuilder{}
}

// Class appends a raw class string unchanged. Escape hatch for utilities
// without a dedicated method.
func (b *ClassBuilder) Class(class string) *ClassBuilder {
	if class != "" {
		b.classes = append(b.classes, class)
	}
	return b
}

func (b *ClassBuilder) token(prefix, value string) *ClassBuilder {
	if value == "" {
		return b.Class(prefix)
	}
	return b.Class(prefix + "-" + value)
}

// Spacing and sizing.

func (b *ClassBuilder) Padding(v string) *ClassBuilder  { return b.token("p", v) }
func (b *ClassBuilder) PaddingX(v string) *ClassBuilder { return b.token("px", v) }
func (b *ClassBuilder) PaddingY(v string) *ClassBuilder { return b.token("py", v) }
func (b *ClassBuilder) Margin(v string) *ClassBuilder   { return b.token("m", v) }
func (b *ClassBuilder) MarginX(v string) *ClassBuilder  { return b.token("mx", v) }
func (b *ClassBuilder) MarginY(v string) *ClassBuilder  { return b.token("my", v) }
func (b *ClassBuilder) Gap(v string) *ClassBuilder      { return b.token("gap", v) }
func (b *ClassBuilder) Width(v string) *ClassBuilder    { return b.token("w", v) }
func (b *ClassBuilder) Height(v string) *ClassBuilder   { return b.token("h", v) }
func (b *ClassBuilder) MaxWidth(v string) *ClassBuilder { return b.token("max-w", v) }

// Layout.

func (b *ClassBuilder) Display(v string) *ClassBuilder  { return b.Class(v) }
func (b *ClassBuilder) Position(v string) *ClassBuilder { return b.Class(v) }
func (b *ClassBuilder) Flex() *ClassBuilder             { return b.Class("flex") }
func (b *ClassBuilder) Grid() *ClassBuilder             { return b.Class("grid") }
func (b *ClassBuilder) Items(v string) *ClassBuilder    { return b.token("items", v) }
func (b *ClassBuilder) Justify(v string) *ClassBuilder  { return b.token("justify", v) }
func (b *ClassBuilder) GridCols(v string) *ClassBuilder { return b.token("grid-cols", v) }

// Color and typography.

func (b *ClassBuilder) BackgroundColor(v string) *ClassBuilder { return b.token("bg", v) }
func (b *ClassBuilder) TextColor(v string) *ClassBuilder       { return b.token("text", v) }
func (b *ClassBuilder) BorderColor(v string) *ClassBuilder     { return b.token("border", v) }
func (b *ClassBuilder) FontSize(v string) *ClassBuilder        { return b.token("text", v) }
func (b *ClassBuilder) FontWeight(v string) *ClassBuilder      { return b.token("font", v) }
func (b *ClassBuilder) FontFamily(v string) *ClassBuilder      { return b.token("font", v) }
func (b *ClassBuilder) Leading(v string) *ClassBuilder         { return b.token("leading", v) }
func (b *ClassBuilder) Tracking(v string) *ClassBuilder        { return b.token("tracking", v) }

// Borders and effects.

func (b *ClassBuilder) Border(v string) *ClassBuilder  { return b.token("border", v) }
func (b *ClassBuilder) Rounded(v string) *ClassBuilder { return b.token("rounded", v) }
func (b *ClassBuilder) Shadow(v string) *ClassBuilder  { return b.token("shadow", v) }
func (b *ClassBuilder) Opacity(v string) *ClassBuilder { return b.token("opacity", v) }
func (b *ClassBuilder) Ring(v string) *ClassBuilder    { return b.token("ring", v) }

// Motion.

func (b *ClassBuilder) Transition(v string) *ClassBuilder { return b.token("transition", v) }
func (b *ClassBuilder) Duration(v string) *ClassBuilder   { return b.token("duration", v) }
func (b *ClassBuilder) Animate(v string) *ClassBuilder    { return b.token("animate", v) }
func (b *ClassBuilder) Scale(v string) *ClassBuilder      { return b.token("scale", v) }

// Variant wraps everything built inside fn with the named variant prefix.
// Nesting stacks prefixes outermost-first, so
// Breakpoint("md", ...Hover(...)) yields "md:hover:...".
func (b *ClassBuilder) Variant(name string, fn func(*ClassBuilder)) *ClassBuilder {
	inner := NewClassBuilder()
	fn(inner)
	for _, class := range inner.classes {
		b.classes = append(b.classes, name+":"+class)
	}
	return b
}

func (b *ClassBuilder) Hover(fn func(*ClassBuilder)) *ClassBuilder {
	return b.Variant("hover", fn)
}

func (b *ClassBuilder) Focus(fn func(*ClassBuilder)) *ClassBuilder {
	return b.Variant("focus", fn)
}

func (b *ClassBuilder) Dark(fn func(*ClassBuilder)) *ClassBuilder {
	return b.Variant("dark", fn)
}

func (b *ClassBuilder) Breakpoint(name string, fn func(*ClassBuilder)) *ClassBuilder {
	return b.Variant(name, fn)
}

// Classes returns the accumulated class strings in build order.
func (b *ClassBuilder) Classes() []string {
	out := make([]string, len(b.classes))
	copy(out, b.classes)
	return out
}

// String joins the classes the way a class attribute would.
func (b *ClassBuilder) String() string {
	return strings.Join(b.classes, " ")
}

// AddTo registers every built class with the generator.
func (b *ClassBuilder) AddTo(g *Generator) BatchReport {
	return g.AddClasses(b.classes)
}
