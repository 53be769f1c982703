package tailgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassBuilder_Basic(t *testing.T) {
	classes := NewClassBuilder().
		Padding("4").
		BackgroundColor("blue-500").
		Flex().
		Classes()

	assert.Equal(t, []string{"p-4", "bg-blue-500", "flex"}, classes)
}

func TestClassBuilder_String(t *testing.T) {
	s := NewClassBuilder().Padding("4").Margin("2").String()
	assert.Equal(t, "p-4 m-2", s)
}

func TestClassBuilder_EmptyValueOmitted(t *testing.T) {
	classes := NewClassBuilder().
		Border("").
		Transition("").
		Rounded("").
		Classes()

	assert.Equal(t, []string{"border", "transition", "rounded"}, classes)
}

func TestClassBuilder_ClassSkipsEmpty(t *testing.T) {
	classes := NewClassBuilder().Class("").Class("p-4").Classes()
	assert.Equal(t, []string{"p-4"}, classes)
}

func TestClassBuilder_Variants(t *testing.T) {
	classes := NewClassBuilder().
		Padding("4").
		Hover(func(b *ClassBuilder) {
			b.BackgroundColor("blue-600").Opacity("90")
		}).
		Classes()

	assert.Equal(t, []string{"p-4", "hover:bg-blue-600", "hover:opacity-90"}, classes)
}

func TestClassBuilder_NestedVariants(t *testing.T) {
	classes := NewClassBuilder().
		Breakpoint("md", func(b *ClassBuilder) {
			b.Hover(func(b *ClassBuilder) {
				b.Scale("105")
			})
		}).
		Classes()

	assert.Equal(t, []string{"md:hover:scale-105"}, classes)
}

func TestClassBuilder_DarkVariant(t *testing.T) {
	classes := NewClassBuilder().
		Dark(func(b *ClassBuilder) {
			b.BackgroundColor("gray-800").TextColor("white")
		}).
		Classes()

	assert.Equal(t, []string{"dark:bg-gray-800", "dark:text-white"}, classes)
}

func TestClassBuilder_ClassesReturnsCopy(t *testing.T) {
	b := NewClassBuilder().Padding("4")
	got := b.Classes()
	got[0] = "mutated"
	assert.Equal(t, []string{"p-4"}, b.Classes())
}

// Builder output goes through the same parse path as raw strings, so
// every method must produce a recognized class.
func TestClassBuilder_AddTo(t *testing.T) {
	g := newGenerator(t)
	report := NewClassBuilder().
		Padding("4").
		PaddingX("6").
		Margin("2").
		Gap("2").
		Width("full").
		Height("screen").
		MaxWidth("xl").
		Flex().
		Items("center").
		Justify("between").
		GridCols("3").
		BackgroundColor("blue-500").
		TextColor("white").
		FontSize("lg").
		FontWeight("bold").
		Leading("tight").
		Tracking("wide").
		Border("2").
		Rounded("lg").
		Shadow("md").
		Opacity("50").
		Transition("").
		Duration("150").
		Animate("spin").
		Hover(func(b *ClassBuilder) { b.BackgroundColor("blue-600") }).
		AddTo(g)

	assert.Empty(t, report.Failed)
	assert.Equal(t, report.Succeeded, report.Total())
	require.NoError(t, VerifyCSS(g.GenerateCSS()))
}
