package stylesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeClass(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"p-4", "p-4"},
		{"text_lg", "text_lg"},
		{"top-[4px]", `top-\[4px\]`},
		{"w-(--my-width)", `w-\(--my-width\)`},
		{"bg-blue-500/50", `bg-blue-500\/50`},
		{"hover:bg-blue-500", `hover\:bg-blue-500`},
		{"md:hover:scale-105", `md\:hover\:scale-105`},
		{"grid-cols-[1fr,2fr]", `grid-cols-\[1fr\,2fr\]`},
		{"w-1/3", `w-1\/3`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeClass(tt.in))
		})
	}
}

func TestEscapeClass_LeadingDigit(t *testing.T) {
	assert.Equal(t, `\32 xl\:p-4`, EscapeClass("2xl:p-4"))
	assert.Equal(t, `\33 d-view`, EscapeClass("3d-view"))
}

func TestClassSelector(t *testing.T) {
	assert.Equal(t, ".p-4", ClassSelector("p-4"))
	assert.Equal(t, `.hover\:p-4`, ClassSelector("hover:p-4"))
	assert.Equal(t, `.\32 xl\:p-4`, ClassSelector("2xl:p-4"))
}
