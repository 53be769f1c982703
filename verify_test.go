package tailgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyCSS(t *testing.T) {
	valid := []string{
		"",
		".p-4 {\n  padding: 1rem;\n}\n",
		".p-4{padding:1rem}",
		"@media (min-width: 768px) {\n  .md\\:flex {\n    display: flex;\n  }\n}\n",
		"@keyframes spin {\n  from {\n    transform: rotate(0deg);\n  }\n  to {\n    transform: rotate(360deg);\n  }\n}\n",
		":root {\n  --my-width: initial;\n}\n",
		`.bg-blue-500\/50 { background-color: rgba(59, 130, 246, 0.5); }`,
	}
	for _, css := range valid {
		assert.NoError(t, VerifyCSS(css), css)
	}
}
