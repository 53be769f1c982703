package tailgen

import (
	"fmt"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// VerifyCSS lexes generated stylesheet text and returns an error on the
// first syntax problem. The generator's output contract is "parseable by
// any standard CSS parser"; this is the cheap self-check behind the
// build --verify flag.
func VerifyCSS(content string) error {
	input := parse.NewInputString(content)
	lexer := css.NewLexer(input)

	for {
		tt, text := lexer.Next()
		if tt != css.ErrorToken {
			continue
		}
		err := lexer.Err()
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("invalid CSS at offset %d near %q: %w", input.Offset(), string(text), err)
	}
}
