// Package tailgen compiles utility class strings into CSS.
//
// tailgen parses Tailwind-style class tokens (px-4, bg-blue-500/50,
// hover:scale-105) into CSS declarations and serializes the collected
// rules into stylesheet text.
//
// # Generating CSS
//
// Build a session, feed it class strings, serialize:
//
//	gen, err := tailgen.New(tailgen.DefaultConfig(), nil)
//	if err != nil {
//		return err
//	}
//	report := gen.AddClasses([]string{"p-4", "bg-blue-500", "hover:underline"})
//	css := gen.GenerateCSS()
//
// Unrecognized classes are recoverable: AddClasses reports them per class
// and keeps going, mirroring how coverage over real-world class lists is
// inspected rather than crashed on.
//
// # Scanning sources
//
// ScanFiles discovers class strings in template and markup files:
//
//	found, stats, err := tailgen.ScanFiles([]string{"web/**/*.{templ,html}"}, nil)
//
// # CLI Tool
//
// tailgen also provides a CLI. Install with:
//
//	go install github.com/aethelur/tailgen/cmd/tailgen@latest
package tailgen
