package tailgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func classNames(matches []ClassMatch) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Class)
	}
	return out
}

func TestScanFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.html", `<div class="p-4 bg-blue-500">
<span class="text-lg"></span>`)
	writeFile(t, dir, "app.templ", `<button class="px-6 hover:bg-blue-600">Go</button>`)

	matches, stats, err := ScanFiles([]string{filepath.Join(dir, "*.html"), filepath.Join(dir, "*.templ")}, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.FilesDiscovered)
	assert.Equal(t, 2, stats.FilesScanned)
	assert.Equal(t, 0, stats.FilesSkipped)
	assert.Equal(t, 5, stats.ClassesFound)
	assert.ElementsMatch(t,
		[]string{"p-4", "bg-blue-500", "text-lg", "px-6", "hover:bg-blue-600"},
		classNames(matches))
}

func TestScanFiles_Locations(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "page.html", `<html>
<div class="p-4"></div>
</html>`)

	matches, _, err := ScanFiles([]string{filepath.Join(dir, "*.html")}, nil)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	loc := matches[0].Location
	assert.Equal(t, path, loc.File)
	assert.Equal(t, 2, loc.Line)
	assert.Equal(t, 13, loc.Column)
	assert.Equal(t, `<div class="p-4"></div>`, loc.Text)
}

func TestScanFiles_AttributeForms(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "mixed.templ", `<div class='m-2'></div>
<div className="flex"></div>
<div className={ "gap-2" }></div>
templ.Classes("rounded-lg")
templ.KV("shadow-md", true)`)

	matches, _, err := ScanFiles([]string{filepath.Join(dir, "*.templ")}, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"m-2", "flex", "gap-2", "rounded-lg", "shadow-md"},
		classNames(matches))
}

func TestScanFiles_SkipsCommentLines(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.templ", `// class="p-4"
<!-- class="m-2" -->
# class="gap-2"
<div class="flex"></div>`)

	matches, _, err := ScanFiles([]string{filepath.Join(dir, "*.templ")}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"flex"}, classNames(matches))
}

func TestScanFiles_SkipsGeneratedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "page_templ.go", `templ.Classes("p-4")`)
	writeFile(t, dir, "page.templ.go", `class="m-2"`)
	writeFile(t, dir, "real.go", `templ.Classes("flex")`)

	matches, stats, err := ScanFiles([]string{filepath.Join(dir, "*.go")}, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.FilesDiscovered)
	assert.Equal(t, 2, stats.FilesSkipped)
	assert.Equal(t, 1, stats.FilesScanned)
	assert.Equal(t, []string{"flex"}, classNames(matches))
}

func TestScanFiles_DuplicatePatternsDeduped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.html", `<div class="p-4"></div>`)

	glob := filepath.Join(dir, "*.html")
	matches, stats, err := ScanFiles([]string{glob, glob}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FilesDiscovered)
	assert.Len(t, matches, 1)
}

func TestScanFiles_NoMatches(t *testing.T) {
	dir := t.TempDir()
	matches, stats, err := ScanFiles([]string{filepath.Join(dir, "*.html")}, nil)
	require.NoError(t, err)
	assert.Empty(t, matches)
	assert.Equal(t, 0, stats.FilesDiscovered)
}

func TestGetRelativePath(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	assert.Equal(t, "web/index.html", GetRelativePath(filepath.Join(cwd, "web", "index.html")))
	assert.Equal(t, ".", GetRelativePath(cwd))
}

func TestUniqueClasses(t *testing.T) {
	matches := []ClassMatch{
		{Class: "p-4"},
		{Class: "m-2"},
		{Class: "p-4"},
		{Class: "flex"},
		{Class: "m-2"},
	}
	assert.Equal(t, []string{"p-4", "m-2", "flex"}, UniqueClasses(matches))
	assert.Nil(t, UniqueClasses(nil))
}

func TestExtractClasses_MultipleAttributesPerLine(t *testing.T) {
	line := `<div class="p-4"><span class="m-2 flex"></span></div>`
	matches := extractClasses(line, 1, "x.html")
	assert.ElementsMatch(t, []string{"p-4", "m-2", "flex"}, classNames(matches))
}

func TestExtractClasses_RepeatedTokenColumns(t *testing.T) {
	matches := extractClasses(`<div class="p-4 x p-4">`, 1, "x.html")
	require.Len(t, matches, 3)

	assert.Equal(t, "p-4", matches[0].Class)
	assert.Equal(t, 13, matches[0].Location.Column)
	assert.Equal(t, "x", matches[1].Class)
	assert.Equal(t, 17, matches[1].Location.Column)
	assert.Equal(t, "p-4", matches[2].Class)
	assert.Equal(t, 19, matches[2].Location.Column)
}

func TestExtractClasses_EmptyAttribute(t *testing.T) {
	assert.Empty(t, extractClasses(`<div class=""></div>`, 1, "x.html"))
	assert.Empty(t, extractClasses(`<div id="top"></div>`, 1, "x.html"))
}
