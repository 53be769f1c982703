package tailgen

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ClassMatch is one class token found in a source file.
type ClassMatch struct {
	Class    string
	Location FileLocation
}

// FileLocation tracks where a class token was found.
type FileLocation struct {
	File   string
	Line   int
	Column int // 1-based column of the token
	Text   string
}

// ScanStats tracks file scanning statistics.
type ScanStats struct {
	FilesDiscovered int // files found by glob patterns
	FilesScanned    int // files actually scanned after filtering
	FilesSkipped    int // files skipped due to filtering
	ClassesFound    int // class tokens extracted, duplicates included
}

// attrPatterns capture the quoted value of a class-bearing attribute or
// call. Ordered most specific first; the first pattern that matches a
// span claims it.
var attrPatterns = []*regexp.Regexp{
	regexp.MustCompile(`class="([^"]*)"`),
	regexp.MustCompile(`class='([^']*)'`),
	regexp.MustCompile(`className="([^"]*)"`),
	regexp.MustCompile(`className=\{\s*"([^"]*)"`),
	regexp.MustCompile(`class=\{\s*"([^"]*)"`),
	regexp.MustCompile(`templ\.Classes\(\s*"([^"]*)"`),
	regexp.MustCompile(`templ\.KV\(\s*"([^"]*)"`),
}

var commentLine = regexp.MustCompile(`^\s*(//|<!--|#)`)

var (
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isGenerated reports whether a file is tool-generated and should not be
// scanned. Both _templ.go and .templ.go suffix variations occur.
func isGenerated(path string) bool {
	return strings.HasSuffix(path, "_templ.go") ||
		strings.HasSuffix(path, ".templ.go")
}

// loadGitIgnore loads .gitignore once. A missing file degrades to no
// filtering.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile applies two filter layers: generated-file suffixes, then
// .gitignore rules. Gitignore only applies to paths inside the project,
// so absolute paths bypass it.
func shouldSkipFile(path string) bool {
	if isGenerated(path) {
		return true
	}
	if !filepath.IsAbs(path) {
		if gi := loadGitIgnore(); gi != nil && gi.MatchesPath(path) {
			return true
		}
	}
	return false
}

// ScanFiles scans files matching the glob patterns for utility class
// tokens. Per-file read errors are aggregated and returned alongside the
// matches from the files that did scan; a nil error means every
// discovered file was read.
func ScanFiles(patterns []string, log *zap.Logger) ([]ClassMatch, ScanStats, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("scanner")

	files, stats, err := expandGlobPatterns(patterns)
	if err != nil {
		return nil, stats, err
	}
	log.Debug("glob expansion done",
		zap.Int("discovered", stats.FilesDiscovered),
		zap.Int("skipped", stats.FilesSkipped))

	var matches []ClassMatch
	var errs error
	for _, file := range files {
		found, err := scanFile(file)
		if err != nil {
			log.Warn("scan failed", zap.String("file", file), zap.Error(err))
			errs = multierr.Append(errs, err)
			continue
		}
		matches = append(matches, found...)
	}
	stats.ClassesFound = len(matches)

	return matches, stats, errs
}

// expandGlobPatterns resolves doublestar globs to a deduplicated,
// filtered file list.
func expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		found, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range found {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++
			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			seen[match] = true
			stats.FilesScanned++
		}
	}

	return files, stats, nil
}

func scanFile(path string) ([]ClassMatch, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var matches []ClassMatch
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		matches = append(matches, extractClasses(line, lineNum, path)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return matches, nil
}

// extractClasses pulls individual class tokens out of one source line.
// Attribute values are whitespace-separated token lists; each token
// becomes its own match so coverage reports can point at the exact
// class.
func extractClasses(line string, lineNum int, file string) []ClassMatch {
	if commentLine.MatchString(line) {
		return nil
	}

	var matches []ClassMatch
	claimed := make([]bool, len(line))

	for _, pattern := range attrPatterns {
		for _, m := range pattern.FindAllStringSubmatchIndex(line, -1) {
			if len(m) < 4 || spanClaimed(claimed, m[2], m[3]) {
				continue
			}
			markClaimed(claimed, m[0], m[1])

			value := line[m[2]:m[3]]
			offset := 0
			for _, token := range strings.Fields(value) {
				// Search from the previous token's end so a repeated
				// token reports its own column, not the first one's.
				idx := strings.Index(value[offset:], token)
				if idx < 0 {
					continue
				}
				col := m[2] + offset + idx + 1
				offset += idx + len(token)
				matches = append(matches, ClassMatch{
					Class: token,
					Location: FileLocation{
						File:   file,
						Line:   lineNum,
						Column: col,
						Text:   strings.TrimSpace(line),
					},
				})
			}
		}
	}

	return matches
}

func spanClaimed(claimed []bool, start, end int) bool {
	for i := start; i < end && i < len(claimed); i++ {
		if claimed[i] {
			return true
		}
	}
	return false
}

func markClaimed(claimed []bool, start, end int) {
	for i := start; i < end && i < len(claimed); i++ {
		claimed[i] = true
	}
}

// UniqueClasses deduplicates matches into first-seen order, the order
// classes are fed to a Generator.
func UniqueClasses(matches []ClassMatch) []string {
	seen := make(map[string]bool)
	var classes []string
	for _, m := range matches {
		if !seen[m.Class] {
			seen[m.Class] = true
			classes = append(classes, m.Class)
		}
	}
	return classes
}

// GetRelativePath returns a path relative to the working directory when
// possible, for compact report output.
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}
	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}
	return rel
}
