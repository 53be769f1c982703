package tailgen

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// CheckConfig holds coverage-check configuration
type CheckConfig struct {
	ScanPaths []string // patterns to scan (e.g. "web/**/*.{templ,html}")
	Verbose   bool
	Strict    bool    // exit with code 1 below the threshold
	Threshold float64 // minimum coverage percentage for strict mode

	// golangci-style output configuration
	MaxIssues        int  // 0 = unlimited
	MaxSameIssues    int  // 0 = unlimited
	PrintIssuedLines bool // show source lines with issues
	PrintLinterName  bool // show (tailgen) suffix
	UseColors        bool // force color output (default: auto-detect)
}

// CheckResult contains coverage analysis over scanned sources
type CheckResult struct {
	// Statistics
	TotalClasses       int     // distinct class strings found
	RecognizedClasses  int     // distinct classes that parsed
	UnrecognizedCount  int     // distinct classes that did not
	CoveragePercentage float64 // recognized / total
	FilesScanned       int
	OccurrencesFound   int // class tokens including duplicates

	// Issues in golangci-lint format, one per unrecognized occurrence
	Issues         []Issue
	TruncatedCount int

	// Most frequent unrecognized classes, worst first
	TopMisses []ClassFrequency

	Suggestions []string
}

// ClassFrequency counts occurrences of one unrecognized class
type ClassFrequency struct {
	Class       string
	Occurrences int
}

// Check scans the configured paths and reports how much of the class
// vocabulary the parsers cover. Passing a generator accumulates the
// recognized rules into it, so a build can reuse the same pass; nil gets
// a throwaway session with the default config.
func Check(config CheckConfig, gen *Generator, log *zap.Logger) (*CheckResult, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("check")

	matches, stats, err := ScanFiles(config.ScanPaths, log)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	if gen == nil {
		gen, err = New(DefaultConfig(), log)
		if err != nil {
			return nil, err
		}
	}

	result := analyzeCoverage(matches, gen)
	result.FilesScanned = stats.FilesScanned
	result.OccurrencesFound = stats.ClassesFound
	result.Suggestions = coverageSuggestions(result)

	if config.MaxIssues > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}

	log.Debug("coverage computed",
		zap.Int("total", result.TotalClasses),
		zap.Int("recognized", result.RecognizedClasses),
		zap.Float64("coverage", result.CoveragePercentage))

	return result, nil
}

// analyzeCoverage feeds every match through the generator and collects
// unrecognized occurrences as issues.
func analyzeCoverage(matches []ClassMatch, gen *Generator) *CheckResult {
	result := &CheckResult{}

	recognized := make(map[string]bool)
	missCounts := make(map[string]int)
	var issues []Issue

	for _, m := range matches {
		if err := gen.AddClass(m.Class); err != nil {
			missCounts[m.Class]++
			issues = append(issues, Issue{
				FromLinter:  "tailgen",
				Text:        fmt.Sprintf(IssueUnrecognizedClass, m.Class),
				Severity:    SeverityWarning,
				SourceLines: []string{m.Location.Text},
				Pos: IssuePos{
					Filename: GetRelativePath(m.Location.File),
					Line:     m.Location.Line,
					Column:   m.Location.Column,
				},
			})
			continue
		}
		recognized[m.Class] = true
	}

	result.RecognizedClasses = len(recognized)
	result.UnrecognizedCount = len(missCounts)
	result.TotalClasses = result.RecognizedClasses + result.UnrecognizedCount
	if result.TotalClasses > 0 {
		result.CoveragePercentage = float64(result.RecognizedClasses) / float64(result.TotalClasses) * 100
	} else {
		result.CoveragePercentage = 100
	}
	result.Issues = issues
	result.TopMisses = sortByFrequency(missCounts)

	return result
}

// sortByFrequency converts the miss counts into a worst-first top list.
func sortByFrequency(counts map[string]int) []ClassFrequency {
	misses := make([]ClassFrequency, 0, len(counts))
	for class, n := range counts {
		misses = append(misses, ClassFrequency{Class: class, Occurrences: n})
	}
	sort.Slice(misses, func(i, j int) bool {
		if misses[i].Occurrences != misses[j].Occurrences {
			return misses[i].Occurrences > misses[j].Occurrences
		}
		return misses[i].Class < misses[j].Class
	})
	if len(misses) > 10 {
		misses = misses[:10]
	}
	return misses
}

// coverageSuggestions creates actionable recommendations
func coverageSuggestions(result *CheckResult) []string {
	var suggestions []string

	if result.UnrecognizedCount > 0 {
		suggestions = append(suggestions,
			"Check Top Misses for typos; a single fixed class often clears many occurrences")
	}
	if result.CoveragePercentage < 80 && result.TotalClasses > 0 {
		suggestions = append(suggestions,
			"Arbitrary values (w-[420px]) and custom properties (w-(--width)) cover one-off values without new utilities")
	}

	return suggestions
}

// limitIssues applies max-issues and max-same-issues constraints
func limitIssues(issues []Issue, config CheckConfig) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxSameIssues > 0 {
		counts := make(map[string]int)
		var filtered []Issue
		for _, issue := range issues {
			if counts[issue.Text] < config.MaxSameIssues {
				filtered = append(filtered, issue)
				counts[issue.Text]++
			}
		}
		issues = filtered
	}

	if config.MaxIssues > 0 && len(issues) > config.MaxIssues {
		issues = issues[:config.MaxIssues]
	}

	return issues, originalCount - len(issues)
}
