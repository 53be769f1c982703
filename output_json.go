package tailgen

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string          `json:"version"`
	Timestamp string          `json:"timestamp"`
	Summary   JSONSummary     `json:"summary"`
	Issues    []JSONIssue     `json:"issues"`
	TopMisses []JSONFrequency `json:"top_misses"`
}

// JSONSummary contains coverage statistics
type JSONSummary struct {
	TotalClasses       int     `json:"total_classes"`
	RecognizedClasses  int     `json:"recognized_classes"`
	UnrecognizedCount  int     `json:"unrecognized_classes"`
	CoveragePercentage float64 `json:"coverage_percentage"`
	FilesScanned       int     `json:"files_scanned"`
	OccurrencesFound   int     `json:"occurrences_found"`
	TotalIssues        int     `json:"total_issues"`
}

// JSONIssue represents a single coverage issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"`
}

// JSONFrequency represents one frequently missed class
type JSONFrequency struct {
	Class       string `json:"class"`
	Occurrences int    `json:"occurrences"`
}

// WriteJSON writes the coverage result as JSON
func WriteJSON(w io.Writer, result *CheckResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result))
}

// buildJSONOutput converts CheckResult to JSONOutput
func buildJSONOutput(result *CheckResult) JSONOutput {
	issues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		issues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	misses := make([]JSONFrequency, len(result.TopMisses))
	for i, miss := range result.TopMisses {
		misses[i] = JSONFrequency{Class: miss.Class, Occurrences: miss.Occurrences}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalClasses:       result.TotalClasses,
			RecognizedClasses:  result.RecognizedClasses,
			UnrecognizedCount:  result.UnrecognizedCount,
			CoveragePercentage: result.CoveragePercentage,
			FilesScanned:       result.FilesScanned,
			OccurrencesFound:   result.OccurrencesFound,
			TotalIssues:        len(result.Issues),
		},
		Issues:    issues,
		TopMisses: misses,
	}
}
