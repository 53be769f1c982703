package tailgen

import (
	"io"
	"os"
)

// OutputFormat represents the coverage report output format
type OutputFormat string

const (
	// OutputIssues shows only warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics and Top Misses only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics + Top Misses
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data for tooling integration
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat selects the output format based on flags. Quiet
// wins over everything; an unknown format falls back to the default.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	if quiet {
		return OutputIssues // suppressed by the caller, exit code only
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	}

	return OutputIssues
}

// WriteOutput writes the coverage result in the specified format
func WriteOutput(w io.Writer, result *CheckResult, format OutputFormat, config CheckConfig) {
	switch format {
	case OutputIssues:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

	case OutputSummary:
		verbose := NewVerboseReporter(w, shouldUseColors(config))
		verbose.PrintStatistics(*result)
		verbose.PrintCoverageBar(*result)
		verbose.PrintTopMisses(*result)
		verbose.PrintSuggestions(*result)

	case OutputFull:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

		verbose := NewVerboseReporter(w, reporter.UseColors())
		verbose.PrintStatistics(*result)
		verbose.PrintCoverageBar(*result)
		verbose.PrintTopMisses(*result)
		verbose.PrintSuggestions(*result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}
	}
}
