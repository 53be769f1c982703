package tailgen

import (
	"fmt"
	"io"
)

// VerboseReporter handles coverage statistics and suggestions
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs detailed coverage statistics
func (r *VerboseReporter) PrintStatistics(result CheckResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Class Coverage Statistics", r.useColors))
	fmt.Fprintln(r.w, "-------------------------")

	fmt.Fprintf(r.w, "Distinct Classes:     %d\n", result.TotalClasses)
	fmt.Fprintf(r.w, "Recognized:           %d (%.1f%%)\n", result.RecognizedClasses, result.CoveragePercentage)
	fmt.Fprintf(r.w, "Unrecognized:         %d\n", result.UnrecognizedCount)
	fmt.Fprintf(r.w, "Files Scanned:        %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Total Occurrences:    %d\n", result.OccurrencesFound)
}

// PrintCoverageBar shows a visual coverage bar
func (r *VerboseReporter) PrintCoverageBar(result CheckResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Coverage", r.useColors))
	fmt.Fprintln(r.w, "--------")
	printProgressBar(r.w, result.CoveragePercentage)
}

// PrintTopMisses shows the most frequently missed classes
func (r *VerboseReporter) PrintTopMisses(result CheckResult) {
	if len(result.TopMisses) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Top Misses", r.useColors))
	fmt.Fprintln(r.w, "----------")

	for i, miss := range result.TopMisses {
		fmt.Fprintf(r.w, "%d. %q - %s\n",
			i+1, miss.Class, pluralizeCount(miss.Occurrences, "occurrence", "occurrences"))
	}
}

// PrintSuggestions shows actionable recommendations
func (r *VerboseReporter) PrintSuggestions(result CheckResult) {
	if len(result.Suggestions) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Recommendations", r.useColors))
	fmt.Fprintln(r.w, "---------------")

	for _, suggestion := range result.Suggestions {
		fmt.Fprintf(r.w, "• %s\n", suggestion)
	}
}

// printProgressBar prints a visual progress bar
func printProgressBar(w io.Writer, percentage float64) {
	barWidth := 20
	filled := int(percentage / 100 * float64(barWidth))

	fmt.Fprint(w, "[")
	for i := 0; i < barWidth; i++ {
		if i < filled {
			fmt.Fprint(w, "█")
		} else {
			fmt.Fprint(w, "░")
		}
	}
	fmt.Fprintf(w, "] %.1f%%\n", percentage)
}
