package tailgen

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	issue := issueAt("web/index.html", 3, 8, "bogus")
	issue.SourceLines = []string{`<div class="bogus">`}

	result := &CheckResult{
		TotalClasses:       4,
		RecognizedClasses:  3,
		UnrecognizedCount:  1,
		CoveragePercentage: 75,
		FilesScanned:       2,
		OccurrencesFound:   6,
		Issues:             []Issue{issue},
		TopMisses:          []ClassFrequency{{Class: "bogus", Occurrences: 3}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, result))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "1.0", out.Version)
	_, err := time.Parse(time.RFC3339, out.Timestamp)
	assert.NoError(t, err)

	assert.Equal(t, 4, out.Summary.TotalClasses)
	assert.Equal(t, 3, out.Summary.RecognizedClasses)
	assert.Equal(t, 1, out.Summary.UnrecognizedCount)
	assert.InDelta(t, 75.0, out.Summary.CoveragePercentage, 0.01)
	assert.Equal(t, 1, out.Summary.TotalIssues)

	require.Len(t, out.Issues, 1)
	assert.Equal(t, "web/index.html", out.Issues[0].File)
	assert.Equal(t, 3, out.Issues[0].Line)
	assert.Equal(t, 8, out.Issues[0].Column)
	assert.Equal(t, SeverityWarning, out.Issues[0].Severity)
	assert.Equal(t, `<div class="bogus">`, out.Issues[0].Source)

	require.Len(t, out.TopMisses, 1)
	assert.Equal(t, "bogus", out.TopMisses[0].Class)
	assert.Equal(t, 3, out.TopMisses[0].Occurrences)
}

func TestWriteJSON_EmptyResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, &CheckResult{CoveragePercentage: 100}))

	assert.Contains(t, buf.String(), `"issues": []`)
	assert.Contains(t, buf.String(), `"top_misses": []`)
}
