package tailgen

// Issue represents a single coverage finding in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"` // "tailgen"
	Text        string   `json:"Text"`
	Severity    string   `json:"Severity"` // "", "warning", "error"
	SourceLines []string `json:"SourceLines"`
	Pos         IssuePos `json:"Pos"`
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based, exact start of the class token
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Issue message formats
const (
	IssueUnrecognizedClass = "unrecognized utility class %q"
	IssueEmptyClassAttr    = "empty class attribute"
)
