package tailgen

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedClass is wrapped by ParseError when no utility parser
// matched a class string. Malformed arbitrary values ("w-[100px") surface
// the same way: the owning parser treats them as a quiet no-match.
var ErrUnrecognizedClass = errors.New("unrecognized class")

// ParseError reports that a single class string could not be turned into
// declarations. It is recoverable: callers continue with the rest of the
// batch and collect these for a coverage report.
type ParseError struct {
	Class string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("class %q: %v", e.Class, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ConfigError reports an invalid Config at session construction. Fatal to
// that session only.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid config: " + e.Reason
}

// BatchFailure pairs a rejected class with its error inside a BatchReport.
type BatchFailure struct {
	Class string
	Err   *ParseError
}

// BatchReport summarizes one AddClasses call. One unrecognized class never
// aborts the batch; every entry is attempted.
type BatchReport struct {
	Succeeded int
	Failed    []BatchFailure
}

// Total returns the number of classes the batch attempted.
func (r BatchReport) Total() int {
	return r.Succeeded + len(r.Failed)
}

// Coverage returns the recognized fraction as a percentage. Empty batches
// count as full coverage.
func (r BatchReport) Coverage() float64 {
	total := r.Total()
	if total == 0 {
		return 100
	}
	return float64(r.Succeeded) / float64(total) * 100
}
