// Package severity provides the severity levels attached to pipeline
// decision events (renames, merges, unresolved collisions).
//
// The levels are ordered from least to most severe: Info < Warning < Error.
package severity

import "fmt"

// Severity indicates how much attention a pipeline event deserves.
type Severity int

const (
	// SeverityInfo marks routine decisions: a rename by context, a merge of identical value sets.
	SeverityInfo Severity = iota

	// SeverityWarning marks decisions that may surprise the reader of the output,
	// such as a name collision that could not be qualified by context.
	SeverityWarning

	// SeverityError marks conditions that prevented output from being produced.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText renders the severity by name in JSON and YAML reports.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a severity name produced by MarshalText.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "info":
		*s = SeverityInfo
	case "warning":
		*s = SeverityWarning
	case "error":
		*s = SeverityError
	default:
		return fmt.Errorf("severity: unknown level %q", string(text))
	}
	return nil
}
