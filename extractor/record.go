package extractor

import (
	"slices"
	"strings"
)

// StandalonePrefix prefixes the OriginalPath of records found by the
// standalone declaration pass.
const StandalonePrefix = "type "

// SignatureSeparator joins sorted values in a Record signature.
const SignatureSeparator = "|"

// Record is one discovered enumeration together with where it was found.
type Record struct {
	// Name is the current semantic name. Empty until a name is derived.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Values holds the distinct literal values in first-seen order.
	Values []string `json:"values" yaml:"values"`
	// OriginalPath is "type Name" for standalone declarations or a dot-joined
	// property chain such as "Pet.owner.tier". It identifies the record.
	OriginalPath string `json:"originalPath" yaml:"originalPath"`
}

// SortedValues returns a lexicographically sorted copy of Values.
func (r Record) SortedValues() []string {
	sorted := slices.Clone(r.Values)
	slices.Sort(sorted)
	return sorted
}

// Signature returns the order-insensitive identity of the value set.
// Two records with the same signature carry the same enumeration.
func (r Record) Signature() string {
	return strings.Join(r.SortedValues(), SignatureSeparator)
}

// IsStandalone reports whether the record came from a top-level `type X = ...` declaration.
func (r Record) IsStandalone() bool {
	return strings.HasPrefix(r.OriginalPath, StandalonePrefix)
}

// TypeName returns the name of the enclosing top-level type: the declared
// name for standalone records, the first path segment otherwise.
func (r Record) TypeName() string {
	if r.IsStandalone() {
		return strings.TrimPrefix(r.OriginalPath, StandalonePrefix)
	}
	root, _, _ := strings.Cut(r.OriginalPath, ".")
	return root
}

// Field returns the trailing property name of a nested path, or "" when the
// path has no dot segment.
func (r Record) Field() string {
	return FieldSegment(r.OriginalPath)
}

// FieldSegment returns the text after the last dot of path, or "" when path
// has no dot.
func FieldSegment(path string) string {
	i := strings.LastIndex(path, ".")
	if i < 0 {
		return ""
	}
	return path[i+1:]
}
