package resolver

import (
	"fmt"

	"github.com/v19i/openapi-enum-arrays/internal/severity"
)

// EventKind identifies the type of resolution decision.
type EventKind string

const (
	// EventRenamed indicates a colliding name was qualified by its path context.
	EventRenamed EventKind = "renamed"
	// EventUnresolvedCollision indicates a colliding name had no recognizable
	// context and was left unchanged.
	EventUnresolvedCollision EventKind = "unresolved_collision"
	// EventFallbackName indicates a record whose identifier collided with a
	// different value set was renamed after its field, type or parent path.
	EventFallbackName EventKind = "fallback_name"
	// EventMerged indicates a record was dropped in favor of another record
	// carrying the same values.
	EventMerged EventKind = "merged"
)

// Event is one decision taken while resolving records.
type Event struct {
	// Kind identifies the decision.
	Kind EventKind `json:"kind" yaml:"kind"`
	// Path is the OriginalPath of the affected record.
	Path string `json:"path" yaml:"path"`
	// OldName is the record name before the decision.
	OldName string `json:"oldName" yaml:"oldName"`
	// NewName is the record name after the decision. For merges it is the
	// name of the surviving record.
	NewName string `json:"newName,omitempty" yaml:"newName,omitempty"`
	// SurvivorPath is the OriginalPath of the surviving record of a merge.
	SurvivorPath string `json:"survivorPath,omitempty" yaml:"survivorPath,omitempty"`
	// Context is the classified context of Path, for rename decisions.
	Context Context `json:"context,omitempty" yaml:"context,omitempty"`
	// Severity indicates how much attention the decision deserves.
	Severity severity.Severity `json:"severity" yaml:"severity"`
}

// String returns a one-line description of the event.
func (e Event) String() string {
	switch e.Kind {
	case EventRenamed:
		return fmt.Sprintf("renamed %s to %s (%s context) at %s", e.OldName, e.NewName, e.Context, e.Path)
	case EventUnresolvedCollision:
		return fmt.Sprintf("name %s collides but %s has no recognizable context", e.OldName, e.Path)
	case EventFallbackName:
		return fmt.Sprintf("renamed %s to %s after its enclosing type at %s", e.OldName, e.NewName, e.Path)
	case EventMerged:
		return fmt.Sprintf("merged %s (%s) into %s (%s)", e.OldName, e.Path, e.NewName, e.SurvivorPath)
	default:
		return fmt.Sprintf("%s: %s at %s", e.Kind, e.OldName, e.Path)
	}
}
