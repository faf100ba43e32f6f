package resolver

import (
	"slices"
	"strings"

	"github.com/v19i/openapi-enum-arrays/emitter"
	"github.com/v19i/openapi-enum-arrays/extractor"
	"github.com/v19i/openapi-enum-arrays/internal/naming"
	"github.com/v19i/openapi-enum-arrays/internal/severity"
)

// Option configures Resolve.
type Option func(*resolveConfig)

type resolveConfig struct {
	classifier Classifier
}

// WithClassifier replaces the default path classifier used by the rename pass.
// A nil classifier keeps the default.
func WithClassifier(c Classifier) Option {
	return func(cfg *resolveConfig) {
		if c != nil {
			cfg.classifier = c
		}
	}
}

// Result contains the outcome of resolving a set of records.
type Result struct {
	// Records are the surviving records in first-seen order.
	Records []extractor.Record
	// Events lists every rename and merge decision in the order taken.
	Events []Event
}

// Count returns the number of events of the given kind.
func (r *Result) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Warnings returns the events at warning severity or above.
func (r *Result) Warnings() []Event {
	var warnings []Event
	for _, e := range r.Events {
		if e.Severity >= severity.SeverityWarning {
			warnings = append(warnings, e)
		}
	}
	return warnings
}

// Resolve runs the rename pass followed by the merge pass. Records must
// already carry derived names. The input slice is not modified.
func Resolve(records []extractor.Record, opts ...Option) *Result {
	cfg := &resolveConfig{classifier: DefaultClassifier()}
	for _, opt := range opts {
		opt(cfg)
	}

	renamed, renameEvents := RenameCollisions(records, cfg.classifier)
	merged, mergeEvents := Merge(renamed)

	return &Result{
		Records: merged,
		Events:  append(renameEvents, mergeEvents...),
	}
}

// RenameCollisions qualifies records that share a name with the context of
// their path. A record in a group of one keeps its name. In larger groups a
// record whose path classifies as query, request or response is renamed to
// the qualifier followed by its field (queryFormat); a record without a
// recognizable context keeps its name and an EventUnresolvedCollision is
// reported. Records whose identifiers still collide with a different value
// set afterwards get distinguishable names.
//
// The returned slice has the same length and order as records.
func RenameCollisions(records []extractor.Record, classifier Classifier) ([]extractor.Record, []Event) {
	if classifier == nil {
		classifier = DefaultClassifier()
	}
	out := slices.Clone(records)

	groups := make(map[string][]int)
	var order []string
	for i, r := range out {
		if _, ok := groups[r.Name]; !ok {
			order = append(order, r.Name)
		}
		groups[r.Name] = append(groups[r.Name], i)
	}

	var events []Event
	for _, name := range order {
		members := groups[name]
		if len(members) < 2 {
			continue
		}
		for _, i := range members {
			r := &out[i]
			ctx := classifier.Classify(r.OriginalPath)
			qualifier := ctx.Qualifier()
			if qualifier == "" {
				events = append(events, Event{
					Kind:     EventUnresolvedCollision,
					Path:     r.OriginalPath,
					OldName:  r.Name,
					NewName:  r.Name,
					Context:  ctx,
					Severity: severity.SeverityWarning,
				})
				continue
			}

			suffix := naming.ToIdentifier(r.Field())
			if suffix == "" {
				suffix = r.Name
			}
			newName := qualifier + naming.Capitalize(suffix)
			events = append(events, Event{
				Kind:     EventRenamed,
				Path:     r.OriginalPath,
				OldName:  r.Name,
				NewName:  newName,
				Context:  ctx,
				Severity: severity.SeverityInfo,
			})
			r.Name = newName
		}
	}

	return out, append(events, separateDivergentNames(out)...)
}

// separateDivergentNames renames records whose emitted identifier collides
// with a record carrying different values. Within such a group, a record
// whose name does not mention its field is qualified with it first, so three
// properties of Pet all named pet become petStatus, petTier and petKind. Of
// the records still colliding, the first keeps its name and later ones are
// prefixed with their enclosing type, or named after their parent path.
// Records with equal values are left for the merge pass.
func separateDivergentNames(records []extractor.Record) []Event {
	var events []Event
	rename := func(r *extractor.Record, newName string) {
		events = append(events, Event{
			Kind:     EventFallbackName,
			Path:     r.OriginalPath,
			OldName:  r.Name,
			NewName:  newName,
			Severity: severity.SeverityWarning,
		})
		r.Name = newName
	}

	for _, members := range divergentGroups(records) {
		for _, i := range members {
			r := &records[i]
			field := naming.ToIdentifier(r.Field())
			if field != "" && !strings.Contains(strings.ToLower(r.Name), strings.ToLower(field)) {
				rename(r, r.Name+naming.Capitalize(field))
			}
		}
	}

	owners := make(map[string]string, len(records))
	for _, r := range records {
		if key := identifierKey(r.Name); owners[key] == "" {
			owners[key] = r.Signature()
		}
	}
	for i := range records {
		r := &records[i]
		sig := r.Signature()
		if owners[identifierKey(r.Name)] == sig {
			continue
		}
		for _, candidate := range fallbackCandidates(*r) {
			key := identifierKey(candidate)
			if owner, taken := owners[key]; !taken || owner == sig {
				rename(r, candidate)
				owners[key] = sig
				break
			}
		}
	}
	return events
}

// identifierKey is the identifier a name is emitted under, without prefix.
// Names with equal keys collide in the output even when they differ.
func identifierKey(name string) string {
	return emitter.Identifier(name, "")
}

// divergentGroups returns the indexes of records sharing an identifier key,
// for each key whose records carry more than one value set.
func divergentGroups(records []extractor.Record) [][]int {
	groups := make(map[string][]int)
	var order []string
	for i, r := range records {
		key := identifierKey(r.Name)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
	}

	var divergent [][]int
	for _, key := range order {
		members := groups[key]
		first := records[members[0]].Signature()
		for _, i := range members[1:] {
			if records[i].Signature() != first {
				divergent = append(divergent, members)
				break
			}
		}
	}
	return divergent
}

// fallbackCandidates lists the distinguishable names for r in order of preference.
func fallbackCandidates(r extractor.Record) []string {
	var candidates []string
	typed := naming.LowerFirst(naming.ToIdentifier(r.TypeName()))
	if typed != "" && !strings.HasPrefix(strings.ToLower(r.Name), strings.ToLower(typed)) {
		candidates = append(candidates, typed+naming.Capitalize(r.Name))
	}
	if r.IsStandalone() {
		return candidates
	}
	i := strings.LastIndex(r.OriginalPath, ".")
	field := naming.ToIdentifier(r.Field())
	if i < 0 || field == "" {
		return candidates
	}
	parent := naming.ToCamelCase(naming.ToIdentifier(strings.ReplaceAll(r.OriginalPath[:i], ".", "_")))
	return append(candidates, parent+naming.Capitalize(field))
}
