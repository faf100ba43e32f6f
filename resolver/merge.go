package resolver

import (
	"strings"

	"github.com/v19i/openapi-enum-arrays/extractor"
	"github.com/v19i/openapi-enum-arrays/internal/severity"
)

const (
	scoreBase           = 50
	scoreGenericPenalty = 20
	scoreContextBonus   = 10
)

var (
	genericFragments = []string{"data", "response", "request", "query", "body", "params"}
	contextFragments = []string{"request", "response", "query"}
)

// Score rates a candidate name when several records carry the same values.
// Shorter names score higher, names containing generic fragments lose 20
// points, and names naming a context win back 10.
func Score(name string) int {
	lower := strings.ToLower(name)
	score := scoreBase - len(name)
	if containsAny(lower, genericFragments) {
		score -= scoreGenericPenalty
	}
	if containsAny(lower, contextFragments) {
		score += scoreContextBonus
	}
	return score
}

func containsAny(s string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}

// mergeGroup collects the records sharing one value signature.
type mergeGroup struct {
	members  []extractor.Record
	survivor int
}

// Merge collapses records with identical value sets into one survivor per
// set. The survivor is the highest scoring name; ties go to the record seen
// first. Survivors keep the order in which their value set first appeared.
// Merge is idempotent.
func Merge(records []extractor.Record) ([]extractor.Record, []Event) {
	groups := make(map[string]*mergeGroup)
	var order []string

	for _, r := range records {
		sig := r.Signature()
		g, ok := groups[sig]
		if !ok {
			g = &mergeGroup{}
			groups[sig] = g
			order = append(order, sig)
		}
		g.members = append(g.members, r)
		if Score(r.Name) > Score(g.members[g.survivor].Name) {
			g.survivor = len(g.members) - 1
		}
	}

	var (
		merged []extractor.Record
		events []Event
		seen   = make(map[string]bool)
	)
	for _, sig := range order {
		g := groups[sig]
		survivor := g.members[g.survivor]

		key := survivor.Name + ":" + sig
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, survivor)

		for i, m := range g.members {
			if i == g.survivor {
				continue
			}
			events = append(events, Event{
				Kind:         EventMerged,
				Path:         m.OriginalPath,
				OldName:      m.Name,
				NewName:      survivor.Name,
				SurvivorPath: survivor.OriginalPath,
				Severity:     severity.SeverityInfo,
			})
		}
	}
	return merged, events
}
