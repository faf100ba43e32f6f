package generator

import (
	"strings"

	"github.com/v19i/openapi-enum-arrays/extractor"
)

// Include keeps the records whose name contains at least one of patterns.
// Empty patterns are ignored; with no usable pattern every record is kept.
func Include(records []extractor.Record, patterns []string) []extractor.Record {
	patterns = cleanPatterns(patterns)
	if len(patterns) == 0 {
		return records
	}
	var kept []extractor.Record
	for _, r := range records {
		if matchesAny(r.Name, patterns) {
			kept = append(kept, r)
		}
	}
	return kept
}

// Exclude drops the records whose name contains any of patterns.
func Exclude(records []extractor.Record, patterns []string) []extractor.Record {
	patterns = cleanPatterns(patterns)
	if len(patterns) == 0 {
		return records
	}
	var kept []extractor.Record
	for _, r := range records {
		if !matchesAny(r.Name, patterns) {
			kept = append(kept, r)
		}
	}
	return kept
}

// SplitPatterns splits comma-separated pattern lists as accepted on the
// command line and in environment variables.
func SplitPatterns(values ...string) []string {
	var patterns []string
	for _, v := range values {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				patterns = append(patterns, p)
			}
		}
	}
	return patterns
}

func cleanPatterns(patterns []string) []string {
	var cleaned []string
	for _, p := range patterns {
		if p = strings.TrimSpace(p); p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return cleaned
}

func matchesAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(name, p) {
			return true
		}
	}
	return false
}
