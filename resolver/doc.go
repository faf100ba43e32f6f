// Package resolver names extracted enumerations and reconciles them into a
// deduplicated set.
//
// Resolution runs two passes over the records produced by the extractor
// package:
//
//   - The rename pass groups records by their derived name. When several
//     records share a name, each is qualified by the structural context of
//     its path (query, request or response) as reported by a [Classifier].
//   - The merge pass groups records by their value signature and keeps one
//     survivor per group, chosen by a name score that favors short names
//     without generic words.
//
// Every decision is reported as an [Event] so callers can log or display
// what happened without the passes producing output themselves.
//
// # Example
//
//	records := extractor.Extract(text)
//	for i := range records {
//		records[i].Name = resolver.DeriveName(records[i].Values, records[i].OriginalPath)
//	}
//	result := resolver.Resolve(records)
//	for _, r := range result.Records {
//		fmt.Println(r.Name, r.Values)
//	}
package resolver
