// Package enumarrays turns generated TypeScript type definitions into a
// deduplicated set of constant enum arrays.
//
// OpenAPI client generators emit every string enum as a union of literals,
// often many times over: once per operation, once for the query, once for
// the request body, once more for the response. enumarrays scans that output,
// names every enumeration from where it was found, resolves name collisions
// using the request/response context of the path, and merges enumerations
// whose value sets are identical.
//
// # Packages
//
//   - extractor: scan type-definition text and recover literal unions with their structural path
//   - resolver: derive names, resolve name collisions, merge identical value sets
//   - emitter: render surviving enumerations as TypeScript (or Go) declarations
//   - generator: the end-to-end pipeline with filtering, file I/O, and diagnostics
//   - enumerrors: structured error types for errors.Is / errors.As
//
// # Quick Start
//
//	import "github.com/v19i/openapi-enum-arrays/generator"
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithInputPath("src/client/types.gen.ts"),
//		generator.WithOutputPath("src/client/enums.gen.ts"),
//		generator.WithExcludePatterns("internal"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%d enum arrays written to %s\n", len(result.Records), result.WrittenTo)
//
// Given
//
//	export type OrderStatus = 'PENDING' | 'COMPLETED';
//
// the generated file contains
//
//	export const orderStatuses = ['COMPLETED', 'PENDING'] as const;
package enumarrays
