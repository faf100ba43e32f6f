// Package extractor recovers string-literal union enumerations from generated
// TypeScript type definitions.
//
// The extractor is a best-effort structural scanner, not a TypeScript parser.
// It runs two independent passes over the input and concatenates their results:
//
//   - Standalone declarations: every `type Name = 'a' | 'b'` in the text,
//     recorded with the path "type Name".
//   - Nested properties: a line-by-line walk that tracks which object type and
//     which nested object properties enclose each line, and records every
//     property whose type is a literal union with the dot-joined path
//     "Type.prop1.prop2.field".
//
// # Recognized shapes
//
//	export type Status = 'active' | 'inactive';          // standalone
//	export type Pet = {                                  // starts a type scope
//	    kind: 'cat' | 'dog';                             // union property: Pet.kind
//	    owner: {                                         // nested object: pushes "owner"
//	        tier?: Array<'free' | 'pro'>;                // array-wrapped: Pet.owner.tier
//	    };
//	    url: '/pets/{id}';                               // literal with braces: not an object
//	};
//
// Lines that match none of these shapes are structurally inert. Nothing in
// this package returns an error: unrecognized syntax is skipped, and unions
// with no literal members never produce a record.
//
// # Brace disambiguation
//
// A property line opens a nested object only when its first brace comes
// before any quote character after the colon. Braces inside quoted literals
// (URL templates such as '/users/{id}') never affect nesting depth.
package extractor
