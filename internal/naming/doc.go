// Package naming provides shared case conversion utilities for the
// resolver and emitter packages.
//
// Functions include ToPascalCase, ToCamelCase, Capitalize, LowerFirst and
// ToIdentifier. They are used for:
//   - Resolver package: composing names such as "query" + "Format"
//   - Emitter package: turning names into TypeScript and Go identifiers
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
