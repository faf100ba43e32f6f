// Package naming provides shared string case conversion utilities.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleRune upper-cases a single rune with Unicode-aware title casing.
// A Caser is stateful, so a fresh one is built per call.
func titleRune(r rune) string {
	return cases.Title(language.Und, cases.NoLower).String(string(r))
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == '/' || r == ' '
}

// ToPascalCase converts a string to PascalCase.
// Separators (underscore, hyphen, dot, slash, space) trigger capitalization of the next letter.
// Example: "user_profile" -> "UserProfile"
// Example: "api-client" -> "ApiClient"
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(s))
	capitalizeNext := true

	for _, r := range s {
		if isSeparator(r) {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteString(titleRune(r))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// ToCamelCase converts a string to camelCase.
// Like PascalCase but with the first letter lowercase.
// Example: "user_profile" -> "userProfile"
// Example: "UserProfile" -> "userProfile"
func ToCamelCase(s string) string {
	return LowerFirst(ToPascalCase(s))
}

// Capitalize converts the first letter to uppercase and leaves the rest alone.
// Example: "format" -> "Format"
// Example: "sortOrder" -> "SortOrder"
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	return titleRune(runes[0]) + string(runes[1:])
}

// LowerFirst converts the first letter to lowercase and leaves the rest alone.
// Example: "OrderStatus" -> "orderStatus"
func LowerFirst(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// IsIdentifierRune reports whether r may appear in a TypeScript identifier.
func IsIdentifierRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$'
}

// ToIdentifier removes characters that cannot appear in an identifier and
// capitalizes the letter following each removed run. The case of the first
// kept letter is preserved.
// Example: "content-type" -> "contentType"
// Example: "x.rate limit" -> "xRateLimit"
// Example: "--" -> ""
func ToIdentifier(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	capitalizeNext := false

	for _, r := range s {
		if !IsIdentifierRune(r) {
			capitalizeNext = result.Len() > 0
			continue
		}
		if capitalizeNext {
			result.WriteString(titleRune(r))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}
