package extractor

import (
	"regexp"
	"strings"
)

// literalPattern matches exactly one quoted literal with the same quote at both ends.
var literalPattern = regexp.MustCompile("^(?:'([^']*)'|\"([^\"]*)\"|`([^`]*)`)$")

// arrayWrappers are the generic array containers unwrapped before extraction.
var arrayWrappers = []string{"Array<", "ReadonlyArray<"}

// ExtractUnion returns the distinct string-literal members of a union type
// expression in first-seen order, or nil when expr is not a literal union.
//
// Array containers (Array<...>, ReadonlyArray<...>, (...)[]) are unwrapped
// recursively and their inner members returned directly, so an array of a
// union yields the same values as the union itself. A lone literal without a
// `|` separator is not a union. Non-literal members (null, string, other type
// references) are ignored.
func ExtractUnion(expr string) []string {
	expr = CleanExpression(expr)
	if expr == "" {
		return nil
	}
	if inner, ok := unwrapArray(expr); ok {
		return ExtractUnion(inner)
	}
	if inner, ok := unwrapParens(expr); ok {
		return ExtractUnion(inner)
	}
	if !strings.Contains(expr, "|") {
		return nil
	}

	var values []string
	seen := make(map[string]bool)
	for _, segment := range strings.Split(expr, "|") {
		value, ok := literalValue(strings.TrimSpace(segment))
		if !ok || seen[value] {
			continue
		}
		seen[value] = true
		values = append(values, value)
	}
	return values
}

// CleanExpression trims whitespace and any trailing statement terminators
// (`;` or `,`) from a type expression.
func CleanExpression(expr string) string {
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(expr), ";,"))
}

// literalValue returns the unquoted value of a single quoted literal.
func literalValue(segment string) (string, bool) {
	m := literalPattern.FindStringSubmatch(segment)
	if m == nil {
		return "", false
	}
	if m[3] != "" && strings.Contains(m[3], "${") {
		// template literal type, not a fixed value
		return "", false
	}
	for _, group := range m[1:] {
		if group != "" {
			return group, true
		}
	}
	// The empty string literal '' is a legitimate member.
	return "", true
}

// unwrapArray returns the element expression of an array type.
func unwrapArray(expr string) (string, bool) {
	for _, wrapper := range arrayWrappers {
		if !strings.HasPrefix(expr, wrapper) {
			continue
		}
		open := len(wrapper) - 1
		if matchingClose(expr, open, '<', '>') == len(expr)-1 {
			return expr[open+1 : len(expr)-1], true
		}
	}

	if base, ok := strings.CutSuffix(expr, "[]"); ok {
		base = strings.TrimSpace(strings.TrimPrefix(base, "readonly "))
		if inner, ok := unwrapParens(base); ok {
			return inner, true
		}
	}
	return "", false
}

// unwrapParens strips one pair of parentheses that encloses the whole expression.
func unwrapParens(expr string) (string, bool) {
	if !strings.HasPrefix(expr, "(") {
		return "", false
	}
	if matchingClose(expr, 0, '(', ')') != len(expr)-1 {
		return "", false
	}
	return strings.TrimSpace(expr[1 : len(expr)-1]), true
}
