package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "single lowercase letter", input: "a", want: "A"},
		{name: "single digit", input: "1", want: "1"},
		{name: "snake_case simple", input: "user_profile", want: "UserProfile"},
		{name: "leading underscore", input: "_private", want: "Private"},
		{name: "kebab-case simple", input: "api-client", want: "ApiClient"},
		{name: "dot separator", input: "com.example.api", want: "ComExampleApi"},
		{name: "path-like", input: "/api/v1/users", want: "ApiV1Users"},
		{name: "space separator", input: "sort order", want: "SortOrder"},
		{name: "already PascalCase", input: "UserProfile", want: "UserProfile"},
		{name: "camelCase", input: "statusValues", want: "StatusValues"},
		{name: "all caps", input: "API", want: "API"},
		{name: "unicode lowercase", input: "über_user", want: "ÜberUser"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToPascalCase(tt.input), "ToPascalCase(%q)", tt.input)
		})
	}
}

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "single uppercase letter", input: "A", want: "a"},
		{name: "snake_case", input: "user_profile", want: "userProfile"},
		{name: "PascalCase", input: "OrderStatus", want: "orderStatus"},
		{name: "kebab-case", input: "content-type", want: "contentType"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToCamelCase(tt.input), "ToCamelCase(%q)", tt.input)
		})
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: "format", want: "Format"},
		{input: "sortOrder", want: "SortOrder"},
		{input: "Type", want: "Type"},
		{input: "über", want: "Über"},
		{input: "1st", want: "1st"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Capitalize(tt.input))
		})
	}
}

func TestLowerFirst(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: "OrderStatus", want: "orderStatus"},
		{input: "status", want: "status"},
		{input: "URL", want: "uRL"},
		{input: "Über", want: "über"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, LowerFirst(tt.input))
		})
	}
}

func TestToIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already valid", input: "format", want: "format"},
		{name: "kebab key", input: "content-type", want: "contentType"},
		{name: "dotted and spaced", input: "x.rate limit", want: "xRateLimit"},
		{name: "leading junk", input: "--mode", want: "mode"},
		{name: "only junk", input: "--", want: ""},
		{name: "underscore kept", input: "snake_case", want: "snake_case"},
		{name: "dollar kept", input: "$ref", want: "$ref"},
		{name: "pascal preserved", input: "Order-Status", want: "OrderStatus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToIdentifier(tt.input))
		})
	}
}

func TestIsIdentifierRune(t *testing.T) {
	for _, r := range "aZ9_$é" {
		assert.True(t, IsIdentifierRune(r), "%q should be an identifier rune", r)
	}
	for _, r := range "-. /'" {
		assert.False(t, IsIdentifierRune(r), "%q should not be an identifier rune", r)
	}
}
