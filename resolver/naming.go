package resolver

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/v19i/openapi-enum-arrays/extractor"
	"github.com/v19i/openapi-enum-arrays/internal/naming"
)

// FallbackName is derived when neither the path nor the values yield a usable name.
const FallbackName = "enumValues"

var (
	// resourcePathPattern matches operation types such as GetV1PetsData.
	resourcePathPattern = regexp.MustCompile(`^(?:Get|Post|Put|Delete|Patch)V\d+[A-Z]`)
	resourcePrefix      = regexp.MustCompile(`^(?:Get|Post|Put|Delete|Patch)V\d+`)
	capitalizedWord     = regexp.MustCompile(`[A-Z][a-z0-9]*`)
	leadingWord         = regexp.MustCompile(`^[A-Z][a-z0-9]*`)
)

// genericWords carry no domain meaning in generated operation type names.
var genericWords = map[string]bool{
	"Data":     true,
	"Response": true,
	"Request":  true,
	"Query":    true,
	"Body":     true,
	"Params":   true,
}

// DeriveName returns a semantic base name for an enumeration found at path.
// It never fails; the first rule that yields a name wins:
//
//  1. Operation paths (GetV1PetsData.query.status) combine the last
//     non-generic word of the operation type with the field: petsStatus.
//  2. Otherwise the leading capitalized word of the path becomes the name
//     with a lower-case first letter (Pet.owner.tier: pet), unless it is a
//     generic word such as Response.
//  3. Any other dotted path becomes the field followed by "Values".
//  4. A standalone declaration "type OrderStatus" becomes orderStatus.
//  5. Otherwise the name is synthesized from the first two values.
func DeriveName(values []string, path string) string {
	if name := resourceName(path); name != "" {
		return name
	}
	if word := leadingWord.FindString(path); word != "" && !genericWords[word] && !resourcePathPattern.MatchString(path) {
		return naming.LowerFirst(word)
	}
	if field := naming.ToIdentifier(extractor.FieldSegment(path)); field != "" {
		return field + "Values"
	}
	if name, ok := strings.CutPrefix(path, extractor.StandalonePrefix); ok && name != "" {
		return naming.LowerFirst(name)
	}
	return valuesName(values)
}

// resourceName applies rule 1, returning "" when it does not match.
func resourceName(path string) string {
	if !resourcePathPattern.MatchString(path) {
		return ""
	}
	root, _, _ := strings.Cut(path, ".")
	root = resourcePrefix.ReplaceAllString(root, "")

	domain := ""
	for _, word := range capitalizedWord.FindAllString(root, -1) {
		if !genericWords[word] {
			domain = word
		}
	}
	if domain == "" {
		return ""
	}
	domain = naming.LowerFirst(domain)

	if field := naming.ToIdentifier(extractor.FieldSegment(path)); field != "" {
		return domain + naming.Capitalize(field)
	}
	return domain
}

// valuesName synthesizes a name from the leading characters of the first
// two values: ["active", "inactive"] becomes "actinValues".
func valuesName(values []string) string {
	var b strings.Builder
	if len(values) > 0 {
		b.WriteString(identifierPrefix(values[0], 3))
	}
	if len(values) > 1 {
		b.WriteString(identifierPrefix(values[1], 2))
	}
	base := b.String()
	if base == "" {
		return FallbackName
	}
	if unicode.IsDigit([]rune(base)[0]) {
		return "enum" + base + "Values"
	}
	return base + "Values"
}

// identifierPrefix lower-cases the first n runes of s and drops those that
// cannot appear in an identifier.
func identifierPrefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	var b strings.Builder
	for _, r := range runes {
		if naming.IsIdentifierRune(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
