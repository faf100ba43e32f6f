package extractor

import (
	"regexp"
	"strings"
)

// ShapeKind classifies a normalized line.
type ShapeKind int

const (
	// ShapeNone is any line without recognized structure.
	ShapeNone ShapeKind = iota
	// ShapeTypeStart opens a top-level object type: `type Name = {` or `interface Name {`.
	ShapeTypeStart
	// ShapeNestedObject is a property whose value opens an object: `name: {`.
	ShapeNestedObject
	// ShapeUnionProperty is a property typed as a literal union, possibly array-wrapped.
	ShapeUnionProperty
	// ShapeUnionStart is a property whose union continues on the following `| ...` lines.
	ShapeUnionStart
)

// String returns a short name for the shape.
func (k ShapeKind) String() string {
	switch k {
	case ShapeTypeStart:
		return "type-start"
	case ShapeNestedObject:
		return "nested-object"
	case ShapeUnionProperty:
		return "union-property"
	case ShapeUnionStart:
		return "union-start"
	default:
		return "none"
	}
}

// Shape is the classification of one line.
type Shape struct {
	Kind ShapeKind
	// Name is the type name for ShapeTypeStart and the property name otherwise.
	Name string
	// Expr is the property type expression for union shapes.
	Expr string
	// Values holds the extracted literals for ShapeUnionProperty.
	Values []string
}

var (
	typeStartPattern = regexp.MustCompile(
		`^(?:export\s+)?(?:declare\s+)?(?:type\s+([A-Za-z_$][\w$]*)\s*=\s*\{|interface\s+([A-Za-z_$][\w$]*)\b[^{]*\{)`)

	propertyPattern = regexp.MustCompile(
		`^(?:readonly\s+)?(?:'([^']+)'|"([^"]+)"|([A-Za-z_$][\w$]*))\??\s*:\s*(.*)$`)
)

// DetectShape classifies a normalized, non-comment line. The four shapes are
// mutually exclusive; the first match in the order type start, nested object,
// union start, union property wins.
func DetectShape(line string) Shape {
	if m := typeStartPattern.FindStringSubmatch(line); m != nil {
		name := m[1]
		if name == "" {
			name = m[2]
		}
		return Shape{Kind: ShapeTypeStart, Name: name}
	}

	m := propertyPattern.FindStringSubmatch(line)
	if m == nil {
		return Shape{Kind: ShapeNone}
	}
	name := m[1] + m[2] + m[3]
	rest := strings.TrimSpace(m[4])

	if opensObject(rest) {
		return Shape{Kind: ShapeNestedObject, Name: name}
	}

	if continuesOnNextLine(rest) {
		return Shape{Kind: ShapeUnionStart, Name: name, Expr: rest}
	}

	if values := ExtractUnion(rest); len(values) > 0 {
		return Shape{Kind: ShapeUnionProperty, Name: name, Expr: CleanExpression(rest), Values: values}
	}

	return Shape{Kind: ShapeNone, Name: name}
}

// opensObject reports whether a property's type text opens an object: it
// contains a brace, and that brace comes before any quote character.
func opensObject(rest string) bool {
	brace := strings.IndexByte(rest, '{')
	if brace < 0 {
		return false
	}
	quote := strings.IndexAny(rest, "'\"`")
	return quote < 0 || brace < quote
}

// continuesOnNextLine reports whether a property's type text is the start of
// a union formatted over several lines: nothing after the colon yet, or an
// unterminated leading `|` member or first literal.
func continuesOnNextLine(rest string) bool {
	if rest == "" {
		return true
	}
	if endsStatement(rest) {
		return false
	}
	if strings.HasPrefix(rest, "|") {
		return true
	}
	_, single := literalValue(rest)
	return single
}

// endsStatement reports whether a line ends a property declaration.
func endsStatement(line string) bool {
	return strings.HasSuffix(line, ";") || strings.HasSuffix(line, ",")
}
