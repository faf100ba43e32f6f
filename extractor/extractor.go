package extractor

import (
	"regexp"
	"strings"
)

// standalonePattern matches the head of a top-level alias declaration. The
// aliased expression starts right after the match.
var standalonePattern = regexp.MustCompile(`(?:^|[^\w$.])(?:export\s+)?(?:declare\s+)?type\s+([A-Za-z_$][\w$]*)\s*=`)

// Extract returns every literal-union enumeration in text: the standalone
// declarations first, in text order, followed by the nested properties in
// line order. Every returned record has a non-empty Values slice and an
// OriginalPath that is unique within the result.
func Extract(text string) []Record {
	records := ExtractStandalone(text)
	return append(records, ExtractNested(text)...)
}

// ExtractStandalone finds `type Name = <union>` declarations anywhere in text.
//
// The aliased expression runs to the first `;` outside a quoted literal, to
// a line break that is not followed by a `|` continuation line, or to the end
// of text. Object type bodies are skipped; the nested scan covers them.
func ExtractStandalone(text string) []Record {
	var records []Record
	seen := make(map[string]bool)

	for _, m := range standalonePattern.FindAllStringSubmatchIndex(text, -1) {
		name := text[m[2]:m[3]]
		expr := readExpression(text[m[1]:])
		if strings.HasPrefix(expr, "{") {
			continue
		}
		values := ExtractUnion(expr)
		if len(values) == 0 {
			continue
		}
		path := StandalonePrefix + name
		if seen[path] {
			continue
		}
		seen[path] = true
		records = append(records, Record{Values: values, OriginalPath: path})
	}
	return records
}

// readExpression returns the type expression at the start of s with any
// trailing `;` and line comments removed, joined onto one line.
func readExpression(s string) string {
	end := len(s)
	var quote byte
scan:
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			case '\n':
				// unterminated literal
				end = i
				break scan
			}
			continue
		}
		switch {
		case isQuote(c):
			quote = c
		case c == ';':
			end = i
			break scan
		case c == '\n':
			if strings.TrimSpace(s[:i]) == "" {
				continue
			}
			if !strings.HasPrefix(strings.TrimLeft(s[i+1:], " \t\r\n"), "|") {
				end = i
				break scan
			}
		}
	}
	parts := SplitLines(s[:end])
	for i, part := range parts {
		if parts[i] = NormalizeLine(part); IsComment(parts[i]) {
			parts[i] = ""
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// pendingUnion is a union property whose members span several lines.
type pendingUnion struct {
	path string
	expr strings.Builder
}

// nestedScan holds the state of one ExtractNested pass.
type nestedScan struct {
	scope   *ScopeTracker
	seen    map[string]bool
	pending *pendingUnion
	records []Record
}

// ExtractNested walks text line by line and records every literal-union
// property inside an object type definition, keyed by its dot-joined path
// (for example "GetV1PetsData.query.status").
func ExtractNested(text string) []Record {
	s := &nestedScan{
		scope: NewScopeTracker(),
		seen:  make(map[string]bool),
	}
	for _, raw := range SplitLines(text) {
		s.line(NormalizeLine(raw))
	}
	s.flush()
	return s.records
}

func (s *nestedScan) line(line string) {
	if IsInert(line) {
		return
	}

	if s.pending != nil {
		if strings.HasPrefix(line, "|") {
			opens, closes := CountBraces(line)
			s.pending.expr.WriteByte(' ')
			s.pending.expr.WriteString(StripBraces(line))
			if closes > 0 || endsStatement(line) {
				s.flush()
			}
			s.scope.Adjust(opens, closes)
			return
		}
		s.flush()
	}

	opens, closes := CountBraces(line)
	shape := DetectShape(line)

	if shape.Kind == ShapeTypeStart {
		s.scope.Begin(shape.Name, opens-closes)
		return
	}
	if !s.scope.Inside() {
		return
	}

	switch shape.Kind {
	case ShapeNestedObject:
		s.scope.Enter(shape.Name, opens)
		s.scope.Adjust(0, closes)
	case ShapeUnionProperty:
		s.add(s.scope.Path(shape.Name), shape.Values)
		s.scope.Adjust(opens, closes)
	case ShapeUnionStart:
		s.pending = &pendingUnion{path: s.scope.Path(shape.Name)}
		s.pending.expr.WriteString(shape.Expr)
	default:
		s.scope.Adjust(opens, closes)
	}
}

// flush records the pending multi-line union, if any.
func (s *nestedScan) flush() {
	if s.pending == nil {
		return
	}
	p := s.pending
	s.pending = nil
	s.add(p.path, ExtractUnion(p.expr.String()))
}

func (s *nestedScan) add(path string, values []string) {
	if len(values) == 0 || s.seen[path] {
		return
	}
	s.seen[path] = true
	s.records = append(s.records, Record{Values: values, OriginalPath: path})
}
