package extractor

import "strings"

// SplitLines splits text into raw lines, accepting both \n and \r\n endings.
func SplitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// NormalizeLine trims surrounding whitespace and drops a trailing // comment
// that sits outside any quoted literal.
func NormalizeLine(raw string) string {
	line := strings.TrimSpace(raw)
	if i := trailingCommentIndex(line); i > 0 {
		line = strings.TrimSpace(line[:i])
	}
	return line
}

// IsComment reports whether a normalized line is a comment line.
func IsComment(line string) bool {
	return strings.HasPrefix(line, "//") ||
		strings.HasPrefix(line, "/*") ||
		strings.HasPrefix(line, "*")
}

// IsInert reports whether a normalized line carries no structure at all.
func IsInert(line string) bool {
	return line == "" || IsComment(line)
}

// isQuote reports whether c opens a string literal.
func isQuote(c byte) bool {
	return c == '\'' || c == '"' || c == '`'
}

// walkUnquoted calls fn for every byte of s that lies outside a quoted
// literal. Backslash escapes inside literals are honored. Returning false
// from fn stops the walk.
func walkUnquoted(s string, fn func(i int, c byte) bool) {
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		if isQuote(c) {
			quote = c
			continue
		}
		if !fn(i, c) {
			return
		}
	}
}

// CountBraces returns the number of opening and closing curly braces in line,
// ignoring braces inside quoted literals.
func CountBraces(line string) (opens, closes int) {
	walkUnquoted(line, func(_ int, c byte) bool {
		switch c {
		case '{':
			opens++
		case '}':
			closes++
		}
		return true
	})
	return opens, closes
}

// StripBraces removes the curly braces of line that lie outside quoted
// literals: "| 'b' };" becomes "| 'b' ;".
func StripBraces(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	last := 0
	walkUnquoted(line, func(i int, c byte) bool {
		if c == '{' || c == '}' {
			b.WriteString(line[last:i])
			last = i + 1
		}
		return true
	})
	b.WriteString(line[last:])
	return b.String()
}

// trailingCommentIndex returns the index of a // comment outside quotes, or -1.
func trailingCommentIndex(line string) int {
	idx := -1
	walkUnquoted(line, func(i int, c byte) bool {
		if c == '/' && i+1 < len(line) && line[i+1] == '/' {
			idx = i
			return false
		}
		return true
	})
	return idx
}

// matchingClose returns the index of the bracket that closes the one at
// openIdx, skipping quoted literals, or -1 when it is unbalanced.
func matchingClose(s string, openIdx int, open, close byte) int {
	depth := 0
	found := -1
	walkUnquoted(s[openIdx:], func(i int, c byte) bool {
		switch c {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				found = openIdx + i
				return false
			}
		}
		return true
	})
	return found
}
