package emitter

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/v19i/openapi-enum-arrays/extractor"
	"github.com/v19i/openapi-enum-arrays/internal/naming"
)

// Header is the first line of every rendered TypeScript file.
const Header = "// This file is auto-generated by openapi-enum-arrays. Do not edit."

// GoHeader is the first line of every rendered Go file.
const GoHeader = "// Code generated by openapi-enum-arrays. DO NOT EDIT."

// DefaultGoPackage is used by RenderGo when no package name is given.
const DefaultGoPackage = "enums"

const valuesSuffix = "Values"

// pluralSuffixes maps common trailing words to their plural form. A name
// ending in one of them is pluralized instead of receiving "Values".
var pluralSuffixes = []struct {
	singular, plural string
}{
	{"Status", "Statuses"},
	{"Type", "Types"},
	{"Model", "Models"},
	{"Role", "Roles"},
	{"Source", "Sources"},
	{"Mode", "Modes"},
}

// Identifier returns the constant name emitted for an enumeration named
// name: the first letter is lower-cased, a trailing Status, Type, Model,
// Role, Source or Mode is pluralized, any other name receives a "Values"
// suffix unless it already ends in one, and prefix is prepended.
//
//	Identifier("OrderStatus", "")    // "orderStatuses"
//	Identifier("format", "")         // "formatValues"
//	Identifier("kindValues", "pet_") // "pet_kindValues"
func Identifier(name, prefix string) string {
	id := naming.LowerFirst(name)
	if !strings.HasSuffix(id, valuesSuffix) {
		id = pluralize(id)
	}
	return prefix + id
}

func pluralize(id string) string {
	for _, s := range pluralSuffixes {
		if base, ok := strings.CutSuffix(id, s.singular); ok {
			return base + s.plural
		}
	}
	return id + valuesSuffix
}

// Render returns the TypeScript module for records. Declarations appear in
// record order with values sorted lexicographically.
func Render(records []extractor.Record, prefix string) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n\n")

	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, declaration(r, prefix))
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")
	return b.String()
}

func declaration(r extractor.Record, prefix string) string {
	values := r.SortedValues()
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = QuoteTS(v)
	}
	return fmt.Sprintf("export const %s = [%s] as const;", Identifier(r.Name, prefix), strings.Join(quoted, ", "))
}

// QuoteTS returns v as a single-quoted TypeScript string literal.
func QuoteTS(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// RenderGo returns a gofmt-formatted Go source file declaring one exported
// []string variable per record, in package pkg.
func RenderGo(records []extractor.Record, pkg, prefix string) ([]byte, error) {
	if pkg == "" {
		pkg = DefaultGoPackage
	}
	if !isGoIdentifier(pkg) {
		return nil, fmt.Errorf("emitter: invalid Go package name %q", pkg)
	}

	var buf bytes.Buffer
	buf.WriteString(GoHeader + "\n\n")
	fmt.Fprintf(&buf, "package %s\n", pkg)

	for _, r := range records {
		id := GoIdentifier(r.Name, prefix)
		fmt.Fprintf(&buf, "\n// %s lists the values of %s.\n", id, r.OriginalPath)
		fmt.Fprintf(&buf, "var %s = []string{\n", id)
		for _, v := range r.SortedValues() {
			fmt.Fprintf(&buf, "\t%s,\n", strconv.Quote(v))
		}
		buf.WriteString("}\n")
	}

	formatted, err := imports.Process(pkg+".go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("emitter: formatting Go output: %w", err)
	}
	return formatted, nil
}

// GoIdentifier returns the exported Go variable name for an enumeration:
// the capitalized prefix followed by the capitalized TypeScript identifier,
// with characters invalid in Go identifiers removed.
func GoIdentifier(name, prefix string) string {
	id := naming.Capitalize(prefix) + naming.Capitalize(Identifier(name, ""))
	return naming.Capitalize(strings.ReplaceAll(id, "$", ""))
}

func isGoIdentifier(s string) bool {
	for i, r := range s {
		if r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || (i > 0 && '0' <= r && r <= '9') {
			continue
		}
		return false
	}
	return s != ""
}

// Duplicates returns the identifiers that more than one record would be
// emitted under, in first-seen order.
func Duplicates(records []extractor.Record, prefix string) []string {
	counts := make(map[string]int, len(records))
	var order []string
	for _, r := range records {
		id := Identifier(r.Name, prefix)
		if counts[id] == 0 {
			order = append(order, id)
		}
		counts[id]++
	}

	var dups []string
	for _, id := range order {
		if counts[id] > 1 {
			dups = append(dups, id)
		}
	}
	return dups
}
