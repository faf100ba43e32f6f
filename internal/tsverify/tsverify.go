// Package tsverify checks generated TypeScript with the tree-sitter
// TypeScript grammar.
package tsverify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// SyntaxError locates one ERROR or MISSING node in the parse tree.
type SyntaxError struct {
	Line   int    // 1-based
	Column int    // 1-based
	Text   string // source text covered by the node
}

func (e SyntaxError) String() string {
	if e.Text == "" {
		return fmt.Sprintf("%d:%d: missing token", e.Line, e.Column)
	}
	return fmt.Sprintf("%d:%d: unexpected %q", e.Line, e.Column, e.Text)
}

// Report is the outcome of checking one source file.
type Report struct {
	// Declarations lists declared variable names in source order.
	Declarations []string
	// Errors lists syntax errors in source order.
	Errors []SyntaxError
}

// Redeclared returns the declared names that occur more than once, in the
// order of their first declaration.
func (r *Report) Redeclared() []string {
	counts := make(map[string]int, len(r.Declarations))
	var dups []string
	for _, name := range r.Declarations {
		counts[name]++
		if counts[name] == 2 {
			dups = append(dups, name)
		}
	}
	return dups
}

var (
	// ErrSyntax is returned by Verify when the source does not parse cleanly.
	ErrSyntax = errors.New("tsverify: syntax error")
	// ErrRedeclared is returned by Verify when a name is declared twice.
	ErrRedeclared = errors.New("tsverify: identifier declared more than once")
)

// Check parses src and reports its declarations and syntax errors.
func Check(ctx context.Context, src []byte) (*Report, error) {
	// A parser per call; tree-sitter parsers are not safe for concurrent use.
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(typescript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tsverify: parse: %w", err)
	}
	defer tree.Close()

	report := &Report{}
	root := tree.RootNode()
	if root == nil {
		return report, nil
	}
	walk(root, src, report)
	return report, nil
}

// Verify returns an error wrapping ErrSyntax when src contains syntax errors,
// or ErrRedeclared when it declares a name more than once.
func Verify(ctx context.Context, src []byte) error {
	report, err := Check(ctx, src)
	if err != nil {
		return err
	}
	if len(report.Errors) > 0 {
		return fmt.Errorf("%w: %d error(s), first at %s", ErrSyntax, len(report.Errors), report.Errors[0])
	}
	if dups := report.Redeclared(); len(dups) > 0 {
		return fmt.Errorf("%w: %s", ErrRedeclared, strings.Join(dups, ", "))
	}
	return nil
}

func walk(n *sitter.Node, src []byte, report *Report) {
	switch {
	case n.IsMissing():
		report.Errors = append(report.Errors, syntaxError(n, ""))
		return
	case n.Type() == "ERROR":
		report.Errors = append(report.Errors, syntaxError(n, n.Content(src)))
		return
	case n.Type() == "variable_declarator":
		if name := n.ChildByFieldName("name"); name != nil {
			report.Declarations = append(report.Declarations, name.Content(src))
		}
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		walk(n.Child(i), src, report)
	}
}

func syntaxError(n *sitter.Node, text string) SyntaxError {
	p := n.StartPoint()
	return SyntaxError{Line: int(p.Row) + 1, Column: int(p.Column) + 1, Text: text}
}
