// Package cliutil provides output helpers for the enumarrays commands.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to w. A failed write is reported on stderr
// instead of aborting the command.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// WriteList writes title followed by one indented bullet per item.
// Nothing is written when items is empty.
func WriteList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	Writef(w, "%s:\n", title)
	for _, item := range items {
		Writef(w, "  - %s\n", item)
	}
}

// Plural returns "1 word" or "n words".
func Plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
