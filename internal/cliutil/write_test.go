package cliutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWritef(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{"no args", "Simple message", nil, "Simple message"},
		{"one arg", "Input: %s\n", []any{"types.gen.ts"}, "Input: types.gen.ts\n"},
		{"mixed args", "%s: %d records, %v verified", []any{"Extracted", 6, true}, "Extracted: 6 records, true verified"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Writef(&buf, tt.format, tt.args...)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

// errorWriter is a writer that always fails.
type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) {
	return 0, errors.New("simulated write error")
}

func TestWritef_WriteError(t *testing.T) {
	assert.NotPanics(t, func() { Writef(errorWriter{}, "This will fail") })
}

func TestWriteList(t *testing.T) {
	var buf bytes.Buffer
	WriteList(&buf, "Warnings", []string{"kind at Pet.kind", "kind at Toy.kind"})
	assert.Equal(t, "Warnings:\n  - kind at Pet.kind\n  - kind at Toy.kind\n", buf.String())

	buf.Reset()
	WriteList(&buf, "Warnings", nil)
	assert.Empty(t, buf.String())
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "0 enum arrays", Plural(0, "enum array"))
	assert.Equal(t, "1 enum array", Plural(1, "enum array"))
	assert.Equal(t, "5 records", Plural(5, "record"))
}
