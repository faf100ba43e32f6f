package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput redirects the command streams for the duration of the test.
func captureOutput(t *testing.T, input string) (out, errOut *bytes.Buffer) {
	t.Helper()
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	savedIn, savedOut, savedErr := stdin, stdout, stderr
	stdin, stdout, stderr = strings.NewReader(input), out, errOut
	t.Cleanup(func() {
		stdin, stdout, stderr = savedIn, savedOut, savedErr
	})
	return out, errOut
}

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid text", FormatText, false},
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"invalid format", "xml", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestOutputStructured(t *testing.T) {
	data := map[string]any{"name": "statusValues", "count": 3}

	t.Run("json", func(t *testing.T) {
		out, _ := captureOutput(t, "")
		require.NoError(t, OutputStructured(data, FormatJSON))
		assert.JSONEq(t, `{"name":"statusValues","count":3}`, out.String())
		assert.True(t, strings.HasSuffix(out.String(), "}\n"))
	})

	t.Run("yaml", func(t *testing.T) {
		out, _ := captureOutput(t, "")
		require.NoError(t, OutputStructured(data, FormatYAML))
		assert.Contains(t, out.String(), "name: statusValues")
		assert.Contains(t, out.String(), "count: 3")
	})

	t.Run("text is rejected", func(t *testing.T) {
		captureOutput(t, "")
		assert.Error(t, OutputStructured(data, FormatText))
	})
}

func TestFormatInputPath(t *testing.T) {
	assert.Equal(t, "<stdin>", FormatInputPath(StdinFilePath))
	assert.Equal(t, "types.gen.ts", FormatInputPath("types.gen.ts"))
}

func TestPatternList(t *testing.T) {
	var p patternList
	require.NoError(t, p.Set("Status, Type"))
	require.NoError(t, p.Set("Kind"))
	require.NoError(t, p.Set(" , "))

	assert.Equal(t, patternList{"Status", "Type", "Kind"}, p)
	assert.Equal(t, "Status,Type,Kind", p.String())
}
