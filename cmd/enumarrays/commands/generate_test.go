package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/v19i/openapi-enum-arrays/emitter"
	"github.com/v19i/openapi-enum-arrays/generator"
	"github.com/v19i/openapi-enum-arrays/internal/config"
	"github.com/v19i/openapi-enum-arrays/internal/testutil"
)

const wantPetOutput = emitter.Header + "\n\n" +
	"export const orderStatuses = ['COMPLETED', 'PENDING'] as const;\n" +
	"export const petValues = ['available', 'sold'] as const;\n"

func writeTypes(t *testing.T) (dir, path string) {
	t.Helper()
	path = testutil.WriteTempTypes(t, petTypes)
	return filepath.Dir(path), path
}

func TestSetupGenerateFlags(t *testing.T) {
	fs, flags := SetupGenerateFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Empty(t, flags.Output)
		assert.Empty(t, flags.OutputDir)
		assert.Equal(t, "ts", flags.Format)
		assert.Equal(t, FormatText, flags.Report)
		assert.False(t, flags.Verify)
		assert.False(t, flags.Debug)
		assert.False(t, flags.Quiet)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-o", "enums.gen.ts", "--include", "Status,Type", "--include", "Kind", "--exclude", "Internal", "--prefix", "api", "-q", "types.gen.ts"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, "enums.gen.ts", flags.Output)
		assert.Equal(t, patternList{"Status", "Type", "Kind"}, flags.Include)
		assert.Equal(t, patternList{"Internal"}, flags.Exclude)
		assert.Equal(t, "api", flags.Prefix)
		assert.True(t, flags.Quiet)
		assert.Equal(t, "types.gen.ts", fs.Arg(0))
	})
}

func TestApplyGenerateFlags(t *testing.T) {
	fs, flags := SetupGenerateFlags()
	require.NoError(t, fs.Parse([]string{"--prefix", "cli", "--verify"}))

	cfg := &config.Config{Prefix: "file", Format: "go", Include: []string{"Status"}}
	applyGenerateFlags(fs, flags, cfg)

	assert.Equal(t, "cli", cfg.Prefix, "set flag overrides the file")
	assert.True(t, cfg.Verify)
	assert.Equal(t, "go", cfg.Format, "unset flag keeps the file value")
	assert.Equal(t, []string{"Status"}, cfg.Include)
}

func TestHandleGenerate_Stdout(t *testing.T) {
	_, path := writeTypes(t)
	out, errOut := captureOutput(t, "")

	require.NoError(t, HandleGenerate([]string{path}))
	assert.Equal(t, wantPetOutput, out.String())
	assert.Contains(t, errOut.String(), "Extracted: 2 (1 standalone, 1 nested)")
}

func TestHandleGenerate_Stdin(t *testing.T) {
	out, _ := captureOutput(t, petTypes)

	require.NoError(t, HandleGenerate([]string{"-q", "-"}))
	assert.Equal(t, wantPetOutput, out.String())
}

func TestHandleGenerate_OutputDir(t *testing.T) {
	dir, _ := writeTypes(t)
	out, errOut := captureOutput(t, "")

	require.NoError(t, HandleGenerate([]string{"--output-dir", dir}))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Wrote 2 enum arrays to")

	data, err := os.ReadFile(filepath.Join(dir, generator.DefaultOutputBase+".ts"))
	require.NoError(t, err)
	assert.Equal(t, wantPetOutput, string(data))
}

func TestHandleGenerate_Filters(t *testing.T) {
	_, path := writeTypes(t)
	out, _ := captureOutput(t, "")

	require.NoError(t, HandleGenerate([]string{"-q", "--exclude", "order", "--prefix", "api_", path}))
	assert.Contains(t, out.String(), "export const api_petValues")
	assert.NotContains(t, out.String(), "orderStatuses")
}

func TestHandleGenerate_ConfigFile(t *testing.T) {
	_, path := writeTypes(t)
	cfgPath := testutil.WriteTempYAML(t, map[string]any{
		"include": []string{"Status"},
		"format":  "go",
		"package": "petenums",
	})
	out, _ := captureOutput(t, "")

	require.NoError(t, HandleGenerate([]string{"-q", "--config", cfgPath, "--include", "pet", path}))
	assert.Contains(t, out.String(), "package petenums")
	assert.Contains(t, out.String(), "PetValues")
	assert.NotContains(t, out.String(), "OrderStatuses", "the --include flag replaces the file patterns")
}

func TestHandleGenerate_PrintConfig(t *testing.T) {
	out, _ := captureOutput(t, "")

	require.NoError(t, HandleGenerate([]string{"--print-config", "--prefix", "api", "--exclude", "Internal"}))
	assert.Contains(t, out.String(), "prefix: api")
	assert.Contains(t, out.String(), "Internal")
}

func TestHandleGenerate_JSONReport(t *testing.T) {
	_, path := writeTypes(t)
	out, _ := captureOutput(t, "")

	require.NoError(t, HandleGenerate([]string{"--report", "json", path}))

	var report GenerateReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, "ts", report.Format)
	assert.Equal(t, path, report.Input)
	assert.Equal(t, []string{"orderStatus", "pet"}, report.Names)
	assert.Equal(t, 2, report.Stats.Extracted)
	assert.Equal(t, wantPetOutput, report.Output)
}

func TestHandleGenerate_MissingInputIsWarning(t *testing.T) {
	out, errOut := captureOutput(t, "")

	require.NoError(t, HandleGenerate([]string{"--output-dir", t.TempDir()}))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Warning: missing input")
}

func TestHandleGenerate_Errors(t *testing.T) {
	_, path := writeTypes(t)
	tests := []struct {
		name string
		args []string
	}{
		{"two inputs", []string{path, path}},
		{"bad report format", []string{"--report", "xml", path}},
		{"bad output format", []string{"--format", "rust", path}},
		{"missing config file", []string{"--config", "/nonexistent/enumarrays.yaml", path}},
		{"unknown flag", []string{"--bogus", path}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureOutput(t, "")
			assert.Error(t, HandleGenerate(tt.args))
		})
	}
}

func TestHandleGenerate_Help(t *testing.T) {
	captureOutput(t, "")
	assert.NoError(t, HandleGenerate([]string{"--help"}))
}
