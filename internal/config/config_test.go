package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/v19i/openapi-enum-arrays/enumerrors"
)

func TestParse(t *testing.T) {
	data := []byte(`
include: [Status, "Type"]
exclude: response, request
prefix: api
outputDir: src/client
output: src/client/enums.gen.ts
format: go
package: enums
debug: true
verify: true
`)
	cfg, err := Parse(data, "test.yaml")
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Include:   []string{"Status", "Type"},
		Exclude:   []string{"response", "request"},
		Prefix:    "api",
		Output:    "src/client/enums.gen.ts",
		OutputDir: "src/client",
		Format:    "go",
		Package:   "enums",
		Debug:     true,
		Verify:    true,
		Source:    "test.yaml",
	}, cfg)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil, "empty.yaml")
	require.NoError(t, err)
	assert.Equal(t, &Config{Source: "empty.yaml"}, cfg)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		option string
	}{
		{name: "unknown key", data: "prefix: a\ncolour: red\n", option: "colour"},
		{name: "invalid format", data: "format: xml\n", option: "format"},
		{name: "non-scalar prefix", data: "prefix: [a, b]\n", option: "prefix"},
		{name: "nested list pattern", data: "include: [[a]]\n", option: "include"},
		{name: "non-bool debug", data: "debug: sometimes\n", option: "debug"},
		{name: "top level list", data: "- a\n- b\n", option: "config"},
		{name: "invalid yaml", data: "prefix: [unterminated\n", option: "config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "bad.yaml")
			require.Error(t, err)
			assert.ErrorIs(t, err, enumerrors.ErrConfig)

			var cfgErr *enumerrors.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.option, cfgErr.Option)
		})
	}
}

func TestParseUnknownKeyReportsLine(t *testing.T) {
	_, err := Parse([]byte("prefix: a\ncolour: red\n"), "bad.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml:2")
}

func TestLoad(t *testing.T) {
	t.Run("named file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("prefix: ui\n"), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "ui", cfg.Prefix)
		assert.Equal(t, path, cfg.Source)
	})

	t.Run("missing named file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.ErrorIs(t, err, enumerrors.ErrConfig)
	})

	t.Run("missing default file", func(t *testing.T) {
		t.Chdir(t.TempDir())
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, &Config{}, cfg)
	})

	t.Run("default file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFileName), []byte("exclude: [query]\n"), 0o644))
		t.Chdir(dir)

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, []string{"query"}, cfg.Exclude)
		assert.Equal(t, DefaultFileName, cfg.Source)
	})
}

func TestOptions(t *testing.T) {
	cfg := &Config{Prefix: "api", OutputDir: "out", Output: "out/x.ts"}
	assert.Len(t, cfg.Options(), 9)
	assert.Len(t, (&Config{}).Options(), 7)
}

func TestMarshal(t *testing.T) {
	out, err := (&Config{Prefix: "api", Include: []string{"Status"}, Source: "x.yaml"}).Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(out), "prefix: api\n")
	assert.Contains(t, string(out), "- Status")
	assert.NotContains(t, string(out), "x.yaml")
}
