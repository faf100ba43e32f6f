// Package config loads the .enumarrays.yaml project configuration file.
//
// Every key mirrors a command-line flag of the generate command:
//
//	include: [Status, Type]     # or a comma-separated string
//	exclude: response
//	prefix: api
//	outputDir: src/client
//	output: src/client/enums.gen.ts
//	format: ts
//	package: enums
//	debug: false
//	verify: true
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/v19i/openapi-enum-arrays/enumerrors"
	"github.com/v19i/openapi-enum-arrays/generator"
)

// DefaultFileName is looked up in the working directory when no
// configuration file is named explicitly.
const DefaultFileName = ".enumarrays.yaml"

// Config holds the settings of one generate run.
type Config struct {
	Include   []string `yaml:"include,omitempty" json:"include,omitempty"`
	Exclude   []string `yaml:"exclude,omitempty" json:"exclude,omitempty"`
	Prefix    string   `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Output    string   `yaml:"output,omitempty" json:"output,omitempty"`
	OutputDir string   `yaml:"outputDir,omitempty" json:"outputDir,omitempty"`
	Format    string   `yaml:"format,omitempty" json:"format,omitempty"`
	Package   string   `yaml:"package,omitempty" json:"package,omitempty"`
	Debug     bool     `yaml:"debug,omitempty" json:"debug,omitempty"`
	Verify    bool     `yaml:"verify,omitempty" json:"verify,omitempty"`

	// Source is the file the configuration was loaded from, if any.
	Source string `yaml:"-" json:"-"`
}

// Load reads the configuration file at path. An empty path selects
// DefaultFileName, which may be absent: a missing default file yields an
// empty configuration. A named file must exist.
func Load(path string) (*Config, error) {
	required := path != ""
	if !required {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, &enumerrors.ConfigError{Option: "config", Value: path, Message: "cannot read file", Cause: err}
	}
	return Parse(data, path)
}

// Parse decodes configuration data. source names the data in error messages.
func Parse(data []byte, source string) (*Config, error) {
	cfg := &Config{Source: source}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &enumerrors.ConfigError{Option: "config", Value: source, Message: "invalid YAML", Cause: err}
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return cfg, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, &enumerrors.ConfigError{Option: "config", Value: source, Message: "top level must be a mapping"}
	}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, value := doc.Content[i], doc.Content[i+1]
		if err := cfg.set(key.Value, value); err != nil {
			return nil, &enumerrors.ConfigError{
				Option:  key.Value,
				Message: fmt.Sprintf("%s:%d", source, key.Line),
				Cause:   err,
			}
		}
	}
	return cfg, nil
}

func (c *Config) set(key string, value *yaml.Node) error {
	switch key {
	case "include":
		return patterns(value, &c.Include)
	case "exclude":
		return patterns(value, &c.Exclude)
	case "prefix":
		return scalar(value, &c.Prefix)
	case "output":
		return scalar(value, &c.Output)
	case "outputDir":
		return scalar(value, &c.OutputDir)
	case "format":
		if err := scalar(value, &c.Format); err != nil {
			return err
		}
		_, err := generator.ParseFormat(c.Format)
		return err
	case "package":
		return scalar(value, &c.Package)
	case "debug":
		return value.Decode(&c.Debug)
	case "verify":
		return value.Decode(&c.Verify)
	default:
		return errors.New("unknown key")
	}
}

func scalar(node *yaml.Node, dst *string) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("expected a string at line %d", node.Line)
	}
	*dst = node.Value
	return nil
}

// patterns accepts a list of strings or one comma-separated string.
func patterns(node *yaml.Node, dst *[]string) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*dst = append(*dst, generator.SplitPatterns(node.Value)...)
	case yaml.SequenceNode:
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("expected a string at line %d", item.Line)
			}
			*dst = append(*dst, generator.SplitPatterns(item.Value)...)
		}
	default:
		return fmt.Errorf("expected a string or list at line %d", node.Line)
	}
	return nil
}

// Options returns the generator options for the configuration.
func (c *Config) Options() []generator.Option {
	opts := []generator.Option{
		generator.WithIncludePatterns(c.Include...),
		generator.WithExcludePatterns(c.Exclude...),
		generator.WithArrayPrefix(c.Prefix),
		generator.WithDebug(c.Debug),
		generator.WithVerify(c.Verify),
		generator.WithFormat(c.Format),
		generator.WithGoPackage(c.Package),
	}
	if c.OutputDir != "" {
		opts = append(opts, generator.WithOutputDir(c.OutputDir))
	}
	if c.Output != "" {
		opts = append(opts, generator.WithOutputPath(c.Output))
	}
	return opts
}

// Marshal renders the configuration as YAML, for `generate --print-config`.
func (c *Config) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, err
	}
	return []byte(strings.TrimSpace(string(out)) + "\n"), nil
}
