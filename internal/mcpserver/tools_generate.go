package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/v19i/openapi-enum-arrays/generator"
	"github.com/v19i/openapi-enum-arrays/resolver"
)

type generateInput struct {
	Types   typesInput `json:"types"                 jsonschema:"The generated types file to scan for string literal unions"`
	Include []string   `json:"include,omitempty"     jsonschema:"Keep only enum names containing one of these substrings"`
	Exclude []string   `json:"exclude,omitempty"     jsonschema:"Drop enum names containing any of these substrings (applied after include)"`
	Prefix  string     `json:"prefix,omitempty"      jsonschema:"Prefix prepended to every emitted identifier (default: ENUMARRAYS_ARRAY_PREFIX)"`
	Format  string     `json:"format,omitempty"      jsonschema:"Output language: ts or go (default: ENUMARRAYS_FORMAT or ts)"`
	Package string     `json:"package,omitempty"     jsonschema:"Package name for go output (default: enums)"`
	Verify  *bool      `json:"verify,omitempty"      jsonschema:"Parse the output and fail on syntax errors (default: ENUMARRAYS_VERIFY)"`
	Output  string     `json:"output,omitempty"      jsonschema:"File to write the output to instead of only returning it"`
}

type generateOutput struct {
	Output     string           `json:"output"`
	Format     string           `json:"format"`
	Count      int              `json:"count"`
	Stats      generator.Stats  `json:"stats"`
	Events     []resolver.Event `json:"events,omitempty"`
	Duplicates []string         `json:"duplicates,omitempty"`
	WrittenTo  string           `json:"written_to,omitempty"`
}

func handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	loaded, err := input.Types.load()
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	prefix := input.Prefix
	if prefix == "" {
		prefix = cfg.ArrayPrefix
	}
	format := input.Format
	if format == "" {
		format = cfg.Format
	}
	verify := cfg.Verify
	if input.Verify != nil {
		verify = *input.Verify
	}

	opts := []generator.Option{
		generator.WithRecords(loaded.records),
		generator.WithIncludePatterns(generator.SplitPatterns(input.Include...)...),
		generator.WithExcludePatterns(generator.SplitPatterns(input.Exclude...)...),
		generator.WithArrayPrefix(prefix),
		generator.WithFormat(format),
		generator.WithGoPackage(input.Package),
		generator.WithVerify(verify),
	}
	if input.Output != "" {
		opts = append(opts, generator.WithOutputPath(input.Output))
	}

	result, err := generator.GenerateWithOptions(opts...)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	return nil, generateOutput{
		Output:     result.Output,
		Format:     string(result.Format),
		Count:      len(result.Records),
		Stats:      result.Stats,
		Events:     result.Events,
		Duplicates: result.Duplicates,
		WrittenTo:  result.WrittenTo,
	}, nil
}
