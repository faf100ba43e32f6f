package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/v19i/openapi-enum-arrays/resolver"
)

type extractInput struct {
	Types      typesInput `json:"types"                  jsonschema:"The generated types file to scan for string literal unions"`
	Standalone *bool      `json:"standalone,omitempty"   jsonschema:"Only standalone type aliases (true) or only object properties (false)"`
	Offset     int        `json:"offset,omitempty"       jsonschema:"Skip the first N records"`
	Limit      int        `json:"limit,omitempty"        jsonschema:"Maximum number of records to return (default 100)"`
}

type extractedRecord struct {
	Name   string   `json:"name"`
	Path   string   `json:"path"`
	Values []string `json:"values"`
}

type extractOutput struct {
	Total      int               `json:"total"`
	Standalone int               `json:"standalone"`
	Nested     int               `json:"nested"`
	Returned   int               `json:"returned"`
	Records    []extractedRecord `json:"records,omitempty"`
}

func handleExtract(_ context.Context, _ *mcp.CallToolRequest, input extractInput) (*mcp.CallToolResult, extractOutput, error) {
	loaded, err := input.Types.load()
	if err != nil {
		return errResult(err), extractOutput{}, nil
	}

	var output extractOutput
	matched := makeSlice[extractedRecord](len(loaded.records))
	for _, r := range loaded.records {
		if r.IsStandalone() {
			output.Standalone++
		} else {
			output.Nested++
		}
		if input.Standalone != nil && *input.Standalone != r.IsStandalone() {
			continue
		}
		matched = append(matched, extractedRecord{
			Name:   resolver.DeriveName(r.Values, r.OriginalPath),
			Path:   r.OriginalPath,
			Values: r.Values,
		})
	}

	output.Total = len(loaded.records)
	output.Records = paginate(matched, input.Offset, input.Limit)
	output.Returned = len(output.Records)
	return nil, output, nil
}
