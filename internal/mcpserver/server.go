// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the enum array pipeline as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	enumarrays "github.com/v19i/openapi-enum-arrays"
)

const serverInstructions = `openapi-enum-arrays MCP server: turns the string literal unions of an OpenAPI-generated TypeScript client (types.gen.ts) into runtime arrays.

Configuration: defaults are configurable via ENUMARRAYS_* environment variables set in your MCP client config.

Key settings:
- ENUMARRAYS_ARRAY_PREFIX (default: none): prefix prepended to every emitted identifier
- ENUMARRAYS_FORMAT (default: ts): output language, ts or go
- ENUMARRAYS_VERIFY (default: false): parse the output and fail on syntax errors
- ENUMARRAYS_CACHE_ENABLED (default: true): disable caching of extracted files
- ENUMARRAYS_EXTRACT_LIMIT (default: 100): default page size of extract_enums

Workflow: call extract_enums to see what the file contains and which names are derived, then generate_enum_arrays with include/exclude filters to produce the final file.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		typesCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: enumarrays.ToolName, Version: enumarrays.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_enum_arrays",
		Description: "Generate runtime arrays for the string literal unions of a generated types file. Provide the file as types.file or types.content. Returns the rendered output, per-stage counts and every rename or merge decision. Use include/exclude substring filters to narrow the result and output to write it to disk. Set format=go for a Go source file.",
	}, handleGenerate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract_enums",
		Description: "List the enumerations found in a generated types file before collision resolution: original path, values and the derived name of each. Use standalone=true or false to split type aliases from object properties, and offset/limit to paginate.",
	}, handleExtract)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ExtractLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ExtractLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
