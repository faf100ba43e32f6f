package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	enumarrays "github.com/v19i/openapi-enum-arrays"
	"github.com/v19i/openapi-enum-arrays/cmd/enumarrays/commands"
	"github.com/v19i/openapi-enum-arrays/internal/mcpserver"
)

// commandNames lists the subcommands offered as suggestions for typos.
var commandNames = []string{"generate", "extract", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("%s v%s\n", enumarrays.ToolName, enumarrays.Version())
		fmt.Println(enumarrays.BuildInfo())
	case "help", "-h", "--help":
		printUsage()
	case "generate":
		exitOnError(commands.HandleGenerate(os.Args[2:]))
	case "extract":
		exitOnError(commands.HandleExtract(os.Args[2:]))
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err := mcpserver.Run(ctx)
		stop()
		exitOnError(err)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the known command closest to input, or "" when
// none is within an edit distance of 2.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// editDistance returns the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`enumarrays - runtime arrays for OpenAPI-generated TypeScript unions

Usage:
  enumarrays <command> [options]

Commands:
  generate    Generate enum arrays from a types.gen.ts file
  extract     List the unions of a types file with their derived names
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  enumarrays generate --output-dir src/client
  enumarrays generate -o src/enums.gen.ts src/client/types.gen.ts
  enumarrays extract --format json src/client/types.gen.ts

Run 'enumarrays <command> --help' for more information on a command.`)
}
