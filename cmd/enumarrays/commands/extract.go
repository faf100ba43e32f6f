package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/v19i/openapi-enum-arrays/extractor"
	"github.com/v19i/openapi-enum-arrays/internal/cliutil"
	"github.com/v19i/openapi-enum-arrays/resolver"
)

// ExtractFlags contains flags for the extract command
type ExtractFlags struct {
	Format string
}

// ExtractedRecord is one enumeration as printed by the extract command.
type ExtractedRecord struct {
	Name   string   `json:"name" yaml:"name"`
	Path   string   `json:"path" yaml:"path"`
	Values []string `json:"values" yaml:"values"`
}

// SetupExtractFlags creates and configures a FlagSet for the extract command.
func SetupExtractFlags() (*flag.FlagSet, *ExtractFlags) {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	flags := &ExtractFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: enumarrays extract [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "List the string literal unions of a generated types file with their derived\n")
		cliutil.Writef(fs.Output(), "names, before collisions are resolved.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  enumarrays extract src/client/types.gen.ts\n")
		cliutil.Writef(fs.Output(), "  enumarrays extract --format json src/client/types.gen.ts\n")
		cliutil.Writef(fs.Output(), "  cat types.gen.ts | enumarrays extract -\n")
	}

	return fs, flags
}

// HandleExtract executes the extract command
func HandleExtract(args []string) error {
	fs, flags := SetupExtractFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("extract command requires exactly one file path or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	var text string
	if path := fs.Arg(0); path == StdinFilePath {
		var err error
		if text, err = readStdin(); err != nil {
			return err
		}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		text = string(data)
	}

	records := ExtractRecords(text)
	if flags.Format != FormatText {
		return OutputStructured(records, flags.Format)
	}

	for _, r := range records {
		cliutil.Writef(stdout, "%s\t%s\t%s\n", r.Name, r.Path, strings.Join(r.Values, " | "))
	}
	return nil
}

// ExtractRecords returns the enumerations of text with their derived names.
func ExtractRecords(text string) []ExtractedRecord {
	records := extractor.Extract(text)
	out := make([]ExtractedRecord, 0, len(records))
	for _, r := range records {
		out = append(out, ExtractedRecord{
			Name:   resolver.DeriveName(r.Values, r.OriginalPath),
			Path:   r.OriginalPath,
			Values: r.Values,
		})
	}
	return out
}
