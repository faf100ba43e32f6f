package commands

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"time"

	enumarrays "github.com/v19i/openapi-enum-arrays"
	"github.com/v19i/openapi-enum-arrays/enumerrors"
	"github.com/v19i/openapi-enum-arrays/generator"
	"github.com/v19i/openapi-enum-arrays/internal/cliutil"
	"github.com/v19i/openapi-enum-arrays/internal/config"
	"github.com/v19i/openapi-enum-arrays/resolver"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Output      string
	OutputDir   string
	Include     patternList
	Exclude     patternList
	Prefix      string
	Format      string
	Package     string
	Verify      bool
	Debug       bool
	Quiet       bool
	ConfigPath  string
	Report      string
	PrintConfig bool
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: <output-dir>/enums.gen.ts, or stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: <output-dir>/enums.gen.ts, or stdout)")
	fs.StringVar(&flags.OutputDir, "output-dir", "", "generated client directory; types.gen.ts is discovered there when no file is given")
	fs.Var(&flags.Include, "include", "keep only enum names containing one of these comma-separated substrings (repeatable)")
	fs.Var(&flags.Exclude, "exclude", "drop enum names containing any of these comma-separated substrings (repeatable)")
	fs.StringVar(&flags.Prefix, "prefix", "", "prefix prepended to every emitted identifier")
	fs.StringVar(&flags.Format, "format", "ts", "output language: ts or go")
	fs.StringVar(&flags.Package, "package", "", "package name of go output (default: enums)")
	fs.BoolVar(&flags.Verify, "verify", false, "parse the output and fail on syntax errors")
	fs.BoolVar(&flags.Debug, "debug", false, "log stage counts and naming decisions to stderr")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only print warnings and errors")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only print warnings and errors")
	fs.StringVar(&flags.ConfigPath, "config", "", "configuration file (default: "+config.DefaultFileName+" if present)")
	fs.StringVar(&flags.Report, "report", FormatText, "report format: text, json, or yaml")
	fs.BoolVar(&flags.PrintConfig, "print-config", false, "print the effective configuration and exit")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: enumarrays generate [flags] [file|-]\n\n")
		cliutil.Writef(fs.Output(), "Generate runtime arrays for the string literal unions of a generated types file.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  enumarrays generate --output-dir src/client\n")
		cliutil.Writef(fs.Output(), "  enumarrays generate -o src/enums.gen.ts src/client/types.gen.ts\n")
		cliutil.Writef(fs.Output(), "  enumarrays generate --include Status,Type --exclude Internal src/client/types.gen.ts\n")
		cliutil.Writef(fs.Output(), "  enumarrays generate --format go --package apienums -o enums.go types.gen.ts\n")
		cliutil.Writef(fs.Output(), "  cat types.gen.ts | enumarrays generate --report json -\n")
		cliutil.Writef(fs.Output(), "\nConfiguration:\n")
		cliutil.Writef(fs.Output(), "  Settings are read from %s (or --config). Flags that are set override it.\n", config.DefaultFileName)
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Without -o or --output-dir the output is written to stdout\n")
		cliutil.Writef(fs.Output(), "  - A missing input or destination prints a warning and produces nothing\n")
	}

	return fs, flags
}

// GenerateReport is the structured summary printed by --report json|yaml.
type GenerateReport struct {
	Tool       string           `json:"tool" yaml:"tool"`
	Version    string           `json:"version" yaml:"version"`
	Input      string           `json:"input,omitempty" yaml:"input,omitempty"`
	WrittenTo  string           `json:"writtenTo,omitempty" yaml:"writtenTo,omitempty"`
	Format     string           `json:"format" yaml:"format"`
	Stats      generator.Stats  `json:"stats" yaml:"stats"`
	Names      []string         `json:"names" yaml:"names"`
	Events     []resolver.Event `json:"events,omitempty" yaml:"events,omitempty"`
	Duplicates []string         `json:"duplicates,omitempty" yaml:"duplicates,omitempty"`
	Output     string           `json:"output,omitempty" yaml:"output,omitempty"`
	Duration   string           `json:"duration" yaml:"duration"`
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("generate command accepts at most one file path or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Report); err != nil {
		return err
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return err
	}
	applyGenerateFlags(fs, flags, cfg)

	if flags.PrintConfig {
		data, err := cfg.Marshal()
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		cliutil.Writef(stdout, "%s", data)
		return nil
	}

	logger := newLogger(cfg.Debug, flags.Quiet)
	opts := append(cfg.Options(), generator.WithLogger(generator.NewSlogAdapter(logger)))

	inputPath := fs.Arg(0)
	switch inputPath {
	case "":
	case StdinFilePath:
		text, err := readStdin()
		if err != nil {
			return err
		}
		opts = append(opts, generator.WithInputText(text))
	default:
		opts = append(opts, generator.WithInputPath(inputPath))
	}

	startTime := time.Now()
	result, err := generator.GenerateWithOptions(opts...)
	totalTime := time.Since(startTime)
	if errors.Is(err, enumerrors.ErrEnvironment) {
		cliutil.Writef(stderr, "Warning: %v\n", err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("generating enum arrays: %w", err)
	}
	if inputPath == StdinFilePath {
		result.InputPath = inputPath
	}

	if flags.Report != FormatText {
		return OutputStructured(newGenerateReport(result, totalTime), flags.Report)
	}

	if result.WrittenTo == "" {
		cliutil.Writef(stdout, "%s", result.Output)
	}
	if !flags.Quiet {
		printGenerateSummary(result, totalTime)
	}
	return nil
}

// applyGenerateFlags overrides cfg with the flags that were set on the command line.
func applyGenerateFlags(fs *flag.FlagSet, flags *GenerateFlags, cfg *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o", "output":
			cfg.Output = flags.Output
		case "output-dir":
			cfg.OutputDir = flags.OutputDir
		case "include":
			cfg.Include = flags.Include
		case "exclude":
			cfg.Exclude = flags.Exclude
		case "prefix":
			cfg.Prefix = flags.Prefix
		case "format":
			cfg.Format = flags.Format
		case "package":
			cfg.Package = flags.Package
		case "verify":
			cfg.Verify = flags.Verify
		case "debug":
			cfg.Debug = flags.Debug
		}
	})
}

func newLogger(debug, quiet bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case debug:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

func newGenerateReport(result *generator.Result, duration time.Duration) GenerateReport {
	names := make([]string, 0, len(result.Records))
	for _, r := range result.Records {
		names = append(names, r.Name)
	}
	report := GenerateReport{
		Tool:       enumarrays.ToolName,
		Version:    enumarrays.Version(),
		Input:      FormatInputPath(result.InputPath),
		WrittenTo:  result.WrittenTo,
		Format:     string(result.Format),
		Stats:      result.Stats,
		Names:      names,
		Events:     result.Events,
		Duplicates: result.Duplicates,
		Duration:   duration.Round(time.Microsecond).String(),
	}
	if result.WrittenTo == "" {
		report.Output = result.Output
	}
	return report
}

func printGenerateSummary(result *generator.Result, duration time.Duration) {
	if result.InputPath != "" {
		cliutil.Writef(stderr, "Input: %s\n", FormatInputPath(result.InputPath))
	}
	s := result.Stats
	cliutil.Writef(stderr, "Extracted: %d (%d standalone, %d nested)\n", s.Extracted, s.Standalone, s.Nested)
	cliutil.Writef(stderr, "After merge: %d, after filters: %d\n", s.AfterResolve, s.AfterExclude)

	var warnings []string
	for _, e := range (&resolver.Result{Events: result.Events}).Warnings() {
		warnings = append(warnings, e.String())
	}
	for _, id := range result.Duplicates {
		warnings = append(warnings, "identifier "+id+" emitted more than once")
	}
	cliutil.WriteList(stderr, "Warnings", warnings)

	if result.WrittenTo != "" {
		cliutil.Writef(stderr, "Wrote %s to %s in %v\n", cliutil.Plural(len(result.Records), "enum array"), result.WrittenTo, duration.Round(time.Millisecond))
	}
}
