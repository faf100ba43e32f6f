package generator

import (
	"fmt"
	"strings"

	"github.com/v19i/openapi-enum-arrays/enumerrors"
	"github.com/v19i/openapi-enum-arrays/extractor"
	"github.com/v19i/openapi-enum-arrays/resolver"
)

// Format selects the output language.
type Format string

const (
	// FormatTypeScript renders `export const x = [...] as const;` declarations.
	FormatTypeScript Format = "ts"
	// FormatGo renders a Go source file of []string variables.
	FormatGo Format = "go"
)

// ParseFormat parses a format name. The empty string selects TypeScript.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ts", "typescript":
		return FormatTypeScript, nil
	case "go", "golang":
		return FormatGo, nil
	default:
		return "", &enumerrors.ConfigError{Option: "format", Value: s, Message: "must be one of ts, go"}
	}
}

// Extension returns the file extension of generated files in this format.
func (f Format) Extension() string {
	if f == FormatGo {
		return ".go"
	}
	return ".ts"
}

// Stats holds the record counts after each pipeline stage.
type Stats struct {
	// Extracted is the number of records found by extraction.
	Extracted int `json:"extracted" yaml:"extracted"`
	// Standalone is the number of records from `type X = ...` declarations.
	Standalone int `json:"standalone" yaml:"standalone"`
	// Nested is the number of records from object type properties.
	Nested int `json:"nested" yaml:"nested"`
	// AfterResolve is the number of records surviving the merge pass.
	AfterResolve int `json:"afterResolve" yaml:"afterResolve"`
	// AfterInclude is the number of records kept by the include patterns.
	AfterInclude int `json:"afterInclude" yaml:"afterInclude"`
	// AfterExclude is the number of records emitted.
	AfterExclude int `json:"afterExclude" yaml:"afterExclude"`
}

// Result contains the outcome of a generation run.
type Result struct {
	// Output is the rendered source text.
	Output string `json:"output" yaml:"output"`
	// Format is the language Output is written in.
	Format Format `json:"format" yaml:"format"`
	// Records are the emitted enumerations in output order.
	Records []extractor.Record `json:"records" yaml:"records"`
	// Stats holds the record counts per stage.
	Stats Stats `json:"stats" yaml:"stats"`
	// Events lists every rename and merge decision.
	Events []resolver.Event `json:"events,omitempty" yaml:"events,omitempty"`
	// Duplicates lists identifiers emitted more than once.
	Duplicates []string `json:"duplicates,omitempty" yaml:"duplicates,omitempty"`
	// InputPath is the file the input text was read from, if any.
	InputPath string `json:"inputPath,omitempty" yaml:"inputPath,omitempty"`
	// WrittenTo is the file Output was written to, if any.
	WrittenTo string `json:"writtenTo,omitempty" yaml:"writtenTo,omitempty"`
}

// HasWarnings reports whether any decision or duplicate deserves attention.
func (r *Result) HasWarnings() bool {
	if len(r.Duplicates) > 0 {
		return true
	}
	return len((&resolver.Result{Events: r.Events}).Warnings()) > 0
}

// Generator holds the configuration of the pipeline.
type Generator struct {
	// IncludePatterns keeps only names containing one of the patterns (substring match).
	IncludePatterns []string
	// ExcludePatterns drops names containing any of the patterns, after IncludePatterns.
	ExcludePatterns []string
	// ArrayPrefix is prepended to every emitted identifier.
	ArrayPrefix string
	// Debug delivers stage counts and decisions to the logger and logs the
	// stack of recovered failures. It never changes the output.
	Debug bool
	// Format selects the output language (default: TypeScript).
	Format Format
	// GoPackage is the package clause of Go output (default: "enums").
	GoPackage string
	// Verify parses the rendered output and fails the run on syntax errors.
	Verify bool
	// Logger receives diagnostics (default: NopLogger).
	Logger Logger
	// Observer receives stage counts and decisions. When nil and Debug is
	// set, a LogObserver over Logger is used.
	Observer Observer
	// Classifier assigns structural contexts during collision resolution
	// (default: resolver.DefaultClassifier).
	Classifier resolver.Classifier
}

// New creates a new Generator instance with default settings
func New() *Generator {
	return &Generator{
		Format: FormatTypeScript,
		Logger: NopLogger{},
	}
}

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	// Input source (at most one; outputDir discovery is the fallback)
	inputText    *string
	inputPath    *string
	inputRecords []extractor.Record
	hasRecords   bool

	outputDir  string
	outputPath string

	includePatterns []string
	excludePatterns []string
	arrayPrefix     string
	debug           bool
	format          Format
	goPackage       string
	verify          bool
	logger          Logger
	observer        Observer
	classifier      resolver.Classifier
}

// GenerateWithOptions reads the input, runs the pipeline and writes the
// output when a destination is configured.
//
// Example:
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithInputPath("src/client/types.gen.ts"),
//	    generator.WithOutputPath("src/client/enums.gen.ts"),
//	    generator.WithArrayPrefix("api"),
//	)
func GenerateWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("generator: invalid options: %w", err)
	}

	g := &Generator{
		IncludePatterns: cfg.includePatterns,
		ExcludePatterns: cfg.excludePatterns,
		ArrayPrefix:     cfg.arrayPrefix,
		Debug:           cfg.debug,
		Format:          cfg.format,
		GoPackage:       cfg.goPackage,
		Verify:          cfg.verify,
		Logger:          cfg.logger,
		Observer:        cfg.observer,
		Classifier:      cfg.classifier,
	}

	var result *Result
	if cfg.hasRecords {
		result, err = g.GenerateRecords(cfg.inputRecords)
	} else {
		text, inputPath, rerr := cfg.readInput()
		if rerr != nil {
			return nil, rerr
		}
		result, err = g.Generate(text)
		if result != nil {
			result.InputPath = inputPath
		}
	}
	if err != nil {
		return nil, err
	}

	dest := cfg.destination()
	if dest == "" {
		return result, nil
	}
	if err := writeOutput(dest, result.Output); err != nil {
		return nil, err
	}
	result.WrittenTo = dest
	g.logger().Info("wrote enum arrays", "path", dest, "count", len(result.Records))
	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		format: FormatTypeScript,
		logger: NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	sources := 0
	for _, set := range []bool{cfg.inputText != nil, cfg.inputPath != nil, cfg.hasRecords} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return nil, fmt.Errorf("must specify at most one input source (WithInputText, WithInputPath or WithRecords)")
	}

	return cfg, nil
}

// WithInputText specifies the TypeScript text to process.
func WithInputText(text string) Option {
	return func(cfg *generateConfig) error {
		cfg.inputText = &text
		return nil
	}
}

// WithInputPath specifies a file to read the TypeScript text from.
func WithInputPath(path string) Option {
	return func(cfg *generateConfig) error {
		if path == "" {
			return &enumerrors.ConfigError{Option: "input path", Message: "cannot be empty"}
		}
		cfg.inputPath = &path
		return nil
	}
}

// WithRecords supplies records already produced by extractor.Extract, so
// the input is not read or extracted again. Only Values and OriginalPath
// are used.
func WithRecords(records []extractor.Record) Option {
	return func(cfg *generateConfig) error {
		cfg.inputRecords = records
		cfg.hasRecords = true
		return nil
	}
}

// WithOutputDir specifies the generated client directory. When no input is
// given, types.gen.ts is discovered there; when no output path is given,
// the output is written there as enums.gen.ts (or enums.gen.go).
func WithOutputDir(dir string) Option {
	return func(cfg *generateConfig) error {
		cfg.outputDir = dir
		return nil
	}
}

// WithOutputPath specifies the file to write the output to.
func WithOutputPath(path string) Option {
	return func(cfg *generateConfig) error {
		cfg.outputPath = path
		return nil
	}
}

// WithIncludePatterns keeps only enumerations whose name contains one of patterns.
func WithIncludePatterns(patterns ...string) Option {
	return func(cfg *generateConfig) error {
		cfg.includePatterns = append(cfg.includePatterns, patterns...)
		return nil
	}
}

// WithExcludePatterns drops enumerations whose name contains any of patterns.
func WithExcludePatterns(patterns ...string) Option {
	return func(cfg *generateConfig) error {
		cfg.excludePatterns = append(cfg.excludePatterns, patterns...)
		return nil
	}
}

// WithArrayPrefix specifies a prefix prepended to every emitted identifier.
func WithArrayPrefix(prefix string) Option {
	return func(cfg *generateConfig) error {
		cfg.arrayPrefix = prefix
		return nil
	}
}

// WithDebug enables stage diagnostics.
// Default: false
func WithDebug(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.debug = enabled
		return nil
	}
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(logger Logger) Option {
	return func(cfg *generateConfig) error {
		if logger == nil {
			logger = NopLogger{}
		}
		cfg.logger = logger
		return nil
	}
}

// WithObserver sets the observer receiving stage counts and decisions.
func WithObserver(observer Observer) Option {
	return func(cfg *generateConfig) error {
		cfg.observer = observer
		return nil
	}
}

// WithClassifier replaces the structural context classifier used to
// resolve name collisions.
func WithClassifier(classifier resolver.Classifier) Option {
	return func(cfg *generateConfig) error {
		cfg.classifier = classifier
		return nil
	}
}

// WithFormat selects the output language by name ("ts" or "go").
// Default: "ts"
func WithFormat(name string) Option {
	return func(cfg *generateConfig) error {
		format, err := ParseFormat(name)
		if err != nil {
			return err
		}
		cfg.format = format
		return nil
	}
}

// WithGoPackage specifies the package name of Go output.
// Default: "enums"
func WithGoPackage(name string) Option {
	return func(cfg *generateConfig) error {
		cfg.goPackage = name
		return nil
	}
}

// WithVerify enables syntax verification of the rendered output.
// Default: false
func WithVerify(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.verify = enabled
		return nil
	}
}
