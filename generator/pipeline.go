package generator

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"runtime/debug"
	"slices"

	"github.com/v19i/openapi-enum-arrays/emitter"
	"github.com/v19i/openapi-enum-arrays/enumerrors"
	"github.com/v19i/openapi-enum-arrays/extractor"
	"github.com/v19i/openapi-enum-arrays/internal/tsverify"
	"github.com/v19i/openapi-enum-arrays/resolver"
)

// Observer stage names.
const (
	StageResolve = "resolve"
	StageInclude = "include"
	StageExclude = "exclude"
)

// Generate runs the pipeline over text and renders the result. It performs
// no I/O. Unrecognized syntax is skipped; a failure inside the pipeline,
// including a panic, is returned as a *enumerrors.PipelineError.
func (g *Generator) Generate(text string) (*Result, error) {
	return g.run(func() []extractor.Record { return extractor.Extract(text) })
}

// GenerateRecords runs the pipeline over records extracted earlier, such as
// the records of a cached extraction. Only Values and OriginalPath are read;
// records is left unmodified.
func (g *Generator) GenerateRecords(records []extractor.Record) (*Result, error) {
	return g.run(func() []extractor.Record { return slices.Clone(records) })
}

func (g *Generator) run(extract func() []extractor.Record) (result *Result, err error) {
	logger := g.logger()
	observer := g.observer(logger)

	format, err := ParseFormat(string(g.Format))
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	stage := enumerrors.StageExtract
	defer func() {
		if r := recover(); r != nil {
			perr := &enumerrors.PipelineError{
				Stage:     stage,
				Message:   "unexpected failure",
				Recovered: r,
				Stack:     debug.Stack(),
			}
			if g.Debug {
				logger.Error("pipeline failure", "stage", stage, "panic", fmt.Sprint(r), "stack", string(perr.Stack))
			}
			result, err = nil, perr
		}
	}()

	records := extract()
	stats := Stats{Extracted: len(records)}
	for i := range records {
		if records[i].IsStandalone() {
			stats.Standalone++
		}
		records[i].Name = resolver.DeriveName(records[i].Values, records[i].OriginalPath)
	}
	stats.Nested = stats.Extracted - stats.Standalone
	observer.Extracted(stats.Standalone, stats.Nested)

	stage = enumerrors.StageResolve
	resolved := resolver.Resolve(records, resolver.WithClassifier(g.Classifier))
	for _, e := range resolved.Events {
		observer.Decision(e)
	}
	stats.AfterResolve = len(resolved.Records)
	observer.Stage(StageResolve, stats.Extracted, stats.AfterResolve)

	stage = enumerrors.StageFilter
	included := Include(resolved.Records, g.IncludePatterns)
	stats.AfterInclude = len(included)
	observer.Stage(StageInclude, stats.AfterResolve, stats.AfterInclude)

	kept := Exclude(included, g.ExcludePatterns)
	stats.AfterExclude = len(kept)
	observer.Stage(StageExclude, stats.AfterInclude, stats.AfterExclude)

	stage = enumerrors.StageEmit
	duplicates := emitter.Duplicates(kept, g.ArrayPrefix)
	for _, id := range duplicates {
		logger.Warn("identifier emitted more than once", "identifier", id)
	}
	output, err := g.render(format, kept)
	if err != nil {
		return nil, &enumerrors.PipelineError{Stage: stage, Message: "rendering output", Cause: err}
	}

	if g.Verify {
		stage = enumerrors.StageVerify
		if err := verifyOutput(format, output); err != nil {
			return nil, &enumerrors.PipelineError{Stage: stage, Message: "generated " + string(format) + " output", Cause: err}
		}
	}

	return &Result{
		Output:     output,
		Format:     format,
		Records:    kept,
		Stats:      stats,
		Events:     resolved.Events,
		Duplicates: duplicates,
	}, nil
}

func (g *Generator) render(format Format, records []extractor.Record) (string, error) {
	if format == FormatGo {
		src, err := emitter.RenderGo(records, g.GoPackage, g.ArrayPrefix)
		if err != nil {
			return "", err
		}
		return string(src), nil
	}
	return emitter.Render(records, g.ArrayPrefix), nil
}

func verifyOutput(format Format, output string) error {
	if format == FormatGo {
		return verifyGo(output)
	}
	return tsverify.Verify(context.Background(), []byte(output))
}

// verifyGo parses Go output and rejects package-level names declared twice.
func verifyGo(output string) error {
	file, err := parser.ParseFile(token.NewFileSet(), "enums.go", output, parser.AllErrors)
	if err != nil {
		return err
	}
	declared := make(map[string]bool)
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		for _, spec := range gen.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			for _, name := range vs.Names {
				if name.Name == "_" {
					continue
				}
				if declared[name.Name] {
					return fmt.Errorf("%s redeclared", name.Name)
				}
				declared[name.Name] = true
			}
		}
	}
	return nil
}

func (g *Generator) logger() Logger {
	if g.Logger == nil {
		return NopLogger{}
	}
	return g.Logger
}

func (g *Generator) observer(logger Logger) Observer {
	switch {
	case g.Observer != nil:
		return g.Observer
	case g.Debug:
		return NewLogObserver(logger)
	default:
		return NopObserver{}
	}
}
