// Package generator turns generated TypeScript client types into a
// deduplicated module of constant enum arrays.
//
// The pipeline extracts every string-literal union from the input text,
// derives a semantic name for each, resolves name collisions by structural
// context, merges enumerations carrying identical values, applies the
// include and exclude filters, and renders the survivors.
//
// # Quick Start
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithOutputDir("src/client"),
//	    generator.WithExcludePatterns("response"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("wrote %d enumerations to %s\n", len(result.Records), result.WrittenTo)
//
// WithOutputDir discovers types.gen.ts in the directory and writes
// enums.gen.ts next to it. Use WithInputText or WithInputPath to name the
// input explicitly and WithOutputPath to choose the destination.
// WithRecords skips reading and extraction when the records of
// [extractor.Extract] are already at hand.
//
// # Generator
//
// For repeated runs over in-memory text, configure a [Generator] and call
// [Generator.Generate], which performs no I/O:
//
//	g := generator.New()
//	g.ArrayPrefix = "api"
//	result, err := g.Generate(text)
//
// # Diagnostics
//
// Stage counts and every rename or merge decision are delivered to an
// [Observer]. With Debug enabled and no observer configured, a
// [LogObserver] writes them to the configured [Logger].
//
// # Errors
//
// Missing input and missing destinations are reported as
// *enumerrors.EnvironmentError; unexpected failures inside the pipeline,
// including panics, as *enumerrors.PipelineError; invalid options as
// *enumerrors.ConfigError.
package generator
