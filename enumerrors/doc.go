// Package enumerrors provides structured error types for openapi-enum-arrays.
//
// Import path: github.com/v19i/openapi-enum-arrays/enumerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As].
// Recognition failures inside the pipeline (a line that is not a union, an
// expression without literals) are never errors: the scanner skips them. What
// reaches the caller falls into three categories.
//
// # Error Types
//
//   - [EnvironmentError]: no input text could be found, or no destination is available for the output
//   - [PipelineError]: an unexpected failure while extracting, resolving, rendering or verifying
//   - [ConfigError]: invalid configuration or options
//
// # Sentinel Errors
//
//   - [ErrEnvironment]: Matches any [EnvironmentError]
//   - [ErrMissingInput]: Matches [EnvironmentError] with Kind [KindInput]
//   - [ErrNoDestination]: Matches [EnvironmentError] with Kind [KindDestination]
//   - [ErrPipeline]: Matches any [PipelineError]
//   - [ErrVerify]: Matches [PipelineError] raised by output verification
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage
//
//	result, err := generator.GenerateWithOptions(generator.WithOutputDir("src/client"))
//	if errors.Is(err, enumerrors.ErrEnvironment) {
//		// nothing to do: warn and move on
//		log.Printf("warning: %v", err)
//		return nil
//	}
//
// Environment errors are meant to be reported as warnings: the run aborts
// without producing output, but the host process carries on.
package enumerrors
