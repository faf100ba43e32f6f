package enumerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrEnvironment indicates the run could not start or finish because of its surroundings.
	ErrEnvironment = errors.New("environment error")

	// ErrMissingInput indicates no input text was provided or discovered.
	ErrMissingInput = errors.New("missing input")

	// ErrNoDestination indicates there is nowhere to write the output.
	ErrNoDestination = errors.New("no output destination")

	// ErrPipeline indicates an unexpected failure inside the pipeline.
	ErrPipeline = errors.New("pipeline error")

	// ErrVerify indicates the generated output failed syntax verification.
	ErrVerify = errors.New("output verification failed")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// EnvironmentKind identifies which part of the environment is missing.
type EnvironmentKind string

const (
	// KindInput means no input text could be read or discovered.
	KindInput EnvironmentKind = "input"
	// KindDestination means no output destination is available.
	KindDestination EnvironmentKind = "destination"
)

// EnvironmentError reports a missing input artifact or output destination.
type EnvironmentError struct {
	// Kind is the missing piece of the environment
	Kind EnvironmentKind
	// Path is the file or directory that was looked at (may be empty)
	Path string
	// Message describes what was missing
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *EnvironmentError) Error() string {
	msg := "environment error"
	switch e.Kind {
	case KindInput:
		msg = "missing input"
	case KindDestination:
		msg = "no output destination"
	}
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *EnvironmentError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrEnvironment, and also ErrMissingInput or ErrNoDestination
// depending on Kind.
func (e *EnvironmentError) Is(target error) bool {
	if target == ErrEnvironment {
		return true
	}
	if target == ErrMissingInput && e.Kind == KindInput {
		return true
	}
	if target == ErrNoDestination && e.Kind == KindDestination {
		return true
	}
	return false
}

// Pipeline stages reported in PipelineError.Stage.
const (
	StageExtract = "extract"
	StageResolve = "resolve"
	StageFilter  = "filter"
	StageEmit    = "emit"
	StageVerify  = "verify"
	StageWrite   = "write"
)

// PipelineError represents an unexpected failure during one pipeline stage.
// Panics recovered at the generator boundary are converted into a PipelineError.
type PipelineError struct {
	// Stage is the pipeline stage that failed (see the Stage constants)
	Stage string
	// Message describes the failure
	Message string
	// Recovered holds the recovered panic value, if the failure was a panic
	Recovered any
	// Stack is the goroutine stack captured at recovery (nil for ordinary errors)
	Stack []byte
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *PipelineError) Error() string {
	msg := "pipeline error"
	if e.Stage == StageVerify {
		msg = "output verification failed"
	}
	if e.Stage != "" {
		msg += " during " + e.Stage
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Recovered != nil {
		msg += fmt.Sprintf(": panic: %v", e.Recovered)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *PipelineError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *PipelineError) Is(target error) bool {
	if target == ErrPipeline {
		return true
	}
	return target == ErrVerify && e.Stage == StageVerify
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, unreadable config files and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
