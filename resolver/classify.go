package resolver

import (
	"regexp"
	"strings"
)

// Context is the structural context a path belongs to.
type Context string

const (
	// ContextNone means no context could be recognized.
	ContextNone Context = ""
	// ContextQuery is a query parameter of an operation.
	ContextQuery Context = "query"
	// ContextRequest is a request body of an operation.
	ContextRequest Context = "request"
	// ContextResponse is a response body of an operation.
	ContextResponse Context = "response"
)

// String returns the context name, or "none".
func (c Context) String() string {
	if c == ContextNone {
		return "none"
	}
	return string(c)
}

// Qualifier returns the name prefix used to disambiguate colliding names,
// or "" when the context has none.
func (c Context) Qualifier() string {
	return string(c)
}

// Classifier maps a structural path to the context it belongs to.
type Classifier interface {
	Classify(path string) Context
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(path string) Context

// Classify calls f(path).
func (f ClassifierFunc) Classify(path string) Context {
	return f(path)
}

var (
	getDataPattern      = regexp.MustCompile(`^Get\w*Data\.`)
	postPutDataPattern  = regexp.MustCompile(`^(?:Post|Put)\w*Data\.`)
	defaultClassifierFn = ClassifierFunc(classifyPath)
)

// DefaultClassifier returns the classifier for paths produced from
// OpenAPI-generated client types, where operation types are named like
// GetV1PetsData and carry query, body and response members.
func DefaultClassifier() Classifier {
	return defaultClassifierFn
}

// classifyPath checks explicit member markers first, then operation type
// naming, then loose substrings, and finally the leading segment alone.
func classifyPath(path string) Context {
	switch {
	case strings.Contains(path, ".query."):
		return ContextQuery
	case strings.Contains(path, ".body."):
		return ContextRequest
	case strings.Contains(path, "ResponseData."):
		return ContextResponse
	case getDataPattern.MatchString(path):
		return ContextQuery
	case postPutDataPattern.MatchString(path):
		return ContextRequest
	case strings.Contains(path, "query"):
		return ContextQuery
	case strings.Contains(path, "body"), strings.Contains(path, "Request"):
		return ContextRequest
	case strings.Contains(path, "Response"):
		return ContextResponse
	}

	root, _, _ := strings.Cut(path, ".")
	root = strings.ToLower(root)
	switch {
	case strings.Contains(root, "query"):
		return ContextQuery
	case strings.Contains(root, "request"), strings.Contains(root, "post"), strings.Contains(root, "put"):
		return ContextRequest
	case strings.Contains(root, "response"), strings.Contains(root, "get"):
		return ContextResponse
	}
	return ContextNone
}
