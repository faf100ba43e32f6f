package extractor

import "strings"

// scopeFrame is one nested object property on the structural path.
type scopeFrame struct {
	name string
	// depth is the nesting depth of the object body this property opened.
	depth int
}

// ScopeTracker follows which top-level type and which nested object
// properties enclose the current line, together with the brace depth.
//
// The zero value is ready to use and is outside any type.
type ScopeTracker struct {
	root   string
	frames []scopeFrame
	depth  int
	inside bool
}

// NewScopeTracker returns a tracker positioned outside any type definition.
func NewScopeTracker() *ScopeTracker {
	return &ScopeTracker{}
}

// Begin starts a new top-level type definition named name. depth is the net
// brace count of the line that opened it; a definition that opens and closes
// on the same line leaves the tracker outside any type.
func (s *ScopeTracker) Begin(name string, depth int) {
	s.Reset()
	if depth <= 0 {
		return
	}
	s.root = name
	s.depth = depth
	s.inside = true
}

// Enter pushes a nested object property and adds the line's opening braces
// to the depth.
func (s *ScopeTracker) Enter(name string, opens int) {
	if !s.inside {
		return
	}
	s.frames = append(s.frames, scopeFrame{name: name, depth: s.depth + 1})
	s.depth += opens
}

// Adjust applies the opening and closing brace counts of a line. Properties
// whose object body has been closed are popped; when the depth falls to zero
// or below the tracker leaves the type definition.
func (s *ScopeTracker) Adjust(opens, closes int) {
	if !s.inside {
		return
	}
	s.depth += opens - closes
	if s.depth <= 0 {
		s.Reset()
		return
	}
	for len(s.frames) > 0 && s.frames[len(s.frames)-1].depth > s.depth {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

// Reset leaves any type definition and clears the path.
func (s *ScopeTracker) Reset() {
	s.root = ""
	s.frames = s.frames[:0]
	s.depth = 0
	s.inside = false
}

// Inside reports whether the tracker is within a type definition.
func (s *ScopeTracker) Inside() bool {
	return s.inside
}

// Depth returns the current brace nesting depth.
func (s *ScopeTracker) Depth() int {
	return s.depth
}

// Segments returns the current structural path: the type name followed by
// the enclosing nested properties.
func (s *ScopeTracker) Segments() []string {
	if !s.inside {
		return nil
	}
	segments := make([]string, 0, len(s.frames)+1)
	segments = append(segments, s.root)
	for _, f := range s.frames {
		segments = append(segments, f.name)
	}
	return segments
}

// Path returns the dot-joined path of a property named field in the current scope.
func (s *ScopeTracker) Path(field string) string {
	return strings.Join(append(s.Segments(), field), ".")
}
