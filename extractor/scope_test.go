package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopeTracker(t *testing.T) {
	s := NewScopeTracker()
	assert.False(t, s.Inside())
	assert.Nil(t, s.Segments())

	s.Begin("Root", 1)
	assert.True(t, s.Inside())
	assert.Equal(t, "Root.kind", s.Path("kind"))

	s.Enter("config", 1)
	s.Enter("database", 1)
	assert.Equal(t, 3, s.Depth())
	assert.Equal(t, "Root.config.database.type", s.Path("type"))

	s.Adjust(0, 1)
	assert.Equal(t, "Root.config.port", s.Path("port"))

	s.Adjust(0, 1)
	assert.Equal(t, "Root.name", s.Path("name"))

	s.Adjust(0, 1)
	assert.False(t, s.Inside())
	assert.Equal(t, 0, s.Depth())
}

func TestScopeTrackerSingleLineObject(t *testing.T) {
	s := NewScopeTracker()
	s.Begin("Root", 1)
	s.Enter("meta", 1)
	s.Adjust(0, 1)
	assert.Equal(t, []string{"Root"}, s.Segments())
}

func TestScopeTrackerBeginClosedOnSameLine(t *testing.T) {
	s := NewScopeTracker()
	s.Begin("Empty", 0)
	assert.False(t, s.Inside())

	s.Enter("ignored", 1)
	assert.False(t, s.Inside())
}
