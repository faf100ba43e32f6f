package mcpserver

import (
	"errors"
	"math"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	names := []string{"orderStatus", "petStatus", "petTier", "petKind", "petsSort"}

	tests := []struct {
		name          string
		items         []string
		offset, limit int
		want          []string
	}{
		{"whole page under default limit", names, 0, 0, names},
		{"first two", names, 0, 2, []string{"orderStatus", "petStatus"}},
		{"skip two", names, 2, 0, []string{"petTier", "petKind", "petsSort"}},
		{"middle window", names, 1, 2, []string{"petStatus", "petTier"}},
		{"last item", names, 4, 2, []string{"petsSort"}},
		{"past the end", names, 5, 2, nil},
		{"negative offset", names, -1, 2, nil},
		{"limit larger than rest", names, 3, 10, []string{"petKind", "petsSort"}},
		{"negative limit uses default", names, 0, -1, names},
		{"nil input", nil, 0, 2, nil},
		{"empty input", []string{}, 0, 2, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paginate(tt.items, tt.offset, tt.limit))
		})
	}
}

func TestPaginateLimits(t *testing.T) {
	items := make([]int, cfg.MaxLimit+500)
	for i := range items {
		items[i] = i
	}

	assert.Len(t, paginate(items, 0, 0), cfg.ExtractLimit)
	assert.Len(t, paginate(items, 0, len(items)), cfg.MaxLimit)
	assert.Equal(t, []int{1, 2}, paginate(items[:3], 1, math.MaxInt))
}

func TestMakeSlice(t *testing.T) {
	assert.Nil(t, makeSlice[string](0))
	s := makeSlice[string](3)
	assert.Empty(t, s)
	assert.Equal(t, 3, cap(s))
}

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{errors.New("reading /home/dev/client/types.gen.ts: no such file"), "reading <path>: no such file"},
		{errors.New("exactly one of file or content must be provided"), "exactly one of file or content must be provided"},
		{errors.New("write /tmp/a/enums.gen.ts: is a directory /tmp/a"), "write <path>: is a directory <path>"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeError(tt.err))
	}
}

func TestErrResult(t *testing.T) {
	res := errResult(errors.New("reading /tmp/x/types.gen.ts: permission denied"))
	assert.True(t, res.IsError)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "reading <path>: permission denied", text.Text)
}

func TestRegisterAllTools(t *testing.T) {
	server := mcp.NewServer(&mcp.Implementation{Name: "enumarrays-test", Version: "dev"}, nil)
	assert.NotPanics(t, func() { registerAllTools(server) })
}
