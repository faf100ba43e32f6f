package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTool(t *testing.T) {
	typesCache.reset()

	res, output, err := handleExtract(context.Background(), &mcp.CallToolRequest{}, extractInput{
		Types: typesInput{Content: clientTypes},
	})
	require.NoError(t, err)
	assert.Nil(t, res)

	assert.Equal(t, 4, output.Total)
	assert.Equal(t, 1, output.Standalone)
	assert.Equal(t, 3, output.Nested)
	assert.Equal(t, 4, output.Returned)
	require.Len(t, output.Records, 4)

	assert.Equal(t, extractedRecord{
		Name:   "orderStatus",
		Path:   "type OrderStatus",
		Values: []string{"PENDING", "COMPLETED"},
	}, output.Records[0])
	assert.Equal(t, "GetV1ItemsData.query.format", output.Records[1].Path)
	assert.Equal(t, "itemsFormat", output.Records[1].Name)
	assert.Equal(t, "PostV1ItemsData.body.format", output.Records[2].Path)
	assert.Equal(t, "itemsFormat", output.Records[2].Name)
	assert.Equal(t, "ResponseData.format", output.Records[3].Path)
	assert.Equal(t, "formatValues", output.Records[3].Name)
}

func TestExtractTool_StandaloneFilter(t *testing.T) {
	typesCache.reset()

	tests := []struct {
		name       string
		standalone bool
		wantPaths  []string
	}{
		{"standalone only", true, []string{"type OrderStatus"}},
		{"nested only", false, []string{"GetV1ItemsData.query.format", "PostV1ItemsData.body.format", "ResponseData.format"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			standalone := tt.standalone
			_, output, err := handleExtract(context.Background(), &mcp.CallToolRequest{}, extractInput{
				Types:      typesInput{Content: clientTypes},
				Standalone: &standalone,
			})
			require.NoError(t, err)
			assert.Equal(t, 4, output.Total)

			var paths []string
			for _, r := range output.Records {
				paths = append(paths, r.Path)
			}
			assert.Equal(t, tt.wantPaths, paths)
		})
	}
}

func TestExtractTool_Pagination(t *testing.T) {
	typesCache.reset()

	_, output, err := handleExtract(context.Background(), &mcp.CallToolRequest{}, extractInput{
		Types:  typesInput{Content: clientTypes},
		Offset: 1,
		Limit:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, output.Total)
	assert.Equal(t, 1, output.Returned)
	assert.Equal(t, "GetV1ItemsData.query.format", output.Records[0].Path)
}

func TestExtractTool_Empty(t *testing.T) {
	typesCache.reset()

	_, output, err := handleExtract(context.Background(), &mcp.CallToolRequest{}, extractInput{
		Types: typesInput{Content: "export type Id = string;\n"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, output.Total)
	assert.Empty(t, output.Records)
}

func TestExtractTool_InvalidInput(t *testing.T) {
	res, _, err := handleExtract(context.Background(), &mcp.CallToolRequest{}, extractInput{})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.IsError)
}
