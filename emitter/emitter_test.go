package emitter

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/v19i/openapi-enum-arrays/extractor"
)

func TestIdentifier(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		want   string
	}{
		{name: "status", want: "statusValues"},
		{name: "orderStatus", want: "orderStatuses"},
		{name: "OrderStatus", want: "orderStatuses"},
		{name: "userType", want: "userTypes"},
		{name: "aiModel", want: "aiModels"},
		{name: "memberRole", want: "memberRoles"},
		{name: "dataSource", want: "dataSources"},
		{name: "themeMode", want: "themeModes"},
		{name: "format", want: "formatValues"},
		{name: "formatValues", want: "formatValues"},
		{name: "statusValues", want: "statusValues"},
		{name: "Typeface", want: "typefaceValues"},
		{name: "status", prefix: "api", want: "apistatusValues"},
		{name: "kindValues", prefix: "pet_", want: "pet_kindValues"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.prefix, func(t *testing.T) {
			assert.Equal(t, tt.want, Identifier(tt.name, tt.prefix))
		})
	}
}

func TestRender(t *testing.T) {
	records := []extractor.Record{
		{Name: "status", Values: []string{"active", "inactive", "pending"}, OriginalPath: "type Status"},
		{Name: "orderStatus", Values: []string{"PENDING", "COMPLETED"}, OriginalPath: "type OrderStatus"},
	}

	want := Header + "\n\n" +
		"export const statusValues = ['active', 'inactive', 'pending'] as const;\n" +
		"export const orderStatuses = ['COMPLETED', 'PENDING'] as const;\n"
	assert.Equal(t, want, Render(records, ""))

	// values are sorted on output only
	assert.Equal(t, []string{"PENDING", "COMPLETED"}, records[1].Values)
}

func TestRenderEscapes(t *testing.T) {
	records := []extractor.Record{
		{Name: "quote", Values: []string{`it's`, `back\slash`}, OriginalPath: "type Quote"},
	}
	out := Render(records, "")
	assert.Contains(t, out, `export const quoteValues = ['back\\slash', 'it\'s'] as const;`)
}

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, Header+"\n\n\n", Render(nil, ""))
}

func TestRenderGo(t *testing.T) {
	records := []extractor.Record{
		{Name: "orderStatus", Values: []string{"PENDING", "COMPLETED"}, OriginalPath: "type OrderStatus"},
		{Name: "format", Values: []string{`a"b`, "c"}, OriginalPath: "ResponseData.format"},
	}

	src, err := RenderGo(records, "api", "")
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, GoHeader)
	assert.Contains(t, out, "package api")
	assert.Contains(t, out, "var OrderStatuses = []string{\n\t\"COMPLETED\",\n\t\"PENDING\",\n}")
	assert.Contains(t, out, `"a\"b",`)
	assert.Contains(t, out, "// FormatValues lists the values of ResponseData.format.")

	_, err = parser.ParseFile(token.NewFileSet(), "api.go", src, parser.AllErrors)
	assert.NoError(t, err)
}

func TestRenderGoPackageName(t *testing.T) {
	src, err := RenderGo(nil, "", "")
	require.NoError(t, err)
	assert.Contains(t, string(src), "package "+DefaultGoPackage)

	_, err = RenderGo(nil, "not-a-package", "")
	assert.Error(t, err)
}

func TestGoIdentifier(t *testing.T) {
	assert.Equal(t, "OrderStatuses", GoIdentifier("orderStatus", ""))
	assert.Equal(t, "ApiKindValues", GoIdentifier("Kind", "api"))
	assert.Equal(t, "RefValues", GoIdentifier("$ref", ""))
}

func TestDuplicates(t *testing.T) {
	records := []extractor.Record{
		{Name: "status"},
		{Name: "Status"},
		{Name: "kind"},
		{Name: "kindValues"},
		{Name: "mode"},
	}
	assert.Equal(t, []string{"statusValues", "kindValues"}, Duplicates(records, ""))
	assert.Empty(t, Duplicates(records[4:], ""))
}
