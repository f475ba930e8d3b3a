package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOAS2(t *testing.T) {
	parser := New()
	result, err := parser.Parse("../testdata/petstore-2.0.yaml")
	require.NoError(t, err)

	assert.Equal(t, "2.0", result.Version)
	assert.Equal(t, OASVersion20, result.OASVersion)
	assert.True(t, result.IsOAS2())
	assert.False(t, result.IsOAS3())

	doc, ok := result.OAS2Document()
	require.True(t, ok, "Expected OAS2Document, got %T", result.Document)
	require.NotNil(t, doc.Info)
	assert.Equal(t, "Swagger Petstore", doc.Info.Title)
	assert.Equal(t, "1.0.0", doc.Info.Version)
	assert.Equal(t, "petstore.example.com", doc.Host)
	assert.Equal(t, "/v1", doc.BasePath)
	assert.Len(t, doc.Definitions, 3)
	assert.Empty(t, result.Errors)
}

func TestParseOAS3(t *testing.T) {
	parser := New()
	result, err := parser.Parse("../testdata/petstore-3.0.yaml")
	require.NoError(t, err)

	assert.Equal(t, "3.0.3", result.Version)
	assert.Equal(t, OASVersion303, result.OASVersion)
	assert.True(t, result.IsOAS3())

	doc, ok := result.OAS3Document()
	require.True(t, ok, "Expected OAS3Document, got %T", result.Document)
	require.NotNil(t, doc.Info)
	assert.Equal(t, "Swagger Petstore", doc.Info.Title)
	require.NotNil(t, doc.Components)
	assert.Len(t, doc.Components.Schemas, 3)
	assert.Empty(t, result.Errors)
}

func TestParseStats(t *testing.T) {
	parser := New()
	result, err := parser.Parse("../testdata/petstore-3.0.yaml")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.PathCount)
	assert.Equal(t, 3, result.Stats.OperationCount)
	assert.Equal(t, 3, result.Stats.SchemaCount)
	assert.Equal(t, 1, result.Stats.SecuritySchemeCount)
}

func TestVersionNotDetected(t *testing.T) {
	parser := New()
	_, err := parser.ParseBytes([]byte("title: not an OAS document\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionNotDetected))
}

func TestUnsupportedVersion(t *testing.T) {
	parser := New()
	_, err := parser.ParseBytes([]byte("swagger: \"1.2\"\ninfo:\n  title: Old\n  version: 1.0.0\npaths: {}\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrVersionNotDetected)
	assert.Contains(t, err.Error(), "unsupported OpenAPI version")
}

func TestInvalidYAML(t *testing.T) {
	parser := New()
	_, err := parser.ParseBytes([]byte("openapi: 3.0.3\n  bad indent: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parser:")
}

func TestValidateStructureDiagnostics(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		expected []string
	}{
		{
			name:     "missing info",
			spec:     "openapi: 3.0.3\npaths: {}\n",
			expected: []string{"attribute info is missing"},
		},
		{
			name:     "missing title and version",
			spec:     "openapi: 3.0.3\ninfo:\n  description: no title\npaths: {}\n",
			expected: []string{"attribute info.title is missing", "attribute info.version is missing"},
		},
		{
			name:     "missing paths",
			spec:     "openapi: 3.0.3\ninfo:\n  title: T\n  version: 1.0.0\n",
			expected: []string{"attribute paths is missing"},
		},
		{
			name:     "missing paths swagger",
			spec:     "swagger: \"2.0\"\ninfo:\n  title: T\n  version: 1.0.0\n",
			expected: []string{"attribute paths is missing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := New()
			result, err := parser.ParseBytes([]byte(tt.spec))
			require.NoError(t, err)
			require.Len(t, result.Errors, len(tt.expected))
			for i, want := range tt.expected {
				assert.Equal(t, want, result.Errors[i].Error())
			}
		})
	}
}

func TestPathsOptionalIn31(t *testing.T) {
	parser := New()
	result, err := parser.ParseBytes([]byte("openapi: 3.1.0\ninfo:\n  title: T\n  version: 1.0.0\n"))
	require.NoError(t, err)
	assert.Empty(t, result.Errors)
}

func TestValidationDisabled(t *testing.T) {
	parser := New()
	parser.ValidateStructure = false
	result, err := parser.ParseBytes([]byte("openapi: 3.0.3\npaths: {}\n"))
	require.NoError(t, err)
	assert.Empty(t, result.Errors)
}

func TestParseWithRefResolution(t *testing.T) {
	parser := New()
	parser.ResolveRefs = true
	result, err := parser.Parse("../testdata/petstore-2.0.yaml")
	require.NoError(t, err)

	doc, ok := result.OAS2Document()
	require.True(t, ok)

	// The 200 response of GET /pets referenced #/definitions/Pets; after
	// resolution the typed tree carries the expanded schema.
	item := doc.Paths["/pets"]
	require.NotNil(t, item)
	require.NotNil(t, item.Get)
	resp := item.Get.Responses.Codes["200"]
	require.NotNil(t, resp)
	require.NotNil(t, resp.Schema)
	assert.Equal(t, "array", resp.Schema.Type)
}

func TestParseVersionStrings(t *testing.T) {
	tests := []struct {
		input    string
		expected OASVersion
		ok       bool
	}{
		{"2.0", OASVersion20, true},
		{"3.0.0", OASVersion300, true},
		{"3.0.3", OASVersion303, true},
		{"3.0.9", OASVersion303, true},
		{"3.1.0", OASVersion310, true},
		{"3.1.7", OASVersion311, true},
		{"1.2", Unknown, false},
		{"", Unknown, false},
	}
	for _, tt := range tests {
		v, ok := ParseVersion(tt.input)
		assert.Equal(t, tt.ok, ok, "ParseVersion(%q)", tt.input)
		assert.Equal(t, tt.expected, v, "ParseVersion(%q)", tt.input)
	}
}

func TestGetOperations(t *testing.T) {
	item := &PathItem{
		Get:   &Operation{OperationID: "get"},
		Post:  &Operation{OperationID: "post"},
		Trace: &Operation{OperationID: "trace"},
	}

	ops := GetOperations(item, OASVersion303)
	assert.Len(t, ops, 3)
	assert.Contains(t, ops, MethodTrace)

	// trace is not addressable in 2.0
	ops = GetOperations(item, OASVersion20)
	assert.Len(t, ops, 2)
	assert.NotContains(t, ops, MethodTrace)
}

func TestVendorExtensionsCaptured(t *testing.T) {
	spec := `openapi: 3.0.3
info:
  title: T
  version: 1.0.0
  x-audience: internal
paths: {}
x-lint-ignore: "104"
`
	parser := New()
	result, err := parser.ParseBytes([]byte(spec))
	require.NoError(t, err)

	doc, ok := result.OAS3Document()
	require.True(t, ok)
	assert.Equal(t, "104", doc.Extra["x-lint-ignore"])
	assert.Equal(t, "internal", doc.Info.Extra["x-audience"])
}
