package linter

import (
	"testing"

	"github.com/erraggy/oaslint/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexedPetstore() *parser.OAS3Document {
	return &parser.OAS3Document{
		OpenAPI: "3.0.3",
		Info:    &parser.Info{Title: "Petstore", Version: "1.0.0"},
		Paths: parser.Paths{
			"/pets": {
				Get: &parser.Operation{
					OperationID: "listPets",
					Parameters: []*parser.Parameter{
						{Name: "limit", In: "query", Schema: &parser.Schema{Type: "integer"}},
					},
				},
			},
		},
		Components: &parser.Components{
			Schemas: map[string]*parser.Schema{
				"Pet": {
					Type: "object",
					Properties: map[string]*parser.Schema{
						"name": {Type: "string"},
					},
				},
			},
		},
	}
}

func TestReverseIndexLookup(t *testing.T) {
	doc := indexedPetstore()
	idx := NewReverseIndex(doc)

	tests := []struct {
		node any
		want string
	}{
		{doc, ""},
		{doc.Info, "/info"},
		{doc.Paths, "/paths"},
		{doc.Paths["/pets"], "/paths/~1pets"},
		{doc.Paths["/pets"].Get, "/paths/~1pets/get"},
		{doc.Paths["/pets"].Get.Parameters, "/paths/~1pets/get/parameters"},
		{doc.Paths["/pets"].Get.Parameters[0], "/paths/~1pets/get/parameters/0"},
		{doc.Paths["/pets"].Get.Parameters[0].Schema, "/paths/~1pets/get/parameters/0/schema"},
		{doc.Components, "/components"},
		{doc.Components.Schemas["Pet"], "/components/schemas/Pet"},
		{doc.Components.Schemas["Pet"].Properties["name"], "/components/schemas/Pet/properties/name"},
	}
	for _, tt := range tests {
		got, ok := idx.Lookup(tt.node)
		require.True(t, ok, "expected %q to be indexed", tt.want)
		assert.Equal(t, tt.want, got)
	}
}

func TestReverseIndexUnknownNode(t *testing.T) {
	idx := NewReverseIndex(indexedPetstore())

	_, ok := idx.Lookup(&parser.Schema{Type: "object"})
	assert.False(t, ok)

	_, ok = idx.Lookup(nil)
	assert.False(t, ok)

	// scalars are not identity-addressable
	_, ok = idx.Lookup("a string")
	assert.False(t, ok)
}

func TestReverseIndexSharedNodeFirstVisitWins(t *testing.T) {
	shared := &parser.Schema{Type: "object"}
	doc := &parser.OAS3Document{
		OpenAPI: "3.0.3",
		Components: &parser.Components{
			Schemas: map[string]*parser.Schema{
				"Alpha": shared,
				"Beta":  shared,
			},
		},
	}

	idx := NewReverseIndex(doc)
	got, ok := idx.Lookup(shared)
	require.True(t, ok)

	// map keys are walked in sorted order, so the assignment is deterministic
	assert.Equal(t, "/components/schemas/Alpha", got)
}

func TestReverseIndexCycleSafe(t *testing.T) {
	node := &parser.Schema{Type: "object"}
	node.Properties = map[string]*parser.Schema{"self": node}

	doc := &parser.OAS3Document{
		OpenAPI: "3.0.3",
		Components: &parser.Components{
			Schemas: map[string]*parser.Schema{"Node": node},
		},
	}

	idx := NewReverseIndex(doc)
	got, ok := idx.Lookup(node)
	require.True(t, ok)
	assert.Equal(t, "/components/schemas/Node", got)
}

func TestReverseIndexResponsesStatusCodes(t *testing.T) {
	ok200 := &parser.Response{Description: "ok"}
	notFound := &parser.Response{Description: "missing"}
	fallback := &parser.Response{Description: "anything else"}
	responses := &parser.Responses{
		Default: fallback,
		Codes:   map[string]*parser.Response{"200": ok200, "404": notFound},
	}
	doc := &parser.OAS3Document{
		OpenAPI: "3.0.3",
		Paths: parser.Paths{
			"/pets": {Get: &parser.Operation{Responses: responses}},
		},
	}

	idx := NewReverseIndex(doc)

	tests := []struct {
		node any
		want string
	}{
		{responses, "/paths/~1pets/get/responses"},
		// the status-code map merges into the responses object
		{responses.Codes, "/paths/~1pets/get/responses"},
		{ok200, "/paths/~1pets/get/responses/200"},
		{notFound, "/paths/~1pets/get/responses/404"},
		{fallback, "/paths/~1pets/get/responses/default"},
	}
	for _, tt := range tests {
		got, ok := idx.Lookup(tt.node)
		require.True(t, ok, "expected %q to be indexed", tt.want)
		assert.Equal(t, tt.want, got)
	}
}

func TestReverseIndexExcludesVendorExtensions(t *testing.T) {
	payload := map[string]any{"nested": []any{"a"}}
	doc := &parser.OAS3Document{
		OpenAPI: "3.0.3",
		Info: &parser.Info{
			Title:   "T",
			Version: "1.0.0",
			Extra:   map[string]any{"x-payload": payload},
		},
	}

	idx := NewReverseIndex(doc)

	_, ok := idx.Lookup(payload)
	assert.False(t, ok, "extension payloads must not be indexed")

	got, ok := idx.Lookup(doc.Info)
	require.True(t, ok)
	assert.Equal(t, "/info", got)
}
