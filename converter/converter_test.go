package converter

import (
	"testing"

	"github.com/erraggy/oaslint/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parsePetstore2(t *testing.T) *parser.ParseResult {
	t.Helper()
	p := parser.New()
	result, err := p.Parse("../testdata/petstore-2.0.yaml")
	require.NoError(t, err)
	require.True(t, result.IsOAS2())
	return result
}

func TestConvertPetstore(t *testing.T) {
	result, err := New().ConvertParsed(*parsePetstore2(t))
	require.NoError(t, err)
	require.True(t, result.Success)
	require.NotNil(t, result.Document)

	doc := result.Document
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Equal(t, parser.OASVersion303, doc.OASVersion)
	assert.Equal(t, "2.0", result.SourceVersion)

	// host/basePath/schemes became a server
	require.Len(t, doc.Servers, 1)
	assert.Equal(t, "https://petstore.example.com/v1", doc.Servers[0].URL)

	// definitions moved under components/schemas with rewritten refs
	require.NotNil(t, doc.Components)
	require.Len(t, doc.Components.Schemas, 3)
	pets := doc.Components.Schemas["Pets"]
	require.NotNil(t, pets)
	require.NotNil(t, pets.Items)
	assert.Equal(t, "#/components/schemas/Pet", pets.Items.Ref)

	// response schema moved under content keyed by produces
	get := doc.Paths["/pets"].Get
	require.NotNil(t, get)
	resp := get.Responses.Codes["200"]
	require.NotNil(t, resp)
	media := resp.Content["application/json"]
	require.NotNil(t, media)
	assert.Equal(t, "#/components/schemas/Pets", media.Schema.Ref)

	// body parameter became a requestBody and left the parameter list
	post := doc.Paths["/pets"].Post
	require.NotNil(t, post)
	require.NotNil(t, post.RequestBody)
	assert.True(t, post.RequestBody.Required)
	assert.Empty(t, post.Parameters)
	body := post.RequestBody.Content["application/json"]
	require.NotNil(t, body)
	assert.Equal(t, "#/components/schemas/Pet", body.Schema.Ref)

	// inline parameter types moved under schema
	petGet := doc.Paths["/pets/{petId}"].Get
	require.NotNil(t, petGet)
	require.Len(t, petGet.Parameters, 1)
	param := petGet.Parameters[0]
	assert.Equal(t, "petId", param.Name)
	assert.Empty(t, param.Type)
	require.NotNil(t, param.Schema)
	assert.Equal(t, "string", param.Schema.Type)

	// oauth2 flow mapped into flows.implicit
	scheme := doc.Components.SecuritySchemes["petstore_auth"]
	require.NotNil(t, scheme)
	require.NotNil(t, scheme.Flows)
	require.NotNil(t, scheme.Flows.Implicit)
	assert.Len(t, scheme.Flows.Implicit.Scopes, 2)
}

func TestConvertRejectsOAS3Source(t *testing.T) {
	pr := parser.ParseResult{
		Version:  "3.0.3",
		Document: &parser.OAS3Document{OpenAPI: "3.0.3"},
	}
	_, err := New().ConvertParsed(pr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "converter:")
}

func TestConvertBasicAuthScheme(t *testing.T) {
	pr := oas2Result(&parser.OAS2Document{
		Swagger: "2.0",
		Info:    &parser.Info{Title: "T", Version: "1.0.0"},
		Paths:   parser.Paths{},
		SecurityDefinitions: map[string]*parser.SecurityScheme{
			"basicAuth": {Type: "basic"},
		},
	})

	result, err := New().ConvertParsed(pr)
	require.NoError(t, err)
	require.True(t, result.Success)

	scheme := result.Document.Components.SecuritySchemes["basicAuth"]
	require.NotNil(t, scheme)
	assert.Equal(t, "http", scheme.Type)
	assert.Equal(t, "basic", scheme.Scheme)
}

func TestConvertFormDataParameterWarns(t *testing.T) {
	pr := oas2Result(&parser.OAS2Document{
		Swagger: "2.0",
		Info:    &parser.Info{Title: "T", Version: "1.0.0"},
		Paths: parser.Paths{
			"/upload": {
				Post: &parser.Operation{
					Parameters: []*parser.Parameter{
						{Name: "file", In: parser.ParamInFormData, Type: "string"},
					},
					Responses: &parser.Responses{Codes: map[string]*parser.Response{
						"204": {Description: "ok"},
					}},
				},
			},
		},
	})

	result, err := New().ConvertParsed(pr)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.True(t, result.HasWarnings())

	param := result.Document.Paths["/upload"].Post.Parameters[0]
	assert.Equal(t, parser.ParamInQuery, param.In)
	require.NotNil(t, param.Schema)
	assert.Equal(t, "string", param.Schema.Type)
}

func TestConvertNoHostUsesDefaultServer(t *testing.T) {
	pr := oas2Result(&parser.OAS2Document{
		Swagger: "2.0",
		Info:    &parser.Info{Title: "T", Version: "1.0.0"},
		Paths:   parser.Paths{},
	})

	result, err := New().ConvertParsed(pr)
	require.NoError(t, err)
	require.Len(t, result.Document.Servers, 1)
	assert.Equal(t, "/", result.Document.Servers[0].URL)
	assert.Positive(t, result.InfoCount)
}

func TestConvertIssueCounts(t *testing.T) {
	c := New()
	c.IncludeInfo = false

	pr := oas2Result(&parser.OAS2Document{
		Swagger: "2.0",
		Info:    &parser.Info{Title: "T", Version: "1.0.0"},
		Paths:   parser.Paths{},
	})

	result, err := c.ConvertParsed(pr)
	require.NoError(t, err)
	assert.Zero(t, result.InfoCount)
	assert.True(t, result.Success)
}

func TestRewriteRef(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#/definitions/Pet", "#/components/schemas/Pet"},
		{"#/parameters/limit", "#/components/parameters/limit"},
		{"#/responses/NotFound", "#/components/responses/NotFound"},
		{"#/securityDefinitions/oauth", "#/components/securitySchemes/oauth"},
		{"#/components/schemas/Pet", "#/components/schemas/Pet"},
		{"other.yaml#/definitions/Pet", "other.yaml#/definitions/Pet"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rewriteRef(tt.in), "rewriteRef(%q)", tt.in)
	}
}

func oas2Result(doc *parser.OAS2Document) parser.ParseResult {
	doc.OASVersion = parser.OASVersion20
	return parser.ParseResult{
		Version:    "2.0",
		Document:   doc,
		OASVersion: parser.OASVersion20,
	}
}
