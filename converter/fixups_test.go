package converter

import (
	"testing"

	"github.com/erraggy/oaslint/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixupSynthesizesMissingInfo(t *testing.T) {
	pr := oas2Result(&parser.OAS2Document{
		Swagger: "2.0",
		Paths:   parser.Paths{},
	})

	result, err := New().ConvertParsed(pr)
	require.NoError(t, err)
	require.True(t, result.Success)
	require.NotNil(t, result.Document.Info)

	var sawInfoIssue bool
	for _, issue := range result.Issues {
		if issue.Path == "info" {
			sawInfoIssue = true
		}
	}
	assert.True(t, sawInfoIssue, "expected an issue for the synthesized info object")
}

func TestFixupSynthesizesMissingPaths(t *testing.T) {
	pr := oas2Result(&parser.OAS2Document{
		Swagger: "2.0",
		Info:    &parser.Info{Title: "T", Version: "1.0.0"},
	})

	result, err := New().ConvertParsed(pr)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.NotNil(t, result.Document.Paths)
	assert.Empty(t, result.Document.Paths)
}

func TestFixupOAuth2Defaults(t *testing.T) {
	pr := oas2Result(&parser.OAS2Document{
		Swagger: "2.0",
		Info:    &parser.Info{Title: "T", Version: "1.0.0"},
		Paths:   parser.Paths{},
		SecurityDefinitions: map[string]*parser.SecurityScheme{
			"oauth": {Type: "oauth2", AuthorizationURL: "https://example.com/auth"},
		},
	})

	result, err := New().ConvertParsed(pr)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, 2, result.WarningCount)

	scheme := result.Document.Components.SecuritySchemes["oauth"]
	require.NotNil(t, scheme)
	require.NotNil(t, scheme.Flows)

	// empty flow defaults to implicit, missing scopes to an empty map
	require.NotNil(t, scheme.Flows.Implicit)
	assert.NotNil(t, scheme.Flows.Implicit.Scopes)
	assert.Empty(t, scheme.Flows.Implicit.Scopes)
}

func TestFixupRejectsWrongSwaggerVersion(t *testing.T) {
	pr := oas2Result(&parser.OAS2Document{
		Swagger: "1.2",
		Info:    &parser.Info{Title: "T", Version: "1.0.0"},
		Paths:   parser.Paths{},
	})

	result, err := New().ConvertParsed(pr)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.True(t, result.HasCriticalIssues())
	assert.Nil(t, result.Document)
}
