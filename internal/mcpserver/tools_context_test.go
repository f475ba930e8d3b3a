package mcpserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalOAS3 = `openapi: 3.0.3
info:
  title: Minimal
  version: 1.0.0
paths:
  /pets:
    get:
      operationId: listPets
      responses:
        "200":
          description: ok
`

func TestHandleParseContextSuccess(t *testing.T) {
	result, output, err := handleParseContext(context.Background(), nil, parseContextInput{
		Spec: specInput{Content: minimalOAS3},
	})
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "success", output.Outcome)
	assert.Equal(t, "openapi", output.Dialect)
	assert.Equal(t, "Minimal", output.Title)
	assert.Equal(t, "1.0.0", output.Version)
	assert.Equal(t, 1, output.PathCount)
	assert.Equal(t, 1, output.OperationCount)
	assert.Empty(t, output.Violations)
}

func TestHandleParseContextWithErrors(t *testing.T) {
	result, output, err := handleParseContext(context.Background(), nil, parseContextInput{
		Spec: specInput{Content: "openapi: 3.0.3\ninfo:\n  version: 1.0.0\npaths: {}\n"},
	})
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "parsed-with-errors", output.Outcome)
	require.Len(t, output.Violations, 1)
	assert.Equal(t, "attribute info.title is missing", output.Violations[0].Description)
	assert.Equal(t, "/info", output.Violations[0].Pointer)
}

func TestHandleParseContextNotApplicable(t *testing.T) {
	result, output, err := handleParseContext(context.Background(), nil, parseContextInput{
		Spec: specInput{Content: "not: an oas document\n"},
	})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, "not-applicable", output.Outcome)
}

func TestHandleParseContextBadInput(t *testing.T) {
	result, _, err := handleParseContext(context.Background(), nil, parseContextInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestHandleCheckSuppressed(t *testing.T) {
	spec := `openapi: 3.0.3
info:
  title: T
  version: 1.0.0
paths:
  /pets:
    x-lint-ignore: PathRule
    get:
      operationId: listPets
      responses:
        "200":
          description: ok
`

	result, output, err := handleCheckSuppressed(context.Background(), nil, checkSuppressedInput{
		Spec:    specInput{Content: spec},
		Pointer: "/paths/~1pets/get",
		RuleID:  "pathrule",
	})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.True(t, output.Suppressed)

	result, output, err = handleCheckSuppressed(context.Background(), nil, checkSuppressedInput{
		Spec:    specInput{Content: spec},
		Pointer: "/info",
		RuleID:  "PathRule",
	})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.False(t, output.Suppressed)
}

func TestHandleCheckSuppressedRequiresRuleID(t *testing.T) {
	result, _, err := handleCheckSuppressed(context.Background(), nil, checkSuppressedInput{
		Spec: specInput{Content: minimalOAS3},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
