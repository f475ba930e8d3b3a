package linter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func rawDoc(t *testing.T, spec string) map[string]any {
	t.Helper()
	var raw map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(spec), &raw))
	return raw
}

func TestSuppressionAtRoot(t *testing.T) {
	lookup := newSuppressionLookup(rawDoc(t, `
openapi: 3.0.3
x-lint-ignore: "104"
`))

	assert.True(t, lookup.IsSuppressed("", "104"))
	assert.True(t, lookup.IsSuppressed("/info/title", "104"), "root directive covers every descendant")
	assert.False(t, lookup.IsSuppressed("", "105"))
}

func TestSuppressionList(t *testing.T) {
	lookup := newSuppressionLookup(rawDoc(t, `
openapi: 3.0.3
x-lint-ignore:
  - NamingRule
  - "104"
`))

	assert.True(t, lookup.IsSuppressed("", "NamingRule"))
	assert.True(t, lookup.IsSuppressed("", "104"))
	assert.False(t, lookup.IsSuppressed("", "OtherRule"))
}

func TestSuppressionCaseInsensitive(t *testing.T) {
	lookup := newSuppressionLookup(rawDoc(t, `
openapi: 3.0.3
x-lint-ignore: NamingRule
`))

	assert.True(t, lookup.IsSuppressed("", "namingrule"))
	assert.True(t, lookup.IsSuppressed("", "NAMINGRULE"))
}

func TestSuppressionAlongPointerPath(t *testing.T) {
	lookup := newSuppressionLookup(rawDoc(t, `
openapi: 3.0.3
paths:
  /pets:
    x-lint-ignore: PathRule
    get:
      operationId: listPets
  /owners:
    get:
      operationId: listOwners
`))

	assert.True(t, lookup.IsSuppressed("/paths/~1pets", "PathRule"))
	assert.True(t, lookup.IsSuppressed("/paths/~1pets/get/operationId", "PathRule"))
	assert.False(t, lookup.IsSuppressed("/paths/~1owners/get", "PathRule"))
	assert.False(t, lookup.IsSuppressed("/paths", "PathRule"), "directives do not apply to ancestors")
}

func TestSuppressionInArrays(t *testing.T) {
	lookup := newSuppressionLookup(rawDoc(t, `
openapi: 3.0.3
paths:
  /pets:
    get:
      parameters:
        - name: limit
          in: query
          x-lint-ignore: ParamRule
`))

	assert.True(t, lookup.IsSuppressed("/paths/~1pets/get/parameters/0", "ParamRule"))
	assert.True(t, lookup.IsSuppressed("/paths/~1pets/get/parameters/0/name", "ParamRule"))
	assert.False(t, lookup.IsSuppressed("/paths/~1pets/get/parameters/1", "ParamRule"))
}

func TestSuppressionMissingPath(t *testing.T) {
	lookup := newSuppressionLookup(rawDoc(t, `
openapi: 3.0.3
`))

	assert.False(t, lookup.IsSuppressed("/does/not/exist", "104"))
	assert.False(t, lookup.IsSuppressed("", ""))
}

func TestSuppressionNilRoot(t *testing.T) {
	lookup := newSuppressionLookup(nil)
	assert.False(t, lookup.IsSuppressed("", "104"))
}
