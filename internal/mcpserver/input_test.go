package mcpserver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecInputContent(t *testing.T) {
	content, err := specInput{Content: "openapi: 3.0.3\n"}.load()
	require.NoError(t, err)
	assert.Equal(t, "openapi: 3.0.3\n", content)
}

func TestSpecInputPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte("openapi: 3.0.3\n"), 0o600))

	content, err := specInput{Path: path}.load()
	require.NoError(t, err)
	assert.Equal(t, "openapi: 3.0.3\n", content)
}

func TestSpecInputValidation(t *testing.T) {
	_, err := specInput{}.load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "either path or content is required")

	_, err = specInput{Path: "a.yaml", Content: "x"}.load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not both")

	_, err = specInput{Path: filepath.Join(t.TempDir(), "missing.yaml")}.load()
	require.Error(t, err)
}
