package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvBool(t *testing.T) {
	t.Setenv("OASLINT_TEST_BOOL", "true")
	assert.True(t, envBool("OASLINT_TEST_BOOL", false))

	t.Setenv("OASLINT_TEST_BOOL", "not-a-bool")
	assert.False(t, envBool("OASLINT_TEST_BOOL", false))

	assert.True(t, envBool("OASLINT_TEST_UNSET", true))
}

func TestEnvInt(t *testing.T) {
	t.Setenv("OASLINT_TEST_INT", "42")
	assert.Equal(t, 42, envInt("OASLINT_TEST_INT", 7))

	t.Setenv("OASLINT_TEST_INT", "-1")
	assert.Equal(t, 7, envInt("OASLINT_TEST_INT", 7))

	t.Setenv("OASLINT_TEST_INT", "zero")
	assert.Equal(t, 7, envInt("OASLINT_TEST_INT", 7))

	assert.Equal(t, 7, envInt("OASLINT_TEST_UNSET", 7))
}

func TestLoadConfigDefaults(t *testing.T) {
	c := loadConfig()
	assert.Equal(t, 10*1024*1024, c.MaxSpecBytes)
	assert.Equal(t, 200, c.MaxViolations)
	assert.False(t, c.Verbose)
}
