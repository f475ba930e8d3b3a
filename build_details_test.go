package oaslint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	assert.Equal(t, "dev", Version())
}

func TestUserAgent(t *testing.T) {
	assert.Equal(t, "oaslint/dev", UserAgent())
}
