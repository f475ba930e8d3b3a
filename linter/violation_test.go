package linter

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointerFromMessage(t *testing.T) {
	tests := []struct {
		msg  string
		want string
	}{
		{"attribute info.title is missing", "/info"},
		{"attribute info.contact.email is missing", "/info/contact"},
		{"attribute paths is missing", ""},
		{"attribute info is missing", ""},
		{"something else entirely", ""},
		{"attribute  is missing", ""},
		{"attribute two words is missing", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pointerFromMessage(tt.msg), "pointerFromMessage(%q)", tt.msg)
	}
}

func TestViolationFromError(t *testing.T) {
	v := violationFromError(fmt.Errorf("attribute info.title is missing"))
	assert.Equal(t, "attribute info.title is missing", v.Description)
	assert.Equal(t, "/info", v.Pointer)

	v = violationFromError(fmt.Errorf("parser: something broke"))
	assert.Equal(t, "", v.Pointer)
}

func TestNewViolation(t *testing.T) {
	v := NewViolation("desc", "/info")
	assert.Equal(t, "desc", v.Description)
	assert.Equal(t, "/info", v.Pointer)
}
