package linter

import "strings"

// Violation is a single finding pinned to a document coordinate.
type Violation struct {
	// Description is a human-readable description of the finding
	Description string
	// Pointer is the JSON Pointer locating the finding; empty means the
	// document root
	Pointer string
}

// NewViolation creates a Violation at an explicit pointer.
func NewViolation(description, pointer string) Violation {
	return Violation{Description: description, Pointer: pointer}
}

const (
	missingAttrPrefix = "attribute "
	missingAttrSuffix = " is missing"
)

// pointerFromMessage derives a document coordinate from a diagnostic message.
//
// A diagnostic of the shape "attribute <dotted.path> is missing" maps to the
// pointer of the attribute's parent: the last path segment is dropped and the
// remainder rendered as a JSON Pointer ("attribute info.title is missing"
// yields "/info"). Any other message shape maps to the document root.
//
// This is a deliberately lossy heuristic over human-readable text from the
// parsing layer; an unmatched wording falls back to the root pointer, never
// to an error.
func pointerFromMessage(msg string) string {
	if !strings.HasPrefix(msg, missingAttrPrefix) || !strings.HasSuffix(msg, missingAttrSuffix) {
		return ""
	}
	dotted := strings.TrimSuffix(strings.TrimPrefix(msg, missingAttrPrefix), missingAttrSuffix)
	if dotted == "" || strings.ContainsAny(dotted, " \t") {
		return ""
	}
	segments := strings.Split(dotted, ".")
	segments = segments[:len(segments)-1]
	if len(segments) == 0 {
		return ""
	}
	return JoinPointer(segments...)
}

// violationFromError converts a pipeline diagnostic into a Violation with a
// best-effort coordinate.
func violationFromError(err error) Violation {
	msg := err.Error()
	return Violation{Description: msg, Pointer: pointerFromMessage(msg)}
}
