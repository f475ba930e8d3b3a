// Package parser parses OpenAPI Specification documents into a typed tree.
//
// The parser accepts YAML or JSON input, detects the OAS dialect from the root
// discriminator field ('swagger' for OAS 2.0, 'openapi' for OAS 3.x), decodes
// the document into the version-specific typed structure, and optionally
// resolves local $ref references in place.
//
// Reference resolution is best-effort: circular references are left as $ref
// pointers and reported as warnings, never as hard failures. An unresolved but
// structurally valid tree is still useful to downstream consumers.
//
// Structural validation produces diagnostics of the shape
// "attribute <dotted.path> is missing" so that callers can derive a document
// coordinate from the message text.
package parser
