package parser

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

// Parser handles OpenAPI specification parsing
type Parser struct {
	// ResolveRefs determines whether to resolve local $ref references
	ResolveRefs bool
	// ValidateStructure determines whether to perform basic structure validation
	ValidateStructure bool
	// MaxRefDepth is the maximum depth for resolving nested $ref pointers.
	// Default: 100
	MaxRefDepth int
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{
		ResolveRefs:       false,
		ValidateStructure: true,
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// ParseResult contains the parsed OpenAPI specification and metadata.
//
// Callers should treat ParseResult as read-only after parsing; the linter
// package builds identity-keyed indexes over Document that assume the tree no
// longer changes.
type ParseResult struct {
	// Version is the detected OAS version string (e.g., "2.0", "3.0.3")
	Version string
	// Data contains the raw parsed data as a map, potentially with resolved $refs
	Data map[string]any
	// Document contains the version-specific parsed document:
	// - *OAS2Document for OpenAPI 2.0
	// - *OAS3Document for OpenAPI 3.x
	Document any
	// Errors contains any parsing or validation errors encountered
	Errors []error
	// Warnings contains non-fatal issues such as ref resolution failures
	Warnings []string
	// OASVersion is the enumerated version of the OpenAPI specification
	OASVersion OASVersion
	// Stats contains statistical information about the document
	Stats DocumentStats
}

// OAS2Document returns the parsed document as an OAS2Document if the
// specification is version 2.0 (Swagger), and a boolean indicating whether the
// type assertion succeeded.
func (pr *ParseResult) OAS2Document() (*OAS2Document, bool) {
	doc, ok := pr.Document.(*OAS2Document)
	return doc, ok
}

// OAS3Document returns the parsed document as an OAS3Document if the
// specification is version 3.x, and a boolean indicating whether the type
// assertion succeeded.
func (pr *ParseResult) OAS3Document() (*OAS3Document, bool) {
	doc, ok := pr.Document.(*OAS3Document)
	return doc, ok
}

// IsOAS2 returns true if the parsed document is an OpenAPI 2.0 (Swagger) specification.
func (pr *ParseResult) IsOAS2() bool {
	return pr.OASVersion == OASVersion20
}

// IsOAS3 returns true if the parsed document is an OpenAPI 3.x specification.
func (pr *ParseResult) IsOAS3() bool {
	return pr.OASVersion.IsV3()
}

// Parse parses an OpenAPI specification file
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	data, err := os.ReadFile(specPath)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}
	return p.ParseBytes(data)
}

// ParseBytes parses an OpenAPI specification from a byte slice.
// YAML and JSON input are both accepted (JSON is a subset of YAML).
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	result := &ParseResult{
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	// First pass: parse to generic map to detect OAS version
	var rawData map[string]any
	if err := yaml.Unmarshal(data, &rawData); err != nil {
		return nil, fmt.Errorf("parser: failed to parse YAML/JSON: %w", err)
	}

	// Resolve references if enabled (before version-specific parsing)
	if p.ResolveRefs {
		resolver := NewRefResolver(p.MaxRefDepth)
		if err := resolver.ResolveAllRefs(rawData); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("ref resolution warning: %v", err))
			p.log().Warn("ref resolution degraded", "error", err)
		}
		if resolver.HasCircularRefs() {
			result.Warnings = append(result.Warnings, "Warning: Circular references detected. Non-circular references resolved normally. Circular references remain as $ref pointers.")
		}
	}

	result.Data = rawData

	// Detect version
	version, err := p.detectVersion(rawData)
	if err != nil {
		return nil, err
	}
	result.Version = version

	// Parse to version-specific structure
	doc, oasVersion, err := p.parseVersionSpecific(rawData, version)
	if err != nil {
		return nil, err
	}
	result.Document = doc
	result.OASVersion = oasVersion

	// Validate structure if enabled
	if p.ValidateStructure {
		result.Errors = append(result.Errors, p.validateStructure(result)...)
	}

	// Calculate document statistics
	result.Stats = GetDocumentStats(result.Document)

	return result, nil
}

// ErrVersionNotDetected is returned when a document declares neither a
// 'swagger' nor an 'openapi' root field. Callers use this to distinguish
// "wrong dialect, try another" from genuine parse failures.
var ErrVersionNotDetected = fmt.Errorf("parser: unable to detect OpenAPI version: document must contain either 'swagger: \"2.0\"' or 'openapi: \"3.x.y\"' at the root level")

// detectVersion determines the OAS version from the raw data
func (p *Parser) detectVersion(data map[string]any) (string, error) {
	// Check for OAS 2.0 (Swagger)
	if swagger, ok := data["swagger"].(string); ok {
		return swagger, nil
	}

	// Check for OAS 3.x
	if openapi, ok := data["openapi"].(string); ok {
		return openapi, nil
	}

	return "", ErrVersionNotDetected
}

// parseVersionSpecific decodes the raw map into a version-specific structure.
// Decoding goes through a YAML re-marshal of the (possibly ref-resolved) map so
// that resolved subtrees land in the typed document as well.
func (p *Parser) parseVersionSpecific(rawData map[string]any, version string) (any, OASVersion, error) {
	v, ok := ParseVersion(version)
	if !ok {
		return nil, Unknown, fmt.Errorf("parser: unsupported OpenAPI version: %s (only 2.0 and 3.x versions are supported)", version)
	}

	data, err := yaml.Marshal(rawData)
	if err != nil {
		return nil, Unknown, fmt.Errorf("parser: failed to re-marshal document data: %w", err)
	}

	switch {
	case v == OASVersion20:
		var doc OAS2Document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, Unknown, fmt.Errorf("parser: failed to parse OAS 2.0 document structure: %w", err)
		}
		doc.OASVersion = v
		return &doc, v, nil

	case v.IsV3():
		var doc OAS3Document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, Unknown, fmt.Errorf("parser: failed to parse OAS %s document structure: %w", version, err)
		}
		doc.OASVersion = v
		return &doc, v, nil

	default:
		return nil, Unknown, fmt.Errorf("parser: unsupported OpenAPI version: %s (only 2.0 and 3.x versions are supported)", version)
	}
}

// validateStructure performs basic structure validation.
// Missing required attributes are reported as "attribute <dotted.path> is missing"
// so callers can derive a document coordinate from the message text.
func (p *Parser) validateStructure(result *ParseResult) []error {
	errors := make([]error, 0)

	switch doc := result.Document.(type) {
	case *OAS2Document:
		errors = append(errors, validateInfo(doc.Info)...)
		if doc.Paths == nil {
			errors = append(errors, fmt.Errorf("attribute paths is missing"))
		}
	case *OAS3Document:
		errors = append(errors, validateInfo(doc.Info)...)
		if doc.Paths == nil && result.OASVersion < OASVersion310 {
			errors = append(errors, fmt.Errorf("attribute paths is missing"))
		}
	default:
		errors = append(errors, fmt.Errorf("parser: internal error: unexpected document type %T", result.Document))
	}

	return errors
}

func validateInfo(info *Info) []error {
	errors := make([]error, 0)
	if info == nil {
		errors = append(errors, fmt.Errorf("attribute info is missing"))
		return errors
	}
	if info.Title == "" {
		errors = append(errors, fmt.Errorf("attribute info.title is missing"))
	}
	if info.Version == "" {
		errors = append(errors, fmt.Errorf("attribute info.version is missing"))
	}
	return errors
}
