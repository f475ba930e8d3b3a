package converter

import (
	"fmt"

	"github.com/erraggy/oaslint/parser"
)

// Severity indicates the severity level of a conversion issue
type Severity int

const (
	// SeverityInfo indicates informational messages about conversion choices
	SeverityInfo Severity = iota
	// SeverityWarning indicates lossy conversions or best-effort transformations
	SeverityWarning
	// SeverityCritical indicates features that cannot be converted (data loss)
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ConversionIssue represents a single conversion issue or limitation
type ConversionIssue struct {
	// Path is the dotted path to the source field the issue concerns (e.g., "paths./pets.get")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity Severity
}

// String returns a formatted string representation of the issue.
func (i ConversionIssue) String() string {
	return fmt.Sprintf("[%s] %s: %s", i.Severity, i.Path, i.Message)
}

// ConversionResult contains the results of converting an OpenAPI specification
type ConversionResult struct {
	// Document contains the converted OAS 3.x document
	Document *parser.OAS3Document
	// SourceVersion is the detected source OAS version string
	SourceVersion string
	// TargetVersion is the target OAS version string
	TargetVersion string
	// Issues contains all conversion issues
	Issues []ConversionIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// Success is true if conversion completed without critical issues
	Success bool
}

// HasCriticalIssues returns true if there are any critical issues
func (r *ConversionResult) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *ConversionResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// Converter handles OpenAPI specification version conversion
type Converter struct {
	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool
	// TargetVersion is the OAS 3.x version string to emit. Default: "3.0.3"
	TargetVersion string
	// Logger is the structured logger for debug output; nil disables logging
	Logger parser.Logger
}

// New creates a new Converter instance with default settings
func New() *Converter {
	return &Converter{
		IncludeInfo:   true,
		TargetVersion: "3.0.3",
	}
}

func (c *Converter) log() parser.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return parser.NopLogger{}
}

// ConvertParsed converts an already-parsed OAS 2.0 specification to OAS 3.x.
//
// Panics escaping the underlying conversion are caught at this boundary and
// reported as a critical issue; a malformed input must never abort the caller's
// pipeline.
func (c *Converter) ConvertParsed(parseResult parser.ParseResult) (result *ConversionResult, err error) {
	result = &ConversionResult{
		SourceVersion: parseResult.Version,
		TargetVersion: c.TargetVersion,
	}
	if result.TargetVersion == "" {
		result.TargetVersion = "3.0.3"
	}

	defer func() {
		if rec := recover(); rec != nil {
			c.log().Error("conversion panicked", "panic", rec)
			c.addIssue(result, "", fmt.Sprintf("conversion failed: %v", rec), SeverityCritical)
			result.Document = nil
			c.finalize(result)
			err = nil
		}
	}()

	src, ok := parseResult.OAS2Document()
	if !ok {
		return nil, fmt.Errorf("converter: source document is not an OAS 2.0 document (got %T)", parseResult.Document)
	}

	// Fix-up pass mutates src in place; unrecoverable shapes surface as
	// critical issues and short-circuit the conversion.
	c.applyPreConversionFixups(src, result)
	if result.HasCriticalIssues() {
		c.finalize(result)
		return result, nil
	}

	targetOAS, ok := parser.ParseVersion(result.TargetVersion)
	if !ok || !targetOAS.IsV3() {
		return nil, fmt.Errorf("converter: unsupported target version: %s", result.TargetVersion)
	}

	if err := c.convertOAS2ToOAS3(src, targetOAS, result); err != nil {
		c.addIssue(result, "", err.Error(), SeverityCritical)
		result.Document = nil
	}

	c.finalize(result)
	return result, nil
}

// addIssue appends an issue to the result, honoring IncludeInfo.
func (c *Converter) addIssue(result *ConversionResult, path, message string, severity Severity) {
	if severity == SeverityInfo && !c.IncludeInfo {
		return
	}
	result.Issues = append(result.Issues, ConversionIssue{
		Path:     path,
		Message:  message,
		Severity: severity,
	})
}

// finalize computes issue counts and the success flag.
func (c *Converter) finalize(result *ConversionResult) {
	result.InfoCount, result.WarningCount, result.CriticalCount = 0, 0, 0
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityInfo:
			result.InfoCount++
		case SeverityWarning:
			result.WarningCount++
		case SeverityCritical:
			result.CriticalCount++
		}
	}
	result.Success = result.CriticalCount == 0 && result.Document != nil
}
