package linter

import (
	"errors"
	"fmt"

	"github.com/erraggy/oaslint/converter"
	"github.com/erraggy/oaslint/parser"
)

// unparseableDescription is the single violation reported when a document
// cannot be processed at all and no finer-grained diagnostic is available.
const unparseableDescription = "unable to parse specification"

// Option configures the pipeline entry points.
type Option func(*pipeline)

// WithLogger sets the structured logger used for pipeline degradation
// warnings. The default discards all output.
func WithLogger(logger parser.Logger) Option {
	return func(p *pipeline) { p.logger = logger }
}

type pipeline struct {
	logger parser.Logger
}

func newPipeline(opts ...Option) *pipeline {
	p := &pipeline{logger: parser.NopLogger{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ReadContext builds a lint Context from a document in either dialect: the
// current dialect is tried first, and the legacy dialect only when the
// document did not declare itself as current-dialect at all. A document that
// declares neither dialect yields KindNotApplicable.
func ReadContext(content string, opts ...Option) Outcome[*Context] {
	outcome := ReadOpenAPIContext(content, opts...)
	if !outcome.IsNotApplicable() {
		return outcome
	}
	return ReadSwaggerContext(content, opts...)
}

// ReadOpenAPIContext builds a lint Context from a current-dialect (OAS 3.x)
// document. A document that does not declare `openapi` at the root yields
// KindNotApplicable; structural diagnostics yield KindParsedWithErrors with
// coordinates derived from the diagnostic text.
func ReadOpenAPIContext(content string, opts ...Option) Outcome[*Context] {
	p := newPipeline(opts...)

	pr, err := p.parseWithResolution([]byte(content))
	if err != nil {
		if errors.Is(err, parser.ErrVersionNotDetected) {
			return NotApplicable[*Context]()
		}
		return ParsedWithErrors[*Context](NewViolation(unparseableDescription, ""))
	}

	doc, ok := pr.OAS3Document()
	if !ok {
		// Parsed cleanly but as the other dialect.
		return NotApplicable[*Context]()
	}

	if len(pr.Errors) > 0 {
		return ParsedWithErrors[*Context](violationsFromErrors(pr.Errors)...)
	}

	return Success(newContext(content, doc, nil, pr.Data))
}

// ReadSwaggerContext builds a lint Context from a legacy-dialect (OAS 2.0)
// document. The document is converted to the current dialect before the
// Context is built, so evaluation always runs against one tree shape; the
// typed legacy tree stays reachable through Context.Swagger.
func ReadSwaggerContext(content string, opts ...Option) Outcome[*Context] {
	p := newPipeline(opts...)

	pr, err := p.parseWithResolution([]byte(content))
	if err != nil {
		if errors.Is(err, parser.ErrVersionNotDetected) {
			return NotApplicable[*Context]()
		}
		return ParsedWithErrors[*Context](NewViolation(unparseableDescription, ""))
	}

	swagger, ok := pr.OAS2Document()
	if !ok {
		return NotApplicable[*Context]()
	}

	if len(pr.Errors) > 0 {
		return ParsedWithErrors[*Context](violationsFromErrors(pr.Errors)...)
	}

	conv := converter.New()
	conv.Logger = p.logger
	result, err := conv.ConvertParsed(*pr)
	if err != nil {
		return ParsedWithErrors[*Context](NewViolation(unparseableDescription, ""))
	}
	if !result.Success || result.Document == nil {
		return ParsedWithErrors[*Context](violationsFromIssues(result.Issues)...)
	}

	// Conversion can leave legacy-addressed refs pointing at renamed
	// collections; a second resolution pass over the converted tree expands
	// what it can. Failure here degrades to the unresolved tree, it never
	// rejects the document.
	doc := result.Document
	if resolved, err := parser.ResolveDocument(doc, parser.DefaultMaxRefDepth); err != nil {
		p.logger.Warn("post-conversion ref resolution degraded", "error", err)
	} else {
		doc = resolved
	}

	return Success(newContext(content, doc, swagger, pr.Data))
}

// parseWithResolution parses with best-effort local $ref expansion. Known
// defects in reference expansion (pathological recursion, hostile shapes)
// surface as panics in the worst case; those degrade to a plain parse of the
// same bytes rather than failing the pipeline.
func (p *pipeline) parseWithResolution(data []byte) (pr *parser.ParseResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			p.logger.Warn("ref resolution panicked, reparsing without expansion", "panic", rec)
			pr, err = p.parsePlain(data)
		}
	}()

	psr := parser.New()
	psr.ResolveRefs = true
	psr.Logger = p.logger
	return psr.ParseBytes(data)
}

func (p *pipeline) parsePlain(data []byte) (*parser.ParseResult, error) {
	psr := parser.New()
	psr.Logger = p.logger
	return psr.ParseBytes(data)
}

func violationsFromErrors(errs []error) []Violation {
	out := make([]Violation, len(errs))
	for i, err := range errs {
		out[i] = violationFromError(err)
	}
	return out
}

// violationsFromIssues maps conversion issues to violations. The coordinate
// is derived from the issue message the same way as for parse diagnostics;
// conversion issue paths are dotted source-field paths, not JSON Pointers,
// so they are folded into the description rather than used as coordinates.
func violationsFromIssues(issues []converter.ConversionIssue) []Violation {
	var out []Violation
	for _, issue := range issues {
		if issue.Severity != converter.SeverityCritical {
			continue
		}
		desc := issue.Message
		if issue.Path != "" {
			desc = fmt.Sprintf("%s: %s", issue.Path, issue.Message)
		}
		out = append(out, NewViolation(desc, pointerFromMessage(issue.Message)))
	}
	if len(out) == 0 {
		out = append(out, NewViolation(unparseableDescription, ""))
	}
	return out
}
