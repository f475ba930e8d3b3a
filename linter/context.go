package linter

import (
	"github.com/erraggy/oaslint/parser"
)

// Context is the facade handed to rule evaluators: one normalized
// current-dialect document tree plus everything needed to pin findings to
// exact coordinates. It is built once per submitted document and must be
// treated as read-only after construction.
type Context struct {
	content      string
	openAPI      *parser.OAS3Document
	swagger      *parser.OAS2Document
	index        *ReverseIndex
	swaggerIndex *ReverseIndex
	rec          *pathRecorder
	api          *DocNav
	suppressions suppressionLookup
}

func newContext(content string, openAPI *parser.OAS3Document, swagger *parser.OAS2Document, raw map[string]any) *Context {
	ctx := &Context{
		content:      content,
		openAPI:      openAPI,
		swagger:      swagger,
		index:        NewReverseIndex(openAPI),
		rec:          &pathRecorder{},
		suppressions: newSuppressionLookup(raw),
	}
	if swagger != nil {
		ctx.swaggerIndex = NewReverseIndex(swagger)
	}
	ctx.api = newDocNav(openAPI, ctx.rec)
	return ctx
}

// Content returns the exact bytes the author submitted, untouched by parsing,
// conversion, or reference expansion.
func (c *Context) Content() string {
	return c.content
}

// API returns the navigation root of the current-dialect tree. All rule
// evaluation runs against this tree regardless of the submitted dialect.
func (c *Context) API() *DocNav {
	return c.api
}

// Swagger returns the typed legacy-dialect tree when the submitted document
// was legacy, and nil otherwise.
func (c *Context) Swagger() *parser.OAS2Document {
	return c.swagger
}

// IsOpenAPI3 reports whether the submitted document was already in the
// current dialect. A converted legacy document evaluates against a
// current-dialect tree but still reports false here.
func (c *Context) IsOpenAPI3() bool {
	return c.swagger == nil
}

// PointerForNode resolves a node to its JSON Pointer. Resolution order:
// the current-dialect index first; then the legacy-dialect index with the
// segment renaming applied, for nodes that survived conversion by reference;
// finally the facade's last recorded pointer as the best-effort fallback.
func (c *Context) PointerForNode(node any) string {
	if pointer, ok := c.index.Lookup(node); ok {
		return pointer
	}
	if c.swaggerIndex != nil {
		if pointer, ok := c.swaggerIndex.Lookup(node); ok {
			translated, _ := PointerFromLegacy(pointer)
			return translated
		}
	}
	return c.rec.LastPointer()
}

// Violation creates a finding at the facade's last recorded pointer, i.e.
// wherever the evaluator's navigation last pointed.
func (c *Context) Violation(description string) Violation {
	return Violation{Description: description, Pointer: c.rec.LastPointer()}
}

// ViolationAtNode creates a finding pinned to a specific node via
// PointerForNode.
func (c *Context) ViolationAtNode(node any, description string) Violation {
	return Violation{Description: description, Pointer: c.PointerForNode(node)}
}

// ViolationAtPointer creates a finding at an explicit pointer.
func (c *Context) ViolationAtPointer(pointer, description string) Violation {
	return Violation{Description: description, Pointer: pointer}
}

// IsSuppressed reports whether the submitted document suppresses the given
// rule at the given pointer or any of its ancestors. Suppression directives
// are read from the document as written: the pointer is interpreted in the
// submitted dialect's coordinate space.
func (c *Context) IsSuppressed(pointer, ruleID string) bool {
	return c.suppressions.IsSuppressed(pointer, ruleID)
}

// Paths evaluates visit against every path item accepted by filter and
// returns the combined findings. A nil filter accepts every path.
func (c *Context) Paths(filter func(path string, item *PathItemNav) bool, visit func(path string, item *PathItemNav) []Violation) []Violation {
	var out []Violation
	paths := c.api.Paths()
	for _, name := range paths.PathNames() {
		item := paths.Path(name)
		if filter != nil && !filter(name, item) {
			continue
		}
		out = append(out, visit(name, item)...)
	}
	return out
}

// Operations evaluates visit against every operation of every path item
// accepted by filter and returns the combined findings. A nil filter accepts
// every operation.
func (c *Context) Operations(filter func(method string, op *OperationNav) bool, visit func(method string, op *OperationNav) []Violation) []Violation {
	var out []Violation
	paths := c.api.Paths()
	for _, name := range paths.PathNames() {
		ops := paths.Path(name).Operations()
		for _, method := range sortedKeys(ops) {
			op := ops[method]
			if filter != nil && !filter(method, op) {
				continue
			}
			out = append(out, visit(method, op)...)
		}
	}
	return out
}
