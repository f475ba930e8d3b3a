package linter

import (
	"sort"
	"strconv"

	"github.com/erraggy/oaslint/parser"
)

// pathRecorder tracks the JSON Pointer of the most recently completed
// accessor chain made through the facade. It is not reset between rules
// within one evaluation run: "last recorded pointer" is the implicit default
// coordinate for violations constructed without an explicit target.
type pathRecorder struct {
	last string
}

// LastPointer returns the pointer of the most recent recorded access.
func (r *pathRecorder) LastPointer() string {
	return r.last
}

func (r *pathRecorder) record(pointer string) {
	r.last = pointer
}

// nav is the shared navigation state embedded in every facade wrapper: the
// recorder and the pointer at which the wrapped node occurs.
type nav struct {
	rec     *pathRecorder
	pointer string
}

// step records an accessor call and returns the navigation state of the
// accessed child.
func (n nav) step(token string) nav {
	child := nav{rec: n.rec, pointer: n.pointer + "/" + EscapePointerToken(token)}
	n.rec.record(child.pointer)
	return child
}

// stepIndex is step for array index segments.
func (n nav) stepIndex(i int) nav {
	child := nav{rec: n.rec, pointer: n.pointer + "/" + strconv.Itoa(i)}
	n.rec.record(child.pointer)
	return child
}

// Pointer returns the JSON Pointer at which the wrapped node occurs. Reading
// it is not an accessor call and is not recorded.
func (n nav) Pointer() string {
	return n.pointer
}

// DocNav wraps the root of the current-dialect tree. Every accessor call on
// it or on any descendant wrapper advances the recorder, so that the facade
// can answer "wherever the evaluator's navigation last pointed".
//
// This is best-effort positional context: an evaluator that stores a wrapper
// and returns to it later leaves the recorded pointer stale. Only the common
// "access, then immediately report" pattern is exact.
type DocNav struct {
	nav
	doc *parser.OAS3Document
}

func newDocNav(doc *parser.OAS3Document, rec *pathRecorder) *DocNav {
	return &DocNav{nav: nav{rec: rec}, doc: doc}
}

// Node returns the underlying document node without recording an access.
func (n *DocNav) Node() *parser.OAS3Document { return n.doc }

// OpenAPI returns the root version discriminator field.
func (n *DocNav) OpenAPI() string {
	n.step("openapi")
	if n.doc == nil {
		return ""
	}
	return n.doc.OpenAPI
}

// Info returns the wrapped info object.
func (n *DocNav) Info() *InfoNav {
	child := &InfoNav{nav: n.step("info")}
	if n.doc != nil {
		child.info = n.doc.Info
	}
	return child
}

// Servers returns wrapped server objects.
func (n *DocNav) Servers() []*ServerNav {
	child := n.step("servers")
	if n.doc == nil {
		return nil
	}
	out := make([]*ServerNav, len(n.doc.Servers))
	for i, server := range n.doc.Servers {
		out[i] = &ServerNav{nav: nav{rec: child.rec, pointer: child.pointer + "/" + strconv.Itoa(i)}, server: server}
	}
	return out
}

// Paths returns the wrapped paths collection.
func (n *DocNav) Paths() *PathsNav {
	child := &PathsNav{nav: n.step("paths")}
	if n.doc != nil {
		child.paths = n.doc.Paths
	}
	return child
}

// Components returns the wrapped components object.
func (n *DocNav) Components() *ComponentsNav {
	child := &ComponentsNav{nav: n.step("components")}
	if n.doc != nil {
		child.components = n.doc.Components
	}
	return child
}

// Security returns the global security requirements.
func (n *DocNav) Security() []parser.SecurityRequirement {
	n.step("security")
	if n.doc == nil {
		return nil
	}
	return n.doc.Security
}

// Tags returns the document tags.
func (n *DocNav) Tags() []*parser.Tag {
	n.step("tags")
	if n.doc == nil {
		return nil
	}
	return n.doc.Tags
}

// Extensions returns the document's vendor extension map. Extension access is
// not recorded: extension payloads are excluded from path discovery, matching
// the reverse index.
func (n *DocNav) Extensions() map[string]any {
	if n.doc == nil {
		return nil
	}
	return n.doc.Extra
}

// InfoNav wraps an info object.
type InfoNav struct {
	nav
	info *parser.Info
}

// Node returns the underlying node without recording an access.
func (n *InfoNav) Node() *parser.Info { return n.info }

// Title returns the API title.
func (n *InfoNav) Title() string {
	n.step("title")
	if n.info == nil {
		return ""
	}
	return n.info.Title
}

// Version returns the API version string.
func (n *InfoNav) Version() string {
	n.step("version")
	if n.info == nil {
		return ""
	}
	return n.info.Version
}

// Description returns the API description.
func (n *InfoNav) Description() string {
	n.step("description")
	if n.info == nil {
		return ""
	}
	return n.info.Description
}

// Contact returns the contact object.
func (n *InfoNav) Contact() *parser.Contact {
	n.step("contact")
	if n.info == nil {
		return nil
	}
	return n.info.Contact
}

// Extensions returns the info vendor extension map without recording.
func (n *InfoNav) Extensions() map[string]any {
	if n.info == nil {
		return nil
	}
	return n.info.Extra
}

// ServerNav wraps a server object.
type ServerNav struct {
	nav
	server *parser.Server
}

// Node returns the underlying node without recording an access.
func (n *ServerNav) Node() *parser.Server { return n.server }

// URL returns the server URL.
func (n *ServerNav) URL() string {
	n.step("url")
	if n.server == nil {
		return ""
	}
	return n.server.URL
}

// Description returns the server description.
func (n *ServerNav) Description() string {
	n.step("description")
	if n.server == nil {
		return ""
	}
	return n.server.Description
}

// PathsNav wraps the paths collection.
type PathsNav struct {
	nav
	paths parser.Paths
}

// Node returns the underlying node without recording an access.
func (n *PathsNav) Node() parser.Paths { return n.paths }

// Len returns the number of path patterns.
func (n *PathsNav) Len() int { return len(n.paths) }

// PathNames returns the path patterns in sorted order. Enumerating names is
// not an accessor call on a child and is not recorded.
func (n *PathsNav) PathNames() []string {
	names := make([]string, 0, len(n.paths))
	for name := range n.paths {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Path returns the wrapped path item for a path pattern.
func (n *PathsNav) Path(name string) *PathItemNav {
	return &PathItemNav{nav: n.step(name), item: n.paths[name]}
}

// PathItemNav wraps a path item.
type PathItemNav struct {
	nav
	item *parser.PathItem
}

// Node returns the underlying node without recording an access.
func (n *PathItemNav) Node() *parser.PathItem { return n.item }

func (n *PathItemNav) operation(method string, op *parser.Operation) *OperationNav {
	return &OperationNav{nav: n.step(method), op: op}
}

// Get returns the wrapped get operation (nil-safe: the wrapper is returned
// even when the operation is absent).
func (n *PathItemNav) Get() *OperationNav {
	if n.item == nil {
		return n.operation(parser.MethodGet, nil)
	}
	return n.operation(parser.MethodGet, n.item.Get)
}

// Put returns the wrapped put operation.
func (n *PathItemNav) Put() *OperationNav {
	if n.item == nil {
		return n.operation(parser.MethodPut, nil)
	}
	return n.operation(parser.MethodPut, n.item.Put)
}

// Post returns the wrapped post operation.
func (n *PathItemNav) Post() *OperationNav {
	if n.item == nil {
		return n.operation(parser.MethodPost, nil)
	}
	return n.operation(parser.MethodPost, n.item.Post)
}

// Delete returns the wrapped delete operation.
func (n *PathItemNav) Delete() *OperationNav {
	if n.item == nil {
		return n.operation(parser.MethodDelete, nil)
	}
	return n.operation(parser.MethodDelete, n.item.Delete)
}

// Operations returns wrapped operations keyed by lowercase HTTP method, with
// absent operations omitted.
func (n *PathItemNav) Operations() map[string]*OperationNav {
	if n.item == nil {
		return nil
	}
	ops := parser.GetOperations(n.item, parser.OASVersion303)
	out := make(map[string]*OperationNav, len(ops))
	for _, method := range sortedKeys(ops) {
		out[method] = n.operation(method, ops[method])
	}
	return out
}

// Parameters returns the path-level parameters, wrapped.
func (n *PathItemNav) Parameters() []*ParameterNav {
	child := n.step("parameters")
	if n.item == nil {
		return nil
	}
	out := make([]*ParameterNav, len(n.item.Parameters))
	for i, param := range n.item.Parameters {
		out[i] = &ParameterNav{nav: nav{rec: child.rec, pointer: child.pointer + "/" + strconv.Itoa(i)}, param: param}
	}
	return out
}

// Extensions returns the path item's vendor extension map without recording.
func (n *PathItemNav) Extensions() map[string]any {
	if n.item == nil {
		return nil
	}
	return n.item.Extra
}

// OperationNav wraps an operation.
type OperationNav struct {
	nav
	op *parser.Operation
}

// Node returns the underlying node without recording an access.
func (n *OperationNav) Node() *parser.Operation { return n.op }

// Exists returns true when the wrapped operation is present, without
// recording an access.
func (n *OperationNav) Exists() bool { return n.op != nil }

// OperationID returns the operationId.
func (n *OperationNav) OperationID() string {
	n.step("operationId")
	if n.op == nil {
		return ""
	}
	return n.op.OperationID
}

// Summary returns the operation summary.
func (n *OperationNav) Summary() string {
	n.step("summary")
	if n.op == nil {
		return ""
	}
	return n.op.Summary
}

// Description returns the operation description.
func (n *OperationNav) Description() string {
	n.step("description")
	if n.op == nil {
		return ""
	}
	return n.op.Description
}

// Tags returns the operation tags.
func (n *OperationNav) Tags() []string {
	n.step("tags")
	if n.op == nil {
		return nil
	}
	return n.op.Tags
}

// Deprecated reports whether the operation is deprecated.
func (n *OperationNav) Deprecated() bool {
	n.step("deprecated")
	if n.op == nil {
		return false
	}
	return n.op.Deprecated
}

// Security returns the operation security requirements.
func (n *OperationNav) Security() []parser.SecurityRequirement {
	n.step("security")
	if n.op == nil {
		return nil
	}
	return n.op.Security
}

// Parameters returns the operation parameters, wrapped.
func (n *OperationNav) Parameters() []*ParameterNav {
	child := n.step("parameters")
	if n.op == nil {
		return nil
	}
	out := make([]*ParameterNav, len(n.op.Parameters))
	for i, param := range n.op.Parameters {
		out[i] = &ParameterNav{nav: nav{rec: child.rec, pointer: child.pointer + "/" + strconv.Itoa(i)}, param: param}
	}
	return out
}

// RequestBody returns the wrapped request body.
func (n *OperationNav) RequestBody() *RequestBodyNav {
	child := &RequestBodyNav{nav: n.step("requestBody")}
	if n.op != nil {
		child.body = n.op.RequestBody
	}
	return child
}

// Responses returns the wrapped responses container.
func (n *OperationNav) Responses() *ResponsesNav {
	child := &ResponsesNav{nav: n.step("responses")}
	if n.op != nil {
		child.responses = n.op.Responses
	}
	return child
}

// Extensions returns the operation's vendor extension map without recording.
func (n *OperationNav) Extensions() map[string]any {
	if n.op == nil {
		return nil
	}
	return n.op.Extra
}

// ParameterNav wraps a parameter.
type ParameterNav struct {
	nav
	param *parser.Parameter
}

// Node returns the underlying node without recording an access.
func (n *ParameterNav) Node() *parser.Parameter { return n.param }

// Name returns the parameter name.
func (n *ParameterNav) Name() string {
	n.step("name")
	if n.param == nil {
		return ""
	}
	return n.param.Name
}

// In returns the parameter location.
func (n *ParameterNav) In() string {
	n.step("in")
	if n.param == nil {
		return ""
	}
	return n.param.In
}

// Required reports whether the parameter is required.
func (n *ParameterNav) Required() bool {
	n.step("required")
	if n.param == nil {
		return false
	}
	return n.param.Required
}

// Description returns the parameter description.
func (n *ParameterNav) Description() string {
	n.step("description")
	if n.param == nil {
		return ""
	}
	return n.param.Description
}

// Schema returns the wrapped parameter schema.
func (n *ParameterNav) Schema() *SchemaNav {
	child := &SchemaNav{nav: n.step("schema")}
	if n.param != nil {
		child.schema = n.param.Schema
	}
	return child
}

// Extensions returns the parameter's vendor extension map without recording.
func (n *ParameterNav) Extensions() map[string]any {
	if n.param == nil {
		return nil
	}
	return n.param.Extra
}

// RequestBodyNav wraps a request body.
type RequestBodyNav struct {
	nav
	body *parser.RequestBody
}

// Node returns the underlying node without recording an access.
func (n *RequestBodyNav) Node() *parser.RequestBody { return n.body }

// Exists returns true when the wrapped request body is present, without
// recording an access.
func (n *RequestBodyNav) Exists() bool { return n.body != nil }

// Required reports whether the request body is required.
func (n *RequestBodyNav) Required() bool {
	n.step("required")
	if n.body == nil {
		return false
	}
	return n.body.Required
}

// ContentTypes returns the media type names in sorted order, without
// recording.
func (n *RequestBodyNav) ContentTypes() []string {
	if n.body == nil {
		return nil
	}
	return sortedKeys(n.body.Content)
}

// Content returns the wrapped media type for a content type name.
func (n *RequestBodyNav) Content(mediaType string) *MediaTypeNav {
	child := &MediaTypeNav{nav: n.step("content").step(mediaType)}
	if n.body != nil {
		child.media = n.body.Content[mediaType]
	}
	return child
}

// ResponsesNav wraps a responses container.
type ResponsesNav struct {
	nav
	responses *parser.Responses
}

// Node returns the underlying node without recording an access.
func (n *ResponsesNav) Node() *parser.Responses { return n.responses }

// Codes returns the declared status codes in sorted order, without recording.
func (n *ResponsesNav) Codes() []string {
	if n.responses == nil {
		return nil
	}
	return sortedKeys(n.responses.Codes)
}

// Code returns the wrapped response for a status code. Status codes are
// inline keys of the responses object, so the pointer is a direct child
// segment.
func (n *ResponsesNav) Code(code string) *ResponseNav {
	child := &ResponseNav{nav: n.step(code)}
	if n.responses != nil {
		child.response = n.responses.Codes[code]
	}
	return child
}

// Default returns the wrapped default response.
func (n *ResponsesNav) Default() *ResponseNav {
	child := &ResponseNav{nav: n.step("default")}
	if n.responses != nil {
		child.response = n.responses.Default
	}
	return child
}

// ResponseNav wraps a single response.
type ResponseNav struct {
	nav
	response *parser.Response
}

// Node returns the underlying node without recording an access.
func (n *ResponseNav) Node() *parser.Response { return n.response }

// Exists returns true when the wrapped response is present, without
// recording an access.
func (n *ResponseNav) Exists() bool { return n.response != nil }

// Description returns the response description.
func (n *ResponseNav) Description() string {
	n.step("description")
	if n.response == nil {
		return ""
	}
	return n.response.Description
}

// ContentTypes returns the media type names in sorted order, without
// recording.
func (n *ResponseNav) ContentTypes() []string {
	if n.response == nil {
		return nil
	}
	return sortedKeys(n.response.Content)
}

// Content returns the wrapped media type for a content type name.
func (n *ResponseNav) Content(mediaType string) *MediaTypeNav {
	child := &MediaTypeNav{nav: n.step("content").step(mediaType)}
	if n.response != nil {
		child.media = n.response.Content[mediaType]
	}
	return child
}

// MediaTypeNav wraps a media type.
type MediaTypeNav struct {
	nav
	media *parser.MediaType
}

// Node returns the underlying node without recording an access.
func (n *MediaTypeNav) Node() *parser.MediaType { return n.media }

// Schema returns the wrapped media type schema.
func (n *MediaTypeNav) Schema() *SchemaNav {
	child := &SchemaNav{nav: n.step("schema")}
	if n.media != nil {
		child.schema = n.media.Schema
	}
	return child
}

// SchemaNav wraps a schema.
type SchemaNav struct {
	nav
	schema *parser.Schema
}

// Node returns the underlying node without recording an access.
func (n *SchemaNav) Node() *parser.Schema { return n.schema }

// Exists returns true when the wrapped schema is present, without recording
// an access.
func (n *SchemaNav) Exists() bool { return n.schema != nil }

// Ref returns the schema's $ref target, if any.
func (n *SchemaNav) Ref() string {
	n.step("$ref")
	if n.schema == nil {
		return ""
	}
	return n.schema.Ref
}

// Type returns the schema type.
func (n *SchemaNav) Type() string {
	n.step("type")
	if n.schema == nil {
		return ""
	}
	return n.schema.Type
}

// Format returns the schema format.
func (n *SchemaNav) Format() string {
	n.step("format")
	if n.schema == nil {
		return ""
	}
	return n.schema.Format
}

// Required returns the schema's required property names.
func (n *SchemaNav) Required() []string {
	n.step("required")
	if n.schema == nil {
		return nil
	}
	return n.schema.Required
}

// PropertyNames returns the property names in sorted order, without
// recording.
func (n *SchemaNav) PropertyNames() []string {
	if n.schema == nil {
		return nil
	}
	return sortedKeys(n.schema.Properties)
}

// Property returns the wrapped schema of a named property.
func (n *SchemaNav) Property(name string) *SchemaNav {
	child := &SchemaNav{nav: n.step("properties").step(name)}
	if n.schema != nil {
		child.schema = n.schema.Properties[name]
	}
	return child
}

// Items returns the wrapped item schema.
func (n *SchemaNav) Items() *SchemaNav {
	child := &SchemaNav{nav: n.step("items")}
	if n.schema != nil {
		child.schema = n.schema.Items
	}
	return child
}

// Extensions returns the schema's vendor extension map without recording.
func (n *SchemaNav) Extensions() map[string]any {
	if n.schema == nil {
		return nil
	}
	return n.schema.Extra
}

// ComponentsNav wraps the components object.
type ComponentsNav struct {
	nav
	components *parser.Components
}

// Node returns the underlying node without recording an access.
func (n *ComponentsNav) Node() *parser.Components { return n.components }

// SchemaNames returns the reusable schema names in sorted order, without
// recording.
func (n *ComponentsNav) SchemaNames() []string {
	if n.components == nil {
		return nil
	}
	return sortedKeys(n.components.Schemas)
}

// Schema returns the wrapped reusable schema for a name.
func (n *ComponentsNav) Schema(name string) *SchemaNav {
	child := &SchemaNav{nav: n.step("schemas").step(name)}
	if n.components != nil {
		child.schema = n.components.Schemas[name]
	}
	return child
}

// SecuritySchemeNames returns the security scheme names in sorted order,
// without recording.
func (n *ComponentsNav) SecuritySchemeNames() []string {
	if n.components == nil {
		return nil
	}
	return sortedKeys(n.components.SecuritySchemes)
}

// SecurityScheme returns the wrapped security scheme for a name.
func (n *ComponentsNav) SecurityScheme(name string) *SecuritySchemeNav {
	child := &SecuritySchemeNav{nav: n.step("securitySchemes").step(name)}
	if n.components != nil {
		child.scheme = n.components.SecuritySchemes[name]
	}
	return child
}

// Extensions returns the components vendor extension map without recording.
func (n *ComponentsNav) Extensions() map[string]any {
	if n.components == nil {
		return nil
	}
	return n.components.Extra
}

// SecuritySchemeNav wraps a security scheme.
type SecuritySchemeNav struct {
	nav
	scheme *parser.SecurityScheme
}

// Node returns the underlying node without recording an access.
func (n *SecuritySchemeNav) Node() *parser.SecurityScheme { return n.scheme }

// Type returns the security scheme type.
func (n *SecuritySchemeNav) Type() string {
	n.step("type")
	if n.scheme == nil {
		return ""
	}
	return n.scheme.Type
}

// Name returns the apiKey parameter name.
func (n *SecuritySchemeNav) Name() string {
	n.step("name")
	if n.scheme == nil {
		return ""
	}
	return n.scheme.Name
}

// In returns the apiKey parameter location.
func (n *SecuritySchemeNav) In() string {
	n.step("in")
	if n.scheme == nil {
		return ""
	}
	return n.scheme.In
}

// Flows returns the oauth2 flows object.
func (n *SecuritySchemeNav) Flows() *parser.OAuthFlows {
	n.step("flows")
	if n.scheme == nil {
		return nil
	}
	return n.scheme.Flows
}

// sortedKeys returns a map's string keys in sorted order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
