package converter

import (
	"fmt"
	"strings"

	"github.com/erraggy/oaslint/parser"
)

// convertOAS2ToOAS3 converts an OAS 2.0 document to OAS 3.x
func (c *Converter) convertOAS2ToOAS3(src *parser.OAS2Document, targetVersion parser.OASVersion, result *ConversionResult) error {
	dst := &parser.OAS3Document{
		OpenAPI:    result.TargetVersion,
		OASVersion: targetVersion,
		Info:       src.Info,
		Servers:    c.convertServers(src, result),
		Paths:      make(parser.Paths),
		Tags:       src.Tags,
	}

	// Convert components
	if src.Definitions != nil || src.Parameters != nil || src.Responses != nil || src.SecurityDefinitions != nil {
		dst.Components = &parser.Components{}

		if src.Definitions != nil {
			dst.Components.Schemas = make(map[string]*parser.Schema, len(src.Definitions))
			for name, schema := range src.Definitions {
				dst.Components.Schemas[name] = c.convertSchema(schema)
			}
		}

		if src.Parameters != nil {
			dst.Components.Parameters = make(map[string]*parser.Parameter, len(src.Parameters))
			for name, param := range src.Parameters {
				path := fmt.Sprintf("parameters.%s", name)
				dst.Components.Parameters[name] = c.convertParameter(param, result, path)
			}
		}

		if src.Responses != nil {
			dst.Components.Responses = make(map[string]*parser.Response, len(src.Responses))
			for name, response := range src.Responses {
				dst.Components.Responses[name] = c.convertResponse(response, src.Produces)
			}
		}

		c.convertSecurityDefinitions(src, dst, result)
	}

	// Convert paths
	for pathPattern, pathItem := range src.Paths {
		if pathItem == nil {
			continue
		}
		dst.Paths[pathPattern] = c.convertPathItem(pathItem, src, result, fmt.Sprintf("paths.%s", pathPattern))
	}

	if src.ExternalDocs != nil {
		dst.ExternalDocs = src.ExternalDocs
	}

	// Global security requirements are shape-compatible
	if len(src.Security) > 0 {
		dst.Security = src.Security
	}

	if dst.Info == nil || dst.Info.Title == "" {
		c.addIssue(result, "info.title", "converted document has no title", SeverityWarning)
	}

	result.Document = dst
	return nil
}

// convertServers converts OAS 2.0 host/basePath/schemes to OAS 3.x servers
func (c *Converter) convertServers(src *parser.OAS2Document, result *ConversionResult) []*parser.Server {
	schemeCount := len(src.Schemes)
	if schemeCount == 0 {
		schemeCount = 1
	}
	servers := make([]*parser.Server, 0, schemeCount)

	if src.Host == "" {
		servers = append(servers, &parser.Server{
			URL:         "/",
			Description: "Default server",
		})
		c.addIssue(result, "servers", "No host specified in OAS 2.0 document, using default server", SeverityInfo)
		return servers
	}

	schemes := src.Schemes
	if len(schemes) == 0 {
		schemes = []string{"https"}
	}

	basePath := src.BasePath
	if basePath == "" {
		basePath = "/"
	}

	for _, scheme := range schemes {
		servers = append(servers, &parser.Server{
			URL:         fmt.Sprintf("%s://%s%s", scheme, src.Host, basePath),
			Description: fmt.Sprintf("Server with %s scheme", scheme),
		})
	}

	return servers
}

// convertPathItem converts an OAS 2.0 path item to OAS 3.x
func (c *Converter) convertPathItem(src *parser.PathItem, doc *parser.OAS2Document, result *ConversionResult, pathPrefix string) *parser.PathItem {
	if src == nil {
		return nil
	}

	dst := &parser.PathItem{
		Ref:        rewriteRef(src.Ref),
		Parameters: c.convertParameterList(src.Parameters, result, fmt.Sprintf("%s.parameters", pathPrefix)),
	}

	if src.Get != nil {
		dst.Get = c.convertOperation(src.Get, doc, result, fmt.Sprintf("%s.get", pathPrefix))
	}
	if src.Put != nil {
		dst.Put = c.convertOperation(src.Put, doc, result, fmt.Sprintf("%s.put", pathPrefix))
	}
	if src.Post != nil {
		dst.Post = c.convertOperation(src.Post, doc, result, fmt.Sprintf("%s.post", pathPrefix))
	}
	if src.Delete != nil {
		dst.Delete = c.convertOperation(src.Delete, doc, result, fmt.Sprintf("%s.delete", pathPrefix))
	}
	if src.Options != nil {
		dst.Options = c.convertOperation(src.Options, doc, result, fmt.Sprintf("%s.options", pathPrefix))
	}
	if src.Head != nil {
		dst.Head = c.convertOperation(src.Head, doc, result, fmt.Sprintf("%s.head", pathPrefix))
	}
	if src.Patch != nil {
		dst.Patch = c.convertOperation(src.Patch, doc, result, fmt.Sprintf("%s.patch", pathPrefix))
	}

	dst.Extra = src.Extra
	return dst
}

// convertOperation converts an OAS 2.0 operation to OAS 3.x
func (c *Converter) convertOperation(src *parser.Operation, doc *parser.OAS2Document, result *ConversionResult, opPath string) *parser.Operation {
	dst := &parser.Operation{
		Tags:         src.Tags,
		Summary:      src.Summary,
		Description:  src.Description,
		ExternalDocs: src.ExternalDocs,
		OperationID:  src.OperationID,
		Parameters:   c.convertParameterList(src.Parameters, result, fmt.Sprintf("%s.parameters", opPath)),
		Deprecated:   src.Deprecated,
		Security:     src.Security,
		Extra:        src.Extra,
	}

	if src.Responses != nil {
		dst.Responses = &parser.Responses{
			Codes: make(map[string]*parser.Response, len(src.Responses.Codes)),
		}
		if src.Responses.Default != nil {
			dst.Responses.Default = c.convertResponse(src.Responses.Default, c.getProduces(src, doc))
		}
		for code, response := range src.Responses.Codes {
			dst.Responses.Codes[code] = c.convertResponse(response, c.getProduces(src, doc))
		}
	}

	// Convert body parameter plus consumes to a requestBody
	hasBodyParam := false
	for _, param := range src.Parameters {
		if param != nil && param.In == parser.ParamInBody {
			hasBodyParam = true
			break
		}
	}

	if hasBodyParam {
		dst.RequestBody = c.convertRequestBody(src, doc)
		filteredParams := make([]*parser.Parameter, 0, len(dst.Parameters))
		for _, param := range dst.Parameters {
			if param != nil && param.In != parser.ParamInBody {
				filteredParams = append(filteredParams, param)
			}
		}
		dst.Parameters = filteredParams
	}

	return dst
}

// convertRequestBody converts OAS 2.0 body parameters and consumes to OAS 3.x requestBody
func (c *Converter) convertRequestBody(src *parser.Operation, doc *parser.OAS2Document) *parser.RequestBody {
	var bodyParam *parser.Parameter
	for _, param := range src.Parameters {
		if param != nil && param.In == parser.ParamInBody {
			bodyParam = param
			break
		}
	}
	if bodyParam == nil {
		return nil
	}

	requestBody := &parser.RequestBody{
		Description: bodyParam.Description,
		Required:    bodyParam.Required,
		Content:     make(map[string]*parser.MediaType),
	}

	consumes := c.getConsumes(src, doc)
	if len(consumes) == 0 {
		consumes = []string{"application/json"}
	}

	for _, mediaType := range consumes {
		requestBody.Content[mediaType] = &parser.MediaType{
			Schema: c.convertSchema(bodyParam.Schema),
		}
	}

	return requestBody
}

// convertParameterList converts a list of parameters
func (c *Converter) convertParameterList(params []*parser.Parameter, result *ConversionResult, path string) []*parser.Parameter {
	if len(params) == 0 {
		return nil
	}
	out := make([]*parser.Parameter, 0, len(params))
	for i, param := range params {
		out = append(out, c.convertParameter(param, result, fmt.Sprintf("%s[%d]", path, i)))
	}
	return out
}

// convertParameter converts an OAS 2.0 parameter to OAS 3.x.
// Inline type fields move under a schema object; formData parameters cannot be
// represented and are flagged as warnings.
func (c *Converter) convertParameter(src *parser.Parameter, result *ConversionResult, path string) *parser.Parameter {
	if src == nil {
		return nil
	}

	if src.Ref != "" {
		return &parser.Parameter{Ref: rewriteRef(src.Ref)}
	}

	dst := &parser.Parameter{
		Name:        src.Name,
		In:          src.In,
		Description: src.Description,
		Required:    src.Required,
		Extra:       src.Extra,
	}

	switch src.In {
	case parser.ParamInBody:
		// Body parameters become requestBody at the operation level; keep the
		// schema so convertRequestBody can pick it up.
		dst.Schema = c.convertSchema(src.Schema)
	case parser.ParamInFormData:
		c.addIssue(result, path, "formData parameter has no OAS 3.x equivalent; converted as query parameter", SeverityWarning)
		dst.In = parser.ParamInQuery
		dst.Schema = c.schemaFromInlineType(src)
	default:
		dst.Schema = c.schemaFromInlineType(src)
	}

	return dst
}

// schemaFromInlineType lifts OAS 2.0 inline type fields into a schema object
func (c *Converter) schemaFromInlineType(src *parser.Parameter) *parser.Schema {
	if src.Schema != nil {
		return c.convertSchema(src.Schema)
	}
	if src.Type == "" {
		return nil
	}
	return &parser.Schema{
		Type:    src.Type,
		Format:  src.Format,
		Default: src.Default,
		Enum:    src.Enum,
		Items:   c.convertSchema(src.Items),
	}
}

// convertResponse converts an OAS 2.0 response to OAS 3.x, moving the response
// schema under content keyed by the effective produces media types.
func (c *Converter) convertResponse(src *parser.Response, produces []string) *parser.Response {
	if src == nil {
		return nil
	}

	if src.Ref != "" {
		return &parser.Response{Ref: rewriteRef(src.Ref)}
	}

	dst := &parser.Response{
		Description: src.Description,
		Headers:     c.convertHeaders(src.Headers),
		Extra:       src.Extra,
	}

	if src.Schema != nil {
		if len(produces) == 0 {
			produces = []string{"application/json"}
		}
		dst.Content = make(map[string]*parser.MediaType, len(produces))
		for _, mediaType := range produces {
			dst.Content[mediaType] = &parser.MediaType{
				Schema: c.convertSchema(src.Schema),
			}
		}
	}

	return dst
}

// convertHeaders converts OAS 2.0 response headers to OAS 3.x
func (c *Converter) convertHeaders(headers map[string]*parser.Header) map[string]*parser.Header {
	if len(headers) == 0 {
		return nil
	}
	out := make(map[string]*parser.Header, len(headers))
	for name, h := range headers {
		if h == nil {
			out[name] = nil
			continue
		}
		dst := &parser.Header{
			Ref:         rewriteRef(h.Ref),
			Description: h.Description,
			Required:    h.Required,
			Schema:      h.Schema,
			Extra:       h.Extra,
		}
		if dst.Schema == nil && h.Type != "" {
			dst.Schema = &parser.Schema{
				Type:   h.Type,
				Format: h.Format,
				Items:  c.convertSchema(h.Items),
			}
		}
		out[name] = dst
	}
	return out
}

// convertSecurityDefinitions converts OAS 2.0 securityDefinitions to OAS 3.x securitySchemes
func (c *Converter) convertSecurityDefinitions(src *parser.OAS2Document, dst *parser.OAS3Document, result *ConversionResult) {
	if len(src.SecurityDefinitions) == 0 {
		return
	}

	dst.Components.SecuritySchemes = make(map[string]*parser.SecurityScheme, len(src.SecurityDefinitions))
	for name, scheme := range src.SecurityDefinitions {
		if scheme == nil {
			continue
		}
		dst.Components.SecuritySchemes[name] = c.convertSecurityScheme(scheme, result, fmt.Sprintf("securityDefinitions.%s", name))
	}
}

// convertSecurityScheme converts a single OAS 2.0 security scheme to OAS 3.x
func (c *Converter) convertSecurityScheme(src *parser.SecurityScheme, result *ConversionResult, path string) *parser.SecurityScheme {
	switch src.Type {
	case "basic":
		return &parser.SecurityScheme{
			Type:        "http",
			Scheme:      "basic",
			Description: src.Description,
			Extra:       src.Extra,
		}

	case "apiKey":
		return &parser.SecurityScheme{
			Type:        "apiKey",
			Name:        src.Name,
			In:          src.In,
			Description: src.Description,
			Extra:       src.Extra,
		}

	case "oauth2":
		flow := &parser.OAuthFlow{
			AuthorizationURL: src.AuthorizationURL,
			TokenURL:         src.TokenURL,
			Scopes:           src.Scopes,
		}
		if flow.Scopes == nil {
			flow.Scopes = make(map[string]string)
		}
		flows := &parser.OAuthFlows{}
		switch src.Flow {
		case "implicit":
			flows.Implicit = flow
		case "password":
			flows.Password = flow
		case "application":
			flows.ClientCredentials = flow
		case "accessCode":
			flows.AuthorizationCode = flow
		default:
			c.addIssue(result, path+".flow",
				fmt.Sprintf("unknown oauth2 flow %q converted as implicit", src.Flow), SeverityWarning)
			flows.Implicit = flow
		}
		return &parser.SecurityScheme{
			Type:        "oauth2",
			Flows:       flows,
			Description: src.Description,
			Extra:       src.Extra,
		}

	default:
		c.addIssue(result, path,
			fmt.Sprintf("unknown security scheme type %q copied as-is", src.Type), SeverityWarning)
		copied := *src
		return &copied
	}
}

// convertSchema recursively copies a schema, rewriting $ref targets from the
// OAS 2.0 namespace to OAS 3.x components.
func (c *Converter) convertSchema(src *parser.Schema) *parser.Schema {
	if src == nil {
		return nil
	}

	dst := *src
	dst.Ref = rewriteRef(src.Ref)
	dst.Items = c.convertSchema(src.Items)
	dst.Not = c.convertSchema(src.Not)

	if src.Properties != nil {
		dst.Properties = make(map[string]*parser.Schema, len(src.Properties))
		for name, prop := range src.Properties {
			dst.Properties[name] = c.convertSchema(prop)
		}
	}
	if src.AllOf != nil {
		dst.AllOf = make([]*parser.Schema, len(src.AllOf))
		for i, s := range src.AllOf {
			dst.AllOf[i] = c.convertSchema(s)
		}
	}
	if src.AnyOf != nil {
		dst.AnyOf = make([]*parser.Schema, len(src.AnyOf))
		for i, s := range src.AnyOf {
			dst.AnyOf[i] = c.convertSchema(s)
		}
	}
	if src.OneOf != nil {
		dst.OneOf = make([]*parser.Schema, len(src.OneOf))
		for i, s := range src.OneOf {
			dst.OneOf[i] = c.convertSchema(s)
		}
	}
	if nested, ok := src.AdditionalProperties.(*parser.Schema); ok {
		dst.AdditionalProperties = c.convertSchema(nested)
	}

	return &dst
}

// getProduces returns the effective produces list for an operation
func (c *Converter) getProduces(op *parser.Operation, doc *parser.OAS2Document) []string {
	if len(op.Produces) > 0 {
		return op.Produces
	}
	return doc.Produces
}

// getConsumes returns the effective consumes list for an operation
func (c *Converter) getConsumes(op *parser.Operation, doc *parser.OAS2Document) []string {
	if len(op.Consumes) > 0 {
		return op.Consumes
	}
	return doc.Consumes
}

// refRewrites maps OAS 2.0 ref prefixes to their OAS 3.x component namespaces
var refRewrites = [...][2]string{
	{"#/definitions/", "#/components/schemas/"},
	{"#/parameters/", "#/components/parameters/"},
	{"#/responses/", "#/components/responses/"},
	{"#/securityDefinitions/", "#/components/securitySchemes/"},
}

// rewriteRef rewrites a $ref string from the OAS 2.0 namespace to OAS 3.x.
// Refs outside the known namespaces are returned unchanged.
func rewriteRef(ref string) string {
	for _, rw := range refRewrites {
		if strings.HasPrefix(ref, rw[0]) {
			return rw[1] + strings.TrimPrefix(ref, rw[0])
		}
	}
	return ref
}
