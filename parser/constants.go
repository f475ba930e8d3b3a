package parser

// Locations a Parameter.In field may name
const (
	// ParamInQuery marks a query-string parameter
	ParamInQuery = "query"
	// ParamInHeader marks a request-header parameter
	ParamInHeader = "header"
	// ParamInPath marks a parameter bound into the URL path
	ParamInPath = "path"
	// ParamInCookie marks a cookie parameter (OAS 3.0+)
	ParamInCookie = "cookie"
	// ParamInFormData marks a form-data parameter (OAS 2.0 only)
	ParamInFormData = "formData"
	// ParamInBody marks the request-body parameter (OAS 2.0 only)
	ParamInBody = "body"
)
