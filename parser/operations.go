package parser

// HTTP method name constants as they appear as PathItem keys
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// GetOperations extracts a map of all operations from a PathItem based on the OAS version.
// Returns a map keyed by lowercase HTTP method with nil values omitted.
// The trace method is only included for OAS 3.0+.
func GetOperations(pathItem *PathItem, version OASVersion) map[string]*Operation {
	if pathItem == nil {
		return nil
	}

	ops := make(map[string]*Operation, 8)
	add := func(method string, op *Operation) {
		if op != nil {
			ops[method] = op
		}
	}

	add(MethodGet, pathItem.Get)
	add(MethodPut, pathItem.Put)
	add(MethodPost, pathItem.Post)
	add(MethodDelete, pathItem.Delete)
	add(MethodOptions, pathItem.Options)
	add(MethodHead, pathItem.Head)
	add(MethodPatch, pathItem.Patch)

	// TRACE method is OAS 3.0+
	if version.IsV3() {
		add(MethodTrace, pathItem.Trace)
	}

	return ops
}
