package parser

// DocumentStats contains statistical information about a parsed document
type DocumentStats struct {
	// PathCount is the number of path patterns defined
	PathCount int
	// OperationCount is the total number of operations across all paths
	OperationCount int
	// SchemaCount is the number of reusable schema definitions
	SchemaCount int
	// ParameterCount is the number of reusable parameter definitions
	ParameterCount int
	// SecuritySchemeCount is the number of security scheme definitions
	SecuritySchemeCount int
}

// GetDocumentStats calculates statistics for a parsed document.
// Accepts *OAS2Document or *OAS3Document; any other type yields zero stats.
func GetDocumentStats(document any) DocumentStats {
	var stats DocumentStats

	switch doc := document.(type) {
	case *OAS2Document:
		stats.PathCount = len(doc.Paths)
		stats.SchemaCount = len(doc.Definitions)
		stats.ParameterCount = len(doc.Parameters)
		stats.SecuritySchemeCount = len(doc.SecurityDefinitions)
		for _, item := range doc.Paths {
			stats.OperationCount += len(GetOperations(item, OASVersion20))
		}

	case *OAS3Document:
		stats.PathCount = len(doc.Paths)
		if doc.Components != nil {
			stats.SchemaCount = len(doc.Components.Schemas)
			stats.ParameterCount = len(doc.Components.Parameters)
			stats.SecuritySchemeCount = len(doc.Components.SecuritySchemes)
		}
		for _, item := range doc.Paths {
			stats.OperationCount += len(GetOperations(item, doc.OASVersion))
		}
	}

	return stats
}
