// Package oaslint provides the location-aware lint context used to evaluate
// rules against OpenAPI Specification (OAS) documents.
//
// oaslint ingests a raw OAS document in either of the two supported dialects,
// normalizes it to an OAS 3.x tree, and exposes a query facade that pins every
// reported finding to an exact JSON Pointer in the document that was actually
// submitted, even when the tree was synthesized through OAS 2.0 to 3.x
// conversion and partial $ref expansion.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - parser: Parse OAS documents into a typed tree and resolve local $refs
//   - converter: Convert OAS 2.0 (Swagger) documents to OAS 3.x
//   - linter: Build the location-aware Context consumed by rule evaluators
//
// Supported OpenAPI Specification versions:
//   - OAS 2.0 (Swagger): https://spec.openapis.org/oas/v2.0.html
//   - OAS 3.0.x: https://spec.openapis.org/oas/v3.0.0.html
//   - OAS 3.1.x: https://spec.openapis.org/oas/v3.1.0.html
//
// # Quick Start
//
// Build a lint context from raw document content:
//
//	import "github.com/erraggy/oaslint/linter"
//
//	outcome := linter.ReadContext(content)
//	if !outcome.IsSuccess() {
//	    // outcome.Violations carries parse/conversion findings
//	    return
//	}
//	ctx := outcome.Value
//	fmt.Println("OpenAPI 3:", ctx.IsOpenAPI3())
//
// Rule evaluators query the Context and construct violations pinned to
// coordinates:
//
//	vs := ctx.Operations(nil, func(method string, op *linter.OperationNav) []linter.Violation {
//	    if op.OperationID() == "" {
//	        return []linter.Violation{ctx.Violation("operation has no operationId")}
//	    }
//	    return nil
//	})
//
// The rule catalog, severity policy, and report rendering are deliberately out
// of scope: they are consumers of the Context, not part of it.
package oaslint
