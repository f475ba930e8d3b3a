// Package linter builds the location-aware lint Context that rule evaluators
// query when checking an OpenAPI document.
//
// A Context is produced by a strictly sequential pipeline: parse, resolve
// local $refs, convert OAS 2.0 input to OAS 3.x, index the resulting tree(s),
// and wrap the current-dialect root in a call-recording facade. Every stage
// yields a three-way Outcome: Success, ParsedWithErrors (diagnostics become
// Violations and the document is rejected), or NotApplicable (wrong dialect,
// try the other entry point).
//
// Coordinates are JSON Pointers into the document that was submitted. Three
// mechanisms cooperate to produce them:
//
//   - ReverseIndex: one traversal of a tree mapping node identity to the
//     pointer at which the node was first reached.
//   - The facade (DocNav and friends): records the pointer of the most
//     recently completed accessor chain, so a violation constructed without an
//     explicit target defaults to wherever the evaluator last navigated.
//   - Pointer reconciliation: legacy-dialect pointers translate to the
//     current dialect's addressing via a fixed segment-renaming table.
//
// A Context is immutable after construction apart from the facade's "last
// recorded pointer", which advances with every accessor call; rule evaluation
// over one Context is therefore assumed sequential.
package linter
