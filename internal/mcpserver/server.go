// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oaslint capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/oaslint"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `oaslint MCP server — builds location-aware lint contexts for OpenAPI specs (OAS 2.0 and 3.x).

Configuration: All defaults are configurable via OASLINT_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- OASLINT_MAX_SPEC_BYTES (default: 10485760) — maximum inline spec size accepted
- OASLINT_MAX_VIOLATIONS (default: 200) — maximum violations returned per call
- OASLINT_VERBOSE (default: false) — enable debug logging

Dialects: Legacy (swagger 2.0) documents are converted to OAS 3.x before evaluation; findings are still reported with JSON Pointer coordinates, translated across the conversion where collections were renamed.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oaslint", Version: oaslint.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse_context",
		Description: "Parse an OpenAPI Specification document (OAS 2.0 or 3.x) into a lint context. Returns the outcome (success, parsed-with-errors, not-applicable), any parse violations with JSON Pointer coordinates, and a structural summary (title, version, dialect, path/operation/schema counts). Legacy 2.0 documents are converted to 3.x before summarizing.",
	}, handleParseContext)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_suppressed",
		Description: "Check whether a rule is suppressed at a given JSON Pointer in an OpenAPI Specification document. Suppressions are x-lint-ignore vendor extensions; a directive applies to the node carrying it and everything beneath it. Rule id comparison is case-insensitive.",
	}, handleCheckSuppressed)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
