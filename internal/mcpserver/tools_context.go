package mcpserver

import (
	"context"

	"github.com/erraggy/oaslint/linter"
	"github.com/erraggy/oaslint/parser"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type parseContextInput struct {
	Spec specInput `json:"spec" jsonschema:"The OAS document to parse"`
}

type violationOutput struct {
	Description string `json:"description"`
	Pointer     string `json:"pointer"`
}

type parseContextOutput struct {
	Outcome        string            `json:"outcome"`
	Violations     []violationOutput `json:"violations,omitempty"`
	Truncated      bool              `json:"truncated,omitempty"`
	Dialect        string            `json:"dialect,omitempty"`
	Title          string            `json:"title,omitempty"`
	Version        string            `json:"version,omitempty"`
	PathCount      int               `json:"path_count,omitempty"`
	OperationCount int               `json:"operation_count,omitempty"`
	SchemaCount    int               `json:"schema_count,omitempty"`
}

func handleParseContext(_ context.Context, _ *mcp.CallToolRequest, input parseContextInput) (*mcp.CallToolResult, parseContextOutput, error) {
	content, err := input.Spec.load()
	if err != nil {
		return errResult(err), parseContextOutput{}, nil
	}

	outcome := linter.ReadContext(content, pipelineOptions()...)
	output := parseContextOutput{Outcome: outcome.Kind.String()}

	for i, v := range outcome.Violations {
		if i >= cfg.MaxViolations {
			output.Truncated = true
			break
		}
		output.Violations = append(output.Violations, violationOutput{
			Description: v.Description,
			Pointer:     v.Pointer,
		})
	}

	if !outcome.IsSuccess() {
		return nil, output, nil
	}

	lintCtx := outcome.Value
	if lintCtx.IsOpenAPI3() {
		output.Dialect = "openapi"
	} else {
		output.Dialect = "swagger"
	}

	doc := lintCtx.API().Node()
	if doc.Info != nil {
		output.Title = doc.Info.Title
		output.Version = doc.Info.Version
	}
	stats := parser.GetDocumentStats(doc)
	output.PathCount = stats.PathCount
	output.OperationCount = stats.OperationCount
	output.SchemaCount = stats.SchemaCount

	return nil, output, nil
}
