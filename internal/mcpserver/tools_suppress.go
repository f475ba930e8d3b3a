package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/oaslint/linter"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type checkSuppressedInput struct {
	Spec    specInput `json:"spec"              jsonschema:"The OAS document to inspect"`
	Pointer string    `json:"pointer,omitempty" jsonschema:"JSON Pointer of the location to check; empty means the document root"`
	RuleID  string    `json:"rule_id"           jsonschema:"Rule identifier to check suppression for (case-insensitive)"`
}

type checkSuppressedOutput struct {
	Suppressed bool   `json:"suppressed"`
	Pointer    string `json:"pointer"`
	RuleID     string `json:"rule_id"`
}

func handleCheckSuppressed(_ context.Context, _ *mcp.CallToolRequest, input checkSuppressedInput) (*mcp.CallToolResult, checkSuppressedOutput, error) {
	if input.RuleID == "" {
		return errResult(fmt.Errorf("mcpserver: rule_id is required")), checkSuppressedOutput{}, nil
	}

	content, err := input.Spec.load()
	if err != nil {
		return errResult(err), checkSuppressedOutput{}, nil
	}

	outcome := linter.ReadContext(content, pipelineOptions()...)
	if !outcome.IsSuccess() {
		return errResult(fmt.Errorf("mcpserver: document did not produce a lint context (outcome: %s)", outcome.Kind)), checkSuppressedOutput{}, nil
	}

	output := checkSuppressedOutput{
		Suppressed: outcome.Value.IsSuppressed(input.Pointer, input.RuleID),
		Pointer:    input.Pointer,
		RuleID:     input.RuleID,
	}
	return nil, output, nil
}
