package mcpserver

import (
	"fmt"
	"os"

	"github.com/erraggy/oaslint/linter"
	"github.com/erraggy/oaslint/parser"
)

// specInput identifies the OAS document a tool call operates on. Exactly one
// of Path or Content must be set.
type specInput struct {
	Path    string `json:"path,omitempty"    jsonschema:"Filesystem path to the OAS document"`
	Content string `json:"content,omitempty" jsonschema:"Inline OAS document content (YAML or JSON)"`
}

// load returns the document content, reading from disk when a path was given.
func (s specInput) load() (string, error) {
	switch {
	case s.Path != "" && s.Content != "":
		return "", fmt.Errorf("mcpserver: provide either path or content, not both")
	case s.Path != "":
		data, err := os.ReadFile(s.Path)
		if err != nil {
			return "", fmt.Errorf("mcpserver: failed to read spec: %w", err)
		}
		if len(data) > cfg.MaxSpecBytes {
			return "", fmt.Errorf("mcpserver: spec exceeds maximum size of %d bytes", cfg.MaxSpecBytes)
		}
		return string(data), nil
	case s.Content != "":
		if len(s.Content) > cfg.MaxSpecBytes {
			return "", fmt.Errorf("mcpserver: spec exceeds maximum size of %d bytes", cfg.MaxSpecBytes)
		}
		return s.Content, nil
	default:
		return "", fmt.Errorf("mcpserver: either path or content is required")
	}
}

// pipelineOptions returns the linter options derived from server config.
func pipelineOptions() []linter.Option {
	if !cfg.Verbose {
		return nil
	}
	return []linter.Option{linter.WithLogger(parser.NewSlogAdapter(nil))}
}
