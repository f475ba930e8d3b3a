package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oaslint"
	"github.com/erraggy/oaslint/internal/mcpserver"
	"github.com/erraggy/oaslint/linter"
	"github.com/erraggy/oaslint/parser"
	"gopkg.in/yaml.v3"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oaslint v%s\n", oaslint.Version())
	case "help", "-h", "--help":
		printUsage()
	case "context":
		if err := handleContext(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "suppressed":
		if err := handleSuppressed(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := handleMCP(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// contextFlags contains flags for the context command
type contextFlags struct {
	format  string
	verbose bool
}

func setupContextFlags() (*flag.FlagSet, *contextFlags) {
	fs := flag.NewFlagSet("context", flag.ContinueOnError)
	flags := &contextFlags{}

	fs.StringVar(&flags.format, "format", "yaml", "output format: yaml or json")
	fs.BoolVar(&flags.verbose, "verbose", false, "log pipeline degradation warnings to stderr")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: oaslint context [flags] <file>\n\n")
		_, _ = fmt.Fprintf(output, "Build a lint context from an OpenAPI document and print the outcome.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  oaslint context openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  oaslint context --format json swagger.yaml\n")
	}

	return fs, flags
}

// contextReport is the printable shape of a pipeline outcome.
type contextReport struct {
	Outcome    string            `yaml:"outcome" json:"outcome"`
	Dialect    string            `yaml:"dialect,omitempty" json:"dialect,omitempty"`
	Title      string            `yaml:"title,omitempty" json:"title,omitempty"`
	Version    string            `yaml:"version,omitempty" json:"version,omitempty"`
	Paths      int               `yaml:"paths,omitempty" json:"paths,omitempty"`
	Operations int               `yaml:"operations,omitempty" json:"operations,omitempty"`
	Schemas    int               `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	Violations []violationReport `yaml:"violations,omitempty" json:"violations,omitempty"`
}

type violationReport struct {
	Description string `yaml:"description" json:"description"`
	Pointer     string `yaml:"pointer" json:"pointer"`
}

func handleContext(args []string) error {
	fs, flags := setupContextFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("context command requires exactly one file path")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	var opts []linter.Option
	if flags.verbose {
		opts = append(opts, linter.WithLogger(parser.NewSlogAdapter(nil)))
	}

	outcome := linter.ReadContext(string(data), opts...)
	report := contextReport{Outcome: outcome.Kind.String()}
	for _, v := range outcome.Violations {
		report.Violations = append(report.Violations, violationReport{
			Description: v.Description,
			Pointer:     v.Pointer,
		})
	}
	if outcome.IsSuccess() {
		lintCtx := outcome.Value
		if lintCtx.IsOpenAPI3() {
			report.Dialect = "openapi"
		} else {
			report.Dialect = "swagger"
		}
		doc := lintCtx.API().Node()
		if doc.Info != nil {
			report.Title = doc.Info.Title
			report.Version = doc.Info.Version
		}
		stats := parser.GetDocumentStats(doc)
		report.Paths = stats.PathCount
		report.Operations = stats.OperationCount
		report.Schemas = stats.SchemaCount
	}

	out, err := marshalReport(report, flags.format)
	if err != nil {
		return err
	}
	if _, err := os.Stdout.Write(out); err != nil {
		return fmt.Errorf("writing report to stdout: %w", err)
	}

	if !outcome.IsSuccess() {
		os.Exit(1)
	}
	return nil
}

// suppressedFlags contains flags for the suppressed command
type suppressedFlags struct {
	pointer string
}

func setupSuppressedFlags() (*flag.FlagSet, *suppressedFlags) {
	fs := flag.NewFlagSet("suppressed", flag.ContinueOnError)
	flags := &suppressedFlags{}

	fs.StringVar(&flags.pointer, "pointer", "", "JSON Pointer of the location to check (empty means the document root)")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: oaslint suppressed [flags] <file> <rule-id>\n\n")
		_, _ = fmt.Fprintf(output, "Check whether a rule is suppressed via x-lint-ignore at a location.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  oaslint suppressed openapi.yaml 104\n")
		_, _ = fmt.Fprintf(output, "  oaslint suppressed --pointer /paths/~1pets/get openapi.yaml NamingRule\n")
	}

	return fs, flags
}

func handleSuppressed(args []string) error {
	fs, flags := setupSuppressedFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("suppressed command requires a file path and a rule id")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	outcome := linter.ReadContext(string(data))
	if !outcome.IsSuccess() {
		return fmt.Errorf("document did not produce a lint context (outcome: %s)", outcome.Kind)
	}

	if outcome.Value.IsSuppressed(flags.pointer, fs.Arg(1)) {
		fmt.Println("suppressed")
		return nil
	}
	fmt.Println("not suppressed")
	os.Exit(1)
	return nil
}

func handleMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}

// marshalReport marshals a report in the requested format
func marshalReport(report contextReport, format string) ([]byte, error) {
	switch format {
	case "json":
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding report: %w", err)
		}
		return append(out, '\n'), nil
	case "yaml":
		out, err := yaml.Marshal(report)
		if err != nil {
			return nil, fmt.Errorf("encoding report: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (expected yaml or json)", format)
	}
}

func printUsage() {
	fmt.Printf("oaslint v%s - location-aware lint context for OpenAPI documents\n\n", oaslint.Version())
	fmt.Println("Usage: oaslint <command> [flags] [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  context     Build a lint context from an OAS 2.0 or 3.x document")
	fmt.Println("  suppressed  Check whether a rule is suppressed at a location")
	fmt.Println("  mcp         Run the MCP server over stdio")
	fmt.Println("  version     Print version information")
	fmt.Println("  help        Print this help message")
	fmt.Println()
	fmt.Println("Run 'oaslint <command> -h' for command-specific help.")
}
