package converter

import (
	"fmt"

	"github.com/erraggy/oaslint/parser"
)

// applyPreConversionFixups mutates the OAS 2.0 tree in place to paper over
// known gaps between what the parser accepts and what the conversion requires.
// Unrecoverable shapes are reported as critical issues, which short-circuit
// the conversion.
func (c *Converter) applyPreConversionFixups(src *parser.OAS2Document, result *ConversionResult) {
	if src.Swagger != "" && src.Swagger != "2.0" {
		c.addIssue(result, "swagger",
			fmt.Sprintf("unsupported swagger version %q: only \"2.0\" can be converted", src.Swagger),
			SeverityCritical)
		return
	}

	// The parser accepts documents without an info object; conversion requires one.
	if src.Info == nil {
		src.Info = &parser.Info{}
		c.addIssue(result, "info", "missing info object synthesized as empty", SeverityInfo)
	}

	if src.Paths == nil {
		src.Paths = make(parser.Paths)
		c.addIssue(result, "paths", "missing paths object synthesized as empty", SeverityInfo)
	}

	// oauth2 security definitions missing flow or scopes would derail flow
	// mapping; give them empty defaults so conversion proceeds.
	for name, scheme := range src.SecurityDefinitions {
		if scheme == nil || scheme.Type != "oauth2" {
			continue
		}
		path := fmt.Sprintf("securityDefinitions.%s", name)
		if scheme.Flow == "" {
			scheme.Flow = "implicit"
			c.addIssue(result, path+".flow", "missing oauth2 flow defaulted to implicit", SeverityWarning)
		}
		if scheme.Scopes == nil {
			scheme.Scopes = make(map[string]string)
			c.addIssue(result, path+".scopes", "missing oauth2 scopes defaulted to empty", SeverityWarning)
		}
	}
}
