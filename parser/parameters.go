package parser

// Parameter describes a single operation parameter
// Covers both OAS 2.0 and OAS 3.x parameter shapes
type Parameter struct {
	Ref         string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	In          string `yaml:"in,omitempty" json:"in,omitempty"` // query, header, path, cookie (3.0+), formData, body (2.0)
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated  bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	// OAS 3.0+ style
	Style   string  `yaml:"style,omitempty" json:"style,omitempty"`
	Explode *bool   `yaml:"explode,omitempty" json:"explode,omitempty"`
	Schema  *Schema `yaml:"schema,omitempty" json:"schema,omitempty"` // OAS 3.x, and OAS 2.0 body parameters
	Example any     `yaml:"example,omitempty" json:"example,omitempty"`

	// OAS 2.0 inline type fields (non-body parameters)
	Type             string  `yaml:"type,omitempty" json:"type,omitempty"`
	Format           string  `yaml:"format,omitempty" json:"format,omitempty"`
	Items            *Schema `yaml:"items,omitempty" json:"items,omitempty"`
	CollectionFormat string  `yaml:"collectionFormat,omitempty" json:"collectionFormat,omitempty"`
	Default          any     `yaml:"default,omitempty" json:"default,omitempty"`
	Enum             []any   `yaml:"enum,omitempty" json:"enum,omitempty"`
	AllowEmptyValue  bool    `yaml:"allowEmptyValue,omitempty" json:"allowEmptyValue,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// RequestBody describes a single request body (OAS 3.0+)
type RequestBody struct {
	Ref         string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	Required    bool                  `yaml:"required,omitempty" json:"required,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Header describes a response header
// Follows the structure of Parameter, without name and location
type Header struct {
	Ref         string  `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool    `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated  bool    `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Schema      *Schema `yaml:"schema,omitempty" json:"schema,omitempty"` // OAS 3.x
	// OAS 2.0 inline type fields
	Type   string  `yaml:"type,omitempty" json:"type,omitempty"`
	Format string  `yaml:"format,omitempty" json:"format,omitempty"`
	Items  *Schema `yaml:"items,omitempty" json:"items,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
