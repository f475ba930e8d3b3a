package parser

// Schema represents a JSON Schema object as used by OAS documents.
// Covers the subset shared between OAS 2.0 and OAS 3.x plus the fields the
// converter needs; unknown keywords are captured in Extra.
type Schema struct {
	Ref         string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Type        string `yaml:"type,omitempty" json:"type,omitempty"`
	Format      string `yaml:"format,omitempty" json:"format,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`
	Example     any    `yaml:"example,omitempty" json:"example,omitempty"`

	// Validation keywords
	Enum             []any    `yaml:"enum,omitempty" json:"enum,omitempty"`
	Required         []string `yaml:"required,omitempty" json:"required,omitempty"`
	Maximum          *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	Minimum          *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	MaxLength        *int     `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	MinLength        *int     `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	Pattern          string   `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	MaxItems         *int     `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	MinItems         *int     `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	UniqueItems      bool     `yaml:"uniqueItems,omitempty" json:"uniqueItems,omitempty"`
	MultipleOf       *float64 `yaml:"multipleOf,omitempty" json:"multipleOf,omitempty"`
	ExclusiveMaximum any      `yaml:"exclusiveMaximum,omitempty" json:"exclusiveMaximum,omitempty"` // bool in 3.0, number in 3.1
	ExclusiveMinimum any      `yaml:"exclusiveMinimum,omitempty" json:"exclusiveMinimum,omitempty"`

	// Structure
	Properties           map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	Items                *Schema            `yaml:"items,omitempty" json:"items,omitempty"`
	AdditionalProperties any                `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"` // bool or *Schema
	AllOf                []*Schema          `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	AnyOf                []*Schema          `yaml:"anyOf,omitempty" json:"anyOf,omitempty"` // OAS 3.0+
	OneOf                []*Schema          `yaml:"oneOf,omitempty" json:"oneOf,omitempty"` // OAS 3.0+
	Not                  *Schema            `yaml:"not,omitempty" json:"not,omitempty"`     // OAS 3.0+

	// Annotations
	Nullable   bool          `yaml:"nullable,omitempty" json:"nullable,omitempty"` // OAS 3.0 only
	ReadOnly   bool          `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	WriteOnly  bool          `yaml:"writeOnly,omitempty" json:"writeOnly,omitempty"` // OAS 3.0+
	Deprecated bool          `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	XML        *XML          `yaml:"xml,omitempty" json:"xml,omitempty"`
	Discrim    *Discrim      `yaml:"discriminator,omitempty" json:"discriminator,omitempty"` // object in 3.x, string in 2.0 lands in Extra
	ExtDocs    *ExternalDocs `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Discrim represents an OAS 3.x discriminator object
type Discrim struct {
	PropertyName string            `yaml:"propertyName" json:"propertyName"`
	Mapping      map[string]string `yaml:"mapping,omitempty" json:"mapping,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// XML adds metadata for XML representations of a schema
type XML struct {
	Name      string `yaml:"name,omitempty" json:"name,omitempty"`
	Namespace string `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	Prefix    string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Attribute bool   `yaml:"attribute,omitempty" json:"attribute,omitempty"`
	Wrapped   bool   `yaml:"wrapped,omitempty" json:"wrapped,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
