package schema

import "strings"

// Type enumerates the JSON Schema primitive types a fragment can declare.
type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
	TypeObject  Type = "object"
	TypeArray   Type = "array"
	TypeNull    Type = "null"
)

// Schema is the read-only fragment of a JSON-Schema-like tree that input
// resolution consumes. Decoders (pkg/jsonschema, pkg/openapi) own its
// construction; the input core never mutates it.
//
// Examples and Default carry explicit presence flags because a nil value is a
// legal default and an empty examples sequence differs from no sequence.
type Schema struct {
	Type        Type
	Format      string
	Title       string
	Description string

	Default    any
	HasDefault bool

	Examples    []any
	HasExamples bool

	Enum       []any
	Minimum    *float64
	Maximum    *float64
	MultipleOf *float64

	ReadOnly   bool
	Extensions map[string]any `json:"Extensions,omitempty"`
}

// IsNumeric reports whether the fragment declares a number or integer type.
func (s Schema) IsNumeric() bool {
	return s.Type == TypeNumber || s.Type == TypeInteger
}

// NormalizedFormat returns the lower-cased, trimmed format keyword.
func (s Schema) NormalizedFormat() string {
	return strings.ToLower(strings.TrimSpace(s.Format))
}

// Clone returns a copy whose slices and maps can be mutated independently.
func (s Schema) Clone() Schema {
	cloned := s
	if s.Examples != nil {
		cloned.Examples = append([]any(nil), s.Examples...)
	}
	if s.Enum != nil {
		cloned.Enum = append([]any(nil), s.Enum...)
	}
	if s.Minimum != nil {
		value := *s.Minimum
		cloned.Minimum = &value
	}
	if s.Maximum != nil {
		value := *s.Maximum
		cloned.Maximum = &value
	}
	if s.MultipleOf != nil {
		value := *s.MultipleOf
		cloned.MultipleOf = &value
	}
	if len(s.Extensions) > 0 {
		cloned.Extensions = make(map[string]any, len(s.Extensions))
		for key, value := range s.Extensions {
			cloned.Extensions[key] = value
		}
	}
	return cloned
}

// Float returns a pointer to value, convenient for literal fragments in
// fixtures and tests.
func Float(value float64) *float64 {
	return &value
}
