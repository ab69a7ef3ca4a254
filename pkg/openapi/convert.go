package openapi

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-forminput/pkg/schema"
)

const (
	examplesKey          = "examples"
	examplesExtensionKey = "x-examples"
)

// FromSchemaRef converts a kin-openapi schema into a schema fragment.
//
// OpenAPI 3.0 only knows the singular `example`; the JSON Schema `examples`
// keyword (or its `x-examples` spelling) is read from the extension map where
// kin-openapi leaves unknown keys. When both are present `examples` wins and
// `example` is ignored.
func FromSchemaRef(ref *openapi3.SchemaRef) schema.Schema {
	if ref == nil || ref.Value == nil {
		return schema.Schema{}
	}
	src := ref.Value

	out := schema.Schema{
		Type:        schema.Type(firstSchemaType(src.Type)),
		Format:      src.Format,
		Title:       strings.TrimSpace(src.Title),
		Description: strings.TrimSpace(src.Description),
		ReadOnly:    src.ReadOnly,
	}
	if src.Default != nil {
		out.Default = src.Default
		out.HasDefault = true
	}
	if len(src.Enum) > 0 {
		out.Enum = append([]any(nil), src.Enum...)
	}
	if src.Min != nil {
		out.Minimum = schema.Float(*src.Min)
	}
	if src.Max != nil {
		out.Maximum = schema.Float(*src.Max)
	}
	if src.MultipleOf != nil {
		out.MultipleOf = schema.Float(*src.MultipleOf)
	}

	switch examples, ok := examplesFromExtensions(src.Extensions); {
	case ok:
		out.Examples = examples
		out.HasExamples = true
	case src.Example != nil:
		out.Examples = []any{src.Example}
		out.HasExamples = true
	}

	out.Extensions = vendorExtensions(src.Extensions)
	return out
}

func examplesFromExtensions(ext map[string]any) ([]any, bool) {
	for _, key := range []string{examplesKey, examplesExtensionKey} {
		raw, ok := ext[key]
		if !ok {
			continue
		}
		list, ok := raw.([]any)
		if !ok {
			continue
		}
		return append([]any{}, list...), true
	}
	return nil, false
}

func vendorExtensions(raw map[string]any) map[string]any {
	var out map[string]any
	for key, value := range raw {
		if !strings.HasPrefix(key, "x-") || key == examplesExtensionKey {
			continue
		}
		if out == nil {
			out = make(map[string]any)
		}
		out[key] = value
	}
	return out
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	for _, value := range types.Slice() {
		if value != "null" {
			return value
		}
	}
	return ""
}
