package openapi

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-forminput/pkg/schema"
)

var (
	// ErrSchemaNotFound is returned when a component or property is missing.
	ErrSchemaNotFound = errors.New("openapi: schema not found")
	// ErrOperationNotFound is returned when no operation matches the id.
	ErrOperationNotFound = errors.New("openapi: operation not found")
)

// requestMediaTypes lists the body encodings checked before falling back to
// whatever media type the operation declares first.
var requestMediaTypes = []string{
	"application/json",
	"application/x-www-form-urlencoded",
	"multipart/form-data",
}

// Document wraps a loaded OpenAPI description.
type Document struct {
	spec *openapi3.T
}

// Load parses an OpenAPI document from JSON or YAML bytes. External
// references are not followed.
func Load(ctx context.Context, raw []byte) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return &Document{spec: spec}, nil
}

// LoadFS reads name from files and parses it with Load.
func LoadFS(ctx context.Context, files fs.FS, name string) (*Document, error) {
	if files == nil {
		return nil, errors.New("openapi: filesystem is not configured")
	}
	raw, err := fs.ReadFile(files, name)
	if err != nil {
		return nil, fmt.Errorf("openapi: read %s: %w", name, err)
	}
	return Load(ctx, raw)
}

// ComponentNames lists the component schema names in sorted order.
func (d *Document) ComponentNames() []string {
	if d == nil || d.spec == nil || d.spec.Components == nil {
		return nil
	}
	names := make([]string, 0, len(d.spec.Components.Schemas))
	for name := range d.spec.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Properties lists the property names of the named component schema in
// sorted order.
func (d *Document) Properties(name string) ([]string, error) {
	if d == nil || d.spec == nil || d.spec.Components == nil {
		return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, name)
	}
	ref := d.spec.Components.Schemas[name]
	if ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, name)
	}
	names := make([]string, 0, len(ref.Value.Properties))
	for property := range ref.Value.Properties {
		names = append(names, property)
	}
	sort.Strings(names)
	return names, nil
}

// Component returns the named component schema. When property is not empty
// the property fragment is returned instead.
func (d *Document) Component(name, property string) (schema.Schema, error) {
	if d == nil || d.spec == nil || d.spec.Components == nil {
		return schema.Schema{}, fmt.Errorf("%w: %s", ErrSchemaNotFound, name)
	}
	ref := d.spec.Components.Schemas[name]
	if ref == nil {
		return schema.Schema{}, fmt.Errorf("%w: %s", ErrSchemaNotFound, name)
	}
	return pick(ref, name, property)
}

// RequestField returns the request body schema of the operation identified by
// operationID. Operations without an explicit id are addressed as
// "<method>:<path>" in lower case, e.g. "post:/pets".
func (d *Document) RequestField(operationID, property string) (schema.Schema, error) {
	op := d.operation(operationID)
	if op == nil {
		return schema.Schema{}, fmt.Errorf("%w: %s", ErrOperationNotFound, operationID)
	}
	ref := requestSchema(op.RequestBody)
	if ref == nil {
		return schema.Schema{}, fmt.Errorf("%w: %s request body", ErrSchemaNotFound, operationID)
	}
	return pick(ref, operationID, property)
}

func (d *Document) operation(id string) *openapi3.Operation {
	if d == nil || d.spec == nil || d.spec.Paths == nil {
		return nil
	}
	for path, item := range d.spec.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op == nil {
				continue
			}
			if op.OperationID == id || strings.ToLower(method)+":"+path == id {
				return op
			}
		}
	}
	return nil
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.SchemaRef {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range requestMediaTypes {
		if mt := content.Get(mediaType); mt != nil && mt.Schema != nil {
			return mt.Schema
		}
	}
	keys := make([]string, 0, len(content))
	for key := range content {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if mt := content[key]; mt != nil && mt.Schema != nil {
			return mt.Schema
		}
	}
	return nil
}

func pick(ref *openapi3.SchemaRef, owner, property string) (schema.Schema, error) {
	if property == "" {
		return FromSchemaRef(ref), nil
	}
	if ref.Value == nil {
		return schema.Schema{}, fmt.Errorf("%w: %s.%s", ErrSchemaNotFound, owner, property)
	}
	prop := ref.Value.Properties[property]
	if prop == nil {
		return schema.Schema{}, fmt.Errorf("%w: %s.%s", ErrSchemaNotFound, owner, property)
	}
	return FromSchemaRef(prop), nil
}
