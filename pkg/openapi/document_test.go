package openapi

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-forminput/pkg/schema"
)

const petstore = `{
  "openapi": "3.0.3",
  "info": { "title": "Pets", "version": "1.0.0" },
  "paths": {
    "/pets": {
      "post": {
        "operationId": "createPet",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/Pet" }
            }
          }
        },
        "responses": { "201": { "description": "created" } }
      }
    },
    "/pets/{id}/weight": {
      "put": {
        "requestBody": {
          "content": {
            "application/x-www-form-urlencoded": {
              "schema": {
                "type": "object",
                "properties": {
                  "kg": { "type": "number", "minimum": 0, "example": 4.5 }
                }
              }
            }
          }
        },
        "responses": { "204": { "description": "ok" } }
      }
    }
  },
  "components": {
    "schemas": {
      "Pet": {
        "type": "object",
        "properties": {
          "name": {
            "type": "string",
            "title": "Name",
            "examples": ["Rex", "Tom"],
            "default": "Rex",
            "x-widget": "search"
          },
          "born": { "type": "string", "format": "date" },
          "age": { "type": "integer", "minimum": 0, "maximum": 40, "multipleOf": 1 }
        }
      },
      "Tag": { "type": "string", "example": "indoor" }
    }
  }
}`

func loadPetstore(t *testing.T) *Document {
	t.Helper()
	doc, err := Load(context.Background(), []byte(petstore))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return doc
}

func TestComponent_PropertyWithExamples(t *testing.T) {
	doc := loadPetstore(t)

	got, err := doc.Component("Pet", "name")
	if err != nil {
		t.Fatalf("component: %v", err)
	}

	want := schema.Schema{
		Type:        schema.TypeString,
		Title:       "Name",
		Default:     "Rex",
		HasDefault:  true,
		Examples:    []any{"Rex", "Tom"},
		HasExamples: true,
		Extensions:  map[string]any{"x-widget": "search"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}

func TestComponent_NumericBounds(t *testing.T) {
	doc := loadPetstore(t)

	got, err := doc.Component("Pet", "age")
	if err != nil {
		t.Fatalf("component: %v", err)
	}
	if got.Type != schema.TypeInteger {
		t.Fatalf("expected integer, got %q", got.Type)
	}
	if got.Minimum == nil || *got.Minimum != 0 {
		t.Fatalf("expected zero minimum to survive, got %v", got.Minimum)
	}
	if got.Maximum == nil || *got.Maximum != 40 {
		t.Fatalf("expected maximum 40, got %v", got.Maximum)
	}
	if got.HasExamples {
		t.Fatalf("age declares no examples")
	}
}

func TestComponent_SingularExample(t *testing.T) {
	doc := loadPetstore(t)

	got, err := doc.Component("Tag", "")
	if err != nil {
		t.Fatalf("component: %v", err)
	}
	if diff := cmp.Diff([]any{"indoor"}, got.Examples); diff != "" {
		t.Fatalf("examples mismatch (-want +got):\n%s", diff)
	}
}

func TestComponent_Missing(t *testing.T) {
	doc := loadPetstore(t)

	if _, err := doc.Component("Owner", ""); !errors.Is(err, ErrSchemaNotFound) {
		t.Fatalf("expected ErrSchemaNotFound, got %v", err)
	}
	if _, err := doc.Component("Pet", "owner"); !errors.Is(err, ErrSchemaNotFound) {
		t.Fatalf("expected ErrSchemaNotFound for property, got %v", err)
	}
}

func TestRequestField(t *testing.T) {
	doc := loadPetstore(t)

	born, err := doc.RequestField("createPet", "born")
	if err != nil {
		t.Fatalf("request field: %v", err)
	}
	if born.Format != "date" {
		t.Fatalf("expected date format, got %q", born.Format)
	}

	kg, err := doc.RequestField("put:/pets/{id}/weight", "kg")
	if err != nil {
		t.Fatalf("request field by method/path: %v", err)
	}
	if !kg.IsNumeric() || !kg.HasExamples {
		t.Fatalf("unexpected kg fragment: %+v", kg)
	}

	if _, err := doc.RequestField("deletePet", ""); !errors.Is(err, ErrOperationNotFound) {
		t.Fatalf("expected ErrOperationNotFound, got %v", err)
	}
}

func TestLoadFS(t *testing.T) {
	files := fstest.MapFS{"api.json": {Data: []byte(petstore)}}

	doc, err := LoadFS(context.Background(), files, "api.json")
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	if diff := cmp.Diff([]string{"Pet", "Tag"}, doc.ComponentNames()); diff != "" {
		t.Fatalf("component names mismatch (-want +got):\n%s", diff)
	}

	if _, err := LoadFS(context.Background(), files, "missing.json"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(context.Background(), nil); err == nil {
		t.Fatalf("expected error for empty payload")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Load(ctx, []byte(petstore)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestProperties(t *testing.T) {
	doc := loadPetstore(t)

	got, err := doc.Properties("Pet")
	if err != nil {
		t.Fatalf("properties: %v", err)
	}
	if diff := cmp.Diff([]string{"age", "born", "name"}, got); diff != "" {
		t.Fatalf("properties mismatch (-want +got):\n%s", diff)
	}

	if _, err := doc.Properties("Owner"); !errors.Is(err, ErrSchemaNotFound) {
		t.Fatalf("expected ErrSchemaNotFound, got %v", err)
	}
}
