package jsonschema

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-forminput/pkg/input"
	"github.com/goliatone/go-forminput/pkg/schema"
)

func TestParse_JSONFragment(t *testing.T) {
	raw := []byte(`{
  "type": "number",
  "title": " Amount ",
  "examples": [1, 2],
  "default": 2,
  "minimum": 0,
  "maximum": 100,
  "multipleOf": 0.5,
  "x-widget": "range",
  "pattern": "ignored"
}`)

	got, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := schema.Schema{
		Type:        schema.TypeNumber,
		Title:       "Amount",
		Default:     2.0,
		HasDefault:  true,
		Examples:    []any{1.0, 2.0},
		HasExamples: true,
		Minimum:     schema.Float(0),
		Maximum:     schema.Float(100),
		MultipleOf:  schema.Float(0.5),
		Extensions:  map[string]any{"x-widget": "range"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fragment mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_YAMLFragment(t *testing.T) {
	raw := []byte(`
type: string
format: date
examples:
  - "2024-01-01"
default: "2024-02-02"
`)

	got, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Type != schema.TypeString || got.Format != "date" {
		t.Fatalf("unexpected type/format: %q/%q", got.Type, got.Format)
	}
	if diff := cmp.Diff([]any{"2024-01-01"}, got.Examples); diff != "" {
		t.Fatalf("examples mismatch (-want +got):\n%s", diff)
	}
	if !got.HasDefault || got.Default != "2024-02-02" {
		t.Fatalf("unexpected default %#v", got.Default)
	}
}

func TestFromMap_ExamplesPresence(t *testing.T) {
	cases := []struct {
		name    string
		payload map[string]any
		has     bool
		count   int
	}{
		{name: "absent", payload: map[string]any{"type": "string"}},
		{name: "not a sequence", payload: map[string]any{"examples": "a"}},
		{name: "empty sequence", payload: map[string]any{"examples": []any{}}, has: true},
		{name: "values", payload: map[string]any{"examples": []any{"a", "b"}}, has: true, count: 2},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := FromMap(tc.payload)
			if err != nil {
				t.Fatalf("from map: %v", err)
			}
			if got.HasExamples != tc.has || len(got.Examples) != tc.count {
				t.Fatalf("want has=%v count=%d, got has=%v count=%d", tc.has, tc.count, got.HasExamples, len(got.Examples))
			}
		})
	}
}

func TestFromMap_NullDefaultIsPresent(t *testing.T) {
	got, err := FromMap(map[string]any{"default": nil})
	if err != nil {
		t.Fatalf("from map: %v", err)
	}
	if !got.HasDefault || got.Default != nil {
		t.Fatalf("expected explicit null default, got has=%v value=%v", got.HasDefault, got.Default)
	}
}

func TestFromMap_TypeUnionAndExclusiveBounds(t *testing.T) {
	got, err := FromMap(map[string]any{
		"type":             []any{"null", "integer"},
		"exclusiveMinimum": 1.0,
		"exclusiveMaximum": 10.0,
		"maximum":          "not a number",
	})
	if err != nil {
		t.Fatalf("from map: %v", err)
	}
	if got.Type != schema.TypeInteger {
		t.Fatalf("expected integer type, got %q", got.Type)
	}
	if got.Minimum != nil || got.Maximum != nil {
		t.Fatalf("exclusive or ill-typed bounds must not become min/max, got %v / %v", got.Minimum, got.Maximum)
	}
}

func TestParse_ExclusiveMinimumLeavesInputUnbounded(t *testing.T) {
	fragment, err := Parse([]byte(`{"type":"number","exclusiveMinimum":0}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	attrs := input.Resolve("root_amount", fragment, input.WidgetNumber, input.Options{})
	if attrs.Min != nil {
		t.Fatalf("expected no min attribute, got %s", attrs.Min)
	}
}

func TestFromMap_Nil(t *testing.T) {
	if _, err := FromMap(nil); !errors.Is(err, ErrNotObject) {
		t.Fatalf("expected ErrNotObject, got %v", err)
	}
}

func TestParseAt_FollowsPointer(t *testing.T) {
	raw := []byte(`{
  "type": "object",
  "properties": {
    "a/b": {"type": "string", "examples": ["x"]},
    "age": {"type": "integer", "minimum": 0}
  }
}`)

	age, err := ParseAt(raw, "#/properties/age")
	if err != nil {
		t.Fatalf("parse at age: %v", err)
	}
	if age.Type != schema.TypeInteger || age.Minimum == nil {
		t.Fatalf("unexpected age fragment: %+v", age)
	}

	escaped, err := ParseAt(raw, "/properties/a~1b")
	if err != nil {
		t.Fatalf("parse at escaped: %v", err)
	}
	if !escaped.HasExamples {
		t.Fatalf("expected examples on escaped property")
	}

	if _, err := ParseAt(raw, "/properties/missing"); !errors.Is(err, ErrPointerNotFound) {
		t.Fatalf("expected ErrPointerNotFound, got %v", err)
	}
}

func TestParse_RejectsNonObjects(t *testing.T) {
	if _, err := Parse([]byte(`[1, 2]`)); !errors.Is(err, ErrNotObject) {
		t.Fatalf("expected ErrNotObject, got %v", err)
	}
	if _, err := Parse([]byte("   ")); err == nil {
		t.Fatalf("expected error for empty document")
	}
}
