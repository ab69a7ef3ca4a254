package input

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-forminput/pkg/schema"
)

func TestBuildExamples(t *testing.T) {
	cases := []struct {
		name   string
		schema schema.Schema
		want   []any
		ok     bool
	}{
		{
			name:   "default already listed",
			schema: schema.Schema{Examples: []any{"a", "b"}, HasExamples: true, Default: "a", HasDefault: true},
			want:   []any{"a", "b"},
			ok:     true,
		},
		{
			name:   "default appended last",
			schema: schema.Schema{Examples: []any{"a", "b"}, HasExamples: true, Default: "c", HasDefault: true},
			want:   []any{"a", "b", "c"},
			ok:     true,
		},
		{
			name:   "default without examples",
			schema: schema.Schema{Default: "x", HasDefault: true},
			ok:     false,
		},
		{
			name:   "empty examples",
			schema: schema.Schema{Examples: []any{}, HasExamples: true, Default: "x", HasDefault: true},
			ok:     false,
		},
		{
			name:   "numeric default matches across go types",
			schema: schema.Schema{Examples: []any{1, 2}, HasExamples: true, Default: 2.0, HasDefault: true},
			want:   []any{1, 2},
			ok:     true,
		},
		{
			name:   "same display form collapses",
			schema: schema.Schema{Examples: []any{"1", 1.0, "true", true}, HasExamples: true, Default: 1.0, HasDefault: true},
			want:   []any{"1", "true"},
			ok:     true,
		},
		{
			name:   "duplicate examples collapse",
			schema: schema.Schema{Examples: []any{"a", "b", "a"}, HasExamples: true},
			want:   []any{"a", "b"},
			ok:     true,
		},
		{
			name:   "nil default ignored",
			schema: schema.Schema{Examples: []any{"a"}, HasExamples: true, HasDefault: true},
			want:   []any{"a"},
			ok:     true,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			list, ok := BuildExamples(tc.schema)
			if ok != tc.ok {
				t.Fatalf("ok: want %v, got %v", tc.ok, ok)
			}
			if diff := cmp.Diff(tc.want, list.Values()); diff != "" {
				t.Fatalf("values mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildExamples_KeysAreDisplayStrings(t *testing.T) {
	list, ok := BuildExamples(schema.Schema{
		Examples:    []any{1.5, true, "x"},
		HasExamples: true,
		Default:     int64(7),
		HasDefault:  true,
	})
	if !ok {
		t.Fatalf("expected list")
	}
	want := []string{"1.5", "true", "x", "7"}
	if diff := cmp.Diff(want, list.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildExamples_KeysAreUnique(t *testing.T) {
	list, ok := BuildExamples(schema.Schema{
		Examples:    []any{"1", 2, "2.0", int64(3)},
		HasExamples: true,
		Default:     1.0,
		HasDefault:  true,
	})
	if !ok {
		t.Fatalf("expected list")
	}
	want := []string{"1", "2", "2.0", "3"}
	if diff := cmp.Diff(want, list.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildExamples_DoesNotMutateSchema(t *testing.T) {
	s := schema.Schema{Examples: []any{"a"}, HasExamples: true, Default: "b", HasDefault: true}
	if _, ok := BuildExamples(s); !ok {
		t.Fatalf("expected list")
	}
	if len(s.Examples) != 1 {
		t.Fatalf("schema examples mutated: %v", s.Examples)
	}
}

func TestExamplesID(t *testing.T) {
	if got := ExamplesID("root_tags"); got != "root_tags__examples" {
		t.Fatalf("unexpected examples id %q", got)
	}
	if ExamplesID("a") == ExamplesID("b") {
		t.Fatalf("examples id must differ per field")
	}
}
