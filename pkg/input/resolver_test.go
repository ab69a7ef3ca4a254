package input

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-forminput/pkg/schema"
)

func TestResolve_ListIDFollowsExamples(t *testing.T) {
	cases := []struct {
		name   string
		schema schema.Schema
		want   string
	}{
		{
			name:   "examples present",
			schema: schema.Schema{Type: schema.TypeString, Examples: []any{"a"}, HasExamples: true},
			want:   "root_name__examples",
		},
		{
			name:   "examples absent",
			schema: schema.Schema{Type: schema.TypeString},
			want:   "",
		},
		{
			name:   "empty examples",
			schema: schema.Schema{Type: schema.TypeString, Examples: []any{}, HasExamples: true},
			want:   "",
		},
		{
			name:   "default alone",
			schema: schema.Schema{Type: schema.TypeString, Default: "x", HasDefault: true},
			want:   "",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			attrs := Resolve("root_name", tc.schema, WidgetText, Options{})
			if attrs.ListID != tc.want {
				t.Fatalf("list id: want %q, got %q", tc.want, attrs.ListID)
			}
			if attrs.HasList() != (tc.want != "") {
				t.Fatalf("HasList mismatch for %q", attrs.ListID)
			}
		})
	}
}

func TestResolve_LabelShrinkSet(t *testing.T) {
	shrinking := []WidgetType{WidgetDate, WidgetDateTimeLocal, WidgetFile, WidgetTime}
	for _, widget := range shrinking {
		attrs := Resolve("f", schema.Schema{Type: schema.TypeString}, widget, Options{})
		if !attrs.LabelShrink {
			t.Fatalf("expected %q to shrink label", widget)
		}
	}

	flat := []WidgetType{WidgetText, WidgetNumber, WidgetEmail, WidgetColor, "", "made-up"}
	for _, widget := range flat {
		attrs := Resolve("f", schema.Schema{Type: schema.TypeString}, widget, Options{})
		if attrs.LabelShrink {
			t.Fatalf("expected %q not to shrink label", widget)
		}
	}
}

func TestResolve_LabelShrinkOverrideWins(t *testing.T) {
	attrs := Resolve("f", schema.Schema{}, WidgetDate, Options{LabelShrink: Bool(false)})
	if attrs.LabelShrink {
		t.Fatalf("explicit override should disable shrink for date")
	}

	attrs = Resolve("f", schema.Schema{}, WidgetText, Options{LabelShrink: Bool(true)})
	if !attrs.LabelShrink {
		t.Fatalf("explicit override should enable shrink for text")
	}
}

func TestResolve_AdornmentFallsBackToString(t *testing.T) {
	cases := map[WidgetType]AdornmentKind{
		WidgetNumber:   AdornmentNumber,
		WidgetText:     AdornmentString,
		WidgetDate:     AdornmentString,
		"unheard-of":   AdornmentString,
		"  NUMBER  ":   AdornmentNumber,
		WidgetPassword: AdornmentString,
	}
	for widget, want := range cases {
		attrs := Resolve("f", schema.Schema{}, widget, Options{})
		if attrs.Adornment != want {
			t.Fatalf("adornment for %q: want %q, got %q", widget, want, attrs.Adornment)
		}
	}
}

func TestResolve_InputTypeOverrideDrivesAdornment(t *testing.T) {
	attrs := Resolve("f", schema.Schema{Type: schema.TypeString}, WidgetText, Options{InputType: "number"})
	if attrs.Type != WidgetNumber || attrs.Adornment != AdornmentNumber {
		t.Fatalf("expected number override, got type=%q adornment=%q", attrs.Type, attrs.Adornment)
	}
}

func TestResolve_NumericBounds(t *testing.T) {
	s := schema.Schema{
		Type:       schema.TypeNumber,
		Minimum:    schema.Float(0),
		Maximum:    schema.Float(10),
		MultipleOf: schema.Float(0.5),
	}

	attrs := Resolve("f", s, WidgetNumber, Options{})
	if diff := cmp.Diff(Number(0.5), attrs.Step); diff != "" {
		t.Fatalf("step mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Number(0), attrs.Min); diff != "" {
		t.Fatalf("zero minimum should be kept (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Number(10), attrs.Max); diff != "" {
		t.Fatalf("max mismatch (-want +got):\n%s", diff)
	}

	attrs = Resolve("f", s, WidgetNumber, Options{Min: Number(2), Step: StepAny()})
	if attrs.Min.String() != "2" || attrs.Step.String() != "any" || attrs.Max.String() != "10" {
		t.Fatalf("option overrides not applied: min=%s step=%s max=%s", attrs.Min, attrs.Step, attrs.Max)
	}
}

func TestResolve_UndeclaredWidgetUsesSchemaType(t *testing.T) {
	attrs := Resolve("f", schema.Schema{Type: schema.TypeNumber}, "", Options{})
	if attrs.Type != WidgetNumber || attrs.Step.String() != "any" {
		t.Fatalf("number schema: got type=%q step=%s", attrs.Type, attrs.Step)
	}

	attrs = Resolve("f", schema.Schema{Type: schema.TypeNumber}, "", Options{DisableStepAny: true})
	if attrs.Step != nil {
		t.Fatalf("expected no step when step any is disabled, got %s", attrs.Step)
	}

	attrs = Resolve("f", schema.Schema{Type: schema.TypeInteger}, "", Options{})
	if attrs.Type != WidgetNumber || attrs.Step.String() != "1" {
		t.Fatalf("integer schema: got type=%q step=%s", attrs.Type, attrs.Step)
	}

	attrs = Resolve("f", schema.Schema{Type: schema.TypeString}, "", Options{})
	if attrs.Type != WidgetText {
		t.Fatalf("string schema: got type=%q", attrs.Type)
	}
}

func TestResolve_DeclaredWidgetSkipsStepDefault(t *testing.T) {
	attrs := Resolve("f", schema.Schema{Type: schema.TypeNumber}, WidgetNumber, Options{})
	if attrs.Step != nil {
		t.Fatalf("declared widget should not receive a default step, got %s", attrs.Step)
	}
}

func TestResolve_DescribedBy(t *testing.T) {
	attrs := Resolve("f", schema.Schema{Examples: []any{"a"}, HasExamples: true}, WidgetText, Options{})
	want := []string{"f__error", "f__description", "f__help", "f__examples"}
	if diff := cmp.Diff(want, attrs.DescribedBy); diff != "" {
		t.Fatalf("describedby mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	s := schema.Schema{
		Type:        schema.TypeInteger,
		Minimum:     schema.Float(1),
		Examples:    []any{1, 2},
		HasExamples: true,
	}
	opts := Options{Max: Number(9), Autocomplete: "off"}

	first := Resolve("qty", s, "", opts)
	second := Resolve("qty", s, "", opts)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("resolve is not idempotent (-first +second):\n%s", diff)
	}
}

func TestResolve_DoesNotAliasOptionBounds(t *testing.T) {
	opts := Options{Min: Number(1)}
	attrs := Resolve("f", schema.Schema{}, WidgetNumber, opts)
	attrs.Min.Value = 99
	if opts.Min.Value != 1 {
		t.Fatalf("resolved attributes must not share option pointers")
	}
}

func TestScenario_NumberWidgetWithExamples(t *testing.T) {
	s := schema.Schema{
		Type:        schema.TypeNumber,
		Examples:    []any{1.0, 2.0},
		HasExamples: true,
		Default:     2.0,
		HasDefault:  true,
	}
	opts := Options{EmptyValue: nil}

	attrs := Resolve("root_amount", s, WidgetNumber, opts)
	if attrs.ListID == "" {
		t.Fatalf("expected list id")
	}
	if attrs.Adornment != AdornmentNumber {
		t.Fatalf("expected number adornment, got %q", attrs.Adornment)
	}
	if attrs.LabelShrink {
		t.Fatalf("number widget must not shrink label")
	}

	list, ok := BuildExamples(s)
	if !ok {
		t.Fatalf("expected example list")
	}
	if diff := cmp.Diff([]any{1.0, 2.0}, list.Values()); diff != "" {
		t.Fatalf("examples mismatch (-want +got):\n%s", diff)
	}

	var got []any
	n := NewNormalizer("root_amount", opts, Handlers{OnChange: func(v any) { got = append(got, v) }})
	n.OnChange(ChangeEvent{Value: ""})
	n.OnChange(ChangeEvent{Value: "5"})
	if diff := cmp.Diff([]any{nil, "5"}, got); diff != "" {
		t.Fatalf("change values mismatch (-want +got):\n%s", diff)
	}
}

func TestScenario_DateWidgetWithoutExamples(t *testing.T) {
	s := schema.Schema{Type: schema.TypeString}

	attrs := Resolve("root_when", s, WidgetDate, Options{})
	if attrs.ListID != "" {
		t.Fatalf("expected no list id, got %q", attrs.ListID)
	}
	if !attrs.LabelShrink {
		t.Fatalf("date widget must shrink label")
	}
	if attrs.Adornment != AdornmentString {
		t.Fatalf("expected string adornment, got %q", attrs.Adornment)
	}
	if _, ok := BuildExamples(s); ok {
		t.Fatalf("expected no example list")
	}
}
