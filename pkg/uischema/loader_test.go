package uischema_test

import (
	"errors"
	"os"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-forminput/pkg/input"
	"github.com/goliatone/go-forminput/pkg/render"
	"github.com/goliatone/go-forminput/pkg/uischema"
)

func loadStore(t *testing.T) *uischema.Store {
	t.Helper()
	store, err := uischema.LoadFS(os.DirFS("testdata"))
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	return store
}

func TestLoadFS_YAMLAndJSON(t *testing.T) {
	store := loadStore(t)

	want := []string{"root_amount", "root_born", "root_contact_email"}
	if diff := cmp.Diff(want, store.FieldIDs()); diff != "" {
		t.Fatalf("field ids mismatch (-want +got):\n%s", diff)
	}

	amount, ok := store.Field("amount")
	if !ok {
		t.Fatalf("amount field missing")
	}
	if amount.OriginalPath != "amount" {
		t.Fatalf("original path mismatch: %s", amount.OriginalPath)
	}
	if amount.Options.EmptyValue != 0 {
		t.Fatalf("expected empty value 0, got %#v", amount.Options.EmptyValue)
	}
	if amount.Options.Step.String() != "0.01" || amount.Options.Min.String() != "0" {
		t.Fatalf("unexpected bounds step=%s min=%s", amount.Options.Step, amount.Options.Min)
	}
	if amount.Options.LabelShrink == nil || !*amount.Options.LabelShrink {
		t.Fatalf("expected label shrink override")
	}

	email, ok := store.Field("root_contact_email")
	if !ok {
		t.Fatalf("contact email field missing")
	}
	if email.Options.Autocomplete != "email" || email.Options.Step.String() != "any" {
		t.Fatalf("unexpected email options %+v", email.Options)
	}
}

func TestParse_UnknownOption(t *testing.T) {
	doc := []byte("fields:\n  amount:\n    options:\n      emptyvalue: 0\n")

	_, err := uischema.Parse(doc, "inline.yaml")
	if !errors.Is(err, input.ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
}

func TestParse_InvalidBound(t *testing.T) {
	doc := []byte("fields:\n  amount:\n    options:\n      step: fast\n")

	if _, err := uischema.Parse(doc, "inline.yaml"); err == nil {
		t.Fatalf("expected invalid bound error")
	}
}

func TestParse_EmptyAndDuplicate(t *testing.T) {
	if _, err := uischema.Parse([]byte("  \n"), "empty.yaml"); err == nil {
		t.Fatalf("expected empty document error")
	}

	files := fstest.MapFS{
		"a.yaml": {Data: []byte("fields:\n  amount:\n    label: A\n")},
		"b.yaml": {Data: []byte("fields:\n  root_amount:\n    label: B\n")},
	}
	if _, err := uischema.LoadFS(files); err == nil {
		t.Fatalf("expected duplicate field error")
	}
}

func TestLoadFS_NilFS(t *testing.T) {
	store, err := uischema.LoadFS(nil)
	if err != nil {
		t.Fatalf("load nil fs: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}
}

func TestFieldID(t *testing.T) {
	cases := map[string]string{
		"amount":         "root_amount",
		"root_amount":    "root_amount",
		"address.zip":    "root_address_zip",
		"address[zip]":   "root_address_zip",
		"tags[0]":        "root_tags_0",
		" ":              "",
		"root":           "root",
		"rooted.value":   "root_rooted_value",
		"items[].amount": "root_items_amount",
	}
	for in, want := range cases {
		if got := uischema.FieldID(in); got != want {
			t.Fatalf("FieldID(%q): want %q, got %q", in, want, got)
		}
	}
}

func TestDecorator(t *testing.T) {
	decorator := uischema.NewDecorator(loadStore(t))

	got := decorator.Decorate(render.FieldProps{
		ID:        "root_amount",
		Label:     "Total",
		ClassName: "wide",
		Options:   input.Options{Min: input.Number(5)},
	})

	if got.Label != "Total" {
		t.Fatalf("explicit label should win, got %q", got.Label)
	}
	if got.Placeholder != "0.00" || !got.Required {
		t.Fatalf("document settings not applied: %+v", got)
	}
	if got.ClassName != "money wide" {
		t.Fatalf("unexpected class name %q", got.ClassName)
	}
	if got.Options.Min.String() != "5" || got.Options.Step.String() != "0.01" {
		t.Fatalf("unexpected merged options %+v", got.Options)
	}
	if got.Options.EmptyValue != 0 {
		t.Fatalf("expected empty value from document, got %#v", got.Options.EmptyValue)
	}

	born := decorator.Decorate(render.FieldProps{ID: "root_born"})
	if born.Widget != input.WidgetDate || !born.HideLabel {
		t.Fatalf("unexpected born props %+v", born)
	}

	untouched := render.FieldProps{ID: "root_other", Label: "Other"}
	if diff := cmp.Diff(untouched, decorator.Decorate(untouched)); diff != "" {
		t.Fatalf("unknown fields should pass through (-want +got):\n%s", diff)
	}
}
