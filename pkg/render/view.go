package render

import (
	"slices"
	"strings"

	"github.com/goliatone/go-forminput/pkg/input"
	"github.com/goliatone/go-forminput/pkg/widgets"
)

// View is the render-ready projection of FieldProps shared by the renderers.
type View struct {
	ID          string
	Label       string
	Description string
	Placeholder string
	ClassName   string
	Value       string

	Required  bool
	Readonly  bool
	Disabled  bool
	Autofocus bool
	Invalid   bool
	Errors    []string

	Attributes  input.Attributes
	Examples    input.ExampleList
	DescribedBy string

	Monospace    bool
	PreventWheel bool
}

// NewView resolves props into a View. The widget registry picks a widget type
// from the schema when props.Widget is empty; a nil registry skips that step.
func NewView(props FieldProps, registry *widgets.Registry) View {
	id := strings.TrimSpace(props.ID)
	widget := registry.Declare(props.Widget, props.Schema)
	attrs := input.Resolve(id, props.Schema, widget, props.Options)

	label := props.Label
	if strings.TrimSpace(label) == "" {
		label = props.Schema.Title
	}

	errs := fieldErrors(props.RawErrors)
	view := View{
		ID:          id,
		Label:       input.LabelValue(label, props.HideLabel),
		Description: props.Schema.Description,
		Placeholder: props.Placeholder,
		ClassName:   strings.TrimSpace(props.ClassName),
		Value:       input.DisplayValue(props.Value),
		Required:    props.Required,
		Readonly:    props.Readonly,
		Disabled:    props.Disabled || props.Readonly,
		Autofocus:   props.Autofocus,
		Invalid:     len(errs) > 0,
		Errors:      errs,
		Attributes:  attrs,
		DescribedBy: strings.Join(attrs.DescribedBy, " "),
	}
	if examples, ok := input.BuildExamples(props.Schema); ok {
		view.Examples = examples
	}
	if attrs.Numeric() {
		view.Monospace = true
		view.PreventWheel = true
	}
	return view
}

// fieldErrors trims messages and drops blanks and repeats, keeping the first
// occurrence order. The result is nil when nothing remains.
func fieldErrors(raw []string) []string {
	var out []string
	for _, message := range raw {
		message = strings.TrimSpace(message)
		if message == "" || slices.Contains(out, message) {
			continue
		}
		out = append(out, message)
	}
	return out
}
