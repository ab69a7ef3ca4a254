package input

import (
	"strings"

	"github.com/goliatone/go-forminput/pkg/schema"
)

// Attributes is the concrete native input configuration derived for a field.
// ListID is empty when the schema carries no examples; LabelShrink follows
// the widget type unless Options.LabelShrink overrides it.
type Attributes struct {
	Type         WidgetType    `json:"type"`
	Step         *Bound        `json:"step,omitempty"`
	Min          *Bound        `json:"min,omitempty"`
	Max          *Bound        `json:"max,omitempty"`
	ListID       string        `json:"list,omitempty"`
	LabelShrink  bool          `json:"labelShrink"`
	Adornment    AdornmentKind `json:"adornment"`
	Autocomplete string        `json:"autocomplete,omitempty"`
	Accept       string        `json:"accept,omitempty"`
	DescribedBy  []string      `json:"describedBy,omitempty"`
}

// HasList reports whether the control is tied to an examples list.
func (a Attributes) HasList() bool {
	return a.ListID != ""
}

// Numeric reports whether the control renders as a native number input.
func (a Attributes) Numeric() bool {
	return a.Type == WidgetNumber
}

// Resolve computes the native input attributes for the field identified by
// id. widget is the caller-declared type; an empty widget lets the schema type
// pick between text and number.
func Resolve(id string, s schema.Schema, widget WidgetType, opts Options) Attributes {
	props := translateInputProps(s, widget, opts)

	attrs := Attributes{
		Type:         props.nativeType,
		Step:         props.step,
		Min:          props.min,
		Max:          props.max,
		Autocomplete: props.autocomplete,
		Accept:       props.accept,
	}

	_, hasExamples := BuildExamples(s)
	if hasExamples {
		attrs.ListID = ExamplesID(id)
	}
	attrs.DescribedBy = AriaDescribedBy(id, hasExamples)

	attrs.LabelShrink = ShrinksLabel(widget)
	if opts.LabelShrink != nil {
		attrs.LabelShrink = *opts.LabelShrink
	}

	attrs.Adornment = AdornmentFor(attrs.Type)
	return attrs
}

// inputProps is the schema-to-input-props translation the resolver starts
// from. It never carries a list attribute: the examples list id is owned by
// Resolve.
type inputProps struct {
	nativeType   WidgetType
	step         *Bound
	min          *Bound
	max          *Bound
	autocomplete string
	accept       string
}

func translateInputProps(s schema.Schema, widget WidgetType, opts Options) inputProps {
	declared := widget.normalized()

	props := inputProps{nativeType: declared}
	if props.nativeType == "" {
		props.nativeType = WidgetText
	}
	props.step, props.min, props.max = rangeSpec(s)

	if override := WidgetType(strings.TrimSpace(opts.InputType)); override != "" {
		props.nativeType = override.normalized()
	} else if declared == "" {
		switch s.Type {
		case schema.TypeNumber:
			props.nativeType = WidgetNumber
			if props.step == nil && !opts.DisableStepAny {
				props.step = StepAny()
			}
		case schema.TypeInteger:
			props.nativeType = WidgetNumber
			if props.step == nil {
				props.step = Number(1)
			}
		}
	}

	if opts.Step != nil {
		props.step = opts.Step.clone()
	}
	if opts.Min != nil {
		props.min = opts.Min.clone()
	}
	if opts.Max != nil {
		props.max = opts.Max.clone()
	}

	props.autocomplete = strings.TrimSpace(opts.Autocomplete)
	props.accept = strings.TrimSpace(opts.Accept)
	return props
}

// rangeSpec reads step/min/max from the schema. Zero is a valid bound.
func rangeSpec(s schema.Schema) (step, min, max *Bound) {
	if s.MultipleOf != nil && *s.MultipleOf != 0 {
		step = Number(*s.MultipleOf)
	}
	if s.Minimum != nil {
		min = Number(*s.Minimum)
	}
	if s.Maximum != nil {
		max = Number(*s.Maximum)
	}
	return step, min, max
}
