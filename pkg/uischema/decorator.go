package uischema

import (
	"strings"

	"github.com/goliatone/go-forminput/pkg/input"
	"github.com/goliatone/go-forminput/pkg/render"
)

// Decorator applies UI document settings to field props.
type Decorator struct {
	store *Store
}

// NewDecorator builds a Decorator backed by the provided store. When store is
// nil or empty, the decorator becomes a no-op.
func NewDecorator(store *Store) *Decorator {
	return &Decorator{store: store}
}

// Decorate fills props from the matching field configuration. Values already
// set on props win; boolean flags are OR-ed so a document can only switch
// them on.
func (d *Decorator) Decorate(props render.FieldProps) render.FieldProps {
	if d == nil || d.store.Empty() {
		return props
	}
	cfg, ok := d.store.Field(props.ID)
	if !ok {
		return props
	}

	if strings.TrimSpace(string(props.Widget)) == "" {
		props.Widget = input.WidgetType(strings.TrimSpace(cfg.Widget))
	}
	props.Label = firstNonEmpty(props.Label, cfg.Label)
	props.LabelKey = firstNonEmpty(props.LabelKey, cfg.LabelKey)
	props.Placeholder = firstNonEmpty(props.Placeholder, cfg.Placeholder)
	props.PlaceholderKey = firstNonEmpty(props.PlaceholderKey, cfg.PlaceholderKey)
	props.ClassName = strings.TrimSpace(strings.Join([]string{cfg.CSSClass, props.ClassName}, " "))

	props.HideLabel = props.HideLabel || cfg.HideLabel
	props.Required = props.Required || cfg.Required
	props.Readonly = props.Readonly || cfg.Readonly
	props.Disabled = props.Disabled || cfg.Disabled
	props.Autofocus = props.Autofocus || cfg.Autofocus

	props.Options = mergeOptions(cfg.Options, props.Options)
	return props
}

// mergeOptions layers override on top of base field by field.
func mergeOptions(base, override input.Options) input.Options {
	out := base.Clone()
	override = override.Clone()
	if override.EmptyValue != nil {
		out.EmptyValue = override.EmptyValue
	}
	out.InputType = firstNonEmpty(override.InputType, out.InputType)
	if override.Step != nil {
		out.Step = override.Step
	}
	if override.Min != nil {
		out.Min = override.Min
	}
	if override.Max != nil {
		out.Max = override.Max
	}
	out.Autocomplete = firstNonEmpty(override.Autocomplete, out.Autocomplete)
	out.Accept = firstNonEmpty(override.Accept, out.Accept)
	if override.LabelShrink != nil {
		out.LabelShrink = override.LabelShrink
	}
	out.DisableStepAny = out.DisableStepAny || override.DisableStepAny
	return out
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
