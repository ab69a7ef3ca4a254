package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownOption is returned by option decoders when a document carries a
// key that Options does not recognise.
var ErrUnknownOption = errors.New("input: unknown option")

const stepAny = "any"

// Bound is a numeric input attribute (step, min, max). Raw holds non-numeric
// tokens such as step="any"; when Raw is empty the numeric Value applies.
type Bound struct {
	Value float64
	Raw   string
}

// Number returns a numeric bound.
func Number(value float64) *Bound {
	return &Bound{Value: value}
}

// StepAny returns the step="any" bound.
func StepAny() *Bound {
	return &Bound{Raw: stepAny}
}

// String renders the bound as an attribute value.
func (b *Bound) String() string {
	if b == nil {
		return ""
	}
	if b.Raw != "" {
		return b.Raw
	}
	return strconv.FormatFloat(b.Value, 'f', -1, 64)
}

// MarshalText implements encoding.TextMarshaler.
func (b Bound) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so bounds decode from
// either numbers or the "any" token.
func (b *Bound) UnmarshalText(text []byte) error {
	raw := strings.TrimSpace(string(text))
	if strings.EqualFold(raw, stepAny) {
		*b = Bound{Raw: stepAny}
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("input: invalid bound %q: %w", raw, err)
	}
	*b = Bound{Value: value}
	return nil
}

func (b *Bound) clone() *Bound {
	if b == nil {
		return nil
	}
	copied := *b
	return &copied
}

// Options is the per-field configuration recognised by the resolver and the
// event normalizer. The zero value is usable: no overrides and a nil empty
// value.
type Options struct {
	// EmptyValue replaces the raw value when the user clears the field.
	EmptyValue any `json:"emptyValue,omitempty" yaml:"emptyValue"`
	// InputType overrides the native input type.
	InputType string `json:"inputType,omitempty" yaml:"inputType"`
	// Step, Min and Max replace the schema-derived numeric bounds.
	Step *Bound `json:"step,omitempty" yaml:"step"`
	Min  *Bound `json:"min,omitempty" yaml:"min"`
	Max  *Bound `json:"max,omitempty" yaml:"max"`
	// Autocomplete and Accept pass through to the native element.
	Autocomplete string `json:"autocomplete,omitempty" yaml:"autocomplete"`
	Accept       string `json:"accept,omitempty" yaml:"accept"`
	// LabelShrink, when set, wins over the shrink set computed from the
	// widget type.
	LabelShrink *bool `json:"labelShrink,omitempty" yaml:"labelShrink"`
	// DisableStepAny turns off the step="any" default applied to number
	// schemas rendered without a declared widget type.
	DisableStepAny bool `json:"disableStepAny,omitempty" yaml:"disableStepAny"`
}

// Clone returns a copy that shares no pointers with o.
func (o Options) Clone() Options {
	cloned := o
	cloned.Step = o.Step.clone()
	cloned.Min = o.Min.clone()
	cloned.Max = o.Max.clone()
	if o.LabelShrink != nil {
		value := *o.LabelShrink
		cloned.LabelShrink = &value
	}
	return cloned
}

// Bool returns a pointer to value, used for the LabelShrink override.
func Bool(value bool) *bool {
	return &value
}
