package input

// ChangeEvent is the raw notification a native control raises when its value
// changes. Value is always the control's string value.
type ChangeEvent struct {
	Value string
}

// FocusEvent is the raw notification raised on focus and blur.
type FocusEvent struct {
	Value string
}

// CanonicalChangeEvent is the (fieldID, value) record handed to the form-state
// engine. Value is either the raw string or the configured empty value.
type CanonicalChangeEvent struct {
	FieldID string `json:"fieldId"`
	Value   any    `json:"value"`
}

// Handlers are the form-state engine callbacks. Nil handlers are skipped.
type Handlers struct {
	OnChange func(value any)
	OnBlur   func(fieldID string, value any)
	OnFocus  func(fieldID string, value any)
}

// ChangeOverride fully replaces change normalization. It receives the raw
// event and owns the resulting notification, so the empty-value rule does not
// apply.
type ChangeOverride func(event ChangeEvent)

// NormalizeChange applies the empty-value rule: a cleared field ("") becomes
// emptyValue, any other raw value passes through unchanged.
func NormalizeChange(raw string, emptyValue any) any {
	if raw == "" {
		return emptyValue
	}
	return raw
}

// NormalizeFocus shapes a blur or focus event into the (fieldID, value) pair.
// The raw value is never substituted.
func NormalizeFocus(fieldID, raw string) (string, any) {
	return fieldID, raw
}

// Normalizer binds the event rules to one field.
type Normalizer struct {
	FieldID  string
	Options  Options
	Handlers Handlers
	Override ChangeOverride
}

// NewNormalizer constructs a Normalizer for fieldID.
func NewNormalizer(fieldID string, opts Options, handlers Handlers) Normalizer {
	return Normalizer{
		FieldID:  fieldID,
		Options:  opts,
		Handlers: handlers,
	}
}

// WithOverride returns a copy of n whose change path is replaced by override.
func (n Normalizer) WithOverride(override ChangeOverride) Normalizer {
	n.Override = override
	return n
}

// Canonical returns the canonical record for a raw change event without
// invoking any callback.
func (n Normalizer) Canonical(event ChangeEvent) CanonicalChangeEvent {
	return CanonicalChangeEvent{
		FieldID: n.FieldID,
		Value:   NormalizeChange(event.Value, n.Options.EmptyValue),
	}
}

// OnChange dispatches a raw change event. When an override is present it
// receives the event untouched and the OnChange handler is not called.
func (n Normalizer) OnChange(event ChangeEvent) {
	if n.Override != nil {
		n.Override(event)
		return
	}
	if n.Handlers.OnChange == nil {
		return
	}
	n.Handlers.OnChange(n.Canonical(event).Value)
}

// OnBlur forwards a blur event as (fieldID, raw value).
func (n Normalizer) OnBlur(event FocusEvent) {
	if n.Handlers.OnBlur == nil {
		return
	}
	n.Handlers.OnBlur(NormalizeFocus(n.FieldID, event.Value))
}

// OnFocus forwards a focus event as (fieldID, raw value).
func (n Normalizer) OnFocus(event FocusEvent) {
	if n.Handlers.OnFocus == nil {
		return
	}
	n.Handlers.OnFocus(NormalizeFocus(n.FieldID, event.Value))
}
