package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-forminput/pkg/input"
	"github.com/goliatone/go-forminput/pkg/render"
	"github.com/goliatone/go-forminput/pkg/widgets"
)

// Name is the registry identifier of the terminal renderer.
const Name = "tui"

// Renderer implements render.Renderer for terminal-driven sessions. It
// prompts for one field and reports the resulting canonical change.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	theme        Theme
	logger       *zap.Logger
	widgets      *widgets.Registry
	handlers     input.Handlers
	override     input.ChangeOverride
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver:       NewSurveyDriver(nil),
		outputFormat: OutputFormatJSON,
		logger:       zap.NewNop(),
		widgets:      widgets.NewRegistry(),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	switch r.outputFormat {
	case OutputFormatJSON, OutputFormatFormURLEncoded, OutputFormatPrettyText:
	default:
		return nil, fmt.Errorf("tui: unsupported output format %q", r.outputFormat)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return Name
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render prompts for the field and serializes the canonical change.
func (r *Renderer) Render(ctx context.Context, props render.FieldProps) ([]byte, error) {
	session, err := r.Prompt(ctx, props)
	if err != nil {
		return nil, err
	}
	change, _ := session.Change()
	return r.serialize(change)
}

// Prompt runs the focus, input, change and blur sequence for one field and
// returns the recorded session. Disabled and read-only fields are shown but
// not prompted.
func (r *Renderer) Prompt(ctx context.Context, props render.FieldProps) (*Session, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}
	if strings.TrimSpace(props.ID) == "" {
		return nil, errors.New("tui: field id is required")
	}

	view := render.NewView(props, r.widgets)
	session := NewSession(view.ID, props.Value)

	if view.Disabled {
		msg := fmt.Sprintf("%s%s: %s", r.theme.InfoPrefix, message(view), view.Value)
		if err := r.driver.Info(ctx, msg); err != nil {
			return nil, err
		}
		return session, nil
	}

	normalizer := input.NewNormalizer(view.ID, props.Options, session.Handlers(r.handlers))
	if r.override != nil {
		normalizer = normalizer.WithOverride(r.override)
	}

	normalizer.OnFocus(input.FocusEvent{Value: view.Value})
	r.logger.Debug("field focused", zap.String("field", view.ID))

	for _, msg := range view.Errors {
		if err := r.driver.Info(ctx, r.theme.ErrorPrefix+msg); err != nil {
			return nil, err
		}
	}

	// The current value is shown, not used as a default, so an empty answer
	// still clears the field.
	cfg := InputConfig{
		Message:     message(view),
		Help:        help(view),
		Suggestions: view.Examples.Keys(),
		Validator:   validator(view),
	}

	var (
		answer string
		err    error
	)
	if view.Attributes.Type == input.WidgetPassword {
		answer, err = r.driver.Password(ctx, cfg)
	} else {
		answer, err = r.driver.Input(ctx, cfg)
	}
	if err != nil {
		return nil, err
	}

	normalizer.OnChange(input.ChangeEvent{Value: answer})
	normalizer.OnBlur(input.FocusEvent{Value: answer})
	r.logger.Debug("field changed",
		zap.String("field", view.ID),
		zap.Bool("empty", answer == ""),
	)
	return session, nil
}

func (r *Renderer) serialize(change input.CanonicalChangeEvent) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		values := url.Values{}
		values.Set(change.FieldID, input.FormatValue(change.Value))
		return []byte(values.Encode()), nil
	case OutputFormatPrettyText:
		return []byte(fmt.Sprintf("%s = %s\n", change.FieldID, input.FormatValue(change.Value))), nil
	default:
		payload, err := json.Marshal(change)
		if err != nil {
			return nil, fmt.Errorf("tui: encode change: %w", err)
		}
		return payload, nil
	}
}

func message(view render.View) string {
	label := strings.TrimSpace(view.Label)
	if label == "" {
		label = view.ID
	}
	if view.Required {
		label += " *"
	}
	return label
}

func help(view render.View) string {
	text := view.Description
	if text == "" {
		text = view.Placeholder
	}
	if view.Value == "" {
		return text
	}
	current := "current: " + view.Value
	if text == "" {
		return current
	}
	return text + " (" + current + ")"
}

// validator rejects answers the native control would refuse: missing required
// values and, for number inputs, non-numeric text or values outside min/max.
func validator(view render.View) func(string) error {
	attrs := view.Attributes
	required := view.Required
	return func(value string) error {
		if value == "" {
			if required {
				return ErrRequired
			}
			return nil
		}
		if !attrs.Numeric() {
			return nil
		}
		number, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("tui: %q is not a number", value)
		}
		if attrs.Min != nil && attrs.Min.Raw == "" && number < attrs.Min.Value {
			return fmt.Errorf("tui: must be at least %s", attrs.Min)
		}
		if attrs.Max != nil && attrs.Max.Raw == "" && number > attrs.Max.Value {
			return fmt.Errorf("tui: must be at most %s", attrs.Max)
		}
		return nil
	}
}
