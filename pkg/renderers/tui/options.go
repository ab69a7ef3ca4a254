package tui

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-forminput/pkg/input"
	"github.com/goliatone/go-forminput/pkg/widgets"
)

// OutputFormat controls how the collected change is serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits the canonical change event as JSON.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatFormURLEncoded emits application/x-www-form-urlencoded payloads.
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatPrettyText emits a human-friendly text summary.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// Theme captures optional formatting hints the driver can apply when printing
// messages.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithLogger sets the logger used for event tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithWidgetRegistry overrides the registry used to pick widget types for
// fields that do not declare one.
func WithWidgetRegistry(registry *widgets.Registry) Option {
	return func(r *Renderer) {
		if registry != nil {
			r.widgets = registry
		}
	}
}

// WithHandlers forwards the normalized field events to the caller in
// addition to the renderer's own bookkeeping.
func WithHandlers(handlers input.Handlers) Option {
	return func(r *Renderer) {
		r.handlers = handlers
	}
}

// WithChangeOverride replaces change normalization for every field the
// renderer prompts. The override receives the raw answer; the renderer then
// reports no change value.
func WithChangeOverride(override input.ChangeOverride) Option {
	return func(r *Renderer) {
		r.override = override
	}
}
