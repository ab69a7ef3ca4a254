package render

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-forminput/pkg/input"
	"github.com/goliatone/go-forminput/pkg/schema"
)

// Renderer turns a single input field into a byte representation (HTML,
// terminal transcript, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, props FieldProps) ([]byte, error)
}

// FieldProps carries everything a renderer needs to draw one input field.
type FieldProps struct {
	ID          string
	Label       string
	HideLabel   bool
	Placeholder string
	Required    bool
	Readonly    bool
	Disabled    bool
	Autofocus   bool
	Value       any
	RawErrors   []string
	ClassName   string

	// LabelKey and PlaceholderKey are translated through the configured
	// Translator; the plain strings act as fallbacks.
	LabelKey       string
	PlaceholderKey string
	Locale         string

	Widget  input.WidgetType
	Schema  schema.Schema
	Options input.Options

	// Theme, when set, replaces the renderer's configured theme for this
	// field only.
	Theme *theme.RendererConfig
}
