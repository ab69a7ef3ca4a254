package forminput

import (
	"context"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-forminput/pkg/input"
	"github.com/goliatone/go-forminput/pkg/orchestrator"
	"github.com/goliatone/go-forminput/pkg/render"
	"github.com/goliatone/go-forminput/pkg/renderers/vanilla"
)

// FieldProps aliases render.FieldProps for callers using the root package.
type FieldProps = render.FieldProps

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// Resolution aliases orchestrator.Resolution.
type Resolution = orchestrator.Resolution

// Attributes aliases input.Attributes.
type Attributes = input.Attributes

// ExampleList aliases input.ExampleList.
type ExampleList = input.ExampleList

// Options aliases input.Options.
type Options = input.Options

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Resolve computes the native input attributes and example list for a single
// field. It is the entry point for callers that render the control
// themselves.
func Resolve(ctx context.Context, req Request, options ...orchestrator.Option) (Resolution, error) {
	return orchestrator.New(options...).Resolve(ctx, req)
}

// GenerateHTML renders the field with the vanilla HTML renderer.
func GenerateHTML(ctx context.Context, req Request, options ...orchestrator.Option) ([]byte, error) {
	req.Renderer = vanilla.Name
	return orchestrator.New(options...).Generate(ctx, req)
}

// NewNormalizer binds the change, blur and focus rules to one field.
func NewNormalizer(fieldID string, opts Options, handlers input.Handlers) input.Normalizer {
	return input.NewNormalizer(fieldID, opts, handlers)
}

// EmbeddedTemplates exposes the built-in vanilla renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices are resolved per request.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeConfig applies a fixed go-theme renderer configuration.
func WithThemeConfig(cfg *theme.RendererConfig) orchestrator.Option {
	return orchestrator.WithThemeConfig(cfg)
}
