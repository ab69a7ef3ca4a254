package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-forminput/pkg/input"
	"github.com/goliatone/go-forminput/pkg/jsonschema"
	"github.com/goliatone/go-forminput/pkg/openapi"
	"github.com/goliatone/go-forminput/pkg/render"
	"github.com/goliatone/go-forminput/pkg/renderers/tui"
	"github.com/goliatone/go-forminput/pkg/renderers/vanilla"
	"github.com/goliatone/go-forminput/pkg/schema"
	"github.com/goliatone/go-forminput/pkg/uischema"
	"github.com/goliatone/go-forminput/pkg/widgets"
)

const defaultRendererName = vanilla.Name

// Decorator adjusts field props before they are resolved. uischema.Decorator
// satisfies it.
type Decorator interface {
	Decorate(props render.FieldProps) render.FieldProps
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry. The built-in renderers are only
// registered when no registry is supplied.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithWidgetRegistry replaces the registry that picks a widget type for
// fields that do not declare one. It is shared with the built-in renderers.
func WithWidgetRegistry(registry *widgets.Registry) Option {
	return func(o *Orchestrator) {
		if registry != nil {
			o.widgets = registry
		}
	}
}

// WithLogger sets the logger shared with the built-in renderers.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithPromptDriver sets the driver used by the built-in terminal renderer.
func WithPromptDriver(driver tui.PromptDriver) Option {
	return func(o *Orchestrator) {
		o.promptDriver = driver
	}
}

// WithSchemaTransformer registers a Transformer that can mutate field props
// after the schema is loaded but before UI decorators run.
func WithSchemaTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithUIDecorators registers decorators that run against the field props
// before resolution.
func WithUIDecorators(decorators ...Decorator) Option {
	return func(o *Orchestrator) {
		if len(decorators) == 0 {
			return
		}
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithUISchemaFS supplies an fs.FS holding UI schema documents.
func WithUISchemaFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.uiSchemaFS = fsys
	}
}

// Orchestrator coordinates the pipeline from schema source to rendered
// field. It applies defaults (vanilla and tui renderers, built-in widget
// registry) while remaining open to dependency injection.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	widgets         *widgets.Registry
	logger          *zap.Logger
	promptDriver    tui.PromptDriver
	decorators      []Decorator
	uiSchemaFS      fs.FS
	transformer     Transformer
	themeSelector   theme.ThemeSelector
	themeConfig     *theme.RendererConfig
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		widgets:         widgets.NewRegistry(),
		logger:          zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one field to resolve or render. The schema comes from the
// first populated source: Schema, Document, Fragment, then Field.Schema.
type Request struct {
	// Schema is a pre-decoded fragment.
	Schema *schema.Schema

	// Document selects the fragment from an OpenAPI document, either a
	// component property (Component + Property) or a request body property
	// (OperationID + Property).
	Document    *openapi.Document
	Component   string
	OperationID string
	Property    string

	// Fragment is a raw JSON or YAML schema; Pointer optionally selects a
	// nested fragment.
	Fragment []byte
	Pointer  string

	// Field carries the caller-supplied props. When Field.ID is empty it is
	// derived from Property.
	Field render.FieldProps

	// Renderer names the renderer to use; empty falls back to the default.
	Renderer string

	// ThemeName and ThemeVariant are passed to the configured theme selector.
	ThemeName    string
	ThemeVariant string
}

// Resolution is the resolved input configuration of a field, independent of
// any renderer.
type Resolution struct {
	FieldID    string            `json:"fieldId"`
	Widget     input.WidgetType  `json:"widget,omitempty"`
	Attributes input.Attributes  `json:"attributes"`
	Examples   input.ExampleList `json:"examples,omitempty"`
	EmptyValue any               `json:"emptyValue,omitempty"`
}

// Prepare loads the schema and runs transformers, decorators and theme
// selection, returning the props a renderer would receive.
func (o *Orchestrator) Prepare(ctx context.Context, req Request) (render.FieldProps, error) {
	if ctx == nil {
		return render.FieldProps{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return render.FieldProps{}, err
	}
	if err := o.initialiseErr; err != nil {
		return render.FieldProps{}, err
	}

	props := req.Field
	if strings.TrimSpace(props.ID) == "" {
		props.ID = uischema.FieldID(req.Property)
	}
	if props.ID == "" {
		return render.FieldProps{}, errors.New("orchestrator: field id is required")
	}

	fragment, err := o.resolveSchema(ctx, req)
	if err != nil {
		return render.FieldProps{}, err
	}
	if fragment != nil {
		props.Schema = *fragment
	}

	if err := o.applyTransformer(ctx, &props); err != nil {
		return render.FieldProps{}, err
	}
	props = o.applyDecorators(props)

	if props.Theme == nil {
		cfg, err := o.themeFor(req)
		if err != nil {
			return render.FieldProps{}, err
		}
		props.Theme = cfg
	}
	return props, nil
}

// Resolve returns the native input attributes and example list for the
// requested field.
func (o *Orchestrator) Resolve(ctx context.Context, req Request) (Resolution, error) {
	props, err := o.Prepare(ctx, req)
	if err != nil {
		return Resolution{}, err
	}

	widget := o.widgets.Declare(props.Widget, props.Schema)
	examples, _ := input.BuildExamples(props.Schema)
	return Resolution{
		FieldID:    props.ID,
		Widget:     widget,
		Attributes: input.Resolve(props.ID, props.Schema, widget, props.Options),
		Examples:   examples,
		EmptyValue: props.Options.EmptyValue,
	}, nil
}

// Generate prepares the field and renders it with the requested renderer.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	props, err := o.Prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, props)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Normalizer binds the event rules to a prepared field.
func (o *Orchestrator) Normalizer(props render.FieldProps, handlers input.Handlers) input.Normalizer {
	return input.NewNormalizer(props.ID, props.Options, handlers)
}

// Renderers lists the registered renderer names.
func (o *Orchestrator) Renderers() []string {
	if o.registry == nil {
		return nil
	}
	return o.registry.Names()
}

func (o *Orchestrator) resolveSchema(ctx context.Context, req Request) (*schema.Schema, error) {
	switch {
	case req.Schema != nil:
		fragment := req.Schema.Clone()
		return &fragment, nil
	case req.Document != nil:
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var (
			fragment schema.Schema
			err      error
		)
		switch {
		case req.Component != "":
			fragment, err = req.Document.Component(req.Component, req.Property)
		case req.OperationID != "":
			fragment, err = req.Document.RequestField(req.OperationID, req.Property)
		default:
			return nil, errors.New("orchestrator: component or operation id is required with a document")
		}
		if err != nil {
			return nil, fmt.Errorf("orchestrator: load schema: %w", err)
		}
		return &fragment, nil
	case len(req.Fragment) > 0:
		fragment, err := jsonschema.ParseAt(req.Fragment, req.Pointer)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: parse schema: %w", err)
		}
		return &fragment, nil
	}
	return nil, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}
	renderer, err := o.registry.Pick(name, o.defaultRenderer)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select renderer: %w", err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDecorators(props render.FieldProps) render.FieldProps {
	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		props = decorator.Decorate(props)
	}
	return props
}

func (o *Orchestrator) applyTransformer(ctx context.Context, props *render.FieldProps) error {
	if o.transformer == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, props); err != nil {
		return fmt.Errorf("orchestrator: transform field: %w", err)
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.registry == nil {
		o.registry = render.NewRegistry()

		html, err := vanilla.New(
			vanilla.WithLogger(o.logger),
			vanilla.WithWidgetRegistry(o.widgets),
		)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return
		}
		o.registry.MustRegister(html)

		tuiOptions := []tui.Option{
			tui.WithLogger(o.logger),
			tui.WithWidgetRegistry(o.widgets),
		}
		if o.promptDriver != nil {
			tuiOptions = append(tuiOptions, tui.WithPromptDriver(o.promptDriver))
		}
		terminal, err := tui.New(tuiOptions...)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: terminal renderer: %w", err)
			return
		}
		o.registry.MustRegister(terminal)
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	if o.uiSchemaFS != nil {
		store, err := uischema.LoadFS(o.uiSchemaFS)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load ui schema: %w", err)
			return
		}
		if !store.Empty() {
			o.decorators = append(o.decorators, uischema.NewDecorator(store))
		}
	}
}
