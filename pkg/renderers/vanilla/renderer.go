package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-forminput/pkg/input"
	"github.com/goliatone/go-forminput/pkg/render"
	rendertemplate "github.com/goliatone/go-forminput/pkg/render/template"
	gotemplate "github.com/goliatone/go-forminput/pkg/render/template/gotemplate"
	"github.com/goliatone/go-forminput/pkg/widgets"
)

// Name is the registry identifier of the HTML renderer.
const Name = "vanilla"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	theme            *theme.RendererConfig
	logger           *zap.Logger
	widgets          *widgets.Registry
	icons            map[input.AdornmentKind]string
	translator       render.Translator
	onMissing        render.MissingTranslationHandler
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTheme applies a go-theme renderer configuration. The "forms.input"
// partial replaces the built-in template and the theme tokens extend the
// chrome classes.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// WithLogger sets the logger used for fail-open diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithWidgetRegistry overrides the registry used to pick widget types for
// fields that do not declare one.
func WithWidgetRegistry(registry *widgets.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.widgets = registry
		}
	}
}

// WithIcon replaces the SVG shown for an adornment kind. Markup is sanitised;
// an empty result removes the icon.
func WithIcon(kind input.AdornmentKind, svg string) Option {
	return func(cfg *config) {
		if cfg.icons == nil {
			cfg.icons = make(map[input.AdornmentKind]string)
		}
		cfg.icons[kind] = svg
	}
}

// WithTranslator localises LabelKey/PlaceholderKey before rendering.
func WithTranslator(t render.Translator, onMissing render.MissingTranslationHandler) Option {
	return func(cfg *config) {
		cfg.translator = t
		cfg.onMissing = onMissing
	}
}

// Renderer renders a single native input field as HTML.
type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	theme      *theme.RendererConfig
	logger     *zap.Logger
	widgets    *widgets.Registry
	icons      *iconSet
	translator render.Translator
	onMissing  render.MissingTranslationHandler
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	if cfg.widgets == nil {
		cfg.widgets = widgets.NewRegistry()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	icons := newIconSet()
	for kind, svg := range cfg.icons {
		icons.set(kind, svg)
	}

	return &Renderer{
		templates:  renderer,
		theme:      cfg.theme,
		logger:     cfg.logger,
		widgets:    cfg.widgets,
		icons:      icons,
		translator: cfg.translator,
		onMissing:  cfg.onMissing,
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the field markup: label, adornment, input and the examples
// datalist when the schema carries examples.
func (r *Renderer) Render(ctx context.Context, props render.FieldProps) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r == nil || r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if strings.TrimSpace(props.ID) == "" {
		return nil, fmt.Errorf("vanilla renderer: field id is required")
	}

	if r.translator != nil || r.onMissing != nil {
		props = render.Localize(props, r.translator, r.onMissing)
	}
	themeCfg := r.theme
	if props.Theme != nil {
		themeCfg = props.Theme
	}
	view := render.NewView(props, r.widgets)
	if !view.Attributes.Type.Known() {
		r.logger.Debug("unknown input type passed through",
			zap.String("field", view.ID),
			zap.String("type", string(view.Attributes.Type)),
		)
	}

	name := templateName(themeCfg)
	result, err := r.templates.RenderTemplate(name, map[string]any{
		"field":   r.fieldData(view, themeCfg),
		"classes": chromeClasses(),
		"theme":   themeData(themeCfg),
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template %q: %w", name, err)
	}
	return []byte(result), nil
}

func templateName(cfg *theme.RendererConfig) string {
	if cfg != nil {
		if partial := strings.TrimSpace(cfg.Partials[ThemePartialKey]); partial != "" {
			return partial
		}
	}
	return InputTemplate
}

func (r *Renderer) fieldData(view render.View, cfg *theme.RendererConfig) map[string]any {
	attrs := view.Attributes

	icon, ok := r.icons.get(attrs.Adornment)
	if !ok {
		r.logger.Debug("no icon for adornment",
			zap.String("field", view.ID),
			zap.String("adornment", string(attrs.Adornment)),
		)
	}

	inputClasses := []string{string(ClassInput), token(cfg, TokenInputClass)}
	if view.Monospace {
		inputClasses = append(inputClasses, string(ClassMonospace))
	}
	wrapperClasses := []string{string(ClassField), token(cfg, TokenFieldClass), view.ClassName}
	if view.Invalid {
		wrapperClasses = append(wrapperClasses, string(ClassFieldError))
	}

	return map[string]any{
		"id":             view.ID,
		"label":          view.Label,
		"description":    view.Description,
		"placeholder":    view.Placeholder,
		"value":          view.Value,
		"required":       view.Required,
		"readonly":       view.Readonly,
		"disabled":       view.Disabled,
		"autofocus":      view.Autofocus,
		"invalid":        view.Invalid,
		"errors":         view.Errors,
		"type":           string(attrs.Type),
		"step":           attrs.Step.String(),
		"min":            attrs.Min.String(),
		"max":            attrs.Max.String(),
		"list":           attrs.ListID,
		"autocomplete":   attrs.Autocomplete,
		"accept":         attrs.Accept,
		"described_by":   view.DescribedBy,
		"shrink":         attrs.LabelShrink,
		"adornment":      string(attrs.Adornment),
		"icon":           icon,
		"prevent_wheel":  view.PreventWheel,
		"examples":       view.Examples.Keys(),
		"error_id":       view.ID + "__error",
		"description_id": view.ID + "__description",
		"input_class":    classList(inputClasses...),
		"wrapper_class":  classList(wrapperClasses...),
	}
}

func token(cfg *theme.RendererConfig, key string) string {
	if cfg == nil {
		return ""
	}
	return cfg.Tokens[key]
}

func chromeClasses() map[string]any {
	return map[string]any{
		"label":       string(ClassLabel),
		"control":     string(ClassControl),
		"adornment":   string(ClassAdornment),
		"description": string(ClassDescription),
		"errors":      string(ClassErrors),
	}
}

func themeData(cfg *theme.RendererConfig) map[string]any {
	if cfg == nil {
		return map[string]any{}
	}
	return map[string]any{
		"name":    cfg.Theme,
		"variant": cfg.Variant,
		"tokens":  copyStringMap(cfg.Tokens),
		"style":   cssVarsStyle(cfg.CSSVars),
	}
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+vars[key])
	}
	return strings.Join(parts, "; ")
}
