package gotemplate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"io/fs"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-forminput/pkg/render/template"
)

// DefaultExtension is appended to template names that carry no extension.
const DefaultExtension = ".tmpl"

var errNilEngine = errors.New("gotemplate: engine is nil")

// Option configures an Engine.
type Option func(*Engine)

// WithFS loads templates from files.
func WithFS(files fs.FS) Option {
	return func(e *Engine) {
		if files != nil {
			e.sources = append(e.sources, files)
		}
	}
}

// WithDir loads templates from a directory on disk. Sources are searched in
// the order they were given.
func WithDir(dir string) Option {
	return func(e *Engine) {
		if dir = strings.TrimSpace(dir); dir != "" {
			e.sources = append(e.sources, os.DirFS(dir))
		}
	}
}

// WithExtension overrides DefaultExtension.
func WithExtension(ext string) Option {
	return func(e *Engine) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return
		}
		e.ext = "." + strings.TrimPrefix(ext, ".")
	}
}

// WithGlobals exposes values to every template execution.
func WithGlobals(values map[string]any) Option {
	return func(e *Engine) {
		for key, value := range values {
			e.pending[strings.TrimSpace(key)] = value
		}
	}
}

// Engine renders pongo2 templates for field renderers. Parsed templates are
// cached per resolved file name.
type Engine struct {
	mu      sync.RWMutex
	set     *pongo2.TemplateSet
	cache   map[string]*pongo2.Template
	ext     string
	sources []fs.FS
	pending map[string]any
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New builds an Engine. At least one template source is required.
func New(options ...Option) (*Engine, error) {
	e := &Engine{
		cache:   make(map[string]*pongo2.Template),
		ext:     DefaultExtension,
		pending: make(map[string]any),
	}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	if len(e.sources) == 0 {
		return nil, errors.New("gotemplate: no template source configured")
	}

	loaders := make([]pongo2.TemplateLoader, 0, len(e.sources))
	for _, source := range e.sources {
		loaders = append(loaders, pongo2.NewFSLoader(source))
	}
	e.set = pongo2.NewSet("forminput", loaders...)
	registerBuiltinFilters()

	if err := e.GlobalContext(e.pending); err != nil {
		return nil, fmt.Errorf("gotemplate: globals: %w", err)
	}
	e.pending = nil
	return e, nil
}

// Render treats name as inline template source when it contains template
// tags and as a file name otherwise.
func (e *Engine) Render(name string, data any, out ...io.Writer) (string, error) {
	if strings.Contains(name, "{{") || strings.Contains(name, "{%") {
		return e.RenderString(name, data, out...)
	}
	return e.RenderTemplate(name, data, out...)
}

// RenderTemplate executes the named template file.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errNilEngine
	}
	if !strings.HasSuffix(name, e.ext) {
		name += e.ext
	}
	tmpl, err := e.lookup(name)
	if err != nil {
		return "", err
	}
	return e.execute(tmpl, name, data, out)
}

// RenderString parses and executes inline template source.
func (e *Engine) RenderString(source string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errNilEngine
	}
	tmpl, err := e.set.FromString(source)
	if err != nil {
		return "", fmt.Errorf("gotemplate: parse inline template: %w", err)
	}
	return e.execute(tmpl, "inline", data, out)
}

// RegisterFilter adds a filter to the process-wide pongo2 filter table.
// Registering a name twice is an error.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	name = strings.TrimSpace(name)
	if name == "" || fn == nil {
		return errors.New("gotemplate: filter name and function required")
	}
	if pongo2.FilterExists(name) {
		return fmt.Errorf("gotemplate: filter %q already exists", name)
	}
	return pongo2.RegisterFilter(name, func(in, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var arg any
		if param != nil {
			arg = param.Interface()
		}
		result, err := fn(in.Interface(), arg)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(result), nil
	})
}

// GlobalContext merges data into the values visible to every template.
func (e *Engine) GlobalContext(data any) error {
	if e == nil || e.set == nil {
		return errNilEngine
	}
	values, err := toContext(data)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.set.Globals == nil {
		e.set.Globals = pongo2.Context{}
	}
	e.set.Globals.Update(values)
	return nil
}

func (e *Engine) lookup(name string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.cache[name]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.cache[name]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load template %q: %w", name, err)
	}
	e.cache[name] = tmpl
	return tmpl, nil
}

func (e *Engine) execute(tmpl *pongo2.Template, name string, data any, out []io.Writer) (string, error) {
	ctx, err := toContext(data)
	if err != nil {
		return "", fmt.Errorf("gotemplate: convert data for %q: %w", name, err)
	}

	var buf bytes.Buffer
	e.mu.RLock()
	err = tmpl.ExecuteWriter(ctx, &buf)
	e.mu.RUnlock()
	if err != nil {
		return "", fmt.Errorf("gotemplate: execute %q: %w", name, err)
	}

	for _, w := range out {
		if _, err := w.Write(buf.Bytes()); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// toContext flattens data into plain maps, slices and scalars so templates
// see JSON field names. Top level functions are passed through untouched.
func toContext(data any) (pongo2.Context, error) {
	if data == nil {
		return pongo2.Context{}, nil
	}

	var source map[string]any
	switch v := data.(type) {
	case pongo2.Context:
		source = v
	case map[string]any:
		source = v
	default:
		plain, err := plainValue(v)
		if err != nil {
			return nil, err
		}
		m, ok := plain.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("template data must be an object, got %T", data)
		}
		return m, nil
	}

	ctx := make(pongo2.Context, len(source))
	for key, value := range source {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if value != nil && reflect.TypeOf(value).Kind() == reflect.Func {
			ctx[key] = value
			continue
		}
		plain, err := plainValue(value)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		ctx[key] = plain
	}
	return ctx, nil
}

func plainValue(value any) (any, error) {
	switch value.(type) {
	case nil, string, bool, float64, int:
		return value, nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func registerBuiltinFilters() {
	for name, fn := range map[string]pongo2.FilterFunction{
		"trim": filterTrim,
		"attr": filterAttr,
	} {
		if !pongo2.FilterExists(name) {
			_ = pongo2.RegisterFilter(name, fn)
		}
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.IsNil() {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterAttr renders ` name="value"` for non-empty values and nothing
// otherwise:
//
//	<input{{ step|attr:"step" }}>
func filterAttr(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	name := strings.TrimSpace(param.String())
	if name == "" {
		return nil, &pongo2.Error{Sender: "filter:attr", OrigError: errors.New("attribute name is required")}
	}
	if in.IsNil() || in.String() == "" {
		return pongo2.AsSafeValue(""), nil
	}
	return pongo2.AsSafeValue(fmt.Sprintf(` %s="%s"`, html.EscapeString(name), html.EscapeString(in.String()))), nil
}
