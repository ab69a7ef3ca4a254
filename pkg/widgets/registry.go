package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-forminput/pkg/input"
	"github.com/goliatone/go-forminput/pkg/schema"
)

// WidgetExtensionKey lets a schema fragment pin its widget type explicitly.
const WidgetExtensionKey = "x-widget"

// Matcher decides whether a widget type should be used for the supplied
// schema fragment.
type Matcher func(s schema.Schema) bool

type rule struct {
	widget   input.WidgetType
	priority int
	match    Matcher
	order    int
}

// Registry selects a default widget type for schema fragments when the caller
// declares none. Higher priority wins; ties fall back to registration order.
// An empty registry never resolves a widget.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in format and type
// matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a widget matcher with the provided priority. Higher priority
// values take precedence.
func (r *Registry) Register(widget input.WidgetType, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := input.WidgetType(strings.TrimSpace(string(widget)))
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		widget:   trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget type for a fragment. An explicit x-widget
// extension is honoured before matcher evaluation.
func (r *Registry) Resolve(s schema.Schema) (input.WidgetType, bool) {
	if explicit := explicitWidget(s); explicit != "" {
		return explicit, true
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(s) {
			return entry.widget, true
		}
	}
	return "", false
}

// Declare returns the widget type to hand to input.Resolve: the declared
// widget when set, otherwise the registry's choice. An empty result leaves the
// native type to the schema type (text, or number for numeric schemas).
func (r *Registry) Declare(declared input.WidgetType, s schema.Schema) input.WidgetType {
	if trimmed := strings.TrimSpace(string(declared)); trimmed != "" {
		return input.WidgetType(trimmed)
	}
	if widget, ok := r.Resolve(s); ok {
		return widget
	}
	return ""
}

func explicitWidget(s schema.Schema) input.WidgetType {
	if s.Extensions == nil {
		return ""
	}
	value, _ := s.Extensions[WidgetExtensionKey].(string)
	return input.WidgetType(strings.TrimSpace(value))
}

func formatIs(formats ...string) Matcher {
	return func(s schema.Schema) bool {
		if s.Type != "" && s.Type != schema.TypeString {
			return false
		}
		format := s.NormalizedFormat()
		for _, candidate := range formats {
			if format == candidate {
				return true
			}
		}
		return false
	}
}

func (r *Registry) registerBuiltins() {
	r.Register(input.WidgetDate, 90, formatIs("date"))
	r.Register(input.WidgetDateTimeLocal, 90, formatIs("date-time", "datetime"))
	r.Register(input.WidgetTime, 90, formatIs("time"))
	r.Register(input.WidgetFile, 90, formatIs("binary", "data-url"))
	r.Register(input.WidgetEmail, 80, formatIs("email", "idn-email"))
	r.Register(input.WidgetURL, 80, formatIs("uri", "url", "iri"))
	r.Register(input.WidgetPassword, 80, formatIs("password"))
	r.Register(input.WidgetColor, 80, formatIs("color"))
	r.Register(input.WidgetTel, 80, formatIs("tel", "phone"))
}
