package render

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// ErrRendererNotFound is returned when a lookup names an unregistered renderer.
var ErrRendererNotFound = errors.New("render: renderer not found")

// Registry maps renderer names to field renderers. It is safe for
// concurrent use.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Renderer
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Renderer)}
}

// Register adds renderers under their Name(). Nothing is added when any of
// them is nil, unnamed or already registered.
func (r *Registry) Register(renderers ...Renderer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(renderers))
	for _, renderer := range renderers {
		if renderer == nil {
			return errors.New("render: renderer is required")
		}
		name := strings.TrimSpace(renderer.Name())
		switch {
		case name == "":
			return errors.New("render: renderer name is required")
		case r.byName[name] != nil, slices.Contains(names, name):
			return fmt.Errorf("render: renderer %q already registered", name)
		}
		names = append(names, name)
	}
	for i, renderer := range renderers {
		r.byName[names[i]] = renderer
	}
	return nil
}

// MustRegister is Register for init-time wiring; it panics on error.
func (r *Registry) MustRegister(renderers ...Renderer) {
	if err := r.Register(renderers...); err != nil {
		panic(err)
	}
}

func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	renderer, ok := r.byName[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRendererNotFound, name)
	}
	return renderer, nil
}

// Pick returns the renderer a field should be generated with. An explicit
// name must be registered. Without one, fallback is used when registered and
// the alphabetically first renderer otherwise.
func (r *Registry) Pick(name, fallback string) (Renderer, error) {
	if name = strings.TrimSpace(name); name != "" {
		return r.Get(name)
	}
	if fallback != "" {
		if renderer, err := r.Get(fallback); err == nil {
			return renderer, nil
		}
	}
	names := r.Names()
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: registry is empty", ErrRendererNotFound)
	}
	return r.Get(names[0])
}

// Names lists registered renderer names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
