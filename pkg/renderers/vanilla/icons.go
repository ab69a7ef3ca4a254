package vanilla

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-forminput/pkg/input"
)

var (
	iconPolicyOnce sync.Once
	iconPolicy     *bluemonday.Policy
)

// iconSet maps adornment kinds to sanitised SVG markup.
type iconSet struct {
	mu    sync.RWMutex
	icons map[input.AdornmentKind]string
}

func newIconSet() *iconSet {
	set := &iconSet{icons: make(map[input.AdornmentKind]string)}
	set.set(input.AdornmentNumber, builtinIcon("number"))
	set.set(input.AdornmentString, builtinIcon("string"))
	return set
}

// set stores markup for kind. Markup that sanitises to nothing removes the
// icon so the adornment renders without one.
func (s *iconSet) set(kind input.AdornmentKind, markup string) {
	cleaned := sanitizeIconMarkup(markup)

	s.mu.Lock()
	defer s.mu.Unlock()

	if cleaned == "" {
		delete(s.icons, kind)
		return
	}
	s.icons[kind] = cleaned
}

func (s *iconSet) get(kind input.AdornmentKind) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	icon, ok := s.icons[kind]
	return icon, ok
}

func sanitizeIconMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(iconSanitizer().Sanitize(trimmed))
}

func iconSanitizer() *bluemonday.Policy {
	iconPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"svg", "g", "path", "circle", "rect", "line", "polyline", "polygon",
			"ellipse", "title", "desc",
		)

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "stroke-linecap", "stroke-linejoin", "aria-hidden",
			"role", "focusable", "class",
		).OnElements("svg")

		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "fill", "stroke", "stroke-width",
				"stroke-linecap", "stroke-linejoin", "class",
			).OnElements(el)
		}
		policy.AllowAttrs("fill", "stroke", "class").OnElements("g")

		iconPolicy = policy
	})
	return iconPolicy
}
