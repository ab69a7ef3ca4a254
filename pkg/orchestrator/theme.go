package orchestrator

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-forminput/pkg/renderers/vanilla"
)

// WithThemeSelector resolves a theme per request (Request.ThemeName and
// Request.ThemeVariant) and passes the renderer configuration along with the
// field props.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeConfig applies a fixed renderer configuration to every request.
// A theme selector, when also configured, wins.
func WithThemeConfig(cfg *theme.RendererConfig) Option {
	return func(o *Orchestrator) {
		o.themeConfig = cfg
	}
}

func defaultThemeFallbacks() map[string]string {
	return map[string]string{
		vanilla.ThemePartialKey: vanilla.InputTemplate,
	}
}

func (o *Orchestrator) themeFor(req Request) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return o.themeConfig, nil
	}
	selection, err := o.themeSelector.Select(req.ThemeName, req.ThemeVariant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	if selection == nil {
		return o.themeConfig, nil
	}
	return rendererConfig(selection, defaultThemeFallbacks()), nil
}

// rendererConfig flattens a selection into partials, tokens, CSS variables
// and an asset resolver. Variant entries override the manifest's.
func rendererConfig(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	partials := mergeStringMap(nil, fallbacks)
	tokens := map[string]string{}
	files := map[string]string{}
	prefix := ""

	if manifest := selection.Manifest; manifest != nil {
		partials = mergeStringMap(partials, manifest.Templates)
		tokens = mergeStringMap(tokens, manifest.Tokens)
		files = mergeStringMap(files, manifest.Assets.Files)
		prefix = manifest.Assets.Prefix

		if variant, ok := manifest.Variants[selection.Variant]; ok {
			partials = mergeStringMap(partials, variant.Templates)
			tokens = mergeStringMap(tokens, variant.Tokens)
			files = mergeStringMap(files, variant.Assets.Files)
			if variant.Assets.Prefix != "" {
				prefix = variant.Assets.Prefix
			}
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+strings.ReplaceAll(key, ".", "-")] = value
	}

	return &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: assetResolver(prefix, files),
	}
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	return func(key string) string {
		file, ok := files[key]
		if !ok {
			return ""
		}
		if prefix == "" || strings.Contains(file, "://") {
			return file
		}
		return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
	}
}

func mergeStringMap(dst, src map[string]string) map[string]string {
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for key, value := range src {
		dst[key] = value
	}
	return dst
}
