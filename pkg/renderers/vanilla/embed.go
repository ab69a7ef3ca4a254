package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed icons/*.svg
var embeddedIcons embed.FS

// InputTemplate is the template rendered when no theme partial overrides it.
const InputTemplate = "templates/input.tmpl"

// ThemePartialKey names the go-theme partial that replaces InputTemplate.
const ThemePartialKey = "forms.input"

// TemplatesFS exposes the embedded template bundle for consumers that want to
// extend or copy the built-in input markup.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

func builtinIcon(name string) string {
	data, err := fs.ReadFile(embeddedIcons, "icons/"+name+".svg")
	if err != nil {
		return ""
	}
	return string(data)
}
