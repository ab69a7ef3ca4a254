package template_test

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-forminput/pkg/render/template/gotemplate"
	"github.com/goliatone/go-forminput/pkg/testsupport"
)

//go:embed testdata/templates/*.tmpl
var embeddedTemplates embed.FS

func TestEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureRender(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "hello.golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, _ := testsupport.CaptureRender(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-global", nil, w)
	})

	testsupport.AssertGoldenString(t, filepath.Join("testdata", "use-global.golden"), result)
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter registration to fail")
	}

	result, _ := testsupport.CaptureRender(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"}, w)
	})

	testsupport.AssertGoldenString(t, filepath.Join("testdata", "use-filter.golden"), result)
}

func TestEngine_AttrFilterSkipsEmptyValues(t *testing.T) {
	engine := newEngine(t)

	result, _ := testsupport.CaptureRender(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-attr", map[string]any{
			"type": "number",
			"step": "any",
			"list": "",
		}, w)
	})

	testsupport.AssertGoldenString(t, filepath.Join("testdata", "use-attr.golden"), result)
}

func TestEngine_RenderStringEscapes(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.Render(`<p{{ label|attr:"title" }}>{{ label }}</p>`, map[string]any{"label": `"A" & <B>`})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if strings.Contains(got, "<B>") {
		t.Fatalf("expected escaped output, got %q", got)
	}
	if !strings.Contains(got, `title="&#34;A&#34; &amp; &lt;B&gt;"`) {
		t.Fatalf("expected escaped attribute, got %q", got)
	}
}

func TestEngine_WithGlobalsAndDir(t *testing.T) {
	engine, err := gotemplate.New(
		gotemplate.WithDir(filepath.Join("testdata", "templates")),
		gotemplate.WithExtension("tmpl"),
		gotemplate.WithGlobals(map[string]any{"settings": map[string]any{"env": "staging"}}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderTemplate("use-global.tmpl", nil)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	testsupport.AssertGoldenString(t, filepath.Join("testdata", "use-global.golden"), got)

	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected missing template error")
	}
}

func TestEngine_RejectsNonObjectData(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("hello", []string{"Ada"}); err == nil {
		t.Fatalf("expected error for list data")
	}
}

func TestEngine_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(gotemplate.WithDir("  ")); err == nil {
		t.Fatalf("expected error without a template source")
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}

	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
