package template_test

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-viewkit/pkg/render/template/gotemplate"
	"github.com/goliatone/go-viewkit/pkg/testsupport"
)

var templateFiles = fstest.MapFS{
	"hello.tpl":        {Data: []byte("Hello {{ name }}!")},
	"use-global.tpl":   {Data: []byte("env={{ settings.env }}")},
	"use-filter.tpl":   {Data: []byte("{{ name|shout }}")},
	"faq/question.tpl": {Data: []byte("<dt>{{ question|splitpascal }}</dt>")},
}

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	want := "Hello Ada!"
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestGoTemplateEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, _ := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-global", nil, w)
	})
	if result != "env=staging" {
		t.Fatalf("unexpected global render: %q", result)
	}
}

func TestGoTemplateEngine_RegisterFilter(t *testing.T) {
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

	result, _ := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"}, w)
	})
	if result != "ADA!" {
		t.Fatalf("unexpected filter render: %q", result)
	}

	if err := engine.RegisterFilter("shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter registration to fail")
	}
}

func TestGoTemplateEngine_SplitPascalFilter(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderTemplate("faq/question", map[string]any{"question": "WhatIsHTML"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "<dt>What Is HTM L</dt>" {
		t.Fatalf("unexpected split render: %q", result)
	}
}

func TestGoTemplateEngine_RenderStringEscapesByDefault(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderString(`{{ label }}|{{ markup|safe }}|{{ count }}`, map[string]any{
		"label":  "<b>",
		"markup": "<i>ok</i>",
		"count":  7,
	})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "&lt;b&gt;|<i>ok</i>|7" {
		t.Fatalf("unexpected string render: %q", result)
	}
}

func TestGoTemplateEngine_RenderDetectsInlineContent(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.Render("{{ name }}", map[string]any{"name": "inline"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "inline" {
		t.Fatalf("expected inline render, got %q", result)
	}
}

func TestGoTemplateEngine_StringsOnly(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without a template source")
	}

	engine, err := gotemplate.New(gotemplate.WithStringsOnly())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	result, err := engine.RenderString("{{ v }}", map[string]any{"v": "x"})
	if err != nil || result != "x" {
		t.Fatalf("unexpected render %q, err %v", result, err)
	}
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected missing template error")
	}
}

func TestGoTemplateEngine_WithGlobals(t *testing.T) {
	engine, err := gotemplate.New(
		gotemplate.WithFS(templateFiles),
		gotemplate.WithGlobals(map[string]any{
			"settings": map[string]any{"env": "production"},
			"name":     "global",
		}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	result, err := engine.RenderTemplate("use-global", nil)
	if err != nil || result != "env=production" {
		t.Fatalf("unexpected global render %q, err %v", result, err)
	}

	result, err = engine.RenderString("{{ name }}", map[string]any{"name": "local"})
	if err != nil || result != "local" {
		t.Fatalf("expected render data to win over globals, got %q, err %v", result, err)
	}
}

func TestGoTemplateEngine_WithFilters(t *testing.T) {
	initials := func(input any, _ any) (any, error) {
		var out strings.Builder
		for _, word := range strings.Fields(fmt.Sprint(input)) {
			out.WriteString(word[:1])
		}
		return out.String(), nil
	}
	engine, err := gotemplate.New(
		gotemplate.WithStringsOnly(),
		gotemplate.WithFilters(map[string]gotemplate.Filter{"initials": initials}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	result, err := engine.RenderString("{{ title|initials }}", map[string]any{"title": "Frequently Asked Questions"})
	if err != nil || result != "FAQ" {
		t.Fatalf("unexpected filter render %q, err %v", result, err)
	}

	if _, err := gotemplate.New(
		gotemplate.WithStringsOnly(),
		gotemplate.WithFilters(map[string]gotemplate.Filter{"initials": initials}),
	); err != nil {
		t.Fatalf("expected second engine to reuse the registered filter, got %v", err)
	}
}

func TestGoTemplateEngine_WithExtensionAndBaseDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "row.html"), []byte("<td>{{ cell }}</td>"), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	engine, err := gotemplate.New(gotemplate.WithBaseDir(dir), gotemplate.WithExtension("html"))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	for _, name := range []string{"row", "row.html"} {
		result, err := engine.RenderTemplate(name, map[string]any{"cell": "x"})
		if err != nil || result != "<td>x</td>" {
			t.Fatalf("render %q: got %q, err %v", name, result, err)
		}
	}
	if _, err := engine.RenderTemplate("row.tpl", nil); err == nil {
		t.Fatalf("expected row.tpl.html to be missing")
	}
}

func TestGoTemplateEngine_RejectsNonMapData(t *testing.T) {
	engine := newEngine(t)

	_, err := engine.RenderString("{{ name }}", struct{ Name string }{"Ada"})
	if err == nil || !strings.Contains(err.Error(), "template data must be a map") {
		t.Fatalf("expected map data error, got %v", err)
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	engine, err := gotemplate.New(gotemplate.WithFS(templateFiles))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
