package component

import (
	"bytes"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	rendertemplate "github.com/goliatone/go-viewkit/pkg/render/template"
)

// RenderData carries the host collaborators a component renders with. Every
// field is optional; components fall back to HTMLBinder, HTMLScripts and a
// throwaway PageState when they are missing.
type RenderData struct {
	Template rendertemplate.TemplateRenderer
	Theme    *theme.RendererConfig
	Page     *PageState
	Binder   Binder
	Scripts  ScriptHelper
}

// State returns d.Page, or a fresh state scoped to this render when
// the caller did not supply one.
func (d RenderData) State() *PageState {
	if d.Page != nil {
		return d.Page
	}
	return NewPageState()
}

// FormBinder returns the configured binder or HTMLBinder.
func (d RenderData) FormBinder() Binder {
	if d.Binder != nil {
		return d.Binder
	}
	return HTMLBinder{}
}

// ScriptRenderer returns the configured script helper or HTMLScripts.
func (d RenderData) ScriptRenderer() ScriptHelper {
	if d.Scripts != nil {
		return d.Scripts
	}
	return HTMLScripts{}
}

// Partial returns the theme template registered for key, if any.
func (d RenderData) Partial(key string) string {
	if d.Theme == nil || d.Theme.Partials == nil {
		return ""
	}
	return strings.TrimSpace(d.Theme.Partials[key])
}

// AssetURL resolves key through the theme, falling back when the theme has
// no URL for it.
func (d RenderData) AssetURL(key, fallback string) string {
	if d.Theme == nil || d.Theme.AssetURL == nil {
		return fallback
	}
	if resolved := strings.TrimSpace(d.Theme.AssetURL(key)); resolved != "" {
		return resolved
	}
	return fallback
}

// RenderSection renders caller-supplied template source for the named
// section of a component.
func RenderSection(data RenderData, component, section, source string, ctx map[string]any) (string, error) {
	if data.Template == nil {
		return "", InvalidConfiguration(component, section, "section requires a template renderer")
	}
	out, err := data.Template.RenderString(source, ctx)
	if err != nil {
		return "", fmt.Errorf("%s: render section %q: %w", component, section, err)
	}
	return out, nil
}

// RenderPartial renders the theme partial registered for key. It reports
// false when the theme does not override key.
func RenderPartial(data RenderData, component, key string, ctx map[string]any) (string, bool, error) {
	name := data.Partial(key)
	if name == "" {
		return "", false, nil
	}
	if data.Template == nil {
		return "", false, InvalidConfiguration(component, key, "theme partial %q requires a template renderer", name)
	}
	out, err := data.Template.RenderTemplate(name, ctx)
	if err != nil {
		return "", false, fmt.Errorf("%s: render partial %q: %w", component, name, err)
	}
	return out, true, nil
}

// IncludeScript writes script through the script helper unless marks
// reports it was already emitted on the page.
func IncludeScript(buf *bytes.Buffer, data RenderData, marks ScriptMarker, script Script) {
	if marks != nil && !marks.MarkScript(ScriptKey(script)) {
		return
	}
	buf.WriteString(data.ScriptRenderer().RenderScript(script))
}
