package component

import (
	"html"
	"sort"
	"strings"
)

// Script describes a JavaScript dependency a component emits.
type Script struct {
	Src    string
	Type   string
	Inline string
	Async  bool
	Defer  bool
	Module bool
	Attrs  map[string]string
}

// ScriptHelper is the script-inclusion helper a host provides.
type ScriptHelper interface {
	RenderScript(script Script) string
}

// HTMLScripts renders scripts as plain <script> elements.
type HTMLScripts struct{}

// RenderScript implements ScriptHelper.
func (HTMLScripts) RenderScript(script Script) string {
	var b strings.Builder
	b.WriteString(`<script`)
	if script.Src != "" {
		writeAttr(&b, "src", script.Src)
	}
	switch {
	case script.Module:
		writeAttr(&b, "type", "module")
	case script.Type != "":
		writeAttr(&b, "type", script.Type)
	}
	if script.Async {
		b.WriteString(` async`)
	}
	if script.Defer {
		b.WriteString(` defer`)
	}
	if len(script.Attrs) > 0 {
		keys := make([]string, 0, len(script.Attrs))
		for key := range script.Attrs {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			writeAttr(&b, key, script.Attrs[key])
		}
	}
	b.WriteString(`>`)
	if script.Src == "" {
		b.WriteString(script.Inline)
	}
	b.WriteString(`</script>`)
	return b.String()
}

// ScriptKey identifies a script for de-duplication.
func ScriptKey(script Script) string {
	if script.Src != "" {
		return "src:" + script.Src
	}
	return "inline:" + script.Inline
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(value))
	b.WriteString(`"`)
}
