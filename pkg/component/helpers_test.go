package component

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"
)

func TestHTMLBinder(t *testing.T) {
	fields, err := HTMLBinder{IDPrefix: "f-"}.BindCheckboxes(BindRequest{
		Target:  "User.Roles[0]",
		Items:   []any{"Admin", `Quote"d`},
		Checked: func(item any) bool { return item == "Admin" },
	})
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Markup != `<input type="checkbox" id="f-User_Roles_0__0" name="User.Roles[0]" value="Admin" checked="checked" />` {
		t.Fatalf("unexpected markup: %s", fields[0].Markup)
	}
	if !strings.Contains(fields[1].Markup, `value="Quote&#34;d" />`) || fields[1].Checked {
		t.Fatalf("unexpected second field: %#v", fields[1])
	}

	if _, err := (HTMLBinder{}).BindCheckboxes(BindRequest{}); err == nil {
		t.Fatalf("expected error without target")
	}
}

func TestHTMLScripts(t *testing.T) {
	got := HTMLScripts{}.RenderScript(Script{Src: "/a.js", Defer: true, Attrs: map[string]string{"nonce": "n", "data-x": "1"}})
	if got != `<script src="/a.js" defer data-x="1" nonce="n"></script>` {
		t.Fatalf("unexpected script: %s", got)
	}
	got = HTMLScripts{}.RenderScript(Script{Inline: "init()", Module: true})
	if got != `<script type="module">init()</script>` {
		t.Fatalf("unexpected inline script: %s", got)
	}
}

func TestIncludeScriptOncePerPage(t *testing.T) {
	var buf bytes.Buffer
	data := RenderData{Page: NewPageState()}
	IncludeScript(&buf, data, data.Page, Script{Src: "/a.js"})
	IncludeScript(&buf, data, data.Page, Script{Src: "/a.js"})
	IncludeScript(&buf, data, data.Page, Script{Inline: "go()"})
	if got := buf.String(); got != `<script src="/a.js"></script><script>go()</script>` {
		t.Fatalf("unexpected scripts: %s", got)
	}
}

func TestRenderDataThemeHelpers(t *testing.T) {
	data := RenderData{Theme: &theme.RendererConfig{
		Partials: map[string]string{"faq.entry": " themes/faq "},
		AssetURL: func(key string) string {
			if key == "known" {
				return "/themes/known.js"
			}
			return ""
		},
	}}
	if data.Partial("faq.entry") != "themes/faq" {
		t.Fatalf("unexpected partial %q", data.Partial("faq.entry"))
	}
	if data.AssetURL("known", "/x.js") != "/themes/known.js" || data.AssetURL("other", "/x.js") != "/x.js" {
		t.Fatalf("unexpected asset resolution")
	}
	if (RenderData{}).AssetURL("known", "/x.js") != "/x.js" {
		t.Fatalf("expected fallback without theme")
	}

	if _, _, err := RenderPartial(data, "faq", "faq.entry", nil); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected partial without template to fail, got %v", err)
	}
	if out, ok, err := RenderPartial(RenderData{}, "faq", "faq.entry", nil); err != nil || ok || out != "" {
		t.Fatalf("expected no partial, got %q %v %v", out, ok, err)
	}
}

type widget struct {
	Name   string
	hidden string
}

func (w *widget) Label() string { return "W:" + w.Name }

func TestMemberAccessor(t *testing.T) {
	items := []any{&widget{Name: "a"}, &widget{Name: "b"}}

	name, err := MemberAccessor("checkboxlist", "displayMember", "Name", items)
	if err != nil {
		t.Fatalf("field accessor: %v", err)
	}
	if name(items[1]) != "b" {
		t.Fatalf("unexpected field value %q", name(items[1]))
	}

	label, err := MemberAccessor("checkboxlist", "displayMember", "Label", items)
	if err != nil {
		t.Fatalf("method accessor: %v", err)
	}
	if label(items[0]) != "W:a" {
		t.Fatalf("unexpected method value %q", label(items[0]))
	}

	mapped, err := MemberAccessor("checkboxlist", "valueMember", "id", []any{map[string]int{"id": 7}})
	if err != nil || mapped(map[string]int{"id": 7}) != "7" {
		t.Fatalf("unexpected map accessor result, err %v", err)
	}

	if _, err := MemberAccessor("checkboxlist", "displayMember", "hidden", items); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected unexported field to be rejected, got %v", err)
	}
	if _, err := MemberAccessor("checkboxlist", "displayMember", "Name", []any{1}); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected missing member error, got %v", err)
	}
}
