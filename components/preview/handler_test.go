package preview

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-viewkit"
	"github.com/goliatone/go-viewkit/pkg/component"
)

func newKit(t *testing.T) *viewkit.Kit {
	t.Helper()
	kit, err := viewkit.New()
	if err != nil {
		t.Fatalf("new kit: %v", err)
	}
	return kit
}

func TestHandler_RendersCheckboxListFromQuery(t *testing.T) {
	h := Handler(newKit(t))

	req := httptest.NewRequest(http.MethodGet, "/components/checkboxlist?target=Colours&source=DarkRed,LightBlue&columns=2", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	res := rec.Result()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", res.StatusCode, rec.Body.String())
	}
	if ct := res.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected HTML content-type, got %q", ct)
	}

	body, _ := io.ReadAll(res.Body)
	for _, want := range []string{`<table class="checkbox-list">`, ">Dark Red</label>", ">Light Blue</label>"} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("expected %q in body, got %s", want, body)
		}
	}
}

func TestHandler_UnknownComponentIsNotFound(t *testing.T) {
	h := Handler(newKit(t))

	req := httptest.NewRequest(http.MethodGet, "/components/carousel", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestHandler_InvalidParametersAreBadRequest(t *testing.T) {
	h := Handler(newKit(t))

	req := httptest.NewRequest(http.MethodGet, "/components/checkboxlist?source=a", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"target"`) {
		t.Fatalf("expected error to name the parameter, got %q", rec.Body.String())
	}
}

func TestHandler_PostYAMLBody(t *testing.T) {
	h := Handler(newKit(t))

	body := strings.NewReader("entries:\n  - question: What is it?\n    answer: A <b>kit</b>.\nlistType: ol\n")
	req := httptest.NewRequest(http.MethodPost, "/components/faq", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	out := rec.Body.String()
	if !strings.Contains(out, `<ol class="faq-list">`) || !strings.Contains(out, "A <b>kit</b>.") {
		t.Fatalf("unexpected FAQ markup: %s", out)
	}
}

func TestHandler_PostMalformedBody(t *testing.T) {
	h := Handler(newKit(t))

	req := httptest.NewRequest(http.MethodPost, "/components/faq", strings.NewReader("entries: [unclosed"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestHandler_HeadHasNoBody(t *testing.T) {
	h := Handler(newKit(t))

	req := httptest.NewRequest(http.MethodHead, "/components/checkboxlist?target=T&source=A", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	h := Handler(newKit(t))

	req := httptest.NewRequest(http.MethodDelete, "/components/faq", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != "GET, HEAD, POST" {
		t.Fatalf("unexpected Allow header %q", allow)
	}
}

func TestHandler_GuardRejects(t *testing.T) {
	h := Handler(newKit(t), WithGuard(func(r *http.Request) error {
		return StatusError{Code: http.StatusUnauthorized}
	}))

	req := httptest.NewRequest(http.MethodGet, "/components/faq", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestHandler_DocumentLinksStylesheet(t *testing.T) {
	h := Handler(newKit(t), WithDocument(true), WithTitle("Tags & labels"))

	req := httptest.NewRequest(http.MethodGet, "/components/checkboxlist?target=T&source=A", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	out := rec.Body.String()
	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Fatalf("expected full document, got %s", out)
	}
	if !strings.Contains(out, `<link rel="stylesheet" href="/assets/viewkit/viewkit.css">`) {
		t.Fatalf("expected stylesheet link, got %s", out)
	}
	if !strings.Contains(out, "<title>Tags &amp; labels</title>") {
		t.Fatalf("expected escaped title, got %s", out)
	}
}

func TestQueryParams(t *testing.T) {
	values := url.Values{
		"target":   {"Tags"},
		"source":   {"a, b"},
		"selected": {"a", "b"},
		"columns":  {"3"},
		"extra":    {"x", "y"},
	}

	got := QueryParams(values, []string{"Source", "selected"})
	want := component.Params{
		"target":   "Tags",
		"source":   []any{"a", "b"},
		"selected": []any{"a", "b"},
		"columns":  "3",
		"extra":    []any{"x", "y"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{viewkit.ErrUnknownComponent, http.StatusNotFound},
		{component.MissingParameter("faq", "entries", "expected a sequence"), http.StatusBadRequest},
		{component.InvalidConfiguration("faq", "toggle", "unknown toggle"), http.StatusBadRequest},
		{context.Canceled, http.StatusServiceUnavailable},
		{StatusError{Code: http.StatusTeapot}, http.StatusTeapot},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := StatusFor(tc.err); got != tc.want {
			t.Fatalf("StatusFor(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
