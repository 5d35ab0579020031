package preview

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goliatone/go-viewkit"
)

func TestMountPath_JoinsBasePath(t *testing.T) {
	if got := MountPath("/admin"); got != "/admin/components/" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("admin"); got != "/admin/components/" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("/admin/", WithRoutePath("ui/")); got != "/admin/ui/" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("", WithRoutePath("/")); got != "/" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := ComponentPath("/admin", "faq"); got != "/admin/components/faq" {
		t.Fatalf("unexpected component path: %q", got)
	}
}

func TestRegisterRoutes_RegistersHandler(t *testing.T) {
	kit, err := viewkit.New()
	if err != nil {
		t.Fatalf("new kit: %v", err)
	}

	mux := http.NewServeMux()
	pattern, err := New(kit).RegisterRoutes(mux, "/admin")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pattern != "/admin/components/" {
		t.Fatalf("unexpected registered pattern: %q", pattern)
	}

	req := httptest.NewRequest(http.MethodGet, ComponentPath("/admin", "checkboxlist")+"?target=T&source=A", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRegisterRoutes_RequiresMuxAndRenderer(t *testing.T) {
	if _, err := RegisterRoutes(nil, nil, "/"); err == nil {
		t.Fatalf("expected missing mux error")
	}
	if _, err := RegisterRoutes(http.NewServeMux(), nil, "/"); err == nil {
		t.Fatalf("expected missing renderer error")
	}
}
